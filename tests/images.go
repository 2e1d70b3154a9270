package tests

import (
	"os"
	"path/filepath"
	"testing"
)

// Image is a synthetic rom image, used to build test cartridges.
type Image struct {
	Header [16]byte
	PRG    []byte
	CHR    []byte
	Extra  []byte // appended after CHR data
}

// NewINES returns an iNES image with the given geometry and mapper. PRG and
// CHR data are filled with a recognizable pattern.
func NewINES(prgBanks, chrBanks, mapper uint8) *Image {
	img := &Image{}
	copy(img.Header[:], "NES\x1a")
	img.Header[4] = prgBanks
	img.Header[5] = chrBanks
	img.Header[6] = mapper << 4
	img.Header[7] = mapper & 0xF0
	img.PRG = pattern(int(prgBanks)*16384, 0x10)
	img.CHR = pattern(int(chrBanks)*8192, 0x80)
	return img
}

// NewNES20 returns a NES 2.0 image with a 12-bit mapper number and a
// submapper. Bank counts are limited to 8 bits to keep images small.
func NewNES20(prgBanks, chrBanks uint8, mapper uint16, submapper uint8) *Image {
	img := NewINES(prgBanks, chrBanks, uint8(mapper))
	img.Header[7] |= 0x08
	img.Header[8] = submapper<<4 | uint8(mapper>>8)&0x0F
	return img
}

func pattern(n int, seed byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = seed + byte(i)
	}
	return buf
}

// Bytes returns the whole image content.
func (img *Image) Bytes() []byte {
	buf := make([]byte, 0, len(img.Header)+len(img.PRG)+len(img.CHR)+len(img.Extra))
	buf = append(buf, img.Header[:]...)
	buf = append(buf, img.PRG...)
	buf = append(buf, img.CHR...)
	buf = append(buf, img.Extra...)
	return buf
}

// WriteFile writes the image into a temporary directory, removed at the end
// of the test, and returns its path.
func (img *Image) WriteFile(tb testing.TB, name string) string {
	tb.Helper()
	return WriteBytes(tb, name, img.Bytes())
}

// WriteBytes writes buf into a temporary file and returns its path.
func WriteBytes(tb testing.TB, name string, buf []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		tb.Fatal(err)
	}
	return path
}
