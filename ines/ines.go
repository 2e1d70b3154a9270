// Package ines decodes cartridge images in the iNES and NES 2.0 file formats,
// used for the distribution of NES binary programs.
package ines

import (
	"errors"
	"fmt"
	"io"
	"os"

	"nescart/log"
)

// Rom is a cartridge loaded in memory.
type Rom struct {
	Path string // image the rom has been loaded from (diagnostics only)
	Header

	PRGROM []byte // PRGROMBanks * 16KB, read-only
	CHRROM []byte // CHRROMBanks * 8KB, or 8KB of zeroes used as CHR-RAM
	PRGRAM []byte // 8KB, always allocated
}

// ReadRom loads a rom from file.
func ReadRom(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	rom := &Rom{Path: path}
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, err
	}

	log.ModInes.InfoZ("loaded rom").
		String("path", path).
		Stringer("header", rom.Header).
		End()
	return rom, nil
}

// unwrapPathError strips the operation and path of a *os.PathError, since
// OpenError already carries the path.
func unwrapPathError(err error) error {
	var perr *os.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}

// ReadFrom implements io.ReaderFrom interface. It reads the header and the
// rom banks from r. On error rom is left untouched.
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	var (
		raw   [HeaderSize]byte
		nread int64
	)

	n, err := io.ReadFull(r, raw[:])
	nread += int64(n)
	if err != nil {
		return nread, rom.readErr(err, SectionHeader, HeaderSize, n)
	}

	hdr, err := DecodeHeader(raw)
	if err != nil {
		return nread, err
	}
	log.ModInes.DebugZ("decoded header").
		Stringer("version", hdr.Version).
		Uint16("mapper", hdr.Mapper).
		Uint8("submapper", hdr.Submapper).
		Hex8("flags", uint8(hdr.Flags)).
		Uint16("prg", hdr.PRGROMBanks).
		Uint16("chr", hdr.CHRROMBanks).
		End()

	prg := make([]byte, hdr.PRGROMSize())
	n, err = io.ReadFull(r, prg)
	nread += int64(n)
	if err != nil {
		return nread, rom.readErr(err, SectionPRG, len(prg), n)
	}

	chr := make([]byte, hdr.CHRROMSize())
	n, err = io.ReadFull(r, chr)
	nread += int64(n)
	if err != nil {
		return nread, rom.readErr(err, SectionCHR, len(chr), n)
	}

	if hdr.HasCHRRAM() {
		log.ModInes.DebugZ("no CHR-ROM, using CHR-RAM").
			Int("size", CHRRAMBufSize).
			End()
		chr = make([]byte, CHRRAMBufSize)
	}

	rom.Header = hdr
	rom.PRGROM = prg
	rom.CHRROM = chr
	rom.PRGRAM = make([]byte, PRGRAMBufSize)
	return nread, nil
}

func (rom *Rom) readErr(err error, sec Section, want, got int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &TruncatedError{Path: rom.Path, Section: sec, Want: want, Got: got}
	}
	return fmt.Errorf("failed to read %s: %w", sec, err)
}

func (rom *Rom) String() string {
	return fmt.Sprintf("Rom{%s, PRG-ROM: %d, CHR-ROM: %d, PRG-RAM: %d}",
		rom.Header, len(rom.PRGROM), len(rom.CHRROM), len(rom.PRGRAM))
}
