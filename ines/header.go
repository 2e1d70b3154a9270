package ines

import (
	"fmt"

	"nescart/hw/hwio"
)

const (
	Magic      = "NES\x1a"
	HeaderSize = 16

	PRGROMBankSize = 16 * 1024
	CHRROMBankSize = 8 * 1024
	CHRRAMBufSize  = 8 * 1024
	PRGRAMBufSize  = 8 * 1024
)

// FormatVersion is the revision of the container format.
type FormatVersion uint8

const (
	INES  FormatVersion = 1
	NES20 FormatVersion = 2
)

func (v FormatVersion) String() string {
	switch v {
	case INES:
		return "iNES"
	case NES20:
		return "NES 2.0"
	}
	return fmt.Sprintf("version(%d)", uint8(v))
}

// Flags consolidates the low nibbles of header bytes 6 and 7.
type Flags uint8

const (
	FlagVertMirroring Flags = 1 << iota // 0: horizontal, 1: vertical
	FlagBattery                         // battery-backed PRG-RAM or other persistent memory
	FlagTrainer                         // 512-byte trainer before PRG-ROM data
	FlagFourScreen                      // ignore mirroring bit, provide four-screen VRAM
	FlagVSUnisystem
	FlagPlaychoice10
)

// Header is a decoded iNES/NES 2.0 header.
//
// Submapper, PRGRAMSize, CHRRAMSize, TVMode and VSData are only set for
// NES 2.0 headers, they're 0 otherwise.
type Header struct {
	Version     FormatVersion
	Mapper      uint16 // 12 bits
	Submapper   uint8  // 4 bits
	Flags       Flags
	PRGROMBanks uint16 // number of 16KB PRG-ROM banks
	CHRROMBanks uint16 // number of 8KB CHR-ROM banks, 0 means CHR-RAM
	PRGRAMSize  uint8  // encoded PRG-RAM (low nibble) and PRG-NVRAM (high nibble) shift counts
	CHRRAMSize  uint8  // encoded CHR-RAM (low nibble) and CHR-NVRAM (high nibble) shift counts
	TVMode      uint8
	VSData      uint8
}

// DecodeHeader decodes and validates a 16-byte iNES or NES 2.0 header.
func DecodeHeader(raw [HeaderSize]byte) (Header, error) {
	if string(raw[:4]) != Magic {
		return Header{}, ErrSignature
	}

	switch hwio.Bits8(raw[7], 2, 2) {
	case 0b01:
		return Header{}, ErrKnownCorruption
	case 0b11:
		return Header{}, ErrUnrecognizedFormat
	}

	hdr := Header{
		Version:     INES,
		PRGROMBanks: uint16(raw[4]),
		CHRROMBanks: uint16(raw[5]),
		Mapper:      uint16(hwio.Hi4(raw[6]) | raw[7]&0xF0),
		Flags:       Flags(hwio.Lo4(raw[6]) | hwio.Lo4(raw[7])<<4),
	}

	if hwio.Bits8(raw[7], 2, 2) == 0b10 {
		if err := hdr.decodeNES20(raw); err != nil {
			return Header{}, err
		}
	} else {
		for off := 8; off < HeaderSize; off++ {
			if raw[off] != 0 {
				return Header{}, &TrailingDataError{Offset: off, Value: raw[off]}
			}
		}
	}

	if hdr.HasTrainer() {
		return Header{}, ErrUnsupportedTrainer
	}
	return hdr, nil
}

func (hdr *Header) decodeNES20(raw [HeaderSize]byte) error {
	hdr.Version = NES20
	hdr.Mapper |= uint16(hwio.Lo4(raw[8])) << 8
	hdr.Submapper = hwio.Hi4(raw[8])
	hdr.PRGROMBanks |= uint16(hwio.Lo4(raw[9])) << 8
	hdr.CHRROMBanks |= uint16(hwio.Hi4(raw[9])) << 8
	hdr.PRGRAMSize = raw[10]
	hdr.CHRRAMSize = raw[11]
	hdr.TVMode = raw[12]
	hdr.VSData = raw[13]

	if hwio.Lo4(hdr.PRGRAMSize) == 0xF || hwio.Hi4(hdr.PRGRAMSize) == 0xF {
		return &RAMSizeError{Region: "PRG-RAM", Value: hdr.PRGRAMSize}
	}
	if hwio.Lo4(hdr.CHRRAMSize) == 0xF || hwio.Hi4(hdr.CHRRAMSize) == 0xF {
		return &RAMSizeError{Region: "CHR-RAM", Value: hdr.CHRRAMSize}
	}
	if hwio.Hi4(hdr.CHRRAMSize) != 0 {
		return ErrBatteryCHRRAM
	}
	for off := 14; off < HeaderSize; off++ {
		if raw[off] != 0 {
			return &TrailingDataError{Offset: off, Value: raw[off]}
		}
	}
	return nil
}

func (hdr Header) String() string {
	return fmt.Sprintf("%s mapper=%d.%d prg=%dx16KB chr=%dx8KB flags=%08b",
		hdr.Version, hdr.Mapper, hdr.Submapper, hdr.PRGROMBanks, hdr.CHRROMBanks, uint8(hdr.Flags))
}

// IsNES20 reports whether the header uses the NES 2.0 format.
func (hdr *Header) IsNES20() bool {
	return hdr.Version == NES20
}

// HasTrainer indicates the presence of a trainer section in the rom.
func (hdr *Header) HasTrainer() bool {
	return hdr.Flags&FlagTrainer != 0
}

// HasBattery indicates the presence of persistent memory in the rom.
func (hdr *Header) HasBattery() bool {
	return hdr.Flags&FlagBattery != 0
}

func (hdr *Header) IsVSUnisystem() bool {
	return hdr.Flags&FlagVSUnisystem != 0
}

func (hdr *Header) IsPlaychoice10() bool {
	return hdr.Flags&FlagPlaychoice10 != 0
}

// HasCHRRAM reports whether the cartridge has no CHR-ROM, and thus uses
// CHR-RAM instead.
func (hdr *Header) HasCHRRAM() bool {
	return hdr.CHRROMBanks == 0
}

// PRGROMSize returns the PRG-ROM size in bytes.
func (hdr *Header) PRGROMSize() int {
	return int(hdr.PRGROMBanks) * PRGROMBankSize
}

// CHRROMSize returns the CHR-ROM size in bytes, 0 for CHR-RAM cartridges.
func (hdr *Header) CHRROMSize() int {
	return int(hdr.CHRROMBanks) * CHRROMBankSize
}

// NTMirroring is the nametable mirroring hardwired by the cartridge.
type NTMirroring uint8

const (
	HorzMirroring NTMirroring = iota
	VertMirroring
	FourScreen
)

func (m NTMirroring) String() string {
	switch m {
	case HorzMirroring:
		return "horizontal"
	case VertMirroring:
		return "vertical"
	case FourScreen:
		return "four-screen"
	}
	return fmt.Sprintf("mirroring(%d)", uint8(m))
}

func (hdr *Header) Mirroring() NTMirroring {
	switch {
	case hdr.Flags&FlagFourScreen != 0:
		return FourScreen
	case hdr.Flags&FlagVertMirroring != 0:
		return VertMirroring
	}
	return HorzMirroring
}

// NES 2.0 RAM sizes are encoded as shift counts: size is 64 << shift, and a
// shift of 0 means no RAM. These are informational, the loader always
// allocates a fixed PRGRAMBufSize buffer.

func ramsize(shift uint8) int {
	if shift == 0 {
		return 0
	}
	return 64 << shift
}

// PRGRAMBytes returns the declared volatile PRG-RAM size in bytes.
func (hdr *Header) PRGRAMBytes() int { return ramsize(hwio.Lo4(hdr.PRGRAMSize)) }

// PRGNVRAMBytes returns the declared non-volatile PRG-RAM size in bytes.
func (hdr *Header) PRGNVRAMBytes() int { return ramsize(hwio.Hi4(hdr.PRGRAMSize)) }

// CHRRAMBytes returns the declared volatile CHR-RAM size in bytes.
func (hdr *Header) CHRRAMBytes() int { return ramsize(hwio.Lo4(hdr.CHRRAMSize)) }

// CHRNVRAMBytes returns the declared non-volatile CHR-RAM size in bytes.
func (hdr *Header) CHRNVRAMBytes() int { return ramsize(hwio.Hi4(hdr.CHRRAMSize)) }
