package ines

import (
	"errors"
	"fmt"
)

// Structural and unsupported-feature errors returned by DecodeHeader.
var (
	ErrSignature          = errors.New("iNES header signature not found")
	ErrKnownCorruption    = errors.New(`header is corrupted by "DiskDude!" - repair and try again`)
	ErrUnrecognizedFormat = errors.New("unrecognized header format - repair and try again")
	ErrUnsupportedTrainer = errors.New("trained ROMs are not supported")
	ErrBatteryCHRRAM      = errors.New("battery-backed CHR-RAM is not supported")
)

// An OpenError reports that a rom image could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("unable to open file %q: %s", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// A Section identifies a contiguous region of a rom image.
type Section uint8

const (
	SectionHeader Section = iota
	SectionPRG
	SectionCHR
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionPRG:
		return "PRG-ROM"
	case SectionCHR:
		return "CHR-ROM"
	}
	return fmt.Sprintf("section(%d)", uint8(s))
}

// A TruncatedError reports that a rom image holds less data than its header
// (or the header itself) requires.
type TruncatedError struct {
	Path    string
	Section Section
	Want    int // expected section size in bytes
	Got     int // bytes actually read
}

func (e *TruncatedError) Error() string {
	msg := fmt.Sprintf("incomplete %s section: got %d bytes, want %d", e.Section, e.Got, e.Want)
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// A RAMSizeError reports a reserved value in one of the NES 2.0 encoded RAM
// size bytes.
type RAMSizeError struct {
	Region string // "PRG-RAM" or "CHR-RAM"
	Value  uint8  // raw header byte
}

func (e *RAMSizeError) Error() string {
	return fmt.Sprintf("invalid %s size in header (0x%02x)", e.Region, e.Value)
}

// A TrailingDataError reports a non-zero byte at a header offset that must
// be zero for the detected format version.
type TrailingDataError struct {
	Offset int
	Value  uint8
}

func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("unrecognized data found at header offset %d (0x%02x) - repair and try again", e.Offset, e.Value)
}

// An UnsupportedMapperError is returned by the mapper registry when the
// cartridge board is not known.
type UnsupportedMapperError struct {
	Mapper    uint16
	Submapper uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper number: %d", e.Mapper)
}

// ErrorKind classifies the errors returned while loading a cartridge.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindAccess
	KindTruncation
	KindStructural
	KindUnsupportedFeature
	KindUnsupportedMapper
)

func (k ErrorKind) String() string {
	switch k {
	case KindAccess:
		return "access"
	case KindTruncation:
		return "truncation"
	case KindStructural:
		return "structural"
	case KindUnsupportedFeature:
		return "unsupported-feature"
	case KindUnsupportedMapper:
		return "unsupported-mapper"
	}
	return "unknown"
}

// KindOf returns the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	var (
		openErr     *OpenError
		truncErr    *TruncatedError
		ramErr      *RAMSizeError
		trailingErr *TrailingDataError
		mapperErr   *UnsupportedMapperError
	)

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &openErr):
		return KindAccess
	case errors.As(err, &truncErr):
		return KindTruncation
	case errors.As(err, &mapperErr):
		return KindUnsupportedMapper
	case errors.Is(err, ErrSignature),
		errors.Is(err, ErrKnownCorruption),
		errors.Is(err, ErrUnrecognizedFormat),
		errors.As(err, &trailingErr):
		return KindStructural
	case errors.Is(err, ErrUnsupportedTrainer),
		errors.Is(err, ErrBatteryCHRRAM),
		errors.As(err, &ramErr):
		return KindUnsupportedFeature
	}
	return KindUnknown
}
