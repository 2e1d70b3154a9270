package ines

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindUnknown},
		{errors.New("other"), KindUnknown},
		{&OpenError{Path: "x.nes", Err: os.ErrPermission}, KindAccess},
		{&TruncatedError{Section: SectionCHR}, KindTruncation},
		{ErrSignature, KindStructural},
		{ErrKnownCorruption, KindStructural},
		{ErrUnrecognizedFormat, KindStructural},
		{&TrailingDataError{Offset: 9}, KindStructural},
		{ErrUnsupportedTrainer, KindUnsupportedFeature},
		{ErrBatteryCHRRAM, KindUnsupportedFeature},
		{&RAMSizeError{Region: "PRG-RAM"}, KindUnsupportedFeature},
		{&UnsupportedMapperError{Mapper: 66}, KindUnsupportedMapper},
		{fmt.Errorf("wrapped: %w", ErrSignature), KindStructural},
		{fmt.Errorf("wrapped: %w", &UnsupportedMapperError{Mapper: 5}), KindUnsupportedMapper},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&OpenError{Path: "invalid_file.nes", Err: os.ErrNotExist}, `unable to open file "invalid_file.nes": file does not exist`},
		{&UnsupportedMapperError{Mapper: 66}, "unsupported mapper number: 66"},
		{&TrailingDataError{Offset: 12, Value: 0x44}, "unrecognized data found at header offset 12 (0x44) - repair and try again"},
		{&RAMSizeError{Region: "CHR-RAM", Value: 0x0F}, "invalid CHR-RAM size in header (0x0f)"},
		{&TruncatedError{Path: "a.nes", Section: SectionPRG, Want: 32768, Got: 100}, "a.nes: incomplete PRG-ROM section: got 100 bytes, want 32768"},
		{&TruncatedError{Section: SectionHeader, Want: 16, Got: 3}, "incomplete header section: got 3 bytes, want 16"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
