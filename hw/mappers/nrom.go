package mappers

import (
	"fmt"

	"nescart/ines"
)

var NROM = MapperDesc{
	Name:         "NROM",
	Check:        checkNROM,
	PRGROMbanksz: 0x4000,
	CHRROMbanksz: 0x2000,
}

// NROM-128 has 16KB of PRGROM (mirrored), NROM-256 has 32KB.
func checkNROM(rom *ines.Rom) error {
	if len(rom.PRGROM) > 0x8000 {
		return fmt.Errorf("PRGROM too large for NROM: %d bytes", len(rom.PRGROM))
	}
	if len(rom.CHRROM) != 0x2000 {
		return fmt.Errorf("NROM requires 8KB of CHR, got %d bytes", len(rom.CHRROM))
	}
	return nil
}
