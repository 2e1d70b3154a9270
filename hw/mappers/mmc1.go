package mappers

import (
	"fmt"

	"nescart/ines"
)

var MMC1 = MapperDesc{
	Name:         "MMC1",
	Check:        checkMMC1,
	PRGROMbanksz: 0x4000,
	CHRROMbanksz: 0x1000,
}

// MMC1 selects 16KB PRG banks with 4 bits, SUROM/SXROM boards use
// an extra CHR line to reach 512KB.
func checkMMC1(rom *ines.Rom) error {
	if len(rom.PRGROM) > 512*1024 {
		return fmt.Errorf("PRGROM too large for MMC1: %d bytes", len(rom.PRGROM))
	}
	if len(rom.CHRROM) > 128*1024 {
		return fmt.Errorf("CHRROM too large for MMC1: %d bytes", len(rom.CHRROM))
	}
	return nil
}
