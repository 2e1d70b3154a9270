package mappers

import "nescart/ines"

var UxROM = MapperDesc{
	Name:         "UxROM",
	PRGROMbanksz: 0x4000,
	CHRROMbanksz: 0x2000,
	// Submapper 2 is UxROM with bus conflicts, submapper 1 without.
	HasBusConflicts: func(hdr *ines.Header) bool { return !hdr.IsNES20() || hdr.Submapper == 2 },
}
