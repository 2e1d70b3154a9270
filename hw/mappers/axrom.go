package mappers

import "nescart/ines"

var AxROM = MapperDesc{
	Name:         "AxROM",
	PRGROMbanksz: 0x8000,
	// AMROM (submapper 2) has bus conflicts, ANROM/AOROM don't.
	HasBusConflicts: func(hdr *ines.Header) bool { return hdr.Submapper == 2 },
}
