package mappers

import "nescart/ines"

var CNROM = MapperDesc{
	Name:            "CNROM",
	PRGROMbanksz:    0x8000,
	CHRROMbanksz:    0x2000,
	HasBusConflicts: func(hdr *ines.Header) bool { return hdr.Submapper == 2 },
}
