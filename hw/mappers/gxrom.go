package mappers

var GxROM = MapperDesc{
	Name:         "GxROM",
	PRGROMbanksz: 0x8000,
	CHRROMbanksz: 0x2000,
}
