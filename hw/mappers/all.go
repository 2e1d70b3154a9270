// Package mappers identifies the bank-switching board of a cartridge and
// checks its geometry is usable by that board.
package mappers

import (
	"fmt"

	"nescart/ines"
	"nescart/log"
)

var modMapper = log.NewModule("mapper")

// Load returns the board the rom is built on. It fails with an
// *ines.UnsupportedMapperError if the mapper number is not known.
func Load(rom *ines.Rom) (*Board, error) {
	desc, err := Lookup(rom.Header)
	if err != nil {
		return nil, err
	}

	b, err := newBoard(desc, rom)
	if err != nil {
		return nil, fmt.Errorf("mapper %s initialization failed: %w", desc.Name, err)
	}

	modMapper.DebugZ("board ready").
		String("name", desc.Name).
		Uint16("mapper", rom.Mapper).
		Uint8("submapper", rom.Submapper).
		Bool("busconflicts", b.BusConflicts).
		End()
	return b, nil
}

// Lookup returns the descriptor of the board identified by the header.
func Lookup(hdr ines.Header) (MapperDesc, error) {
	desc, ok := All[hdr.Mapper]
	if !ok {
		return MapperDesc{}, &ines.UnsupportedMapperError{Mapper: hdr.Mapper, Submapper: hdr.Submapper}
	}
	return desc, nil
}

type MapperDesc struct {
	Name            string
	Check           func(*ines.Rom) error // extra board specific geometry checks
	PRGROMbanksz    uint32
	CHRROMbanksz    uint32
	HasBusConflicts func(*ines.Header) bool
}

var All = map[uint16]MapperDesc{
	0:  NROM,
	1:  MMC1,
	2:  UxROM,
	3:  CNROM,
	7:  AxROM,
	66: GxROM,
}
