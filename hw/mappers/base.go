package mappers

import (
	"fmt"

	"nescart/ines"
)

// A Board associates a loaded rom with the descriptor of its mapper.
type Board struct {
	Desc MapperDesc
	Rom  *ines.Rom

	BusConflicts bool
}

func ispow2(n int) bool {
	return n&(n-1) == 0
}

func newBoard(desc MapperDesc, rom *ines.Rom) (*Board, error) {
	if len(rom.PRGROM) == 0 {
		return nil, fmt.Errorf("no PRGROM")
	}
	if !ispow2(len(rom.PRGROM)) {
		return nil, fmt.Errorf("only support PRGROM with power of 2 size, got %d", len(rom.PRGROM))
	}
	if desc.CHRROMbanksz != 0 && len(rom.CHRROM)%int(desc.CHRROMbanksz) != 0 {
		return nil, fmt.Errorf("CHRROM size %d is not a multiple of %d", len(rom.CHRROM), desc.CHRROMbanksz)
	}
	if desc.Check != nil {
		if err := desc.Check(rom); err != nil {
			return nil, err
		}
	}

	b := &Board{Desc: desc, Rom: rom}
	if desc.HasBusConflicts != nil {
		b.BusConflicts = desc.HasBusConflicts(&rom.Header)
	}
	return b, nil
}

// PRGBanks returns the number of switchable PRGROM banks.
func (b *Board) PRGBanks() int {
	if b.Desc.PRGROMbanksz == 0 {
		return 1
	}
	return max(1, len(b.Rom.PRGROM)/int(b.Desc.PRGROMbanksz))
}

// CHRBanks returns the number of switchable CHRROM banks.
func (b *Board) CHRBanks() int {
	if b.Desc.CHRROMbanksz == 0 {
		return 1
	}
	return max(1, len(b.Rom.CHRROM)/int(b.Desc.CHRROMbanksz))
}

func (b *Board) String() string {
	return fmt.Sprintf("%s (mapper %d), %d PRG bank(s), %d CHR bank(s)", b.Desc.Name, b.Rom.Mapper, b.PRGBanks(), b.CHRBanks())
}
