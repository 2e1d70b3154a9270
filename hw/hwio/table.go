package hwio

import (
	"fmt"

	"nescart/log"
)

// log unmapped accesses (useful for debugging but verbose on NES since many
// games read from open bus)
const logUnmapped = false

type BankIO8 interface {
	// Read8 reads a byte from the given address. If peek is true, the read
	// shouldn't have any side effects (debugging/tracing).
	Read8(addr uint16, peek bool) uint8
	Write8(addr uint16, val uint8)
}

// Table dispatches 8-bit bus accesses to the device mapped at each address.
type Table struct {
	Name string

	table8 map[uint16]BankIO8
}

func NewTable(name string) *Table {
	t := new(Table)
	t.Name = name
	t.Reset()
	return t
}

func (t *Table) Reset() {
	t.table8 = make(map[uint16]BankIO8)
}

func (t *Table) mapBus8(addr, size uint16, io BankIO8) {
	for a := range uint32(size) {
		cur := addr + uint16(a)
		if _, ok := t.table8[cur]; ok {
			panic(fmt.Errorf("%s: address %04X already mapped", t.Name, cur))
		}
		t.table8[cur] = io
	}
}

func (t *Table) MapReg8(addr uint16, io *Reg8) {
	log.ModHwIo.DebugZ("mapping reg").
		Hex16("addr", addr).
		String("reg", io.Name).
		String("bus", t.Name).
		End()

	t.mapBus8(addr, 1, io)
}

func (t *Table) Unmap(begin, end uint16) {
	for a := uint32(begin); a <= uint32(end); a++ {
		delete(t.table8, uint16(a))
	}
}

// Read8 searches in the table for the device mapped at the given address and
// forward the read to it. Accesses to unmapped addresses read as 0.
func (t *Table) Read8(addr uint16, peek bool) uint8 {
	io, ok := t.table8[addr]
	if !ok {
		if logUnmapped && !peek {
			log.ModHwIo.ErrorZ("unmapped Read8").
				String("name", t.Name).
				Hex16("addr", addr).
				End()
		}
		return 0
	}
	return io.Read8(addr, peek)
}

// Peek8 is a convenience function.
func (t *Table) Peek8(addr uint16) uint8 {
	return t.Read8(addr, true)
}

func (t *Table) Write8(addr uint16, val uint8) {
	io, ok := t.table8[addr]
	if !ok {
		if logUnmapped {
			log.ModHwIo.ErrorZ("unmapped Write8").
				String("name", t.Name).
				Hex16("addr", addr).
				Hex8("val", val).
				End()
		}
		return
	}
	io.Write8(addr, val)
}
