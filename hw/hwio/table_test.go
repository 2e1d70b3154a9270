package hwio_test

import (
	"testing"

	"nescart/hw/hwio"
)

type testTable struct {
	t testing.TB
	*hwio.Table
	Reg1 hwio.Reg8
	Reg2 hwio.Reg8
}

func newTestTable(tb testing.TB) *testTable {
	tbl := &testTable{t: tb, Table: hwio.NewTable("bus")}
	tbl.Reg1 = hwio.Reg8{Name: "reg1", Value: 0x99, RoMask: 0x0F}
	tbl.Reg1.ReadCb = func(val uint8) uint8 {
		tbl.Reg1.Value++
		return tbl.Reg1.Value
	}
	tbl.Reg2 = hwio.Reg8{Name: "reg2", Value: 0x40}
	tbl.MapReg8(0x2001, &tbl.Reg1)
	tbl.MapReg8(0x2002, &tbl.Reg2)
	return tbl
}

func (tbl *testTable) wantRead8(addr uint16, want uint8) {
	tbl.t.Helper()
	if got := tbl.Read8(addr, false); got != want {
		tbl.t.Errorf("Read8(%04X) = %02X, want %02X", addr, got, want)
	}
}

func TestTableMapReg8(t *testing.T) {
	tbl := newTestTable(t)

	tbl.wantRead8(0x2001, 0x9A)
	tbl.wantRead8(0x2001, 0x9B)
	tbl.Write8(0x2001, 0xF0)
	tbl.wantRead8(0x2001, 0xFC)

	tbl.wantRead8(0x2002, 0x40)
	if got := tbl.Peek8(0x2002); got != 0x40 {
		t.Errorf("Peek8 = %02X", got)
	}

	// unmapped
	tbl.wantRead8(0x2003, 0x00)
	tbl.Write8(0x2003, 0xFF)

	tbl.Unmap(0x2002, 0x2002)
	tbl.wantRead8(0x2002, 0x00)
}

func TestTableDoubleMapPanics(t *testing.T) {
	tbl := newTestTable(t)
	defer func() {
		if recover() == nil {
			t.Fatal("mapping an already mapped address should panic")
		}
	}()
	tbl.MapReg8(0x2001, &hwio.Reg8{})
}
