package ines

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-faster/jx"
)

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintInfos writes a human readable description of the rom to w.
func (rom *Rom) PrintInfos(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "File:\t%s\n", rom.Path)
	fmt.Fprintf(tw, "Format:\t%s\n", rom.Version)
	fmt.Fprintf(tw, "Mapper:\t%d\n", rom.Mapper)
	if rom.IsNES20() {
		fmt.Fprintf(tw, "Submapper:\t%d\n", rom.Submapper)
	}
	fmt.Fprintf(tw, "PRG-ROM:\t%d x 16KB (%d bytes)\n", rom.PRGROMBanks, len(rom.PRGROM))
	if rom.HasCHRRAM() {
		fmt.Fprintf(tw, "CHR-ROM:\tnone, %d bytes of CHR-RAM\n", len(rom.CHRROM))
	} else {
		fmt.Fprintf(tw, "CHR-ROM:\t%d x 8KB (%d bytes)\n", rom.CHRROMBanks, len(rom.CHRROM))
	}
	fmt.Fprintf(tw, "PRG-RAM:\t%d bytes\n", len(rom.PRGRAM))
	fmt.Fprintf(tw, "Mirroring:\t%s\n", rom.Mirroring())
	fmt.Fprintf(tw, "Battery:\t%s\n", yesno(rom.HasBattery()))
	fmt.Fprintf(tw, "VS Unisystem:\t%s\n", yesno(rom.IsVSUnisystem()))
	fmt.Fprintf(tw, "PlayChoice-10:\t%s\n", yesno(rom.IsPlaychoice10()))
	if rom.IsNES20() {
		fmt.Fprintf(tw, "Declared PRG-RAM:\t%d bytes (+%d non-volatile)\n", rom.PRGRAMBytes(), rom.PRGNVRAMBytes())
		fmt.Fprintf(tw, "Declared CHR-RAM:\t%d bytes (+%d non-volatile)\n", rom.CHRRAMBytes(), rom.CHRNVRAMBytes())
		fmt.Fprintf(tw, "TV mode:\t0x%02x\n", rom.TVMode)
		fmt.Fprintf(tw, "VS data:\t0x%02x\n", rom.VSData)
	}
	return tw.Flush()
}

// EncodeJSON writes the rom description as a JSON object.
func (rom *Rom) EncodeJSON(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("path")
	e.Str(rom.Path)
	e.FieldStart("format")
	e.Str(rom.Version.String())
	e.FieldStart("version")
	e.UInt8(uint8(rom.Version))
	e.FieldStart("mapper")
	e.UInt16(rom.Mapper)
	e.FieldStart("submapper")
	e.UInt8(rom.Submapper)
	e.FieldStart("flags")
	e.UInt8(uint8(rom.Flags))
	e.FieldStart("mirroring")
	e.Str(rom.Mirroring().String())
	e.FieldStart("battery")
	e.Bool(rom.HasBattery())
	e.FieldStart("prg_rom_banks")
	e.UInt16(rom.PRGROMBanks)
	e.FieldStart("chr_rom_banks")
	e.UInt16(rom.CHRROMBanks)
	e.FieldStart("prg_rom_size")
	e.Int(len(rom.PRGROM))
	e.FieldStart("chr_size")
	e.Int(len(rom.CHRROM))
	e.FieldStart("chr_ram")
	e.Bool(rom.HasCHRRAM())
	e.FieldStart("prg_ram_size")
	e.Int(len(rom.PRGRAM))
	if rom.IsNES20() {
		e.FieldStart("prg_ram_encoded")
		e.UInt8(rom.PRGRAMSize)
		e.FieldStart("chr_ram_encoded")
		e.UInt8(rom.CHRRAMSize)
		e.FieldStart("tv_mode")
		e.UInt8(rom.TVMode)
		e.FieldStart("vs_data")
		e.UInt8(rom.VSData)
	}
	e.ObjEnd()
}
