package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/go-faster/jx"

	"nescart/config"
	"nescart/hw/mappers"
	"nescart/ines"
)

var version = "devel"

func main() {
	args := parseArgs(os.Args[1:])
	cfg := loadConfig(args.Config)
	cfg.ApplyLog()

	switch args.mode {
	case romInfosMode:
		checkf(romInfosMain(args.RomInfos, os.Stdout), "failed to show rom infos")
	case checkMode:
		jobs := args.Check.Jobs
		if jobs <= 0 {
			jobs = cfg.Jobs()
		}
		if failed := checkMain(args.Check.RomPaths, jobs, os.Stdout); failed != 0 {
			os.Exit(1)
		}
	case versionMode:
		printVersion(os.Stdout)
	}
}

func loadConfig(path string) config.Config {
	if path == "" {
		return config.LoadConfigOrDefault()
	}
	cfg, err := config.Load(path)
	checkf(err, "failed to load configuration")
	return cfg
}

func romInfosMain(args RomInfos, w io.Writer) error {
	rom, err := ines.ReadRom(args.RomPath)
	if err != nil {
		return err
	}

	board := "unsupported"
	if desc, err := mappers.Lookup(rom.Header); err == nil {
		board = desc.Name
	}

	if args.JSON {
		var e jx.Encoder
		e.ObjStart()
		e.FieldStart("rom")
		rom.EncodeJSON(&e)
		e.FieldStart("board")
		e.Str(board)
		e.ObjEnd()
		_, err := fmt.Fprintf(w, "%s\n", e.Bytes())
		return err
	}

	if err := rom.PrintInfos(w); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Board:  %s\n", board)
	return err
}

func printVersion(w io.Writer) {
	v := version
	if bi, ok := debug.ReadBuildInfo(); ok && v == "devel" && bi.Main.Version != "" {
		v = bi.Main.Version
	}
	fmt.Fprintf(w, "nescart %s\n", v)
}
