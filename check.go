package main

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"nescart/hw/mappers"
	"nescart/ines"
	"nescart/log"
)

type checkResult struct {
	path  string
	board *mappers.Board
	err   error
}

func checkRom(path string) checkResult {
	rom, err := ines.ReadRom(path)
	if err != nil {
		return checkResult{path: path, err: err}
	}
	board, err := mappers.Load(rom)
	return checkResult{path: path, board: board, err: err}
}

// checkMain loads all roms, using at most jobs goroutines, and prints one
// line per rom, in the order they were given. It returns the number of roms
// that failed to load.
func checkMain(paths []string, jobs int, w io.Writer) int {
	results := make([]checkResult, len(paths))

	var g errgroup.Group
	g.SetLimit(max(1, jobs))
	for i, path := range paths {
		g.Go(func() error {
			results[i] = checkRom(path)
			return nil
		})
	}
	g.Wait()

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s [%s] %v\n", res.path, ines.KindOf(res.err), res.err)
			continue
		}
		fmt.Fprintf(w, "OK   %s %s\n", res.path, res.board)
	}

	log.ModEmu.InfoZ("check done").
		Int("roms", len(paths)).
		Int("failed", failed).
		End()
	return failed
}
