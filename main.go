// main.go - CLI entry point for the MIPS 5-stage pipeline simulator
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/intuitionamiga/mips5sim/internal/loader"
	"github.com/intuitionamiga/mips5sim/internal/memory"
	"github.com/intuitionamiga/mips5sim/internal/monitor"
	"github.com/intuitionamiga/mips5sim/internal/pipeline"
	"github.com/intuitionamiga/mips5sim/internal/regfile"
	"github.com/intuitionamiga/mips5sim/internal/snapshot"
)

// memSize is the fixed size, in bytes, of both the instruction and data
// memories. 16 MiB comfortably covers the classic MIPS text/data base
// addresses (e.g. 0x00400000) used in image files without the CLI
// needing to pre-scan for a tighter bound.
const memSize = 1 << 24

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mips5sim initialPC regFile instMem dataMem numCycles [-forward] [-hazard] [-interactive] [-copy-final-pvs]")
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "mips5sim:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 5 {
		usage()
		return fmt.Errorf("expected 5 positional arguments, got %d", len(args))
	}

	initialPCArg, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		usage()
		return fmt.Errorf("initialPC: %w", err)
	}
	regFileName := args[1]
	instMemFileName := args[2]
	dataMemFileName := args[3]
	numCycles, err := strconv.ParseUint(args[4], 10, 64)
	if err != nil {
		usage()
		return fmt.Errorf("numCycles: %w", err)
	}

	var forward, hazard, interactive, copyFinalPVS bool
	for _, flag := range args[5:] {
		switch flag {
		case "-forward":
			forward = true
		case "-hazard":
			hazard = true
		case "-interactive":
			interactive = true
		case "-copy-final-pvs":
			copyFinalPVS = true
		default:
			usage()
			return fmt.Errorf("unrecognised flag %q", flag)
		}
	}
	if hazard && !forward {
		usage()
		return fmt.Errorf("-hazard requires -forward")
	}

	regs := regfile.New()
	if err := loadRegisterFile(regs, regFileName); err != nil {
		return err
	}

	instMem := memory.New(memSize, memory.LittleEndian)
	if err := loadMemoryImage(instMem, instMemFileName); err != nil {
		return err
	}

	dataMem := memory.New(memSize, memory.LittleEndian)
	if err := loadMemoryImage(dataMem, dataMemFileName); err != nil {
		return err
	}

	cpu := pipeline.New(pipeline.Config{Forwarding: forward, Hazard: hazard}, uint32(initialPCArg-4), instMem, dataMem, regs)

	if interactive && monitor.IsTerminal() {
		if err := monitor.Run(cpu, numCycles, os.Stdout); err != nil {
			return err
		}
	} else {
		cpu.WritePVS(os.Stdout)
		for i := uint64(0); i < numCycles; i++ {
			cpu.AdvanceCycle()
			cpu.WritePVS(os.Stdout)
		}
	}

	if copyFinalPVS {
		if err := snapshot.CopyFinalPVS(cpu); err != nil {
			fmt.Fprintln(os.Stderr, "mips5sim: warning:", err)
		}
	}

	return nil
}

func loadRegisterFile(regs *regfile.File, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("regFile: %w", err)
	}
	defer f.Close()

	words, err := loader.Parse(f)
	if err != nil {
		return err
	}
	for idx, value := range loader.ToRegisterSeeds(words) {
		regs.Set(idx, value)
	}
	return nil
}

func loadMemoryImage(mem *memory.Memory, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	defer f.Close()

	words, err := loader.Parse(f)
	if err != nil {
		return err
	}
	mem.LoadWords(loader.ToMemoryMap(words))
	return nil
}
