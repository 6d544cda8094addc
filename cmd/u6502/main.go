// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/u6502/cpu"
	"github.com/ezrec/u6502/emulator"
)

func main() {
	var compile string
	var limit int
	var dump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to compile and run")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to execute (0 for no limit)")
	flag.BoolVar(&dump, "d", false, "Dump machine state on exit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	machine := emulator.NewMachine()
	machine.Verbose = verbose

	prog := &cpu.Program{}

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{}
		for attr, val := range machine.Defines() {
			asm.Predefine(attr, val)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	machine.Program = prog

	err := machine.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = machine.Run(limit)
	if err != nil {
		log.Fatal(err)
	}

	if dump {
		fmt.Print(machine.Cpu.String())
	}
}
