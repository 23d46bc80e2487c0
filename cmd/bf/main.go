// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/bf/config"
	"github.com/ezrec/bf/emulator"
)

func main() {
	var compile string
	var literal string
	var settings string
	var save bool
	var input string
	var output string
	var verbose bool
	var cells int
	var bits int
	var eof string
	var pointer string

	flag.StringVar(&compile, "c", "", "source file to compile")
	flag.StringVar(&literal, "e", "", "source text to compile")
	flag.StringVar(&settings, "config", "", ".toml or .star configuration file")
	flag.BoolVar(&save, "s", false, "Print the compiled tape, do not execute")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&cells, "cells", 0, "Number of data cells")
	flag.IntVar(&bits, "bits", 0, "Cell width in bits (8, 16, 32)")
	flag.StringVar(&eof, "eof", "", "End of input value (zero, ones, keep)")
	flag.StringVar(&pointer, "pointer", "", "Data pointer range policy (fail, wrap)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if (len(compile) == 0) == (len(literal) == 0) {
		log.Fatalf("%v: exactly one of -c or -e is required", os.Args[0])
	}

	cfg := config.Default()
	if len(settings) != 0 {
		var err error
		cfg, err = config.Load(settings)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Flags override the configuration file.
	if cells != 0 {
		cfg.Machine.Cells = cells
	}
	if bits != 0 {
		cfg.Machine.CellBits = bits
	}
	if len(eof) != 0 {
		err := cfg.Machine.EOF.UnmarshalText([]byte(eof))
		if err != nil {
			log.Fatalf("-eof: %v", err)
		}
	}
	if len(pointer) != 0 {
		err := cfg.Machine.Pointer.UnmarshalText([]byte(pointer))
		if err != nil {
			log.Fatalf("-pointer: %v", err)
		}
	}

	emu := emulator.NewEmulator(cfg)
	emu.Verbose = verbose

	var source io.Reader
	name := "-e"
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
		source = inf
		name = compile
	} else {
		source = bytes.NewReader([]byte(literal))
	}

	err := emu.Compile(source)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if save {
		fmt.Println(emu.Program.String())
		return
	}

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = emu.Run(ctx)
	if verbose {
		log.Printf("%v: state\n%v", name, emu.String())
	}
	if err != nil {
		stop()
		log.Fatalf("%v: %v", name, err)
	}
}
