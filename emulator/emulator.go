// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"

	"github.com/ezrec/bf/code"
	"github.com/ezrec/bf/compiler"
	"github.com/ezrec/bf/config"
	"github.com/ezrec/bf/internal"
	"github.com/ezrec/bf/vm"
)

const (
	CONTEXT_TICKS = 4096 // Ticks between checks of the run context.
)

// Emulator state. Compiler + machine.
type Emulator struct {
	Verbose     bool // If set, enables verbose logging.
	*vm.Machine      // Reference to the machine simulation.

	Compiler compiler.Compiler // Compiler for new programs.
}

// NewEmulator creates a new emulator.
func NewEmulator(cfg config.Config) (emu *Emulator) {
	emu = &Emulator{
		Machine:  vm.NewMachine(cfg.Machine),
		Compiler: compiler.Compiler{Config: cfg.Compiler},
	}

	return
}

// Run compiles source and executes it with the default configuration,
// returning everything the program wrote.
func Run(source []byte, input io.Reader) (output []byte, err error) {
	emu := NewEmulator(config.Default())

	err = emu.Compile(bytes.NewReader(source))
	if err != nil {
		return
	}

	out := &bytes.Buffer{}
	emu.Tape.Input = input
	emu.Tape.Output = out

	err = emu.Run(context.Background())
	output = out.Bytes()
	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(compiler.Defines(), vm.Defines())
}

// Compile replaces the program with one compiled from in.
func (emu *Emulator) Compile(in io.Reader) (err error) {
	emu.Compiler.Verbose = emu.Verbose

	prog, err := emu.Compiler.Parse(in)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset the machine state.
func (emu *Emulator) Reset() (err error) {
	emu.Machine.Verbose = emu.Verbose

	return emu.Machine.Reset()
}

// Position returns the source position of the next instruction.
func (emu *Emulator) Position() code.Position {
	return emu.Program.Debug(emu.Pc).Position
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	pc := emu.Pc
	pos := emu.Position()

	err = emu.Machine.Tick()
	if errors.Is(err, vm.ErrPcEmpty) {
		err = nil
		done = true
		return
	}

	if err != nil {
		err = &ErrRuntime{Position: pos, Pc: pc, Err: err}
	}

	return
}

// Run resets the machine and ticks until the program ends, an error
// occurs, or ctx is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done := false; !done; {
		if emu.Ticks%CONTEXT_TICKS == 0 {
			err = ctx.Err()
			if err != nil {
				return
			}
		}

		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
