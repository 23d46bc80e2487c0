// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ezrec/bf/code"
)

// Machine is the execution state of one program run.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Config  Config        // Memory configuration.
	Program *code.Program // Program being executed.
	Tape    Tape          // Byte I/O.

	Pc    int      // Program counter, index into Program.Code.
	Dp    int      // Data pointer, index into Cell.
	Cell  []uint32 // Data cells, each masked to Config.CellBits.
	Ticks int      // Instructions executed since reset.

	mask uint32
}

// NewMachine creates a machine with an empty program.
func NewMachine(config Config) (m *Machine) {
	m = &Machine{
		Config:  config,
		Program: &code.Program{},
	}

	return
}

// Execute runs prog to completion on a freshly reset machine.
// The final machine state is returned even when err is not nil.
func Execute(prog *code.Program, input io.Reader, output io.Writer, config Config) (m *Machine, err error) {
	m = NewMachine(config)
	m.Program = prog
	m.Tape.Input = input
	m.Tape.Output = output

	err = m.Reset()
	if err != nil {
		return
	}

	err = m.Run()
	return
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	var cell string
	if m.Dp >= 0 && m.Dp < len(m.Cell) {
		cell = fmt.Sprintf("%d", m.Cell[m.Dp])
	} else {
		cell = "-"
	}

	inst := "-"
	if m.Program != nil {
		if dbg := m.Program.Debug(m.Pc); dbg.Instruction != nil {
			inst = dbg.Instruction.String()
		}
	}

	text += fmt.Sprintf("% 6s: %d\n", "pc", m.Pc)
	text += fmt.Sprintf("% 6s: %v\n", "code", inst)
	text += fmt.Sprintf("% 6s: %d\n", "dp", m.Dp)
	text += fmt.Sprintf("% 6s: %v\n", "cell", cell)
	text += fmt.Sprintf("% 6s: %d\n", "ticks", m.Ticks)

	return
}

// Reset the machine state.
// - Checks the configuration and the program.
// - Zeros all cells, the pointers and the tick counter.
// - Rewinds the tape.
func (m *Machine) Reset() (err error) {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	m.Config, err = m.Config.Normalize()
	if err != nil {
		return
	}

	if m.Program == nil {
		m.Program = &code.Program{}
	}

	err = m.Program.Validate()
	if err != nil {
		return
	}

	if len(m.Cell) != m.Config.Cells {
		m.Cell = make([]uint32, m.Config.Cells)
	} else {
		clear(m.Cell)
	}

	m.mask = m.Config.Mask()
	m.Pc = 0
	m.Dp = 0
	m.Ticks = 0
	m.Tape.Rewind()

	return
}

// Fetch returns the instruction at the program counter.
func (m *Machine) Fetch() (inst code.Instruction, err error) {
	if m.Cell == nil {
		err = ErrMachineReset
		return
	}

	if m.Pc >= m.Program.Len() {
		err = ErrPcEmpty
		return
	}

	inst = m.Program.Code[m.Pc]
	return
}

// Tick executes a single instruction.
// ErrPcEmpty is returned once the program has finished.
func (m *Machine) Tick() (err error) {
	inst, err := m.Fetch()
	if err != nil {
		return
	}

	err = m.Execute(inst)
	return
}

// Run executes instructions until the end of the program.
func (m *Machine) Run() (err error) {
	for {
		err = m.Tick()
		if errors.Is(err, ErrPcEmpty) {
			return nil
		}
		if err != nil {
			return
		}
	}
}

// Execute executes a single instruction at the current program counter.
func (m *Machine) Execute(inst code.Instruction) (err error) {
	if m.Cell == nil {
		err = ErrMachineReset
		return
	}

	defer func() {
		if err != nil && inst != nil {
			err = errors.Join(ErrOpcode(inst.Opcode()), err)
		}
	}()

	if m.Verbose {
		log.Printf("%05d: %v dp=%d cell=%d", m.Pc, inst, m.Dp, m.Cell[m.Dp])
	}

	next_pc := m.Pc + 1

	switch inst := inst.(type) {
	case code.Simple:
		switch inst.Op {
		case code.OP_INCREMENT:
			m.Cell[m.Dp] = (m.Cell[m.Dp] + 1) & m.mask
		case code.OP_DECREMENT:
			m.Cell[m.Dp] = (m.Cell[m.Dp] - 1) & m.mask
		case code.OP_RIGHT:
			err = m.move(1)
		case code.OP_LEFT:
			err = m.move(-1)
		case code.OP_OUTPUT:
			err = m.Tape.Send(byte(m.Cell[m.Dp]))
		case code.OP_INPUT:
			err = m.input()
		default:
			err = ErrOpcodeInvalid
		}
	case code.Jump:
		switch inst.Op {
		case code.OP_LOOP:
			// Skip the body, landing just past the matching close.
			if m.Cell[m.Dp] == 0 {
				next_pc = inst.Target + 1
			}
		case code.OP_END:
			// Repeat the body, landing just past the matching open.
			if m.Cell[m.Dp] != 0 {
				next_pc = inst.Target + 1
			}
		default:
			err = ErrOpcodeInvalid
		}
	default:
		err = ErrOpcodeInvalid
	}

	if err != nil {
		return
	}

	m.Pc = next_pc
	m.Ticks++

	return
}

// move adjusts the data pointer by delta, applying the pointer policy.
func (m *Machine) move(delta int) (err error) {
	dp := m.Dp + delta
	cells := len(m.Cell)

	if dp < 0 || dp >= cells {
		if m.Config.Pointer != POINTER_WRAP {
			err = ErrPointerRange{Pointer: dp, Cells: cells}
			return
		}
		dp = ((dp % cells) + cells) % cells
	}

	m.Dp = dp
	return
}

// input stores the next input byte, or the end of input value.
func (m *Machine) input() (err error) {
	value, ok, err := m.Tape.Receive()
	if err != nil {
		return
	}

	if ok {
		m.Cell[m.Dp] = uint32(value) & m.mask
		return
	}

	switch m.Config.EOF {
	case EOF_ZERO:
		m.Cell[m.Dp] = 0
	case EOF_ONES:
		m.Cell[m.Dp] = m.mask
	case EOF_KEEP:
		// unchanged
	}

	return
}
