package code

import (
	"fmt"
)

// Instruction is a single resolved entry of the instruction tape.
// It is implemented only by Simple and Jump.
type Instruction interface {
	// Opcode returns the operation of the instruction.
	Opcode() Opcode
	// String returns a human readable form of the instruction.
	String() string

	instruction()
}

// Simple is a non-branching instruction.
type Simple struct {
	Op Opcode
}

// Jump is a bracket instruction with the index of its matching bracket.
type Jump struct {
	Op     Opcode
	Target int
}

var (
	_ Instruction = Simple{}
	_ Instruction = Jump{}
)

// MakeSimple creates a Simple instruction. It panics if op is a bracket.
func MakeSimple(op Opcode) Simple {
	if !op.Valid() || op.IsJump() {
		panic(fmt.Sprintf("simple instruction with opcode %v", op))
	}
	return Simple{Op: op}
}

// MakeJump creates a Jump instruction. It panics if op is not a bracket.
func MakeJump(op Opcode, target int) Jump {
	if !op.IsJump() {
		panic(fmt.Sprintf("jump instruction with opcode %v", op))
	}
	return Jump{Op: op, Target: target}
}

func (s Simple) Opcode() Opcode { return s.Op }

func (s Simple) String() string { return s.Op.String() }

func (Simple) instruction() {}

func (j Jump) Opcode() Opcode { return j.Op }

func (j Jump) String() string { return fmt.Sprintf("%v@%d", j.Op, j.Target) }

func (Jump) instruction() {}
