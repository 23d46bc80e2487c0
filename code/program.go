// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package code

import (
	"fmt"
	"iter"
	"strings"
)

// Position is the location of an instruction in the source text.
type Position struct {
	Offset int // Byte offset, from 0.
	Line   int // Line number, from 1.
	Column int // Column number, from 1.
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Program is a compiled instruction tape.
type Program struct {
	Code   []Instruction // Resolved instructions.
	Source []Position    // Source position of each instruction, if known.
}

// Debug associates an instruction with its source position.
type Debug struct {
	Instruction
	Position
	Pc int
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Code)
}

// Append adds an instruction, returning its index.
func (prog *Program) Append(inst Instruction, pos Position) (pc int) {
	pc = len(prog.Code)
	prog.Code = append(prog.Code, inst)
	prog.Source = append(prog.Source, pos)
	return
}

// Debug returns the instruction and position at pc.
// Out of range values return a Debug with a nil Instruction.
func (prog *Program) Debug(pc int) (dbg Debug) {
	if pc < 0 || pc >= len(prog.Code) {
		return
	}

	dbg = Debug{
		Instruction: prog.Code[pc],
		Pc:          pc,
	}
	if pc < len(prog.Source) {
		dbg.Position = prog.Source[pc]
	}

	return
}

// All iterates over the instructions and their indexes.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, inst Instruction) bool) {
		for pc, inst := range prog.Code {
			if !yield(pc, inst) {
				return
			}
		}
	}
}

// String returns the opcode characters of the program, without comments.
func (prog *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(prog.Code))
	for _, inst := range prog.Code {
		sb.WriteString(inst.Opcode().String())
	}
	return sb.String()
}

// Validate checks that every instruction is well formed and that the
// jumps form a perfect bracket matching.
func (prog *Program) Validate() (err error) {
	if len(prog.Source) != 0 && len(prog.Source) != len(prog.Code) {
		return ErrSourceMismatch
	}

	for pc, inst := range prog.Code {
		switch inst := inst.(type) {
		case Simple:
			if !inst.Op.Valid() || inst.Op.IsJump() {
				return ErrInstructionInvalid{Pc: pc, Reason: f("simple with opcode %v", inst.Op)}
			}
		case Jump:
			if !inst.Op.IsJump() {
				return ErrInstructionInvalid{Pc: pc, Reason: f("jump with opcode %v", inst.Op)}
			}
			if inst.Target < 0 || inst.Target >= len(prog.Code) {
				return ErrInstructionInvalid{Pc: pc, Reason: f("target %d out of range", inst.Target)}
			}
			partner, ok := prog.Code[inst.Target].(Jump)
			if !ok || partner.Op != inst.Op.Partner() || partner.Target != pc {
				return ErrInstructionInvalid{Pc: pc, Reason: f("target %d is not its partner", inst.Target)}
			}
			if inst.Op == OP_LOOP && inst.Target < pc {
				return ErrInstructionInvalid{Pc: pc, Reason: f("loop target %d precedes it", inst.Target)}
			}
		default:
			return ErrInstructionInvalid{Pc: pc, Reason: f("unknown instruction")}
		}
	}

	// Mutual partners that appear in order still need proper nesting;
	// "[ [ ] ]" paired crosswise as 0-2, 1-3 must be rejected.
	var stack []int
	for pc, inst := range prog.Code {
		jump, ok := inst.(Jump)
		if !ok {
			continue
		}
		if jump.Op == OP_LOOP {
			stack = append(stack, pc)
			continue
		}
		top := len(stack) - 1
		if top < 0 || stack[top] != jump.Target {
			return ErrInstructionInvalid{Pc: pc, Reason: f("brackets overlap")}
		}
		stack = stack[:top]
	}

	if len(stack) != 0 {
		err = ErrProgramInvalid
	}

	return
}
