// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log"

	"github.com/ezrec/bf/code"
)

// Compiler is a single pass compiler from source text to a code.Program.
type Compiler struct {
	Verbose bool   // If set, verbosely logs each emitted instruction.
	Config  Config // Compiler limits.

	stack Stack
	prog  *code.Program
}

// Compile a source buffer with the supplied limits.
func Compile(source []byte, config Config) (prog *code.Program, err error) {
	comp := &Compiler{Config: config}
	return comp.Parse(bytes.NewReader(source))
}

// emit appends an instruction, enforcing the capacity limit first.
func (comp *Compiler) emit(inst code.Instruction, pos code.Position) (pc int, err error) {
	if comp.prog.Len() >= comp.Config.Capacity {
		err = &ErrSyntax{Position: pos, Err: ErrCapacityExceeded}
		return
	}

	pc = comp.prog.Append(inst, pos)

	if comp.Verbose {
		log.Printf("compile: %v %05d: %v", pos, pc, inst)
	}

	return
}

// token compiles a single opcode found at pos.
func (comp *Compiler) token(op code.Opcode, pos code.Position) (err error) {
	switch op {
	case code.OP_INCREMENT, code.OP_DECREMENT, code.OP_RIGHT, code.OP_LEFT, code.OP_OUTPUT, code.OP_INPUT:
		_, err = comp.emit(code.MakeSimple(op), pos)
	case code.OP_LOOP:
		if comp.stack.Full() {
			err = &ErrSyntax{Position: pos, Err: ErrStackFull}
			return
		}
		var pc int
		// Target is patched when the partner is found.
		pc, err = comp.emit(code.MakeJump(code.OP_LOOP, -1), pos)
		if err != nil {
			return
		}
		comp.stack.Push(pc)
	case code.OP_END:
		open, ok := comp.stack.Pop()
		if !ok {
			err = &ErrSyntax{Position: pos, Err: ErrBracketUnmatched}
			return
		}
		var pc int
		pc, err = comp.emit(code.MakeJump(code.OP_END, open), pos)
		if err != nil {
			return
		}
		comp.prog.Code[open] = code.MakeJump(code.OP_LOOP, pc)
	default:
		panic("unknown opcode")
	}

	return
}

// Parse compiles the source text read from in.
func (comp *Compiler) Parse(in io.Reader) (prog *code.Program, err error) {
	comp.Config, err = comp.Config.Normalize()
	if err != nil {
		return
	}

	comp.stack = Stack{Limit: comp.Config.Nesting}
	comp.prog = &code.Program{}
	defer func() { comp.prog = nil }()

	rd := bufio.NewReader(in)
	pos := code.Position{Line: 1, Column: 1}
	for {
		var c byte
		c, err = rd.ReadByte()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			err = &ErrRead{Offset: pos.Offset, Err: err}
			return
		}

		op, ok := code.ParseOpcode(c)
		if ok {
			err = comp.token(op, pos)
			if err != nil {
				return
			}
		}

		pos.Offset++
		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	// The innermost unclosed bracket is reported.
	if open, ok := comp.stack.Pop(); ok {
		err = &ErrSyntax{
			Position: comp.prog.Source[open],
			Err:      errors.Join(ErrBracketUnmatched, ErrBracketUnclosed),
		}
		return
	}

	if comp.Verbose {
		log.Printf("compile: %d instructions", comp.prog.Len())
	}

	prog = comp.prog
	return
}
