package compiler

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bf/code"
)

const helloWorld = "++++++++++[>+++++++>++++++++++>+++>+<<<<-]>++.>+.+++++++..+++.>++.<<+++++++++++++++.>.+++.------.--------.>+.>."

func doCompile(t *testing.T, source string) *code.Program {
	comp := &Compiler{}
	prog, err := comp.Parse(strings.NewReader(source))
	if err != nil {
		t.Fatalf("%q: %v", source, err)
	}
	return prog
}

func TestCompiler_Simple(t *testing.T) {
	assert := assert.New(t)

	prog := doCompile(t, "+-><.,")

	expected := []code.Instruction{
		code.Simple{Op: code.OP_INCREMENT},
		code.Simple{Op: code.OP_DECREMENT},
		code.Simple{Op: code.OP_RIGHT},
		code.Simple{Op: code.OP_LEFT},
		code.Simple{Op: code.OP_OUTPUT},
		code.Simple{Op: code.OP_INPUT},
	}
	assert.Equal(expected, prog.Code)
	assert.Equal(6, len(prog.Source))
}

func TestCompiler_Empty(t *testing.T) {
	assert := assert.New(t)

	for _, source := range []string{"", "hello world", " \n\t\r", "#!/usr/bin/env bf\n"} {
		prog := doCompile(t, source)
		assert.Equal(0, prog.Len(), source)
		assert.NoError(prog.Validate())
	}
}

func TestCompiler_Loop(t *testing.T) {
	assert := assert.New(t)

	prog := doCompile(t, "+[-]")

	expected := []code.Instruction{
		code.Simple{Op: code.OP_INCREMENT},
		code.Jump{Op: code.OP_LOOP, Target: 3},
		code.Simple{Op: code.OP_DECREMENT},
		code.Jump{Op: code.OP_END, Target: 1},
	}
	assert.Equal(expected, prog.Code)
}

func TestCompiler_EmptyLoop(t *testing.T) {
	assert := assert.New(t)

	prog := doCompile(t, "[]")

	expected := []code.Instruction{
		code.Jump{Op: code.OP_LOOP, Target: 1},
		code.Jump{Op: code.OP_END, Target: 0},
	}
	assert.Equal(expected, prog.Code)
}

func TestCompiler_Nested(t *testing.T) {
	assert := assert.New(t)

	// Indexes:   0 1 2 3 4 5 6 7
	prog := doCompile(t, "[ [ ] [ [ ] ] ]")

	targets := map[int]int{0: 7, 1: 2, 3: 6, 4: 5}
	for open, end := range targets {
		assert.Equal(code.Jump{Op: code.OP_LOOP, Target: end}, prog.Code[open])
		assert.Equal(code.Jump{Op: code.OP_END, Target: open}, prog.Code[end])
	}
	assert.NoError(prog.Validate())
}

func TestCompiler_Positions(t *testing.T) {
	assert := assert.New(t)

	prog := doCompile(t, "ab+\n  [x\n]")

	assert.Equal([]code.Position{
		{Offset: 2, Line: 1, Column: 3},
		{Offset: 6, Line: 2, Column: 3},
		{Offset: 9, Line: 3, Column: 1},
	}, prog.Source)
}

func TestCompiler_Unmatched(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source   string
		unclosed bool
		line     int
		column   int
	}){
		{"]", false, 1, 1},
		{"+]", false, 1, 2},
		{"[]]", false, 1, 3},
		{"[", true, 1, 1},
		{"[[]", true, 1, 1},
		{"[]\n[ [ ]", true, 2, 1},
		{"[[", true, 1, 2},
		{"][", false, 1, 1},
	}

	for _, entry := range table {
		comp := &Compiler{}
		prog, err := comp.Parse(strings.NewReader(entry.source))
		assert.Nil(prog, entry.source)
		assert.ErrorIs(err, ErrBracketUnmatched, entry.source)
		assert.Equal(entry.unclosed, errors.Is(err, ErrBracketUnclosed), entry.source)

		var syntax *ErrSyntax
		if assert.ErrorAs(err, &syntax, entry.source) {
			assert.Equal(entry.line, syntax.Line, entry.source)
			assert.Equal(entry.column, syntax.Column, entry.source)
		}
	}
}

func TestCompiler_Capacity(t *testing.T) {
	assert := assert.New(t)

	comp := &Compiler{Config: Config{Capacity: 4}}

	prog, err := comp.Parse(strings.NewReader("++++"))
	assert.NoError(err)
	assert.Equal(4, prog.Len())

	prog, err = comp.Parse(strings.NewReader("++ comment ++ +"))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrCapacityExceeded)

	var syntax *ErrSyntax
	if assert.ErrorAs(err, &syntax) {
		assert.Equal(14, syntax.Offset)
	}

	// Capacity is checked before the unmatched bracket would be noticed.
	_, err = comp.Parse(strings.NewReader("+++++]"))
	assert.ErrorIs(err, ErrCapacityExceeded)
}

func TestCompiler_Nesting(t *testing.T) {
	assert := assert.New(t)

	comp := &Compiler{Config: Config{Nesting: 2}}

	_, err := comp.Parse(strings.NewReader("[[]][[]]"))
	assert.NoError(err)

	_, err = comp.Parse(strings.NewReader("[[[]]]"))
	assert.ErrorIs(err, ErrStackFull)

	var syntax *ErrSyntax
	if assert.ErrorAs(err, &syntax) {
		assert.Equal(3, syntax.Column)
	}
}

func TestCompiler_Config(t *testing.T) {
	assert := assert.New(t)

	comp := &Compiler{Config: Config{Capacity: -1}}
	_, err := comp.Parse(strings.NewReader("+"))
	assert.ErrorIs(err, ErrConfigInvalid)

	comp = &Compiler{Config: Config{Nesting: -1}}
	_, err = comp.Parse(strings.NewReader("+"))
	assert.ErrorIs(err, ErrConfigInvalid)

	cfg, err := Config{}.Normalize()
	assert.NoError(err)
	assert.Equal(DefaultConfig(), cfg)
}

func TestCompiler_ReadError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("disk on fire")

	comp := &Compiler{}
	_, err := comp.Parse(iotest.ErrReader(failure))
	assert.ErrorIs(err, failure)

	var read *ErrRead
	assert.ErrorAs(err, &read)
}

func TestCompiler_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	sources := []string{
		helloWorld,
		"This [ is ] a comment, with. punctuation+-<>",
		"++++,..>+++[]--<-",
	}

	for _, source := range sources {
		skeleton := strings.Map(func(r rune) rune {
			if strings.ContainsRune("+-<>.,[]", r) {
				return r
			}
			return -1
		}, source)

		prog := doCompile(t, source)
		assert.Equal(skeleton, prog.String())
		assert.Equal(skeleton, doCompile(t, prog.String()).String())
	}
}

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	prog, err := Compile([]byte(helloWorld), DefaultConfig())
	assert.NoError(err)
	assert.NoError(prog.Validate())
	assert.Equal(helloWorld, prog.String())

	_, err = Compile([]byte("]"), Config{})
	assert.ErrorIs(err, ErrBracketUnmatched)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}

	assert.Equal("30000", defines["DEFAULT_CAPACITY"])
	assert.Equal("0", defines["DEFAULT_NESTING"])
}
