package compiler

import (
	"errors"

	"github.com/ezrec/bf/code"
	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	// Compile errors
	ErrBracketUnmatched = errors.New(f("unmatched bracket"))
	ErrBracketUnclosed  = errors.New(f("unclosed bracket"))
	ErrCapacityExceeded = errors.New(f("instruction capacity exceeded"))
	ErrStackFull        = errors.New(f("bracket nesting too deep"))

	// Configuration errors
	ErrConfigInvalid = errors.New(f("compiler configuration invalid"))
)

// ErrSyntax locates a compile error in the source text.
type ErrSyntax struct {
	code.Position
	Err error
}

func (err *ErrSyntax) Error() string {
	return f("line %d col %d %v", err.Line, err.Column, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRead wraps a failure of the source reader.
type ErrRead struct {
	Offset int
	Err    error
}

func (err *ErrRead) Error() string {
	return f("read at offset %d %v", err.Offset, err.Err)
}

func (err *ErrRead) Unwrap() error {
	return err.Err
}
