package emulator

import (
	"github.com/ezrec/bf/code"
	"github.com/ezrec/bf/translate"
)

var f = translate.From

// ErrRuntime indicates the source location of a runtime error.
type ErrRuntime struct {
	code.Position
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("line %d col %d pc %d %v", err.Line, err.Column, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
