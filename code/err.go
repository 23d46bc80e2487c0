package code

import (
	"errors"

	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	ErrProgramInvalid = errors.New(f("program invalid"))
	ErrSourceMismatch = errors.New(f("source positions do not match instructions"))
)

// ErrInstructionInvalid describes a malformed instruction at an index.
type ErrInstructionInvalid struct {
	Pc     int
	Reason string
}

func (err ErrInstructionInvalid) Error() string {
	return f("instruction %d %v", err.Pc, err.Reason)
}

func (err ErrInstructionInvalid) Is(target error) bool {
	return target == ErrProgramInvalid
}
