package vm

import (
	"errors"

	"github.com/ezrec/bf/code"
	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrPcEmpty       = errors.New(f("pc past end of program"))
	ErrMachineReset  = errors.New(f("machine not reset"))
	ErrDataPointer   = errors.New(f("data pointer out of range"))
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrConfigInvalid = errors.New(f("machine configuration invalid"))
)

type ErrOpcode code.Opcode

func (eo ErrOpcode) Error() string {
	return f("opcode %v", code.Opcode(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrPointerRange reports the data pointer value that left the cells.
type ErrPointerRange struct {
	Pointer int
	Cells   int
}

func (err ErrPointerRange) Error() string {
	return f("data pointer %d outside %d cells", err.Pointer, err.Cells)
}

func (err ErrPointerRange) Is(target error) bool {
	return target == ErrDataPointer
}

type ErrCellBits int

func (err ErrCellBits) Error() string {
	return f("cell width %d not one of 8, 16, 32", int(err))
}

func (err ErrCellBits) Is(target error) bool {
	return target == ErrConfigInvalid
}

type ErrPolicyUnknown string

func (err ErrPolicyUnknown) Error() string {
	return f("policy '%v' unknown", string(err))
}

func (err ErrPolicyUnknown) Is(target error) bool {
	return target == ErrConfigInvalid
}
