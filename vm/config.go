package vm

import (
	"fmt"
	"iter"
	"maps"
)

const (
	DEFAULT_CELLS     = 30000 // Number of data cells.
	DEFAULT_CELL_BITS = 16    // Width of a data cell.
)

var _vm_defines = map[string]string{
	"DEFAULT_CELLS":     fmt.Sprintf("%d", DEFAULT_CELLS),
	"DEFAULT_CELL_BITS": fmt.Sprintf("%d", DEFAULT_CELL_BITS),
}

// EOFPolicy selects the value stored by an input instruction once the
// input is exhausted.
type EOFPolicy int

//go:generate go tool stringer -linecomment -type=EOFPolicy,PointerPolicy -output=policy_string.go
const (
	EOF_ZERO = EOFPolicy(0) // zero
	EOF_ONES = EOFPolicy(1) // ones
	EOF_KEEP = EOFPolicy(2) // keep
)

// PointerPolicy selects what happens when the data pointer leaves the cells.
type PointerPolicy int

const (
	POINTER_FAIL = PointerPolicy(0) // fail
	POINTER_WRAP = PointerPolicy(1) // wrap
)

func (p EOFPolicy) Valid() bool {
	return p >= EOF_ZERO && p <= EOF_KEEP
}

func (p EOFPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, ErrConfigInvalid
	}
	return []byte(p.String()), nil
}

func (p *EOFPolicy) UnmarshalText(text []byte) error {
	for value := EOF_ZERO; value <= EOF_KEEP; value++ {
		if value.String() == string(text) {
			*p = value
			return nil
		}
	}
	return ErrPolicyUnknown(text)
}

func (p PointerPolicy) Valid() bool {
	return p == POINTER_FAIL || p == POINTER_WRAP
}

func (p PointerPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, ErrConfigInvalid
	}
	return []byte(p.String()), nil
}

func (p *PointerPolicy) UnmarshalText(text []byte) error {
	for value := POINTER_FAIL; value <= POINTER_WRAP; value++ {
		if value.String() == string(text) {
			*p = value
			return nil
		}
	}
	return ErrPolicyUnknown(text)
}

// Config describes the memory of the machine. Zero values select the
// defaults.
type Config struct {
	Cells    int           `toml:"cells"`     // Number of data cells.
	CellBits int           `toml:"cell_bits"` // Cell width: 8, 16 or 32.
	EOF      EOFPolicy     `toml:"eof"`       // Input value at end of input.
	Pointer  PointerPolicy `toml:"pointer"`   // Data pointer range policy.
}

// DefaultConfig returns the default machine configuration.
func DefaultConfig() Config {
	return Config{
		Cells:    DEFAULT_CELLS,
		CellBits: DEFAULT_CELL_BITS,
		EOF:      EOF_ZERO,
		Pointer:  POINTER_FAIL,
	}
}

// Defines returns the machine constants for configuration scripts.
func Defines() iter.Seq2[string, string] {
	return maps.All(_vm_defines)
}

// Normalize fills zero fields with defaults and checks the result.
func (cfg Config) Normalize() (out Config, err error) {
	out = cfg
	if out.Cells == 0 {
		out.Cells = DEFAULT_CELLS
	}
	if out.CellBits == 0 {
		out.CellBits = DEFAULT_CELL_BITS
	}

	switch {
	case out.Cells < 0:
		err = ErrConfigInvalid
	case out.CellBits != 8 && out.CellBits != 16 && out.CellBits != 32:
		err = ErrCellBits(out.CellBits)
	case !out.EOF.Valid(), !out.Pointer.Valid():
		err = ErrConfigInvalid
	}

	return
}

// Mask returns the largest value a cell can hold.
func (cfg Config) Mask() uint32 {
	return uint32((uint64(1) << cfg.CellBits) - 1)
}
