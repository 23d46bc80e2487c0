package code

// Opcode is one of the eight recognised source characters.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_INCREMENT = Opcode(0) // +
	OP_DECREMENT = Opcode(1) // -
	OP_RIGHT     = Opcode(2) // >
	OP_LEFT      = Opcode(3) // <
	OP_OUTPUT    = Opcode(4) // .
	OP_INPUT     = Opcode(5) // ,
	OP_LOOP      = Opcode(6) // [
	OP_END       = Opcode(7) // ]
)

// ParseOpcode returns the opcode for a source byte. Any other byte is a
// comment, and ok is false.
func ParseOpcode(c byte) (op Opcode, ok bool) {
	ok = true
	switch c {
	case '+':
		op = OP_INCREMENT
	case '-':
		op = OP_DECREMENT
	case '>':
		op = OP_RIGHT
	case '<':
		op = OP_LEFT
	case '.':
		op = OP_OUTPUT
	case ',':
		op = OP_INPUT
	case '[':
		op = OP_LOOP
	case ']':
		op = OP_END
	default:
		ok = false
	}

	return
}

// IsJump returns true for the two bracket opcodes.
func (op Opcode) IsJump() bool {
	return op == OP_LOOP || op == OP_END
}

// Valid returns true if op is one of the eight opcodes.
func (op Opcode) Valid() bool {
	return op >= OP_INCREMENT && op <= OP_END
}

// Partner returns the opposite bracket of a jump opcode.
func (op Opcode) Partner() Opcode {
	switch op {
	case OP_LOOP:
		return OP_END
	case OP_END:
		return OP_LOOP
	}

	return op
}
