// Package vm implements the virtual machine that executes a compiled
// instruction tape.
//
// The Machine owns a fixed number of unsigned cells of a configured bit
// width, a data pointer (Dp) into the cells, and a program counter (Pc)
// into the code.Program. Cell arithmetic wraps at the cell width. Moving
// the data pointer outside the cells is an error unless the machine is
// configured to wrap around. Input and output are single bytes moved
// through a Tape.
package vm
