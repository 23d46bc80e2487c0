// Package code defines the instruction tape shared by the compiler and the
// virtual machine.
//
// A Program is an ordered sequence of Instructions. Each Instruction is
// either a Simple operation (cell arithmetic, pointer movement, I/O) or a
// Jump whose Target is the index of its matching bracket. A Program also
// records the source Position of every Instruction for diagnostics.
package code
