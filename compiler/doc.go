// Package compiler translates source text into a resolved instruction tape.
//
// The compiler makes a single pass over the source bytes. The eight opcode
// characters become instructions; every other byte is a comment and is
// discarded. Loop brackets are paired with a LIFO stack as they are read,
// so each Jump in the resulting code.Program carries the index of its
// partner and the virtual machine never scans for brackets at run time.
package compiler
