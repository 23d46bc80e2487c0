package vm

import (
	"errors"
	"io"
)

// maxEmptyReads bounds the number of consecutive zero byte reads
// tolerated from a misbehaving io.Reader.
const maxEmptyReads = 100

// Tape moves single bytes between the machine and its host streams.
// A nil Input is an empty stream; a nil Output discards everything.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Received int // Bytes read since the last Rewind.
	Sent     int // Bytes written since the last Rewind.

	ended bool
}

// Rewind clears the counters and the end of input condition.
func (tc *Tape) Rewind() {
	tc.Received = 0
	tc.Sent = 0
	tc.ended = false
}

// Ended returns true once the input has reported end of stream.
func (tc *Tape) Ended() bool {
	return tc.ended
}

// Receive reads exactly one byte from the input.
// At end of input, ok is false and err is nil.
func (tc *Tape) Receive() (value byte, ok bool, err error) {
	if tc.Input == nil || tc.ended {
		tc.ended = true
		return
	}

	var one [1]byte
	for range maxEmptyReads {
		var n int
		n, err = tc.Input.Read(one[:])
		if n == 1 {
			if errors.Is(err, io.EOF) {
				tc.ended = true
			}
			tc.Received++
			return one[0], true, nil
		}
		if errors.Is(err, io.EOF) {
			tc.ended = true
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	err = io.ErrNoProgress
	return
}

// Send writes exactly one byte to the output.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		tc.Sent++
		return
	}

	n, err := tc.Output.Write([]byte{value})
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	if err != nil {
		return
	}

	tc.Sent++
	return
}
