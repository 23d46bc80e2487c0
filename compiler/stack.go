package compiler

// Stack holds the instruction indexes of loop-open brackets still waiting
// for their loop-close.
type Stack struct {
	Limit int // Maximum depth, or 0 for no limit.
	Data  []int
}

func (s *Stack) Push(pc int) {
	s.Data = append(s.Data, pc)
}

func (s *Stack) Pop() (pc int, ok bool) {
	pc, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return s.Limit > 0 && len(s.Data) >= s.Limit
}

func (s *Stack) Peek() (pc int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
