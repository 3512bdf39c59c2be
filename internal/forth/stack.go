package forth

// Stack is the LIFO of ints that all words operate on; the last element is
// the top of the stack.
type Stack []int

// Values returns the stack contents, bottom first. The returned slice aliases
// the stack.
func (s Stack) Values() []int { return s }

// Len returns the number of values on the stack.
func (s Stack) Len() int { return len(s) }

// Push pushes values in order, so the last one ends up on top.
func (s *Stack) Push(vals ...int) { *s = append(*s, vals...) }

// Pop removes and returns the top value.
func (s *Stack) Pop() (int, error) {
	i := len(*s) - 1
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	val := (*s)[i]
	*s = (*s)[:i]
	return val, nil
}

// Peek returns the top value without removing it.
func (s Stack) Peek() (int, error) {
	if len(s) == 0 {
		return 0, ErrStackUnderflow
	}
	return s[len(s)-1], nil
}

// need fails with ErrStackUnderflow unless at least n values are present.
func (s Stack) need(n int) error {
	if len(s) < n {
		return ErrStackUnderflow
	}
	return nil
}

// pop2 pops b then a, returning them in push order.
func (s *Stack) pop2() (a, b int, err error) {
	if err := s.need(2); err != nil {
		return 0, 0, err
	}
	i := len(*s) - 2
	a, b = (*s)[i], (*s)[i+1]
	*s = (*s)[:i]
	return a, b, nil
}
