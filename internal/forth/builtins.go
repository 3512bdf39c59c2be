package forth

// AddBuiltins defines the primitive words in ws, replacing any existing
// definitions of the same names.
func AddBuiltins(ws *Words) {
	for _, bi := range builtins {
		ws.Set(bi.name, bi.fn)
	}
}

var builtins = []struct {
	name string
	fn   Builtin
}{
	{"+", add},
	{"-", sub},
	{"*", mul},
	{"/", div},
	{"DUP", dup},
	{"DROP", drop},
	{"SWAP", swap},
	{"OVER", over},
}

//// Integer Operations

// Symbol   Name           Function
//    +     add            pop top 2 elements of stack, add, push
func add(s *Stack) error { return binop(s, func(a, b int) int { return a + b }) }

// Symbol   Name           Function
//    -     binary minus   pop top 2 elements of stack, subtract, push
func sub(s *Stack) error { return binop(s, func(a, b int) int { return a - b }) }

// Symbol   Name           Function
//    *     multiply       pop top 2 elements of stack, multiply, push
func mul(s *Stack) error { return binop(s, func(a, b int) int { return a * b }) }

// Symbol   Name           Function
//    /     divide         pop top 2 elements of stack, divide, push;
//                         the divisor must be non-zero
func div(s *Stack) error {
	if err := s.need(2); err != nil {
		return err
	}
	if (*s)[len(*s)-1] == 0 {
		return ErrDivisionByZero
	}
	return binop(s, func(a, b int) int { return a / b })
}

func binop(s *Stack, op func(a, b int) int) error {
	a, b, err := s.pop2()
	if err != nil {
		return err
	}
	s.Push(op(a, b))
	return nil
}

//// Stack Operations

// Name    Function
// DUP     a -- a a
func dup(s *Stack) error {
	a, err := s.Peek()
	if err != nil {
		return err
	}
	s.Push(a)
	return nil
}

// Name    Function
// DROP    a --
func drop(s *Stack) error {
	_, err := s.Pop()
	return err
}

// Name    Function
// SWAP    a b -- b a
func swap(s *Stack) error {
	a, b, err := s.pop2()
	if err != nil {
		return err
	}
	s.Push(b, a)
	return nil
}

// Name    Function
// OVER    a b -- a b a
func over(s *Stack) error {
	if err := s.need(2); err != nil {
		return err
	}
	s.Push((*s)[len(*s)-2])
	return nil
}
