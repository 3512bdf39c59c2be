package forth

import "fmt"

// Kind classifies an Error.
type Kind int

// Error kinds.
const (
	UnknownWord Kind = iota + 1
	StackUnderflow
	DivisionByZero
	InvalidWord
)

func (k Kind) String() string {
	switch k {
	case UnknownWord:
		return "unknown word"
	case StackUnderflow:
		return "stack underflow"
	case DivisionByZero:
		return "division by zero"
	case InvalidWord:
		return "invalid word"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the failure type returned by words, the dictionary, and the
// interpreter. Word names the offending word, if any.
type Error struct {
	Kind Kind
	Word string
}

// Sentinel errors for use with errors.Is; they match any Error of the same Kind.
var (
	ErrUnknownWord    = &Error{Kind: UnknownWord}
	ErrStackUnderflow = &Error{Kind: StackUnderflow}
	ErrDivisionByZero = &Error{Kind: DivisionByZero}
	ErrInvalidWord    = &Error{Kind: InvalidWord}
)

func (err *Error) Error() string {
	if err.Word != "" {
		return fmt.Sprintf("%v %q", err.Kind, err.Word)
	}
	return err.Kind.String()
}

// Is matches any *Error of the same kind.
func (err *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == err.Kind
}

func unknownWord(name string) error { return &Error{Kind: UnknownWord, Word: name} }
func invalidWord(name string) error { return &Error{Kind: InvalidWord, Word: name} }
