package forth

import "sort"

// Word is an executable unit: builtin primitives and user defined words are
// indistinguishable to callers.
type Word interface {
	Call(stack *Stack, dict *Words) error
}

// Builtin is a native word implemented directly over the stack.
type Builtin func(stack *Stack) error

// Call runs the native function.
func (fn Builtin) Call(stack *Stack, _ *Words) error { return fn(stack) }

// Value is a word that pushes a literal.
type Value int

// Call pushes the value.
func (v Value) Call(stack *Stack, _ *Words) error {
	stack.Push(int(v))
	return nil
}

// CustomWord is an alias for a sequence of other words, bound to those
// words' handles when it was created.
type CustomWord struct {
	inner []Word
}

// Wrap creates a custom word that calls each of inner in order. The slice is
// copied; later changes to it, or to any dictionary the words came from, do
// not affect the returned word.
func Wrap(inner []Word) Word {
	return &CustomWord{inner: append([]Word(nil), inner...)}
}

// Call executes the inner words in order, stopping at and returning the first
// error unchanged.
func (cw *CustomWord) Call(stack *Stack, dict *Words) error {
	for _, word := range cw.inner {
		if err := word.Call(stack, dict); err != nil {
			return err
		}
	}
	return nil
}

// Words is a dictionary of words by name.
type Words struct {
	byName map[string]Word
}

// NewWords returns an empty dictionary.
func NewWords() *Words {
	return &Words{byName: make(map[string]Word)}
}

// Get returns the word defined under name.
func (ws *Words) Get(name string) (Word, error) {
	if word, defined := ws.byName[name]; defined {
		return word, nil
	}
	return nil, unknownWord(name)
}

// Set defines name, replacing any prior definition.
func (ws *Words) Set(name string, word Word) {
	if ws.byName == nil {
		ws.byName = make(map[string]Word)
	}
	ws.byName[name] = word
}

// Has reports whether name is defined.
func (ws *Words) Has(name string) bool {
	_, defined := ws.byName[name]
	return defined
}

// Len returns the number of defined names.
func (ws *Words) Len() int { return len(ws.byName) }

// Names returns all defined names in sorted order.
func (ws *Words) Names() []string {
	names := make([]string, 0, len(ws.byName))
	for name := range ws.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
