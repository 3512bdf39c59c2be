package forth

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/gridforth/internal/fileinput"
	"github.com/jcorbin/gridforth/internal/panicerr"
)

// Interpreter evaluates whitespace separated source text against a
// dictionary and a stack.
//
// Integer tokens push themselves; ": NAME body... ;" defines a custom word
// whose body is resolved when the definition is read; any other token calls
// the word by that name. Names are case-insensitive.
type Interpreter struct {
	logging
	words *Words
	stack Stack
	in    fileinput.Input
}

// New creates an interpreter whose dictionary holds the builtin words,
// unless WithWords is given.
func New(opts ...Option) *Interpreter {
	var it Interpreter
	Options(opts...).apply(&it)
	if it.words == nil {
		it.words = NewWords()
		AddBuiltins(it.words)
	}
	return &it
}

// Words returns the interpreter's dictionary.
func (it *Interpreter) Words() *Words { return it.words }

// Stack returns a copy of the current stack contents, bottom first.
func (it *Interpreter) Stack() []int {
	return append([]int(nil), it.stack...)
}

// EvalString evaluates source text.
func (it *Interpreter) EvalString(ctx context.Context, src string) error {
	return it.Eval(ctx, namedReader{strings.NewReader(src), "<string>"})
}

// Eval reads and evaluates all tokens from r. The first failure stops
// evaluation; the stack keeps whatever effects happened before it.
func (it *Interpreter) Eval(ctx context.Context, r io.Reader) error {
	it.in.Queue = append(it.in.Queue, r)
	err := panicerr.Recover("eval", func() error {
		return it.run(ctx)
	})
	if err != nil {
		it.logf("#", "halt error: %v", err)
		it.in.Close()
	}
	return err
}

type namedReader struct {
	*strings.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func (it *Interpreter) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		token, loc, err := it.in.Token()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := it.exec(token); err != nil {
			return fmt.Errorf("%v: %w", loc, err)
		}
	}
}

func (it *Interpreter) exec(token string) error {
	if token == ":" {
		return it.define()
	}
	word, err := it.resolve(token)
	if err != nil {
		return err
	}
	it.logf(">", "%v -- s:%v", token, it.stack)
	return word.Call(&it.stack, it.words)
}

// define reads the rest of a ": NAME body... ;" definition.
func (it *Interpreter) define() error {
	name, _, err := it.in.Token()
	if err == io.EOF {
		return invalidWord(":")
	} else if err != nil {
		return err
	}
	name = strings.ToUpper(name)
	if _, err := literal(name); err == nil {
		return invalidWord(name)
	}

	var body []Word
	for {
		token, _, err := it.in.Token()
		if err == io.EOF {
			return invalidWord(name)
		} else if err != nil {
			return err
		}
		if token == ";" {
			break
		}
		word, err := it.resolve(token)
		if err != nil {
			return err
		}
		body = append(body, word)
	}

	it.logf(":", "define %v len:%v", name, len(body))
	it.words.Set(name, Wrap(body))
	return nil
}

// resolve returns a Value word for integer tokens, otherwise the current
// dictionary definition of token.
func (it *Interpreter) resolve(token string) (Word, error) {
	if n, err := literal(token); err == nil {
		return Value(n), nil
	}
	return it.words.Get(strings.ToUpper(token))
}

func literal(token string) (int, error) {
	n, err := strconv.ParseInt(token, 10, strconv.IntSize)
	if err == nil {
		return int(n), nil
	}
	return 0, err
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
