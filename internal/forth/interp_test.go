package forth_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gridforth/internal/forth"
)

type evalTestCases []evalTestCase

func (ets evalTestCases) run(t *testing.T) {
	for _, et := range ets {
		if !t.Run(et.name, et.run) {
			return
		}
	}
}

func evalTest(name string) (et evalTestCase) {
	et.name = name
	return et
}

type evalTestCase struct {
	name    string
	opts    []forth.Option
	inputs  []string
	expect  []int
	wantErr error
	errMsg  string
}

func (et evalTestCase) withOptions(opts ...forth.Option) evalTestCase {
	et.opts = append(et.opts, opts...)
	return et
}

func (et evalTestCase) withInput(lines ...string) evalTestCase {
	et.inputs = append(et.inputs, strings.Join(lines, "\n"))
	return et
}

func (et evalTestCase) expectStack(values ...int) evalTestCase {
	et.expect = values
	return et
}

func (et evalTestCase) expectError(err error, mess string) evalTestCase {
	et.wantErr = err
	et.errMsg = mess
	return et
}

func (et evalTestCase) run(t *testing.T) {
	var logs strings.Builder
	opts := append([]forth.Option{
		forth.WithLogf(func(mess string, args ...interface{}) {
			fmt.Fprintf(&logs, mess+"\n", args...)
		}),
	}, et.opts...)
	it := forth.New(opts...)
	defer func() {
		if t.Failed() {
			t.Logf("trace:\n%s", logs.String())
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var err error
	for _, input := range et.inputs {
		if err = it.EvalString(ctx, input); err != nil {
			break
		}
	}
	if et.wantErr != nil {
		require.Error(t, err, "expected an eval error")
		assert.True(t, errors.Is(err, et.wantErr), "expected %v, got %v", et.wantErr, err)
		if et.errMsg != "" {
			assert.EqualError(t, err, et.errMsg)
		}
	} else {
		require.NoError(t, err, "unexpected eval error")
	}
	assert.Equal(t, et.expect, it.Stack(), "expected stack")
}

func TestInterpreter(t *testing.T) {
	evalTestCases{
		evalTest("numbers").
			withInput("1 2 3 4 5").
			expectStack(1, 2, 3, 4, 5),
		evalTest("negative numbers").
			withInput("-1 -2 -3").
			expectStack(-1, -2, -3),
		evalTest("arithmetic").
			withInput("1 2 + 4 * 2 - 5 /").
			expectStack(2),
		evalTest("stack words").
			withInput("1 2 3 swap over dup drop").
			expectStack(1, 3, 2, 3),
		evalTest("names are case-insensitive").
			withInput("1 DuP Dup dup").
			expectStack(1, 1, 1, 1),

		evalTest("underflow").
			withInput("1 +").
			expectStack(1).
			expectError(forth.ErrStackUnderflow, "<string>:1: stack underflow"),
		evalTest("division by zero").
			withInput("4 0 /").
			expectStack(4, 0).
			expectError(forth.ErrDivisionByZero, ""),
		evalTest("unknown word").
			withInput("1 2", "foo").
			expectStack(1, 2).
			expectError(forth.ErrUnknownWord, `<string>:2: unknown word "FOO"`),
		evalTest("stops at first failure").
			withInput("1 drop drop 5").
			expectStack().
			expectError(forth.ErrStackUnderflow, ""),

		evalTest("define").
			withInput(": dup-twice dup dup ;", "1 dup-twice").
			expectStack(1, 1, 1),
		evalTest("define in order").
			withInput(": countup 1 2 3 ;", "countup").
			expectStack(1, 2, 3),
		evalTest("redefine user word").
			withInput(": foo dup ;", ": foo dup dup ;", "1 foo").
			expectStack(1, 1, 1),
		evalTest("redefine builtin").
			withInput(": swap dup ;", "1 swap").
			expectStack(1, 1),
		evalTest("redefine operator").
			withInput(": + * ;", "3 4 +").
			expectStack(12),
		evalTest("definition binds earlier words").
			withInput(": foo 5 ;", ": bar foo ;", ": foo 6 ;", "bar foo").
			expectStack(5, 6),
		evalTest("self reference uses prior definition").
			withInput(": foo 10 ;", ": foo foo 1 + ;", "foo").
			expectStack(11),
		evalTest("unterminated definition").
			withInput(": foo").
			withInput("1 ;").
			expectError(forth.ErrInvalidWord, `<string>:1: invalid word "FOO"`),
		evalTest("cannot redefine numbers").
			withInput(": 1 2 ;").
			expectError(forth.ErrInvalidWord, `<string>:1: invalid word "1"`),
		evalTest("definition needs a name").
			withInput(":").
			expectError(forth.ErrInvalidWord, ""),
		evalTest("definition with unknown word").
			withInput(": foo bar ;").
			expectError(forth.ErrUnknownWord, ""),
		evalTest("failure inside definition").
			withInput(": boom 1 + ;", "boom").
			expectStack(1).
			expectError(forth.ErrStackUnderflow, ""),

		evalTest("seeded stack").
			withOptions(forth.WithStack(4, 5)).
			withInput("+").
			expectStack(9),
	}.run(t)
}

func TestInterpreter_multipleEvals(t *testing.T) {
	ctx := context.Background()
	it := forth.New()
	require.NoError(t, it.EvalString(ctx, ": sq dup * ;"))
	require.NoError(t, it.EvalString(ctx, "3 sq"))
	require.NoError(t, it.Eval(ctx, strings.NewReader("sq\n")))
	assert.Equal(t, []int{81}, it.Stack())

	assert.Error(t, it.EvalString(ctx, "nope"))
	require.NoError(t, it.EvalString(ctx, "1"), "expected recovery after a failed eval")
	assert.Equal(t, []int{81, 1}, it.Stack())
}

func TestInterpreter_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	it := forth.New()
	err := it.EvalString(ctx, "1 2 3")
	assert.True(t, errors.Is(err, context.Canceled), "expected canceled, got %v", err)
	assert.Empty(t, it.Stack())
}

func TestInterpreter_panickingWord(t *testing.T) {
	ws := forth.NewWords()
	ws.Set("BOOM", forth.Builtin(func(*forth.Stack) error { panic("boom") }))
	it := forth.New(forth.WithWords(ws))
	err := it.EvalString(context.Background(), "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paniced: boom")
	assert.Same(t, ws, it.Words())
}
