package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gridforth/internal/forth"
)

type scriptedLines []interface{}

func (sl *scriptedLines) Readline() (string, error) {
	if len(*sl) == 0 {
		return "", io.EOF
	}
	next := (*sl)[0]
	*sl = (*sl)[1:]
	if err, ok := next.(error); ok {
		return "", err
	}
	return next.(string), nil
}

func TestREPL(t *testing.T) {
	lines := scriptedLines{
		": sq dup * ;",
		"",
		"3 sq",
		readline.ErrInterrupt,
		"drop drop",
		"4",
	}
	var out bytes.Buffer
	it := forth.New()
	require.NoError(t, repl(context.Background(), &Config{}, it, &lines, &out))
	assert.Equal(t, "ok \n"+
		"ok 9\n"+
		"error: <string>:1: stack underflow\n"+
		"\n"+
		"ok 4\n", out.String())
}

func TestWordCompleter(t *testing.T) {
	ws := forth.NewWords()
	forth.AddBuiltins(ws)
	wc := wordCompleter{ws}

	line := []rune("1 d")
	completions, n := wc.Do(line, len(line))
	assert.Equal(t, 1, n)
	assert.Equal(t, [][]rune{[]rune("rop"), []rune("up")}, completions, "expected typed case kept")

	line = []rune("1 Du")
	completions, n = wc.Do(line, len(line))
	assert.Equal(t, 2, n)
	assert.Equal(t, [][]rune{[]rune("P")}, completions)

	line = []rune("1 sw 2")
	completions, n = wc.Do(line, 4)
	assert.Equal(t, 2, n)
	assert.Equal(t, [][]rune{[]rune("ap")}, completions, "expected completion at the cursor")

	line = []rune("1 ")
	completions, n = wc.Do(line, len(line))
	assert.Nil(t, completions)
	assert.Equal(t, 0, n)
}
