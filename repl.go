package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jcorbin/gridforth/internal/forth"
	"github.com/jcorbin/gridforth/internal/logio"
)

func runREPL(ctx context.Context, cfg *Config, log *logio.Logger, stdout io.Writer) error {
	it := newInterpreter(cfg, log)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		AutoComplete:    wordCompleter{it.Words()},
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
		Stdout:          stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	return repl(ctx, cfg, it, rl, stdout)
}

type lineReader interface {
	Readline() (string, error)
}

// repl evaluates one line at a time, reporting errors and the stack after
// each line. Errors do not end the loop; end of input does.
func repl(ctx context.Context, cfg *Config, it *forth.Interpreter, lines lineReader, out io.Writer) error {
	for {
		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lineCtx, cancel := withTimeout(ctx, cfg)
		err = it.EvalString(lineCtx, line)
		cancel()
		if err != nil {
			_, _ = fmt.Fprintf(out, "error: %v\n", err)
		} else {
			_, _ = fmt.Fprint(out, "ok ")
		}
		if err := writeStack(out, it.Stack()); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// wordCompleter completes the token under the cursor from dictionary names.
type wordCompleter struct{ words *forth.Words }

func (wc wordCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && line[start-1] != ' ' && line[start-1] != '\t' {
		start--
	}
	typed := string(line[start:pos])
	if typed == "" {
		return nil, 0
	}
	prefix := strings.ToUpper(typed)
	lower := typed == strings.ToLower(typed)
	for _, name := range wc.words.Names() {
		if strings.HasPrefix(name, prefix) {
			suffix := name[len(prefix):]
			if lower {
				suffix = strings.ToLower(suffix)
			}
			newLine = append(newLine, []rune(suffix))
		}
	}
	return newLine, len([]rune(typed))
}
