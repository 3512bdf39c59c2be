package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jcorbin/gridforth/internal/flushio"
	"github.com/jcorbin/gridforth/internal/forth"
	"github.com/jcorbin/gridforth/internal/logio"
)

func newInterpreter(cfg *Config, log *logio.Logger) *forth.Interpreter {
	var opts []forth.Option
	if cfg.Trace {
		opts = append(opts, forth.WithLogf(log.Leveledf("TRACE")))
	}
	return forth.New(opts...)
}

func withTimeout(ctx context.Context, cfg *Config) (context.Context, context.CancelFunc) {
	if cfg.Timeout != 0 {
		return context.WithTimeout(ctx, cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// runFiles evaluates each named file in order, then prints the stack.
func runFiles(ctx context.Context, cfg *Config, log *logio.Logger, stdin io.Reader, stdout io.Writer, names []string) error {
	ctx, cancel := withTimeout(ctx, cfg)
	defer cancel()

	if len(names) == 0 {
		names = []string{"-"}
	}

	it := newInterpreter(cfg, log)
	for _, name := range names {
		var r io.Reader
		if name == "-" {
			r = stdinReader{stdin}
		} else {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			r = f
		}
		if err := it.Eval(ctx, r); err != nil {
			return err
		}
	}

	out := flushio.NewWriteFlusher(stdout)
	if err := writeStack(out, it.Stack()); err != nil {
		return err
	}
	return out.Flush()
}

type stdinReader struct{ io.Reader }

func (stdinReader) Name() string { return "<stdin>" }

func writeStack(w io.Writer, stack []int) error {
	var sb strings.Builder
	for i, val := range stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(val))
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
