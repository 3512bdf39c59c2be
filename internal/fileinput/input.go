package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input reads space separated tokens through a Queue of one or more input
// streams, tracking the line being scanned for error reporting.
type Input struct {
	Queue []io.Reader

	rr   io.RuneReader
	loc  Location
	line bytes.Buffer
}

// Location returns the location of the line currently being scanned.
func (in *Input) Location() Location { return in.loc }

// Line returns the text scanned so far from the current line.
func (in *Input) Line() string { return in.line.String() }

// Token scans the next token, which is a run of non-space non-control runes,
// and returns it along with the location it started on. Stream boundaries
// separate tokens. Returns io.EOF once all queued streams are exhausted.
func (in *Input) Token() (string, Location, error) {
	var sb strings.Builder
	var loc Location
	for {
		r, err := in.readRune()
		if err != nil {
			return "", loc, err
		}
		if !isSeparator(r) {
			loc = in.loc
			sb.WriteRune(r)
			break
		}
	}
	for {
		r, err := in.readRune()
		if err == io.EOF || (err == nil && isSeparator(r)) {
			break
		} else if err != nil {
			return "", loc, err
		}
		sb.WriteRune(r)
	}
	return sb.String(), loc, nil
}

func isSeparator(r rune) bool {
	return r == 0 || unicode.IsSpace(r) || unicode.IsControl(r)
}

// Close closes the current stream and any queued ones, leaving Input empty.
func (in *Input) Close() (err error) {
	if cl, ok := in.rr.(io.Closer); ok {
		err = cl.Close()
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	in.rr = nil
	in.loc = Location{}
	in.line.Reset()
	return err
}

// readRune reads one rune from the current stream, rolling over to the next
// queued stream at EOF; a 0 rune is returned at such boundaries.
func (in *Input) readRune() (rune, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, io.EOF
	}

	r, _, err := in.rr.ReadRune()
	if r == '\n' {
		in.nextLine()
	} else if r != 0 {
		in.line.WriteRune(r)
	}

	if r != 0 {
		return r, nil
	}
	if err == io.EOF && in.nextIn() {
		err = nil
	}
	return 0, err
}

func (in *Input) nextLine() {
	in.line.Reset()
	in.loc.Line++
}

func (in *Input) nextIn() bool {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	in.line.Reset()
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = newRuneReader(r)
		in.loc = Location{Name: nameOf(r), Line: 1}
	}
	return in.rr != nil
}

// newRuneReader returns r if it can already read runes, otherwise a buffered
// reader around it; closing is passed through to r when possible.
func newRuneReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	br := bufio.NewReader(r)
	if cl, ok := r.(io.Closer); ok {
		return closingRuneReader{br, cl}
	}
	return br
}

type closingRuneReader struct {
	*bufio.Reader
	io.Closer
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
