// Package writer provides the low-level source text primitives shared by
// language backends: lazy indentation, brace blocks, and horizontal list
// probing with vertical fallback.
//
// A SourceWriter buffers the whole output so that a horizontal rendering
// attempt can be rolled back when it would exceed the configured line length.
// The buffer is flushed to the sink once, after emission completes.
package writer

import (
	"fmt"
	"io"
)

// indentWidth is the number of spaces per indentation level.
const indentWidth = 2

// SourceWriter accumulates generated source text with indentation tracking.
//
// The cursor state (indentation depth, position within the current line) is
// advanced strictly sequentially by a single emission pass; SourceWriter is
// not safe for concurrent use.
type SourceWriter struct {
	buf     []byte
	depth   int
	pending bool // at line start; indentation not yet written
	lineLen int  // length of the current line, including indentation
	maxLine int  // longest line seen since the last TryWrite checkpoint
}

// New returns an empty SourceWriter positioned at the start of a line.
func New() *SourceWriter {
	return &SourceWriter{pending: true}
}

// Write appends raw text to the current line, writing indentation first if
// the line has not started yet. The text must not contain newlines; use
// NewLine to break lines.
func (w *SourceWriter) Write(s string) {
	if s == "" {
		return
	}
	if w.pending {
		for i := 0; i < w.depth*indentWidth; i++ {
			w.buf = append(w.buf, ' ')
		}
		w.lineLen = w.depth * indentWidth
		w.pending = false
	}
	w.buf = append(w.buf, s...)
	w.lineLen += len(s)
	if w.lineLen > w.maxLine {
		w.maxLine = w.lineLen
	}
}

// Writef appends formatted text to the current line.
func (w *SourceWriter) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// NewLine terminates the current line. Called at line start it produces a
// blank line.
func (w *SourceWriter) NewLine() {
	w.buf = append(w.buf, '\n')
	w.pending = true
	w.lineLen = 0
}

// NewLineIfNotStart terminates the current line only if it has content.
func (w *SourceWriter) NewLineIfNotStart() {
	if !w.pending {
		w.NewLine()
	}
}

// PushTab increases the indentation depth.
func (w *SourceWriter) PushTab() {
	w.depth++
}

// PopTab decreases the indentation depth.
func (w *SourceWriter) PopTab() {
	if w.depth > 0 {
		w.depth--
	}
}

// OpenBrace writes " {" on the current line and opens an indented block.
func (w *SourceWriter) OpenBrace() {
	w.Write(" {")
	w.PushTab()
	w.NewLine()
}

// CloseBrace closes the current block. The closing brace is left on an
// unterminated line so callers control the following spacing.
func (w *SourceWriter) CloseBrace(semicolon bool) {
	w.PopTab()
	w.NewLine()
	if semicolon {
		w.Write("};")
	} else {
		w.Write("}")
	}
}

// checkpoint captures writer state for rollback.
type checkpoint struct {
	bufLen  int
	depth   int
	pending bool
	lineLen int
	maxLine int
}

// TryWrite runs fn and keeps its output only if every line it produced,
// including the line it started on, stays within maxLineLength. On overflow
// the writer is rolled back to its prior state and TryWrite returns false so
// the caller can render a vertical fallback.
func (w *SourceWriter) TryWrite(maxLineLength int, fn func(*SourceWriter)) bool {
	cp := checkpoint{
		bufLen:  len(w.buf),
		depth:   w.depth,
		pending: w.pending,
		lineLen: w.lineLen,
		maxLine: w.maxLine,
	}
	w.maxLine = w.lineLen

	fn(w)

	if w.maxLine > maxLineLength {
		w.buf = w.buf[:cp.bufLen]
		w.depth = cp.depth
		w.pending = cp.pending
		w.lineLen = cp.lineLen
		w.maxLine = cp.maxLine
		return false
	}
	if cp.maxLine > w.maxLine {
		w.maxLine = cp.maxLine
	}
	return true
}

// WriteHorizontalList writes the pre-rendered items on the current line,
// joined by sep.
func (w *SourceWriter) WriteHorizontalList(items []string, sep string) {
	for i, item := range items {
		if i > 0 {
			w.Write(sep)
		}
		w.Write(item)
	}
}

// WriteVerticalList writes each pre-rendered item on its own indented line.
// The separator follows every item except the last, matching the horizontal
// form token for token.
func (w *SourceWriter) WriteVerticalList(items []string, sep string) {
	if len(items) == 0 {
		return
	}
	w.PushTab()
	for i, item := range items {
		w.NewLine()
		w.Write(item)
		if i < len(items)-1 {
			w.Write(sep)
		}
	}
	w.PopTab()
}

// Len returns the number of buffered bytes.
func (w *SourceWriter) Len() int {
	return len(w.buf)
}

// Bytes returns the buffered output.
func (w *SourceWriter) Bytes() []byte {
	return w.buf
}

// String returns the buffered output as a string.
func (w *SourceWriter) String() string {
	return string(w.buf)
}

// WriteTo flushes the buffered output to out.
func (w *SourceWriter) WriteTo(out io.Writer) (int64, error) {
	n, err := out.Write(w.buf)
	return int64(n), err
}
