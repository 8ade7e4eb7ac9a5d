package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIndentsLazily(t *testing.T) {
	w := New()
	w.Write("a")
	w.NewLine()
	w.PushTab()
	w.Write("b")
	w.NewLine()
	w.PushTab()
	w.Write("c")
	w.PopTab()
	w.PopTab()

	assert.Equal(t, "a\n  b\n    c", w.String())
}

func TestNewLineIfNotStart(t *testing.T) {
	w := New()

	// At the very start nothing happens.
	w.NewLineIfNotStart()
	assert.Equal(t, "", w.String())

	w.Write("x")
	w.NewLineIfNotStart()
	assert.Equal(t, "x\n", w.String())

	// Already at line start: no blank line.
	w.NewLineIfNotStart()
	assert.Equal(t, "x\n", w.String())
}

func TestOpenCloseBrace(t *testing.T) {
	w := New()
	w.Write("class Foo")
	w.OpenBrace()
	w.Write("body;")
	w.CloseBrace(false)

	assert.Equal(t, "class Foo {\n  body;\n}", w.String())
}

func TestCloseBraceSemicolon(t *testing.T) {
	w := New()
	w.Write("struct Foo")
	w.OpenBrace()
	w.Write("int x;")
	w.CloseBrace(true)

	assert.Equal(t, "struct Foo {\n  int x;\n};", w.String())
}

func TestCloseBraceOnBlankLineKeepsBlank(t *testing.T) {
	w := New()
	w.Write("class Foo")
	w.OpenBrace()
	w.Write("int x;")
	w.NewLine()
	w.CloseBrace(false)

	// The unconditional newline turns the pending line into a blank one.
	assert.Equal(t, "class Foo {\n  int x;\n\n}", w.String())
}

func TestTryWriteWithinLimit(t *testing.T) {
	w := New()
	w.Write("f(")

	ok := w.TryWrite(20, func(w *SourceWriter) {
		w.Write("a, b")
	})

	require.True(t, ok)
	assert.Equal(t, "f(a, b", w.String())
}

func TestTryWriteRollsBackOnOverflow(t *testing.T) {
	w := New()
	w.Write("f(")

	ok := w.TryWrite(5, func(w *SourceWriter) {
		w.Write("averylongargument")
	})

	require.False(t, ok)
	assert.Equal(t, "f(", w.String())

	// The writer still works normally after a rollback.
	w.Write("x)")
	assert.Equal(t, "f(x)", w.String())
}

func TestTryWriteCountsSurroundingContext(t *testing.T) {
	w := New()
	w.Write("0123456789")

	// The new text alone fits, but the line it lands on does not.
	ok := w.TryWrite(12, func(w *SourceWriter) {
		w.Write("abcdef")
	})

	assert.False(t, ok)
	assert.Equal(t, "0123456789", w.String())
}

func TestTryWriteChecksEveryLine(t *testing.T) {
	w := New()

	ok := w.TryWrite(10, func(w *SourceWriter) {
		w.Write("short")
		w.NewLine()
		w.Write("waytoolongforthelimit")
	})

	assert.False(t, ok)
	assert.Equal(t, "", w.String())
}

func TestWriteHorizontalList(t *testing.T) {
	w := New()
	w.WriteHorizontalList([]string{"a", "b", "c"}, ", ")
	assert.Equal(t, "a, b, c", w.String())
}

func TestWriteHorizontalListEmpty(t *testing.T) {
	w := New()
	w.WriteHorizontalList(nil, ", ")
	assert.Equal(t, "", w.String())
}

func TestWriteVerticalList(t *testing.T) {
	w := New()
	w.Write("f(")
	w.WriteVerticalList([]string{"a", "b"}, ",")
	w.Write(");")

	assert.Equal(t, "f(\n  a,\n  b);", w.String())
}

func TestWriteVerticalListIndentsFromCurrentDepth(t *testing.T) {
	w := New()
	w.PushTab()
	w.Write("f(")
	w.WriteVerticalList([]string{"a", "b"}, ",")
	w.PopTab()

	assert.Equal(t, "  f(\n    a,\n    b", w.String())
}

func TestWritef(t *testing.T) {
	w := New()
	w.Writef("class %s extends %s", "Foo", "Bar")
	assert.Equal(t, "class Foo extends Bar", w.String())
}
