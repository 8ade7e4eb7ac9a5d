package ir

import (
	"fmt"
	"sort"
	"strings"
)

// Literal is the closed sum of constant value forms.
type Literal interface {
	isLiteral()
	// DebugString renders a stable diagnostic form used in soft-failure
	// placeholders. It must be deterministic so emission is idempotent.
	DebugString() string
}

// ExprLiteral is a raw textual constant expression.
type ExprLiteral struct {
	Expr string
}

// StructLiteral is a composite struct-literal constant. Backends do not
// support it and render a placeholder.
type StructLiteral struct {
	Name   string
	Fields map[string]Literal
}

func (ExprLiteral) isLiteral()   {}
func (StructLiteral) isLiteral() {}

// DebugString returns the raw expression.
func (l ExprLiteral) DebugString() string {
	return fmt.Sprintf("Expr(%q)", l.Expr)
}

// DebugString renders fields in sorted key order so the output is stable.
func (l StructLiteral) DebugString() string {
	keys := make([]string, 0, len(l.Fields))
	for k := range l.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "Struct(%s{", l.Name)
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, l.Fields[k].DebugString())
	}
	b.WriteString("})")
	return b.String()
}
