package java

import (
	"strconv"

	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// WriteEnum emits an enum as an int-sized integer wrapper class carrying one
// public static instance per variant.
//
// Discriminants resolve in declaration order: an explicit literal wins when
// it parses as a 32-bit signed integer, otherwise the variant gets the
// previous discriminant plus one, the first variant defaulting to 0. A
// malformed literal is recovered by the same plus-one rule, never surfaced as
// an error.
func (b *Backend) WriteEnum(out *writer.SourceWriter, e *ir.Enum) {
	// Enums are almost always int sized.
	b.writeIntegerType(out, e.Documentation, e.Name, jnaInt, e.Annotations.Deprecated,
		func(out *writer.SourceWriter) {
			current := int32(-1)
			for _, variant := range e.Variants {
				current = resolveDiscriminant(variant.Discriminant, current)
				b.WriteDocumentation(out, variant.Documentation)
				out.Writef("public static final %s %s = new %s(%d);",
					e.Name, variant.Name, e.Name, current)
				out.NewLine()
			}
		})
}

// resolveDiscriminant returns the discriminant for a variant given the
// previous variant's value.
func resolveDiscriminant(explicit ir.Literal, previous int32) int32 {
	if expr, ok := explicit.(ir.ExprLiteral); ok {
		if v, err := strconv.ParseInt(expr.Expr, 10, 32); err == nil {
			return int32(v)
		}
	}
	return previous + 1
}
