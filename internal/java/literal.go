package java

import (
	"strings"

	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// WriteLiteral writes a literal value. Composite literal forms have no Java
// rendering and degrade to a placeholder.
func (b *Backend) WriteLiteral(out *writer.SourceWriter, l ir.Literal) {
	switch lit := l.(type) {
	case ir.ExprLiteral:
		out.Write(lit.Expr)
	case ir.StructLiteral:
		b.notImplemented(out, "Struct Literal "+lit.Name)
	default:
		b.notImplemented(out, l.DebugString())
	}
}

// WriteConstant emits a top-level constant as a static field on the library
// interface.
func (b *Backend) WriteConstant(out *writer.SourceWriter, c *ir.Constant) {
	b.writeConstant(out, c, nil)
}

// writeConstant emits a constant, optionally scoped to the struct it is
// associated with. Constants whose literal has no Java form emit a marked
// placeholder instead.
func (b *Backend) writeConstant(out *writer.SourceWriter, c *ir.Constant, assoc *ir.Struct) {
	if !writableLiteral(c.Ty, c.Value) {
		out.Writef("/* Unsupported literal for constant %s */", c.Name)
		out.NewLine()
		return
	}

	b.WriteDocumentation(out, c.Documentation)
	b.writeDeprecated(out, c.Annotations.Deprecated)

	ty := c.Ty
	if assoc != nil && assoc.IsTransparent && len(assoc.Fields) == 1 {
		// Constants associated to a transparent struct are typed as the
		// wrapper itself, not the underlying field.
		ty = ir.Path{Name: assoc.Name}
	}

	out.Write("public static final ")
	b.WriteType(out, ty)
	out.Writef(" %s = ", c.Name)
	b.WriteLiteral(out, wrapValue(c.Value, ty))
	out.Write(";")
	out.NewLine()
}

// wrapValue rewrites an expression literal so the Java compiler types it the
// way the native ABI expects: float and double literals gain a suffix, 64-bit
// integers gain the long suffix, platform-width kinds go through a NativeLong
// constructor, and path-typed constants go through the path's constructor.
func wrapValue(l ir.Literal, ty ir.Type) ir.Literal {
	expr, ok := l.(ir.ExprLiteral)
	if !ok {
		return l
	}

	switch t := ty.(type) {
	case ir.Primitive:
		switch t.Kind {
		case ir.Double:
			return ir.ExprLiteral{Expr: expr.Expr + "d"}
		case ir.Float:
			return ir.ExprLiteral{Expr: expr.Expr + "f"}
		case ir.Integer:
			switch t.IntKind {
			case ir.LongLong, ir.B64:
				return ir.ExprLiteral{Expr: expr.Expr + "L"}
			case ir.Long, ir.Size, ir.SizeT:
				return ir.ExprLiteral{Expr: "new NativeLong(" + expr.Expr + ")"}
			}
		}
	case ir.Path:
		return ir.ExprLiteral{Expr: "new " + t.Name + "(" + expr.Expr + ")"}
	}
	return l
}

// writableLiteral reports whether a literal can be re-rendered as a Java
// expression. C-only spellings cannot: 32-bit Unicode escapes and ull
// suffixed integers.
func writableLiteral(ty ir.Type, l ir.Literal) bool {
	expr, ok := l.(ir.ExprLiteral)
	if !ok {
		return false
	}
	if p, ok := ty.(ir.Primitive); ok && p.Kind == ir.Char32 && strings.HasPrefix(expr.Expr, `U'\U`) {
		return false
	}
	return !strings.HasSuffix(expr.Expr, "ull")
}
