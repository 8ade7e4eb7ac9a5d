// Package testutil provides IR construction helpers shared by tests.
package testutil

import "github.com/Larkooo/cbindgen/internal/ir"

// Doc builds a Documentation from comment lines.
func Doc(lines ...string) ir.Documentation {
	return ir.Documentation{Lines: lines}
}

// Deprecated returns a deprecation annotation with the given message.
func Deprecated(msg string) *string {
	return &msg
}

// Expr builds an expression literal.
func Expr(expr string) ir.ExprLiteral {
	return ir.ExprLiteral{Expr: expr}
}

// PtrTo builds a pointer to the given type.
func PtrTo(t ir.Type) ir.Ptr {
	return ir.Ptr{Pointee: t}
}

// Variant builds an enum variant with an implicit discriminant.
func Variant(name string) ir.EnumVariant {
	return ir.EnumVariant{Name: name}
}

// VariantAt builds an enum variant with an explicit discriminant expression.
func VariantAt(name, discriminant string) ir.EnumVariant {
	return ir.EnumVariant{Name: name, Discriminant: ir.ExprLiteral{Expr: discriminant}}
}
