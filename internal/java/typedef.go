package java

import (
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// WriteTypedef emits a typedef. The strategy is chosen entirely by the
// aliased type's variant:
//
//   - function pointer: a Callback interface with a single invoke method
//   - path: a class pair subclassing the referenced path's pair
//   - integer primitive: an integer wrapper pair
//   - pointer or array: an opaque pointer wrapper pair
//   - any other primitive: placeholder
func (b *Backend) WriteTypedef(out *writer.SourceWriter, t *ir.Typedef) {
	switch aliased := t.Aliased.(type) {
	case ir.FuncPtr:
		out.Writef("interface %s extends Callback", t.Name)
		out.OpenBrace()
		b.WriteType(out, aliased.Ret)
		out.Write(" invoke(")
		b.writeFunctionArgs(out, aliased.Args)
		out.Write(");")
		out.CloseBrace(false)

	case ir.Path:
		b.WriteDocumentation(out, t.Documentation)
		out.Writef("class %s extends %s", t.Name, aliased.Name)
		out.OpenBrace()
		out.Writef("public %s()", t.Name)
		out.OpenBrace()
		out.Write("super();")
		out.CloseBrace(false)
		out.NewLine()
		out.Writef("public %s(Pointer p)", t.Name)
		out.OpenBrace()
		out.Write("super(p);")
		out.CloseBrace(false)
		out.CloseBrace(false)
		out.NewLine()
		out.NewLine()

		b.WriteDocumentation(out, t.Documentation)
		out.Writef("class %sByReference extends %sByReference", t.Name, aliased.Name)
		out.OpenBrace()
		out.Writef("public %sByReference()", t.Name)
		out.OpenBrace()
		out.Write("super();")
		out.CloseBrace(false)
		out.NewLine()
		out.Writef("public %sByReference(Pointer p)", t.Name)
		out.OpenBrace()
		out.Write("super(p);")
		out.CloseBrace(false)
		out.CloseBrace(false)

	case ir.Primitive:
		if aliased.Kind != ir.Integer {
			b.notImplemented(out, ir.ItemDebugString(t))
			return
		}
		b.writeIntegerType(out, t.Documentation, t.Name,
			jnaIntegerFromKind(aliased.IntKind), t.Annotations.Deprecated, nil)

	case ir.Ptr, ir.Array:
		b.writePointerType(out, t.Documentation, t.Annotations.Deprecated, t.Name)

	default:
		b.notImplemented(out, ir.ItemDebugString(t))
	}
}
