package java

import (
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// writePointerType synthesizes the opaque-handle wrapper pair for a type with
// no visible structure: a PointerType subclass and a ByReference companion,
// each with a default-null and a from-handle constructor.
func (b *Backend) writePointerType(
	out *writer.SourceWriter,
	documentation ir.Documentation,
	deprecated *string,
	name string,
) {
	b.WriteDocumentation(out, documentation)
	b.writeDeprecated(out, deprecated)
	out.Writef("class %s extends PointerType", name)
	out.OpenBrace()
	out.Writef("public %s()", name)
	out.OpenBrace()
	out.Write("super(null);")
	out.CloseBrace(false)
	out.NewLine()
	out.Writef("public %s(Pointer p)", name)
	out.OpenBrace()
	out.Write("super(p);")
	out.CloseBrace(false)
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()

	b.WriteDocumentation(out, documentation)
	b.writeDeprecated(out, deprecated)
	out.Writef("class %sByReference extends %s", name, name)
	out.OpenBrace()
	out.Writef("public %sByReference()", name)
	out.OpenBrace()
	out.Write("super(null);")
	out.CloseBrace(false)
	out.NewLine()
	out.Writef("public %sByReference(Pointer p)", name)
	out.OpenBrace()
	out.Write("super(p);")
	out.CloseBrace(false)
	out.CloseBrace(false)
}

// WriteOpaqueItem emits the handle wrapper pair for an opaque item.
func (b *Backend) WriteOpaqueItem(out *writer.SourceWriter, o *ir.OpaqueItem) {
	b.writePointerType(out, o.Documentation, o.Annotations.Deprecated, o.Name)
}
