// Package backend defines the interface a language backend implements and
// the single-pass driver that walks an IR tree through it.
package backend

import (
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// NamespaceOp tells a backend whether the enclosing namespace scaffolding is
// being opened or closed.
type NamespaceOp int

const (
	NamespaceOpen NamespaceOp = iota
	NamespaceClose
)

// LanguageBackend is the capability set an emission backend provides. One
// implementation exists per target host language, selected at build time.
//
// All methods write through the shared SourceWriter; none returns an error.
// Unsupported IR shapes degrade to placeholder comments so emission of the
// rest of the surface always completes.
type LanguageBackend interface {
	WriteHeaders(out *writer.SourceWriter)
	OpenCloseNamespaces(op NamespaceOp, out *writer.SourceWriter)
	WriteFooters(out *writer.SourceWriter)

	WriteEnum(out *writer.SourceWriter, e *ir.Enum)
	WriteStruct(out *writer.SourceWriter, s *ir.Struct)
	WriteUnion(out *writer.SourceWriter, u *ir.Union)
	WriteOpaqueItem(out *writer.SourceWriter, o *ir.OpaqueItem)
	WriteTypedef(out *writer.SourceWriter, t *ir.Typedef)
	WriteFunction(out *writer.SourceWriter, f *ir.Function)
	WriteConstant(out *writer.SourceWriter, c *ir.Constant)
	WriteStatic(out *writer.SourceWriter, s *ir.Static)

	WriteType(out *writer.SourceWriter, t ir.Type)
	WriteDocumentation(out *writer.SourceWriter, d ir.Documentation)
	WriteLiteral(out *writer.SourceWriter, l ir.Literal)
}

// Emit walks the file once, in declaration order, dispatching each item to
// the backend. No item is visited twice and no emission state outlives the
// call beyond the writer's cursor.
func Emit(b LanguageBackend, file *ir.File, out *writer.SourceWriter) {
	b.WriteHeaders(out)
	out.NewLine()
	b.OpenCloseNamespaces(NamespaceOpen, out)

	for _, item := range file.Items {
		out.NewLineIfNotStart()
		out.NewLine()
		switch it := item.(type) {
		case *ir.Enum:
			b.WriteEnum(out, it)
		case *ir.Struct:
			b.WriteStruct(out, it)
		case *ir.Union:
			b.WriteUnion(out, it)
		case *ir.OpaqueItem:
			b.WriteOpaqueItem(out, it)
		case *ir.Typedef:
			b.WriteTypedef(out, it)
		case *ir.Function:
			b.WriteFunction(out, it)
		case *ir.Constant:
			b.WriteConstant(out, it)
		case *ir.Static:
			b.WriteStatic(out, it)
		}
	}

	out.NewLineIfNotStart()
	b.OpenCloseNamespaces(NamespaceClose, out)
	b.WriteFooters(out)
	out.NewLine()
}
