package java

import (
	"fmt"

	"github.com/Larkooo/cbindgen/internal/config"
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// jnaStruct describes one emitted Structure class. Every aggregate produces
// two of these: the by-value class and the ByReference class.
type jnaStruct struct {
	documentation ir.Documentation
	constants     []ir.Constant
	assoc         *ir.Struct // owner of the constants, for literal wrapping
	fields        []ir.Field
	name          string
	superclass    string
	iface         string
	deprecated    *string
}

// writeJnaStruct emits one Structure class: field-order annotation,
// constructors, associated constants and one public field per IR field.
//
// The explicit FieldOrder annotation exists because native struct layout is
// order sensitive and JNA's reflective field discovery is not.
func (b *Backend) writeJnaStruct(out *writer.SourceWriter, s *jnaStruct) {
	out.NewLine()
	b.WriteDocumentation(out, s.documentation)
	b.writeDeprecated(out, s.deprecated)

	if len(s.fields) > 0 {
		fieldNames := make([]string, len(s.fields))
		for i, f := range s.fields {
			fieldNames[i] = fmt.Sprintf("%q", f.Name)
		}
		out.Write("@Structure.FieldOrder({")
		b.writeList(out, fieldNames, config.LayoutAuto)
		out.Write("})")
		out.NewLine()
	}

	out.Writef("class %s extends %s implements %s", s.name, s.superclass, s.iface)
	out.OpenBrace()

	for i := range s.constants {
		b.writeConstant(out, &s.constants[i], s.assoc)
	}

	out.Writef("public %s()", s.name)
	out.OpenBrace()
	out.Write("super();")
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()

	out.Writef("public %s(Pointer p)", s.name)
	out.OpenBrace()
	out.Write("super(p);")
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()

	for _, field := range s.fields {
		b.WriteDocumentation(out, field.Documentation)
		out.Write("public ")
		b.WriteType(out, field.Ty)
		out.Writef(" %s;", field.Name)
		out.NewLine()
	}

	out.CloseBrace(false)
	out.NewLine()
}

// WriteStruct emits the by-value/ByReference class pair for a struct.
//
// A transparent struct dispatches on its sole field instead: an integer field
// becomes an integer wrapper, a path field becomes a renaming subclass pair,
// an array field becomes an opaque pointer wrapper. Anything else degrades to
// a placeholder.
func (b *Backend) WriteStruct(out *writer.SourceWriter, s *ir.Struct) {
	if s.IsTransparent {
		b.writeTransparentStruct(out, s)
		return
	}

	value := &jnaStruct{
		documentation: s.Documentation,
		constants:     s.AssociatedConstants,
		assoc:         s,
		fields:        s.Fields,
		name:          s.Name,
		superclass:    "Structure",
		iface:         "Structure.ByValue",
		deprecated:    s.Annotations.Deprecated,
	}
	b.writeJnaStruct(out, value)

	reference := *value
	reference.name = s.Name + "ByReference"
	reference.iface = "Structure.ByReference"
	b.writeJnaStruct(out, &reference)
}

func (b *Backend) writeTransparentStruct(out *writer.SourceWriter, s *ir.Struct) {
	if len(s.Fields) == 0 {
		b.notImplemented(out, ir.ItemDebugString(s))
		return
	}

	switch field := s.Fields[0].Ty.(type) {
	case ir.Primitive:
		if field.Kind != ir.Integer {
			b.notImplemented(out, ir.ItemDebugString(s))
			return
		}
		b.writeIntegerType(out, s.Documentation, s.Name, jnaIntegerFromKind(field.IntKind),
			s.Annotations.Deprecated, func(out *writer.SourceWriter) {
				for i := range s.AssociatedConstants {
					b.writeConstant(out, &s.AssociatedConstants[i], s)
				}
			})

	case ir.Path:
		value := &jnaStruct{
			documentation: s.Documentation,
			constants:     s.AssociatedConstants,
			assoc:         s,
			name:          s.Name,
			superclass:    field.Name,
			iface:         "Structure.ByValue",
			deprecated:    s.Annotations.Deprecated,
		}
		b.writeJnaStruct(out, value)

		reference := *value
		reference.name = s.Name + "ByReference"
		reference.superclass = field.Name + "ByReference"
		reference.iface = "Structure.ByReference"
		b.writeJnaStruct(out, &reference)

	case ir.Array:
		b.writePointerType(out, s.Documentation, s.Annotations.Deprecated, s.Name)

	default:
		b.notImplemented(out, ir.ItemDebugString(s))
	}
}

// WriteUnion emits the class pair for a union. Unions have no transparent
// special case; both classes extend Union.
func (b *Backend) WriteUnion(out *writer.SourceWriter, u *ir.Union) {
	value := &jnaStruct{
		documentation: u.Documentation,
		fields:        u.Fields,
		name:          u.Name,
		superclass:    "Union",
		iface:         "Structure.ByValue",
		deprecated:    u.Annotations.Deprecated,
	}
	b.writeJnaStruct(out, value)

	reference := *value
	reference.name = u.Name + "ByReference"
	reference.iface = "Structure.ByReference"
	b.writeJnaStruct(out, &reference)
}
