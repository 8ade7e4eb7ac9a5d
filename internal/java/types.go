package java

import (
	"fmt"

	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// MapType maps an IR type to its Java type name. It is pure and total: any
// variant without a defined mapping produces an inline placeholder comment
// instead of failing, so emission can complete for partially-unsupported
// trees.
//
// The mapping follows the JNA marshalling rules
// (https://github.com/java-native-access/jna/blob/master/www/Mappings.md),
// with platform-width integer kinds going through NativeLong rather than a
// Java primitive so the native ABI width stays decoupled from Java's.
func MapType(t ir.Type) string {
	switch ty := t.(type) {
	case ir.Ptr:
		return mapPointee(ty.Pointee)
	case ir.Path:
		return ty.Name
	case ir.Primitive:
		return mapPrimitive(ty)
	case ir.Array:
		return MapType(ty.Elem) + "[]"
	case ir.FuncPtr:
		return "Callback"
	default:
		return fmt.Sprintf("/* Not implemented yet : %s */", ir.TypeDebugString(t))
	}
}

// mapPointee maps the target of a pointer to the by-reference Java type.
func mapPointee(pointee ir.Type) string {
	switch ty := pointee.(type) {
	case ir.Ptr:
		return "PointerByReference"
	case ir.Path:
		return ty.Name + "ByReference"
	case ir.Primitive:
		switch ty.Kind {
		case ir.Void, ir.Bool, ir.Char32:
			return "Pointer"
		case ir.Char, ir.SChar, ir.UChar:
			return "ByteByReference"
		case ir.Float:
			return "FloatByReference"
		case ir.Double:
			return "DoubleByReference"
		case ir.VaList, ir.PtrDiffT:
			return "PointerByReference"
		case ir.Integer:
			switch ty.IntKind {
			case ir.Short, ir.B16:
				return "ShortByReference"
			case ir.Int, ir.B32:
				return "IntByReference"
			case ir.Long, ir.SizeT, ir.Size:
				return "NativeLongByReference"
			case ir.LongLong, ir.B64:
				return "LongByReference"
			case ir.B8:
				return "ByteByReference"
			}
		}
		return fmt.Sprintf("/* Not implemented yet : %s */", ir.TypeDebugString(pointee))
	case ir.Array:
		return "Pointer"
	case ir.FuncPtr:
		return "CallbackReference"
	default:
		return fmt.Sprintf("/* Not implemented yet : %s */", ir.TypeDebugString(pointee))
	}
}

func mapPrimitive(p ir.Primitive) string {
	switch p.Kind {
	case ir.Void:
		return "void"
	case ir.Bool:
		return "boolean"
	case ir.Char, ir.SChar, ir.UChar:
		return "byte"
	case ir.Char32:
		return "char"
	case ir.Float:
		return "float"
	case ir.Double:
		return "double"
	case ir.VaList, ir.PtrDiffT:
		return "Pointer"
	case ir.Integer:
		switch p.IntKind {
		case ir.Short, ir.B16:
			return "short"
		case ir.Int, ir.B32:
			return "int"
		case ir.Long, ir.SizeT, ir.Size:
			return "NativeLong"
		case ir.LongLong, ir.B64:
			return "long"
		case ir.B8:
			return "byte"
		}
	}
	return fmt.Sprintf("/* Not implemented yet : %s */", ir.TypeDebugString(p))
}

// WriteType writes the mapped Java name of t.
func (b *Backend) WriteType(out *writer.SourceWriter, t ir.Type) {
	out.Write(MapType(t))
}
