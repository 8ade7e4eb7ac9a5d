package ir

import (
	"fmt"
	"strings"
)

// TypeDebugString renders a deterministic diagnostic form of a type for use
// in soft-failure placeholder comments.
func TypeDebugString(t Type) string {
	switch ty := t.(type) {
	case Primitive:
		if ty.Kind == Integer {
			sign := "u"
			if ty.Signed {
				sign = "i"
			}
			return fmt.Sprintf("Primitive(%s%s)", sign, ty.IntKind)
		}
		return fmt.Sprintf("Primitive(%s)", ty.Kind)
	case Ptr:
		return fmt.Sprintf("Ptr(%s)", TypeDebugString(ty.Pointee))
	case Path:
		return fmt.Sprintf("Path(%s)", ty.Name)
	case Array:
		return fmt.Sprintf("Array(%s; %s)", TypeDebugString(ty.Elem), ty.Len)
	case FuncPtr:
		args := make([]string, len(ty.Args))
		for i, a := range ty.Args {
			args[i] = TypeDebugString(a.Ty)
		}
		return fmt.Sprintf("FuncPtr(%s -> %s)", strings.Join(args, ", "), TypeDebugString(ty.Ret))
	default:
		return fmt.Sprintf("%#v", t)
	}
}

// ItemDebugString renders a deterministic diagnostic form of a top-level item.
func ItemDebugString(item Item) string {
	switch it := item.(type) {
	case *Static:
		return fmt.Sprintf("Static(%s: %s)", it.Name, TypeDebugString(it.Ty))
	case *Typedef:
		return fmt.Sprintf("Typedef(%s = %s)", it.Name, TypeDebugString(it.Aliased))
	case *Struct:
		fields := make([]string, len(it.Fields))
		for i, f := range it.Fields {
			fields[i] = fmt.Sprintf("%s: %s", f.Name, TypeDebugString(f.Ty))
		}
		return fmt.Sprintf("Struct(%s{%s})", it.Name, strings.Join(fields, ", "))
	case *Constant:
		return fmt.Sprintf("Constant(%s: %s = %s)", it.Name, TypeDebugString(it.Ty), it.Value.DebugString())
	default:
		return fmt.Sprintf("%T(%s)", item, item.ItemName())
	}
}
