package java

import (
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// jnaIntegerType classifies the JNA representation of a native integer kind.
// The fixed kinds carry their byte width; NativeLong and SizeT resolve their
// width at host runtime through the JNA Native class, never at generation
// time.
type jnaIntegerType int

const (
	jnaByte jnaIntegerType = iota
	jnaShort
	jnaInt
	jnaNativeLong
	jnaLong
	jnaSizeT
)

// jnaIntegerFromKind maps an IR integer kind to its JNA representation.
func jnaIntegerFromKind(kind ir.IntKind) jnaIntegerType {
	switch kind {
	case ir.Short, ir.B16:
		return jnaShort
	case ir.Long:
		return jnaNativeLong
	case ir.LongLong, ir.B64:
		return jnaLong
	case ir.SizeT, ir.Size:
		return jnaSizeT
	case ir.B8:
		return jnaByte
	default: // Int, B32
		return jnaInt
	}
}

// size returns the Java expression for the kind's byte width.
func (t jnaIntegerType) size() string {
	switch t {
	case jnaByte:
		return "1"
	case jnaShort:
		return "2"
	case jnaInt:
		return "4"
	case jnaNativeLong:
		return "Native.LONG_SIZE"
	case jnaLong:
		return "8"
	case jnaSizeT:
		return "Native.SIZE_T_SIZE"
	default:
		return "4"
	}
}

// getMethod returns the Pointer accessor expression reading this kind.
func (t jnaIntegerType) getMethod() string {
	switch t {
	case jnaByte:
		return "getByte(0)"
	case jnaShort:
		return "getShort(0)"
	case jnaInt:
		return "getInt(0)"
	case jnaNativeLong, jnaSizeT:
		return "getNativeLong(0).longValue()"
	case jnaLong:
		return "getLong(0)"
	default:
		return "getInt(0)"
	}
}

// setMethod returns the Pointer accessor statement writing this kind from a
// wrapper named "value".
func (t jnaIntegerType) setMethod() string {
	switch t {
	case jnaByte:
		return "setByte(0, (byte)value.intValue())"
	case jnaShort:
		return "setShort(0, (short)value.intValue())"
	case jnaInt:
		return "setInt(0, value.intValue())"
	case jnaNativeLong, jnaSizeT:
		return "setNativeLong(0, new NativeLong(value.longValue()))"
	case jnaLong:
		return "setLong(0, value.longValue())"
	default:
		return "setInt(0, value.intValue())"
	}
}

// writeIntegerType synthesizes the value/reference wrapper pair for an
// integer kind: an IntegerType subclass with default, from-value and
// from-handle constructors, and a ByReference companion with getValue and
// setValue going through the kind's accessor. extra runs inside the value
// class body; enums use it to add their variant instances.
func (b *Backend) writeIntegerType(
	out *writer.SourceWriter,
	documentation ir.Documentation,
	name string,
	underlying jnaIntegerType,
	deprecated *string,
	extra func(*writer.SourceWriter),
) {
	size := underlying.size()

	b.WriteDocumentation(out, documentation)
	b.writeDeprecated(out, deprecated)
	out.Writef("class %s extends IntegerType", name)
	out.OpenBrace()
	out.Writef("public %s()", name)
	out.OpenBrace()
	out.Writef("super(%s);", size)
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()
	out.Writef("public %s(long value)", name)
	out.OpenBrace()
	out.Writef("super(%s, value);", size)
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()
	out.Writef("public %s(Pointer p)", name)
	out.OpenBrace()
	out.Writef("this(p.%s);", underlying.getMethod())
	out.CloseBrace(false)
	out.NewLine()
	if extra != nil {
		extra(out)
	}
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()

	out.Writef("class %sByReference extends ByReference", name)
	out.OpenBrace()
	out.Writef("public %sByReference()", name)
	out.OpenBrace()
	out.Writef("super(%s);", size)
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()
	out.Writef("public %sByReference(Pointer p)", name)
	out.OpenBrace()
	out.Writef("super(%s);", size)
	out.NewLine()
	out.Write("setPointer(p);")
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()
	out.Writef("public %s getValue()", name)
	out.OpenBrace()
	out.Writef("return new %s(getPointer().%s);", name, underlying.getMethod())
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()
	out.Writef("public void setValue(%s value)", name)
	out.OpenBrace()
	out.Writef("getPointer().%s;", underlying.setMethod())
	out.CloseBrace(false)
	out.NewLine()
	out.CloseBrace(false)
}
