package java

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Larkooo/cbindgen/internal/ir"
)

func TestMapTypePrimitives(t *testing.T) {
	tests := []struct {
		name string
		ty   ir.Type
		want string
	}{
		{"void", ir.Primitive{Kind: ir.Void}, "void"},
		{"bool", ir.Primitive{Kind: ir.Bool}, "boolean"},
		{"char", ir.Primitive{Kind: ir.Char}, "byte"},
		{"schar", ir.Primitive{Kind: ir.SChar}, "byte"},
		{"uchar", ir.Primitive{Kind: ir.UChar}, "byte"},
		{"char32", ir.Primitive{Kind: ir.Char32}, "char"},
		{"float", ir.Primitive{Kind: ir.Float}, "float"},
		{"double", ir.Primitive{Kind: ir.Double}, "double"},
		{"va_list", ir.Primitive{Kind: ir.VaList}, "Pointer"},
		{"ptrdiff_t", ir.Primitive{Kind: ir.PtrDiffT}, "Pointer"},
		{"short", ir.IntPrimitive(ir.Short, true), "short"},
		{"int", ir.IntPrimitive(ir.Int, true), "int"},
		{"long", ir.IntPrimitive(ir.Long, true), "NativeLong"},
		{"longlong", ir.IntPrimitive(ir.LongLong, true), "long"},
		{"size_t", ir.IntPrimitive(ir.SizeT, false), "NativeLong"},
		{"usize", ir.IntPrimitive(ir.Size, false), "NativeLong"},
		{"i8", ir.IntPrimitive(ir.B8, true), "byte"},
		{"u16", ir.IntPrimitive(ir.B16, false), "short"},
		{"u32", ir.IntPrimitive(ir.B32, false), "int"},
		{"u64", ir.IntPrimitive(ir.B64, false), "long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.ty))
		})
	}
}

func TestMapTypeUnsignedMapsLikeSigned(t *testing.T) {
	// Java has no unsigned primitives; width alone decides the mapping.
	for _, kind := range []ir.IntKind{ir.Short, ir.Int, ir.Long, ir.LongLong, ir.B8, ir.B16, ir.B32, ir.B64} {
		signed := MapType(ir.IntPrimitive(kind, true))
		unsigned := MapType(ir.IntPrimitive(kind, false))
		assert.Equal(t, signed, unsigned, "kind %s", kind)
	}
}

func TestMapTypePointers(t *testing.T) {
	tests := []struct {
		name string
		ty   ir.Type
		want string
	}{
		{"ptr to void", ir.Ptr{Pointee: ir.Primitive{Kind: ir.Void}}, "Pointer"},
		{"ptr to bool", ir.Ptr{Pointee: ir.Primitive{Kind: ir.Bool}}, "Pointer"},
		{"ptr to char", ir.Ptr{Pointee: ir.Primitive{Kind: ir.Char}}, "ByteByReference"},
		{"ptr to char32", ir.Ptr{Pointee: ir.Primitive{Kind: ir.Char32}}, "Pointer"},
		{"ptr to float", ir.Ptr{Pointee: ir.Primitive{Kind: ir.Float}}, "FloatByReference"},
		{"ptr to double", ir.Ptr{Pointee: ir.Primitive{Kind: ir.Double}}, "DoubleByReference"},
		{"ptr to i8", ir.Ptr{Pointee: ir.IntPrimitive(ir.B8, true)}, "ByteByReference"},
		{"ptr to u16", ir.Ptr{Pointee: ir.IntPrimitive(ir.B16, false)}, "ShortByReference"},
		{"ptr to i32", ir.Ptr{Pointee: ir.IntPrimitive(ir.B32, true)}, "IntByReference"},
		{"ptr to u64", ir.Ptr{Pointee: ir.IntPrimitive(ir.B64, false)}, "LongByReference"},
		{"ptr to long", ir.Ptr{Pointee: ir.IntPrimitive(ir.Long, true)}, "NativeLongByReference"},
		{"ptr to size_t", ir.Ptr{Pointee: ir.IntPrimitive(ir.SizeT, false)}, "NativeLongByReference"},
		{"ptr to path", ir.Ptr{Pointee: ir.Path{Name: "Point"}}, "PointByReference"},
		{
			"ptr to ptr",
			ir.Ptr{Pointee: ir.Ptr{Pointee: ir.IntPrimitive(ir.B32, true)}},
			"PointerByReference",
		},
		{
			"ptr to array",
			ir.Ptr{Pointee: ir.Array{Elem: ir.IntPrimitive(ir.B8, false), Len: "4"}},
			"Pointer",
		},
		{
			"ptr to fn",
			ir.Ptr{Pointee: ir.FuncPtr{Ret: ir.Primitive{Kind: ir.Void}}},
			"CallbackReference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.ty))
		})
	}
}

func TestMapTypeConstnessDoesNotAffectMapping(t *testing.T) {
	pointee := ir.IntPrimitive(ir.B32, true)
	assert.Equal(t,
		MapType(ir.Ptr{Pointee: pointee}),
		MapType(ir.Ptr{Pointee: pointee, IsConst: true, Nullable: true}))
}

func TestMapTypeComposites(t *testing.T) {
	assert.Equal(t, "Point", MapType(ir.Path{Name: "Point"}))
	assert.Equal(t, "int[]", MapType(ir.Array{Elem: ir.IntPrimitive(ir.B32, true), Len: "3"}))
	assert.Equal(t, "byte[]", MapType(ir.Array{Elem: ir.Primitive{Kind: ir.Char}, Len: "N"}))
	assert.Equal(t, "Callback", MapType(ir.FuncPtr{Ret: ir.Primitive{Kind: ir.Void}}))
}

func TestMapTypeIsPure(t *testing.T) {
	ty := ir.Ptr{Pointee: ir.Path{Name: "Handle"}}
	first := MapType(ty)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, MapType(ty))
	}
}
