package java

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/testutil"
	"github.com/Larkooo/cbindgen/internal/writer"
)

func writeTypedef(td *ir.Typedef) string {
	return emit(nil, func(b *Backend, out *writer.SourceWriter) {
		b.WriteTypedef(out, td)
	})
}

func TestWriteTypedefFunctionPointer(t *testing.T) {
	got := writeTypedef(&ir.Typedef{
		Name: "ProgressCallback",
		Aliased: ir.FuncPtr{
			Ret: ir.Primitive{Kind: ir.Void},
			Args: []ir.FuncArg{
				{Name: "done", Ty: ir.IntPrimitive(ir.B32, false)},
				{Name: "total", Ty: ir.IntPrimitive(ir.B32, false)},
			},
		},
	})

	assert.Contains(t, got, "interface ProgressCallback extends Callback {")
	assert.Contains(t, got, "void invoke(int done, int total);")
}

func TestWriteTypedefFunctionPointerUnnamedArgs(t *testing.T) {
	got := writeTypedef(&ir.Typedef{
		Name: "Hook",
		Aliased: ir.FuncPtr{
			Ret: ir.Primitive{Kind: ir.Bool},
			Args: []ir.FuncArg{
				{Name: "", Ty: ir.IntPrimitive(ir.B32, true)},
				{Name: "_", Ty: ir.Primitive{Kind: ir.Double}},
			},
		},
	})

	assert.Contains(t, got, "boolean invoke(int arg0, double arg1);")
}

func TestWriteTypedefPathSubclassesBothHalves(t *testing.T) {
	got := writeTypedef(&ir.Typedef{Name: "Vec", Aliased: ir.Path{Name: "Point"}})

	assert.Contains(t, got, "class Vec extends Point {")
	assert.Contains(t, got, "class VecByReference extends PointByReference {")
	assert.Contains(t, got, "public Vec() {")
	assert.Contains(t, got, "public Vec(Pointer p) {")
	assert.Contains(t, got, "public VecByReference(Pointer p) {")
}

func TestWriteTypedefIntegerWidths(t *testing.T) {
	tests := []struct {
		name string
		kind ir.IntKind
		size string
		get  string
		set  string
	}{
		{"u8", ir.B8, "super(1);", "getByte(0)", "setByte(0, (byte)value.intValue())"},
		{"i16", ir.B16, "super(2);", "getShort(0)", "setShort(0, (short)value.intValue())"},
		{"u32", ir.B32, "super(4);", "getInt(0)", "setInt(0, value.intValue())"},
		{"u64", ir.B64, "super(8);", "getLong(0)", "setLong(0, value.longValue())"},
		{"long", ir.Long, "super(Native.LONG_SIZE);", "getNativeLong(0).longValue()", "setNativeLong(0, new NativeLong(value.longValue()))"},
		{"size_t", ir.SizeT, "super(Native.SIZE_T_SIZE);", "getNativeLong(0).longValue()", "setNativeLong(0, new NativeLong(value.longValue()))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := writeTypedef(&ir.Typedef{
				Name:    "Id",
				Aliased: ir.IntPrimitive(tt.kind, false),
			})

			assert.Contains(t, got, "class Id extends IntegerType {")
			assert.Contains(t, got, "class IdByReference extends ByReference {")
			assert.Contains(t, got, tt.size)
			assert.Contains(t, got, "this(p."+tt.get+");")
			assert.Contains(t, got, "getPointer()."+tt.set+";")
		})
	}
}

func TestWriteTypedefPointerAndArray(t *testing.T) {
	ptr := writeTypedef(&ir.Typedef{
		Name:    "Buffer",
		Aliased: testutil.PtrTo(ir.Primitive{Kind: ir.Void}),
	})
	assert.Contains(t, ptr, "class Buffer extends PointerType {")
	assert.Contains(t, ptr, "class BufferByReference extends Buffer {")

	arr := writeTypedef(&ir.Typedef{
		Name:    "Digest",
		Aliased: ir.Array{Elem: ir.IntPrimitive(ir.B8, false), Len: "32"},
	})
	assert.Contains(t, arr, "class Digest extends PointerType {")
}

func TestWriteTypedefUnsupportedPrimitive(t *testing.T) {
	got := writeTypedef(&ir.Typedef{Name: "Ratio", Aliased: ir.Primitive{Kind: ir.Double}})

	assert.Contains(t, got, "/* Not implemented yet : ")
	assert.Contains(t, got, "Typedef(Ratio = Primitive(Double))")
	assert.NotContains(t, got, "class Ratio")
}
