package java

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Larkooo/cbindgen/internal/backend"
	"github.com/Larkooo/cbindgen/internal/config"
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/testutil"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// basicFile covers one item of every major kind behind a default config.
func basicFile() *ir.File {
	return &ir.File{
		Name: "demo",
		Items: []ir.Item{
			&ir.OpaqueItem{Name: "Handle"},
			&ir.Struct{
				Name: "Point",
				Fields: []ir.Field{
					{Name: "x", Ty: ir.IntPrimitive(ir.B32, true)},
					{Name: "y", Ty: ir.IntPrimitive(ir.B32, true)},
				},
			},
			&ir.Enum{
				Name: "Status",
				Variants: []ir.EnumVariant{
					testutil.Variant("Ok"),
					testutil.VariantAt("Err", "5"),
					testutil.Variant("Unknown"),
				},
			},
			&ir.Function{
				Name: "add",
				Ret:  ir.IntPrimitive(ir.B32, true),
				Args: []ir.FuncArg{
					{Name: "a", Ty: ir.IntPrimitive(ir.B32, true)},
					{Name: "b", Ty: ir.IntPrimitive(ir.B32, true)},
				},
			},
			&ir.Constant{Name: "MAX", Ty: ir.IntPrimitive(ir.B32, false), Value: testutil.Expr("10")},
		},
	}
}

func emitFile(cfg *config.Config, lib string, file *ir.File) []byte {
	out := writer.New()
	backend.Emit(New(cfg, lib), file, out)
	return out.Bytes()
}

func TestEmitBasicGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "basic", emitFile(config.Default(), "demo", basicFile()))
}

func TestEmitConfiguredGolden(t *testing.T) {
	cfg := config.Default()
	cfg.Header = "/* Licensed under MIT */"
	cfg.IncludeVersion = true
	cfg.AutogenWarning = "/* DO NOT EDIT */"
	cfg.Java.Package = "com.example.ffi"
	cfg.Java.InterfaceName = "NativeLib"
	cfg.Java.ExtraDefs = "long version();"
	cfg.Function.Args = config.LayoutVertical

	file := &ir.File{
		Name: "mylib",
		Items: []ir.Item{
			&ir.Function{
				Name:          "process",
				Ret:           ir.Primitive{Kind: ir.Bool},
				Documentation: testutil.Doc(" Feeds a chunk into the decoder."),
				Args: []ir.FuncArg{
					{Name: "data", Ty: testutil.PtrTo(ir.IntPrimitive(ir.B8, false))},
					{Name: "len", Ty: ir.IntPrimitive(ir.Size, false)},
				},
			},
			&ir.Typedef{
				Name: "ProgressCallback",
				Aliased: ir.FuncPtr{
					Ret: ir.Primitive{Kind: ir.Void},
					Args: []ir.FuncArg{
						{Name: "done", Ty: ir.IntPrimitive(ir.B32, false)},
						{Name: "total", Ty: ir.IntPrimitive(ir.B32, false)},
					},
				},
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "configured", emitFile(cfg, "mylib", file))
}

func TestEmitIsIdempotent(t *testing.T) {
	first := emitFile(config.Default(), "demo", basicFile())
	second := emitFile(config.Default(), "demo", basicFile())
	assert.Equal(t, first, second)
}

func TestEmitPreservesItemOrder(t *testing.T) {
	got := string(emitFile(config.Default(), "demo", basicFile()))

	handle := indexOf(t, got, "class Handle extends PointerType")
	point := indexOf(t, got, "class Point extends Structure")
	status := indexOf(t, got, "class Status extends IntegerType")
	add := indexOf(t, got, "int add(")
	max := indexOf(t, got, "int MAX = 10;")

	assert.True(t, handle < point && point < status && status < add && add < max)
}

func TestEmitEmptyFile(t *testing.T) {
	got := string(emitFile(config.Default(), "demo", &ir.File{Name: "demo"}))

	assert.Contains(t, got, "import com.sun.jna.*;")
	assert.Contains(t, got, "interface Bindings extends Library {")
	assert.Equal(t, byte('\n'), got[len(got)-1])
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	if idx < 0 {
		t.Fatalf("output does not contain %q", needle)
	}
	return idx
}
