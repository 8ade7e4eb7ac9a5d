package loader

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/Larkooo/cbindgen/internal/ir"
)

// primitives maps the type names an API description may use to IR
// primitives. Fixed-width integers use the iN/uN spellings; the C model
// kinds keep their C names.
var primitives = map[string]ir.Primitive{
	"void":      {Kind: ir.Void},
	"bool":      {Kind: ir.Bool},
	"char":      {Kind: ir.Char},
	"schar":     {Kind: ir.SChar},
	"uchar":     {Kind: ir.UChar},
	"char32":    {Kind: ir.Char32},
	"float":     {Kind: ir.Float},
	"f32":       {Kind: ir.Float},
	"double":    {Kind: ir.Double},
	"f64":       {Kind: ir.Double},
	"va_list":   {Kind: ir.VaList},
	"ptrdiff_t": {Kind: ir.PtrDiffT},

	"i8":  ir.IntPrimitive(ir.B8, true),
	"u8":  ir.IntPrimitive(ir.B8, false),
	"i16": ir.IntPrimitive(ir.B16, true),
	"u16": ir.IntPrimitive(ir.B16, false),
	"i32": ir.IntPrimitive(ir.B32, true),
	"u32": ir.IntPrimitive(ir.B32, false),
	"i64": ir.IntPrimitive(ir.B64, true),
	"u64": ir.IntPrimitive(ir.B64, false),

	"short":     ir.IntPrimitive(ir.Short, true),
	"ushort":    ir.IntPrimitive(ir.Short, false),
	"int":       ir.IntPrimitive(ir.Int, true),
	"uint":      ir.IntPrimitive(ir.Int, false),
	"long":      ir.IntPrimitive(ir.Long, true),
	"ulong":     ir.IntPrimitive(ir.Long, false),
	"longlong":  ir.IntPrimitive(ir.LongLong, true),
	"ulonglong": ir.IntPrimitive(ir.LongLong, false),

	"isize":   ir.IntPrimitive(ir.Size, true),
	"usize":   ir.IntPrimitive(ir.Size, false),
	"size_t":  ir.IntPrimitive(ir.SizeT, false),
	"ssize_t": ir.IntPrimitive(ir.SizeT, true),
}

// compileType parses a type expression.
//
// A type is either a string (a primitive name, or any other identifier which
// becomes a path reference) or a struct with exactly one of the keys ptr,
// array, fn or path:
//
//	type: "u32"
//	type: {ptr: "ExportMe"}
//	type: {array: {of: "f32", len: 4}}
//	type: {fn: {ret: "void", args: [{name: "x", type: "i32"}]}}
func compileType(v cue.Value) (ir.Type, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	if name, err := v.String(); err == nil {
		if prim, ok := primitives[name]; ok {
			return prim, nil
		}
		return ir.Path{Name: ir.NormalizeName(name)}, nil
	}

	if ptrVal := v.LookupPath(cue.ParsePath("ptr")); ptrVal.Exists() {
		pointee, err := compileType(ptrVal)
		if err != nil {
			return nil, err
		}
		ptr := ir.Ptr{Pointee: pointee}
		if constVal := v.LookupPath(cue.ParsePath("const")); constVal.Exists() {
			ptr.IsConst, _ = constVal.Bool()
		}
		if nullableVal := v.LookupPath(cue.ParsePath("nullable")); nullableVal.Exists() {
			ptr.Nullable, _ = nullableVal.Bool()
		}
		return ptr, nil
	}

	if arrVal := v.LookupPath(cue.ParsePath("array")); arrVal.Exists() {
		elem, err := compileType(arrVal.LookupPath(cue.ParsePath("of")))
		if err != nil {
			return nil, err
		}
		length, err := compileArrayLen(arrVal.LookupPath(cue.ParsePath("len")))
		if err != nil {
			return nil, err
		}
		return ir.Array{Elem: elem, Len: length}, nil
	}

	if fnVal := v.LookupPath(cue.ParsePath("fn")); fnVal.Exists() {
		ret, err := compileReturnType(fnVal)
		if err != nil {
			return nil, err
		}
		args, err := compileArgs(fnVal)
		if err != nil {
			return nil, err
		}
		return ir.FuncPtr{Ret: ret, Args: args}, nil
	}

	if pathVal := v.LookupPath(cue.ParsePath("path")); pathVal.Exists() {
		name, err := pathVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return ir.Path{Name: ir.NormalizeName(name)}, nil
	}

	return nil, &CompileError{
		Field:   "type",
		Message: "type must be a name or one of {ptr, array, fn, path}",
		Pos:     v.Pos(),
	}
}

// compileArrayLen accepts an int or a symbolic string length.
func compileArrayLen(v cue.Value) (string, error) {
	if !v.Exists() {
		return "", &CompileError{Field: "array.len", Message: "array length is required", Pos: v.Pos()}
	}
	if n, err := v.Int64(); err == nil {
		return fmt.Sprintf("%d", n), nil
	}
	s, err := v.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// compileReturnType parses an optional ret field, defaulting to void.
func compileReturnType(v cue.Value) (ir.Type, error) {
	retVal := v.LookupPath(cue.ParsePath("ret"))
	if !retVal.Exists() {
		return ir.Primitive{Kind: ir.Void}, nil
	}
	return compileType(retVal)
}

// compileArgs parses an optional ordered args list.
func compileArgs(v cue.Value) ([]ir.FuncArg, error) {
	argsVal := v.LookupPath(cue.ParsePath("args"))
	if !argsVal.Exists() {
		return nil, nil
	}

	iter, err := argsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var args []ir.FuncArg
	for iter.Next() {
		argVal := iter.Value()

		ty, err := compileType(argVal.LookupPath(cue.ParsePath("type")))
		if err != nil {
			return nil, err
		}

		arg := ir.FuncArg{Ty: ty}
		if nameVal := argVal.LookupPath(cue.ParsePath("name")); nameVal.Exists() {
			name, err := nameVal.String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			arg.Name = ir.NormalizeName(name)
		}
		args = append(args, arg)
	}
	return args, nil
}
