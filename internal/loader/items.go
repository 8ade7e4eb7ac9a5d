package loader

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/Larkooo/cbindgen/internal/ir"
)

// itemKinds lists the recognized item keys in the order they are probed.
var itemKinds = []string{"struct", "union", "enum", "opaque", "typedef", "fn", "const", "static"}

// CompileItem parses one element of an api items list. Each element is a
// struct with exactly one of the keys in itemKinds.
func CompileItem(v cue.Value) (ir.Item, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	for _, kind := range itemKinds {
		kindVal := v.LookupPath(cue.ParsePath(kind))
		if !kindVal.Exists() {
			continue
		}
		switch kind {
		case "struct":
			return compileStruct(kindVal)
		case "union":
			return compileUnion(kindVal)
		case "enum":
			return compileEnum(kindVal)
		case "opaque":
			return compileOpaque(kindVal)
		case "typedef":
			return compileTypedef(kindVal)
		case "fn":
			return compileFunction(kindVal)
		case "const":
			return compileConstant(kindVal)
		case "static":
			return compileStatic(kindVal)
		}
	}

	return nil, &CompileError{
		Field:   "item",
		Message: fmt.Sprintf("item must declare one of %v", itemKinds),
		Pos:     v.Pos(),
	}
}

func compileStruct(v cue.Value) (*ir.Struct, error) {
	name, err := requiredName(v, "struct")
	if err != nil {
		return nil, err
	}

	s := &ir.Struct{
		Name:          name,
		Documentation: compileDocumentation(v),
		Annotations:   compileAnnotations(v),
	}

	s.Fields, err = compileFields(v)
	if err != nil {
		return nil, err
	}

	if tVal := v.LookupPath(cue.ParsePath("transparent")); tVal.Exists() {
		transparent, err := tVal.Bool()
		if err != nil {
			return nil, formatCUEError(err)
		}
		s.IsTransparent = transparent
	}

	if constsVal := v.LookupPath(cue.ParsePath("constants")); constsVal.Exists() {
		iter, err := constsVal.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			c, err := compileConstant(iter.Value())
			if err != nil {
				return nil, err
			}
			s.AssociatedConstants = append(s.AssociatedConstants, *c)
		}
	}

	return s, nil
}

func compileUnion(v cue.Value) (*ir.Union, error) {
	name, err := requiredName(v, "union")
	if err != nil {
		return nil, err
	}

	u := &ir.Union{
		Name:          name,
		Documentation: compileDocumentation(v),
		Annotations:   compileAnnotations(v),
	}
	u.Fields, err = compileFields(v)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func compileEnum(v cue.Value) (*ir.Enum, error) {
	name, err := requiredName(v, "enum")
	if err != nil {
		return nil, err
	}

	e := &ir.Enum{
		Name:          name,
		Documentation: compileDocumentation(v),
		Annotations:   compileAnnotations(v),
	}

	variantsVal := v.LookupPath(cue.ParsePath("variants"))
	if !variantsVal.Exists() {
		return nil, &CompileError{
			Field:   "enum.variants",
			Message: fmt.Sprintf("enum %q must declare variants", name),
			Pos:     v.Pos(),
		}
	}
	iter, err := variantsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		variant, err := compileVariant(iter.Value())
		if err != nil {
			return nil, err
		}
		e.Variants = append(e.Variants, variant)
	}
	return e, nil
}

func compileVariant(v cue.Value) (ir.EnumVariant, error) {
	var variant ir.EnumVariant

	// Shorthand: a bare string is a variant with an implicit discriminant.
	if name, err := v.String(); err == nil {
		variant.Name = ir.NormalizeName(name)
		return variant, nil
	}

	name, err := requiredName(v, "variant")
	if err != nil {
		return variant, err
	}
	variant.Name = name
	variant.Documentation = compileDocumentation(v)

	if discVal := v.LookupPath(cue.ParsePath("discriminant")); discVal.Exists() {
		if n, err := discVal.Int64(); err == nil {
			variant.Discriminant = ir.ExprLiteral{Expr: fmt.Sprintf("%d", n)}
		} else {
			expr, err := discVal.String()
			if err != nil {
				return variant, formatCUEError(err)
			}
			variant.Discriminant = ir.ExprLiteral{Expr: expr}
		}
	}
	return variant, nil
}

func compileOpaque(v cue.Value) (*ir.OpaqueItem, error) {
	name, err := requiredName(v, "opaque")
	if err != nil {
		return nil, err
	}
	return &ir.OpaqueItem{
		Name:          name,
		Documentation: compileDocumentation(v),
		Annotations:   compileAnnotations(v),
	}, nil
}

func compileTypedef(v cue.Value) (*ir.Typedef, error) {
	name, err := requiredName(v, "typedef")
	if err != nil {
		return nil, err
	}
	aliased, err := compileType(v.LookupPath(cue.ParsePath("type")))
	if err != nil {
		return nil, err
	}
	return &ir.Typedef{
		Name:          name,
		Aliased:       aliased,
		Documentation: compileDocumentation(v),
		Annotations:   compileAnnotations(v),
	}, nil
}

func compileFunction(v cue.Value) (*ir.Function, error) {
	name, err := requiredName(v, "fn")
	if err != nil {
		return nil, err
	}
	ret, err := compileReturnType(v)
	if err != nil {
		return nil, err
	}
	args, err := compileArgs(v)
	if err != nil {
		return nil, err
	}
	return &ir.Function{
		Name:          name,
		Ret:           ret,
		Args:          args,
		Documentation: compileDocumentation(v),
		Annotations:   compileAnnotations(v),
	}, nil
}

func compileConstant(v cue.Value) (*ir.Constant, error) {
	name, err := requiredName(v, "const")
	if err != nil {
		return nil, err
	}
	ty, err := compileType(v.LookupPath(cue.ParsePath("type")))
	if err != nil {
		return nil, err
	}
	value, err := compileLiteral(v.LookupPath(cue.ParsePath("value")))
	if err != nil {
		return nil, err
	}
	return &ir.Constant{
		Name:          name,
		Ty:            ty,
		Value:         value,
		Documentation: compileDocumentation(v),
		Annotations:   compileAnnotations(v),
	}, nil
}

func compileStatic(v cue.Value) (*ir.Static, error) {
	name, err := requiredName(v, "static")
	if err != nil {
		return nil, err
	}
	ty, err := compileType(v.LookupPath(cue.ParsePath("type")))
	if err != nil {
		return nil, err
	}
	return &ir.Static{
		Name:          name,
		Ty:            ty,
		Documentation: compileDocumentation(v),
		Annotations:   compileAnnotations(v),
	}, nil
}

// compileLiteral parses a constant value: a string expression, or a CUE
// number rendered in decimal.
func compileLiteral(v cue.Value) (ir.Literal, error) {
	if !v.Exists() {
		return nil, &CompileError{Field: "value", Message: "constant value is required", Pos: v.Pos()}
	}
	if n, err := v.Int64(); err == nil {
		return ir.ExprLiteral{Expr: fmt.Sprintf("%d", n)}, nil
	}
	expr, err := v.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	return ir.ExprLiteral{Expr: expr}, nil
}

// compileFields parses an optional ordered fields list.
func compileFields(v cue.Value) ([]ir.Field, error) {
	fieldsVal := v.LookupPath(cue.ParsePath("fields"))
	if !fieldsVal.Exists() {
		return nil, nil
	}

	iter, err := fieldsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var fields []ir.Field
	for iter.Next() {
		fieldVal := iter.Value()
		name, err := requiredName(fieldVal, "field")
		if err != nil {
			return nil, err
		}
		ty, err := compileType(fieldVal.LookupPath(cue.ParsePath("type")))
		if err != nil {
			return nil, err
		}
		fields = append(fields, ir.Field{
			Name:          name,
			Ty:            ty,
			Documentation: compileDocumentation(fieldVal),
		})
	}
	return fields, nil
}

// compileDocumentation parses an optional doc field: a single string (split
// on newlines) or a list of lines. Non-empty lines gain a leading space so
// the emitted comment reads " * line".
func compileDocumentation(v cue.Value) ir.Documentation {
	docVal := v.LookupPath(cue.ParsePath("doc"))
	if !docVal.Exists() {
		return ir.Documentation{}
	}

	var lines []string
	if s, err := docVal.String(); err == nil {
		lines = splitDocLines(s)
	} else if iter, err := docVal.List(); err == nil {
		for iter.Next() {
			if line, err := iter.Value().String(); err == nil {
				lines = append(lines, padDocLine(line))
			}
		}
	}
	return ir.Documentation{Lines: lines}
}

// compileAnnotations parses an optional deprecated field. Presence marks the
// item deprecated even with an empty message.
func compileAnnotations(v cue.Value) ir.Annotations {
	var a ir.Annotations
	depVal := v.LookupPath(cue.ParsePath("deprecated"))
	if depVal.Exists() {
		msg, err := depVal.String()
		if err != nil {
			msg = ""
		}
		a.Deprecated = &msg
	}
	return a
}

func requiredName(v cue.Value, kind string) (string, error) {
	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return "", &CompileError{
			Field:   kind + ".name",
			Message: "name is required",
			Pos:     v.Pos(),
		}
	}
	name, err := nameVal.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return ir.NormalizeName(name), nil
}
