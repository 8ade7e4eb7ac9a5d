// Package loader compiles CUE API descriptions into the IR tree the emission
// backends consume. The description is declarative: an api block with a name
// and an ordered items list, each item declaring one struct, union, enum,
// opaque handle, typedef, function, constant or static.
//
// Item order in the list is declaration order: backends emit items exactly in
// this order.
package loader

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"

	"github.com/Larkooo/cbindgen/internal/ir"
)

// CompileAPI parses an api block into an ir.File, collecting one error per
// failed item rather than stopping at the first.
//
// The CUE value should be the api struct itself:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`api: { name: "demo", items: [...] }`)
//	file, errs := loader.CompileAPI(v.LookupPath(cue.ParsePath("api")))
func CompileAPI(v cue.Value) (*ir.File, []error) {
	if err := v.Err(); err != nil {
		return nil, []error{formatCUEError(err)}
	}

	file := &ir.File{}
	var errs []error

	if nameVal := v.LookupPath(cue.ParsePath("name")); nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			errs = append(errs, formatCUEError(err))
		} else {
			file.Name = ir.NormalizeName(name)
		}
	}

	itemsVal := v.LookupPath(cue.ParsePath("items"))
	if !itemsVal.Exists() {
		errs = append(errs, &CompileError{
			Field:   "api.items",
			Message: "api must declare an items list",
			Pos:     v.Pos(),
		})
		return file, errs
	}

	iter, err := itemsVal.List()
	if err != nil {
		errs = append(errs, formatCUEError(err))
		return file, errs
	}

	index := 0
	for iter.Next() {
		item, err := CompileItem(iter.Value())
		if err != nil {
			errs = append(errs, wrapItemError(err, index))
			index++
			continue
		}
		file.Items = append(file.Items, item)
		index++
	}

	return file, errs
}

// wrapItemError prefixes an item compile error with its list position.
func wrapItemError(err error, index int) error {
	if ce, ok := err.(*CompileError); ok {
		field := fmt.Sprintf("items[%d]", index)
		if ce.Field != "" && !strings.HasPrefix(ce.Field, "items[") {
			field = field + "." + ce.Field
		}
		return &CompileError{Field: field, Message: ce.Message, Pos: ce.Pos}
	}
	return fmt.Errorf("items[%d]: %w", index, err)
}

// splitDocLines splits a doc string on newlines, padding each non-empty line
// with the leading space the comment writer expects.
func splitDocLines(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = padDocLine(line)
	}
	return lines
}

func padDocLine(line string) string {
	if line == "" || strings.HasPrefix(line, " ") {
		return line
	}
	return " " + line
}
