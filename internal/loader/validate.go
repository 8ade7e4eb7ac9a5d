package loader

import (
	"fmt"
	"strings"

	"github.com/Larkooo/cbindgen/internal/ir"
)

// Validation error codes (E100-E199)
const (
	ErrEmptyName             = "E101" // item name empty
	ErrDuplicateName         = "E102" // duplicate top-level name
	ErrTransparentFieldCount = "E103" // transparent struct field count != 1
	ErrEnumNoVariants        = "E104" // enum without variants
	ErrDuplicateField        = "E105" // duplicate field or variant name
)

// ValidationError represents a structural problem in a compiled IR tree.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a compiled file against structural rules the emitters rely
// on. It returns all errors found rather than failing fast.
//
// Emission itself never needs a valid tree (unsupported shapes degrade to
// placeholders); validation exists so the validate command can report
// problems before they surface as odd Java.
func Validate(file *ir.File) []ValidationError {
	var errs []ValidationError

	names := make(map[string]bool)
	for i, item := range file.Items {
		field := fmt.Sprintf("items[%d]", i)

		name := item.ItemName()
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "item name must be non-empty",
				Code:    ErrEmptyName,
			})
			continue
		}
		if names[name] {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate item name: %q", name),
				Code:    ErrDuplicateName,
			})
		}
		names[name] = true

		switch it := item.(type) {
		case *ir.Struct:
			errs = append(errs, validateStruct(it, field)...)
		case *ir.Union:
			errs = append(errs, validateFields(it.Fields, field)...)
		case *ir.Enum:
			errs = append(errs, validateEnum(it, field)...)
		}
	}

	return errs
}

func validateStruct(s *ir.Struct, field string) []ValidationError {
	var errs []ValidationError

	if s.IsTransparent && len(s.Fields) != 1 {
		errs = append(errs, ValidationError{
			Field:   field + ".transparent",
			Message: fmt.Sprintf("transparent struct %q must have exactly one field, has %d", s.Name, len(s.Fields)),
			Code:    ErrTransparentFieldCount,
		})
	}

	errs = append(errs, validateFields(s.Fields, field)...)
	return errs
}

func validateFields(fields []ir.Field, field string) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)
	for i, f := range fields {
		if seen[f.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.fields[%d]", field, i),
				Message: fmt.Sprintf("duplicate field name: %q", f.Name),
				Code:    ErrDuplicateField,
			})
		}
		seen[f.Name] = true
	}
	return errs
}

func validateEnum(e *ir.Enum, field string) []ValidationError {
	var errs []ValidationError

	if len(e.Variants) == 0 {
		errs = append(errs, ValidationError{
			Field:   field + ".variants",
			Message: fmt.Sprintf("enum %q must have at least one variant", e.Name),
			Code:    ErrEnumNoVariants,
		})
	}

	seen := make(map[string]bool)
	for i, v := range e.Variants {
		if seen[v.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.variants[%d]", field, i),
				Message: fmt.Sprintf("duplicate variant name: %q", v.Name),
				Code:    ErrDuplicateField,
			})
		}
		seen[v.Name] = true
	}
	return errs
}
