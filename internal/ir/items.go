package ir

// Documentation holds the comment lines attached to an item or field.
// An empty Lines slice means no comment block is emitted.
type Documentation struct {
	Lines []string
}

// IsEmpty returns true if there are no documentation lines.
func (d Documentation) IsEmpty() bool {
	return len(d.Lines) == 0
}

// Annotations carries the cross-cutting item annotations.
type Annotations struct {
	// Deprecated is non-nil if the item is deprecated. The string is the
	// deprecation message and may be empty.
	Deprecated *string
}

// Field is a single struct or union field.
type Field struct {
	Name          string
	Ty            Type
	Documentation Documentation
}

// Struct is a named aggregate with ordered fields.
type Struct struct {
	Name                string
	Fields              []Field
	AssociatedConstants []Constant

	// IsTransparent is true iff the struct has exactly one field and should
	// be represented as a wrapper around that field's type rather than a
	// full aggregate class.
	IsTransparent bool

	Documentation Documentation
	Annotations   Annotations
}

// Union is a named untagged union with ordered fields.
type Union struct {
	Name          string
	Fields        []Field
	Documentation Documentation
	Annotations   Annotations
}

// EnumVariant is a single enum variant. Discriminant is nil when the source
// declared none; resolution then falls back to previous discriminant + 1.
type EnumVariant struct {
	Name          string
	Discriminant  Literal
	Documentation Documentation
}

// Enum is a named enumeration with ordered variants.
type Enum struct {
	Name          string
	Variants      []EnumVariant
	Documentation Documentation
	Annotations   Annotations
}

// OpaqueItem is a handle with no visible structure.
type OpaqueItem struct {
	Name          string
	Documentation Documentation
	Annotations   Annotations
}

// Typedef aliases a name to an arbitrary type. Emission strategy is driven
// entirely by the aliased type's variant.
type Typedef struct {
	Name          string
	Aliased       Type
	Documentation Documentation
	Annotations   Annotations
}

// Function is an exported native function.
type Function struct {
	Name          string
	Ret           Type
	Args          []FuncArg
	Documentation Documentation
	Annotations   Annotations
}

// Constant is a named compile-time value.
type Constant struct {
	Name          string
	Ty            Type
	Value         Literal
	Documentation Documentation
	Annotations   Annotations
}

// Static is a named static variable. No backend currently supports statics;
// they emit a placeholder.
type Static struct {
	Name          string
	Ty            Type
	Documentation Documentation
	Annotations   Annotations
}

// Item is the closed sum of top-level declarations a File can hold, in the
// order the backend driver visits them.
type Item interface {
	isItem()
	// ItemName returns the item's exported name.
	ItemName() string
}

func (s *Struct) isItem()     {}
func (u *Union) isItem()      {}
func (e *Enum) isItem()       {}
func (o *OpaqueItem) isItem() {}
func (t *Typedef) isItem()    {}
func (f *Function) isItem()   {}
func (c *Constant) isItem()   {}
func (s *Static) isItem()     {}

func (s *Struct) ItemName() string     { return s.Name }
func (u *Union) ItemName() string      { return u.Name }
func (e *Enum) ItemName() string       { return e.Name }
func (o *OpaqueItem) ItemName() string { return o.Name }
func (t *Typedef) ItemName() string    { return t.Name }
func (f *Function) ItemName() string   { return f.Name }
func (c *Constant) ItemName() string   { return c.Name }
func (s *Static) ItemName() string     { return s.Name }

// File is the root of a resolved IR tree: the library's declarations in
// declaration order.
type File struct {
	// Name identifies the API; informational only.
	Name string

	// Items holds every top-level declaration in emission order.
	Items []Item
}
