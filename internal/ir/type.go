package ir

// Type is the closed sum of type shapes the IR can describe.
//
// The concrete variants are Primitive, Ptr, Path, Array and FuncPtr.
// Backends dispatch with a type switch; the set is sealed so a switch with a
// default arm is total.
type Type interface {
	isType()
}

// PrimitiveKind identifies a primitive type variant.
type PrimitiveKind int

const (
	Void PrimitiveKind = iota
	Bool
	Char  // plain C char
	SChar // signed char
	UChar // unsigned char
	Char32
	Float
	Double
	VaList   // variadic-args marker
	PtrDiffT // pointer-difference marker
	Integer  // sized integer; see Primitive.IntKind
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case Void:
		return "Void"
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	case SChar:
		return "SChar"
	case UChar:
		return "UChar"
	case Char32:
		return "Char32"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case VaList:
		return "VaList"
	case PtrDiffT:
		return "PtrDiffT"
	case Integer:
		return "Integer"
	default:
		return "Unknown"
	}
}

// IntKind identifies the width class of an Integer primitive.
//
// Short, Int, Long and LongLong follow the native C model; Long's width is
// platform dependent. SizeT and Size are the size_t-like kinds whose width is
// only known at host runtime. B8..B64 are the fixed-width kinds.
type IntKind int

const (
	Short IntKind = iota
	Int
	Long
	LongLong
	SizeT
	Size
	B8
	B16
	B32
	B64
)

// String returns the string representation of the integer kind.
func (k IntKind) String() string {
	switch k {
	case Short:
		return "Short"
	case Int:
		return "Int"
	case Long:
		return "Long"
	case LongLong:
		return "LongLong"
	case SizeT:
		return "SizeT"
	case Size:
		return "Size"
	case B8:
		return "B8"
	case B16:
		return "B16"
	case B32:
		return "B32"
	case B64:
		return "B64"
	default:
		return "Unknown"
	}
}

// Primitive is a primitive type.
//
// IntKind and Signed are meaningful only when Kind is Integer.
type Primitive struct {
	Kind    PrimitiveKind
	IntKind IntKind
	Signed  bool
}

// Ptr is a pointer to another type.
//
// A Ptr never wraps a Ptr's value representation ambiguously: backends map
// pointer-to-pointer to an explicit opaque reference-to-reference type.
type Ptr struct {
	Pointee  Type
	IsConst  bool
	Nullable bool
}

// Path is a reference to a named item (struct, union, enum, typedef, opaque).
// Name resolution and collision avoidance happen in the loader; the name is
// emitted verbatim.
type Path struct {
	Name string
}

// Array is a fixed-size array. Len is kept as its source expression because
// the length is a declaration-site annotation, never part of a mapped type
// name.
type Array struct {
	Elem Type
	Len  string
}

// FuncPtr is a function pointer type.
type FuncPtr struct {
	Ret  Type
	Args []FuncArg
}

// FuncArg is an ordered (name, type) parameter pair. Name may be empty or the
// wildcard "_"; backends substitute a positional fallback name.
type FuncArg struct {
	Name string
	Ty   Type
}

func (Primitive) isType() {}
func (Ptr) isType()       {}
func (Path) isType()      {}
func (Array) isType()     {}
func (FuncPtr) isType()   {}

// IntPrimitive builds an Integer primitive of the given kind.
func IntPrimitive(kind IntKind, signed bool) Primitive {
	return Primitive{Kind: Integer, IntKind: kind, Signed: signed}
}
