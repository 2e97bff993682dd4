package ast

import "github.com/flowprint/layoutgen/internal/loc"

// Type is satisfied by every Flow type-annotation node (spec.md §4.7).
type Type interface {
	Node
	typeKind() Kind
}

func TypeKind(t Type) Kind { return t.typeKind() }

type typeBase struct {
	Range loc.Range
}

func (b typeBase) Pos() loc.Range { return b.Range }

// PrimitiveType covers the keyword types with no payload: any, mixed,
// empty, void, null, number, string, boolean, and the `*` existential.
type PrimitiveKind string

const (
	PrimAny         PrimitiveKind = "any"
	PrimMixed       PrimitiveKind = "mixed"
	PrimEmpty       PrimitiveKind = "empty"
	PrimVoid        PrimitiveKind = "void"
	PrimNull        PrimitiveKind = "null"
	PrimNumber      PrimitiveKind = "number"
	PrimString      PrimitiveKind = "string"
	PrimBoolean     PrimitiveKind = "boolean"
	PrimExistential PrimitiveKind = "*"
)

type PrimitiveType struct {
	typeBase
	Kind PrimitiveKind
}

func (*PrimitiveType) typeKind() Kind { return "PrimitiveType" }

// LiteralType covers string/number/boolean literal types, e.g. `"a" | "b"`.
type LiteralType struct {
	typeBase
	Kind  LiteralKind
	Raw   string
	Value string
	Num   float64
	Bool  bool
}

func (*LiteralType) typeKind() Kind { return "LiteralType" }

// NullableType is `?T`.
type NullableType struct {
	typeBase
	Elem Type
}

func (*NullableType) typeKind() Kind { return "NullableType" }

// ArrayType is `T[]`.
type ArrayType struct {
	typeBase
	Elem Type
}

func (*ArrayType) typeKind() Kind { return "ArrayType" }

type FunctionTypeParam struct {
	Name           string // "" for an unnamed parameter
	TypeAnnotation Type
	Optional       bool
}

type FunctionType struct {
	typeBase
	TypeParams []TypeParam
	Params     []FunctionTypeParam
	Rest       *FunctionTypeParam
	ThisParam  Type // nilable, Flow's `(this: T, ...) => R`
	ReturnType Type
}

func (*FunctionType) typeKind() Kind { return "FunctionType" }

type ObjectTypeIndexer struct {
	Range loc.Range
	ID    string // "" if unnamed
	Key   Type
	Value Type
}

type ObjectTypeCallProperty struct {
	Range loc.Range
	Value *FunctionType
}

type ObjectTypeProperty struct {
	Range    loc.Range
	Key      Expr // Identifier or Literal
	Value    Type
	Optional bool
	Variance string // "", "+", "-"
	Method   bool
	Static   bool
	Kind     PropertyKind // PropInit, PropGet, PropSet for accessor properties
}

type ObjectTypeSpreadProperty struct {
	Argument Type
}

type ObjectType struct {
	typeBase
	Exact       bool // `{| ... |}`
	Properties  []ObjectTypeProperty
	Spreads     []ObjectTypeSpreadProperty
	Indexers    []ObjectTypeIndexer
	CallProperties []ObjectTypeCallProperty
	Inexact     bool // trailing `...` in an exact object type
}

func (*ObjectType) typeKind() Kind { return "ObjectType" }

type QualifiedTypeID struct {
	Qualification []string // e.g. ["A", "B"] for `A.B.C`
	ID            string
}

type GenericType struct {
	typeBase
	ID       QualifiedTypeID
	TypeArgs []Type
}

func (*GenericType) typeKind() Kind { return "GenericType" }

type UnionType struct {
	typeBase
	Types []Type
}

func (*UnionType) typeKind() Kind { return "UnionType" }

type IntersectionType struct {
	typeBase
	Types []Type
}

func (*IntersectionType) typeKind() Kind { return "IntersectionType" }

type TupleType struct {
	typeBase
	Types []Type
}

func (*TupleType) typeKind() Kind { return "TupleType" }

type TypeofType struct {
	typeBase
	Argument QualifiedTypeID
}

func (*TypeofType) typeKind() Kind { return "TypeofType" }

// TypeParam is one entry of a `<T, U: Bound = Default>` parameter list.
type TypeParam struct {
	Name     string
	Bound    Type // nilable
	Default  Type // nilable
	Variance string
}

// TypeAnnotation wraps a Type when it appears as an annotation position
// (`: T`) that itself needs a location distinct from the bare type, e.g.
// for source-map attachment of the colon-to-type span.
type TypeAnnotation struct {
	typeBase
	Inner Type
}

func (*TypeAnnotation) typeKind() Kind { return "TypeAnnotation" }
