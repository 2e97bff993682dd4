package ast

import "github.com/flowprint/layoutgen/internal/loc"

// Pattern is satisfied by every destructuring-pattern node. *Identifier
// also implements Pattern directly (a bare identifier is a pattern), so no
// separate wrapper type is needed for the common case.
type Pattern interface {
	Node
	patternKind() Kind
}

func (*Identifier) patternKind() Kind { return KindIdentifier }

type ObjectPatternProperty struct {
	Range     loc.Range
	Key       Expr // Identifier or Literal
	Computed  bool
	Value     Pattern
	Shorthand bool
	Default   Expr // nilable
}

type ObjectPattern struct {
	base
	Properties []ObjectPatternProperty
	Rest       Pattern // nilable, the `...rest` tail
	TypeAnnotation Type
}

func (*ObjectPattern) patternKind() Kind { return "ObjectPattern" }

type ArrayPatternElement struct {
	// Elem is nil for an elided element, matching ArrayElement.
	Elem Pattern
}

type ArrayPattern struct {
	base
	Elements       []ArrayPatternElement
	Rest           Pattern // nilable
	TypeAnnotation Type
}

func (*ArrayPattern) patternKind() Kind { return "ArrayPattern" }

// AssignmentPattern is a pattern with a default value, e.g. the `b = 1` in
// `function f({a, b = 1}) {}`.
type AssignmentPattern struct {
	base
	Left  Pattern
	Right Expr
}

func (*AssignmentPattern) patternKind() Kind { return "AssignmentPattern" }

// RestElement wraps a pattern appearing after `...` in a parameter list or
// destructuring target.
type RestElement struct {
	base
	Argument Pattern
}

func (*RestElement) patternKind() Kind { return "RestElement" }

// MemberExpr is also a valid assignment target (`a.b = 1`), so it
// implements Pattern too -- the AssignmentExpr.Left / ForInStatement.Left /
// ForOfStatement.Left fields are typed as Node for exactly this reason.
func (*MemberExpr) patternKind() Kind { return KindMember }
