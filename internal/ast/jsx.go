package ast

import "github.com/flowprint/layoutgen/internal/loc"

// JSXName is either a plain identifier, a `Namespace:Name`, or a
// `Member.Expression` tag/attribute name (spec.md §4.8).
type JSXName struct {
	Namespace string   // "" unless namespaced
	Name      string   // the identifier, or the final segment of a member name
	Member    []string // non-nil for `Foo.Bar.Baz` tag names, full path
}

type JSXAttribute struct {
	Range loc.Range
	Name  JSXName
	// Value is nil for a valueless boolean attribute, a *Literal string,
	// or an Expr for an `{expr}` container.
	Value Expr
}

type JSXSpreadAttribute struct {
	Range    loc.Range
	Argument Expr
}

// JSXAttributeOrSpread lets the opening-element attribute list interleave
// plain and spread attributes in source order, the way ESTree does.
type JSXAttributeOrSpread struct {
	Attribute *JSXAttribute
	Spread    *JSXSpreadAttribute
}

// JSXChild is satisfied by every node that can appear in an element's
// children list.
type JSXChild interface {
	Node
	jsxChildKind() Kind
}

type JSXText struct {
	base
	Raw string
}

func (*JSXText) jsxChildKind() Kind { return "JSXText" }

type JSXExpressionContainer struct {
	base
	Expression Expr // nil for JSXEmptyExpression, i.e. `{}`
}

func (*JSXExpressionContainer) jsxChildKind() Kind { return "JSXExpressionContainer" }
func (*JSXExpressionContainer) exprKind() Kind     { return "JSXExpressionContainer" }

type JSXSpreadChild struct {
	base
	Expression Expr
}

func (*JSXSpreadChild) jsxChildKind() Kind { return "JSXSpreadChild" }

type JSXElement struct {
	base
	Name          JSXName
	Attributes    []JSXAttributeOrSpread
	SelfClosing   bool
	Children      []JSXChild
}

func (*JSXElement) exprKind() Kind     { return KindJSXElement }
func (*JSXElement) jsxChildKind() Kind { return KindJSXElement }

type JSXFragment struct {
	base
	Children []JSXChild
}

func (*JSXFragment) exprKind() Kind     { return KindJSXFragment }
func (*JSXFragment) jsxChildKind() Kind { return KindJSXFragment }
