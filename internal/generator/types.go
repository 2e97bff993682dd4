package generator

import (
	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/lexutil"
	"github.com/flowprint/layoutgen/internal/loc"
)

// typeNode emits a Flow type annotation, per spec.md §4.7.
func (g *generator) typeNode(t ast.Type) layout.Node {
	if t == nil {
		return layout.Empty{}
	}
	return withLoc(t.Pos(), g.typeBody(t))
}

func (g *generator) typeBody(t ast.Type) layout.Node {
	switch n := t.(type) {
	case *ast.PrimitiveType:
		return atom(string(n.Kind))

	case *ast.LiteralType:
		switch n.Kind {
		case ast.LitString:
			return atom(lexutil.QuoteString(n.Value))
		case ast.LitBoolean:
			if n.Bool {
				return atom("true")
			}
			return atom("false")
		default:
			return atom(n.Raw)
		}

	case *ast.NullableType:
		return fuse(atom("?"), g.typeNode(n.Elem))

	case *ast.ArrayType:
		return fuse(g.typeNode(n.Elem), atom("[]"))

	case *ast.FunctionType:
		return g.functionType(n)

	case *ast.ObjectType:
		return g.objectType(n)

	case *ast.GenericType:
		return fuse(atom(qualifiedTypeName(n.ID)), g.typeArgs(n.TypeArgs))

	case *ast.UnionType:
		return g.unionOrIntersection(n.Types, " | ")

	case *ast.IntersectionType:
		return g.unionOrIntersection(n.Types, " & ")

	case *ast.TupleType:
		return g.tupleType(n)

	case *ast.TypeofType:
		return fuse(atom("typeof "), atom(qualifiedTypeName(n.Argument)))

	case *ast.TypeAnnotation:
		return g.typeNode(n.Inner)

	default:
		g.fail(loc.ERROR_INVALID_AST, "unsupported type kind", t.Pos())
		return nil
	}
}

func qualifiedTypeName(q ast.QualifiedTypeID) string {
	name := q.ID
	for i := len(q.Qualification) - 1; i >= 0; i-- {
		name = q.Qualification[i] + "." + name
	}
	return name
}

func (g *generator) functionType(n *ast.FunctionType) layout.Node {
	children := make([]layout.Node, 0, len(n.Params)*2+2)
	first := true
	if n.ThisParam != nil {
		children = append(children, fuse(atom("this: "), g.typeNode(n.ThisParam)))
		first = false
	}
	for _, p := range n.Params {
		if !first {
			children = append(children, atom(", "))
		}
		first = false
		children = append(children, g.functionTypeParam(p))
	}
	if n.Rest != nil {
		if !first {
			children = append(children, atom(", "))
		}
		children = append(children, fuse(atom("..."), g.functionTypeParam(*n.Rest)))
	}
	return fuse(g.typeParams(n.TypeParams), atom("("), fuse(children...), atom(") => "), g.typeNode(n.ReturnType))
}

func (g *generator) functionTypeParam(p ast.FunctionTypeParam) layout.Node {
	if p.Name == "" {
		return g.typeNode(p.TypeAnnotation)
	}
	opt := ""
	if p.Optional {
		opt = "?"
	}
	return fuse(atomf("%s%s: ", p.Name, opt), g.typeNode(p.TypeAnnotation))
}

func (g *generator) objectType(n *ast.ObjectType) layout.Node {
	open, close := "{", "}"
	if n.Exact {
		open, close = "{|", "|}"
	}
	var children []layout.Node
	emit := func(node layout.Node) {
		if len(children) > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, node)
	}
	for _, ind := range n.Indexers {
		id := ind.ID
		if id == "" {
			id = "_"
		}
		emit(fuse(atomf("[%s: ", id), g.typeNode(ind.Key), atom("]: "), g.typeNode(ind.Value)))
	}
	for _, cp := range n.CallProperties {
		emit(g.functionType(cp.Value))
	}
	for _, p := range n.Properties {
		emit(g.objectTypeProperty(p))
	}
	for _, sp := range n.Spreads {
		emit(fuse(atom("..."), g.typeNode(sp.Argument)))
	}
	if n.Inexact {
		emit(atom("..."))
	}
	return fuse(atom(open), fuse(children...), atom(close))
}

func (g *generator) objectTypeProperty(p ast.ObjectTypeProperty) layout.Node {
	key := g.propertyKey(p.Key, false)
	opt := ""
	if p.Optional {
		opt = "?"
	}
	switch p.Kind {
	case ast.PropGet:
		return fuse(atom("get "), key, atom(": "), g.typeNode(p.Value))
	case ast.PropSet:
		return fuse(atom("set "), key, atom(": "), g.typeNode(p.Value))
	}
	prefix := layout.Node(layout.Empty{})
	if p.Static {
		prefix = atom("static ")
	}
	return fuse(prefix, atom(p.Variance), key, atom(opt+": "), g.typeNode(p.Value))
}

func (g *generator) unionOrIntersection(types []ast.Type, sep string) layout.Node {
	children := make([]layout.Node, 0, len(types)*2-1)
	for i, t := range types {
		if i > 0 {
			// spec.md §4.7: "a leading separator hidden via IfBreak on
			// the first term" -- the separator before every non-first
			// term is always printed; IfBreak instead governs whether a
			// leading separator appears before the *first* term when the
			// union itself breaks across lines, which is the renderer's
			// decision once it sees the BreakIfNeeded sequence below.
			children = append(children, atom(sep))
		}
		children = append(children, g.typeNode(t))
	}
	return layout.Sequence{
		Break: layout.BreakIfNeeded,
		Children: append(
			[]layout.Node{layout.IfBreak{Broken: atom(sep[1:]), NotBroken: layout.Empty{}}},
			children...,
		),
	}
}

func (g *generator) tupleType(n *ast.TupleType) layout.Node {
	children := make([]layout.Node, 0, len(n.Types)*2-1)
	for i, t := range n.Types {
		if i > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, g.typeNode(t))
	}
	return fuse(atom("["), fuse(children...), atom("]"))
}
