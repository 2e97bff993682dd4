package generator

import (
	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/loc"
	"github.com/flowprint/layoutgen/internal/precedence"
)

// pattern emits a destructuring target (spec.md §4.6): object and array
// patterns mirror literal syntax with shorthand and rest-element support.
func (g *generator) pattern(p ast.Pattern) layout.Node {
	switch n := p.(type) {
	case *ast.Identifier:
		node := layout.Node(layout.Identifier{Range: n.Range, Name: n.Name})
		if n.Optional {
			node = fuse(node, atom("?"))
		}
		if n.TypeAnnotation != nil {
			node = fuse(node, atom(": "), g.typeNode(n.TypeAnnotation))
		}
		return node

	case *ast.ObjectPattern:
		return g.objectPattern(n)

	case *ast.ArrayPattern:
		return g.arrayPattern(n)

	case *ast.AssignmentPattern:
		return fuse(g.pattern(n.Left), atom(" = "), g.expr(precedence.Context{}, n.Right, precedence.Assignment))

	case *ast.RestElement:
		return fuse(atom("..."), g.pattern(n.Argument))

	case *ast.MemberExpr:
		return g.memberExpr(precedence.Context{}, n)

	default:
		g.fail(loc.ERROR_INVALID_AST, "unsupported pattern kind", p.Pos())
		return nil
	}
}

func (g *generator) objectPattern(n *ast.ObjectPattern) layout.Node {
	children := make([]layout.Node, 0, len(n.Properties)*2+2)
	total := len(n.Properties)
	if n.Rest != nil {
		total++
	}
	idx := 0
	for _, p := range n.Properties {
		if idx > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, g.objectPatternProperty(p))
		idx++
	}
	if n.Rest != nil {
		if idx > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, fuse(atom("..."), g.pattern(n.Rest)))
	}
	_ = total
	body := fuse(atom("{"), fuse(children...), atom("}"))
	if n.TypeAnnotation != nil {
		return fuse(body, atom(": "), g.typeNode(n.TypeAnnotation))
	}
	return body
}

func (g *generator) objectPatternProperty(p ast.ObjectPatternProperty) layout.Node {
	var base layout.Node
	if p.Shorthand {
		base = g.pattern(p.Value)
	} else {
		key := g.propertyKey(p.Key, p.Computed)
		base = fuse(key, atom(": "), g.pattern(p.Value))
	}
	if p.Default != nil {
		return fuse(base, atom(" = "), g.expr(precedence.Context{}, p.Default, precedence.Assignment))
	}
	return base
}

func (g *generator) arrayPattern(n *ast.ArrayPattern) layout.Node {
	children := make([]layout.Node, 0, len(n.Elements)*2+2)
	for i, el := range n.Elements {
		if i > 0 {
			children = append(children, atom(", "))
		}
		if el.Elem != nil {
			children = append(children, g.pattern(el.Elem))
		}
	}
	if n.Rest != nil {
		if len(n.Elements) > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, fuse(atom("..."), g.pattern(n.Rest)))
	}
	body := fuse(atom("["), fuse(children...), atom("]"))
	if n.TypeAnnotation != nil {
		return fuse(body, atom(": "), g.typeNode(n.TypeAnnotation))
	}
	return body
}

// variableDeclaration emits `var|let|const a = 1, b`.
func (g *generator) variableDeclaration(n *ast.VariableDeclaration) layout.Node {
	prefix := layout.Node(layout.Empty{})
	if n.Declare {
		prefix = atom("declare ")
	}
	children := make([]layout.Node, 0, len(n.Declarations)*2-1)
	for i, d := range n.Declarations {
		if i > 0 {
			children = append(children, atom(", "))
		}
		decl := g.pattern(d.ID)
		if d.Init != nil {
			decl = fuse(decl, atom(" = "), g.expr(precedence.Context{}, d.Init, precedence.Assignment))
		}
		children = append(children, decl)
	}
	return fuse(prefix, atomf("%s ", n.Kind.String()), fuse(children...))
}

// paramList emits the comma-separated parameters without the surrounding
// parens; arrowFunction decides whether an arrow's single bare identifier
// parameter gets parens at all (spec.md §4.6).
func (g *generator) paramList(params []ast.Param, rest *ast.Param) layout.Node {
	children := make([]layout.Node, 0, len(params)*2+2)
	for i, p := range params {
		if i > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, g.param(p))
	}
	if rest != nil {
		if len(params) > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, fuse(atom("..."), g.param(*rest)))
	}
	return fuse(children...)
}

func (g *generator) param(p ast.Param) layout.Node {
	node := g.pattern(p.Pattern)
	if p.Optional {
		node = fuse(node, atom("?"))
	}
	if p.TypeAnnotation != nil {
		node = fuse(node, atom(": "), g.typeNode(p.TypeAnnotation))
	}
	if p.Default != nil {
		node = fuse(node, atom(" = "), g.expr(precedence.Context{}, p.Default, precedence.Assignment))
	}
	return node
}

// arrowElidesParens reports whether an arrow's parameter list can be
// written as a bare identifier with no surrounding parens: exactly one
// param, a plain identifier pattern, no annotation, no default, no rest,
// no type parameters, and no return-type annotation (spec.md §4.4, §4.6).
func arrowElidesParens(n *ast.ArrowFunctionExpr) (*ast.Identifier, bool) {
	if n.Rest != nil || len(n.TypeParams) != 0 || len(n.Params) != 1 || n.ReturnType != nil {
		return nil, false
	}
	p := n.Params[0]
	if p.TypeAnnotation != nil || p.Default != nil || p.Optional {
		return nil, false
	}
	id, ok := p.Pattern.(*ast.Identifier)
	if !ok || id.TypeAnnotation != nil {
		return nil, false
	}
	return id, true
}

func (g *generator) arrowFunction(n *ast.ArrowFunctionExpr) layout.Node {
	prefix := layout.Node(layout.Empty{})
	if n.Async {
		prefix = atom("async ")
	}
	var params layout.Node
	if id, ok := arrowElidesParens(n); ok {
		params = layout.Identifier{Range: id.Range, Name: id.Name}
	} else {
		params = fuse(atom("("), g.typeParams(n.TypeParams), g.paramList(n.Params, n.Rest), atom(")"))
	}
	var ret layout.Node = layout.Empty{}
	if n.ReturnType != nil {
		ret = fuse(atom(": "), g.returnTypeAnnotation(n.ReturnType))
	}
	var body layout.Node
	group := precedence.Context{Group: precedence.GroupInArrowFuncBody}
	if blk, ok := n.Body.(*ast.BlockStatement); ok {
		body = g.block(blk)
	} else {
		body = g.expr(group, n.Body.(ast.Expr), precedence.Assignment)
	}
	return fuse(prefix, params, ret, atom(" => "), body)
}

// returnTypeAnnotation guards against `*=` mistokenization: a `*`
// existential return annotation must be preceded by a real space rather
// than a collapsible one (spec.md §4.4).
func (g *generator) returnTypeAnnotation(t ast.Type) layout.Node {
	node := g.typeNode(t)
	if prim, ok := t.(*ast.PrimitiveType); ok && prim.Kind == ast.PrimExistential {
		return fuse(atom(" "), node)
	}
	return node
}

func (g *generator) typeParams(params []ast.TypeParam) layout.Node {
	if len(params) == 0 {
		return layout.Empty{}
	}
	children := make([]layout.Node, 0, len(params)*2-1)
	for i, p := range params {
		if i > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, g.typeParam(p))
	}
	return fuse(atom("<"), fuse(children...), atom(">"))
}

func (g *generator) typeParam(p ast.TypeParam) layout.Node {
	node := layout.Node(atom(p.Variance + p.Name))
	if p.Bound != nil {
		node = fuse(node, atom(": "), g.typeNode(p.Bound))
	}
	if p.Default != nil {
		node = fuse(node, atom(" = "), g.typeNode(p.Default))
	}
	return node
}

// functionHeader emits `[async ][function][*][ name](params)[: RT][ %checks] { body }`,
// isDeclaration selects between a named declaration and an expression (an
// anonymous function expression omits the trailing space before `(`).
func (g *generator) functionHeader(n *ast.FunctionExpr, isDeclaration bool) layout.Node {
	prefix := layout.Node(layout.Empty{})
	if n.Async {
		prefix = atom("async ")
	}
	keyword := layout.Node(atom("function"))
	if n.Generator {
		keyword = fuse(keyword, atom("*"))
	}
	var name layout.Node = layout.Empty{}
	if n.ID != nil {
		name = fuse(atom(" "), layout.Identifier{Range: n.ID.Range, Name: n.ID.Name})
	} else if isDeclaration {
		g.fail(loc.ERROR_INVALID_AST, "function declaration requires a name", n.Pos())
	}
	params := fuse(atom("("), g.typeParams(n.TypeParams), g.paramList(n.Params, n.Rest), atom(")"))
	var ret layout.Node = layout.Empty{}
	if n.ReturnType != nil {
		ret = fuse(atom(": "), g.returnTypeAnnotation(n.ReturnType))
	}
	var predicate layout.Node = layout.Empty{}
	if n.Predicate {
		predicate = atom(" %checks")
	}
	return fuse(prefix, keyword, name, params, ret, predicate, atom(" "), g.block(n.Body))
}

func (g *generator) classExpr(n *ast.ClassExpr) layout.Node {
	var parts []layout.Node
	for _, d := range n.Decorators {
		parts = append(parts, fuse(atom("@"), g.expr(precedence.Context{}, d.Expression, precedence.Call), atom(" ")))
	}
	parts = append(parts, atom("class"))
	if n.ID != nil {
		parts = append(parts, atomf(" %s", n.ID.Name))
	}
	parts = append(parts, g.typeParams(n.TypeParams))
	if n.SuperClass != nil {
		parts = append(parts, atom(" extends "), g.expr(precedence.Context{}, n.SuperClass, precedence.Call), g.typeArgs(n.SuperTypeArgs))
	}
	if len(n.Implements) > 0 {
		parts = append(parts, atom(" implements "), g.interfaceExtends(n.Implements))
	}
	parts = append(parts, atom(" "), g.classBody(n.Body))
	return fuse(parts...)
}

func (g *generator) classBody(b *ast.ClassBody) layout.Node {
	if len(b.Members) == 0 {
		return atom("{}")
	}
	members := make([]layout.Node, len(b.Members))
	for i, m := range b.Members {
		members[i] = g.classMember(m)
	}
	return layout.Sequence{
		Break:  layout.BreakAlways,
		Inline: layout.Inline{Leading: true, Trailing: true},
		Indent: 1,
		Children: append([]layout.Node{atom("{")}, append(members, atom("}"))...),
	}
}

func (g *generator) classMember(m ast.ClassMember) layout.Node {
	if m.Property != nil {
		return fuse(g.classProperty(m.Property), semi())
	}
	return g.classMethod(m.Method)
}

func (g *generator) classProperty(p *ast.ClassProperty) layout.Node {
	var parts []layout.Node
	for _, d := range p.Decorators {
		parts = append(parts, fuse(atom("@"), g.expr(precedence.Context{}, d.Expression, precedence.Call), atom(" ")))
	}
	if p.Declare {
		parts = append(parts, atom("declare "))
	}
	if p.Static {
		parts = append(parts, atom("static "))
	}
	parts = append(parts, atom(p.Variance), g.propertyKey(p.Key, p.Computed))
	if p.TypeAnnotation != nil {
		parts = append(parts, atom(": "), g.typeNode(p.TypeAnnotation))
	}
	if p.Value != nil {
		parts = append(parts, atom(" = "), g.expr(precedence.Context{}, p.Value, precedence.Assignment))
	}
	return fuse(parts...)
}

func (g *generator) classMethod(m *ast.ClassMethod) layout.Node {
	var parts []layout.Node
	for _, d := range m.Decorators {
		parts = append(parts, fuse(atom("@"), g.expr(precedence.Context{}, d.Expression, precedence.Call), atom(" ")))
	}
	if m.Static {
		parts = append(parts, atom("static "))
	}
	switch m.Kind {
	case ast.MethodGet:
		parts = append(parts, atom("get "))
	case ast.MethodSet:
		parts = append(parts, atom("set "))
	}
	fn := m.Function
	if fn.Async {
		parts = append(parts, atom("async "))
	}
	if fn.Generator {
		parts = append(parts, atom("*"))
	}
	parts = append(parts, g.propertyKey(m.Key, m.Computed))
	parts = append(parts, g.methodTail(fn))
	return fuse(parts...)
}

// methodTail emits the `(params): RT { body }` shared by object methods,
// getters/setters, and class methods.
func (g *generator) methodTail(fn *ast.FunctionExpr) layout.Node {
	params := fuse(atom("("), g.typeParams(fn.TypeParams), g.paramList(fn.Params, fn.Rest), atom(")"))
	var ret layout.Node = layout.Empty{}
	if fn.ReturnType != nil {
		ret = fuse(atom(": "), g.returnTypeAnnotation(fn.ReturnType))
	}
	return fuse(params, ret, atom(" "), g.block(fn.Body))
}

func (g *generator) interfaceExtends(exts []ast.InterfaceExtend) layout.Node {
	children := make([]layout.Node, 0, len(exts)*2-1)
	for i, e := range exts {
		if i > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, fuse(atom(e.ID), g.typeArgs(e.TypeArgs)))
	}
	return fuse(children...)
}
