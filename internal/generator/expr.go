package generator

import (
	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/lexutil"
	"github.com/flowprint/layoutgen/internal/loc"
	"github.com/flowprint/layoutgen/internal/precedence"
)

// expr emits e under ctxt, wrapping in parens when precedence.NeedsParens
// says the position requires it (spec.md §4.3/§4.4).
func (g *generator) expr(ctxt precedence.Context, e ast.Expr, minPrec int) layout.Node {
	body := g.exprBody(ctxt, e)
	if precedence.NeedsParens(ctxt, e, minPrec) {
		return withLoc(e.Pos(), fuse(atom("("), body, atom(")")))
	}
	return withLoc(e.Pos(), body)
}

func (g *generator) exprBody(ctxt precedence.Context, e ast.Expr) layout.Node {
	switch n := e.(type) {
	case *ast.This:
		return atom("this")

	case *ast.SuperExpr:
		return atom("super")

	case *ast.Identifier:
		return layout.Identifier{Range: n.Range, Name: n.Name}

	case *ast.PrivateName:
		return atomf("#%s", n.Name)

	case *ast.Literal:
		return g.literal(n)

	case *ast.ArrayExpr:
		return g.arrayExpr(n)

	case *ast.ObjectExpr:
		return g.objectExpr(n)

	case *ast.SequenceExpr:
		return g.sequenceExpr(n)

	case *ast.FunctionExpr:
		return g.functionHeader(n, false)

	case *ast.ArrowFunctionExpr:
		return g.arrowFunction(n)

	case *ast.AssignmentExpr:
		return g.assignmentExpr(n)

	case *ast.BinaryExpr:
		return g.binaryExpr(n.Operator, n.Left, n.Right, precedence.Of(n))

	case *ast.LogicalExpr:
		return g.binaryExpr(n.Operator, n.Left, n.Right, precedence.Of(n))

	case *ast.ConditionalExpr:
		return g.conditionalExpr(n)

	case *ast.CallExpr:
		return g.callExpr(n)

	case *ast.NewExpr:
		return g.newExpr(n)

	case *ast.MemberExpr:
		return g.memberExpr(ctxt, n)

	case *ast.UnaryExpr:
		return g.unaryExpr(n)

	case *ast.UpdateExpr:
		return g.updateExpr(n)

	case *ast.YieldExpr:
		return g.yieldExpr(n)

	case *ast.AwaitExpr:
		return fuse(atom("await "), g.expr(precedence.Context{}, n.Argument, precedence.Of(n)+1))

	case *ast.SpreadElement:
		return fuse(atom("..."), g.expr(precedence.Context{}, n.Argument, precedence.Assignment))

	case *ast.TemplateLiteralExpr:
		return g.templateLiteral(n)

	case *ast.TaggedTemplateExpr:
		return g.taggedTemplate(n)

	case *ast.TypeCastExpr:
		return fuse(atom("("), g.expr(precedence.Context{}, n.Expression, precedence.Min),
			atom(": "), g.typeNode(n.TypeAnnotation), atom(")"))

	case *ast.ImportExpr:
		return fuse(atom("import("), g.expr(precedence.Context{}, n.Argument, precedence.Assignment), atom(")"))

	case *ast.MetaPropertyExpr:
		return atomf("%s.%s", n.Meta, n.Property)

	case *ast.ClassExpr:
		return g.classExpr(n)

	case *ast.JSXElement:
		return g.jsxElement(n)

	case *ast.JSXFragment:
		return g.jsxFragment(n)

	case *ast.JSXExpressionContainer:
		return g.jsxExpressionContainer(n)

	case *ast.ComprehensionExpr:
		g.fail(loc.ERROR_UNSUPPORTED_PRODUCTION, "not supported", n.Pos())
		return nil

	case *ast.GeneratorExpr:
		g.fail(loc.ERROR_UNSUPPORTED_PRODUCTION, "not supported", n.Pos())
		return nil

	default:
		g.fail(loc.ERROR_INVALID_AST, "unsupported expression kind", e.Pos())
		return nil
	}
}

func (g *generator) literal(n *ast.Literal) layout.Node {
	switch n.Kind {
	case ast.LitString:
		return layout.IfPretty{
			Pretty: atom(n.Raw),
			Ugly:   atom(lexutil.QuoteString(n.Value)),
		}
	case ast.LitNumber:
		return layout.IfPretty{Pretty: atom(n.Raw), Ugly: atom(lexutil.Shortest(n.Number))}
	case ast.LitBoolean:
		if n.Bool {
			return atom("true")
		}
		return atom("false")
	case ast.LitNull:
		return atom("null")
	case ast.LitRegExp:
		return atomf("/%s/%s", n.RegexPattern, n.RegexFlags)
	case ast.LitBigInt:
		return atom(n.Raw)
	default:
		return atom(n.Raw)
	}
}

// literalAsMemberObject applies spec.md §4.2's numeric-literal-as-object
// disambiguation when a Literal of kind number is the non-computed object
// of a MemberExpr.
func literalAsMemberObject(n *ast.Literal) layout.Node {
	return layout.IfPretty{
		Pretty: atom(lexutil.MemberObjectNumber(n.Raw, n.Number, true)),
		Ugly:   atom(lexutil.MemberObjectNumber(n.Raw, n.Number, false)),
	}
}

func (g *generator) arrayExpr(n *ast.ArrayExpr) layout.Node {
	children := make([]layout.Node, 0, len(n.Elements)*2)
	trailingHole := len(n.Elements) > 0 && n.Elements[len(n.Elements)-1].Elem == nil
	for i, el := range n.Elements {
		if i > 0 {
			children = append(children, atom(", "))
		}
		if el.Elem == nil {
			continue
		}
		if el.Spread {
			children = append(children, fuse(atom("..."), g.expr(precedence.Context{}, el.Elem, precedence.Assignment)))
		} else {
			children = append(children, g.expr(precedence.Context{}, el.Elem, precedence.Assignment))
		}
	}
	if trailingHole {
		// spec.md §4.4: "a trailing missing element requires a forced
		// trailing comma ([,] vs []) to preserve arity."
		children = append(children, atom(","))
	}
	return fuse(atom("["), fuse(children...), atom("]"))
}

func (g *generator) objectExpr(n *ast.ObjectExpr) layout.Node {
	children := make([]layout.Node, 0, len(n.Properties)*2)
	for i, p := range n.Properties {
		if i > 0 {
			blank := propertyNeedsBlankLine(n.Properties[i-1], p)
			if blank {
				children = append(children, layout.IfPretty{Pretty: atom(",\n"), Ugly: atom(",")})
			} else {
				children = append(children, layout.Atom(","), layout.IfBreak{Broken: atom("\n"), NotBroken: atom(" ")})
			}
		}
		children = append(children, g.property(p))
	}
	return layout.Sequence{
		Break:  layout.BreakIfNeeded,
		Inline: layout.Inline{Leading: true, Trailing: true},
		Indent: 1,
		Children: append([]layout.Node{atom("{")}, append(children, atom("}"))...),
	}
}

// propertyNeedsBlankLine implements spec.md §4.5's object-property
// newline rule: blank if either property's value contains a function.
func propertyNeedsBlankLine(prev, cur ast.Property) bool {
	return propertyContainsFunction(prev) || propertyContainsFunction(cur)
}

func propertyContainsFunction(p ast.Property) bool {
	switch p.Kind {
	case ast.PropGet, ast.PropSet, ast.PropMethod:
		return true
	}
	return valueContainsFunction(p.Value)
}

func valueContainsFunction(v ast.Expr) bool {
	switch n := v.(type) {
	case *ast.FunctionExpr, *ast.ArrowFunctionExpr:
		return true
	case *ast.ObjectExpr:
		for _, p := range n.Properties {
			if propertyContainsFunction(p) {
				return true
			}
		}
	}
	return false
}

func (g *generator) property(p ast.Property) layout.Node {
	if p.Kind == ast.PropSpread {
		return fuse(atom("..."), g.expr(precedence.Context{}, p.Value, precedence.Assignment))
	}
	key := g.propertyKey(p.Key, p.Computed)
	switch p.Kind {
	case ast.PropGet:
		return fuse(atom("get "), key, g.methodTail(p.Value.(*ast.FunctionExpr)))
	case ast.PropSet:
		return fuse(atom("set "), key, g.methodTail(p.Value.(*ast.FunctionExpr)))
	case ast.PropMethod:
		fn := p.Value.(*ast.FunctionExpr)
		prefix := layout.Node(layout.Empty{})
		if fn.Generator {
			prefix = atom("*")
		}
		if fn.Async {
			prefix = fuse(atom("async "), prefix)
		}
		return fuse(prefix, key, g.methodTail(fn))
	default:
		if p.Shorthand {
			return key
		}
		return fuse(key, atom(": "), g.expr(precedence.Context{}, p.Value, precedence.Assignment))
	}
}

func (g *generator) propertyKey(key ast.Expr, computed bool) layout.Node {
	if computed {
		return fuse(atom("["), g.expr(precedence.Context{}, key, precedence.Assignment), atom("]"))
	}
	if _, ok := key.(*ast.PrivateName); ok {
		g.fail(loc.ERROR_PRIVATE_NAME_AS_KEY, "private name cannot be used as a plain object key", key.Pos())
		return nil
	}
	if lit, ok := key.(*ast.Literal); ok && lit.Kind == ast.LitString {
		return atom(lexutil.QuoteString(lit.Value))
	}
	return g.expr(precedence.Context{}, key, precedence.Min)
}

func (g *generator) sequenceExpr(n *ast.SequenceExpr) layout.Node {
	children := make([]layout.Node, 0, len(n.Expressions)*2-1)
	for i, e := range n.Expressions {
		if i > 0 {
			children = append(children, atom(", "))
		}
		// spec.md §4.4: "operands emitted at precedence p+1 (right child
		// of , must parenthesize nested sequences)."
		children = append(children, g.expr(precedence.Context{}, e, precedence.Sequence+1))
	}
	return fuse(children...)
}

func (g *generator) assignmentExpr(n *ast.AssignmentExpr) layout.Node {
	var left layout.Node
	if pat, ok := n.Left.(ast.Pattern); ok {
		left = g.pattern(pat)
	} else {
		left = g.expr(precedence.Context{}, n.Left.(ast.Expr), precedence.Min)
	}
	// "context after = resets left" (spec.md §4.4).
	right := g.expr(precedence.Context{}, n.Right, precedence.Assignment)
	return fuse(left, atomf(" %s ", n.Operator), right)
}

func (g *generator) binaryExpr(operator string, left, right ast.Expr, prec int) layout.Node {
	leftNode := g.expr(precedence.Context{}, left, prec)
	rightCtxt := precedence.Context{}
	switch operator {
	case "+":
		rightCtxt.Left = precedence.LeftInPlusOp
	case "-":
		rightCtxt.Left = precedence.LeftInMinusOp
	}
	rightNode := g.expr(rightCtxt, right, prec+1)
	// spec.md §4.4's "x + +y" rule: the right operand already renders with
	// its own sign attached (+y, -y, ++y), and the operator is always
	// single-space-padded here, so the two signs never glue into `++`/`--`
	// without any extra handling. LeftInPlusOp/LeftInMinusOp above is what
	// actually forces parens around a same-sign unary/prefix-update right
	// operand when precedence alone wouldn't add them.
	return fuse(leftNode, atomf(" %s ", operator), rightNode)
}

func (g *generator) conditionalExpr(n *ast.ConditionalExpr) layout.Node {
	test := g.expr(precedence.Context{}, n.Test, precedence.Conditional+1)
	cons := g.expr(precedence.Context{}, n.Consequent, precedence.Min)
	alt := g.expr(precedence.Context{}, n.Alternate, precedence.Min)
	return fuse(test, atom(" ? "), cons, atom(" : "), alt)
}

func (g *generator) callExpr(n *ast.CallExpr) layout.Node {
	callee := g.expr(precedence.Context{}, n.Callee, precedence.Call)
	sep := "("
	if n.Optional {
		sep = "?.("
	}
	return fuse(callee, g.typeArgs(n.TypeArgs), atom(sep), g.arguments(n.Arguments), atom(")"))
}

func (g *generator) newExpr(n *ast.NewExpr) layout.Node {
	calleeMinPrec := precedence.Member
	forceParens := precedence.ContainsCall(n.Callee)
	var callee layout.Node
	if forceParens {
		callee = fuse(atom("("), g.expr(precedence.Context{}, n.Callee, precedence.Min), atom(")"))
	} else {
		callee = g.expr(precedence.Context{}, n.Callee, calleeMinPrec)
	}
	return fuse(atom("new "), callee, g.typeArgs(n.TypeArgs), atom("("), g.arguments(n.Arguments), atom(")"))
}

func (g *generator) arguments(args []ast.Argument) layout.Node {
	children := make([]layout.Node, 0, len(args)*2-1)
	for i, a := range args {
		if i > 0 {
			children = append(children, atom(", "))
		}
		if a.Spread {
			children = append(children, fuse(atom("..."), g.expr(precedence.Context{}, a.Expr, precedence.Assignment)))
		} else {
			children = append(children, g.expr(precedence.Context{}, a.Expr, precedence.Assignment))
		}
	}
	return fuse(children...)
}

func (g *generator) memberExpr(ctxt precedence.Context, n *ast.MemberExpr) layout.Node {
	var object layout.Node
	if lit, ok := n.Object.(*ast.Literal); ok && lit.Kind == ast.LitNumber && !n.Computed {
		object = literalAsMemberObject(lit)
	} else {
		object = g.expr(ctxt, n.Object, precedence.Call)
	}
	if n.Computed {
		sep := "["
		if n.Optional {
			sep = "?.["
		}
		return fuse(object, atom(sep), g.expr(precedence.Context{}, n.Property, precedence.Min), atom("]"))
	}
	sep := "."
	if n.Optional {
		sep = "?."
	}
	return fuse(object, atom(sep), g.expr(precedence.Context{}, n.Property, precedence.Min))
}

var alphabeticUnary = map[string]bool{
	"typeof": true, "void": true, "delete": true, "await": true,
}

func (g *generator) unaryExpr(n *ast.UnaryExpr) layout.Node {
	argCtxt := precedence.Context{}
	switch n.Operator {
	case "+":
		argCtxt.Left = precedence.LeftInPlusOp
	case "-":
		argCtxt.Left = precedence.LeftInMinusOp
	}
	arg := g.expr(argCtxt, n.Argument, precedence.Of(n))
	if alphabeticUnary[n.Operator] {
		return fuse(atomf("%s ", n.Operator), arg)
	}
	return fuse(atom(n.Operator), arg)
}

func (g *generator) updateExpr(n *ast.UpdateExpr) layout.Node {
	arg := g.expr(precedence.Context{}, n.Argument, precedence.Of(n))
	if n.Prefix {
		return fuse(atom(n.Operator), arg)
	}
	return fuse(arg, atom(n.Operator))
}

func (g *generator) yieldExpr(n *ast.YieldExpr) layout.Node {
	keyword := "yield"
	if n.Delegate {
		keyword = "yield*"
	}
	if n.Argument == nil {
		return atom(keyword)
	}
	return fuse(atomf("%s ", keyword), g.expr(precedence.Context{}, n.Argument, precedence.Assignment))
}

func (g *generator) templateLiteral(n *ast.TemplateLiteralExpr) layout.Node {
	var children []layout.Node
	children = append(children, atom("`"))
	for i, q := range n.Quasis {
		children = append(children, atom(q.Raw))
		if i < len(n.Expressions) {
			children = append(children, atom("${"), g.expr(precedence.Context{}, n.Expressions[i], precedence.Min), atom("}"))
		}
	}
	children = append(children, atom("`"))
	return fuse(children...)
}

func (g *generator) taggedTemplate(n *ast.TaggedTemplateExpr) layout.Node {
	tag := g.expr(precedence.Context{Left: precedence.LeftInTaggedTemplate}, n.Tag, precedence.Call)
	return fuse(tag, g.typeArgs(n.TypeArgs), g.templateLiteral(n.Quasi))
}

func (g *generator) typeArgs(args []ast.Type) layout.Node {
	if len(args) == 0 {
		return layout.Empty{}
	}
	children := make([]layout.Node, 0, len(args)*2-1)
	for i, t := range args {
		if i > 0 {
			children = append(children, atom(", "))
		}
		children = append(children, g.typeNode(t))
	}
	return fuse(atom("<"), fuse(children...), atom(">"))
}
