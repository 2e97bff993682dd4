// Package precedence implements the operator precedence scale and the
// ambiguity-context rules of spec.md §4.3: a 0..20 numeric scale plus a
// threaded {left, group} context record that drives needs_parens.
//
// Grounded on spec.md §4.3/§9 directly. The teacher has no analogous table
// (its printer is a scanner-driven string emitter, internal/printer/
// print-to-js.go, that never computes precedence), so this is new work; it
// follows the teacher's habit of small top-level const blocks plus a single
// exported predicate function (the shape of, e.g., internal/token.go's
// operator tables) rather than a method-heavy design.
package precedence

import "github.com/flowprint/layoutgen/internal/ast"

// The 0..20 scale named in spec.md §4.3.
const (
	Max        = 20
	Min        = 1
	Sequence   = 0
	Assignment = 3
	Yield      = 2
	Arrow      = 1
	Conditional = 4
	LogicalOr   = 5
	LogicalAnd  = 6
	BitwiseOr   = 7
	BitwiseXor  = 8
	BitwiseAnd  = 9
	Equality    = 10
	Relational  = 11
	Shift       = 12
	Additive    = 13
	Multiplicative = 14
	Exponent    = 15
	// Member, New, Call, and TaggedTemplate occupy 17-19.
	New             = 17
	Call            = 18
	Member          = 19
	TaggedTemplate  = 19
	Unsupported = 0
)

var binaryPrecedence = map[string]int{
	"**":         Exponent,
	"*":          Multiplicative,
	"/":          Multiplicative,
	"%":          Multiplicative,
	"+":          Additive,
	"-":          Additive,
	"<<":         Shift,
	">>":         Shift,
	">>>":        Shift,
	"<":          Relational,
	">":          Relational,
	"<=":         Relational,
	">=":         Relational,
	"in":         Relational,
	"instanceof": Relational,
	"==":         Equality,
	"!=":         Equality,
	"===":        Equality,
	"!==":        Equality,
	"&":          BitwiseAnd,
	"^":          BitwiseXor,
	"|":          BitwiseOr,
}

var logicalPrecedence = map[string]int{
	"&&": LogicalAnd,
	"||": LogicalOr,
	"??": LogicalOr,
}

// Of returns an expression's precedence per spec.md §4.3's table.
// Unsupported productions (comprehensions, generator expressions) return 0.
func Of(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.SequenceExpr:
		return Sequence
	case *ast.YieldExpr:
		return Yield
	case *ast.ArrowFunctionExpr:
		return Arrow
	case *ast.AssignmentExpr:
		return Assignment
	case *ast.ConditionalExpr:
		return Conditional
	case *ast.LogicalExpr:
		if p, ok := logicalPrecedence[n.Operator]; ok {
			return p
		}
		return Unsupported
	case *ast.BinaryExpr:
		if p, ok := binaryPrecedence[n.Operator]; ok {
			return p
		}
		return Unsupported
	case *ast.UnaryExpr, *ast.AwaitExpr:
		return Exponent + 1
	case *ast.UpdateExpr:
		if n.Prefix {
			return Exponent + 1
		}
		return Exponent + 2
	case *ast.TaggedTemplateExpr:
		return TaggedTemplate
	case *ast.MemberExpr:
		return Member
	case *ast.CallExpr:
		return Call
	case *ast.NewExpr:
		if len(n.Arguments) == 0 {
			// A no-argument `new Foo` binds like a member access: it must
			// not swallow a following call's argument list.
			return New
		}
		return Member
	case *ast.ComprehensionExpr, *ast.GeneratorExpr:
		return Unsupported
	default:
		return Max
	}
}

// LeftContext constrains the leftmost token of an expression being emitted.
// It is cleared by any enclosing wrapper, or by any token that is not
// itself leftmost (spec.md §4.3).
type LeftContext int

const (
	LeftNormal LeftContext = iota
	LeftInExpressionStatement
	LeftInTaggedTemplate
	LeftInPlusOp
	LeftInMinusOp
)

// GroupContext constrains the shape of an entire subexpression. It is
// cleared only by a wrapper (parens/brackets/braces), never by position.
type GroupContext int

const (
	GroupNormal GroupContext = iota
	GroupInArrowFuncBody
	GroupInForInit
)

// Context is the threaded {left, group} ambiguity record of spec.md §4.3.
// It is passed explicitly into every expression emission, never stored in a
// global or a stack (spec.md §9).
type Context struct {
	Left  LeftContext
	Group GroupContext
}

// Cleared returns the context to use for a child emitted behind a bracket,
// paren, or brace: both fields reset to Normal (spec.md §4.3: "Contexts
// propagate only until a bracket/paren/brace is emitted").
func (Context) Cleared() Context { return Context{} }

// WithLeft returns a copy of ctxt with Left replaced; Group is preserved.
func (ctxt Context) WithLeft(left LeftContext) Context {
	ctxt.Left = left
	return ctxt
}

// WithGroup returns a copy of ctxt with Group replaced; Left is preserved.
func (ctxt Context) WithGroup(group GroupContext) Context {
	ctxt.Group = group
	return ctxt
}

// NotLeftmost clears Left (a token was just emitted ahead of the child, so
// the child is no longer in leftmost position) while preserving Group.
func (ctxt Context) NotLeftmost() Context {
	ctxt.Left = LeftNormal
	return ctxt
}

// isBinaryIn reports whether e is `Binary(in, ...)`, the ambiguous
// production inside a bare `for (...)` init clause.
func isBinaryIn(e ast.Expr) bool {
	b, ok := e.(*ast.BinaryExpr)
	return ok && b.Operator == "in"
}

// objectPatternAssignment reports whether e is an AssignmentExpr whose
// left-hand side is an object pattern, the `({a} = b)` shape that needs
// parens as a bare expression statement.
func objectPatternAssignment(e ast.Expr) bool {
	a, ok := e.(*ast.AssignmentExpr)
	if !ok {
		return false
	}
	_, isObjectPattern := a.Left.(*ast.ObjectPattern)
	return isObjectPattern
}

func isUnaryMinus(e ast.Expr) bool {
	u, ok := e.(*ast.UnaryExpr)
	return ok && u.Operator == "-"
}

func isPrefixDecrement(e ast.Expr) bool {
	u, ok := e.(*ast.UpdateExpr)
	return ok && u.Prefix && u.Operator == "--"
}

func isUnaryPlus(e ast.Expr) bool {
	u, ok := e.(*ast.UnaryExpr)
	return ok && u.Operator == "+"
}

func isPrefixIncrement(e ast.Expr) bool {
	u, ok := e.(*ast.UpdateExpr)
	return ok && u.Prefix && u.Operator == "++"
}

// NeedsParens implements spec.md §4.3's needs_parens predicate: true iff
// the expression's own precedence falls below the minimum required by its
// position, or the context matches one of the six named ambiguities.
func NeedsParens(ctxt Context, expr ast.Expr, minPrec int) bool {
	if Of(expr) < minPrec {
		return true
	}
	switch {
	case ctxt.Group == GroupInArrowFuncBody && ast.ExprKind(expr) == ast.KindObject:
		return true
	case ctxt.Group == GroupInForInit && isBinaryIn(expr):
		return true
	case ctxt.Left == LeftInExpressionStatement && isExpressionStatementAmbiguous(expr):
		return true
	case ctxt.Left == LeftInTaggedTemplate && isTaggedTemplateAmbiguous(expr):
		return true
	case ctxt.Left == LeftInMinusOp && (isUnaryMinus(expr) || isPrefixDecrement(expr)):
		return true
	case ctxt.Left == LeftInPlusOp && (isUnaryPlus(expr) || isPrefixIncrement(expr)):
		return true
	default:
		return false
	}
}

func isExpressionStatementAmbiguous(expr ast.Expr) bool {
	switch ast.ExprKind(expr) {
	case ast.KindFunction, ast.KindClassExpression, ast.KindObject:
		return true
	}
	return objectPatternAssignment(expr)
}

func isTaggedTemplateAmbiguous(expr ast.Expr) bool {
	switch ast.ExprKind(expr) {
	case ast.KindFunction, ast.KindClassExpression, ast.KindNew, ast.KindImportExpression, ast.KindObject:
		return true
	}
	return false
}

// ContainsCall is the one-shot boolean scanner of spec.md §5/§9: it walks a
// `new` callee looking for any embedded call expression, so the callee can
// be parenthesized to keep the argument list from binding to the call
// instead of to `new`. It is local to a single NewExpr emission and does
// not escape (no visitor framework, per spec.md §9).
func ContainsCall(e ast.Expr) bool {
	switch n := e.(type) {
	case nil:
		return false
	case *ast.CallExpr:
		return true
	case *ast.MemberExpr:
		return ContainsCall(n.Object) || (n.Computed && ContainsCall(n.Property))
	case *ast.NewExpr:
		for _, a := range n.Arguments {
			if ContainsCall(a.Expr) {
				return true
			}
		}
		return ContainsCall(n.Callee)
	case *ast.TaggedTemplateExpr:
		return ContainsCall(n.Tag)
	case *ast.BinaryExpr:
		return ContainsCall(n.Left) || ContainsCall(n.Right)
	case *ast.LogicalExpr:
		return ContainsCall(n.Left) || ContainsCall(n.Right)
	case *ast.ConditionalExpr:
		return ContainsCall(n.Test) || ContainsCall(n.Consequent) || ContainsCall(n.Alternate)
	case *ast.SequenceExpr:
		for _, x := range n.Expressions {
			if ContainsCall(x) {
				return true
			}
		}
		return false
	case *ast.UnaryExpr:
		return ContainsCall(n.Argument)
	case *ast.AwaitExpr:
		return ContainsCall(n.Argument)
	case *ast.TypeCastExpr:
		return ContainsCall(n.Expression)
	default:
		return false
	}
}
