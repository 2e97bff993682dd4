package generator

import (
	"testing"

	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/handler"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/precedence"
)

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func numLit(raw string, v float64) *ast.Literal {
	return &ast.Literal{Kind: ast.LitNumber, Raw: raw, Number: v}
}

func newGen() *generator {
	return &generator{h: handler.New("<test>")}
}

// spec.md §8 scenario 1: `(function(){});` as an expression statement
// retains its parens.
func TestScenarioFunctionExpressionStatement(t *testing.T) {
	g := newGen()
	stmt := &ast.ExpressionStatement{
		Expression: &ast.FunctionExpr{Body: &ast.BlockStatement{}},
	}
	got := layout.Render(g.stmt(stmt), true)
	want := "(function() {});"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// spec.md §8 scenario 2: an object literal as a concise arrow body gets
// parenthesized so it isn't read as a block.
func TestScenarioArrowBodyObjectLiteral(t *testing.T) {
	g := newGen()
	arrow := &ast.ArrowFunctionExpr{
		Body: &ast.ObjectExpr{Properties: []ast.Property{
			{Kind: ast.PropInit, Key: ident("b"), Value: numLit("1", 1)},
		}},
	}
	got := layout.Render(g.expr(precedence.Context{}, arrow, 1), true)
	want := "() => ({b: 1})"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// spec.md §8 scenario 4: a numeric literal as the object of a member
// access is parenthesized in pretty mode, suffixed with `.` in ugly mode.
func TestScenarioNumericMemberObject(t *testing.T) {
	g := newGen()
	member := &ast.MemberExpr{Object: numLit("1", 1), Property: ident("foo")}
	if got := layout.Render(g.expr(precedence.Context{}, member, 1), true); got != "(1).foo" {
		t.Errorf("pretty: got %q, want %q", got, "(1).foo")
	}
	if got := layout.Render(g.expr(precedence.Context{}, member, 1), false); got != "1..foo" {
		t.Errorf("ugly: got %q, want %q", got, "1..foo")
	}
}

// spec.md §8 scenario 5: `new (a().b)()` forces parens around a callee
// that contains a call expression.
func TestScenarioNewWithCallInCallee(t *testing.T) {
	g := newGen()
	call := &ast.CallExpr{Callee: ident("a")}
	member := &ast.MemberExpr{Object: call, Property: ident("b")}
	n := &ast.NewExpr{Callee: member}
	got := layout.Render(g.expr(precedence.Context{}, n, 1), true)
	want := "new (a().b)()"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// spec.md §8 scenario 8: an array with a trailing hole forces a trailing
// comma to preserve arity.
func TestScenarioArrayTrailingHole(t *testing.T) {
	g := newGen()
	arr := &ast.ArrayExpr{Elements: []ast.ArrayElement{
		{Elem: numLit("1", 1)},
		{Elem: nil},
		{Elem: nil},
	}}
	got := layout.Render(g.expr(precedence.Context{}, arr, 1), true)
	want := "[1, , ,]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
