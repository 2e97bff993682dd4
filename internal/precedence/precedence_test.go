package precedence

import (
	"testing"

	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/loc"
)

func id(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func TestArrowFuncBodyObjectNeedsParens(t *testing.T) {
	obj := &ast.ObjectExpr{}
	ctxt := Context{Group: GroupInArrowFuncBody}
	if !NeedsParens(ctxt, obj, Min) {
		t.Error("object expression in arrow body should need parens")
	}
}

func TestForInitBinaryInNeedsParens(t *testing.T) {
	b := &ast.BinaryExpr{Operator: "in", Left: id("x"), Right: id("y")}
	ctxt := Context{Group: GroupInForInit}
	if !NeedsParens(ctxt, b, Min) {
		t.Error("Binary(in, ...) in a for-init should need parens")
	}
}

func TestExpressionStatementFunctionNeedsParens(t *testing.T) {
	fn := &ast.FunctionExpr{Body: &ast.BlockStatement{}}
	ctxt := Context{Left: LeftInExpressionStatement}
	if !NeedsParens(ctxt, fn, Min) {
		t.Error("function expression as an expression statement should need parens")
	}
}

func TestTaggedTemplateNewNeedsParens(t *testing.T) {
	n := &ast.NewExpr{Callee: id("Foo")}
	ctxt := Context{Left: LeftInTaggedTemplate}
	if !NeedsParens(ctxt, n, Min) {
		t.Error("new expression as a tagged-template tag should need parens")
	}
}

func TestMinusOpUnaryMinusNeedsParens(t *testing.T) {
	u := &ast.UnaryExpr{Operator: "-", Argument: id("y")}
	ctxt := Context{Left: LeftInMinusOp}
	if !NeedsParens(ctxt, u, Min) {
		t.Error("x - (-y) should need parens on the right operand")
	}
}

func TestPlusOpPrefixIncrementNeedsParens(t *testing.T) {
	u := &ast.UpdateExpr{Operator: "++", Prefix: true, Argument: id("y")}
	ctxt := Context{Left: LeftInPlusOp}
	if !NeedsParens(ctxt, u, Min) {
		t.Error("x + (++y) should need parens on the right operand")
	}
}

func TestLowPrecedenceNeedsParens(t *testing.T) {
	seq := &ast.SequenceExpr{Expressions: []ast.Expr{id("a"), id("b")}}
	if !NeedsParens(Context{}, seq, Assignment) {
		t.Error("a sequence expression nested as an assignment RHS should need parens")
	}
}

func TestClearedContextDoesNotPropagate(t *testing.T) {
	ctxt := Context{Left: LeftInExpressionStatement, Group: GroupInArrowFuncBody}
	cleared := ctxt.Cleared()
	if cleared.Left != LeftNormal || cleared.Group != GroupNormal {
		t.Error("Cleared() must reset both Left and Group")
	}
}

func TestContainsCallDetectsEmbeddedCall(t *testing.T) {
	call := &ast.CallExpr{Callee: id("a")}
	member := &ast.MemberExpr{Object: call, Property: id("b")}
	if !ContainsCall(member) {
		t.Error("ContainsCall should find the call nested inside the member's object")
	}
}

func TestContainsCallFalseForPlainMember(t *testing.T) {
	member := &ast.MemberExpr{Object: id("a"), Property: id("b")}
	if ContainsCall(member) {
		t.Error("ContainsCall should be false with no embedded call")
	}
}

func TestNewExprNoArgsPrecedence(t *testing.T) {
	n := &ast.NewExpr{Callee: id("Foo")}
	if Of(n) != New {
		t.Errorf("no-arg NewExpr precedence = %d, want %d", Of(n), New)
	}
}

func TestNewExprWithArgsPrecedence(t *testing.T) {
	n := &ast.NewExpr{Callee: id("Foo"), Arguments: []ast.Argument{{Expr: id("x")}}}
	if Of(n) != Member {
		t.Errorf("NewExpr(with args) precedence = %d, want %d", Of(n), Member)
	}
}

func TestZeroRangeIsUsableLocation(t *testing.T) {
	// Sanity check that loc.Zero composes with identifiers constructed in
	// these tests without panicking (NewRange panics on an inverted range).
	r := loc.NewRange("", loc.Zero, loc.Zero)
	if r.Len() != 0 {
		t.Errorf("zero-width range Len() = %d, want 0", r.Len())
	}
}
