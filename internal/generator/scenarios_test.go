package generator

import (
	"strings"
	"testing"

	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/loc"
	"github.com/flowprint/layoutgen/internal/precedence"
)

// spec.md §8 scenario 3: `for ((x in y);;) {}` parenthesizes a bare
// `in`-binary in a for-init position.
func TestScenarioForInitBinaryIn(t *testing.T) {
	g := newGen()
	n := &ast.ForStatement{
		Init: &ast.BinaryExpr{Operator: "in", Left: ident("x"), Right: ident("y")},
		Body: &ast.BlockStatement{},
	}
	got := layout.Render(g.stmt(n), true)
	want := "for ((x in y); ; ) {}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// spec.md §8 scenario 6: `x + +y` forces parens around the right operand
// so the two `+` signs never glue into `++`.
func TestScenarioPlusUnaryPlusRightOperand(t *testing.T) {
	g := newGen()
	n := &ast.BinaryExpr{
		Operator: "+",
		Left:     ident("x"),
		Right:    &ast.UnaryExpr{Operator: "+", Argument: ident("y")},
	}
	got := layout.Render(g.expr(precedence.Context{}, n, precedence.Min), true)
	want := "x + (+y)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// spec.md §8 scenario 7: a string literal's ugly-mode quote is chosen to
// minimize escapes — a tie goes to double quotes.
func TestScenarioStringQuoteMinimality(t *testing.T) {
	g := newGen()
	lit := &ast.Literal{Kind: ast.LitString, Raw: `'it\'s'`, Value: `it's`}
	got := layout.Render(g.expr(precedence.Context{}, lit, precedence.Min), false)
	want := `"it's"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// spec.md §8 scenario 9: a non-BMP string literal's ugly-mode encoding
// escapes to a UTF-16 surrogate pair.
func TestScenarioNonBMPEscape(t *testing.T) {
	g := newGen()
	lit := &ast.Literal{Kind: ast.LitString, Raw: "\"\U0001F4A9\"", Value: "\U0001F4A9"}
	got := layout.Render(g.expr(precedence.Context{}, lit, precedence.Min), false)
	want := "\"\\ud83d\\udca9\""
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// spec.md §8 scenario 10: a return whose argument fits on one line leaves
// its break-activated parens invisible.
func TestScenarioReturnBreakParens(t *testing.T) {
	g := newGen()
	n := &ast.ReturnStatement{
		Argument: &ast.LogicalExpr{Operator: "&&", Left: ident("a"), Right: ident("b")},
	}
	got := layout.Render(g.stmt(n), true)
	want := "return a && b;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// spec.md §4.5: `throw` always applies the break-activated-parens wrap,
// unlike `return` which gates it on the argument being a break-prone kind
// (Logical/Binary/Sequence/JSXElement). A `throw new Error(...)` whose
// argument overflows the line width still gets the wrap even though
// `NewExpr` is not in that break-prone set.
func TestScenarioThrowAlwaysBreakWraps(t *testing.T) {
	g := newGen()
	long := strings.Repeat("a", 100)
	n := &ast.ThrowStatement{
		Argument: &ast.NewExpr{
			Callee: ident("Error"),
			Arguments: []ast.Argument{{
				Expr: &ast.Literal{Kind: ast.LitString, Raw: `"` + long + `"`, Value: long},
			}},
		},
	}
	got := layout.Render(g.stmt(n), true)
	want := "throw \n(\n  new Error(\"" + long + "\")\n);"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// An arrow with a single bare-identifier parameter does NOT elide parens
// when it carries a return-type annotation: `(x): number => x`'s parens
// are required syntax, not optional style, so arrowElidesParens must see
// ReturnType and refuse.
func TestArrowReturnTypeAnnotationPreventsElision(t *testing.T) {
	g := newGen()
	arrow := &ast.ArrowFunctionExpr{
		Params:     []ast.Param{{Pattern: ident("x")}},
		ReturnType: &ast.PrimitiveType{Kind: ast.PrimNumber},
		Body:       ident("x"),
	}
	got := layout.Render(g.expr(precedence.Context{}, arrow, precedence.Min), true)
	want := "(x): number => x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// A blank source-line gap between two statements is preserved as a blank
// rendered line inside a block (spec.md §4.5).
func TestBlockPreservesBlankLineGap(t *testing.T) {
	g := newGen()
	first := &ast.ExpressionStatement{Expression: ident("a")}
	first.Range = loc.NewRange("", loc.Loc{Line: 1, Offset: 0}, loc.Loc{Line: 1, Offset: 2})
	second := &ast.ExpressionStatement{Expression: ident("b")}
	second.Range = loc.NewRange("", loc.Loc{Line: 3, Offset: 10}, loc.Loc{Line: 3, Offset: 12})
	block := &ast.BlockStatement{Body: []ast.Stmt{first, second}}
	got := layout.Render(g.block(block), true)
	want := "\n  {\n  a;\n  \n  b;\n  }\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// arrowElidesParens: a single bare-identifier parameter renders without
// surrounding parens.
func TestArrowSingleIdentifierParamElidesParens(t *testing.T) {
	g := newGen()
	arrow := &ast.ArrowFunctionExpr{
		Params: []ast.Param{{Pattern: ident("x")}},
		Body:   ident("x"),
	}
	got := layout.Render(g.expr(precedence.Context{}, arrow, precedence.Min), true)
	want := "x => x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TrimJSXText drops a text child that is pure whitespace bounded by
// newlines on both sides (spec.md §4.8).
func TestJSXTextPureNewlineWhitespaceDropped(t *testing.T) {
	_, ok := TrimJSXText("\n   \n")
	if ok {
		t.Error("a text run that is only whitespace between two newlines should be dropped")
	}
}

// TrimJSXText keeps interior content, trimming only the newline-adjacent
// runs at each end.
func TestJSXTextTrimsNewlineAdjacentRuns(t *testing.T) {
	got, ok := TrimJSXText("  \n  hello  \n  ")
	if !ok {
		t.Fatal("expected the text to survive trimming")
	}
	if got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}
