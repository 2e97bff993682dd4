package generator

import (
	"testing"

	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/handler"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/loc"
	"github.com/flowprint/layoutgen/internal/precedence"
	"github.com/flowprint/layoutgen/internal/testutil"
)

// TestGenerateSnapshots renders a handful of small programs end to end and
// checks them against golden input/output snapshots, the way the teacher's
// printer tests pair a fixture with its expected rendering
// (internal/printer/printer_test.go).
func TestGenerateSnapshots(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		program func() *ast.Program
	}{
		{
			name: "blank line gap between two statements",
			input: testutil.Dedent(`
				a;

				b;
			`),
			program: func() *ast.Program {
				first := &ast.ExpressionStatement{Expression: ident("a")}
				first.Range = loc.NewRange("", loc.Loc{Line: 1, Offset: 0}, loc.Loc{Line: 1, Offset: 2})
				second := &ast.ExpressionStatement{Expression: ident("b")}
				second.Range = loc.NewRange("", loc.Loc{Line: 3, Offset: 10}, loc.Loc{Line: 3, Offset: 12})
				return &ast.Program{
					Range: loc.NewRange("f.js", loc.Loc{Line: 1, Offset: 0}, loc.Loc{Line: 3, Offset: 12}),
					Body:  []ast.Stmt{first, second},
				}
			},
		},
		{
			name:  "numeric literal member access needs disambiguation",
			input: `(1).foo;`,
			program: func() *ast.Program {
				member := &ast.MemberExpr{
					Object:   numLit("1", 1),
					Property: ident("foo"),
				}
				stmt := &ast.ExpressionStatement{Expression: member}
				return &ast.Program{
					Range: loc.NewRange("f.js", loc.Zero, loc.Loc{Line: 1, Offset: 8}),
					Body:  []ast.Stmt{stmt},
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := Generate(ProgramOptions{}, c.program(), handler.New("f.js"))
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			output := layout.Render(result, true)
			testutil.MakeSnapshot(&testutil.SnapshotOptions{
				Testing:      t,
				TestCaseName: c.name,
				Input:        c.input,
				Output:       output,
			})
		})
	}
}

// TestGenerateMatchesExpectedWithDiff exercises the same round-trip the
// scenario tests check, but reports a mismatch as a unified diff rather
// than a raw %q pair, the way a failing fixture comparison should read.
func TestGenerateMatchesExpectedWithDiff(t *testing.T) {
	g := newGen()
	n := &ast.BinaryExpr{Operator: "+", Left: ident("x"), Right: ident("y")}
	got := layout.Render(g.expr(precedence.Context{}, n, precedence.Min), true)
	want := "x + y"
	if got != want {
		t.Errorf("rendered output did not match:\n%s", testutil.TextDiff(want, got))
	}
}

// TestExprIRIsDeterministic checks that emitting the same expression twice
// from two independent generator instances yields structurally identical
// layout trees, reporting any divergence as a struct diff the way
// spec.md §8's round-trip equivalence checks are meant to read.
func TestExprIRIsDeterministic(t *testing.T) {
	n := &ast.BinaryExpr{Operator: "+", Left: numLit("1", 1), Right: numLit("2", 2)}
	first := newGen().expr(precedence.Context{}, n, precedence.Min)
	second := newGen().expr(precedence.Context{}, n, precedence.Min)
	if diff := testutil.ANSIDiff(first, second); diff != "" {
		t.Errorf("layout IR was not deterministic across two generator instances:\n%s", diff)
	}
}
