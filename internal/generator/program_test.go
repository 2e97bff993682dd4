package generator

import (
	"testing"

	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/handler"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/loc"
)

func TestGenerateProgramWithBlankLineGap(t *testing.T) {
	first := &ast.ExpressionStatement{Expression: ident("a")}
	first.Range = loc.NewRange("", loc.Loc{Line: 1, Offset: 0}, loc.Loc{Line: 1, Offset: 2})
	second := &ast.ExpressionStatement{Expression: ident("b")}
	second.Range = loc.NewRange("", loc.Loc{Line: 3, Offset: 10}, loc.Loc{Line: 3, Offset: 12})

	program := &ast.Program{
		Range: loc.NewRange("f.js", loc.Loc{Line: 1, Offset: 0}, loc.Loc{Line: 3, Offset: 12}),
		Body:  []ast.Stmt{first, second},
	}

	result, err := Generate(ProgramOptions{}, program, handler.New("f.js"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := layout.Render(result, true)
	want := "a;\n\nb;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateAppendsChecksumFooter(t *testing.T) {
	stmt := &ast.ExpressionStatement{Expression: ident("a")}
	checksum := "abc123"
	program := &ast.Program{
		Range: loc.NewRange("f.js", loc.Zero, loc.Loc{Line: 1, Offset: 1}),
		Body:  []ast.Stmt{stmt},
	}
	result, err := Generate(ProgramOptions{Checksum: &checksum}, program, handler.New("f.js"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := layout.Render(result, true)
	want := "a;\n\n/* abc123 */"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// An unsupported production unwinds through Generate's recover as an error
// rather than a panic, per spec.md §7.
func TestGenerateRecoversUnsupportedProduction(t *testing.T) {
	stmt := &ast.ExpressionStatement{Expression: &ast.ComprehensionExpr{}}
	program := &ast.Program{
		Range: loc.NewRange("f.js", loc.Zero, loc.Loc{Line: 1, Offset: 1}),
		Body:  []ast.Stmt{stmt},
	}
	h := handler.New("f.js")
	_, err := Generate(ProgramOptions{}, program, h)
	if err == nil {
		t.Fatal("expected an error for an unsupported production")
	}
	if !h.HasErrors() {
		t.Error("the handler should have accumulated the fatal error too")
	}
}

// A plain object property keyed by a private name (`{ #x: 1 }`, invalid
// outside a class body) is a mandatory InvalidAst fatal condition per
// spec.md §4.10/§7, not a silently-accepted `#x: 1` in the rendered output.
func TestGenerateFailsOnPrivateNameObjectKey(t *testing.T) {
	prop := ast.Property{
		Kind:  ast.PropInit,
		Key:   &ast.PrivateName{Name: "x"},
		Value: numLit("1", 1),
	}
	stmt := &ast.ExpressionStatement{
		Expression: &ast.ObjectExpr{Properties: []ast.Property{prop}},
	}
	program := &ast.Program{
		Range: loc.NewRange("f.js", loc.Zero, loc.Loc{Line: 1, Offset: 1}),
		Body:  []ast.Stmt{stmt},
	}
	h := handler.New("f.js")
	_, err := Generate(ProgramOptions{}, program, h)
	if err == nil {
		t.Fatal("expected an error for a private name used as a plain object key")
	}
	if !h.HasErrors() {
		t.Error("the handler should have accumulated the fatal error too")
	}
}
