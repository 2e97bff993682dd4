package directive

import (
	"testing"

	"github.com/flowprint/layoutgen/internal/ast"
)

func stringStmt(raw string) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: &ast.Literal{Kind: ast.LitString, Raw: raw}}
}

func TestIsDirectivePrologueMember(t *testing.T) {
	if !IsDirectivePrologueMember(stringStmt(`"use strict"`)) {
		t.Error(`"use strict" should be a directive`)
	}
	if !IsDirectivePrologueMember(stringStmt(`'use strict'`)) {
		t.Error(`'use strict' should be a directive`)
	}
}

func TestIsDirectivePrologueMemberRejectsEscapes(t *testing.T) {
	if IsDirectivePrologueMember(stringStmt(`"use\x20strict"`)) {
		t.Error("a literal with an escape sequence should not be a directive")
	}
}

func TestIsDirectivePrologueMemberRejectsNonString(t *testing.T) {
	notAString := &ast.ExpressionStatement{Expression: &ast.CallExpr{Callee: &ast.Identifier{Name: "f"}}}
	if IsDirectivePrologueMember(notAString) {
		t.Error("a call expression statement is not a directive")
	}
}

func TestPartitionSplitsAtFirstNonDirective(t *testing.T) {
	body := []ast.Stmt{
		stringStmt(`"use strict"`),
		stringStmt(`"use asm"`),
		&ast.ExpressionStatement{Expression: &ast.Identifier{Name: "x"}},
		stringStmt(`"not a directive, just a string expression"`),
	}
	directives, rest := Partition(body)
	if len(directives) != 2 {
		t.Fatalf("got %d directives, want 2", len(directives))
	}
	if len(rest) != 2 {
		t.Fatalf("got %d remaining statements, want 2", len(rest))
	}
}

func TestPartitionEmptyPrologue(t *testing.T) {
	body := []ast.Stmt{&ast.ExpressionStatement{Expression: &ast.Identifier{Name: "x"}}}
	directives, rest := Partition(body)
	if len(directives) != 0 {
		t.Fatalf("got %d directives, want 0", len(directives))
	}
	if len(rest) != 1 {
		t.Fatalf("got %d remaining statements, want 1", len(rest))
	}
}
