// Package directive implements the directive-prologue helper named in
// spec.md §6: partition_directives splits a statement list at the first
// non-directive statement, so the program driver (internal/generator) can
// merge the directive prologue with leading comments for docblock
// preservation (spec.md §4.9).
//
// Adapted from the teacher's internal/js_scanner/js_scanner.go scanning
// idiom (a byte-at-a-time loop over a cursor inspecting one rune at a
// time). The teacher keeps that cursor in package-level globals (`var
// source []byte; var pos int`), which is unsafe for concurrent callers;
// spec.md §5 requires the core to support "multiple programs ... generated
// in parallel by independent invocations without coordination," so the
// cursor is a receiver struct here instead.
package directive

import "github.com/flowprint/layoutgen/internal/ast"

// scanner is the receiver-based replacement for js_scanner.go's package
// globals: same cursor-and-rune-inspection shape, but local to one call.
type scanner struct {
	source []byte
	pos    int
}

func (s *scanner) eof() bool { return s.pos >= len(s.source) }

func (s *scanner) cur() byte { return s.source[s.pos] }

// isDirective reports whether raw (a string literal's exact source text,
// quotes included) is free of any embedded escape or substitution that
// would disqualify it as a directive per the ECMAScript directive-prologue
// grammar (a plain string literal, no escapes).
func isDirective(raw string) bool {
	sc := &scanner{source: []byte(raw)}
	if sc.eof() {
		return false
	}
	quote := sc.cur()
	if quote != '"' && quote != '\'' {
		return false
	}
	sc.pos++
	for !sc.eof() {
		switch sc.cur() {
		case quote:
			return sc.pos == len(sc.source)-1
		case '\\':
			// Any escape sequence disqualifies the literal from being a
			// directive under the grammar's "no EscapeSequence" rule; a
			// directive's Value must equal its Raw sans quotes.
			return false
		}
		sc.pos++
	}
	return false
}

// IsDirectivePrologueMember reports whether stmt is a bare string-literal
// expression statement that is a syntactically valid directive (e.g.
// `"use strict";`).
func IsDirectivePrologueMember(stmt ast.Stmt) bool {
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	lit, ok := es.Expression.(*ast.Literal)
	if !ok || lit.Kind != ast.LitString {
		return false
	}
	return isDirective(lit.Raw)
}

// Partition splits body at the first statement that is not a directive
// prologue member, returning the directive prefix and the remainder. An
// empty prefix means body has no leading directives.
func Partition(body []ast.Stmt) (directives, rest []ast.Stmt) {
	i := 0
	for i < len(body) && IsDirectivePrologueMember(body[i]) {
		i++
	}
	return body[:i], body[i:]
}
