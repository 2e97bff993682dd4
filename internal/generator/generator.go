// Package generator is the core translation from internal/ast to
// internal/layout (spec.md §2's "Expression emitter" through "Program
// driver" rows). It is a recursive descent over a tagged-union AST with no
// back-edges and no shared mutable state beyond the one-shot call scanner
// in internal/precedence (spec.md §2, §5, §9).
//
// Grounded on the teacher's internal/printer/printer.go: a struct carrying
// a *handler.Handler plus small per-production methods, the same shape
// kept here even though the payload each method returns is a layout.Node
// instead of bytes appended to a buffer.
package generator

import (
	"fmt"

	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/directive"
	"github.com/flowprint/layoutgen/internal/handler"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/loc"
)

// ProgramOptions mirrors spec.md §6's public entry point signature:
// `program(preserve_docblock: bool, checksum: string?, (loc, statements,
// comments)) -> layout`.
type ProgramOptions struct {
	PreserveDocblock bool
	Checksum         *string
}

// generator holds the per-call state threaded through every emit method:
// the handler errors/warnings accumulate into (matching the teacher's
// printer struct), and nothing else -- spec.md §5 requires this to be safe
// to run in parallel across independent calls, so no package-level state
// is kept anywhere in this file.
type generator struct {
	h *handler.Handler
}

// fatal is the sentinel panic value unwound by Generate's recover, per
// spec.md §7: "Propagation is by unwinding: there is no local recovery."
// Go has no checked-exception mechanism for threading a single fatal
// condition through dozens of mutually recursive emitters without
// plumbing an (layout.Node, error) pair through every call site (which
// would obscure the precedence/context data flow spec.md §9 asks to keep
// explicit); panic/recover confined to this package's single entry point
// is the standard idiom for exactly this shape (the same way
// encoding/json's decoder unwinds a single parse error internally).
type fatal struct {
	err *loc.ErrorWithRange
}

func (g *generator) fail(code loc.DiagnosticCode, text string, r loc.Range) {
	err := &loc.ErrorWithRange{Code: code, Text: text, Range: r}
	g.h.AppendError(err)
	panic(fatal{err})
}

func (g *generator) failHint(code loc.DiagnosticCode, text, hint string, r loc.Range) {
	err := &loc.ErrorWithRange{Code: code, Text: text, Hint: hint, Range: r}
	g.h.AppendError(err)
	panic(fatal{err})
}

// Generate translates program into a layout tree, per spec.md §6's public
// entry point. It is the sole place this package recovers from the
// internal fatal-unwind panic described above.
func Generate(opts ProgramOptions, program *ast.Program, h *handler.Handler) (result layout.Node, err error) {
	g := &generator{h: h}
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fatal)
			if !ok {
				panic(r)
			}
			err = f.err
			result = nil
		}
	}()
	return g.program(opts, program), nil
}

// program is the driver of spec.md §4.9: attach a synthetic top-level
// location, optionally merge the directive prologue with leading comments
// for docblock preservation, emit the statement list with inter-statement
// blank-line logic, and optionally append a checksum footer.
func (g *generator) program(opts ProgramOptions, prog *ast.Program) layout.Node {
	var children []layout.Node

	body := prog.Body
	if opts.PreserveDocblock && len(prog.Comments) > 0 {
		directives, rest := directive.Partition(body)
		leading := prog.Comments
		if len(rest) > 0 {
			leading = nil
			for _, c := range prog.Comments {
				if c.Range.Start.Offset < rest[0].Pos().Start.Offset {
					leading = append(leading, c)
				}
			}
		}
		children = append(children, g.docblock(leading, directives)...)
		body = rest
	}

	children = append(children, g.statementList(body)...)

	if opts.Checksum != nil {
		children = append(children, layout.Atom("\n/* "+*opts.Checksum+" */"))
	}

	return layout.SourceLocation{
		Range: loc.NewRange(prog.Range.Source, loc.Zero, prog.Range.End),
		Inner: layout.Sequence{Break: layout.BreakAlways, Children: children},
	}
}

// docblock merges a program's leading directive-prologue statements with
// any comments preceding the first non-directive statement, sorted by
// location, per spec.md §4.9.
func (g *generator) docblock(comments []ast.Comment, directives []ast.Stmt) []layout.Node {
	type item struct {
		start loc.Loc
		node  layout.Node
	}
	var items []item
	for _, c := range comments {
		items = append(items, item{c.Range.Start, g.comment(c)})
	}
	for _, d := range directives {
		items = append(items, item{d.Pos().Start, g.stmt(d)})
	}
	// Stable insertion sort by start offset: the prologue is always small,
	// and a stable sort preserves source order for ties (two comments on
	// the same synthetic location, for instance).
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].start.Offset < items[j-1].start.Offset; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
	nodes := make([]layout.Node, len(items))
	for i, it := range items {
		nodes[i] = it.node
	}
	return nodes
}

func (g *generator) comment(c ast.Comment) layout.Node {
	if c.Block {
		return layout.Atom("/*" + c.Value + "*/")
	}
	return layout.Atom("//" + c.Value)
}

// statementList emits a list of statements with spec.md §4.5's
// inter-statement blank-line rule: a blank separator when consecutive
// statements' source locations differ by more than one line.
func (g *generator) statementList(stmts []ast.Stmt) []layout.Node {
	nodes := make([]layout.Node, 0, len(stmts))
	var prevEnd *loc.Loc
	for _, s := range stmts {
		n := g.stmt(s)
		if _, isEmpty := n.(layout.Empty); !isEmpty {
			if prevEnd != nil {
				start := s.Pos().Start
				if prevEnd.Line+1 < start.Line {
					nodes = append(nodes, layout.Empty{})
				}
			}
			end := s.Pos().End
			prevEnd = &end
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// semi returns the statement terminator for a non-final statement: a
// plain `;`.
func semi() layout.Node { return layout.Atom(";") }

// prettySemi is spec.md §4.5's "pretty-only" terminator used on the last
// statement of a block, per the glossary's Pretty-semicolon entry.
func prettySemi() layout.Node { return layout.PrettySemicolon() }

func fuse(nodes ...layout.Node) layout.Node { return layout.Fuse(nodes) }

func atom(s string) layout.Node { return layout.Atom(s) }

func atomf(format string, a ...interface{}) layout.Node {
	return layout.Atom(fmt.Sprintf(format, a...))
}

func withLoc(r loc.Range, n layout.Node) layout.Node {
	return layout.SourceLocation{Range: r, Inner: n}
}
