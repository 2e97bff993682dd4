package generator

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/lexutil"
	"github.com/flowprint/layoutgen/internal/loc"
	"github.com/flowprint/layoutgen/internal/precedence"
)

// jsxLeadingWS and jsxTrailingWS trim whitespace-only runs adjacent to a
// newline from a JSX text child, following the JSX Text production's rule
// that such runs collapse away entirely rather than becoming a single
// space. Each is a whitespace run containing a newline, anchored at the
// start (\A) or end (\z) of the text; neither uses lookaround. This is the
// one place in the generator that uses dlclark/regexp2;
// internal/lexutil.Relexes is the package's other,
// narrower third-party-lexer touchpoint, kept separate because it drives
// a different library for a different reason (a sanity check, not a
// correctness-critical transform).
var jsxLeadingWS = regexp2.MustCompile(`\A[ \t]*\n[ \t\n]*`, regexp2.None)
var jsxTrailingWS = regexp2.MustCompile(`[ \t\n]*\n[ \t]*\z`, regexp2.None)

// TrimJSXText implements spec.md §6's trim_jsx_text auxiliary helper: it
// returns the trimmed text, or ok=false if the child disappears entirely
// (an empty trim is dropped, per spec.md §4.8).
func TrimJSXText(raw string) (trimmed string, ok bool) {
	text := raw
	if m, _ := jsxLeadingWS.FindStringMatch(text); m != nil && m.Index == 0 {
		text = text[m.Length:]
	}
	if m, _ := jsxTrailingWS.FindStringMatch(text); m != nil && m.Index+m.Length == len(text) {
		text = text[:len(text)-m.Length]
	}
	if strings.TrimSpace(text) == "" && text != raw {
		// The run was whitespace bounded by newlines on both sides: it
		// collapses entirely rather than leaving a single space behind.
		if strings.Trim(text, " \t\n") == "" {
			return "", false
		}
	}
	if text == "" {
		return "", false
	}
	return text, true
}

func (g *generator) jsxName(n ast.JSXName) string {
	if n.Namespace != "" {
		return n.Namespace + ":" + n.Name
	}
	if len(n.Member) > 0 {
		return strings.Join(n.Member, ".") + "." + n.Name
	}
	return n.Name
}

func (g *generator) jsxElement(n *ast.JSXElement) layout.Node {
	name := g.jsxName(n.Name)
	open := []layout.Node{atomf("<%s", name)}
	for _, attr := range n.Attributes {
		open = append(open, atom(" "), g.jsxAttributeOrSpread(attr))
	}
	if n.SelfClosing {
		return fuse(append(open, layout.IfPretty{Pretty: atom(" "), Ugly: layout.Empty{}}, atom("/>"))...)
	}
	open = append(open, atom(">"))
	children := g.jsxChildren(n.Children)
	close := atomf("</%s>", name)
	return fuse(
		fuse(open...),
		layout.Sequence{Break: layout.BreakIfNeeded, Children: children},
		close,
	)
}

func (g *generator) jsxFragment(n *ast.JSXFragment) layout.Node {
	children := g.jsxChildren(n.Children)
	return fuse(atom("<>"), layout.Sequence{Break: layout.BreakIfNeeded, Children: children}, atom("</>"))
}

func (g *generator) jsxChildren(children []ast.JSXChild) []layout.Node {
	nodes := make([]layout.Node, 0, len(children))
	for _, c := range children {
		if n := g.jsxChild(c); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (g *generator) jsxChild(c ast.JSXChild) layout.Node {
	switch n := c.(type) {
	case *ast.JSXText:
		trimmed, ok := TrimJSXText(n.Raw)
		if !ok {
			return nil
		}
		return withLoc(n.Pos(), atom(trimmed))
	case *ast.JSXExpressionContainer:
		return g.jsxExpressionContainer(n)
	case *ast.JSXSpreadChild:
		return withLoc(n.Pos(), fuse(atom("{..."), g.expr(precedence.Context{}, n.Expression, precedence.Assignment), atom("}")))
	case *ast.JSXElement:
		return g.jsxElement(n)
	case *ast.JSXFragment:
		return g.jsxFragment(n)
	default:
		g.fail(loc.ERROR_INVALID_AST, "unsupported JSX child kind", c.Pos())
		return nil
	}
}

func (g *generator) jsxExpressionContainer(n *ast.JSXExpressionContainer) layout.Node {
	if n.Expression == nil {
		return atom("{}")
	}
	return withLoc(n.Pos(), fuse(atom("{"), g.expr(precedence.Context{}, n.Expression, precedence.Min), atom("}")))
}

func (g *generator) jsxAttributeOrSpread(a ast.JSXAttributeOrSpread) layout.Node {
	if a.Spread != nil {
		return fuse(atom("{..."), g.expr(precedence.Context{}, a.Spread.Argument, precedence.Assignment), atom("}"))
	}
	return g.jsxAttribute(a.Attribute)
}

func (g *generator) jsxAttribute(a *ast.JSXAttribute) layout.Node {
	name := g.jsxName(a.Name)
	if a.Value == nil {
		return atom(name)
	}
	if lit, ok := a.Value.(*ast.Literal); ok && lit.Kind == ast.LitString {
		return atomf("%s=%s", name, lexutil.QuoteString(lit.Value))
	}
	return fuse(atomf("%s={", name), g.expr(precedence.Context{}, a.Value, precedence.Min), atom("}"))
}
