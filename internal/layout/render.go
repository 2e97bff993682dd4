package layout

import "strings"

// Render is a minimal reference renderer used by this module's own tests
// to turn a layout tree into text. It is deliberately not the production
// printer: spec.md §1 names the downstream layout-to-string printer an
// out-of-scope external collaborator, so nothing in the generator depends
// on this file. It exists only so _test.go files can assert against the
// literal strings spec.md §8's end-to-end scenarios table names, without
// each test hand-rolling its own tree walk.
const wrapWidth = 80

type renderer struct {
	pretty      bool
	brokenStack []bool
}

// Render walks n and returns its rendered text in pretty or ugly mode.
func Render(n Node, pretty bool) string {
	r := &renderer{pretty: pretty}
	return r.render(n, 0)
}

func (r *renderer) nearestBroken() bool {
	if len(r.brokenStack) == 0 {
		return false
	}
	return r.brokenStack[len(r.brokenStack)-1]
}

func (r *renderer) render(n Node, col int) string {
	switch v := n.(type) {
	case Atom:
		return string(v)
	case Identifier:
		return v.Name
	case SourceLocation:
		return r.render(v.Inner, col)
	case Empty:
		return ""
	case Fuse:
		var b strings.Builder
		c := col
		for _, child := range v {
			text := r.render(child, c)
			b.WriteString(text)
			c += lastLineLen(text, c)
		}
		return b.String()
	case Sequence:
		return r.renderSequence(v, col)
	case IfPretty:
		if r.pretty {
			return r.render(v.Pretty, col)
		}
		return r.render(v.Ugly, col)
	case IfBreak:
		if r.nearestBroken() {
			return r.render(v.Broken, col)
		}
		return r.render(v.NotBroken, col)
	default:
		return ""
	}
}

func lastLineLen(s string, startCol int) int {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return len(s) - i - 1
	}
	return startCol + len(s)
}

func (r *renderer) renderSequence(seq Sequence, col int) string {
	broken := r.decideBreak(seq, col)
	r.brokenStack = append(r.brokenStack, broken)
	defer func() { r.brokenStack = r.brokenStack[:len(r.brokenStack)-1] }()

	if !broken {
		var b strings.Builder
		c := col
		for _, child := range seq.Children {
			text := r.render(child, c)
			b.WriteString(text)
			c += lastLineLen(text, c)
		}
		return b.String()
	}

	indent := strings.Repeat("  ", seq.Indent)
	var b strings.Builder
	if seq.Inline.Leading {
		b.WriteByte('\n')
	}
	for i, child := range seq.Children {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(r.render(child, len(indent)))
	}
	if seq.Inline.Trailing {
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *renderer) decideBreak(seq Sequence, col int) bool {
	switch seq.Break {
	case BreakAlways:
		return true
	case BreakNever:
		return false
	case BreakIfPretty:
		return r.pretty
	case BreakIfNeeded:
		if !r.pretty {
			return false
		}
		flat := r.renderFlatProbe(seq.Children, col)
		return strings.Contains(flat, "\n") || col+len(flat) > wrapWidth
	default:
		return false
	}
}

// renderFlatProbe renders seq's children as if this sequence (only) were
// not broken, to decide whether it should be. Nested sequences still make
// their own break decisions.
func (r *renderer) renderFlatProbe(children []Node, col int) string {
	r.brokenStack = append(r.brokenStack, false)
	defer func() { r.brokenStack = r.brokenStack[:len(r.brokenStack)-1] }()
	var b strings.Builder
	c := col
	for _, child := range children {
		text := r.render(child, c)
		b.WriteString(text)
		c += lastLineLen(text, c)
	}
	return b.String()
}
