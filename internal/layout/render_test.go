package layout

import "testing"

func TestRenderFuseConcatenates(t *testing.T) {
	n := Fuse{Atom("a"), Atom("b"), Atom("c")}
	if got := Render(n, false); got != "abc" {
		t.Errorf("Render(Fuse) = %q, want %q", got, "abc")
	}
}

func TestRenderIfPrettySelectsMode(t *testing.T) {
	n := IfPretty{Pretty: Atom("pretty"), Ugly: Atom("ugly")}
	if got := Render(n, true); got != "pretty" {
		t.Errorf("Render(IfPretty, pretty) = %q", got)
	}
	if got := Render(n, false); got != "ugly" {
		t.Errorf("Render(IfPretty, ugly) = %q", got)
	}
}

func TestRenderSequenceAlwaysBreaks(t *testing.T) {
	n := Sequence{Break: BreakAlways, Indent: 1, Children: []Node{Atom("a"), Atom("b")}}
	got := Render(n, false)
	want := "  a\n  b"
	if got != want {
		t.Errorf("Render(Sequence Always) = %q, want %q", got, want)
	}
}

func TestRenderSequenceNeverStaysInline(t *testing.T) {
	n := Sequence{Break: BreakNever, Children: []Node{Atom("a"), Atom(", "), Atom("b")}}
	if got := Render(n, true); got != "a, b" {
		t.Errorf("Render(Sequence Never) = %q, want %q", got, "a, b")
	}
}

func TestRenderIfBreakTracksNearestSequence(t *testing.T) {
	seq := Sequence{
		Break: BreakAlways,
		Children: []Node{
			IfBreak{Broken: Atom("broken"), NotBroken: Atom("not-broken")},
		},
	}
	got := Render(seq, false)
	if got != "broken" {
		t.Errorf("Render(IfBreak inside BreakAlways) = %q, want %q", got, "broken")
	}

	seq2 := Sequence{
		Break: BreakNever,
		Children: []Node{
			IfBreak{Broken: Atom("broken"), NotBroken: Atom("not-broken")},
		},
	}
	got2 := Render(seq2, false)
	if got2 != "not-broken" {
		t.Errorf("Render(IfBreak inside BreakNever) = %q, want %q", got2, "not-broken")
	}
}

func TestRenderSourceLocationIsTransparent(t *testing.T) {
	n := SourceLocation{Inner: Atom("x")}
	if got := Render(n, false); got != "x" {
		t.Errorf("Render(SourceLocation) = %q, want %q", got, "x")
	}
}

func TestRenderPrettySemicolon(t *testing.T) {
	n := PrettySemicolon()
	if got := Render(n, true); got != ";" {
		t.Errorf("Render(PrettySemicolon, pretty) = %q, want %q", got, ";")
	}
	if got := Render(n, false); got != "" {
		t.Errorf("Render(PrettySemicolon, ugly) = %q, want %q", got, "")
	}
}
