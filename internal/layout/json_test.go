package layout

import (
	"testing"

	"github.com/flowprint/layoutgen/internal/loc"
)

func TestDumpLoadJSONRoundTrip(t *testing.T) {
	original := Sequence{
		Break:  BreakIfPretty,
		Inline: Inline{Leading: true, Trailing: true},
		Indent: 1,
		Children: []Node{
			Identifier{Range: loc.NewRange("f.js", loc.Zero, loc.Loc{Line: 1, Column: 1, Offset: 1}), Name: "x"},
			IfPretty{Pretty: Atom("pretty"), Ugly: Atom("ugly")},
			IfBreak{Broken: Atom("("), NotBroken: Empty{}},
			Fuse{Atom("a"), Atom("b")},
		},
	}

	data, err := DumpJSON(original)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}
	loaded, err := LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	wantRender := Render(original, true)
	gotRender := Render(loaded, true)
	if wantRender != gotRender {
		t.Errorf("round-tripped tree renders differently: got %q, want %q", gotRender, wantRender)
	}
}

func TestDumpJSONAtom(t *testing.T) {
	data, err := DumpJSON(Atom("hello"))
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}
	loaded, err := LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if loaded != Atom("hello") {
		t.Errorf("round-tripped atom = %v, want Atom(hello)", loaded)
	}
}
