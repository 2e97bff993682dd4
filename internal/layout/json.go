package layout

import (
	"github.com/go-json-experiment/json"

	"github.com/flowprint/layoutgen/internal/loc"
)

// wireNode is the tagged-union JSON encoding of a layout tree, used for
// DumpJSON/LoadJSON round-tripping in snapshot tests.
type wireNode struct {
	Kind string `json:"kind"`

	Text  string    `json:"text,omitempty"`
	Range *loc.Range `json:"range,omitempty"`

	Inner *wireNode `json:"inner,omitempty"`

	Children []wireNode `json:"children,omitempty"`
	Break    *int       `json:"break,omitempty"`
	Leading  bool       `json:"leading,omitempty"`
	Trailing bool       `json:"trailing,omitempty"`
	Indent   int        `json:"indent,omitempty"`

	Pretty *wireNode `json:"pretty,omitempty"`
	Ugly   *wireNode `json:"ugly,omitempty"`

	Broken    *wireNode `json:"broken,omitempty"`
	NotBroken *wireNode `json:"notBroken,omitempty"`
}

func toWire(n Node) wireNode {
	switch v := n.(type) {
	case Atom:
		return wireNode{Kind: "atom", Text: string(v)}
	case Identifier:
		r := v.Range
		return wireNode{Kind: "identifier", Text: v.Name, Range: &r}
	case SourceLocation:
		r := v.Range
		inner := toWire(v.Inner)
		return wireNode{Kind: "sourceLocation", Range: &r, Inner: &inner}
	case Empty:
		return wireNode{Kind: "empty"}
	case Fuse:
		children := make([]wireNode, len(v))
		for i, c := range v {
			children[i] = toWire(c)
		}
		return wireNode{Kind: "fuse", Children: children}
	case Sequence:
		children := make([]wireNode, len(v.Children))
		for i, c := range v.Children {
			children[i] = toWire(c)
		}
		b := int(v.Break)
		return wireNode{
			Kind: "sequence", Children: children, Break: &b,
			Leading: v.Inline.Leading, Trailing: v.Inline.Trailing, Indent: v.Indent,
		}
	case IfPretty:
		pretty := toWire(v.Pretty)
		ugly := toWire(v.Ugly)
		return wireNode{Kind: "ifPretty", Pretty: &pretty, Ugly: &ugly}
	case IfBreak:
		broken := toWire(v.Broken)
		notBroken := toWire(v.NotBroken)
		return wireNode{Kind: "ifBreak", Broken: &broken, NotBroken: &notBroken}
	default:
		return wireNode{Kind: "empty"}
	}
}

func fromWire(w wireNode) Node {
	switch w.Kind {
	case "atom":
		return Atom(w.Text)
	case "identifier":
		r := loc.Range{}
		if w.Range != nil {
			r = *w.Range
		}
		return Identifier{Range: r, Name: w.Text}
	case "sourceLocation":
		r := loc.Range{}
		if w.Range != nil {
			r = *w.Range
		}
		var inner Node = Empty{}
		if w.Inner != nil {
			inner = fromWire(*w.Inner)
		}
		return SourceLocation{Range: r, Inner: inner}
	case "fuse":
		children := make(Fuse, len(w.Children))
		for i, c := range w.Children {
			children[i] = fromWire(c)
		}
		return children
	case "sequence":
		children := make([]Node, len(w.Children))
		for i, c := range w.Children {
			children[i] = fromWire(c)
		}
		br := BreakAlways
		if w.Break != nil {
			br = BreakMode(*w.Break)
		}
		return Sequence{
			Break:    br,
			Inline:   Inline{Leading: w.Leading, Trailing: w.Trailing},
			Indent:   w.Indent,
			Children: children,
		}
	case "ifPretty":
		var pretty, ugly Node = Empty{}, Empty{}
		if w.Pretty != nil {
			pretty = fromWire(*w.Pretty)
		}
		if w.Ugly != nil {
			ugly = fromWire(*w.Ugly)
		}
		return IfPretty{Pretty: pretty, Ugly: ugly}
	case "ifBreak":
		var broken, notBroken Node = Empty{}, Empty{}
		if w.Broken != nil {
			broken = fromWire(*w.Broken)
		}
		if w.NotBroken != nil {
			notBroken = fromWire(*w.NotBroken)
		}
		return IfBreak{Broken: broken, NotBroken: notBroken}
	default:
		return Empty{}
	}
}

// DumpJSON serializes a layout tree for snapshot comparison.
func DumpJSON(n Node) ([]byte, error) {
	return json.Marshal(toWire(n))
}

// LoadJSON deserializes a tree produced by DumpJSON.
func LoadJSON(data []byte) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(w), nil
}
