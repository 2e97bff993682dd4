// Package layout defines the layout IR (spec.md §3/§4.1): the
// formatter-independent tree the generator emits, handed to an (out of
// scope, §1) downstream printer that chooses actual line widths.
//
// This is new work grounded directly on spec.md rather than transliterated
// from the teacher, which has no equivalent: the teacher's printer writes
// bytes straight to a buffer (internal/printer/printer.go's `p.print`),
// string-builder style. Spec.md §9's design note is explicit that an
// implementation "should define the IR as a sum with exactly the
// constructors in §3," so this package follows that instruction over the
// teacher's own printing strategy; everything else in this module (the
// generator's struct-with-helper-methods shape, its error/diagnostic
// wiring, its test style) still follows the teacher.
package layout

import "github.com/flowprint/layoutgen/internal/loc"

// Node is satisfied by every layout-tree constructor. The marker method is
// unexported so the sum type is closed to this package, the idiomatic Go
// equivalent of the "sum with exactly the constructors in §3" spec.md asks
// for.
type Node interface {
	isLayout()
}

// Atom is a single literal token, e.g. a keyword, punctuation, or a piece
// of already-escaped text.
type Atom string

func (Atom) isLayout() {}

// Identifier is an Atom that additionally carries a source location, for
// source-map attachment by the downstream printer (spec.md §3: "Every AST
// node reached during emission yields exactly one subtree; the subtree's
// outermost wrapper carries the node's location" — identifiers are
// frequently that outermost wrapper themselves).
type Identifier struct {
	Range loc.Range
	Name  string
}

func (Identifier) isLayout() {}

// SourceLocation attaches a location to an arbitrary subtree.
type SourceLocation struct {
	Range loc.Range
	Inner Node
}

func (SourceLocation) isLayout() {}

// Empty renders no output.
type Empty struct{}

func (Empty) isLayout() {}

// Fuse concatenates its children with no inter-child break.
type Fuse []Node

func (Fuse) isLayout() {}

// BreakMode controls when a Sequence's children are separated by a
// newline, per spec.md §4.1.
type BreakMode int

const (
	// BreakAlways always newline-separates children.
	BreakAlways BreakMode = iota
	// BreakIfPretty inserts a newline only in pretty mode.
	BreakIfPretty
	// BreakIfNeeded inserts a newline only if the child overflows (a
	// decision left entirely to the downstream printer).
	BreakIfNeeded
	// BreakNever never inserts a newline; children render inline.
	BreakNever
)

// Inline controls whether a leading/trailing separator appears around a
// Sequence's children.
type Inline struct {
	Leading  bool
	Trailing bool
}

// Sequence is a list of children whose separation depends on Break, with
// Indent additional indent units applied to the block (interpreted by the
// downstream printer).
type Sequence struct {
	Break    BreakMode
	Inline   Inline
	Indent   int
	Children []Node
}

func (Sequence) isLayout() {}

// Seq is a convenience constructor for the common case of a Sequence with
// no special inline/indent configuration.
func Seq(mode BreakMode, children ...Node) Sequence {
	return Sequence{Break: mode, Children: children}
}

// IfPretty selects between two subtrees based on the renderer's mode.
type IfPretty struct {
	Pretty Node
	Ugly   Node
}

func (IfPretty) isLayout() {}

// IfBreak selects between two subtrees based on whether the nearest
// enclosing Sequence actually broke.
type IfBreak struct {
	Broken    Node
	NotBroken Node
}

func (IfBreak) isLayout() {}

// PrettySemicolon is the `IfPretty(";", "")` idiom named in the glossary,
// used for trailing statements where ASI makes `;` optional.
func PrettySemicolon() Node {
	return IfPretty{Pretty: Atom(";"), Ugly: Empty{}}
}
