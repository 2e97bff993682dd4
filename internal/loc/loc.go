// Package loc defines the source-location primitives shared by the AST,
// the layout IR, and the diagnostic machinery.
package loc

import "fmt"

// Loc is a single position in a source file: a 1-based line, a 0-based
// column, and a 0-based byte offset from the start of the file. All three
// are carried (rather than just an offset, as the teacher's printer does)
// because the AST this package consumes reports all three directly, and
// nothing downstream recomputes line/column from a bare byte offset.
type Loc struct {
	Line   int
	Column int
	Offset int
}

// Zero is the synthetic location used for nodes with no source position,
// e.g. the top-level Program wrapper (spec.md §4.9).
var Zero = Loc{Line: 1, Column: 0, Offset: 0}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Before reports whether l sits strictly before other in the file.
func (l Loc) Before(other Loc) bool {
	return l.Offset < other.Offset
}

// Range is a half-open [Start, End) span. Source is an optional file path
// or URL, mirroring the AST's `location.source?` field (spec.md §3).
type Range struct {
	Source string
	Start  Loc
	End    Loc
}

// NewRange validates that End does not precede Start and panics otherwise.
// Location arithmetic in this module must be total and monotone (spec.md
// §9, open question (b)): a caller that manages to construct an inverted
// range has a bug, not a malformed-input condition, so this is a panic
// rather than an error return.
func NewRange(source string, start, end Loc) Range {
	if end.Offset < start.Offset {
		panic(fmt.Sprintf("loc: inverted range %v..%v", start, end))
	}
	return Range{Source: source, Start: start, End: end}
}

// Len returns the byte length of the range.
func (r Range) Len() int {
	return r.End.Offset - r.Start.Offset
}

// Join returns the smallest range spanning both r and other.
func Join(r, other Range) Range {
	start := r.Start
	if other.Start.Offset < start.Offset {
		start = other.Start
	}
	end := r.End
	if other.End.Offset > end.Offset {
		end = other.End
	}
	return Range{Source: r.Source, Start: start, End: end}
}
