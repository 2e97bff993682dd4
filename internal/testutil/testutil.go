// Package testutil collects the test-support helpers this module's
// _test.go files share: fixture dedenting, colorized diffs, and snapshot
// assembly.
//
// Adapted from the teacher's internal/test_utils/test_utils.go: Dedent and
// ANSIDiff are carried close to verbatim (same chained stdlib/dedent/cmp
// calls); MakeSnapshot is generalized from the teacher's fixed
// js/json/css/html/jsx OutputKind enum to a single "layout" kind, since
// this module has exactly one output shape to snapshot.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
	pkgdiff "github.com/pkg/diff"
	"github.com/pkg/diff/myers"
	"github.com/pkg/diff/write"
)

// Dedent strips leading whitespace and collapses runs of blank lines,
// matching the teacher's fixture-normalization rules exactly.
func Dedent(input string) string {
	return dedent.Dedent(
		strings.ReplaceAll(
			strings.TrimLeft(
				strings.TrimRight(input, " \n\r"),
				" \t\r\n"),
			"\n\n\n", "\n\n"),
	)
}

// ANSIDiff renders a cmp.Diff with ANSI color codes on added/removed
// lines, for readable test failure output in a terminal.
func ANSIDiff(x, y interface{}, opts ...cmp.Option) string {
	escapeCode := func(code int) string {
		return fmt.Sprintf("\x1b[%dm", code)
	}
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return ""
	}
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "-"):
			lines[i] = escapeCode(31) + s + escapeCode(0)
		case strings.HasPrefix(s, "+"):
			lines[i] = escapeCode(32) + s + escapeCode(0)
		}
	}
	return strings.Join(lines, "\n")
}

// TextDiff renders a line-oriented unified diff between two rendered
// outputs, for assertions that want the raw diff text rather than a
// pass/fail comparison.
func TextDiff(want, got string) string {
	var b strings.Builder
	a := strings.SplitAfter(want, "\n")
	c := strings.SplitAfter(got, "\n")
	if err := pkgdiff.Strings(a, c, myers.Diff, write.Strings(&b)); err != nil {
		return fmt.Sprintf("diff error: %v", err)
	}
	return b.String()
}

// RedactTestName removes characters that are unsafe in a snapshot file
// name, the same substitution list the teacher's RedactTestName uses.
func RedactTestName(name string) string {
	r := strings.NewReplacer(
		"#", "_", "<", "_", ">", "_", ")", "_", "(", "_", ":", "_",
		" ", "_", "'", "_", "\"", "_", "@", "_", "`", "_", "+", "_",
	)
	return r.Replace(name)
}

// SnapshotOptions mirrors the teacher's struct shape, narrowed to this
// module's single output kind (a rendered layout tree, not a
// js/json/css/html/jsx family).
type SnapshotOptions struct {
	Testing      *testing.T
	TestCaseName string
	Input        string
	Output       string
	FolderName   string
}

// MakeSnapshot assembles an input/output snapshot in the teacher's format
// and matches it via go-snaps.
func MakeSnapshot(options *SnapshotOptions) {
	folderName := options.FolderName
	if folderName == "" {
		folderName = "__snapshots__"
	}
	s := snaps.WithConfig(
		snaps.Filename(RedactTestName(options.TestCaseName)),
		snaps.Dir(folderName),
	)
	snapshot := "## Input\n\n```\n" + Dedent(options.Input) +
		"\n```\n\n## Output\n\n```js\n" + Dedent(options.Output) + "\n```"
	s.MatchSnapshot(options.Testing, snapshot)
}
