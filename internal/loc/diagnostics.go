package loc

import "fmt"

// DiagnosticCode enumerates the fixed set of conditions this module can
// report, grouped into numeric blocks the way the teacher's
// internal/loc/diagnostics.go groups ERROR_*/WARNING_* codes.
type DiagnosticCode int

const (
	ERROR                          DiagnosticCode = 1000
	ERROR_UNSUPPORTED_PRODUCTION   DiagnosticCode = 1001
	ERROR_INVALID_AST              DiagnosticCode = 1002
	ERROR_PRIVATE_NAME_AS_KEY      DiagnosticCode = 1003
	ERROR_MALFORMED_DECLARE_EXPORT DiagnosticCode = 1004
	ERROR_BAD_DECLARE_FUNCTION     DiagnosticCode = 1005
	WARNING                        DiagnosticCode = 2000
	INFO                           DiagnosticCode = 3000
	HINT                           DiagnosticCode = 4000
)

// DiagnosticSeverity mirrors the teacher's handler.ErrorToMessage severity
// parameter.
type DiagnosticSeverity int

const (
	ErrorType DiagnosticSeverity = iota
	WarningType
	InformationType
	HintType
)

// DiagnosticLocation is the fully-resolved, human-facing position of a
// diagnostic: a file name plus 1-based line/column and a byte length.
type DiagnosticLocation struct {
	File   string
	Line   int
	Column int
	Length int
}

// DiagnosticMessage is the terminal, renderer-agnostic shape a Handler
// hands back to a caller (spec.md §7: "errors surface at the top-level
// entry and carry enough location information to report").
type DiagnosticMessage struct {
	Code     DiagnosticCode
	Severity int
	Text     string
	Hint     string
	Location *DiagnosticLocation
}

// ErrorWithRange is the concrete error type every fatal condition in this
// module constructs (spec.md §7's UnsupportedProduction/InvalidAst
// taxonomy), carrying enough to build a DiagnosticMessage without needing
// to re-walk the AST.
type ErrorWithRange struct {
	Code  DiagnosticCode
	Text  string
	Hint  string
	Range Range
}

func (e *ErrorWithRange) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("error %d at %s", e.Code, e.Range.Start)
	}
	return fmt.Sprintf("%s (at %s)", e.Text, e.Range.Start)
}

// ToMessage attaches a resolved DiagnosticLocation to produce the terminal
// message shape.
func (e *ErrorWithRange) ToMessage(location *DiagnosticLocation) DiagnosticMessage {
	return DiagnosticMessage{
		Code:     e.Code,
		Text:     e.Text,
		Hint:     e.Hint,
		Location: location,
	}
}
