// Package handler accumulates diagnostics produced while generating a
// layout tree, and turns them into positioned, renderer-agnostic messages.
//
// Adapted from the teacher's internal/handler/handler.go: the sourcemap-
// backed line/column recovery and the syscall/js "JSError" bridge are
// dropped (this core grows no WASM host boundary, see DESIGN.md's dropped-
// dependency table); line/column recovery instead reads straight off
// loc.Loc, which this module's AST already carries in full (see
// internal/loc's doc comment on why Loc is a {line, column, offset} triple
// rather than a bare offset).
package handler

import (
	"errors"

	"github.com/flowprint/layoutgen/internal/loc"
)

// Handler collects errors, warnings, infos, and hints raised while
// generating a single program's layout tree.
type Handler struct {
	filename string
	errors   []error
	warnings []error
	infos    []error
	hints    []error
}

// New creates a Handler for the named source file ("" and "<stdin>" are
// both acceptable, matching the teacher's convention).
func New(filename string) *Handler {
	return &Handler{filename: filename}
}

func (h *Handler) HasErrors() bool {
	return len(h.errors) > 0
}

func (h *Handler) AppendError(err error) {
	h.errors = append(h.errors, err)
}

func (h *Handler) AppendWarning(err error) {
	h.warnings = append(h.warnings, err)
}

func (h *Handler) AppendInfo(err error) {
	h.infos = append(h.infos, err)
}

func (h *Handler) AppendHint(err error) {
	h.hints = append(h.hints, err)
}

func (h *Handler) Errors() []loc.DiagnosticMessage {
	return collect(h, h.errors, loc.ErrorType)
}

func (h *Handler) Warnings() []loc.DiagnosticMessage {
	return collect(h, h.warnings, loc.WarningType)
}

// Diagnostics returns every accumulated message, errors first, in the
// order the teacher's Handler.Diagnostics reports them.
func (h *Handler) Diagnostics() []loc.DiagnosticMessage {
	msgs := collect(h, h.errors, loc.ErrorType)
	msgs = append(msgs, collect(h, h.warnings, loc.WarningType)...)
	msgs = append(msgs, collect(h, h.infos, loc.InformationType)...)
	msgs = append(msgs, collect(h, h.hints, loc.HintType)...)
	return msgs
}

func collect(h *Handler, errs []error, severity loc.DiagnosticSeverity) []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, severity, err))
		}
	}
	return msgs
}

// ErrorToMessage resolves an error into a DiagnosticMessage, attaching a
// file-relative position when the error is a *loc.ErrorWithRange.
func ErrorToMessage(h *Handler, severity loc.DiagnosticSeverity, err error) loc.DiagnosticMessage {
	var rangedError *loc.ErrorWithRange
	switch {
	case errors.As(err, &rangedError):
		start := rangedError.Range.Start
		location := &loc.DiagnosticLocation{
			File:   h.filename,
			Line:   start.Line,
			Column: start.Column + 1,
			Length: rangedError.Range.Len(),
		}
		message := rangedError.ToMessage(location)
		message.Severity = int(severity)
		return message
	default:
		return loc.DiagnosticMessage{Text: err.Error(), Severity: int(severity)}
	}
}
