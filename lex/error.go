package lex

import (
	"fmt"

	"github.com/avdan-os/json5/source"
)

// Error is a lexical-grammar violation: data, never a panic.
//
// Grounded on original_source/src/lexing/utils/result.rs's LexError.
type Error struct {
	Span    source.Span
	Message string
}

// NewError builds an Error at span.
func NewError(span source.Span, message string) *Error {
	return &Error{Span: span, Message: message}
}

// Error implements the standard error interface, so an *Error composes
// with errors.Is/errors.As and fmt.Errorf("%w", ...) at package
// boundaries.
func (e *Error) Error() string {
	return fmt.Sprintf("Error at %s: %s", e.Span, e.Message)
}

// Snippet returns the offending source text, when the span is in bounds.
func (e *Error) Snippet() string {
	if e.Span.File == nil {
		return ""
	}
	text, _ := e.Span.File.SourceAt(e.Span)
	return text
}
