// Package token implements the JSON5 token grammar over package lex's
// peek/lex contract: whitespace, line terminators, comments, punctuators,
// escape sequences, strings, numbers, and identifiers.
package token

import (
	"fmt"

	"github.com/avdan-os/json5/source"
)

// Kind coarsely classifies an [Element] produced by [Dispatch]. It is not
// named explicitly in spec.md, but is implied by §4.10 ("downstream
// consumers retain the non-trivial ones"); it mirrors
// bufbuild-protocompile/experimental/token.Kind's role (see SPEC_FULL.md,
// supplemented feature 3).
type Kind byte

const (
	KindWhitespace Kind = iota
	KindLineTerminator
	KindComment
	KindIdent
	KindString
	KindNumber
	KindPunct
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindWhitespace:
		return "Whitespace"
	case KindLineTerminator:
		return "LineTerminator"
	case KindComment:
		return "Comment"
	case KindIdent:
		return "Ident"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindPunct:
		return "Punct"
	default:
		return fmt.Sprintf("token.Kind(%d)", byte(k))
	}
}

// IsSkippable reports whether this is trivia a syntax driver should skip
// over rather than hand to its grammar.
func (k Kind) IsSkippable() bool {
	return k == KindWhitespace || k == KindLineTerminator || k == KindComment
}

// Element is any token-grammar production produced by [Dispatch]: it
// carries its source span and a coarse [Kind].
type Element interface {
	source.Spanner
	Kind() Kind
}
