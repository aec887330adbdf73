package lex

import "github.com/avdan-os/json5/source"

// Production is the reified form of spec.md's "lex contract": a pair of
// pure peek/lex functions for some token type T.
//
// Go has no trait objects parameterized by an associated Self type, so
// where the original (original_source/src/lexing/utils/mod.rs's LexT/Lex
// traits) has every lexable type implement `peek`/`lex` as trait methods,
// here every lexable type is represented (or built, for combinators) as a
// Production[T] value. A concrete token type, e.g. token.Whitespace,
// exposes package-level PeekWhitespace/LexWhitespace functions and a
// WhitespaceProduction() Production[Whitespace] value built from them; the
// combinators in this package operate purely on Production[T] values so they
// compose with hand-written token productions exactly the same way they
// compose with each other.
type Production[T any] struct {
	// Peek is a pure predicate over the stream: it MUST NOT mutate s.
	Peek func(s *Stream) bool

	// Lex attempts to consume a T. If Peek(s) would be false, Lex MUST
	// return Nothing without advancing s.
	Lex func(s *Stream) Result[T]
}

// RawChar is a single consumed character together with the span it came
// from; it is the element type of single-character combinators like
// [CharPattern] and [Category].
type RawChar struct {
	SpanVal source.Span
	Raw     rune
}

// Span implements [source.Spanner].
func (c RawChar) Span() source.Span { return c.SpanVal }

// SpanOf computes the combined span of items, per spec.md §4.2: "each
// combinator also carries a span equal to the combined span of its
// elements (empty span if the element list is empty)". empty is returned
// when items has no elements.
func SpanOf[T source.Spanner](empty source.Span, items []T) source.Span {
	if len(items) == 0 {
		return empty
	}
	spans := make([]source.Span, len(items))
	for i, it := range items {
		spans[i] = it.Span()
	}
	return source.Combine(spans)
}
