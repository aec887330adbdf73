package lex

import (
	"unicode"

	"github.com/avdan-os/json5/source"
)

// CharRange is a half-open range of characters [Start, End), usable as a
// plain runtime value.
//
// Grounded on original_source/src/lexing/utils/stream.rs's
// CharacterRange, which exists there specifically because Rust's
// `v!('0'..='9')` macro needs a const-friendly value; per spec.md §9
// ("static verbatim literals... where not supported as a type parameter,
// use a runtime field"), CharRange plays the same role here as an ordinary
// value rather than a type parameter.
type CharRange struct {
	Start, End rune
}

// Verbatim matches the exact character sequence lit.
//
// Grounded on original_source/src/lexing/utils/verbatim.rs's
// Verbatim<const A: &'static str>.
func Verbatim(lit string) Production[source.Span] {
	chars := []rune(lit)
	return Production[source.Span]{
		Peek: func(s *Stream) bool { return s.UpcomingLiteral(lit) },
		Lex: func(s *Stream) Result[source.Span] {
			if !s.UpcomingLiteral(lit) {
				return Nothing[source.Span]()
			}
			start := s.Index()
			for range chars {
				s.Take()
			}
			return Ok(s.SpanFrom(source.Loc(start)))
		},
	}
}

// CharPattern matches a single character within cr.
//
// Grounded on verbatim.rs's CharPattern<const R: CharacterRange>.
func CharPattern(cr CharRange) Production[RawChar] {
	return Production[RawChar]{
		Peek: func(s *Stream) bool { return s.UpcomingRange(cr) },
		Lex: func(s *Stream) Result[RawChar] {
			if !s.UpcomingRange(cr) {
				return Nothing[RawChar]()
			}
			loc, r, _ := s.Take()
			return Ok(RawChar{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
		},
	}
}

// Category matches a single character whose Unicode general category is
// one of tables (e.g. unicode.Lu, unicode.Pc). The classification source
// is the stdlib unicode package's Unicode Character Database tables.
//
// Grounded on the category-matcher parameterization described in spec.md
// §4.2 and exercised throughout original_source/src/lexing/tokens/identifier.rs
// (UnicodeLetter, UnicodeCombiningMark, UnicodeDigit,
// UnicodeConnectorPunctuation).
func Category(tables ...*unicode.RangeTable) Production[RawChar] {
	in := func(r rune) bool { return unicode.IsOneOf(tables, r) }
	return Production[RawChar]{
		Peek: func(s *Stream) bool { return s.UpcomingFunc(in) },
		Lex: func(s *Stream) Result[RawChar] {
			if !s.UpcomingFunc(in) {
				return Nothing[RawChar]()
			}
			loc, r, _ := s.Take()
			return Ok(RawChar{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
		},
	}
}
