package token

import (
	"unicode"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// Whitespace is a maximal run of JSON5 whitespace characters.
//
// Grounded on original_source/src/lexing/tokens/whitespace.rs.
type Whitespace struct {
	SpanVal source.Span
}

func (w Whitespace) Span() source.Span { return w.SpanVal }
func (w Whitespace) Kind() Kind { return KindWhitespace }

// isWhitespaceChar matches JSON5's WhiteSpace production: TAB, VT, FF,
// SP, NBSP, BOM, and any other Unicode category Zs character.
func isWhitespaceChar(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', '\u00A0', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func PeekWhitespace(s *lex.Stream) bool {
	return s.UpcomingFunc(isWhitespaceChar)
}

func LexWhitespace(s *lex.Stream) lex.Result[Whitespace] {
	span, _, ok := s.TakeWhile(isWhitespaceChar)
	if !ok {
		return lex.Nothing[Whitespace]()
	}
	return lex.Ok(Whitespace{SpanVal: span})
}

// WhitespaceProduction adapts (PeekWhitespace, LexWhitespace) into a
// [lex.Production], so Whitespace composes with the generic combinators
// exactly like any other token.
func WhitespaceProduction() lex.Production[Whitespace] {
	return lex.Production[Whitespace]{Peek: PeekWhitespace, Lex: LexWhitespace}
}
