package token

import (
	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// LineTerminator is a single JSON5 line-terminator character: LF, CR, LS,
// or PS.
//
// Grounded on original_source/src/lexing/tokens/line_terminator.rs's
// LineTerminator.
type LineTerminator struct {
	SpanVal source.Span
	Raw     rune
}

func (l LineTerminator) Span() source.Span { return l.SpanVal }
func (l LineTerminator) Kind() Kind { return KindLineTerminator }

func isLineTerminatorChar(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

func PeekLineTerminator(s *lex.Stream) bool {
	return s.UpcomingFunc(isLineTerminatorChar)
}

func LexLineTerminator(s *lex.Stream) lex.Result[LineTerminator] {
	r, ok := s.Peek()
	if !ok || !isLineTerminatorChar(r) {
		return lex.Nothing[LineTerminator]()
	}
	loc, _, _ := s.Take()
	return lex.Ok(LineTerminator{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
}

func LineTerminatorProduction() lex.Production[LineTerminator] {
	return lex.Production[LineTerminator]{Peek: PeekLineTerminator, Lex: LexLineTerminator}
}

// LineTerminatorSequence is a JSON5 line break as it appears in source:
// CRLF counts as a single sequence, never as two separate terminators.
//
// Grounded on line_terminator.rs's LineTerminatorSequence, whose peek/lex
// must try the two-character CRLF alternative before the single-character
// one, per spec.md §4.3's "CRLF-first ordering" note.
type LineTerminatorSequence struct {
	SpanVal source.Span
}

func (l LineTerminatorSequence) Span() source.Span { return l.SpanVal }
func (l LineTerminatorSequence) Kind() Kind { return KindLineTerminator }

func PeekLineTerminatorSequence(s *lex.Stream) bool {
	return PeekLineTerminator(s)
}

func LexLineTerminatorSequence(s *lex.Stream) lex.Result[LineTerminatorSequence] {
	start := s.Index()

	if s.UpcomingLiteral("\r\n") {
		s.Take()
		s.Take()
		return lex.Ok(LineTerminatorSequence{SpanVal: s.SpanFrom(source.Loc(start))})
	}

	r := LexLineTerminator(s)
	if !r.IsLexed() {
		return lex.Nothing[LineTerminatorSequence]()
	}
	return lex.Ok(LineTerminatorSequence{SpanVal: s.SpanFrom(source.Loc(start))})
}

func LineTerminatorSequenceProduction() lex.Production[LineTerminatorSequence] {
	return lex.Production[LineTerminatorSequence]{
		Peek: PeekLineTerminatorSequence,
		Lex:  LexLineTerminatorSequence,
	}
}
