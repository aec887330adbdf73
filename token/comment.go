package token

import (
	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// Comment is a JSON5 comment, either single-line ("//...") or multi-line
// ("/*...*/").
//
// Grounded on original_source/src/lexing/tokens/comment.rs's
// SingleLineComment/MultiLineComment.
type Comment struct {
	SpanVal  source.Span
	MultiLine bool
}

func (c Comment) Span() source.Span { return c.SpanVal }
func (c Comment) Kind() Kind { return KindComment }

func PeekComment(s *lex.Stream) bool {
	return s.UpcomingLiteral("//") || s.UpcomingLiteral("/*")
}

func LexComment(s *lex.Stream) lex.Result[Comment] {
	start := s.Index()
	switch {
	case s.UpcomingLiteral("//"):
		return lexSingleLineComment(s, start)
	case s.UpcomingLiteral("/*"):
		return lexMultiLineComment(s, start)
	default:
		return lex.Nothing[Comment]()
	}
}

// lexSingleLineComment consumes "//" through, but not including, the next
// line terminator (or end of input).
func lexSingleLineComment(s *lex.Stream, start int) lex.Result[Comment] {
	s.Take()
	s.Take()
	s.TakeUntil(func(s *lex.Stream) bool {
		r, ok := s.Peek()
		return ok && isLineTerminatorChar(r)
	})
	return lex.Ok(Comment{SpanVal: s.SpanFrom(source.Loc(start)), MultiLine: false})
}

// lexMultiLineComment consumes "/*" through the matching "*/".
//
// Grounded on comment.rs: an unterminated block comment is a grammar
// violation (Errant), not merely "no match" — the opening delimiter has
// already committed the grammar to this production.
func lexMultiLineComment(s *lex.Stream, start int) lex.Result[Comment] {
	s.Take()
	s.Take()
	for {
		if s.UpcomingLiteral("*/") {
			s.Take()
			s.Take()
			return lex.Ok(Comment{SpanVal: s.SpanFrom(source.Loc(start)), MultiLine: true})
		}
		if _, _, ok := s.Take(); !ok {
			return lex.Errant[Comment](lex.NewError(
				s.SpanFrom(source.Loc(start)),
				"Unterminated multi-line comment: expected `*/` before end of input.",
			))
		}
	}
}

func CommentProduction() lex.Production[Comment] {
	return lex.Production[Comment]{Peek: PeekComment, Lex: LexComment}
}
