package token

import (
	"fmt"
	"unicode/utf16"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// LString is a JSON5 string literal, single- or double-quoted.
//
// Grounded on original_source/src/lexing/tokens/string.rs's LString. The
// Rust original parameterizes StringPart/StringChar over the delimiter as
// a const generic (`StringPart<"\"">` vs `StringPart<"'">`) so the two
// quote styles share one implementation; here the delimiter is an
// ordinary rune value threaded through the peek/lex closures, per spec.md
// §9's guidance for languages without const generics.
type LString struct {
	SpanVal source.Span
	Delim   rune
	Parts   []StringPart
}

func (s LString) Span() source.Span { return s.SpanVal }
func (s LString) Kind() Kind { return KindString }

// SV implements [StringValue] by concatenating each part's CV.
func (s LString) SV() []uint16 {
	out := make([]uint16, 0, len(s.Parts)*5/4)
	for _, p := range s.Parts {
		out = append(out, p.CV()...)
	}
	return out
}

func PeekLString(s *lex.Stream) bool {
	return s.UpcomingLiteral(`"`) || s.UpcomingLiteral(`'`)
}

func LexLString(s *lex.Stream) lex.Result[LString] {
	start := s.Index()

	var delim rune
	switch {
	case s.UpcomingLiteral(`"`):
		delim = '"'
	case s.UpcomingLiteral(`'`):
		delim = '\''
	default:
		return lex.Nothing[LString]()
	}
	s.Take()

	partsResult := lex.Many(StringPartProduction(delim)).Lex(s)
	if partsResult.IsErrant() {
		return lex.Errant[LString](partsResult.Err())
	}
	parts := partsResult.Value()

	if !s.UpcomingLiteral(string(delim)) {
		return lex.Errant[LString](s.Error(fmt.Sprintf("Expected closing `%c`.", delim)))
	}
	s.Take()

	return lex.Ok(LString{SpanVal: s.SpanFrom(source.Loc(start)), Delim: delim, Parts: parts})
}

func LStringProduction() lex.Production[LString] {
	return lex.Production[LString]{Peek: PeekLString, Lex: LexLString}
}

// StringPart is one constituent of a string literal's body: a plain
// character, an escape sequence, a line continuation (erased from the
// string value), or a raw line/paragraph separator.
type StringPart interface {
	source.Spanner
	CharacterValue
}

func PeekStringPart(delim rune) func(*lex.Stream) bool {
	return func(s *lex.Stream) bool {
		return s.UpcomingLiteral("\u2028") || s.UpcomingLiteral("\u2029") ||
			peekStringChar(delim)(s) || s.UpcomingLiteral("\\")
	}
}

func LexStringPart(delim rune) func(*lex.Stream) lex.Result[StringPart] {
	return func(s *lex.Stream) lex.Result[StringPart] {
		if s.UpcomingLiteral("\u2028") {
			loc, r, _ := s.Take()
			return lex.Ok[StringPart](lineSeparatorPart{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
		}
		if s.UpcomingLiteral("\u2029") {
			loc, r, _ := s.Take()
			return lex.Ok[StringPart](lineSeparatorPart{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
		}
		if r := lexStringChar(delim)(s); r.IsLexed() {
			return lex.Ok[StringPart](r.Value())
		}
		if s.UpcomingLiteral("\\") {
			start := s.Index()
			s.Take()

			if esc := LexEscapeSequence(s); esc.IsLexed() {
				return lex.Ok[StringPart](stringEscapePart{
					SpanVal: s.SpanFrom(source.Loc(start)),
					Esc:     esc.Value(),
				})
			} else if esc.IsErrant() {
				return lex.Errant[StringPart](esc.Err())
			}

			if lt := LexLineTerminatorSequence(s); lt.IsLexed() {
				return lex.Ok[StringPart](lineContinuationPart{
					SpanVal: s.SpanFrom(source.Loc(start)),
				})
			}

			return lex.Errant[StringPart](s.Error(
				"Expected either an escape code here, or a newline; got neither."))
		}
		return lex.Nothing[StringPart]()
	}
}

func StringPartProduction(delim rune) lex.Production[StringPart] {
	return lex.Production[StringPart]{Peek: PeekStringPart(delim), Lex: LexStringPart(delim)}
}

// StringChar is a single non-escaped, non-delimiter, non-line-terminator
// character appearing verbatim inside a string literal.
type StringChar struct {
	SpanVal source.Span
	Raw     rune
}

func (c StringChar) Span() source.Span { return c.SpanVal }
func (c StringChar) CV() []uint16 { return utf16.Encode([]rune{c.Raw}) }

func peekStringChar(delim rune) func(*lex.Stream) bool {
	return func(s *lex.Stream) bool {
		r, ok := s.Peek()
		return ok && r != delim && !isLineTerminatorChar(r) && r != '\\'
	}
}

func lexStringChar(delim rune) func(*lex.Stream) lex.Result[StringChar] {
	return func(s *lex.Stream) lex.Result[StringChar] {
		if !peekStringChar(delim)(s) {
			return lex.Nothing[StringChar]()
		}
		loc, r, _ := s.Take()
		return lex.Ok(StringChar{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
	}
}

// stringEscapePart wraps an [EscapeSequence] found after a backslash
// inside a string literal.
type stringEscapePart struct {
	SpanVal source.Span
	Esc     EscapeSequence
}

func (p stringEscapePart) Span() source.Span { return p.SpanVal }
func (p stringEscapePart) CV() []uint16 { return p.Esc.CV() }

// lineContinuationPart is a backslash directly followed by a line
// terminator sequence: it contributes nothing to the string's value.
type lineContinuationPart struct {
	SpanVal source.Span
}

func (p lineContinuationPart) Span() source.Span { return p.SpanVal }
func (p lineContinuationPart) CV() []uint16 { return nil }

// lineSeparatorPart is a raw U+2028 or U+2029 appearing unescaped inside
// a string literal; unlike CR/LF, JSON5 permits these directly so that
// minifiers need not rewrite string contents.
type lineSeparatorPart struct {
	SpanVal source.Span
	Raw     rune
}

func (p lineSeparatorPart) Span() source.Span { return p.SpanVal }
func (p lineSeparatorPart) CV() []uint16 { return utf16.Encode([]rune{p.Raw}) }
