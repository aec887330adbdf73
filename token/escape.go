package token

import (
	"unicode/utf16"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// EscapeSequence is any valid JSON5 escape sequence: a character escape
// (`\n`, `\y`), the null escape (`\0`), a hex escape (`\x1A`), or a
// Unicode escape (a backslash, `u`, and four hex digits, such as `0A1B`).
//
// Octal escapes are a non-goal (optional Annex B syntax).
//
// Grounded on original_source/src/lexing/tokens/escapes.rs's
// EscapeSequence. The Rust original nests SingleEscapeChar/NonEscapeChar
// inside an intermediate CharacterEscapeSequence enum purely so that enum
// can itself be a LexT variant; Go interfaces don't need that
// indirection; here SingleEscapeChar and NonEscapeChar implement
// EscapeSequence directly.
type EscapeSequence interface {
	source.Spanner
	CharacterValue
}

func PeekEscapeSequence(s *lex.Stream) bool {
	return PeekSingleEscapeChar(s) || PeekNonEscapeChar(s) ||
		PeekNull(s) || PeekHexEscapeSequence(s) || PeekUnicodeEscapeSequence(s)
}

// LexEscapeSequence expects the input to be positioned just after the
// backslash of an escape sequence.
func LexEscapeSequence(s *lex.Stream) lex.Result[EscapeSequence] {
	if r := LexSingleEscapeChar(s); r.IsLexed() {
		return lex.Ok[EscapeSequence](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[EscapeSequence](r.Err())
	}
	if r := LexNonEscapeChar(s); r.IsLexed() {
		return lex.Ok[EscapeSequence](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[EscapeSequence](r.Err())
	}
	if r := LexNull(s); r.IsLexed() {
		return lex.Ok[EscapeSequence](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[EscapeSequence](r.Err())
	}
	if r := LexHexEscapeSequence(s); r.IsLexed() {
		return lex.Ok[EscapeSequence](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[EscapeSequence](r.Err())
	}
	if r := LexUnicodeEscapeSequence(s); r.IsLexed() {
		return lex.Ok[EscapeSequence](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[EscapeSequence](r.Err())
	}
	return lex.Nothing[EscapeSequence]()
}

func EscapeSequenceProduction() lex.Production[EscapeSequence] {
	return lex.Production[EscapeSequence]{Peek: PeekEscapeSequence, Lex: LexEscapeSequence}
}

// SingleEscapeChar is one of the nine named single-character escapes:
// \' \" \\ \b \f \n \r \t \v.
type SingleEscapeChar struct {
	SpanVal source.Span
	Raw     rune
}

func (e SingleEscapeChar) Span() source.Span { return e.SpanVal }

// CV implements [CharacterValue], per Table 4 of the ECMAScript 5.1 spec.
func (e SingleEscapeChar) CV() []uint16 {
	var v rune
	switch e.Raw {
	case '\'':
		v = '\''
	case '"':
		v = '"'
	case '\\':
		v = '\\'
	case 'b':
		v = '\b'
	case 'f':
		v = '\f'
	case 'n':
		v = '\n'
	case 'r':
		v = '\r'
	case 't':
		v = '\t'
	case 'v':
		v = '\v'
	}
	return utf16.Encode([]rune{v})
}

func isSingleEscapeChar(r rune) bool {
	switch r {
	case '\'', '"', '\\', 'b', 'f', 'n', 'r', 't', 'v':
		return true
	}
	return false
}

func PeekSingleEscapeChar(s *lex.Stream) bool {
	return s.UpcomingFunc(isSingleEscapeChar)
}

func LexSingleEscapeChar(s *lex.Stream) lex.Result[SingleEscapeChar] {
	r, ok := s.Peek()
	if !ok || !isSingleEscapeChar(r) {
		return lex.Nothing[SingleEscapeChar]()
	}
	loc, _, _ := s.Take()
	return lex.Ok(SingleEscapeChar{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
}

// NonEscapeChar is any source character after a backslash that is not a
// line terminator and not one of the other escape-sequence lead
// characters ('0'-'9', 'x', 'u', or a single-escape char): it stands for
// itself.
type NonEscapeChar struct {
	SpanVal source.Span
	Raw     rune
}

func (e NonEscapeChar) Span() source.Span { return e.SpanVal }
func (e NonEscapeChar) CV() []uint16 { return utf16.Encode([]rune{e.Raw}) }

func isEscapeLeadChar(r rune) bool {
	return isSingleEscapeChar(r) || (r >= '0' && r <= '9') || r == 'x' || r == 'u'
}

func isNonEscapeChar(r rune) bool {
	return !isLineTerminatorChar(r) && !isEscapeLeadChar(r)
}

func PeekNonEscapeChar(s *lex.Stream) bool {
	return s.UpcomingFunc(isNonEscapeChar)
}

func LexNonEscapeChar(s *lex.Stream) lex.Result[NonEscapeChar] {
	r, ok := s.Peek()
	if !ok || !isNonEscapeChar(r) {
		return lex.Nothing[NonEscapeChar]()
	}
	loc, _, _ := s.Take()
	return lex.Ok(NonEscapeChar{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
}

// Null is the `\0` escape: NUL, provided it is not followed by another
// decimal digit (which would make it an octal escape, a non-goal).
type Null struct {
	SpanVal source.Span
}

func (e Null) Span() source.Span { return e.SpanVal }
func (e Null) CV() []uint16 { return utf16.Encode([]rune{0}) }

func PeekNull(s *lex.Stream) bool {
	r, ok := s.Peek()
	if !ok || r != '0' {
		return false
	}
	next, hasNext := s.PeekN(1)
	return !(hasNext && isDecimalDigitChar(next))
}

func LexNull(s *lex.Stream) lex.Result[Null] {
	if !PeekNull(s) {
		return lex.Nothing[Null]()
	}
	loc, _, _ := s.Take()
	return lex.Ok(Null{SpanVal: source.SingleChar(s.File(), loc)})
}

// HexEscapeSequence is a `\x` escape followed by exactly two hex digits.
type HexEscapeSequence struct {
	SpanVal source.Span
	Digits  []HexDigit
}

func (e HexEscapeSequence) Span() source.Span { return e.SpanVal }
func (e HexEscapeSequence) CV() []uint16 { return []uint16{uint16(HexDigitsMV(e.Digits))} }

func PeekHexEscapeSequence(s *lex.Stream) bool { return s.UpcomingLiteral("x") }

func LexHexEscapeSequence(s *lex.Stream) lex.Result[HexEscapeSequence] {
	if !s.UpcomingLiteral("x") {
		return lex.Nothing[HexEscapeSequence]()
	}
	start := s.Index()
	s.Take()
	r := lex.Exactly(2, HexDigitProduction()).Lex(s)
	if !r.IsLexed() {
		if r.IsErrant() {
			return lex.Errant[HexEscapeSequence](r.Err())
		}
		return lex.Errant[HexEscapeSequence](s.Error("Expected 2 hex digits after `\\x`."))
	}
	return lex.Ok(HexEscapeSequence{SpanVal: s.SpanFrom(source.Loc(start)), Digits: r.Value()})
}

func HexEscapeSequenceProduction() lex.Production[HexEscapeSequence] {
	return lex.Production[HexEscapeSequence]{Peek: PeekHexEscapeSequence, Lex: LexHexEscapeSequence}
}

// UnicodeEscapeSequence is a `\u` escape followed by exactly four hex
// digits.
type UnicodeEscapeSequence struct {
	SpanVal source.Span
	Digits  []HexDigit
}

func (e UnicodeEscapeSequence) Span() source.Span { return e.SpanVal }
func (e UnicodeEscapeSequence) CV() []uint16 { return []uint16{uint16(HexDigitsMV(e.Digits))} }

// CodeUnit returns the raw UTF-16 code unit this escape denotes, without
// the CV interface's []uint16 allocation; used by the identifier-escape
// legality check, which needs the raw code unit value, not its CV.
func (e UnicodeEscapeSequence) CodeUnit() uint16 { return uint16(HexDigitsMV(e.Digits)) }

func PeekUnicodeEscapeSequence(s *lex.Stream) bool { return s.UpcomingLiteral("u") }

func LexUnicodeEscapeSequence(s *lex.Stream) lex.Result[UnicodeEscapeSequence] {
	if !s.UpcomingLiteral("u") {
		return lex.Nothing[UnicodeEscapeSequence]()
	}
	start := s.Index()
	s.Take()
	r := lex.Exactly(4, HexDigitProduction()).Lex(s)
	if !r.IsLexed() {
		if r.IsErrant() {
			return lex.Errant[UnicodeEscapeSequence](r.Err())
		}
		return lex.Errant[UnicodeEscapeSequence](s.Error("Expected 4 hex digits after `\\u`."))
	}
	return lex.Ok(UnicodeEscapeSequence{SpanVal: s.SpanFrom(source.Loc(start)), Digits: r.Value()})
}

func UnicodeEscapeSequenceProduction() lex.Production[UnicodeEscapeSequence] {
	return lex.Production[UnicodeEscapeSequence]{
		Peek: PeekUnicodeEscapeSequence,
		Lex:  LexUnicodeEscapeSequence,
	}
}
