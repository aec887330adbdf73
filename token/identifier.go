package token

import (
	"fmt"
	"unicode"
	"unicode/utf16"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// Identifier is a JSON5 identifier name: an IdentifierStart followed by
// zero or more IdentifierParts.
//
// Grounded on original_source/src/lexing/tokens/identifier.rs's
// Identifier/IdentifierName.
type Identifier struct {
	SpanVal source.Span
	Start   IdentifierStart
	Parts   []IdentifierPart
}

func (id Identifier) Span() source.Span { return id.SpanVal }
func (id Identifier) Kind() Kind { return KindIdent }

// SV implements [StringValue]: the identifier's name as UTF-16, with any
// \uXXXX escapes resolved to their decoded character.
func (id Identifier) SV() []uint16 {
	out := make([]uint16, 0, 1+len(id.Parts))
	out = append(out, id.Start.CV()...)
	for _, p := range id.Parts {
		out = append(out, p.CV()...)
	}
	return out
}

func PeekIdentifier(s *lex.Stream) bool { return PeekIdentifierStart(s) }

func LexIdentifier(s *lex.Stream) lex.Result[Identifier] {
	start := s.Index()
	startR := LexIdentifierStart(s)
	if !startR.IsLexed() {
		if startR.IsErrant() {
			return lex.Errant[Identifier](startR.Err())
		}
		return lex.Nothing[Identifier]()
	}

	partsR := lex.Many(IdentifierPartProduction()).Lex(s)
	if partsR.IsErrant() {
		return lex.Errant[Identifier](partsR.Err())
	}

	return lex.Ok(Identifier{
		SpanVal: s.SpanFrom(source.Loc(start)),
		Start:   startR.Value(),
		Parts:   partsR.Value(),
	})
}

func IdentifierProduction() lex.Production[Identifier] {
	return lex.Production[Identifier]{Peek: PeekIdentifier, Lex: LexIdentifier}
}

// Unicode category tables, per spec.md §4.9 and ECMAScript 5.1 §7.6.
var (
	unicodeLetterTables = []*unicode.RangeTable{
		unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	}
	unicodeCombiningMarkTables = []*unicode.RangeTable{unicode.Mn, unicode.Mc}
	unicodeDigitTables         = []*unicode.RangeTable{unicode.Nd}
	unicodeConnectorPuncTables = []*unicode.RangeTable{unicode.Pc}
)

func isUnicodeLetter(r rune) bool { return unicode.IsOneOf(unicodeLetterTables, r) }
func isUnicodeCombiningMark(r rune) bool { return unicode.IsOneOf(unicodeCombiningMarkTables, r) }
func isUnicodeDigit(r rune) bool { return unicode.IsOneOf(unicodeDigitTables, r) }
func isUnicodeConnectorPunc(r rune) bool { return unicode.IsOneOf(unicodeConnectorPuncTables, r) }

const (
	zwnj = '\u200C'
	zwj  = '\u200D'
)

// IdentifierStart is the first character of an identifier: a Unicode
// letter, `$`, `_`, or a `\uXXXX` escape that resolves to one of those.
type IdentifierStart interface {
	source.Spanner
	CharacterValue
	isIdentifierStart()
}

// identifierStartAccepts reports whether r is legal as an
// IdentifierStart, per original_source's IdentifierStart::accepts.
func identifierStartAccepts(r rune) bool {
	return isUnicodeLetter(r) || r == '$' || r == '_'
}

func PeekIdentifierStart(s *lex.Stream) bool {
	r, ok := s.Peek()
	if ok && (isUnicodeLetter(r) || r == '$' || r == '_') {
		return true
	}
	return s.UpcomingLiteral("\\")
}

func LexIdentifierStart(s *lex.Stream) lex.Result[IdentifierStart] {
	r, ok := s.Peek()
	if ok {
		switch {
		case isUnicodeLetter(r):
			loc, _, _ := s.Take()
			return lex.Ok[IdentifierStart](identLetter{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
		case r == '$':
			loc, _, _ := s.Take()
			return lex.Ok[IdentifierStart](identDollar{SpanVal: source.SingleChar(s.File(), loc)})
		case r == '_':
			loc, _, _ := s.Take()
			return lex.Ok[IdentifierStart](identUnderscore{SpanVal: source.SingleChar(s.File(), loc)})
		}
	}

	if s.UpcomingLiteral("\\") {
		start := s.Index()
		s.Take()
		escR := LexUnicodeEscapeSequence(s)
		if !escR.IsLexed() {
			if escR.IsErrant() {
				return lex.Errant[IdentifierStart](escR.Err())
			}
			return lex.Errant[IdentifierStart](s.Error(
				"Expected a unicode escape sequence `\\uXXXX` here."))
		}
		esc := escR.Value()
		ch, ok := decodeUTF16CodeUnit(esc.CodeUnit())
		if !ok || !identifierStartAccepts(ch) {
			return lex.Errant[IdentifierStart](lex.NewError(
				s.SpanFrom(source.Loc(start)),
				fmt.Sprintf("Invalid escaped character in identifier: `%c` is not valid here.", ch),
			))
		}
		return lex.Ok[IdentifierStart](identEscape{
			SpanVal: s.SpanFrom(source.Loc(start)),
			Esc:     esc,
		})
	}

	return lex.Nothing[IdentifierStart]()
}

func IdentifierStartProduction() lex.Production[IdentifierStart] {
	return lex.Production[IdentifierStart]{Peek: PeekIdentifierStart, Lex: LexIdentifierStart}
}

// decodeUTF16CodeUnit decodes a single UTF-16 code unit into a rune. It
// fails (ok=false) for lone surrogate halves, which cannot denote a valid
// identifier character on their own.
func decodeUTF16CodeUnit(u uint16) (rune, bool) {
	decoded := utf16.Decode([]uint16{u})
	if len(decoded) != 1 {
		return 0, false
	}
	if decoded[0] == '\uFFFD' && u != 0xFFFD {
		return 0, false
	}
	return decoded[0], true
}

type identLetter struct {
	SpanVal source.Span
	Raw     rune
}

func (id identLetter) Span() source.Span { return id.SpanVal }
func (id identLetter) CV() []uint16 { return utf16.Encode([]rune{id.Raw}) }
func (id identLetter) isIdentifierStart() {}
func (id identLetter) isIdentifierPart() {}

type identDollar struct{ SpanVal source.Span }

func (id identDollar) Span() source.Span { return id.SpanVal }
func (id identDollar) CV() []uint16 { return utf16.Encode([]rune{'$'}) }
func (id identDollar) isIdentifierStart() {}
func (id identDollar) isIdentifierPart() {}

type identUnderscore struct{ SpanVal source.Span }

func (id identUnderscore) Span() source.Span { return id.SpanVal }
func (id identUnderscore) CV() []uint16 { return utf16.Encode([]rune{'_'}) }
func (id identUnderscore) isIdentifierStart() {}
func (id identUnderscore) isIdentifierPart() {}

// identEscape is a `\uXXXX` escape used in IdentifierStart or
// IdentifierPart position, already verified legal at that position.
type identEscape struct {
	SpanVal source.Span
	Esc     UnicodeEscapeSequence
}

func (id identEscape) Span() source.Span { return id.SpanVal }
func (id identEscape) CV() []uint16 { return id.Esc.CV() }
func (id identEscape) isIdentifierStart() {}
func (id identEscape) isIdentifierPart() {}

// IdentifierPart is any character after the first in an identifier: an
// IdentifierStart character, a combining mark, a digit, connector
// punctuation, ZWNJ, or ZWJ.
type IdentifierPart interface {
	source.Spanner
	CharacterValue
	isIdentifierPart()
}

func identifierPartAccepts(r rune) bool {
	return identifierStartAccepts(r) || isUnicodeCombiningMark(r) ||
		isUnicodeDigit(r) || isUnicodeConnectorPunc(r) || r == zwnj || r == zwj
}

func PeekIdentifierPart(s *lex.Stream) bool {
	r, ok := s.Peek()
	if ok && identifierPartAccepts(r) {
		return true
	}
	return s.UpcomingLiteral("\\")
}

func LexIdentifierPart(s *lex.Stream) lex.Result[IdentifierPart] {
	// The escape alternative is tried first (matching the original's
	// ordering), since peek for a bare "\\" must not also satisfy any of
	// the plain-character alternatives below.
	if s.UpcomingLiteral("\\") {
		start := s.Index()
		s.Take()
		escR := LexUnicodeEscapeSequence(s)
		if !escR.IsLexed() {
			if escR.IsErrant() {
				return lex.Errant[IdentifierPart](escR.Err())
			}
			return lex.Errant[IdentifierPart](s.Error(
				"Expected a unicode escape sequence `\\uXXXX` here."))
		}
		esc := escR.Value()
		ch, ok := decodeUTF16CodeUnit(esc.CodeUnit())
		if !ok || !identifierPartAccepts(ch) {
			return lex.Errant[IdentifierPart](lex.NewError(
				s.SpanFrom(source.Loc(start)),
				fmt.Sprintf("Invalid escaped character in identifier: `%c` is not valid here.", ch),
			))
		}
		return lex.Ok[IdentifierPart](identEscape{
			SpanVal: s.SpanFrom(source.Loc(start)),
			Esc:     esc,
		})
	}

	r, ok := s.Peek()
	if !ok {
		return lex.Nothing[IdentifierPart]()
	}

	switch {
	case isUnicodeLetter(r):
		loc, _, _ := s.Take()
		return lex.Ok[IdentifierPart](identLetter{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
	case r == '$':
		loc, _, _ := s.Take()
		return lex.Ok[IdentifierPart](identDollar{SpanVal: source.SingleChar(s.File(), loc)})
	case r == '_':
		loc, _, _ := s.Take()
		return lex.Ok[IdentifierPart](identUnderscore{SpanVal: source.SingleChar(s.File(), loc)})
	case isUnicodeCombiningMark(r):
		loc, _, _ := s.Take()
		return lex.Ok[IdentifierPart](identCombiningMark{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
	case isUnicodeDigit(r):
		loc, _, _ := s.Take()
		return lex.Ok[IdentifierPart](identDigit{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
	case isUnicodeConnectorPunc(r):
		loc, _, _ := s.Take()
		return lex.Ok[IdentifierPart](identConnectorPunc{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
	case r == zwnj || r == zwj:
		loc, _, _ := s.Take()
		return lex.Ok[IdentifierPart](identZW{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
	default:
		return lex.Nothing[IdentifierPart]()
	}
}

func IdentifierPartProduction() lex.Production[IdentifierPart] {
	return lex.Production[IdentifierPart]{Peek: PeekIdentifierPart, Lex: LexIdentifierPart}
}

type identCombiningMark struct {
	SpanVal source.Span
	Raw     rune
}

func (id identCombiningMark) Span() source.Span { return id.SpanVal }
func (id identCombiningMark) CV() []uint16 { return utf16.Encode([]rune{id.Raw}) }
func (id identCombiningMark) isIdentifierPart() {}

type identDigit struct {
	SpanVal source.Span
	Raw     rune
}

func (id identDigit) Span() source.Span { return id.SpanVal }
func (id identDigit) CV() []uint16 { return utf16.Encode([]rune{id.Raw}) }
func (id identDigit) isIdentifierPart() {}

type identConnectorPunc struct {
	SpanVal source.Span
	Raw     rune
}

func (id identConnectorPunc) Span() source.Span { return id.SpanVal }
func (id identConnectorPunc) CV() []uint16 { return utf16.Encode([]rune{id.Raw}) }
func (id identConnectorPunc) isIdentifierPart() {}

type identZW struct {
	SpanVal source.Span
	Raw     rune
}

func (id identZW) Span() source.Span { return id.SpanVal }
func (id identZW) CV() []uint16 { return utf16.Encode([]rune{id.Raw}) }
func (id identZW) isIdentifierPart() {}
