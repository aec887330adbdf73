package token

import (
	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// HexDigit is a single hexadecimal digit, 0-9 or a-f or A-F.
//
// Grounded on original_source/src/lexing/tokens/number.rs's HexDigit.
type HexDigit struct {
	SpanVal source.Span
	Raw     rune
}

func (h HexDigit) Span() source.Span { return h.SpanVal }
func (h HexDigit) MV() float64 { return float64(hexDigitValue(h.Raw)) }

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return 0
	}
}

func isHexDigitChar(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func PeekHexDigit(s *lex.Stream) bool { return s.UpcomingFunc(isHexDigitChar) }

func LexHexDigit(s *lex.Stream) lex.Result[HexDigit] {
	r, ok := s.Peek()
	if !ok || !isHexDigitChar(r) {
		return lex.Nothing[HexDigit]()
	}
	loc, _, _ := s.Take()
	return lex.Ok(HexDigit{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
}

func HexDigitProduction() lex.Production[HexDigit] {
	return lex.Production[HexDigit]{Peek: PeekHexDigit, Lex: LexHexDigit}
}

// HexDigitsMV folds a sequence of hex digits (most significant first) into
// their combined mathematical value. Defined as a free function, not a
// method on []HexDigit, per the same reasoning as [lex.MapResult]: Go's
// quantifier combinators ([lex.Exactly], [lex.AtLeast]) return plain
// slices, which cannot carry methods.
func HexDigitsMV(digits []HexDigit) float64 {
	v := 0.0
	for _, d := range digits {
		v = v*16 + d.MV()
	}
	return v
}

// DecimalDigit is a single decimal digit, 0-9.
//
// Grounded on number.rs's DecimalDigit.
type DecimalDigit struct {
	SpanVal source.Span
	Raw     rune
}

func (d DecimalDigit) Span() source.Span { return d.SpanVal }
func (d DecimalDigit) MV() float64 { return float64(d.Raw - '0') }

func isDecimalDigitChar(r rune) bool { return r >= '0' && r <= '9' }

func PeekDecimalDigit(s *lex.Stream) bool { return s.UpcomingFunc(isDecimalDigitChar) }

func LexDecimalDigit(s *lex.Stream) lex.Result[DecimalDigit] {
	r, ok := s.Peek()
	if !ok || !isDecimalDigitChar(r) {
		return lex.Nothing[DecimalDigit]()
	}
	loc, _, _ := s.Take()
	return lex.Ok(DecimalDigit{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
}

func DecimalDigitProduction() lex.Production[DecimalDigit] {
	return lex.Production[DecimalDigit]{Peek: PeekDecimalDigit, Lex: LexDecimalDigit}
}

// DecimalDigitsMV folds a sequence of decimal digits (most significant
// first) into their combined mathematical value.
func DecimalDigitsMV(digits []DecimalDigit) float64 {
	v := 0.0
	for _, d := range digits {
		v = v*10 + d.MV()
	}
	return v
}

// NonZeroDigit is a decimal digit excluding zero, 1-9.
//
// Grounded on number.rs's NonZeroDigit, used by DecimalIntegerLiteral to
// reject leading zeroes in multi-digit integers.
func isNonZeroDigitChar(r rune) bool { return r >= '1' && r <= '9' }

func PeekNonZeroDigit(s *lex.Stream) bool { return s.UpcomingFunc(isNonZeroDigitChar) }

func LexNonZeroDigit(s *lex.Stream) lex.Result[DecimalDigit] {
	r, ok := s.Peek()
	if !ok || !isNonZeroDigitChar(r) {
		return lex.Nothing[DecimalDigit]()
	}
	loc, _, _ := s.Take()
	return lex.Ok(DecimalDigit{SpanVal: source.SingleChar(s.File(), loc), Raw: r})
}

func NonZeroDigitProduction() lex.Production[DecimalDigit] {
	return lex.Production[DecimalDigit]{Peek: PeekNonZeroDigit, Lex: LexNonZeroDigit}
}
