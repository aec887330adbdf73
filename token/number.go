package token

import (
	"math"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// Number is a JSON5 number: an optional sign followed by a numeric value
// (Infinity, NaN, or an ECMAScript NumericLiteral).
//
// Grounded on original_source/src/lex/number.rs's Number.
type Number struct {
	SpanVal source.Span
	Sign    *Sign
	Value   Numeric
}

func (n Number) Span() source.Span { return n.SpanVal }
func (n Number) Kind() Kind { return KindNumber }

// MV implements [MathematicalValue]: the value's magnitude, sign-adjusted.
func (n Number) MV() float64 {
	v := n.Value.MV()
	if n.Sign != nil && n.Sign.Negative {
		return -v
	}
	return v
}

func PeekNumber(s *lex.Stream) bool {
	return PeekSign(s) || PeekNumeric(s)
}

func LexNumber(s *lex.Stream) lex.Result[Number] {
	start := s.Index()
	if !PeekNumber(s) {
		return lex.Nothing[Number]()
	}

	var sign *Sign
	if PeekSign(s) {
		r := LexSign(s)
		if !r.IsLexed() {
			return lex.Errant[Number](r.Err())
		}
		sv := r.Value()
		sign = &sv
	}

	numR := LexNumeric(s)
	if !numR.IsLexed() {
		if numR.IsErrant() {
			return lex.Errant[Number](numR.Err())
		}
		return lex.Errant[Number](s.Error("Expected a numeric literal here."))
	}

	return lex.Ok(Number{SpanVal: s.SpanFrom(source.Loc(start)), Sign: sign, Value: numR.Value()})
}

func NumberProduction() lex.Production[Number] {
	return lex.Production[Number]{Peek: PeekNumber, Lex: LexNumber}
}

// Sign is a leading `+` or `-` on a [Number].
type Sign struct {
	SpanVal  source.Span
	Negative bool
}

func (s Sign) Span() source.Span { return s.SpanVal }

func PeekSign(s *lex.Stream) bool {
	return s.UpcomingLiteral("+") || s.UpcomingLiteral("-")
}

func LexSign(s *lex.Stream) lex.Result[Sign] {
	r, ok := s.Peek()
	if !ok || (r != '+' && r != '-') {
		return lex.Nothing[Sign]()
	}
	loc, _, _ := s.Take()
	return lex.Ok(Sign{SpanVal: source.SingleChar(s.File(), loc), Negative: r == '-'})
}

func SignProduction() lex.Production[Sign] {
	return lex.Production[Sign]{Peek: PeekSign, Lex: LexSign}
}

// Numeric is JSON5's extension over ECMAScript NumericLiteral: the
// keywords Infinity and NaN, or a NumericLiteral.
//
// Grounded on number.rs's Numeric.
type Numeric interface {
	source.Spanner
	MathematicalValue
}

func PeekNumeric(s *lex.Stream) bool {
	return peekKeyword(s, "Infinity") || peekKeyword(s, "NaN") || PeekNumericLiteral(s)
}

func LexNumeric(s *lex.Stream) lex.Result[Numeric] {
	if peekKeyword(s, "Infinity") {
		span := lexKeyword(s, "Infinity")
		return lex.Ok[Numeric](Infinity{SpanVal: span})
	}
	if peekKeyword(s, "NaN") {
		span := lexKeyword(s, "NaN")
		return lex.Ok[Numeric](NaN{SpanVal: span})
	}
	if r := LexNumericLiteral(s); r.IsLexed() {
		return lex.Ok[Numeric](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[Numeric](r.Err())
	}
	return lex.Nothing[Numeric]()
}

// peekKeyword reports whether word appears next, provided it isn't
// itself a prefix of a longer identifier (so "Infinity" doesn't match in
// "Infinitys").
func peekKeyword(s *lex.Stream, word string) bool {
	if !s.UpcomingLiteral(word) {
		return false
	}
	next, ok := s.PeekN(len([]rune(word)))
	return !ok || !identifierPartAccepts(next)
}

func lexKeyword(s *lex.Stream, word string) source.Span {
	start := s.Index()
	for range []rune(word) {
		s.Take()
	}
	return s.SpanFrom(source.Loc(start))
}

// Infinity is the JSON5 `Infinity` keyword.
type Infinity struct{ SpanVal source.Span }

func (n Infinity) Span() source.Span { return n.SpanVal }
func (n Infinity) MV() float64 { return math.Inf(1) }

// NaN is the JSON5 `NaN` keyword.
type NaN struct{ SpanVal source.Span }

func (n NaN) Span() source.Span { return n.SpanVal }
func (n NaN) MV() float64 { return math.NaN() }

// NumericLiteral is an ECMAScript 5.1 NumericLiteral: a decimal literal
// (with optional fraction and exponent) or a hex integer literal.
//
// Grounded on number.rs's NumericLiteral, including its after_check: the
// character immediately following must not be an IdentifierStart or
// DecimalDigit.
type NumericLiteral interface {
	source.Spanner
	MathematicalValue
}

func PeekNumericLiteral(s *lex.Stream) bool {
	return PeekHexIntegerLiteral(s) || PeekDecimalLiteral(s)
}

func LexNumericLiteral(s *lex.Stream) lex.Result[NumericLiteral] {
	var lit NumericLiteral
	switch {
	case PeekHexIntegerLiteral(s):
		r := LexHexIntegerLiteral(s)
		if !r.IsLexed() {
			return lex.Errant[NumericLiteral](r.Err())
		}
		lit = r.Value()
	case PeekDecimalLiteral(s):
		r := LexDecimalLiteral(s)
		if !r.IsLexed() {
			return lex.Errant[NumericLiteral](r.Err())
		}
		lit = r.Value()
	default:
		return lex.Nothing[NumericLiteral]()
	}

	// PeekIdentifierStart also covers a `\uXXXX` escape that would begin an
	// identifier, not just a bare letter/$/_, matching the original's
	// is_identifier_start.
	if next, ok := s.Peek(); PeekIdentifierStart(s) || (ok && isDecimalDigitChar(next)) {
		return lex.Errant[NumericLiteral](s.Error(
			"A numeric literal must not be immediately followed by an identifier-start character or digit."))
	}

	return lex.Ok(lit)
}

func NumericLiteralProduction() lex.Production[NumericLiteral] {
	return lex.Production[NumericLiteral]{Peek: PeekNumericLiteral, Lex: LexNumericLiteral}
}

// DecimalLiteral is one of JSON5's three decimal-literal shapes, tried in
// an order that matters: IntegralDecimalMantissa requires a speculative
// lookahead past a full DecimalIntegerLiteral to find the following dot,
// so it must be tried before the plain Integer alternative, which would
// otherwise also match the leading digits.
//
// Grounded on number.rs's DecimalLiteral.
type DecimalLiteral interface {
	source.Spanner
	MathematicalValue
}

func PeekDecimalLiteral(s *lex.Stream) bool {
	return peekIntegralDecimalMantissa(s) || PeekDecimalMantissa(s) || PeekInteger(s)
}

func LexDecimalLiteral(s *lex.Stream) lex.Result[DecimalLiteral] {
	if peekIntegralDecimalMantissa(s) {
		r := lexIntegralDecimalMantissa(s)
		if !r.IsLexed() {
			return lex.Errant[DecimalLiteral](r.Err())
		}
		return lex.Ok[DecimalLiteral](r.Value())
	}
	if PeekDecimalMantissa(s) {
		r := LexDecimalMantissa(s)
		if !r.IsLexed() {
			return lex.Errant[DecimalLiteral](r.Err())
		}
		return lex.Ok[DecimalLiteral](r.Value())
	}
	if PeekInteger(s) {
		r := LexInteger(s)
		if !r.IsLexed() {
			return lex.Errant[DecimalLiteral](r.Err())
		}
		return lex.Ok[DecimalLiteral](r.Value())
	}
	return lex.Nothing[DecimalLiteral]()
}

// integralDecimalMantissa is `DecimalIntegerLiteral . DecimalDigits? ExponentPart?`.
type integralDecimalMantissa struct {
	SpanVal  source.Span
	Int      DecimalIntegerLiteral
	Mantissa []DecimalDigit // nil if absent
	Exponent *ExponentPart
}

func (n integralDecimalMantissa) Span() source.Span { return n.SpanVal }
func (n integralDecimalMantissa) MV() float64 {
	v := n.Int.MV()
	if len(n.Mantissa) > 0 {
		frac := DecimalDigitsMV(n.Mantissa)
		v += frac / math.Pow(10, float64(len(n.Mantissa)))
	}
	if n.Exponent != nil {
		v *= math.Pow(10, n.Exponent.Value())
	}
	return v
}

// peekIntegralDecimalMantissa requires forking the stream to look past a
// full DecimalIntegerLiteral for a following `.`, per spec.md's
// "speculative stream forking" note; this is the one place in the
// grammar that needs more than one token of lookahead.
func peekIntegralDecimalMantissa(s *lex.Stream) bool {
	if !PeekDecimalIntegerLiteral(s) {
		return false
	}
	fork := s.Fork()
	r := LexDecimalIntegerLiteral(fork)
	if !r.IsLexed() {
		return false
	}
	return fork.UpcomingLiteral(".")
}

func lexIntegralDecimalMantissa(s *lex.Stream) lex.Result[integralDecimalMantissa] {
	start := s.Index()

	intR := LexDecimalIntegerLiteral(s)
	if !intR.IsLexed() {
		return lex.Errant[integralDecimalMantissa](intR.Err())
	}

	if !s.UpcomingLiteral(".") {
		return lex.Errant[integralDecimalMantissa](s.Error("Expected `.`."))
	}
	s.Take()

	var mantissa []DecimalDigit
	if PeekDecimalDigit(s) {
		r := lex.Many(DecimalDigitProduction()).Lex(s)
		if !r.IsLexed() {
			return lex.Errant[integralDecimalMantissa](r.Err())
		}
		mantissa = r.Value()
	}

	var exp *ExponentPart
	if PeekExponentPart(s) {
		r := LexExponentPart(s)
		if !r.IsLexed() {
			return lex.Errant[integralDecimalMantissa](r.Err())
		}
		e := r.Value()
		exp = &e
	}

	return lex.Ok(integralDecimalMantissa{
		SpanVal:  s.SpanFrom(source.Loc(start)),
		Int:      intR.Value(),
		Mantissa: mantissa,
		Exponent: exp,
	})
}

// DecimalMantissa is `. DecimalDigits ExponentPart?`, e.g. `.1234e-5`.
type DecimalMantissa struct {
	SpanVal  source.Span
	Digits   []DecimalDigit
	Exponent *ExponentPart
}

func (n DecimalMantissa) Span() source.Span { return n.SpanVal }
func (n DecimalMantissa) MV() float64 {
	v := DecimalDigitsMV(n.Digits) / math.Pow(10, float64(len(n.Digits)))
	if n.Exponent != nil {
		v *= math.Pow(10, n.Exponent.Value())
	}
	return v
}

func PeekDecimalMantissa(s *lex.Stream) bool { return s.UpcomingLiteral(".") }

func LexDecimalMantissa(s *lex.Stream) lex.Result[DecimalMantissa] {
	if !s.UpcomingLiteral(".") {
		return lex.Nothing[DecimalMantissa]()
	}
	start := s.Index()
	s.Take()

	digitsR := lex.AtLeast(1, DecimalDigitProduction()).Lex(s)
	if !digitsR.IsLexed() {
		return lex.Errant[DecimalMantissa](s.Error("Expected decimal digits [0-9] here."))
	}

	var exp *ExponentPart
	if PeekExponentPart(s) {
		r := LexExponentPart(s)
		if !r.IsLexed() {
			return lex.Errant[DecimalMantissa](r.Err())
		}
		e := r.Value()
		exp = &e
	}

	return lex.Ok(DecimalMantissa{
		SpanVal:  s.SpanFrom(source.Loc(start)),
		Digits:   digitsR.Value(),
		Exponent: exp,
	})
}

func DecimalMantissaProduction() lex.Production[DecimalMantissa] {
	return lex.Production[DecimalMantissa]{Peek: PeekDecimalMantissa, Lex: LexDecimalMantissa}
}

// Integer is a bare DecimalIntegerLiteral with an optional ExponentPart,
// e.g. `1234`, `1234e2`.
type Integer struct {
	SpanVal  source.Span
	Int      DecimalIntegerLiteral
	Exponent *ExponentPart
}

func (n Integer) Span() source.Span { return n.SpanVal }
func (n Integer) MV() float64 {
	v := n.Int.MV()
	if n.Exponent != nil {
		v *= math.Pow(10, n.Exponent.Value())
	}
	return v
}

func PeekInteger(s *lex.Stream) bool { return PeekDecimalIntegerLiteral(s) }

func LexInteger(s *lex.Stream) lex.Result[Integer] {
	start := s.Index()
	intR := LexDecimalIntegerLiteral(s)
	if !intR.IsLexed() {
		return lex.Nothing[Integer]()
	}

	var exp *ExponentPart
	if PeekExponentPart(s) {
		r := LexExponentPart(s)
		if !r.IsLexed() {
			return lex.Errant[Integer](r.Err())
		}
		e := r.Value()
		exp = &e
	}

	return lex.Ok(Integer{SpanVal: s.SpanFrom(source.Loc(start)), Int: intR.Value(), Exponent: exp})
}

func IntegerProduction() lex.Production[Integer] {
	return lex.Production[Integer]{Peek: PeekInteger, Lex: LexInteger}
}

// DecimalIntegerLiteral is `0`, or a non-zero digit followed by further
// decimal digits; a multi-digit literal may never begin with `0`.
//
// Grounded on number.rs's DecimalIntegerLiteral.
type DecimalIntegerLiteral struct {
	SpanVal source.Span
	Zero    bool
	Lead    *DecimalDigit // the non-zero leading digit, if !Zero
	Rest    []DecimalDigit
}

func (n DecimalIntegerLiteral) Span() source.Span { return n.SpanVal }
func (n DecimalIntegerLiteral) MV() float64 {
	if n.Zero {
		return 0
	}
	digits := append([]DecimalDigit{*n.Lead}, n.Rest...)
	return DecimalDigitsMV(digits)
}

func PeekDecimalIntegerLiteral(s *lex.Stream) bool {
	r, ok := s.Peek()
	return ok && isDecimalDigitChar(r)
}

func LexDecimalIntegerLiteral(s *lex.Stream) lex.Result[DecimalIntegerLiteral] {
	start := s.Index()
	r, ok := s.Peek()
	if !ok || !isDecimalDigitChar(r) {
		return lex.Nothing[DecimalIntegerLiteral]()
	}

	if r == '0' {
		s.Take()
		return lex.Ok(DecimalIntegerLiteral{SpanVal: s.SpanFrom(source.Loc(start)), Zero: true})
	}

	leadR := LexNonZeroDigit(s)
	lead := leadR.Value()

	var rest []DecimalDigit
	if PeekDecimalDigit(s) {
		restR := lex.Many(DecimalDigitProduction()).Lex(s)
		rest = restR.Value()
	}

	return lex.Ok(DecimalIntegerLiteral{
		SpanVal: s.SpanFrom(source.Loc(start)),
		Zero:    false,
		Lead:    &lead,
		Rest:    rest,
	})
}

func DecimalIntegerLiteralProduction() lex.Production[DecimalIntegerLiteral] {
	return lex.Production[DecimalIntegerLiteral]{
		Peek: PeekDecimalIntegerLiteral,
		Lex:  LexDecimalIntegerLiteral,
	}
}

// ExponentPart is `(e|E) SignedInteger`.
type ExponentPart struct {
	SpanVal   source.Span
	Uppercase bool
	Exponent  SignedInteger
}

func (e ExponentPart) Span() source.Span { return e.SpanVal }

// Value returns the exponent's signed numeric value.
func (e ExponentPart) Value() float64 { return e.Exponent.Value() }

func PeekExponentPart(s *lex.Stream) bool {
	return s.UpcomingLiteral("e") || s.UpcomingLiteral("E")
}

func LexExponentPart(s *lex.Stream) lex.Result[ExponentPart] {
	start := s.Index()
	var upper bool
	switch {
	case s.UpcomingLiteral("E"):
		upper = true
	case s.UpcomingLiteral("e"):
		upper = false
	default:
		return lex.Nothing[ExponentPart]()
	}
	s.Take()

	intR := LexSignedInteger(s)
	if !intR.IsLexed() {
		return lex.Errant[ExponentPart](s.Error("Expected a signed integer (e.g. +1, -2, 4) here."))
	}

	return lex.Ok(ExponentPart{
		SpanVal:   s.SpanFrom(source.Loc(start)),
		Uppercase: upper,
		Exponent:  intR.Value(),
	})
}

func ExponentPartProduction() lex.Production[ExponentPart] {
	return lex.Production[ExponentPart]{Peek: PeekExponentPart, Lex: LexExponentPart}
}

// SignedInteger is an optionally-signed run of decimal digits, as used in
// an exponent.
type SignedInteger struct {
	SpanVal  source.Span
	Negative bool // only meaningful if HasSign
	HasSign  bool
	Digits   []DecimalDigit
}

func (n SignedInteger) Span() source.Span { return n.SpanVal }
func (n SignedInteger) Value() float64 {
	v := DecimalDigitsMV(n.Digits)
	if n.HasSign && n.Negative {
		return -v
	}
	return v
}

func PeekSignedInteger(s *lex.Stream) bool {
	return s.UpcomingLiteral("+") || s.UpcomingLiteral("-") || PeekDecimalDigit(s)
}

func LexSignedInteger(s *lex.Stream) lex.Result[SignedInteger] {
	start := s.Index()

	var hasSign, negative bool
	switch {
	case s.UpcomingLiteral("+"):
		hasSign, negative = true, false
		s.Take()
	case s.UpcomingLiteral("-"):
		hasSign, negative = true, true
		s.Take()
	}

	digitsR := lex.AtLeast(1, DecimalDigitProduction()).Lex(s)
	if !digitsR.IsLexed() {
		if hasSign {
			return lex.Errant[SignedInteger](s.Error("Expected decimal digits after sign."))
		}
		return lex.Nothing[SignedInteger]()
	}

	return lex.Ok(SignedInteger{
		SpanVal:  s.SpanFrom(source.Loc(start)),
		Negative: negative,
		HasSign:  hasSign,
		Digits:   digitsR.Value(),
	})
}

func SignedIntegerProduction() lex.Production[SignedInteger] {
	return lex.Production[SignedInteger]{Peek: PeekSignedInteger, Lex: LexSignedInteger}
}

// HexIntegerLiteral is `0x` or `0X` followed by one or more hex digits.
type HexIntegerLiteral struct {
	SpanVal   source.Span
	Uppercase bool
	Digits    []HexDigit
}

func (n HexIntegerLiteral) Span() source.Span { return n.SpanVal }
func (n HexIntegerLiteral) MV() float64 { return HexDigitsMV(n.Digits) }

func PeekHexIntegerLiteral(s *lex.Stream) bool {
	return s.UpcomingLiteral("0x") || s.UpcomingLiteral("0X")
}

func LexHexIntegerLiteral(s *lex.Stream) lex.Result[HexIntegerLiteral] {
	start := s.Index()
	var upper bool
	switch {
	case s.UpcomingLiteral("0X"):
		upper = true
	case s.UpcomingLiteral("0x"):
		upper = false
	default:
		return lex.Nothing[HexIntegerLiteral]()
	}
	s.Take()
	s.Take()

	digitsR := lex.AtLeast(1, HexDigitProduction()).Lex(s)
	if !digitsR.IsLexed() {
		return lex.Errant[HexIntegerLiteral](s.Error("Expected at least one hex digit here."))
	}

	return lex.Ok(HexIntegerLiteral{
		SpanVal:   s.SpanFrom(source.Loc(start)),
		Uppercase: upper,
		Digits:    digitsR.Value(),
	})
}

func HexIntegerLiteralProduction() lex.Production[HexIntegerLiteral] {
	return lex.Production[HexIntegerLiteral]{Peek: PeekHexIntegerLiteral, Lex: LexHexIntegerLiteral}
}
