package json5

import (
	"unicode/utf16"

	"github.com/avdan-os/json5/source"
	"github.com/avdan-os/json5/token"
)

// Value is any JSON5 value: Null, Boolean, String, Number, Object, or
// Array.
//
// Grounded on original_source/src/syntax/value.rs's Value enum.
type Value interface {
	source.Spanner
}

// Null is the `null` keyword, recognized as an identifier whose decoded
// SV equals "null" rather than as a lexically reserved word (spec.md
// §6: "the keywords are not lexically reserved; they are identifiers
// distinguished at parse time").
type Null struct {
	Ident token.Identifier
}

func (n Null) Span() source.Span { return n.Ident.Span() }

// Boolean is the `true` or `false` keyword, recognized the same way as
// [Null].
type Boolean struct {
	Ident token.Identifier
	True  bool
}

func (b Boolean) Span() source.Span { return b.Ident.Span() }

// String is a JSON5 string value.
type String struct {
	Lit token.LString
}

func (s String) Span() source.Span { return s.Lit.Span() }

// Value decodes the string's UTF-16 string value to a Go string.
func (s String) Value() string {
	return string(utf16.Decode(s.Lit.SV()))
}

// Number is a JSON5 number value.
type Number struct {
	Lit token.Number
}

func (n Number) Span() source.Span { return n.Lit.Span() }

// Value returns the number's mathematical value.
func (n Number) Value() float64 { return n.Lit.MV() }

// Object is a JSON5 object: `{}`, optionally containing members
// separated by commas, with an optional trailing comma.
//
// Grounded on value.rs's Object/Punctuated.
type Object struct {
	SpanVal source.Span
	Members []Member
}

func (o Object) Span() source.Span { return o.SpanVal }

// Member is a single `name: value` pair inside an [Object].
type Member struct {
	Name  MemberName
	Value Value
}

func (m Member) Span() source.Span { return m.Name.Span().Combine(m.Value.Span()) }

// MemberName is either an identifier or a string literal naming a
// member: JSON5's relaxation of strict JSON, which requires a quoted
// string.
type MemberName interface {
	source.Spanner
	isMemberName()
}

// IdentifierName is a member name spelled as a bare identifier, e.g. the
// `fruits` in `{fruits: []}`.
type IdentifierName struct {
	Ident token.Identifier
}

func (n IdentifierName) Span() source.Span { return n.Ident.Span() }
func (IdentifierName) isMemberName() {}

// StringName is a member name spelled as a quoted string literal.
type StringName struct {
	Lit token.LString
}

func (n StringName) Span() source.Span { return n.Lit.Span() }
func (StringName) isMemberName() {}

// Array is a JSON5 array: `[]`, optionally containing elements separated
// by commas, with an optional trailing comma.
type Array struct {
	SpanVal  source.Span
	Elements []Value
}

func (a Array) Span() source.Span { return a.SpanVal }

// identifierSV decodes an identifier's UTF-16 string value to a Go
// string, for comparison against the `true`/`false`/`null` keywords.
func identifierSV(id token.Identifier) string {
	return string(utf16.Decode(id.SV()))
}
