package source

// Source is a read-only view of a parsed file: the character array a
// [Span] indexes into, plus enough book-keeping to turn a Span back into a
// human-readable location.
//
// [File] is the only concrete implementation; Source exists as an
// interface so that lexing code (in package lex and package token) never
// has to import File's construction details.
type Source interface {
	// Characters returns the full character sequence of this source, as
	// Unicode scalar values (not bytes).
	Characters() []rune

	// Bounds returns the span [0, N) of this source, where N is the
	// character count.
	Bounds() Span

	// InBounds reports whether span.End is within this source.
	InBounds(span Span) bool

	// SourceAt returns the substring at span, or ("", false) if out of
	// bounds.
	SourceAt(span Span) (string, bool)

	// Locate returns a human-readable location for span's start.
	Locate(span Span) Location

	// Path returns the source's display name (a file path, or a
	// synthetic name for in-memory sources).
	Path() string
}

var _ Source = (*File)(nil)
