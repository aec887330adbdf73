package source

import "fmt"

// Span is a half-open range [Start, End) of character indices into a
// [File]'s character array.
//
// The zero Span is the empty span at location 0; it carries no File and
// [Span.IsZero] reports true for it.
type Span struct {
	File       *File
	Start, End Loc
}

// Spanner is anything that can report the [Span] of source text that
// produced it.
type Spanner interface {
	Span() Span
}

// Span implements [Spanner].
func (s Span) Span() Span { return s }

// IsZero reports whether this is the zero-value Span (no File attached).
func (s Span) IsZero() bool {
	return s.File == nil
}

// Empty returns a zero-length span at loc, attached to f.
//
// It serves as the identity span for [lex.SpanOf], which returns it when
// given no elements, so the result still has a sensible location to
// report in diagnostics rather than the zero Span. The quantifier
// combinators themselves ([lex.Many] and friends) return plain slices and
// carry no span of their own.
func Empty(f *File, loc Loc) Span {
	return Span{File: f, Start: loc, End: loc}
}

// SingleChar returns the span covering exactly the one character at loc.
func SingleChar(f *File, loc Loc) Span {
	return Span{File: f, Start: loc, End: loc + 1}
}

// Len returns the number of characters covered by this span.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// AsRange returns the start/end indices as plain ints, suitable for slicing
// a []rune or string.
func (s Span) AsRange() (start, end int) {
	return int(s.Start), int(s.End)
}

// Subspan returns the sub-range of s given by indices relative to s.Start.
// end is exclusive. ok is false if end would overflow s's own end.
func (s Span) Subspan(start, end int) (sub Span, ok bool) {
	newStart := s.Start.Add(start)
	newEnd := s.Start.Add(end)
	if newEnd > s.End {
		return Span{}, false
	}
	return Span{File: s.File, Start: newStart, End: newEnd}, true
}

// Combine returns a Span from s's start to the end of the last of others.
// If others is empty, s is returned unchanged.
func (s Span) Combine(others ...Span) Span {
	if len(others) == 0 {
		return s
	}
	last := others[len(others)-1]
	return Span{File: s.File, Start: s.Start, End: last.End}
}

// Combine folds a slice of spans into the smallest Span spanning all of
// them, taking the first span's start and the last span's end. It panics
// if spans is empty; callers with a possibly-empty slice should special
// case it (most combinators already carry at least one span).
func Combine(spans []Span) Span {
	if len(spans) == 0 {
		panic("source: Combine called with no spans")
	}
	return spans[0].Combine(spans[1:]...)
}

// Text returns the source text covered by this span.
func (s Span) Text() string {
	if s.File == nil {
		return ""
	}
	start, end := s.AsRange()
	return string(s.File.characters[start:end])
}

// String implements [fmt.Stringer] as "path:line:col".
func (s Span) String() string {
	return s.File.Locate(s).String()
}

var _ fmt.Stringer = Span{}
