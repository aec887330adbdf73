package lex

import (
	"github.com/avdan-os/json5/source"
)

// Stream is a cursor over a [source.File]'s characters.
//
// It is a small value type (an index and a file pointer) and is cheap to
// copy; combinators that need to speculatively try an alternative just
// copy the Stream, attempt the sub-lex against the copy, and either adopt
// the copy's index on success or discard it — see [Stream.Fork].
//
// Grounded on original_source/src/lexing/utils/stream.rs's SourceStream.
type Stream struct {
	file  *source.File
	index int
}

// NewStream returns a Stream positioned at the start of f.
func NewStream(f *source.File) *Stream {
	return &Stream{file: f}
}

// File returns the source file this stream is reading.
func (s *Stream) File() *source.File { return s.file }

// Index returns the stream's current character offset.
func (s *Stream) Index() int { return s.index }

// Fork returns an independent copy of s. Discarding a fork (simply
// letting it go out of scope) has zero cost; adopting one means copying
// its index back with [Stream.Adopt].
func (s *Stream) Fork() *Stream {
	cp := *s
	return &cp
}

// Adopt sets s's index to match fork's. Used after a speculative Fork
// succeeds.
func (s *Stream) Adopt(fork *Stream) {
	s.index = fork.index
}

// Done reports whether the stream has been fully consumed.
func (s *Stream) Done() bool {
	return s.index >= len(s.file.Characters())
}

// Peek returns the character at offset 0 from the cursor, without
// consuming it. ok is false at end of input.
func (s *Stream) Peek() (r rune, ok bool) {
	return s.PeekN(0)
}

// PeekN returns the character at offset k from the cursor, without
// consuming it.
func (s *Stream) PeekN(k int) (r rune, ok bool) {
	chars := s.file.Characters()
	i := s.index + k
	if i < 0 || i >= len(chars) {
		return 0, false
	}
	return chars[i], true
}

// Take consumes and returns the current character and its location. ok is
// false at end of input, in which case the stream is not advanced.
func (s *Stream) Take() (loc source.Loc, r rune, ok bool) {
	r, ok = s.Peek()
	if !ok {
		return 0, 0, false
	}
	loc = source.Loc(s.index)
	s.index++
	return loc, r, true
}

// TakeWhile greedily consumes characters while pred holds, returning the
// span and characters consumed. ok is false if zero characters were
// consumed (the stream is left unchanged in that case).
func (s *Stream) TakeWhile(pred func(rune) bool) (span source.Span, chars []rune, ok bool) {
	start := s.index
	for {
		r, peeked := s.Peek()
		if !peeked || !pred(r) {
			break
		}
		chars = append(chars, r)
		s.index++
	}
	if len(chars) == 0 {
		return source.Span{}, nil, false
	}
	return s.file.Span(source.Loc(start), source.Loc(s.index)), chars, true
}

// TakeUntil consumes characters until pred(s) becomes true (without
// consuming the character at which it became true), or until end of
// input. ok is false if zero characters were consumed.
func (s *Stream) TakeUntil(pred func(*Stream) bool) (span source.Span, chars []rune, ok bool) {
	start := s.index
	for {
		if s.Done() || pred(s) {
			break
		}
		r, _ := s.Peek()
		chars = append(chars, r)
		s.index++
	}
	if len(chars) == 0 {
		return source.Span{}, nil, false
	}
	return s.file.Span(source.Loc(start), source.Loc(s.index)), chars, true
}

// UpcomingLiteral reports whether the exact character sequence lit appears
// next in the stream, without consuming it.
func (s *Stream) UpcomingLiteral(lit string) bool {
	want := []rune(lit)
	chars := s.file.Characters()
	if s.index+len(want) > len(chars) {
		return false
	}
	for i, r := range want {
		if chars[s.index+i] != r {
			return false
		}
	}
	return true
}

// UpcomingFunc reports whether the next character satisfies pred.
func (s *Stream) UpcomingFunc(pred func(rune) bool) bool {
	r, ok := s.Peek()
	return ok && pred(r)
}

// UpcomingRange reports whether the next character falls in the half-open
// range [cr.Start, cr.End).
func (s *Stream) UpcomingRange(cr CharRange) bool {
	r, ok := s.Peek()
	return ok && r >= cr.Start && r < cr.End
}

// Span returns the single-character span at the current cursor position,
// used for anchoring error locations.
func (s *Stream) Span() source.Span {
	return source.SingleChar(s.file, source.Loc(s.index))
}

// Error builds a *Error at the stream's current position.
func (s *Stream) Error(message string) *Error {
	return NewError(s.Span(), message)
}

// SpanFrom returns the span from the given start location to the
// stream's current position.
func (s *Stream) SpanFrom(start source.Loc) source.Span {
	return s.file.Span(start, source.Loc(s.index))
}
