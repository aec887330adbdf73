package source

import (
	"sort"
	"sync"

	"github.com/avdan-os/json5/internal/ext/unicodex"
)

// File is an immutable, fully-materialized source file: a path and its
// decoded character array, plus a precomputed line index for locating
// spans.
//
// A File is cheap to share by pointer; nothing about it is mutated after
// construction except the lazily computed lineStarts (guarded by once).
type File struct {
	path       string
	characters []rune

	once       sync.Once
	lineStarts []int // character index at which each line begins
}

// NewFile decodes text into a File with the given display path.
//
// text is decoded as a sequence of Unicode scalar values; the whole file is
// materialized up front (spec: no streaming over unbounded input).
func NewFile(path, text string) *File {
	return &File{path: path, characters: []rune(text)}
}

// Path implements [Source].
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Characters implements [Source].
func (f *File) Characters() []rune {
	if f == nil {
		return nil
	}
	return f.characters
}

// Bounds implements [Source].
func (f *File) Bounds() Span {
	return Span{File: f, Start: 0, End: Loc(len(f.characters))}
}

// InBounds implements [Source].
func (f *File) InBounds(span Span) bool {
	return int(span.End) <= len(f.characters) && int(span.Start) >= 0
}

// SourceAt implements [Source].
func (f *File) SourceAt(span Span) (string, bool) {
	if !f.InBounds(span) {
		return "", false
	}
	start, end := span.AsRange()
	return string(f.characters[start:end]), true
}

// Span is a shorthand for constructing a Span against this file.
func (f *File) Span(start, end Loc) Span {
	return Span{File: f, Start: start, End: end}
}

// lines returns the character index at which each line begins, computing
// it on first use. LF, CR, CRLF (counted once), LS and PS end a line.
func (f *File) lines() []int {
	f.once.Do(func() {
		next := 0
		f.lineStarts = append(f.lineStarts, 0)
		for i, r := range f.characters {
			switch r {
			case '\n':
				next = i + 1
				f.lineStarts = append(f.lineStarts, next)
			case '\r':
				// CRLF is a single sequence; don't double count it as two
				// line breaks. A lone CR (not followed by LF) still ends
				// a line, matching LineTerminatorSequence semantics.
				if i+1 < len(f.characters) && f.characters[i+1] == '\n' {
					continue
				}
				next = i + 1
				f.lineStarts = append(f.lineStarts, next)
			case '\u2028', '\u2029':
				next = i + 1
				f.lineStarts = append(f.lineStarts, next)
			}
		}
	})
	return f.lineStarts
}

// Locate implements [Source]: it returns a 1-indexed line/column location
// for span's start, computed by binary search over the line index.
func (f *File) Locate(span Span) Location {
	if f == nil {
		return Location{Line: 1, Column: 1}
	}

	offset := int(span.Start)
	lines := f.lines()

	line := sort.Search(len(lines), func(i int) bool { return lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}

	lineStart := lines[line]
	column := offset - lineStart

	termColumn := unicodex.Width(string(f.characters[lineStart:offset])) + 1

	return Location{
		Path:       f.path,
		Offset:     offset,
		Line:       line + 1,
		Column:     column + 1,
		TermColumn: termColumn,
	}
}

// Indentation returns the substring between the last line terminator
// before loc and the first non-whitespace character after it.
func (f *File) Indentation(loc Loc) string {
	lines := f.lines()
	offset := int(loc)
	line := sort.Search(len(lines), func(i int) bool { return lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	start := lines[line]

	end := start
	for end < len(f.characters) && end < offset && isPatternWhitespace(f.characters[end]) {
		end++
	}
	return string(f.characters[start:end])
}

func isPatternWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f':
		return true
	default:
		return false
	}
}
