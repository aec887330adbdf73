package source

import "fmt"

// Location is a user-displayable location within a source file: a byte-free
// (rune-indexed) 1-based line/column pair, plus the terminal-column-width
// variant used for rendering carets under diagnostics.
type Location struct {
	Path string

	// Offset is the 0-based character offset this location was computed
	// from.
	Offset int

	// Line and Column are 1-indexed. A zero Line is never produced; it is
	// reserved as a sentinel for callers that need one.
	Line, Column int

	// TermColumn is Column adjusted for the rendered terminal width of
	// preceding wide/combining runes (see internal/ext/unicodex.Width).
	TermColumn int
}

// String implements [fmt.Stringer] as "path:line:col".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}
