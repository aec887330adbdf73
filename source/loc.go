// Package source provides the location primitives and source-file
// abstraction that every lexed token is traceable back to.
package source

import "fmt"

// Loc is a character index into a [File]'s character array.
//
// It is opaque on purpose: callers should not assume it is a byte offset,
// a rune count, or anything other than "the Nth character of the source".
type Loc int

// Add returns the location offset by n characters.
func (l Loc) Add(n int) Loc {
	return l + Loc(n)
}

// String implements [fmt.Stringer].
func (l Loc) String() string {
	return fmt.Sprintf("%d", int(l))
}
