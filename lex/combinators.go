package lex

import "fmt"

// Many builds the zero-or-more quantifier over elem.
//
// Grounded on original_source/src/lexing/utils/lex_impls.rs's
// `impl<L: LexT> LexT for Many<L>`. Many is always peekable (the empty
// match is always valid), so its Peek always returns true.
func Many[T any](elem Production[T]) Production[[]T] {
	return Production[[]T]{
		Peek: func(s *Stream) bool { return true },
		Lex: func(s *Stream) Result[[]T] {
			var out []T
			for elem.Peek(s) {
				r := elem.Lex(s)
				switch {
				case r.IsLexed():
					out = append(out, r.Value())
				case r.IsErrant():
					return Errant[[]T](r.Err())
				default:
					// elem.Peek(s) was true but Lex returned Nothing: a
					// contract violation in elem, not in Many. Stop here
					// rather than loop forever.
					return Ok(out)
				}
			}
			return Ok(out)
		},
	}
}

// AtLeast builds the "at least n" quantifier over elem.
//
// Grounded on lex_impls.rs's `AtLeast<const N: usize, L>`.
func AtLeast[T any](n int, elem Production[T]) Production[[]T] {
	many := Many(elem)
	return Production[[]T]{
		Peek: elem.Peek,
		Lex: func(s *Stream) Result[[]T] {
			if !elem.Peek(s) {
				return Nothing[[]T]()
			}
			r := many.Lex(s)
			if !r.IsLexed() {
				return r
			}
			v := r.Value()
			if len(v) < n {
				return Errant[[]T](s.Error(fmt.Sprintf(
					"Expected at least %d tokens: got %d.", n, len(v))))
			}
			return Ok(v)
		},
	}
}

// Exactly builds the "exactly n" quantifier over elem. It consumes at most
// n elements, so any further matching input is left for the caller.
//
// Grounded on lex_impls.rs's `Exactly<const N: usize, L>`.
func Exactly[T any](n int, elem Production[T]) Production[[]T] {
	return Production[[]T]{
		Peek: elem.Peek,
		Lex: func(s *Stream) Result[[]T] {
			if !elem.Peek(s) {
				return Nothing[[]T]()
			}
			var v []T
			for len(v) < n && elem.Peek(s) {
				r := elem.Lex(s)
				if r.IsErrant() {
					return Errant[[]T](r.Err())
				}
				if !r.IsLexed() {
					break
				}
				v = append(v, r.Value())
			}
			if len(v) != n {
				return Errant[[]T](s.Error(fmt.Sprintf(
					"Expected %d tokens: got %d.", n, len(v))))
			}
			return Ok(v)
		},
	}
}
