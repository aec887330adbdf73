package lex

// outcome is the tag of a [Result]: exactly one of Lexed, Nothing, or
// Errant, per spec.md §3. The Nothing/Errant distinction is the central
// design decision of this package: Nothing means "try the next
// alternative", Errant means "abort, this is a grammar violation" — a
// plain (T, error) pair the way Go normally does things would conflate the
// two.
type outcome int

const (
	outcomeLexed outcome = iota
	outcomeNothing
	outcomeErrant
)

// Result is the three-way outcome of attempting to lex a token of type T.
//
// Grounded on original_source/src/lexing/utils/result.rs's LexResult<L>.
type Result[T any] struct {
	state outcome
	value T
	err   *Error
}

// Ok wraps a successfully lexed token.
func Ok[T any](v T) Result[T] {
	return Result[T]{state: outcomeLexed, value: v}
}

// Nothing reports that the input's current prefix cannot be this token;
// no input was consumed.
func Nothing[T any]() Result[T] {
	return Result[T]{state: outcomeNothing}
}

// Errant reports a fatal grammar violation partway through recognition.
func Errant[T any](err *Error) Result[T] {
	return Result[T]{state: outcomeErrant, err: err}
}

// IsLexed reports whether r is a successful match.
func (r Result[T]) IsLexed() bool { return r.state == outcomeLexed }

// IsNothing reports whether r is a non-match (no input consumed).
func (r Result[T]) IsNothing() bool { return r.state == outcomeNothing }

// IsErrant reports whether r is a fatal grammar violation.
func (r Result[T]) IsErrant() bool { return r.state == outcomeErrant }

// Err returns the *Error carried by an Errant result, or nil otherwise.
func (r Result[T]) Err() *Error { return r.err }

// Value returns the value carried by a Lexed result, or the zero value of
// T otherwise. Check IsLexed first.
func (r Result[T]) Value() T { return r.value }

// Or tries the alternative only when r is Nothing; an Errant result
// short-circuits past it.
func (r Result[T]) Or(alt func() Result[T]) Result[T] {
	switch r.state {
	case outcomeLexed, outcomeErrant:
		return r
	default:
		return alt()
	}
}

// Expected promotes a Nothing result into an Errant one with a generic
// "expected a token here" message, anchored at the stream's current
// position. Lexed and Errant results pass through unchanged.
func (r Result[T]) Expected(s *Stream, what string) Result[T] {
	return r.ExpectedMsg(s, "Expected a "+what+" token here.")
}

// ExpectedMsg is like Expected, but with a caller-supplied message.
func (r Result[T]) ExpectedMsg(s *Stream, msg string) Result[T] {
	if r.state != outcomeNothing {
		return r
	}
	return Errant[T](NewError(s.Span(), msg))
}

// AsError converts r into a binary (T, error) pair for boundary crossings
// where the caller has already established (e.g. via Peek) that r cannot
// be Nothing. It panics if r is Nothing, since that indicates a bug in the
// caller's peek/lex protocol, not malformed input.
func (r Result[T]) AsError() (T, error) {
	switch r.state {
	case outcomeLexed:
		return r.value, nil
	case outcomeErrant:
		var zero T
		return zero, r.err
	default:
		panic("lex: AsError called on a Nothing Result")
	}
}

// MapResult transforms a Lexed value, passing Nothing/Errant through
// unchanged. Defined as a free function (not a method) because Go forbids
// new type parameters on methods.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	switch r.state {
	case outcomeLexed:
		return Ok(f(r.value))
	case outcomeErrant:
		return Errant[U](r.err)
	default:
		return Nothing[U]()
	}
}

// AndResult chains on a Lexed value, short-circuiting Nothing/Errant.
func AndResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	switch r.state {
	case outcomeLexed:
		return f(r.value)
	case outcomeErrant:
		return Errant[U](r.err)
	default:
		return Nothing[U]()
	}
}
