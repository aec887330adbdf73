package token

import (
	"github.com/avdan-os/json5/lex"
)

// Dispatch recognizes a single input element at the stream's current
// position: trivia (line terminator, whitespace, comment) interleaved
// with the four token productions (identifier, punctuator, string,
// number), in that order.
//
// Grounded on spec.md §4.10: "The top-level token recognizer tries, in
// order: Identifier, Punctuator, String, Number. The input-element
// recognizer additionally interleaves LineTerminator, Whitespace, and
// Comment."
func Dispatch(s *lex.Stream) lex.Result[Element] {
	if r := LexLineTerminator(s); r.IsLexed() {
		return lex.Ok[Element](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[Element](r.Err())
	}

	if r := LexWhitespace(s); r.IsLexed() {
		return lex.Ok[Element](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[Element](r.Err())
	}

	if r := LexComment(s); r.IsLexed() {
		return lex.Ok[Element](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[Element](r.Err())
	}

	if r := LexIdentifier(s); r.IsLexed() {
		return lex.Ok[Element](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[Element](r.Err())
	}

	if r := LexPunct(s); r.IsLexed() {
		return lex.Ok[Element](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[Element](r.Err())
	}

	if r := LexLString(s); r.IsLexed() {
		return lex.Ok[Element](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[Element](r.Err())
	}

	if r := LexNumber(s); r.IsLexed() {
		return lex.Ok[Element](r.Value())
	} else if r.IsErrant() {
		return lex.Errant[Element](r.Err())
	}

	return lex.Nothing[Element]()
}

// DispatchProduction packages [Dispatch] as a [lex.Production], so it
// composes with the quantifier combinators like any other production.
func DispatchProduction() lex.Production[Element] {
	return lex.Production[Element]{Peek: PeekDispatch, Lex: Dispatch}
}

// PeekDispatch reports whether [Dispatch] would recognize an element at
// the stream's current position, without consuming anything.
func PeekDispatch(s *lex.Stream) bool {
	return PeekLineTerminator(s) || PeekWhitespace(s) || PeekComment(s) ||
		PeekIdentifier(s) || PeekPunct(s) || PeekLString(s) || PeekNumber(s)
}

// Lex tokenizes an entire file into a sequence of [Element]s, stopping at
// the first lexical error. On success, every input character has been
// accounted for by some element; elements for which [Kind.IsSkippable]
// holds are trivia that a syntax driver is free to discard.
func Lex(s *lex.Stream) ([]Element, *lex.Error) {
	var elements []Element
	for !s.Done() {
		r := Dispatch(s)
		switch {
		case r.IsLexed():
			elements = append(elements, r.Value())
		case r.IsErrant():
			return elements, r.Err()
		default:
			return elements, s.Error("Unrecognized character; expected whitespace, a comment, an identifier, a punctuator, a string, or a number.")
		}
	}
	return elements, nil
}
