package token

import (
	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

// PunctKind identifies which of JSON5's six punctuators a [Punct] is.
//
// Grounded on original_source/src/lexing/tokens/punctuator.rs's
// Punctuator enum.
type PunctKind byte

const (
	PunctLBrace PunctKind = iota
	PunctRBrace
	PunctLBracket
	PunctRBracket
	PunctColon
	PunctComma
)

func (k PunctKind) rune() rune {
	switch k {
	case PunctLBrace:
		return '{'
	case PunctRBrace:
		return '}'
	case PunctLBracket:
		return '['
	case PunctRBracket:
		return ']'
	case PunctColon:
		return ':'
	case PunctComma:
		return ','
	default:
		return 0
	}
}

var punctKinds = []PunctKind{
	PunctLBrace, PunctRBrace, PunctLBracket, PunctRBracket, PunctColon, PunctComma,
}

// Punct is one of JSON5's structural punctuators: `{ } [ ] : ,`.
type Punct struct {
	SpanVal source.Span
	PKind   PunctKind
}

func (p Punct) Span() source.Span { return p.SpanVal }
func (p Punct) Kind() Kind { return KindPunct }

func PeekPunct(s *lex.Stream) bool {
	r, ok := s.Peek()
	if !ok {
		return false
	}
	for _, k := range punctKinds {
		if k.rune() == r {
			return true
		}
	}
	return false
}

func LexPunct(s *lex.Stream) lex.Result[Punct] {
	r, ok := s.Peek()
	if !ok {
		return lex.Nothing[Punct]()
	}
	for _, k := range punctKinds {
		if k.rune() == r {
			loc, _, _ := s.Take()
			return lex.Ok(Punct{SpanVal: source.SingleChar(s.File(), loc), PKind: k})
		}
	}
	return lex.Nothing[Punct]()
}

func PunctProduction() lex.Production[Punct] {
	return lex.Production[Punct]{Peek: PeekPunct, Lex: LexPunct}
}
