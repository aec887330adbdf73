// Package json5 is a thin syntax driver over package token: it filters
// trivia from a token stream and assembles JSON5 values from what
// remains.
//
// Grounded on original_source/src/syntax/{mod,value}.rs's
// ParseBuffer/Parse machinery, adapted from Rust's trait-based dispatch
// ("impl Parse for X") to a conventional recursive-descent parser over a
// slice cursor, since Go has no equivalent of parsing via generic trait
// resolution.
package json5

import (
	"fmt"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
	"github.com/avdan-os/json5/token"
)

// ParseError is a syntax-level error: unlike [lex.Error], it is reported
// in terms of the element the parser was looking at, not raw characters.
type ParseError struct {
	Span    source.Span
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// Parse lexes and parses an entire file as a single JSON5 [Value].
//
// Grounded on spec.md §6's "Boundary to the syntax driver": the driver
// calls the lex core repeatedly, skipping input elements whose category
// is whitespace, line terminator, or comment, then builds JSON5 values.
func Parse(file *source.File) (Value, error) {
	elements, lexErr := token.Lex(lex.NewStream(file))
	if lexErr != nil {
		return nil, lexErr
	}

	p := newParser(file, elements)
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.errorf("expected end of input, found trailing content")
	}
	return v, nil
}

// parser is a cursor over a file's non-trivia elements.
type parser struct {
	file     *source.File
	elements []token.Element
	index    int
}

func newParser(file *source.File, all []token.Element) *parser {
	elements := make([]token.Element, 0, len(all))
	for _, e := range all {
		if !e.Kind().IsSkippable() {
			elements = append(elements, e)
		}
	}
	return &parser{file: file, elements: elements}
}

func (p *parser) done() bool { return p.index >= len(p.elements) }

// upcoming returns the element under the cursor, or nil at end of input.
func (p *parser) upcoming() token.Element {
	if p.done() {
		return nil
	}
	return p.elements[p.index]
}

func (p *parser) next() token.Element {
	e := p.upcoming()
	if e != nil {
		p.index++
	}
	return e
}

// errorf builds a [ParseError] positioned at the cursor's current element,
// or at end of the file if the cursor is exhausted.
func (p *parser) errorf(format string, args ...any) error {
	var span source.Span
	if e := p.upcoming(); e != nil {
		span = e.Span()
	} else {
		span = p.file.Bounds()
		span.Start = span.End
	}
	return &ParseError{Span: span, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) peekPunct(kind token.PunctKind) bool {
	punct, ok := p.upcoming().(token.Punct)
	return ok && punct.PKind == kind
}

func (p *parser) expectPunct(kind token.PunctKind, what string) (token.Punct, error) {
	if punct, ok := p.upcoming().(token.Punct); ok && punct.PKind == kind {
		p.index++
		return punct, nil
	}
	return token.Punct{}, p.errorf("expected %s", what)
}
