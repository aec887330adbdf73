package json5

import (
	"github.com/avdan-os/json5/token"
)

// parseValue recognizes Value ::= Null | Boolean | String | Number |
// Object | Array.
func (p *parser) parseValue() (Value, error) {
	switch e := p.upcoming().(type) {
	case nil:
		return nil, p.errorf("expected a JSON5 value (null, a number, a string, a boolean, an object, or an array)")
	case token.Identifier:
		switch identifierSV(e) {
		case "null":
			p.next()
			return Null{Ident: e}, nil
		case "true":
			p.next()
			return Boolean{Ident: e, True: true}, nil
		case "false":
			p.next()
			return Boolean{Ident: e, True: false}, nil
		default:
			return nil, p.errorf("unexpected identifier %q; expected null, true, false, or a value", identifierSV(e))
		}
	case token.LString:
		p.next()
		return String{Lit: e}, nil
	case token.Number:
		p.next()
		return Number{Lit: e}, nil
	case token.Punct:
		switch e.PKind {
		case token.PunctLBrace:
			return p.parseObject()
		case token.PunctLBracket:
			return p.parseArray()
		}
	}
	return nil, p.errorf("expected a JSON5 value (null, a number, a string, a boolean, an object, or an array)")
}

// parseObject recognizes Object ::= '{' (Member (',' Member)* ','?)? '}'.
func (p *parser) parseObject() (Value, error) {
	open, err := p.expectPunct(token.PunctLBrace, "`{`")
	if err != nil {
		return nil, err
	}

	var members []Member
	for !p.peekPunct(token.PunctRBrace) {
		if p.done() {
			return nil, p.errorf("unterminated object; expected `}`")
		}

		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)

		if p.peekPunct(token.PunctRBrace) {
			break
		}
		if _, err := p.expectPunct(token.PunctComma, "`,` or `}`"); err != nil {
			return nil, err
		}
	}

	close, err := p.expectPunct(token.PunctRBrace, "`}`")
	if err != nil {
		return nil, err
	}

	return Object{SpanVal: open.Span().Combine(close.Span()), Members: members}, nil
}

// parseMember recognizes Member ::= (Identifier | String) ':' Value.
func (p *parser) parseMember() (Member, error) {
	var name MemberName
	switch e := p.upcoming().(type) {
	case token.Identifier:
		p.next()
		name = IdentifierName{Ident: e}
	case token.LString:
		p.next()
		name = StringName{Lit: e}
	default:
		return Member{}, p.errorf("expected a member name (an identifier or a string literal)")
	}

	if _, err := p.expectPunct(token.PunctColon, "`:`"); err != nil {
		return Member{}, err
	}

	value, err := p.parseValue()
	if err != nil {
		return Member{}, err
	}

	return Member{Name: name, Value: value}, nil
}

// parseArray recognizes Array ::= '[' (Value (',' Value)* ','?)? ']'.
func (p *parser) parseArray() (Value, error) {
	open, err := p.expectPunct(token.PunctLBracket, "`[`")
	if err != nil {
		return nil, err
	}

	var elements []Value
	for !p.peekPunct(token.PunctRBracket) {
		if p.done() {
			return nil, p.errorf("unterminated array; expected `]`")
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, v)

		if p.peekPunct(token.PunctRBracket) {
			break
		}
		if _, err := p.expectPunct(token.PunctComma, "`,` or `]`"); err != nil {
			return nil, err
		}
	}

	close, err := p.expectPunct(token.PunctRBracket, "`]`")
	if err != nil {
		return nil, err
	}

	return Array{SpanVal: open.Span().Combine(close.Span()), Elements: elements}, nil
}
