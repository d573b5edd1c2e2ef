// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"strconv"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/token"
)

func registerTypes(r *Registry[ast.Type]) {
	r.Prefix(token.Identifier, parseIdentifierType)
	r.Prefix(token.TypeSelf, parseIdentifierType)
	r.Prefix(token.Any, parsePrefixedType)
	r.Prefix(token.Some, parsePrefixedType)
	r.Prefix(token.OpenBracket, parseBracketType)
	r.Prefix(token.OpenParen, parseTupleType)

	r.Infix(token.Optional, MemberBP, parseOptionalType)
	r.Infix(token.Defaulting, MemberBP, parseOptionalType)
	r.Infix(token.Arrow, AssignmentBP, parseFunctionType)
}

// parseIdentifierType handles Name and Name<A, B>.
func parseIdentifierType(p *Parser) (ast.Type, error) {
	name := p.Advance()
	if !p.Accept(token.Less) {
		return &ast.SymbolType{Name: name.Text}, nil
	}
	generic := &ast.GenericType{Name: name.Text}
	for {
		arg, err := p.ParseType(DefaultBP)
		if err != nil {
			return nil, err
		}
		generic.Generics = append(generic.Generics, arg)
		if !p.Accept(token.Comma) {
			break
		}
	}
	if _, err := p.Expect(token.Greater); err != nil {
		return nil, err
	}
	return generic, nil
}

// parsePrefixedType handles any P and some P, where P must be a plain name.
func parsePrefixedType(p *Parser) (ast.Type, error) {
	prefix := p.Advance()
	inner, err := p.ParseType(PrimaryBP)
	if err != nil {
		return nil, err
	}
	sym, ok := inner.(*ast.SymbolType)
	switch {
	case !ok:
		return nil, malformed(prefix, "%q must be followed by a type name", prefix.Text)
	case sym.Modifier != "":
		return nil, malformed(prefix, "%q cannot apply to a type that is already %q", prefix.Text, sym.Modifier)
	}
	sym.Modifier = prefix.Text
	return sym, nil
}

// parseBracketType handles [T] and [K: V].
func parseBracketType(p *Parser) (ast.Type, error) {
	p.Advance()
	first, err := p.ParseType(DefaultBP)
	if err != nil {
		return nil, err
	}
	switch tok := p.Advance(); tok.Kind {
	case token.CloseBracket:
		return &ast.ListType{Underlying: first}, nil
	case token.Colon:
		value, err := p.ParseType(DefaultBP)
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(token.CloseBracket); err != nil {
			return nil, err
		}
		return &ast.DictType{Key: first, Value: value}, nil
	default:
		return nil, malformed(tok, "expected ']' or ':' in bracketed type, found %s", describe(tok))
	}
}

// parseTupleType handles (T), which is just T, and tuples (), (a: A, B).
func parseTupleType(p *Parser) (ast.Type, error) {
	p.Advance()
	if p.Accept(token.CloseParen) {
		return &ast.TupleType{}, nil
	}
	first, explicit, err := parseNamedType(p, 0)
	if err != nil {
		return nil, err
	}
	tuple := &ast.TupleType{Values: []*ast.NamedType{first}}
	tok := p.Advance()
	for tok.Kind == token.Comma {
		elem, _, err := parseNamedType(p, len(tuple.Values))
		if err != nil {
			return nil, err
		}
		tuple.Values = append(tuple.Values, elem)
		tok = p.Advance()
	}
	if tok.Kind != token.CloseParen {
		return nil, malformed(tok, "expected ',' or ')' in tuple type, found %s", describe(tok))
	}
	if len(tuple.Values) == 1 && !explicit {
		return first.Type, nil
	}
	return tuple, nil
}

// parseNamedType parses one tuple element. An element without a label is
// named after its position.
func parseNamedType(p *Parser, index int) (*ast.NamedType, bool, error) {
	switch {
	case p.HasPattern(token.Anything, token.Colon):
		name := p.Advance()
		p.Advance()
		typ, err := p.ParseType(DefaultBP)
		if err != nil {
			return nil, false, err
		}
		return &ast.NamedType{Name: name.Text, Type: typ}, true, nil
	case p.HasPattern(token.Identifier, token.Identifier):
		tok := p.Peek(1)
		return nil, false, malformed(tok, "tuple element cannot have two labels, found %s after %q", describe(tok), p.Current().Text)
	}
	typ, err := p.ParseType(DefaultBP)
	if err != nil {
		return nil, false, err
	}
	return &ast.NamedType{Name: strconv.Itoa(index), Type: typ}, false, nil
}

// parseOptionalType handles T? and T??, which lexes as a single token.
func parseOptionalType(p *Parser, left ast.Type, _ BindingPower) (ast.Type, error) {
	if p.Advance().Kind == token.Defaulting {
		left = &ast.OptionalType{Underlying: left}
	}
	return &ast.OptionalType{Underlying: left}, nil
}

// parseFunctionType handles A -> R. The arrow is right-associative, so the
// result recurses one level below the arrow's own binding power.
func parseFunctionType(p *Parser, left ast.Type, _ BindingPower) (ast.Type, error) {
	p.Advance()
	result, err := p.ParseType(AssignmentBP - 1)
	if err != nil {
		return nil, err
	}
	fn := &ast.FunctionType{Result: result}
	if tuple, ok := left.(*ast.TupleType); ok {
		for _, v := range tuple.Values {
			fn.Parameters = append(fn.Parameters, v.Type)
		}
	} else {
		fn.Parameters = []ast.Type{left}
	}
	return fn, nil
}
