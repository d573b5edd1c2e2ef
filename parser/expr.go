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
	"strings"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/token"
)

func registerExprs(r *Registry[ast.Expr]) {
	r.Prefix(token.Number, parseNumber)
	r.Prefix(token.String, parseString)
	for _, kind := range []token.Kind{token.Identifier, token.Self, token.TypeSelf, token.Super} {
		r.Prefix(kind, parseSymbol)
	}
	r.Prefix(token.True, parseBool)
	r.Prefix(token.False, parseBool)
	r.Prefix(token.Nil, parseNil)
	r.Prefix(token.OpenParen, parseGroup)
	r.Prefix(token.OpenBracket, parseArray)
	r.Prefix(token.Minus, parsePrefix)
	r.Prefix(token.Not, parsePrefix)

	infix := func(bp BindingPower, fn LedFunc[ast.Expr], kinds ...token.Kind) {
		for _, kind := range kinds {
			r.Infix(kind, bp, fn)
		}
	}
	infix(AssignmentBP, parseAssignment,
		token.Assignment, token.PlusEquals, token.MinusEquals, token.StarEquals, token.SlashEquals)
	infix(LogicalBP, parseBinary, token.Defaulting, token.And, token.Or)
	infix(RelationalBP, parseBinary,
		token.Equals, token.NotEquals, token.Less, token.Greater, token.LessEquals, token.GreaterEquals)
	infix(RelationalBP, parseRange, token.DotDotDot, token.Range)
	infix(RelationalBP, parseCast, token.Is, token.As)
	infix(AdditiveBP, parseBinary, token.Plus, token.Minus)
	infix(MultiplicativeBP, parseBinary, token.Star, token.Slash, token.Percent)
	infix(CallBP, parseCall, token.OpenParen)
	infix(MemberBP, parseMember, token.Dot)
	infix(MemberBP, parseComputed, token.OpenBracket)
}

func parseNumber(p *Parser) (ast.Expr, error) {
	tok := p.Advance()
	if strings.Contains(tok.Text, ".") {
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, malformed(tok, "invalid floating-point literal %q: %v", tok.Text, err)
		}
		return &ast.FloatExpr{Value: v}, nil
	}
	v, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return nil, malformed(tok, "invalid integer literal %q: %v", tok.Text, err)
	}
	return &ast.IntegerExpr{Value: v}, nil
}

func parseString(p *Parser) (ast.Expr, error) {
	return &ast.StringExpr{Value: p.Advance().Text}, nil
}

func parseSymbol(p *Parser) (ast.Expr, error) {
	return &ast.SymbolExpr{Name: p.Advance().Text}, nil
}

func parseBool(p *Parser) (ast.Expr, error) {
	return &ast.BoolExpr{Value: p.Advance().Kind == token.True}, nil
}

func parseNil(p *Parser) (ast.Expr, error) {
	p.Advance()
	return &ast.NilExpr{}, nil
}

// parseGroup handles (e), which is just e, and tuples (), (a, b).
func parseGroup(p *Parser) (ast.Expr, error) {
	p.Advance()
	if p.Accept(token.CloseParen) {
		return &ast.TupleExpr{}, nil
	}
	first, err := p.ParseExpr(DefaultBP)
	if err != nil {
		return nil, err
	}
	if p.Current().Kind != token.Comma {
		if _, err := p.Expect(token.CloseParen); err != nil {
			return nil, err
		}
		return first, nil
	}
	tuple := &ast.TupleExpr{Elements: []ast.Expr{first}}
	for p.Accept(token.Comma) {
		elem, err := p.ParseExpr(CommaBP)
		if err != nil {
			return nil, err
		}
		tuple.Elements = append(tuple.Elements, elem)
	}
	if _, err := p.Expect(token.CloseParen); err != nil {
		return nil, err
	}
	return tuple, nil
}

func parseArray(p *Parser) (ast.Expr, error) {
	p.Advance()
	array := &ast.ArrayLiteralExpr{}
	for p.Current().Kind != token.CloseBracket {
		elem, err := p.ParseExpr(CommaBP)
		if err != nil {
			return nil, err
		}
		array.Contents = append(array.Contents, elem)
		if !p.Accept(token.Comma) {
			break
		}
	}
	if _, err := p.Expect(token.CloseBracket); err != nil {
		return nil, err
	}
	return array, nil
}

func parsePrefix(p *Parser) (ast.Expr, error) {
	op := p.Advance()
	right, err := p.ParseExpr(UnaryBP)
	if err != nil {
		return nil, err
	}
	return &ast.PrefixExpr{Operator: op, Right: right}, nil
}

// operand parses the right-hand side of a left-associative operator, which
// recurses at the operator's own binding power.
func operand(p *Parser, op token.Token) (ast.Expr, error) {
	return p.ParseExpr(p.grammar.exprs.PowerFor(op.Kind))
}

func parseBinary(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	op := p.Advance()
	right, err := operand(p, op)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, Operator: op, Right: right}, nil
}

func parseAssignment(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	op := p.Advance()
	value, err := operand(p, op)
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentExpr{Assignee: left, Operator: op, Value: value}, nil
}

func parseRange(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	op := p.Advance()
	upper, err := operand(p, op)
	if err != nil {
		return nil, err
	}
	return &ast.RangeExpr{Lower: left, Operator: op, Upper: upper}, nil
}

// parseCast handles x is T and x as T. The type may not contain a function
// arrow, which would be ambiguous with the rest of the expression.
func parseCast(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	op := p.Advance()
	typ, err := p.ParseType(AssignmentBP)
	if err != nil {
		return nil, err
	}
	return &ast.CastExpr{Value: left, Operator: op, Type: typ}, nil
}

func parseCall(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	p.Advance()
	call := &ast.CallExpr{Method: left}
	for p.Current().Kind != token.CloseParen {
		arg := &ast.Argument{}
		if p.HasPattern(token.Anything, token.Colon) {
			arg.Label = p.Advance().Text
			p.Advance()
		}
		value, err := p.ParseExpr(CommaBP)
		if err != nil {
			return nil, err
		}
		arg.Value = value
		call.Arguments = append(call.Arguments, arg)
		if !p.Accept(token.Comma) {
			break
		}
	}
	if _, err := p.Expect(token.CloseParen); err != nil {
		return nil, err
	}
	return call, nil
}

func parseMember(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	p.Advance()
	name := p.Advance()
	if !token.CanBeName(name) && name.Kind != token.Number {
		return nil, malformed(name, "expected a member name after '.', found %s", describe(name))
	}
	return &ast.MemberExpr{Member: left, Property: name.Text}, nil
}

func parseComputed(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	p.Advance()
	index, err := p.ParseExpr(DefaultBP)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.CloseBracket); err != nil {
		return nil, err
	}
	return &ast.ComputedExpr{Member: left, Property: index}, nil
}
