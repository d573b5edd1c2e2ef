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
	"fmt"
	"slices"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/token"
)

// Parser is a cursor over a token sequence. Handlers registered with a
// [Grammar] receive the Parser and use it to consume tokens and to parse
// nested constructs.
type Parser struct {
	grammar *Grammar
	tokens  []token.Token
	pos     int
}

// NewParser returns a parser positioned at the first of tokens. If tokens
// does not end with an EOF token, one is added.
func (g *Grammar) NewParser(tokens []token.Token) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF, Line: 1, Col: 1}
		if n > 0 {
			last := tokens[n-1]
			eof = token.Token{Kind: token.EOF, File: last.File, Line: last.Line, Col: last.Col + len(last.Text)}
		}
		tokens = append(slices.Clip(tokens), eof)
	}
	return &Parser{grammar: g, tokens: tokens}
}

// Current returns the token at the cursor. At the end of input this is the
// EOF token.
func (p *Parser) Current() token.Token {
	return p.tokens[p.pos]
}

// Peek returns the token n positions past the cursor, or EOF.
func (p *Parser) Peek(n int) token.Token {
	return p.tokens[min(p.pos+n, len(p.tokens)-1)]
}

// Advance consumes and returns the current token. The cursor never moves
// past EOF.
func (p *Parser) Advance() token.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// Done returns whether the cursor is at EOF.
func (p *Parser) Done() bool {
	return p.Current().Kind == token.EOF
}

// Accept consumes the current token if it has the given kind.
func (p *Parser) Accept(kind token.Kind) bool {
	if p.Current().Kind != kind {
		return false
	}
	p.Advance()
	return true
}

// Expect consumes the current token, which must have the given kind.
func (p *Parser) Expect(kind token.Kind) (token.Token, error) {
	tok := p.Current()
	if tok.Kind != kind {
		return tok, malformed(tok, "expected %v, found %s", kind, describe(tok))
	}
	return p.Advance(), nil
}

// Mark is a saved cursor position.
type Mark int

// Mark returns the current position, for a later [Parser.Reset].
func (p *Parser) Mark() Mark {
	return Mark(p.pos)
}

// Reset moves the cursor back to m.
func (p *Parser) Reset(m Mark) {
	p.pos = int(m)
}

// Pred is a lookahead predicate over one token.
type Pred func(token.Token) bool

// Is matches tokens of any of the given kinds. The [token.Anything] kind
// matches any name-like token.
func Is(kinds ...token.Kind) Pred {
	return func(t token.Token) bool {
		for _, k := range kinds {
			if t.Kind == k || (k == token.Anything && token.CanBeName(t)) {
				return true
			}
		}
		return false
	}
}

// Matches returns whether the upcoming tokens satisfy preds, one predicate
// per token. No tokens are consumed.
func (p *Parser) Matches(preds ...Pred) bool {
	defer p.Reset(p.Mark())
	for _, pred := range preds {
		if p.Done() || !pred(p.Advance()) {
			return false
		}
	}
	return true
}

// HasPattern is [Parser.Matches] for a sequence of kinds, one per token.
func (p *Parser) HasPattern(kinds ...token.Kind) bool {
	preds := make([]Pred, len(kinds))
	for i, k := range kinds {
		preds[i] = Is(k)
	}
	return p.Matches(preds...)
}

// ParseExpr parses an expression whose operators all bind tighter than min.
func (p *Parser) ParseExpr(min BindingPower) (ast.Expr, error) {
	return climb(p, p.grammar.exprs, min)
}

// ParseType parses a type whose operators all bind tighter than min.
func (p *Parser) ParseType(min BindingPower) (ast.Type, error) {
	return climb(p, p.grammar.types, min)
}

// ParseStatement parses one statement and an optional ; after it.
func (p *Parser) ParseStatement() (ast.Stmt, error) {
	stmt, err := p.parseUnterminated()
	if err != nil {
		return nil, err
	}
	p.Accept(token.Semicolon)
	return stmt, nil
}

// parseUnterminated parses one statement, leaving any ; after it.
func (p *Parser) parseUnterminated() (ast.Stmt, error) {
	if fn := p.grammar.stmts.HandlerFor(p.Current().Kind); fn != nil {
		return fn(p)
	}
	expr, err := p.ParseExpr(DefaultBP)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}

// ParseBlock parses statements between braces.
func (p *Parser) ParseBlock() (*ast.BlockStmt, error) {
	if _, err := p.Expect(token.OpenBrace); err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{}
	for p.Current().Kind != token.CloseBrace && !p.Done() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}
	if _, err := p.Expect(token.CloseBrace); err != nil {
		return nil, err
	}
	return block, nil
}

// climb is the Pratt loop shared by the expression and type grammars.
func climb[N any](p *Parser, r *Registry[N], min BindingPower) (N, error) {
	var zero N
	tok := p.Current()
	nud := r.PrefixFor(tok.Kind)
	if nud == nil {
		return zero, reporter.Errorf(tok.Position(), "%w: %s cannot start with %s",
			reporter.ErrNoHandler, r.name, describe(tok))
	}
	left, err := nud(p)
	if err != nil {
		return zero, err
	}
	for !p.Done() {
		tok := p.Current()
		if r.PowerFor(tok.Kind) <= min {
			break
		}
		led := r.InfixFor(tok.Kind)
		if led == nil {
			return zero, reporter.Errorf(tok.Position(), "%w: %s cannot continue with %s",
				reporter.ErrNoHandler, r.name, describe(tok))
		}
		if left, err = led(p, left, min); err != nil {
			return zero, err
		}
	}
	return left, nil
}

func malformed(tok token.Token, format string, args ...any) error {
	return reporter.Errorf(tok.Position(), "%w: %s", reporter.ErrMalformed, fmt.Sprintf(format, args...))
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return tok.String()
}
