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
	"errors"
	"sync"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/token"
	"github.com/bufbuild/swiftcompile/tokencache"
)

// Grammar is the complete set of parse rules. It is immutable once
// [NewGrammar] returns.
type Grammar struct {
	exprs *Registry[ast.Expr]
	types *Registry[ast.Type]
	stmts *StmtRegistry
}

// NewGrammar builds the built-in grammar, then runs each extension in order
// so that it may register additional rules. Registering a role that is
// already taken panics, as does keeping a registry and modifying it after
// NewGrammar returns.
func NewGrammar(extensions ...func(*Grammar)) *Grammar {
	g := &Grammar{
		exprs: newRegistry[ast.Expr]("expression"),
		types: newRegistry[ast.Type]("type"),
		stmts: &StmtRegistry{},
	}
	registerExprs(g.exprs)
	registerTypes(g.types)
	registerStmts(g.stmts)
	for _, ext := range extensions {
		ext(g)
	}
	g.exprs.frozen = true
	g.types.frozen = true
	g.stmts.frozen = true
	return g
}

var defaultGrammar = sync.OnceValue(func() *Grammar {
	return NewGrammar()
})

// DefaultGrammar returns the shared built-in grammar.
func DefaultGrammar() *Grammar {
	return defaultGrammar()
}

// Exprs returns the expression registry.
func (g *Grammar) Exprs() *Registry[ast.Expr] { return g.exprs }

// Types returns the type registry.
func (g *Grammar) Types() *Registry[ast.Type] { return g.types }

// Statements returns the statement registry.
func (g *Grammar) Statements() *StmtRegistry { return g.stmts }

// Parse parses a whole token sequence, as produced by the lexer, into a
// block holding the top-level statements.
func (g *Grammar) Parse(tokens []token.Token) (*ast.BlockStmt, error) {
	p := g.NewParser(tokens)
	file := &ast.BlockStmt{}
	for !p.Done() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		file.Body = append(file.Body, stmt)
	}
	return file, nil
}

// Parse parses tokens with the default grammar.
func Parse(tokens []token.Token) (*ast.BlockStmt, error) {
	return DefaultGrammar().Parse(tokens)
}

// ParseFile tokenizes and parses the file at path with the default grammar.
// If cached is set, tokens come from the cache at [tokencache.DefaultPath],
// which is rewritten before ParseFile returns.
func ParseFile(path string, cached bool) (_ *ast.BlockStmt, err error) {
	cache := tokencache.PassThrough()
	if cached {
		if cache, err = tokencache.Open(tokencache.DefaultPath); err != nil {
			return nil, err
		}
	}
	defer func() {
		err = errors.Join(err, cache.Close())
	}()
	tokens, err := cache.Tokenize(path)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
