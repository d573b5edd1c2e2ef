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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/token"
	"github.com/bufbuild/swiftcompile/tokencache"
)

func TestRegistryDuplicates(t *testing.T) {
	t.Parallel()
	nud := func(p *Parser) (ast.Expr, error) { return parseSymbol(p) }
	led := func(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) { return left, nil }

	r := newRegistry[ast.Expr]("test")
	r.Prefix(token.Identifier, nud)
	r.Infix(token.Plus, AdditiveBP, led)
	// Roles are independent: one kind may be both prefix and infix.
	r.Prefix(token.Plus, nud)

	assert.Panics(t, func() { r.Prefix(token.Identifier, nud) })
	assert.Panics(t, func() { r.Infix(token.Plus, AdditiveBP, led) })
	assert.Panics(t, func() { r.Power(token.Plus, MemberBP) })
	assert.Panics(t, func() { r.Infix(token.Minus, DefaultBP, led) })

	var stmts StmtRegistry
	stmts.Register(token.Var, parseVarDecl)
	assert.Panics(t, func() { stmts.Register(token.Var, parseVarDecl) })
}

func TestRegistryLookups(t *testing.T) {
	t.Parallel()
	g := DefaultGrammar()
	assert.Equal(t, MultiplicativeBP, g.Exprs().PowerFor(token.Star))
	assert.Equal(t, DefaultBP, g.Exprs().PowerFor(token.Identifier))
	assert.Equal(t, DefaultBP, g.Exprs().PowerFor(token.OpenBrace))
	assert.NotNil(t, g.Exprs().PrefixFor(token.Minus))
	assert.NotNil(t, g.Exprs().InfixFor(token.Minus))
	assert.Nil(t, g.Exprs().InfixFor(token.Not))
	assert.Nil(t, g.Types().PrefixFor(token.Number))
	assert.Equal(t, MemberBP, g.Types().PowerFor(token.Optional))
	assert.NotNil(t, g.Statements().HandlerFor(token.Public))
	assert.Nil(t, g.Statements().HandlerFor(token.Identifier))
}

func TestGrammarFrozen(t *testing.T) {
	t.Parallel()
	g := NewGrammar()
	assert.Panics(t, func() {
		g.Exprs().Prefix(token.Macro, parseSymbol)
	})
	assert.Panics(t, func() {
		g.Types().Power(token.Star, MultiplicativeBP)
	})
	assert.Panics(t, func() {
		g.Statements().Register(token.Defer, parseBlockStmt)
	})
	// Built-in rules cannot be registered again by an extension.
	assert.Panics(t, func() {
		NewGrammar(func(g *Grammar) {
			g.Exprs().Prefix(token.Number, parseNumber)
		})
	})
}

func TestGrammarExtension(t *testing.T) {
	t.Parallel()
	g := NewGrammar(func(g *Grammar) {
		g.Exprs().Prefix(token.Macro, parseSymbol)
		g.Exprs().Power(token.Arrow, AssignmentBP)
		g.Statements().Register(token.Defer, func(p *Parser) (ast.Stmt, error) {
			p.Advance()
			return p.ParseBlock()
		})
	})

	file, err := g.Parse(lex(t, "#line\ndefer { close() }"))
	require.NoError(t, err)
	want := []ast.Stmt{
		&ast.ExpressionStmt{Expression: sym("#line")},
		&ast.BlockStmt{Body: []ast.Stmt{
			&ast.ExpressionStmt{Expression: &ast.CallExpr{Method: sym("close")}},
		}},
	}
	assert.Empty(t, cmp.Diff(want, file.Body))

	// A kind with a binding power but no infix handler cannot follow an
	// operand.
	_, err = g.Parse(lex(t, "a -> b"))
	require.ErrorIs(t, err, reporter.ErrNoHandler)
	assert.Contains(t, err.Error(), "expression cannot continue with Arrow")

	// The default grammar is unaffected.
	_, err = Parse(lex(t, "#line"))
	require.ErrorIs(t, err, reporter.ErrNoHandler)
}

func TestDefaultGrammarShared(t *testing.T) {
	t.Parallel()
	tokens := lex(t, "let x = [1, 2, 3]\nfor v in x { print(v) }")
	var grp errgroup.Group
	grammars := make([]*Grammar, 16)
	for i := range grammars {
		grp.Go(func() error {
			grammars[i] = DefaultGrammar()
			_, err := grammars[i].Parse(tokens)
			return err
		})
	}
	require.NoError(t, grp.Wait())
	for _, g := range grammars {
		assert.Same(t, grammars[0], g)
	}
}

func TestBindingPowerString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "default", DefaultBP.String())
	assert.Equal(t, "member", MemberBP.String())
	assert.Equal(t, "BindingPower(42)", BindingPower(42).String())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "main.swift")
	require.NoError(t, os.WriteFile(path, []byte("import Foundation\nlet greeting = \"hi\""), 0o600))

	for _, cached := range []bool{false, true, true} {
		file, err := ParseFile(path, cached)
		require.NoError(t, err)
		require.Len(t, file.Body, 2)
		assert.Equal(t, &ast.ImportStmt{Name: "Foundation"}, file.Body[0])
	}

	cache, err := tokencache.Open(tokencache.DefaultPath)
	require.NoError(t, err)
	entries, err := cache.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].Path)
	require.NoError(t, cache.Close())

	_, err = ParseFile(filepath.Join(dir, "missing.swift"), false)
	require.ErrorIs(t, err, os.ErrNotExist)
}
