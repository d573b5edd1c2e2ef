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

package walk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/lexer"
	"github.com/bufbuild/swiftcompile/parser"
	"github.com/bufbuild/swiftcompile/walk"
)

func parse(t *testing.T, src string) *ast.BlockStmt {
	t.Helper()
	tokens, err := lexer.Lex("test.swift", []byte(src))
	require.NoError(t, err)
	file, err := parser.Parse(tokens)
	require.NoError(t, err)
	return file
}

func TestNodesEnterAndExit(t *testing.T) {
	t.Parallel()
	file := parse(t, "let x: Int? = f(a + 1)")

	var events []string
	err := walk.NodesEnterAndExit(file,
		func(n any) error {
			events = append(events, fmt.Sprintf("enter %T", n))
			return nil
		},
		func(n any) error {
			events = append(events, fmt.Sprintf("exit %T", n))
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"enter *ast.BlockStmt",
		"enter *ast.VarDeclStmt",
		"enter *ast.OptionalType",
		"enter *ast.SymbolType",
		"exit *ast.SymbolType",
		"exit *ast.OptionalType",
		"enter *ast.CallExpr",
		"enter *ast.SymbolExpr",
		"exit *ast.SymbolExpr",
		"enter *ast.BinaryExpr",
		"enter *ast.SymbolExpr",
		"exit *ast.SymbolExpr",
		"enter *ast.IntegerExpr",
		"exit *ast.IntegerExpr",
		"exit *ast.BinaryExpr",
		"exit *ast.CallExpr",
		"exit *ast.VarDeclStmt",
		"exit *ast.BlockStmt",
	}, events)
}

func TestNodesVisitsPlaceholders(t *testing.T) {
	t.Parallel()
	file := parse(t, "func f(x: Int) { return }")
	var kinds []string
	require.NoError(t, walk.Nodes(file, func(n any) error {
		kinds = append(kinds, fmt.Sprintf("%T", n))
		return nil
	}))
	assert.Equal(t, []string{
		"*ast.BlockStmt",
		"*ast.FuncDeclStmt",
		"*ast.Parameter",
		"*ast.SymbolType",
		"*ast.NoneExpr",
		"*ast.UnknownType",
		"*ast.BlockStmt",
		"*ast.ReturnStmt",
		"*ast.NoneExpr",
	}, kinds)
}

func TestNodesStops(t *testing.T) {
	t.Parallel()
	file := parse(t, "import A\nimport B\nimport C")
	stop := errors.New("stop")
	var seen []string
	err := walk.Nodes(file, func(n any) error {
		if imp, ok := n.(*ast.ImportStmt); ok {
			seen = append(seen, imp.Name)
			if imp.Name == "B" {
				return stop
			}
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, seen)
}
