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

package swiftcompile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/lexer"
	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/token"
	"github.com/bufbuild/swiftcompile/tokencache"
)

func mapCompiler(srcs map[string]string) *Compiler {
	return &Compiler{
		Resolver: &SourceResolver{Accessor: SourceAccessorFromMap(srcs)},
	}
}

func TestParseOrderAndDedupe(t *testing.T) {
	t.Parallel()
	comp := mapCompiler(map[string]string{
		"a.swift": "let a = 1\n",
		"b.swift": "let b = \"two\"\n",
	})
	files, err := comp.Parse(context.Background(), "b.swift", "a.swift", "b.swift")
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "b.swift", files[0].Path)
	assert.Equal(t, "a.swift", files[1].Path)
	assert.Equal(t, "b.swift", files[2].Path)
	assert.Same(t, files[0].AST, files[2].AST)

	want := &ast.BlockStmt{Body: []ast.Stmt{
		&ast.VarDeclStmt{
			Name:     "a",
			Constant: true,
			Value:    &ast.IntegerExpr{Value: 1},
			Type:     &ast.SymbolType{Name: "Int"},
		},
	}}
	assert.Empty(t, cmp.Diff(want, files[1].AST))
}

func TestParseNoPaths(t *testing.T) {
	t.Parallel()
	files, err := (&Compiler{}).Parse(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestParseResolverResults(t *testing.T) {
	t.Parallel()
	tokens, err := lexer.Lex("tokens.swift", []byte("break\n"))
	require.NoError(t, err)
	tree := &ast.BlockStmt{Body: []ast.Stmt{&ast.ContinueStmt{}}}

	comp := &Compiler{
		Resolver: ResolverFunc(func(path string) (SearchResult, error) {
			switch path {
			case "tokens.swift":
				return SearchResult{Tokens: tokens}, nil
			case "ast.swift":
				// The tree wins over the unparsable source.
				return SearchResult{AST: tree, Source: strings.NewReader("let = ")}, nil
			case "empty.swift":
				return SearchResult{}, nil
			}
			return SearchResult{}, ErrNotFound
		}),
	}
	ctx := context.Background()

	files, err := comp.Parse(ctx, "tokens.swift", "ast.swift")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(&ast.BlockStmt{Body: []ast.Stmt{&ast.BreakStmt{}}}, files[0].AST))
	assert.Same(t, tree, files[1].AST)

	_, err = comp.Parse(ctx, "empty.swift")
	assert.ErrorContains(t, err, "empty.swift: resolver returned an empty result")

	_, err = comp.Parse(ctx, "missing.swift")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseDefaultReporterAborts(t *testing.T) {
	t.Parallel()
	comp := mapCompiler(map[string]string{
		"bad.swift": "let = 1\n",
	})
	files, err := comp.Parse(context.Background(), "bad.swift")
	assert.Nil(t, files)
	require.ErrorIs(t, err, reporter.ErrMalformed)
	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, token.Position{Filename: "bad.swift", Line: 1, Col: 5}, ewp.GetPosition())
}

func TestParseSwallowingReporter(t *testing.T) {
	t.Parallel()
	var (
		mu       sync.Mutex
		reported []string
	)
	comp := mapCompiler(map[string]string{
		"good.swift": "import Foundation\n",
		"bad.swift":  "let = 1\n",
		"lex.swift":  "var x = $\n",
	})
	comp.Reporter = reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		mu.Lock()
		defer mu.Unlock()
		reported = append(reported, err.GetPosition().Filename)
		return nil
	})

	files, err := comp.Parse(context.Background(), "good.swift", "bad.swift", "lex.swift")
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	require.Len(t, files, 3)
	assert.NotNil(t, files[0].AST)
	assert.Nil(t, files[1].AST)
	assert.Nil(t, files[2].AST)
	assert.ElementsMatch(t, []string{"bad.swift", "lex.swift"}, reported)
}

func TestParseIOErrorsAreNotSwallowed(t *testing.T) {
	t.Parallel()
	comp := mapCompiler(map[string]string{})
	comp.Reporter = reporter.NewReporter(func(reporter.ErrorWithPos) error {
		return nil
	})
	_, err := comp.Parse(context.Background(), "missing.swift")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseUsesCache(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	countingLex := func(filename string, src []byte) ([]token.Token, error) {
		calls.Add(1)
		return lexer.Lex(filename, src)
	}
	cache, err := tokencache.Open(filepath.Join(t.TempDir(), tokencache.DefaultPath), tokencache.WithLexer(countingLex))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, cache.Close())
	})

	comp := mapCompiler(map[string]string{
		"main.swift": "func main() {\n  print(1)\n}\n",
	})
	comp.Cache = cache
	first, err := comp.Parse(context.Background(), "main.swift")
	require.NoError(t, err)
	second, err := comp.Parse(context.Background(), "main.swift")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, int32(1), calls.Load())
}

func TestParseContextCanceled(t *testing.T) {
	t.Parallel()
	started := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	comp := &Compiler{
		Resolver: ResolverFunc(func(string) (SearchResult, error) {
			close(started)
			<-release
			return SearchResult{}, errors.New("released")
		}),
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()
	files, err := comp.Parse(ctx, "slow.swift")
	assert.Nil(t, files)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileImports(t *testing.T) {
	t.Parallel()
	comp := mapCompiler(map[string]string{
		"main.swift": "import Foundation\nif ready {\n  import UIKit.View\n}\nlet x = 1\n",
	})
	files, err := comp.Parse(context.Background(), "main.swift")
	require.NoError(t, err)
	assert.Equal(t, []string{"Foundation", "UIKit.View"}, files[0].Imports())
	assert.Nil(t, File{Path: "failed.swift"}.Imports())
}
