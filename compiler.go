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
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/lexer"
	"github.com/bufbuild/swiftcompile/parser"
	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/tokencache"
	"github.com/bufbuild/swiftcompile/walk"
)

// Compiler parses Swift source files into syntax trees.
type Compiler struct {
	// Resolves paths into source code, tokens or syntax trees. If nil, a
	// [SourceResolver] that reads from the file system is used.
	Resolver Resolver
	// The maximum number of files parsed at once. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error reporter. If unspecified a default reporter is used,
	// which fails the run on the first error.
	Reporter reporter.Reporter
	// Tokenizer cache for source results. If nil, every file is lexed. The
	// compiler never closes the cache.
	Cache *tokencache.Cache
	// Grammar to parse with. If nil, [parser.DefaultGrammar] is used.
	Grammar *parser.Grammar
}

// File is the result of parsing one file.
type File struct {
	Path string
	// AST is nil if the file failed to parse and the reporter chose to
	// continue.
	AST *ast.BlockStmt
}

// Imports returns the names of the modules the file imports, in source
// order, including imports nested in blocks.
func (f File) Imports() []string {
	if f.AST == nil {
		return nil
	}
	var imports []string
	_ = walk.Nodes(f.AST, func(n any) error {
		if imp, ok := n.(*ast.ImportStmt); ok {
			imports = append(imports, imp.Name)
		}
		return nil
	})
	return imports
}

// Parse parses the given files. The results are in the same order as paths;
// a path given more than once is parsed once.
//
// If the reporter swallows some errors, the files that failed have a nil AST
// and the returned error is [reporter.ErrInvalidSource].
func (c *Compiler) Parse(ctx context.Context, paths ...string) ([]File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := executor{
		c:       c,
		h:       reporter.NewHandler(c.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		cancel:  cancel,
		grammar: c.Grammar,
		results: map[string]*result{},
	}
	if e.grammar == nil {
		e.grammar = parser.DefaultGrammar()
	}

	results := make([]*result, len(paths))
	for i, path := range paths {
		results[i] = e.parse(ctx, path)
	}

	files := make([]File, len(paths))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			if err := e.h.ReporterError(); err != nil {
				return nil, err
			}
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		files[i] = File{Path: paths[i], AST: r.ast}
	}
	return files, e.h.Error()
}

type result struct {
	ready chan struct{}
	ast   *ast.BlockStmt
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(file *ast.BlockStmt) {
	r.ast = file
	close(r.ready)
}

type executor struct {
	c       *Compiler
	h       *reporter.Handler
	s       *semaphore.Weighted
	cancel  context.CancelFunc
	grammar *parser.Grammar

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) parse(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[path] = r
	go func() {
		e.doParse(ctx, path, r)
	}()
	return r
}

func (e *executor) doParse(ctx context.Context, path string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	file, err := e.parseFile(path)
	if err == nil {
		r.complete(file)
		return
	}
	// A positioned error may be swallowed by the reporter, in which case
	// the other files carry on.
	if err = e.h.HandleError(err); err != nil {
		e.cancel()
		r.fail(err)
		return
	}
	r.complete(nil)
}

func (e *executor) parseFile(path string) (*ast.BlockStmt, error) {
	resolver := e.c.Resolver
	if resolver == nil {
		resolver = &SourceResolver{}
	}
	sr, err := resolver.FindFileByPath(path)
	if err != nil {
		return nil, err
	}
	if c, ok := sr.Source.(io.Closer); ok {
		defer func() {
			_ = c.Close()
		}()
	}

	switch {
	case sr.AST != nil:
		return sr.AST, nil
	case sr.Tokens != nil:
		return e.grammar.Parse(sr.Tokens)
	case sr.Source == nil:
		return nil, fmt.Errorf("%s: resolver returned an empty result", path)
	}

	data, err := io.ReadAll(sr.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tokenize := lexer.Lex
	if e.c.Cache != nil {
		tokenize = e.c.Cache.TokenizeSource
	}
	tokens, err := tokenize(path, data)
	if err != nil {
		return nil, err
	}
	return e.grammar.Parse(tokens)
}
