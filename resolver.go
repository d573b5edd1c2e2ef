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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/token"
)

// ErrNotFound is returned by resolvers that have nothing for a path.
var ErrNotFound = errors.New("file not found")

// Resolver is used by the compiler to find its inputs.
type Resolver interface {
	// FindFileByPath searches for information for the given file path. If
	// no result is available, it should return a non-nil error, such as
	// [ErrNotFound].
	FindFileByPath(path string) (SearchResult, error)
}

// SearchResult represents information about a file. Exactly one field should
// be set. If more than one is, the most processed one wins: AST, then
// Tokens, then Source.
type SearchResult struct {
	// Source code for the file. If it is also an [io.Closer], the compiler
	// closes it once it has been read.
	Source io.Reader
	// Tokens for the file, as produced by the lexer.
	Tokens []token.Token
	// Syntax tree for the file.
	AST *ast.BlockStmt
}

// ResolverFunc is a simple function type that implements [Resolver].
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

// FindFileByPath implements the [Resolver] interface.
func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver is a slice of resolvers, which are consulted in order
// until one can supply a result. If none of the constituent resolvers can
// supply a result, the error returned by the first resolver is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

// FindFileByPath implements the [Resolver] interface.
func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, ErrNotFound
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver can resolve file names by returning source code. It uses
// an optional list of search paths to locate source files, and an optional
// accessor to open them.
type SourceResolver struct {
	// Directories searched, in order, for a relative path. If empty, paths
	// are used as they are.
	SearchPaths []string
	// Opens a file. If nil, [os.Open] is used.
	Accessor func(path string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

// FindFileByPath implements the [Resolver] interface.
func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(r.SearchPaths) == 0 || filepath.IsAbs(path) {
		reader, err := r.open(path)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	var e error
	for _, dir := range r.SearchPaths {
		reader, err := r.open(filepath.Join(dir, path))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, e
}

func (r *SourceResolver) open(path string) (io.ReadCloser, error) {
	if r.Accessor == nil {
		return os.Open(path)
	}
	return r.Accessor(path)
}

// SourceAccessorFromMap returns a function that can be used as the Accessor
// field of a [SourceResolver], serving the contents of the given map. Keys
// are file paths; missing paths fail with an error wrapping
// [os.ErrNotExist].
func SourceAccessorFromMap(srcs map[string]string) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		src, ok := srcs[path]
		if !ok {
			return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
		}
		return io.NopCloser(strings.NewReader(src)), nil
	}
}
