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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSource(t *testing.T, sr SearchResult) string {
	t.Helper()
	require.NotNil(t, sr.Source)
	data, err := io.ReadAll(sr.Source)
	require.NoError(t, err)
	if c, ok := sr.Source.(io.Closer); ok {
		require.NoError(t, c.Close())
	}
	return string(data)
}

func TestSourceResolverSearchPaths(t *testing.T) {
	t.Parallel()
	accessor := SourceAccessorFromMap(map[string]string{
		"vendor/a.swift": "vendored",
		"src/a.swift":    "source",
		"src/b.swift":    "only in src",
	})
	res := &SourceResolver{SearchPaths: []string{"vendor", "src"}, Accessor: accessor}

	sr, err := res.FindFileByPath("a.swift")
	require.NoError(t, err)
	assert.Equal(t, "vendored", readSource(t, sr))

	sr, err = res.FindFileByPath("b.swift")
	require.NoError(t, err)
	assert.Equal(t, "only in src", readSource(t, sr))

	_, err = res.FindFileByPath("c.swift")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSourceResolverStopsOnOtherErrors(t *testing.T) {
	t.Parallel()
	denied := errors.New("permission denied")
	res := &SourceResolver{
		SearchPaths: []string{"first", "second"},
		Accessor: func(string) (io.ReadCloser, error) {
			return nil, denied
		},
	}
	_, err := res.FindFileByPath("a.swift")
	assert.ErrorIs(t, err, denied)
}

func TestSourceResolverFileSystem(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.swift")
	require.NoError(t, os.WriteFile(path, []byte("print(1)\n"), 0o600))

	sr, err := (&SourceResolver{}).FindFileByPath(path)
	require.NoError(t, err)
	assert.Equal(t, "print(1)\n", readSource(t, sr))

	// Absolute paths skip the search paths.
	sr, err = (&SourceResolver{SearchPaths: []string{"nowhere"}}).FindFileByPath(path)
	require.NoError(t, err)
	assert.Equal(t, "print(1)\n", readSource(t, sr))
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()
	first := errors.New("first")
	failing := ResolverFunc(func(string) (SearchResult, error) {
		return SearchResult{}, first
	})
	serving := &SourceResolver{Accessor: SourceAccessorFromMap(map[string]string{
		"a.swift": "a",
	})}

	sr, err := CompositeResolver{failing, serving}.FindFileByPath("a.swift")
	require.NoError(t, err)
	assert.Equal(t, "a", readSource(t, sr))

	_, err = CompositeResolver{failing, serving}.FindFileByPath("b.swift")
	assert.ErrorIs(t, err, first)

	_, err = CompositeResolver{}.FindFileByPath("a.swift")
	assert.ErrorIs(t, err, ErrNotFound)
}
