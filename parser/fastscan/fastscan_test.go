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

package fastscan

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/swiftcompile/reporter"
)

func TestScanForImports(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "simple", src: "import Foundation\nimport UIKit\n", want: []string{"Foundation", "UIKit"}},
		{name: "dotted", src: "import Darwin.C.stdio", want: []string{"Darwin.C.stdio"}},
		{name: "declaration", src: "import struct Foundation.Date\n", want: []string{"Foundation.Date"}},
		{name: "attribute", src: "@testable import App\n", want: []string{"App"}},
		{name: "semicolon", src: "let x = 1; import A\n", want: []string{"A"}},
		{name: "nested", src: "import A\nfunc f() {\n  import B\n}\nimport C\n", want: []string{"A", "C"}},
		{name: "mid_statement", src: "foo import A\n", want: nil},
		{name: "unbalanced", src: ")]\nimport A\n(\nimport B\n", want: []string{"A"}},
		{name: "dangling", src: "import\nimport A.\n", want: []string{"A"}},
		{name: "no_tokens", src: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ScanForImports("test.swift", strings.NewReader(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanForImportsErrors(t *testing.T) {
	t.Parallel()
	_, err := ScanForImports("test.swift", strings.NewReader("import $"))
	assert.ErrorIs(t, err, reporter.ErrLex)

	broken := errors.New("broken pipe")
	_, err = ScanForImports("test.swift", iotest.ErrReader(broken))
	assert.ErrorIs(t, err, broken)
}
