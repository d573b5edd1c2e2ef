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

package token

import "fmt"

// Token is a single lexical token. Tokens are immutable once produced; the
// parser only ever reads them.
type Token struct {
	Kind Kind
	// The literal text of the token. For strings this excludes the quote
	// delimiters; no escape processing is performed.
	Text string
	// The file the token was read from.
	File string
	// One-based line and column of the first character of the token. Columns
	// are counted in grapheme clusters.
	Line, Col int
}

// Position returns the source position of the start of this token.
func (t Token) Position() Position {
	return Position{Filename: t.File, Line: t.Line, Col: t.Col}
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%v %q", t.Kind, t.Text)
}

// Position identifies a location in a source file.
type Position struct {
	Filename  string
	Line, Col int
}

// String implements [fmt.Stringer].
func (pos Position) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}
