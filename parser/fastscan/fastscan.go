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

// Package fastscan finds the imports of a Swift file from its tokens,
// without parsing it. It tolerates source the parser would reject.
package fastscan

import (
	"io"
	"strings"

	"github.com/bufbuild/swiftcompile/lexer"
	"github.com/bufbuild/swiftcompile/token"
)

var closeSymbol = map[token.Kind]token.Kind{
	token.OpenParen:   token.CloseParen,
	token.OpenBrace:   token.CloseBrace,
	token.OpenBracket: token.CloseBracket,
}

// Kinds that may follow import to name a single declaration, as in
// import struct Foundation.Date.
var importKinds = map[token.Kind]bool{
	token.TypeAlias: true,
	token.Struct:    true,
	token.Class:     true,
	token.Enum:      true,
	token.Protocol:  true,
	token.Let:       true,
	token.Var:       true,
	token.Func:      true,
}

// ScanForImports reads Swift source from r and returns the modules imported
// at the top level of the file, in source order. It returns an error if r
// fails or the source cannot be lexed.
func ScanForImports(filename string, r io.Reader) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.Lex(filename, src)
	if err != nil {
		return nil, err
	}
	return ScanTokens(tokens), nil
}

// ScanTokens is like [ScanForImports] for an already lexed file.
//
// An import counts when it starts a statement outside of any bracket: it is
// the first token of the file or of its line, or follows a semicolon or an
// attribute such as @testable.
func ScanTokens(tokens []token.Token) []string {
	var imports []string

	// current stack of open blocks, as the closing kinds still expected
	var contextStack []token.Kind
	var currentImport []string // if non-nil, reading an import path

	prevLine := 0
	statementStart := true
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		if tok.Line != prevLine {
			statementStart = true
		}
		prevLine = tok.Line

		if currentImport != nil {
			switch {
			case len(currentImport) == 0 && importKinds[tok.Kind]:
				continue
			case tok.Kind == token.Identifier && (len(currentImport) == 0 || tokens[i-1].Kind == token.Dot):
				currentImport = append(currentImport, tok.Text)
				continue
			case tok.Kind == token.Dot && len(currentImport) > 0:
				continue
			}
			if len(currentImport) > 0 {
				imports = append(imports, strings.Join(currentImport, "."))
			}
			currentImport = nil
		}

		start := statementStart
		statementStart = tok.Kind == token.Semicolon || (start && tok.Kind == token.Annotation)

		switch tok.Kind {
		case token.OpenParen, token.OpenBrace, token.OpenBracket:
			contextStack = append(contextStack, closeSymbol[tok.Kind])
		case token.CloseParen, token.CloseBrace, token.CloseBracket:
			if len(contextStack) > 0 && contextStack[len(contextStack)-1] == tok.Kind {
				contextStack = contextStack[:len(contextStack)-1]
			}
		case token.Import:
			if start && len(contextStack) == 0 {
				currentImport = []string{}
			}
		}
	}
	if len(currentImport) > 0 {
		imports = append(imports, strings.Join(currentImport, "."))
	}
	return imports
}
