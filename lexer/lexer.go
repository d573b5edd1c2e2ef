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

// Package lexer turns source text into a sequence of tokens.
//
// The lexer is a prioritized list of rules, each a regular expression anchored
// at the current position plus a handler. The first rule that matches wins;
// its handler advances the cursor and may emit a token. When no rule
// matches, lexing fails: there is no skip-and-continue mode.
package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/token"
)

// ErrNotUTF8 is wrapped by the error returned when the source is not valid
// UTF-8.
var ErrNotUTF8 = errors.New("source is not valid UTF-8")

// Func is the signature of [Lex], for callers that want to substitute or
// instrument the lexer.
type Func func(filename string, src []byte) ([]token.Token, error)

var _ Func = Lex

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// snippetLen is the maximum number of bytes of unmatched input quoted in a
// lex error.
const snippetLen = 16

// Lex performs lexical analysis on src, which was read from filename. The
// returned sequence always ends in a [token.EOF] token.
//
// The returned error is a [reporter.ErrorWithPos] wrapping [reporter.ErrLex]
// if some input matches no rule, or wraps [ErrNotUTF8] if src is not valid
// UTF-8.
func Lex(filename string, src []byte) ([]token.Token, error) {
	src = bytes.TrimPrefix(src, utf8Bom)
	if !utf8.Valid(src) {
		return nil, notUTF8(filename, src)
	}

	l := &lexer{
		file: filename,
		src:  string(src),
		line: 1,
	}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func notUTF8(filename string, src []byte) error {
	for off := 0; off < len(src); {
		r, n := utf8.DecodeRune(src[off:])
		if r == utf8.RuneError && n <= 1 {
			return fmt.Errorf("%s: %w: invalid byte 0x%02x at offset %d", filename, ErrNotUTF8, src[off], off)
		}
		off += n
	}
	return fmt.Errorf("%s: %w", filename, ErrNotUTF8)
}

type lexer struct {
	file string
	src  string

	pos  int // Byte offset of the cursor.
	line int // One-based line of the cursor.
	col  int // Grapheme clusters between the start of the line and the cursor.

	tokens []token.Token
}

func (l *lexer) run() error {
	for l.pos < len(l.src) {
		rest := l.src[l.pos:]
		matched := false
		for _, r := range rules {
			loc := r.re.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 || loc[1] == 0 {
				continue
			}
			if err := r.handle(l, rest[:loc[1]]); err != nil {
				return err
			}
			matched = true
			break
		}
		if !matched {
			return l.errorf("%w near %q", reporter.ErrLex, snippet(rest))
		}
	}
	l.emit(token.EOF, "")
	return nil
}

// column returns the one-based column of the cursor, counted in grapheme
// clusters since the start of the line.
func (l *lexer) column() int {
	return l.col + 1
}

// advance moves the cursor past text, which must not contain a line break.
func (l *lexer) advance(text string) {
	l.pos += len(text)
	l.col += uniseg.GraphemeClusterCount(text)
}

func (l *lexer) position() token.Position {
	return token.Position{Filename: l.file, Line: l.line, Col: l.column()}
}

// emit appends a token that starts at the cursor.
func (l *lexer) emit(kind token.Kind, text string) {
	l.tokens = append(l.tokens, token.Token{
		Kind: kind,
		Text: text,
		File: l.file,
		Line: l.line,
		Col:  l.column(),
	})
}

// skipLines advances the cursor past text, which may span several lines,
// keeping the line counter and line start in sync.
func (l *lexer) skipLines(text string) {
	n := strings.Count(text, "\n") + strings.Count(text, "\r") - strings.Count(text, "\r\n")
	if n == 0 {
		l.advance(text)
		return
	}
	l.pos += len(text)
	l.line += n
	l.col = uniseg.GraphemeClusterCount(text[strings.LastIndexAny(text, "\r\n")+1:])
}

func (l *lexer) errorf(format string, args ...any) error {
	return reporter.Errorf(l.position(), format, args...)
}

func snippet(rest string) string {
	if len(rest) <= snippetLen {
		return rest
	}
	cut := snippetLen
	for cut > 0 && !utf8.RuneStart(rest[cut]) {
		cut--
	}
	return rest[:cut] + "..."
}
