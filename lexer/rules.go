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

package lexer

import (
	"regexp"

	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/token"
)

// rule is a single lexical rule. The pattern is anchored at the cursor.
type rule struct {
	re     *regexp.Regexp
	handle func(l *lexer, match string) error
}

func pattern(expr string, handle func(*lexer, string) error) rule {
	return rule{re: regexp.MustCompile(`^(?:` + expr + `)`), handle: handle}
}

// punctuation lists every operator and punctuation literal. An entry must come
// before any shorter entry that is its prefix: ">=" before ">", "..." before
// "..<" before ".".
var punctuation = []struct {
	text string
	kind token.Kind
}{
	{"[", token.OpenBracket},
	{"]", token.CloseBracket},
	{"{", token.OpenBrace},
	{"}", token.CloseBrace},
	{"(", token.OpenParen},
	{")", token.CloseParen},
	{":", token.Colon},
	{";", token.Semicolon},
	{"...", token.DotDotDot},
	{"..<", token.Range},
	{".", token.Dot},
	{"??", token.Defaulting},
	{"?", token.Optional},
	{"->", token.Arrow},
	{">=", token.GreaterEquals},
	{"==", token.Equals},
	{"!=", token.NotEquals},
	{"<=", token.LessEquals},
	{"=", token.Assignment},
	{"<", token.Less},
	{">", token.Greater},
	{"!", token.Not},
	{"*=", token.StarEquals},
	{"*", token.Star},
	{",", token.Comma},
	{"&&", token.And},
	{"||", token.Or},
	{"+=", token.PlusEquals},
	{"-=", token.MinusEquals},
	{"/=", token.SlashEquals},
	{"%", token.Percent},
	{"+", token.Plus},
	{"-", token.Minus},
	{"/", token.Slash},
}

// rules is the lexer's rule table in priority order.
var rules = func() []rule {
	rules := []rule{
		pattern(`[^\S\r\n]+`, skip),
		pattern(`\r\n|\r|\n`, newline),
		pattern(`/\*[\s\S]*?\*/`, blockComment),
		pattern(`/\*`, unterminatedComment),
		pattern(`//[^\r\n]*`, skip),
		pattern(`"""[\s\S]*?"""`, blockString),
		pattern(`"[^"\\\r\n]*(?:\\.[^"\\\r\n]*)*"`, lineString),
		pattern(`[0-9]+(?:\.[0-9]+)?`, emitAs(token.Number)),
		pattern(`[a-zA-Z_][a-zA-Z0-9_]*`, word),
		pattern(`@[a-zA-Z0-9_]*`, emitAs(token.Annotation)),
		pattern(`#[a-zA-Z0-9_]*`, emitAs(token.Macro)),
	}
	for _, p := range punctuation {
		rules = append(rules, pattern(regexp.QuoteMeta(p.text), emitAs(p.kind)))
	}
	return rules
}()

func skip(l *lexer, match string) error {
	l.advance(match)
	return nil
}

func newline(l *lexer, match string) error {
	l.pos += len(match)
	l.line++
	l.col = 0
	return nil
}

func blockComment(l *lexer, match string) error {
	l.skipLines(match)
	return nil
}

func unterminatedComment(l *lexer, _ string) error {
	return l.errorf("%w: block comment never terminates", reporter.ErrLex)
}

func blockString(l *lexer, match string) error {
	l.emit(token.String, match[len(`"""`):len(match)-len(`"""`)])
	l.skipLines(match)
	return nil
}

func lineString(l *lexer, match string) error {
	l.emit(token.String, match[1:len(match)-1])
	l.advance(match)
	return nil
}

func word(l *lexer, match string) error {
	l.emit(token.Lookup(match), match)
	l.advance(match)
	return nil
}

func emitAs(kind token.Kind) func(*lexer, string) error {
	return func(l *lexer, match string) error {
		l.emit(kind, match)
		l.advance(match)
		return nil
	}
}
