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

// reserved maps the exact text of each reserved word to its kind.
var reserved = map[string]Kind{
	"lazy":        Lazy,
	"unowned":     Unowned,
	"weak":        Weak,
	"var":         Var,
	"let":         Let,
	"import":      Import,
	"open":        Open,
	"public":      Public,
	"internal":    Internal,
	"private":     Private,
	"fileprivate": FilePrivate,
	"final":       Final,
	"static":      Static,
	"class":       Class,
	"protocol":    Protocol,
	"actor":       Actor,
	"struct":      Struct,
	"enum":        Enum,
	"typealias":   TypeAlias,
	"extension":   Extension,
	"func":        Func,
	"init":        Init,
	"deinit":      Deinit,
	"if":          If,
	"else":        Else,
	"switch":      Switch,
	"case":        Case,
	"default":     Default,
	"break":       Break,
	"continue":    Continue,
	"do":          Do,
	"try":         Try,
	"catch":       Catch,
	"throw":       Throw,
	"throws":      Throws,
	"rethrows":    Rethrows,
	"guard":       Guard,
	"repeat":      Repeat,
	"while":       While,
	"for":         For,
	"fallthrough": Fallthrough,
	"defer":       Defer,
	"return":      Return,
	"in":          In,
	"where":       Where,
	"any":         Any,
	"some":        Some,
	"as":          As,
	"is":          Is,
	"nil":         Nil,
	"true":        True,
	"false":       False,
	"self":        Self,
	"Self":        TypeSelf,
	"Type":        Type,
	"super":       Super,
}

// Lookup classifies an identifier-shaped word: it returns the keyword kind
// for a reserved word, and [Identifier] for anything else.
func Lookup(word string) Kind {
	if k, ok := reserved[word]; ok {
		return k
	}
	return Identifier
}

// IsReserved returns whether word is a reserved word.
func IsReserved(word string) bool {
	_, ok := reserved[word]
	return ok
}

// CanBeName returns whether t may be used where a name is expected, such as
// a tuple element label. Reserved words and identifiers qualify.
func CanBeName(t Token) bool {
	return t.Kind == Identifier || t.Kind.IsKeyword()
}
