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

// Kind identifies what kind of token a particular [Token] is.
//
// Every token the lexer produces has one of these kinds, except [Anything],
// which only appears in lookahead patterns.
type Kind uint8

const (
	Unknown Kind = iota // The zero kind; never produced by the lexer.

	// Storage and binding.
	Lazy
	Unowned
	Weak
	Var
	Let
	Identifier
	Import

	// Access control.
	Open
	Public
	Internal
	Private
	FilePrivate
	Final
	Static

	// Type declarations.
	Class
	Protocol
	Actor
	Struct
	Enum
	TypeAlias
	Extension

	Func
	Init
	Deinit

	// Control flow.
	If
	Else
	Switch
	Case
	Default
	Break
	Continue
	Do
	Try
	Catch
	Throw
	Throws
	Rethrows
	Guard
	Repeat
	While
	For
	Fallthrough
	Defer
	Return

	In
	Where
	Any
	Some
	As
	Is

	// Literal-like and predeclared words.
	Nil
	True
	False
	Self
	TypeSelf
	Type
	Super

	// Punctuation.
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
	Colon
	Semicolon
	Dot
	DotDotDot
	Range
	Optional
	Defaulting
	Arrow
	Assignment
	PlusEquals
	MinusEquals
	StarEquals
	SlashEquals
	Plus
	Minus
	Star
	Slash
	Percent
	Comma

	// Comparisons and logic.
	Equals
	NotEquals
	Greater
	Less
	GreaterEquals
	LessEquals
	Not
	And
	Or

	// Literal classes.
	Annotation
	Macro
	String
	Number

	EOF

	// Anything matches any name-like token in a lookahead pattern. See
	// [CanBeName].
	Anything

	kindCount // Total number of kinds.
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}

// GoString implements [fmt.GoStringer].
func (k Kind) GoString() string {
	return "token." + k.String()
}

// IsLexed returns whether the lexer can produce this kind. It is false for
// [Unknown], [Anything] and values outside the enum.
func (k Kind) IsLexed() bool {
	return k > Unknown && k < Anything
}

// IsKeyword returns whether this kind is produced from a reserved word.
func (k Kind) IsKeyword() bool {
	return k.properties()&word != 0
}

// IsPunct returns whether this kind is punctuation or an operator.
func (k Kind) IsPunct() bool {
	return k.properties()&punct != 0
}

// IsModifier returns whether this kind is an access-control or storage
// modifier that may prefix a declaration.
func (k Kind) IsModifier() bool {
	return k.properties()&modifier != 0
}

// IsLiteral returns whether this kind is a literal class, such as a number or
// a string.
func (k Kind) IsLiteral() bool {
	return k.properties()&literal != 0
}

type property uint8

const (
	word property = 1 << iota
	punct
	literal
	modifier
)

func (k Kind) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of kind properties, stored as bitsets.
var properties = [kindCount]property{
	Lazy:    word | modifier,
	Unowned: word | modifier,
	Weak:    word | modifier,
	Var:     word,
	Let:     word,
	Import:  word,

	Open:        word | modifier,
	Public:      word | modifier,
	Internal:    word | modifier,
	Private:     word | modifier,
	FilePrivate: word | modifier,
	Final:       word | modifier,
	Static:      word | modifier,

	Class: word, Protocol: word, Actor: word, Struct: word, Enum: word,
	TypeAlias: word, Extension: word, Func: word, Init: word, Deinit: word,

	If: word, Else: word, Switch: word, Case: word, Default: word,
	Break: word, Continue: word, Do: word, Try: word, Catch: word,
	Throw: word, Throws: word, Rethrows: word, Guard: word, Repeat: word,
	While: word, For: word, Fallthrough: word, Defer: word, Return: word,
	In: word, Where: word, Any: word, Some: word, As: word, Is: word,

	Nil: word, True: word, False: word, Self: word, TypeSelf: word,
	Type: word, Super: word,

	OpenParen: punct, CloseParen: punct, OpenBracket: punct,
	CloseBracket: punct, OpenBrace: punct, CloseBrace: punct,
	Colon: punct, Semicolon: punct, Dot: punct, DotDotDot: punct,
	Range: punct, Optional: punct, Defaulting: punct, Arrow: punct,
	Assignment: punct, PlusEquals: punct, MinusEquals: punct,
	StarEquals: punct, SlashEquals: punct, Plus: punct, Minus: punct,
	Star: punct, Slash: punct, Percent: punct, Comma: punct,
	Equals: punct, NotEquals: punct, Greater: punct, Less: punct,
	GreaterEquals: punct, LessEquals: punct, Not: punct, And: punct, Or: punct,

	Identifier: literal,
	Annotation: literal,
	Macro:      literal,
	String:     literal,
	Number:     literal,
}

var kindNames = [kindCount]string{
	Unknown:    "Unknown",
	Lazy:       "Lazy",
	Unowned:    "Unowned",
	Weak:       "Weak",
	Var:        "Var",
	Let:        "Let",
	Identifier: "Identifier",
	Import:     "Import",

	Open:        "Open",
	Public:      "Public",
	Internal:    "Internal",
	Private:     "Private",
	FilePrivate: "FilePrivate",
	Final:       "Final",
	Static:      "Static",

	Class:     "Class",
	Protocol:  "Protocol",
	Actor:     "Actor",
	Struct:    "Struct",
	Enum:      "Enum",
	TypeAlias: "TypeAlias",
	Extension: "Extension",
	Func:      "Func",
	Init:      "Init",
	Deinit:    "Deinit",

	If:          "If",
	Else:        "Else",
	Switch:      "Switch",
	Case:        "Case",
	Default:     "Default",
	Break:       "Break",
	Continue:    "Continue",
	Do:          "Do",
	Try:         "Try",
	Catch:       "Catch",
	Throw:       "Throw",
	Throws:      "Throws",
	Rethrows:    "Rethrows",
	Guard:       "Guard",
	Repeat:      "Repeat",
	While:       "While",
	For:         "For",
	Fallthrough: "Fallthrough",
	Defer:       "Defer",
	Return:      "Return",
	In:          "In",
	Where:       "Where",
	Any:         "Any",
	Some:        "Some",
	As:          "As",
	Is:          "Is",

	Nil:      "Nil",
	True:     "True",
	False:    "False",
	Self:     "Self",
	TypeSelf: "TypeSelf",
	Type:     "Type",
	Super:    "Super",

	OpenParen:     "OpenParen",
	CloseParen:    "CloseParen",
	OpenBracket:   "OpenBracket",
	CloseBracket:  "CloseBracket",
	OpenBrace:     "OpenBrace",
	CloseBrace:    "CloseBrace",
	Colon:         "Colon",
	Semicolon:     "Semicolon",
	Dot:           "Dot",
	DotDotDot:     "DotDotDot",
	Range:         "Range",
	Optional:      "Optional",
	Defaulting:    "Defaulting",
	Arrow:         "Arrow",
	Assignment:    "Assignment",
	PlusEquals:    "PlusEquals",
	MinusEquals:   "MinusEquals",
	StarEquals:    "StarEquals",
	SlashEquals:   "SlashEquals",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Comma:         "Comma",
	Equals:        "Equals",
	NotEquals:     "NotEquals",
	Greater:       "Greater",
	Less:          "Less",
	GreaterEquals: "GreaterEquals",
	LessEquals:    "LessEquals",
	Not:           "Not",
	And:           "And",
	Or:            "Or",

	Annotation: "Annotation",
	Macro:      "Macro",
	String:     "String",
	Number:     "Number",
	EOF:        "EOF",
	Anything:   "Anything",
}
