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

// Package parser turns a token sequence into an AST.
//
// Expressions and types are parsed by a single precedence-climbing (Pratt)
// engine driven by per-grammar tables: for every token kind, a [Registry]
// may hold a prefix handler, an infix handler and a binding power.
// Statements are dispatched through a one-level table keyed by their leading
// token, falling back to expression statements.
//
// A [Grammar] holds the three tables. It is built once, by [NewGrammar], and
// cannot be changed afterwards, so one Grammar may be shared by any number of
// concurrent parses. [DefaultGrammar] returns a shared instance of the
// built-in grammar.
//
// Parsing stops at the first error. Errors implement
// [reporter.ErrorWithPos] and wrap [reporter.ErrNoHandler] when a token has
// no rule where one is required, or [reporter.ErrMalformed] when a construct
// is missing an expected token.
package parser
