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

// Package ast defines the abstract syntax tree produced by the parser.
//
// There are three node families: [Expr], [Stmt] and [Type]. Each family is an
// interface implemented by a closed set of pointer types, one per production.
// Every family has an explicit "absent" node ([NoneExpr], [NoneStmt],
// [UnknownType]) used where a child is optional, so that a tree never
// contains nil children.
//
// Trees own their children exclusively: nodes are never shared between
// parents and a tree has no cycles. Nodes are built bottom-up by the parser
// and must not be modified afterwards, with the single exception of modifier
// lists, which the parser fills in through [Decl] while it is still building
// the enclosing statement.
package ast
