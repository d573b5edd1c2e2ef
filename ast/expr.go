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

package ast

import "github.com/bufbuild/swiftcompile/token"

// Expr is an expression node.
type Expr interface {
	exprNode()
}

// NoneExpr is the absent expression, such as the initializer of a
// declaration that has none.
type NoneExpr struct{}

// IntegerExpr is an integer literal.
type IntegerExpr struct {
	Value int64
}

// FloatExpr is a floating-point literal.
type FloatExpr struct {
	Value float64
}

// StringExpr is a string literal. Value is the raw text between the quotes.
type StringExpr struct {
	Value string
}

// SymbolExpr is a reference to a name, including self and super.
type SymbolExpr struct {
	Name string
}

// BoolExpr is true or false.
type BoolExpr struct {
	Value bool
}

// NilExpr is the nil literal.
type NilExpr struct{}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// PrefixExpr is a unary prefix operator such as - or !.
type PrefixExpr struct {
	Operator token.Token
	Right    Expr
}

// AssignmentExpr is =, +=, -=, *= or /=.
type AssignmentExpr struct {
	Assignee Expr
	Operator token.Token
	Value    Expr
}

// MemberExpr is a property access, a.b.
type MemberExpr struct {
	Member   Expr
	Property string
}

// CallExpr is a call, f(a, label: b).
type CallExpr struct {
	Method    Expr
	Arguments []*Argument
}

// Argument is a single, possibly labeled, call argument.
type Argument struct {
	Label string // Empty if unlabeled.
	Value Expr
}

// ComputedExpr is a subscript, a[i].
type ComputedExpr struct {
	Member   Expr
	Property Expr
}

// RangeExpr is a closed (...) or half-open (..<) range.
type RangeExpr struct {
	Lower    Expr
	Operator token.Token
	Upper    Expr
}

// Closed returns whether the range includes its upper bound.
func (e *RangeExpr) Closed() bool {
	return e.Operator.Kind == token.DotDotDot
}

// ArrayLiteralExpr is [a, b, c].
type ArrayLiteralExpr struct {
	Contents []Expr
}

// TupleExpr is a parenthesized list of two or more expressions, or the empty
// tuple ().
type TupleExpr struct {
	Elements []Expr
}

// CastExpr is a type test (is) or a type cast (as).
type CastExpr struct {
	Value    Expr
	Operator token.Token
	Type     Type
}

func (*NoneExpr) exprNode()         {}
func (*IntegerExpr) exprNode()      {}
func (*FloatExpr) exprNode()        {}
func (*StringExpr) exprNode()       {}
func (*SymbolExpr) exprNode()       {}
func (*BoolExpr) exprNode()         {}
func (*NilExpr) exprNode()          {}
func (*BinaryExpr) exprNode()       {}
func (*PrefixExpr) exprNode()       {}
func (*AssignmentExpr) exprNode()   {}
func (*MemberExpr) exprNode()       {}
func (*CallExpr) exprNode()         {}
func (*ComputedExpr) exprNode()     {}
func (*RangeExpr) exprNode()        {}
func (*ArrayLiteralExpr) exprNode() {}
func (*TupleExpr) exprNode()        {}
func (*CastExpr) exprNode()         {}
