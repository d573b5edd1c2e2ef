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

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

// Decl is a statement that declares something and so may carry modifiers
// such as public or static.
type Decl interface {
	Stmt
	// DeclModifiers returns the modifiers, in source order.
	DeclModifiers() []string
	// AddModifiers appends modifiers to the declaration.
	AddModifiers(modifiers ...string)
}

// NoneStmt is the absent statement, such as a missing else branch.
type NoneStmt struct{}

// BlockStmt is a sequence of statements. A whole file parses to a BlockStmt.
type BlockStmt struct {
	Body []Stmt
}

// ExpressionStmt is an expression evaluated for its effect.
type ExpressionStmt struct {
	Expression Expr
}

// VarDeclStmt is a var or let declaration.
type VarDeclStmt struct {
	Modifiers []string
	Name      string
	// Constant is set for let, clear for var.
	Constant bool
	// Value is a [NoneExpr] if there is no initializer.
	Value Expr
	// Type is the explicit type, the type inferred from a literal
	// initializer, or an [UnknownType].
	Type Type
}

// Mutable returns whether the binding was declared with var.
func (s *VarDeclStmt) Mutable() bool {
	return !s.Constant
}

// ImportStmt is an import of a module.
type ImportStmt struct {
	Name string
}

// IfStmt is an if statement. Alternate is a [NoneStmt], a [BlockStmt] or
// another IfStmt.
type IfStmt struct {
	Condition  Expr
	Consequent *BlockStmt
	Alternate  Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	Condition Expr
	Body      *BlockStmt
}

// ForeachStmt is a for-in loop.
type ForeachStmt struct {
	Value    string
	Iterable Expr
	Body     *BlockStmt
}

// ReturnStmt is a return, with a [NoneExpr] value if bare.
type ReturnStmt struct {
	Value Expr
}

// BreakStmt is break.
type BreakStmt struct{}

// ContinueStmt is continue.
type ContinueStmt struct{}

// CaseStmt is an enum case declaration, case a, b.
type CaseStmt struct {
	Names []string
}

// Parameter is a function parameter, label name: Type = default.
type Parameter struct {
	// Label is the argument label; it equals Name when only one name was
	// written, and is "_" for unlabeled parameters.
	Label   string
	Name    string
	Type    Type
	Default Expr
}

// FuncDeclStmt is a func or init declaration.
type FuncDeclStmt struct {
	Modifiers  []string
	Name       string
	Parameters []*Parameter
	Throws     bool
	ReturnType Type
	// Body is nil for requirements without a body, such as in a protocol.
	Body *BlockStmt
}

// TypeDeclStmt is a class, struct, protocol, actor, enum or extension
// declaration.
type TypeDeclStmt struct {
	Modifiers  []string
	Keyword    token.Kind
	Name       string
	Implements []Type
	Body       *BlockStmt
}

func (s *VarDeclStmt) DeclModifiers() []string  { return s.Modifiers }
func (s *FuncDeclStmt) DeclModifiers() []string { return s.Modifiers }
func (s *TypeDeclStmt) DeclModifiers() []string { return s.Modifiers }

func (s *VarDeclStmt) AddModifiers(m ...string)  { s.Modifiers = append(s.Modifiers, m...) }
func (s *FuncDeclStmt) AddModifiers(m ...string) { s.Modifiers = append(s.Modifiers, m...) }
func (s *TypeDeclStmt) AddModifiers(m ...string) { s.Modifiers = append(s.Modifiers, m...) }

var (
	_ Decl = (*VarDeclStmt)(nil)
	_ Decl = (*FuncDeclStmt)(nil)
	_ Decl = (*TypeDeclStmt)(nil)
)

func (*NoneStmt) stmtNode()       {}
func (*BlockStmt) stmtNode()      {}
func (*ExpressionStmt) stmtNode() {}
func (*VarDeclStmt) stmtNode()    {}
func (*ImportStmt) stmtNode()     {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*ForeachStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode()     {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
func (*CaseStmt) stmtNode()       {}
func (*FuncDeclStmt) stmtNode()   {}
func (*TypeDeclStmt) stmtNode()   {}
