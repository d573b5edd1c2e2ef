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

// Package walk provides depth-first traversal of AST nodes.
package walk

import "github.com/bufbuild/swiftcompile/ast"

// Nodes walks the tree rooted at root, calling fn for every node before its
// children. Nodes are [ast.Expr], [ast.Stmt], [ast.Type] and
// [*ast.Parameter] values; placeholder nodes such as [ast.NoneExpr] are
// visited too. The first error returned by fn stops the walk and is
// returned.
func Nodes(root any, fn func(any) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit is like [Nodes], but also calls exit, if not nil, after
// a node's children have been walked.
func NodesEnterAndExit(root any, enter, exit func(any) error) error {
	if err := enter(root); err != nil {
		return err
	}
	for _, child := range children(root) {
		if err := NodesEnterAndExit(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(root); err != nil {
			return err
		}
	}
	return nil
}

func children(node any) []any {
	switch n := node.(type) {
	case *ast.BinaryExpr:
		return []any{n.Left, n.Right}
	case *ast.PrefixExpr:
		return []any{n.Right}
	case *ast.AssignmentExpr:
		return []any{n.Assignee, n.Value}
	case *ast.MemberExpr:
		return []any{n.Member}
	case *ast.CallExpr:
		kids := []any{n.Method}
		for _, arg := range n.Arguments {
			kids = append(kids, arg.Value)
		}
		return kids
	case *ast.ComputedExpr:
		return []any{n.Member, n.Property}
	case *ast.RangeExpr:
		return []any{n.Lower, n.Upper}
	case *ast.ArrayLiteralExpr:
		return exprs(n.Contents)
	case *ast.TupleExpr:
		return exprs(n.Elements)
	case *ast.CastExpr:
		return []any{n.Value, n.Type}

	case *ast.BlockStmt:
		kids := make([]any, len(n.Body))
		for i, s := range n.Body {
			kids[i] = s
		}
		return kids
	case *ast.ExpressionStmt:
		return []any{n.Expression}
	case *ast.VarDeclStmt:
		return []any{n.Type, n.Value}
	case *ast.IfStmt:
		return []any{n.Condition, n.Consequent, n.Alternate}
	case *ast.WhileStmt:
		return []any{n.Condition, n.Body}
	case *ast.ForeachStmt:
		return []any{n.Iterable, n.Body}
	case *ast.ReturnStmt:
		return []any{n.Value}
	case *ast.FuncDeclStmt:
		kids := make([]any, 0, len(n.Parameters)+2)
		for _, p := range n.Parameters {
			kids = append(kids, p)
		}
		kids = append(kids, n.ReturnType)
		if n.Body != nil {
			kids = append(kids, n.Body)
		}
		return kids
	case *ast.Parameter:
		return []any{n.Type, n.Default}
	case *ast.TypeDeclStmt:
		kids := types(n.Implements)
		return append(kids, n.Body)

	case *ast.GenericType:
		return types(n.Generics)
	case *ast.ListType:
		return []any{n.Underlying}
	case *ast.DictType:
		return []any{n.Key, n.Value}
	case *ast.TupleType:
		kids := make([]any, len(n.Values))
		for i, v := range n.Values {
			kids[i] = v.Type
		}
		return kids
	case *ast.OptionalType:
		return []any{n.Underlying}
	case *ast.FunctionType:
		return append(types(n.Parameters), n.Result)
	}
	return nil
}

func exprs(xs []ast.Expr) []any {
	kids := make([]any, len(xs))
	for i, x := range xs {
		kids[i] = x
	}
	return kids
}

func types(ts []ast.Type) []any {
	kids := make([]any, len(ts))
	for i, t := range ts {
		kids[i] = t
	}
	return kids
}
