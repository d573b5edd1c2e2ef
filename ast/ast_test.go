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

package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/token"
)

func TestDecl(t *testing.T) {
	t.Parallel()
	decls := []ast.Decl{
		&ast.VarDeclStmt{Name: "x"},
		&ast.FuncDeclStmt{Name: "f"},
		&ast.TypeDeclStmt{Keyword: token.Struct, Name: "S"},
	}
	for _, decl := range decls {
		decl.AddModifiers("public")
		decl.AddModifiers("static", "final")
		assert.Equal(t, []string{"public", "static", "final"}, decl.DeclModifiers())
	}
}

func TestVarDeclMutable(t *testing.T) {
	t.Parallel()
	assert.True(t, (&ast.VarDeclStmt{}).Mutable())
	assert.False(t, (&ast.VarDeclStmt{Constant: true}).Mutable())
}

func TestRangeClosed(t *testing.T) {
	t.Parallel()
	assert.True(t, (&ast.RangeExpr{Operator: token.Token{Kind: token.DotDotDot}}).Closed())
	assert.False(t, (&ast.RangeExpr{Operator: token.Token{Kind: token.Range}}).Closed())
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	tree := &ast.BlockStmt{Body: []ast.Stmt{
		&ast.ImportStmt{Name: "Foundation"},
		&ast.VarDeclStmt{
			Modifiers: []string{"private"},
			Name:      "x",
			Constant:  true,
			Value:     &ast.IntegerExpr{Value: 5},
			Type:      &ast.SymbolType{Name: "Int"},
		},
		&ast.VarDeclStmt{
			Name:  "y",
			Value: &ast.NoneExpr{},
			Type: &ast.OptionalType{Underlying: &ast.DictType{
				Key:   &ast.SymbolType{Name: "String"},
				Value: &ast.SymbolType{Modifier: "any", Name: "P"},
			}},
		},
		&ast.ExpressionStmt{Expression: &ast.CallExpr{
			Method: &ast.SymbolExpr{Name: "f"},
			Arguments: []*ast.Argument{
				{Value: &ast.BinaryExpr{
					Left:     &ast.IntegerExpr{Value: 1},
					Operator: token.Token{Kind: token.Plus, Text: "+"},
					Right:    &ast.IntegerExpr{Value: 2},
				}},
				{Label: "to", Value: &ast.StringExpr{Value: "out"}},
			},
		}},
		&ast.IfStmt{
			Condition:  &ast.BoolExpr{Value: true},
			Consequent: &ast.BlockStmt{Body: []ast.Stmt{&ast.BreakStmt{}}},
			Alternate:  &ast.NoneStmt{},
		},
	}}

	data, err := ast.MarshalYAML(tree)
	require.NoError(t, err)

	var got any
	require.NoError(t, yaml.Unmarshal(data, &got))
	want := map[string]any{
		"block": []any{
			map[string]any{"import": "Foundation"},
			map[string]any{"let": map[string]any{
				"modifiers": []any{"private"},
				"name":      "x",
				"type":      map[string]any{"symbol": "Int"},
				"value":     map[string]any{"int": 5},
			}},
			map[string]any{"var": map[string]any{
				"name": "y",
				"type": map[string]any{"optional": map[string]any{"dict": map[string]any{
					"key":   map[string]any{"symbol": "String"},
					"value": map[string]any{"symbol": map[string]any{"modifier": "any", "name": "P"}},
				}}},
			}},
			map[string]any{"expr": map[string]any{"call": map[string]any{
				"callee": map[string]any{"symbol": "f"},
				"args": []any{
					map[string]any{"value": map[string]any{"binary": map[string]any{
						"left":  map[string]any{"int": 1},
						"op":    "+",
						"right": map[string]any{"int": 2},
					}}},
					map[string]any{"label": "to", "value": map[string]any{"string": "out"}},
				},
			}}},
			map[string]any{"if": map[string]any{
				"cond": map[string]any{"bool": true},
				"then": []any{map[string]any{"break": nil}},
			}},
		},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestMarshalYAMLTypes(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionType{
		Parameters: []ast.Type{&ast.ListType{Underlying: &ast.SymbolType{Name: "Int"}}},
		Result: &ast.TupleType{Values: []*ast.NamedType{
			{Name: "0", Type: &ast.SymbolType{Name: "Int"}},
			{Name: "label", Type: &ast.GenericType{
				Name:     "Set",
				Generics: []ast.Type{&ast.SymbolType{Name: "String"}},
			}},
		}},
	}
	data, err := ast.MarshalYAML(fn)
	require.NoError(t, err)

	var got any
	require.NoError(t, yaml.Unmarshal(data, &got))
	want := map[string]any{"function": map[string]any{
		"params": []any{map[string]any{"list": map[string]any{"symbol": "Int"}}},
		"result": map[string]any{"tuple": []any{
			map[string]any{"name": "0", "type": map[string]any{"symbol": "Int"}},
			map[string]any{"name": "label", "type": map[string]any{"generic": map[string]any{
				"name": "Set",
				"args": []any{map[string]any{"symbol": "String"}},
			}}},
		}},
	}}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestMarshalYAMLUnknownNode(t *testing.T) {
	t.Parallel()
	_, err := ast.MarshalYAML(42)
	assert.ErrorContains(t, err, "cannot encode int")
}

func TestMarshalYAMLStringsSurvive(t *testing.T) {
	t.Parallel()

	for _, value := range []string{
		"\nmulti\nline\n",
		"  indented\nbody",
		" lead",
		"plain\nlines\n",
		"",
	} {
		data, err := ast.MarshalYAML(&ast.ExpressionStmt{Expression: &ast.StringExpr{Value: value}})
		require.NoError(t, err)
		var got map[string]map[string]string
		require.NoError(t, yaml.Unmarshal(data, &got), "%s", data)
		assert.Equal(t, value, got["expr"]["string"], "%s", data)
	}
}
