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

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders a node as YAML. Each node becomes a single-key mapping
// from its kind to its fields; absent children and empty lists are left out.
//
// The output is intended for golden tests and debugging, and will not be
// parsed back.
func MarshalYAML(node any) ([]byte, error) {
	doc, err := Encode(node)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode converts an [Expr], [Stmt], [Type] or [Parameter] into a YAML node
// tree.
func Encode(node any) (*yaml.Node, error) {
	e := &encoder{}
	n := e.node(node)
	return n, e.err
}

type encoder struct {
	err error
}

func (e *encoder) node(node any) *yaml.Node {
	switch n := node.(type) {
	case Expr:
		return e.expr(n)
	case Stmt:
		return e.stmt(n)
	case Type:
		return e.typ(n)
	case *Parameter:
		return e.param(n)
	default:
		if e.err == nil {
			e.err = fmt.Errorf("ast: cannot encode %T", node)
		}
		return scalar(nil)
	}
}

func (e *encoder) expr(x Expr) *yaml.Node {
	switch x := x.(type) {
	case *NoneExpr:
		return tagged("none", scalar(nil))
	case *IntegerExpr:
		return tagged("int", scalar(x.Value))
	case *FloatExpr:
		return tagged("float", scalar(x.Value))
	case *StringExpr:
		return tagged("string", scalar(x.Value))
	case *SymbolExpr:
		return tagged("symbol", scalar(x.Name))
	case *BoolExpr:
		return tagged("bool", scalar(x.Value))
	case *NilExpr:
		return tagged("nil", scalar(nil))
	case *BinaryExpr:
		return tagged("binary", fields(
			"left", e.expr(x.Left),
			"op", scalar(x.Operator.Text),
			"right", e.expr(x.Right),
		))
	case *PrefixExpr:
		return tagged("prefix", fields(
			"op", scalar(x.Operator.Text),
			"right", e.expr(x.Right),
		))
	case *AssignmentExpr:
		return tagged("assign", fields(
			"target", e.expr(x.Assignee),
			"op", scalar(x.Operator.Text),
			"value", e.expr(x.Value),
		))
	case *MemberExpr:
		return tagged("member", fields(
			"target", e.expr(x.Member),
			"property", scalar(x.Property),
		))
	case *CallExpr:
		args := sequence()
		for _, arg := range x.Arguments {
			args.Content = append(args.Content, fields(
				"label", optString(arg.Label),
				"value", e.expr(arg.Value),
			))
		}
		return tagged("call", fields(
			"callee", e.expr(x.Method),
			"args", args,
		))
	case *ComputedExpr:
		return tagged("index", fields(
			"target", e.expr(x.Member),
			"index", e.expr(x.Property),
		))
	case *RangeExpr:
		return tagged("range", fields(
			"lower", e.expr(x.Lower),
			"op", scalar(x.Operator.Text),
			"upper", e.expr(x.Upper),
		))
	case *ArrayLiteralExpr:
		return tagged("array", e.exprs(x.Contents))
	case *TupleExpr:
		return tagged("tuple", e.exprs(x.Elements))
	case *CastExpr:
		return tagged("cast", fields(
			"value", e.expr(x.Value),
			"op", scalar(x.Operator.Text),
			"type", e.typ(x.Type),
		))
	}
	return e.unknown(x)
}

func (e *encoder) exprs(xs []Expr) *yaml.Node {
	seq := sequence()
	for _, x := range xs {
		seq.Content = append(seq.Content, e.expr(x))
	}
	return seq
}

func (e *encoder) stmt(s Stmt) *yaml.Node {
	switch s := s.(type) {
	case *NoneStmt:
		return tagged("none", scalar(nil))
	case *BlockStmt:
		return tagged("block", e.block(s))
	case *ExpressionStmt:
		return tagged("expr", e.expr(s.Expression))
	case *VarDeclStmt:
		kw := "var"
		if s.Constant {
			kw = "let"
		}
		return tagged(kw, fields(
			"modifiers", stringList(s.Modifiers),
			"name", scalar(s.Name),
			"type", e.optType(s.Type),
			"value", e.optExpr(s.Value),
		))
	case *ImportStmt:
		return tagged("import", scalar(s.Name))
	case *IfStmt:
		var alt *yaml.Node
		if _, ok := s.Alternate.(*NoneStmt); !ok && s.Alternate != nil {
			alt = e.stmt(s.Alternate)
		}
		return tagged("if", fields(
			"cond", e.expr(s.Condition),
			"then", e.block(s.Consequent),
			"else", alt,
		))
	case *WhileStmt:
		return tagged("while", fields(
			"cond", e.expr(s.Condition),
			"body", e.block(s.Body),
		))
	case *ForeachStmt:
		return tagged("for", fields(
			"value", scalar(s.Value),
			"in", e.expr(s.Iterable),
			"body", e.block(s.Body),
		))
	case *ReturnStmt:
		return tagged("return", e.optExpr(s.Value))
	case *BreakStmt:
		return tagged("break", scalar(nil))
	case *ContinueStmt:
		return tagged("continue", scalar(nil))
	case *CaseStmt:
		return tagged("case", stringList(s.Names))
	case *FuncDeclStmt:
		params := sequence()
		for _, p := range s.Parameters {
			params.Content = append(params.Content, e.param(p))
		}
		var throws *yaml.Node
		if s.Throws {
			throws = scalar(true)
		}
		var body *yaml.Node
		if s.Body != nil {
			body = e.block(s.Body)
		}
		return tagged("func", fields(
			"modifiers", stringList(s.Modifiers),
			"name", scalar(s.Name),
			"params", params,
			"throws", throws,
			"returns", e.optType(s.ReturnType),
			"body", body,
		))
	case *TypeDeclStmt:
		impls := sequence()
		for _, t := range s.Implements {
			impls.Content = append(impls.Content, e.typ(t))
		}
		return tagged(strings.ToLower(s.Keyword.String()), fields(
			"modifiers", stringList(s.Modifiers),
			"name", scalar(s.Name),
			"implements", impls,
			"body", e.block(s.Body),
		))
	}
	return e.unknown(s)
}

func (e *encoder) block(b *BlockStmt) *yaml.Node {
	seq := sequence()
	if b == nil {
		return seq
	}
	for _, s := range b.Body {
		seq.Content = append(seq.Content, e.stmt(s))
	}
	return seq
}

func (e *encoder) param(p *Parameter) *yaml.Node {
	label := p.Label
	if label == p.Name {
		label = ""
	}
	return fields(
		"label", optString(label),
		"name", scalar(p.Name),
		"type", e.typ(p.Type),
		"default", e.optExpr(p.Default),
	)
}

func (e *encoder) typ(t Type) *yaml.Node {
	switch t := t.(type) {
	case *UnknownType:
		return tagged("unknown", scalar(nil))
	case *SymbolType:
		if t.Modifier == "" {
			return tagged("symbol", scalar(t.Name))
		}
		return tagged("symbol", fields(
			"modifier", scalar(t.Modifier),
			"name", scalar(t.Name),
		))
	case *GenericType:
		args := sequence()
		for _, g := range t.Generics {
			args.Content = append(args.Content, e.typ(g))
		}
		return tagged("generic", fields(
			"name", scalar(t.Name),
			"args", args,
		))
	case *ListType:
		return tagged("list", e.typ(t.Underlying))
	case *DictType:
		return tagged("dict", fields(
			"key", e.typ(t.Key),
			"value", e.typ(t.Value),
		))
	case *TupleType:
		seq := sequence()
		for _, v := range t.Values {
			seq.Content = append(seq.Content, fields(
				"name", scalar(v.Name),
				"type", e.typ(v.Type),
			))
		}
		return tagged("tuple", seq)
	case *OptionalType:
		return tagged("optional", e.typ(t.Underlying))
	case *FunctionType:
		params := sequence()
		for _, p := range t.Parameters {
			params.Content = append(params.Content, e.typ(p))
		}
		return tagged("function", fields(
			"params", params,
			"result", e.typ(t.Result),
		))
	}
	return e.unknown(t)
}

func (e *encoder) optExpr(x Expr) *yaml.Node {
	if _, ok := x.(*NoneExpr); ok || x == nil {
		return nil
	}
	return e.expr(x)
}

func (e *encoder) optType(t Type) *yaml.Node {
	if _, ok := t.(*UnknownType); ok || t == nil {
		return nil
	}
	return e.typ(t)
}

func (e *encoder) unknown(node any) *yaml.Node {
	if e.err == nil {
		e.err = fmt.Errorf("ast: unknown node type %T", node)
	}
	return scalar(nil)
}

func tagged(kind string, value *yaml.Node) *yaml.Node {
	if value == nil {
		value = scalar(nil)
	}
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar(kind), value},
	}
}

// fields builds a mapping from alternating keys and values, skipping nil
// values and empty sequences.
func fields(kv ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(kv); i += 2 {
		v, _ := kv[i+1].(*yaml.Node)
		if v == nil || (v.Kind == yaml.SequenceNode && len(v.Content) == 0) {
			continue
		}
		m.Content = append(m.Content, scalar(kv[i]), v)
	}
	return m
}

func sequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode}
}

func stringList(ss []string) *yaml.Node {
	seq := sequence()
	seq.Style = yaml.FlowStyle
	for _, s := range ss {
		seq.Content = append(seq.Content, scalar(s))
	}
	return seq
}

func optString(s string) *yaml.Node {
	if s == "" {
		return nil
	}
	return scalar(s)
}

func scalar(v any) *yaml.Node {
	n := new(yaml.Node)
	if v == nil {
		n.Kind = yaml.ScalarNode
		n.Tag = "!!null"
		n.Value = "null"
		return n
	}
	if err := n.Encode(v); err != nil {
		n.Kind = yaml.ScalarNode
		n.Value = fmt.Sprint(v)
	}
	// A literal block cannot start with a line break or a space, and the
	// encoder would otherwise pick one for multi-line text.
	if s, ok := v.(string); ok && (strings.HasPrefix(s, "\n") || strings.HasPrefix(s, " ")) {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}
