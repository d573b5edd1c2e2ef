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

package parser

import (
	"strings"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/token"
)

var modifierKinds = []token.Kind{
	token.Lazy, token.Unowned, token.Weak,
	token.Open, token.Public, token.Internal, token.Private, token.FilePrivate,
	token.Final, token.Static,
}

func registerStmts(r *StmtRegistry) {
	for _, kind := range modifierKinds {
		r.Register(kind, parseModified)
	}
	r.Register(token.Var, parseVarDecl)
	r.Register(token.Let, parseVarDecl)
	r.Register(token.Import, parseImport)
	r.Register(token.OpenBrace, parseBlockStmt)
	r.Register(token.If, parseIf)
	r.Register(token.While, parseWhile)
	r.Register(token.For, parseForeach)
	r.Register(token.Return, parseReturn)
	r.Register(token.Break, parseBreak)
	r.Register(token.Continue, parseContinue)
	r.Register(token.Case, parseCase)
	r.Register(token.Func, parseFuncDecl)
	r.Register(token.Init, parseFuncDecl)
	for _, kind := range []token.Kind{
		token.Class, token.Struct, token.Protocol, token.Actor, token.Enum, token.Extension,
	} {
		r.Register(kind, parseTypeDecl)
	}
}

// parseModified collects leading modifiers and attaches them to the
// declaration that follows.
func parseModified(p *Parser) (ast.Stmt, error) {
	first := p.Current()
	var modifiers []string
	for p.Current().Kind.IsModifier() {
		modifiers = append(modifiers, p.Advance().Text)
	}
	stmt, err := p.parseUnterminated()
	if err != nil {
		return nil, err
	}
	decl, ok := stmt.(ast.Decl)
	if !ok {
		return nil, malformed(first, "modifiers %s must be followed by a declaration", strings.Join(modifiers, " "))
	}
	decl.AddModifiers(modifiers...)
	return decl, nil
}

func parseVarDecl(p *Parser) (ast.Stmt, error) {
	keyword := p.Advance()
	name, err := p.Expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDeclStmt{
		Name:     name.Text,
		Constant: keyword.Kind == token.Let,
		Value:    &ast.NoneExpr{},
		Type:     &ast.UnknownType{},
	}
	explicit := p.Accept(token.Colon)
	if explicit {
		if decl.Type, err = p.ParseType(DefaultBP); err != nil {
			return nil, err
		}
	}
	if p.Accept(token.Assignment) {
		if decl.Value, err = p.ParseExpr(AssignmentBP); err != nil {
			return nil, err
		}
		if !explicit {
			decl.Type = inferType(decl.Value)
		}
	}
	return decl, nil
}

// inferType gives the type of a literal initializer, or an unknown type.
func inferType(value ast.Expr) ast.Type {
	switch value := value.(type) {
	case *ast.IntegerExpr:
		return &ast.SymbolType{Name: "Int"}
	case *ast.FloatExpr:
		return &ast.SymbolType{Name: "Double"}
	case *ast.StringExpr:
		return &ast.SymbolType{Name: "String"}
	case *ast.SymbolExpr:
		return &ast.SymbolType{Name: value.Name}
	}
	return &ast.UnknownType{}
}

// parseImport handles import A and import A.B.
func parseImport(p *Parser) (ast.Stmt, error) {
	p.Advance()
	name, err := p.Expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	path := []string{name.Text}
	for p.Accept(token.Dot) {
		if name, err = p.Expect(token.Identifier); err != nil {
			return nil, err
		}
		path = append(path, name.Text)
	}
	return &ast.ImportStmt{Name: strings.Join(path, ".")}, nil
}

func parseBlockStmt(p *Parser) (ast.Stmt, error) {
	block, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	return block, nil
}

func parseIf(p *Parser) (ast.Stmt, error) {
	p.Advance()
	cond, err := p.ParseExpr(DefaultBP)
	if err != nil {
		return nil, err
	}
	then, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Condition: cond, Consequent: then, Alternate: &ast.NoneStmt{}}
	if !p.Accept(token.Else) {
		return stmt, nil
	}
	if p.Current().Kind == token.If {
		stmt.Alternate, err = parseIf(p)
	} else {
		stmt.Alternate, err = parseBlockStmt(p)
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func parseWhile(p *Parser) (ast.Stmt, error) {
	p.Advance()
	cond, err := p.ParseExpr(DefaultBP)
	if err != nil {
		return nil, err
	}
	body, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: cond, Body: body}, nil
}

func parseForeach(p *Parser) (ast.Stmt, error) {
	p.Advance()
	value, err := p.Expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.In); err != nil {
		return nil, err
	}
	iterable, err := p.ParseExpr(DefaultBP)
	if err != nil {
		return nil, err
	}
	body, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForeachStmt{Value: value.Text, Iterable: iterable, Body: body}, nil
}

// parseReturn takes a value only if one starts on the same line.
func parseReturn(p *Parser) (ast.Stmt, error) {
	ret := p.Advance()
	next := p.Current()
	if next.Line != ret.Line || p.grammar.exprs.PrefixFor(next.Kind) == nil {
		return &ast.ReturnStmt{Value: &ast.NoneExpr{}}, nil
	}
	value, err := p.ParseExpr(DefaultBP)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value}, nil
}

func parseBreak(p *Parser) (ast.Stmt, error) {
	p.Advance()
	return &ast.BreakStmt{}, nil
}

func parseContinue(p *Parser) (ast.Stmt, error) {
	p.Advance()
	return &ast.ContinueStmt{}, nil
}

// parseCase handles enum members, case a, b.
func parseCase(p *Parser) (ast.Stmt, error) {
	p.Advance()
	stmt := &ast.CaseStmt{}
	for {
		name, err := p.Expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		stmt.Names = append(stmt.Names, name.Text)
		if !p.Accept(token.Comma) {
			return stmt, nil
		}
	}
}

// parseFuncDecl handles func name(params) throws -> R { ... } and init. The
// body may be left out, as in a protocol.
func parseFuncDecl(p *Parser) (ast.Stmt, error) {
	keyword := p.Advance()
	fn := &ast.FuncDeclStmt{Name: keyword.Text, ReturnType: &ast.UnknownType{}}
	if keyword.Kind == token.Func {
		name, err := p.Expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		fn.Name = name.Text
	}
	if _, err := p.Expect(token.OpenParen); err != nil {
		return nil, err
	}
	for p.Current().Kind != token.CloseParen {
		param, err := parseParameter(p)
		if err != nil {
			return nil, err
		}
		fn.Parameters = append(fn.Parameters, param)
		if !p.Accept(token.Comma) {
			break
		}
	}
	if _, err := p.Expect(token.CloseParen); err != nil {
		return nil, err
	}
	fn.Throws = p.Accept(token.Throws) || p.Accept(token.Rethrows)
	if p.Accept(token.Arrow) {
		var err error
		if fn.ReturnType, err = p.ParseType(DefaultBP); err != nil {
			return nil, err
		}
	}
	if p.Current().Kind == token.OpenBrace {
		body, err := p.ParseBlock()
		if err != nil {
			return nil, err
		}
		fn.Body = body
	}
	return fn, nil
}

// parseParameter handles name: T, label name: T and an optional = default.
func parseParameter(p *Parser) (*ast.Parameter, error) {
	param := &ast.Parameter{Default: &ast.NoneExpr{}}
	switch {
	case p.HasPattern(token.Anything, token.Colon):
		param.Name = p.Advance().Text
		param.Label = param.Name
	case p.HasPattern(token.Anything, token.Anything, token.Colon):
		param.Label = p.Advance().Text
		param.Name = p.Advance().Text
	default:
		tok := p.Current()
		return nil, malformed(tok, "expected a parameter name, found %s", describe(tok))
	}
	p.Advance()
	var err error
	if param.Type, err = p.ParseType(DefaultBP); err != nil {
		return nil, err
	}
	if p.Accept(token.Assignment) {
		if param.Default, err = p.ParseExpr(CommaBP); err != nil {
			return nil, err
		}
	}
	return param, nil
}

// parseTypeDecl handles class, struct, protocol, actor, enum and extension
// declarations with an optional list of conformances.
func parseTypeDecl(p *Parser) (ast.Stmt, error) {
	keyword := p.Advance()
	name, err := p.Expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	decl := &ast.TypeDeclStmt{Keyword: keyword.Kind, Name: name.Text}
	if p.Accept(token.Colon) {
		for {
			typ, err := p.ParseType(DefaultBP)
			if err != nil {
				return nil, err
			}
			decl.Implements = append(decl.Implements, typ)
			if !p.Accept(token.Comma) {
				break
			}
		}
	}
	if decl.Body, err = p.ParseBlock(); err != nil {
		return nil, err
	}
	return decl, nil
}
