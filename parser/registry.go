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
	"fmt"

	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/token"
)

// NudFunc parses a construct that begins with the current token. It must
// consume at least that token.
type NudFunc[N any] func(p *Parser) (N, error)

// LedFunc continues a construct whose left-hand side has already been
// parsed. The current token is the one the handler was registered for, and
// min is the minimum binding power of the enclosing parse.
type LedFunc[N any] func(p *Parser, left N, min BindingPower) (N, error)

// StmtFunc parses a statement that begins with the current token. Any
// trailing terminator is consumed by the caller.
type StmtFunc func(p *Parser) (ast.Stmt, error)

type rule[N any] struct {
	power BindingPower
	nud   NudFunc[N]
	led   LedFunc[N]
}

// Registry maps token kinds to the rules of one Pratt grammar.
//
// Registration methods panic when a role is registered twice for one kind,
// or when the registry belongs to a Grammar that has finished construction.
type Registry[N any] struct {
	name   string
	rules  map[token.Kind]*rule[N]
	frozen bool
}

func newRegistry[N any](name string) *Registry[N] {
	return &Registry[N]{name: name, rules: make(map[token.Kind]*rule[N])}
}

// Prefix registers the handler for constructs that start with kind.
func (r *Registry[N]) Prefix(kind token.Kind, fn NudFunc[N]) {
	rl := r.mutable(kind)
	if rl.nud != nil {
		panic(fmt.Sprintf("parser: %s prefix handler for %v registered twice", r.name, kind))
	}
	rl.nud = fn
}

// Infix registers the handler for kind as a continuation, along with the
// binding power it continues at. bp must be above DefaultBP.
func (r *Registry[N]) Infix(kind token.Kind, bp BindingPower, fn LedFunc[N]) {
	rl := r.mutable(kind)
	if rl.led != nil {
		panic(fmt.Sprintf("parser: %s infix handler for %v registered twice", r.name, kind))
	}
	r.setPower(rl, kind, bp)
	rl.led = fn
}

// Power registers a binding power for kind without an infix handler. Any
// such token that shows up after a complete operand at a lower minimum is an
// error, which is useful for kinds that must never follow an operand.
func (r *Registry[N]) Power(kind token.Kind, bp BindingPower) {
	r.setPower(r.mutable(kind), kind, bp)
}

func (r *Registry[N]) setPower(rl *rule[N], kind token.Kind, bp BindingPower) {
	switch {
	case bp == DefaultBP:
		panic(fmt.Sprintf("parser: %s binding power for %v must be above %v", r.name, kind, DefaultBP))
	case rl.power != DefaultBP:
		panic(fmt.Sprintf("parser: %s binding power for %v registered twice", r.name, kind))
	}
	rl.power = bp
}

func (r *Registry[N]) mutable(kind token.Kind) *rule[N] {
	if r.frozen {
		panic(fmt.Sprintf("parser: %s registry modified after construction", r.name))
	}
	rl := r.rules[kind]
	if rl == nil {
		rl = new(rule[N])
		r.rules[kind] = rl
	}
	return rl
}

// PrefixFor returns the prefix handler for kind, or nil.
func (r *Registry[N]) PrefixFor(kind token.Kind) NudFunc[N] {
	if rl := r.rules[kind]; rl != nil {
		return rl.nud
	}
	return nil
}

// InfixFor returns the infix handler for kind, or nil.
func (r *Registry[N]) InfixFor(kind token.Kind) LedFunc[N] {
	if rl := r.rules[kind]; rl != nil {
		return rl.led
	}
	return nil
}

// PowerFor returns the binding power of kind, which is DefaultBP if none was
// registered.
func (r *Registry[N]) PowerFor(kind token.Kind) BindingPower {
	if rl := r.rules[kind]; rl != nil {
		return rl.power
	}
	return DefaultBP
}

// StmtRegistry maps leading token kinds to statement handlers.
type StmtRegistry struct {
	handlers map[token.Kind]StmtFunc
	frozen   bool
}

// Register sets the handler for statements that start with kind.
func (r *StmtRegistry) Register(kind token.Kind, fn StmtFunc) {
	switch {
	case r.frozen:
		panic("parser: statement registry modified after construction")
	case r.handlers[kind] != nil:
		panic(fmt.Sprintf("parser: statement handler for %v registered twice", kind))
	}
	if r.handlers == nil {
		r.handlers = make(map[token.Kind]StmtFunc)
	}
	r.handlers[kind] = fn
}

// HandlerFor returns the statement handler for kind, or nil.
func (r *StmtRegistry) HandlerFor(kind token.Kind) StmtFunc {
	return r.handlers[kind]
}
