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

// Type is a type node.
type Type interface {
	typeNode()
}

// UnknownType is the absent type: a declaration with neither an explicit
// type nor an initializer it could be inferred from.
type UnknownType struct{}

// SymbolType is a plain named type, optionally with an any or some prefix.
type SymbolType struct {
	Modifier string // "any", "some" or empty.
	Name     string
}

// GenericType is a named type with generic arguments, Name<A, B>.
type GenericType struct {
	Name     string
	Generics []Type
}

// ListType is [T].
type ListType struct {
	Underlying Type
}

// DictType is [K: V].
type DictType struct {
	Key, Value Type
}

// TupleType is (a: A, B). Unlabeled elements are named after their
// zero-based position.
type TupleType struct {
	Values []*NamedType
}

// NamedType is a single tuple element.
type NamedType struct {
	Name string
	Type Type
}

// OptionalType is T?.
type OptionalType struct {
	Underlying Type
}

// FunctionType is (A, B) -> R.
type FunctionType struct {
	Parameters []Type
	Result     Type
}

func (*UnknownType) typeNode()  {}
func (*SymbolType) typeNode()   {}
func (*GenericType) typeNode()  {}
func (*ListType) typeNode()     {}
func (*DictType) typeNode()     {}
func (*TupleType) typeNode()    {}
func (*OptionalType) typeNode() {}
func (*FunctionType) typeNode() {}
