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

import "fmt"

// BindingPower orders infix operators. An operator with a higher binding
// power binds tighter.
type BindingPower uint8

const (
	// DefaultBP is the lowest binding power. A kind with no registered
	// power has this one, which never continues an expression.
	DefaultBP BindingPower = iota
	CommaBP
	AssignmentBP
	LogicalBP
	RelationalBP
	AdditiveBP
	MultiplicativeBP
	UnaryBP
	CallBP
	MemberBP
	PrimaryBP
)

var powerNames = [...]string{
	DefaultBP:        "default",
	CommaBP:          "comma",
	AssignmentBP:     "assignment",
	LogicalBP:        "logical",
	RelationalBP:     "relational",
	AdditiveBP:       "additive",
	MultiplicativeBP: "multiplicative",
	UnaryBP:          "unary",
	CallBP:           "call",
	MemberBP:         "member",
	PrimaryBP:        "primary",
}

// String implements [fmt.Stringer].
func (bp BindingPower) String() string {
	if int(bp) < len(powerNames) {
		return powerNames[bp]
	}
	return fmt.Sprintf("BindingPower(%d)", int(bp))
}
