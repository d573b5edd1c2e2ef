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

package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/swiftcompile/token"
)

var (
	// ErrInvalidSource is returned by [Handler.Error] when errors were
	// reported but the configured [ErrorReporter] swallowed all of them.
	ErrInvalidSource = errors.New("parse failed: invalid source")

	// ErrLex is wrapped by errors that arise because no lexical rule matches
	// the input at some position.
	ErrLex = errors.New("unrecognized input")
	// ErrNoHandler is wrapped by errors that arise because the current token
	// has no grammar rule where one is required.
	ErrNoHandler = errors.New("unexpected token")
	// ErrMalformed is wrapped by errors that arise because a construct
	// started correctly but a required token was missing or wrong.
	ErrMalformed = errors.New("malformed construct")
)

// ErrorWithPos is an error about a source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the position and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() token.Position
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos token.Position, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos token.Position, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        token.Position
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying a location in
// source that caused the error.
func (e errorWithSourcePos) GetPosition() token.Position {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
