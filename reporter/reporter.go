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

// Package reporter contains the types used for reporting errors from the
// lexer, the tokenizer cache and the parser.
//
// Within a single file the first error ends the parse; there is no error
// recovery. A [Handler] lets a multi-file run decide, through a [Reporter],
// whether that first error should also end every other file's parse.
package reporter

import (
	"sync"

	"github.com/bufbuild/swiftcompile/token"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, the whole run aborts with that error. If the
// reporter returns nil, other files continue to be parsed.
type ErrorReporter func(err ErrorWithPos) error

// Reporter handles errors reported during a run.
type Reporter interface {
	// Error is called when the given error is encountered and its position
	// is known.
	Error(ErrorWithPos) error
}

// NewReporter creates a new reporter that invokes the given function on
// every error. If errs is nil, the returned reporter fails on the first
// error.
func NewReporter(errs ErrorReporter) Reporter {
	return reporterFunc(errs)
}

type reporterFunc ErrorReporter

func (r reporterFunc) Error(err ErrorWithPos) error {
	if r == nil {
		return err
	}
	return r(err)
}

// Handler is used by the lexer, parser and driver to report errors. It
// remembers the first error its Reporter refused to swallow, and whether any
// errors were reported at all. It is safe for concurrent use.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler that reports errors to the given
// reporter. If rep is nil, a default reporter that fails on the first error
// is used.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf handles an error with the given source position, creating the
// error using the given message format and arguments.
func (h *Handler) HandleErrorf(pos token.Position, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError handles the given error. If the error has a position, it is
// sent to the reporter; errors without positions (I/O failures) are never
// swallowed.
//
// If the handler has already aborted, the original abort error is returned.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// Error returns the handler result. If any errors were reported, this
// returns a non-nil error: the abort error if there was one, otherwise
// [ErrInvalidSource].
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error returned by the reporter, if any. Unlike
// [Handler.Error], this is nil when every reported error was swallowed.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
