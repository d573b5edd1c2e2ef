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

package reporter_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/token"
)

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	pos := token.Position{Filename: "a.swift", Line: 2, Col: 5}
	err := reporter.Errorf(pos, "%w: %v", reporter.ErrNoHandler, token.Comma)
	assert.Equal(t, "a.swift:2:5: unexpected token: Comma", err.Error())
	assert.Equal(t, pos, err.GetPosition())
	assert.ErrorIs(t, err, reporter.ErrNoHandler)
	assert.NotErrorIs(t, err, reporter.ErrLex)

	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, error(err), &ewp)
}

func TestHandlerDefaultFailsFast(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(nil)
	pos := token.Position{Filename: "a.swift", Line: 1, Col: 1}
	first := h.HandleErrorf(pos, "first")
	require.Error(t, first)

	second := h.HandleErrorf(pos, "second")
	assert.Equal(t, first, second)
	assert.Equal(t, first, h.Error())
	assert.Equal(t, first, h.ReporterError())
}

func TestHandlerSwallowing(t *testing.T) {
	t.Parallel()

	var seen []string
	h := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		seen = append(seen, err.GetPosition().Filename)
		return nil
	}))
	for _, file := range []string{"a.swift", "b.swift"} {
		assert.NoError(t, h.HandleError(reporter.Errorf(token.Position{Filename: file}, "bad")))
	}
	assert.Equal(t, []string{"a.swift", "b.swift"}, seen)
	assert.NoError(t, h.ReporterError())
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
}

func TestHandlerIOErrorsAbort(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(reporter.NewReporter(func(reporter.ErrorWithPos) error {
		return nil
	}))
	err := h.HandleError(fs.ErrNotExist)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.ErrorIs(t, h.Error(), fs.ErrNotExist)
}
