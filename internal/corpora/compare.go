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

package corpora

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Compare compares an output. It returns "" on a match, and otherwise a
// human-readable description of the difference.
type Compare func(got, want string) string

// TextCompare requires an exact match, and reports a colorized unified diff.
func TextCompare(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

// YAMLCompare compares two YAML documents by value, so that formatting
// differences such as key order, quoting and flow style do not matter.
// Documents that fail to decode fall back to [TextCompare].
func YAMLCompare(got, want string) string {
	var gotValue, wantValue any
	if yaml.Unmarshal([]byte(got), &gotValue) != nil || yaml.Unmarshal([]byte(want), &wantValue) != nil {
		return TextCompare(got, want)
	}
	if diff := cmp.Diff(wantValue, gotValue); diff != "" {
		return "(-want +got)\n" + diff
	}
	return ""
}
