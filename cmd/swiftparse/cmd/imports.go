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

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bufbuild/swiftcompile/parser/fastscan"
)

func newImportsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "imports [files...]",
		Short: "List the modules each file imports, without parsing it",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, s.Close())
			}()

			paths, err := s.sourceFiles(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, path := range paths {
				tokens, err := s.cache.Tokenize(path)
				if err != nil {
					return err
				}
				imports := fastscan.ScanTokens(tokens)
				if _, err := fmt.Fprintf(w, "%s: %s\n", path, strings.Join(imports, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
