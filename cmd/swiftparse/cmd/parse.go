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

	"github.com/spf13/cobra"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [files...]",
		Short: "Print the syntax tree of each file as YAML",
		Long: `Parses the given files, or every configured source file when none are
given, and prints one YAML document per file. Parse errors are logged and
the remaining files are still printed.`,
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
			files, parseErr := s.compiler().Parse(cmd.Context(), paths...)
			for _, file := range files {
				if err := printFile(cmd.OutOrStdout(), file); err != nil {
					return err
				}
			}
			return parseErr
		},
	}
}
