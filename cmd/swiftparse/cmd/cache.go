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

	"github.com/protocolbuffers/protoscope"
	"github.com/spf13/cobra"
)

func newCacheCommand(opts *options) *cobra.Command {
	cache := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the token cache",
	}
	cache.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print every cache entry and its decoded wire form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, s.Close())
			}()
			if s.cache.Path() == "" {
				return errors.New("the token cache is disabled")
			}

			entries, err := s.cache.Entries()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, e := range entries {
				text := protoscope.Write(e.Data, protoscope.WriterOptions{})
				text = "  " + strings.ReplaceAll(strings.TrimRight(text, "\n"), "\n", "\n  ")
				if _, err := fmt.Fprintf(w, "%s %s\n%s\n", e.Path, e.Hash, text); err != nil {
					return err
				}
			}
			return nil
		},
	})
	return cache
}
