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
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [files...]",
		Short: "Parse files again each time they are written",
		Long: `Prints the syntax tree of every file once, then again whenever a file is
created or written. Stops on interrupt, flushing the token cache.`,
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
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return s.watch(ctx, cmd, paths)
		},
	}
}

func (s *session) watch(ctx context.Context, cmd *cobra.Command, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Directories are watched rather than files, since editors often
	// replace a file instead of writing it in place.
	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = path
		if dir := filepath.Dir(abs); !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return err
			}
			dirs[dir] = true
		}
	}

	s.reparse(ctx, cmd, paths...)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if path, ok := watched[filepath.Clean(ev.Name)]; ok {
				s.logger.Debug("file changed", slog.String("file", path), slog.String("op", ev.Op.String()))
				s.reparse(ctx, cmd, path)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", slog.Any("error", err))
		}
	}
}

// reparse prints the files that parse; errors are logged by the compiler's
// reporter.
func (s *session) reparse(ctx context.Context, cmd *cobra.Command, paths ...string) {
	files, err := s.compiler().Parse(ctx, paths...)
	for _, file := range files {
		if err := printFile(cmd.OutOrStdout(), file); err != nil {
			s.logger.Error(err.Error())
		}
	}
	if err != nil && len(files) == 0 {
		s.logger.Error(err.Error())
	}
}
