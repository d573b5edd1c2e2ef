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

// Package cmd holds the swiftparse commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bufbuild/swiftcompile"
	"github.com/bufbuild/swiftcompile/ast"
	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/tokencache"
)

type options struct {
	configFile string
	cachePath  string
	noCache    bool
	verbose    bool
}

// NewRootCommand returns the swiftparse command with every subcommand
// attached.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "swiftparse",
		Short: "Parse Swift sources into syntax trees",
		Long: `swiftparse lexes and parses Swift source files.

Tokens are cached in a file keyed by path and content hash, so unchanged
files are not lexed again. Without a config file, every .swift file under
the current directory is parsed and the cache lives in ./cache.txt.`,
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (.yaml, .yml or .toml)")
	flags.StringVar(&opts.cachePath, "cache", "", "token cache file (overrides the config)")
	flags.BoolVar(&opts.noCache, "no-cache", false, "lex every file, without reading or writing a cache")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log cache activity to stderr")
	root.MarkFlagsMutuallyExclusive("cache", "no-cache")

	root.AddCommand(
		newParseCommand(opts),
		newTokensCommand(opts),
		newImportsCommand(opts),
		newCacheCommand(opts),
		newWatchCommand(opts),
	)
	return root
}

// session is the state shared by one command run.
type session struct {
	cfg    swiftcompile.Config
	logger *slog.Logger
	cache  *tokencache.Cache
}

func (o *options) config() (swiftcompile.Config, error) {
	cfg := swiftcompile.DefaultConfig()
	if o.configFile != "" {
		var err error
		if cfg, err = swiftcompile.LoadConfig(o.configFile); err != nil {
			return swiftcompile.Config{}, err
		}
	}
	if o.cachePath != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Path = o.cachePath
	}
	if o.noCache {
		cfg.Cache.Enabled = false
	}
	return cfg, cfg.Validate()
}

func (o *options) open(cmd *cobra.Command) (*session, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	cache, err := cfg.OpenCache(tokencache.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, cache: cache}, nil
}

// Close flushes the cache.
func (s *session) Close() error {
	return s.cache.Close()
}

// compiler returns a compiler that logs every parse error and keeps going.
func (s *session) compiler() *swiftcompile.Compiler {
	rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		s.logger.Error(err.Error())
		return nil
	})
	return s.cfg.Compiler(s.cache, rep)
}

// sourceFiles returns args, or the configured files under the working
// directory when there are none.
func (s *session) sourceFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	files, err := s.cfg.SourceFiles(".")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no source files found")
	}
	return files, nil
}

func printFile(w io.Writer, file swiftcompile.File) error {
	if file.AST == nil {
		return nil
	}
	data, err := ast.MarshalYAML(file.AST)
	if err != nil {
		return fmt.Errorf("%s: %w", file.Path, err)
	}
	if _, err := fmt.Fprintf(w, "--- # %s\n", file.Path); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
