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

package swiftcompile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/swiftcompile/reporter"
	"github.com/bufbuild/swiftcompile/tokencache"
)

// Config describes a run over a source tree. It is usually loaded from a
// file with [LoadConfig].
type Config struct {
	Cache CacheConfig `yaml:"cache" toml:"cache"`
	// Parallelism is the maximum number of files parsed at once; zero picks
	// a default based on the number of CPUs.
	Parallelism int `yaml:"parallelism" toml:"parallelism"`
	// Include and Exclude are doublestar globs, relative to the source
	// root, selecting the files to parse.
	Include []string `yaml:"include" toml:"include"`
	Exclude []string `yaml:"exclude" toml:"exclude"`
	// SearchPaths are directories searched for relative paths named on the
	// command line.
	SearchPaths []string `yaml:"search_paths" toml:"search_paths"`
}

// CacheConfig configures the tokenizer cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"`
}

// DefaultConfig returns the configuration used when there is no file: the
// cache is on, at [tokencache.DefaultPath], and every .swift file is
// included.
func DefaultConfig() Config {
	return Config{
		Cache:   CacheConfig{Enabled: true, Path: tokencache.DefaultPath},
		Include: []string{"**/*.swift"},
	}
}

// LoadConfig reads a configuration file. The format is chosen by extension:
// .yaml or .yml for YAML, .toml for TOML. Fields missing from the file keep
// their [DefaultConfig] values, and unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Config{}, err
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%s: unknown field %q", path, undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("%s: unsupported config format %q", path, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the globs are well formed and the numbers in range.
func (c Config) Validate() error {
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism)
	}
	if c.Cache.Enabled && c.Cache.Path == "" {
		return errors.New("cache.path must be set when the cache is enabled")
	}
	for _, pattern := range slices.Concat(c.Include, c.Exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob %q", pattern)
		}
	}
	return nil
}

// OpenCache opens the configured tokenizer cache, or a pass-through one if
// the cache is disabled. The caller must close it.
func (c Config) OpenCache(opts ...tokencache.Option) (*tokencache.Cache, error) {
	if !c.Cache.Enabled {
		return tokencache.PassThrough(opts...), nil
	}
	return tokencache.Open(c.Cache.Path, opts...)
}

// Compiler returns a compiler for this configuration that tokenizes through
// cache.
func (c Config) Compiler(cache *tokencache.Cache, rep reporter.Reporter) *Compiler {
	return &Compiler{
		Resolver:       &SourceResolver{SearchPaths: c.SearchPaths},
		MaxParallelism: c.Parallelism,
		Reporter:       rep,
		Cache:          cache,
	}
}

// SourceFiles lists the files under root matched by Include and not by
// Exclude, sorted and without duplicates.
func (c Config) SourceFiles(root string) ([]string, error) {
	fsys := os.DirFS(root)
	var names []string
	for _, pattern := range c.Include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, name := range matches {
			if !c.excluded(name) {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	names = slices.Compact(names)
	for i, name := range names {
		names[i] = filepath.Join(root, filepath.FromSlash(name))
	}
	return names, nil
}

func (c Config) excluded(name string) bool {
	for _, pattern := range c.Exclude {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
	}
	return false
}
