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

package tokencache

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/btree"

	"github.com/bufbuild/swiftcompile/lexer"
	"github.com/bufbuild/swiftcompile/token"
)

// DefaultPath is the backing file used when none is configured.
const DefaultPath = "cache.txt"

var (
	// ErrCorruptEntry is returned when a stored entry whose hash matches
	// cannot be decoded. It is not treated as a miss.
	ErrCorruptEntry = errors.New("corrupt token cache entry")
	// ErrClosed is returned by operations on a cache after Close.
	ErrClosed = errors.New("token cache is closed")
)

// Cache is a content-addressed token cache. It is safe for concurrent use by
// multiple goroutines. The zero value is not usable; construct one with
// [Open] or [PassThrough].
type Cache struct {
	path   string // Empty for a pass-through cache.
	lex    lexer.Func
	logger *slog.Logger

	mu      sync.Mutex
	entries btree.Map[string, entry]
	dirty   bool
	closed  bool
}

type entry struct {
	hash    string
	encoded string
}

// Entry is a snapshot of one stored file.
type Entry struct {
	Path string
	Hash string
	// Data is the token encoding, after base64 decoding.
	Data []byte
}

// Tokens decodes the entry's tokens.
func (e Entry) Tokens() ([]token.Token, error) {
	return decodeTokens(e.Path, e.Data)
}

// Option configures a [Cache].
type Option func(*Cache)

// WithLexer replaces the function used on a cache miss. The default is
// [lexer.Lex].
func WithLexer(fn lexer.Func) Option {
	return func(c *Cache) {
		c.lex = fn
	}
}

// WithLogger sets the logger that receives hit, miss and flush events at
// debug level. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

func newCache(path string, opts []Option) *Cache {
	c := &Cache{
		path:   path,
		lex:    lexer.Lex,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PassThrough returns a cache that never stores anything: every call lexes
// the source directly, without hashing, and Close writes nothing.
func PassThrough(opts ...Option) *Cache {
	return newCache("", opts)
}

// Open loads the backing file at path into a new cache. A missing file is
// an empty cache. A line that does not have the path,hash,tokens shape is an
// error.
func Open(path string, opts ...Option) (*Cache, error) {
	if path == "" {
		path = DefaultPath
	}
	c := newCache(path, opts)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return nil, fmt.Errorf("open token cache: %w", err)
	}
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			continue
		}
		file, e, ok := parseLine(string(line))
		if !ok {
			return nil, fmt.Errorf("%s:%d: malformed token cache line", path, i+1)
		}
		c.entries.Set(file, e)
	}
	c.logger.Debug("opened token cache", slog.String("path", path), slog.Int("entries", c.entries.Len()))
	return c, nil
}

// parseLine splits from the right, since neither the hash nor the base64
// tokens contain commas but the path may.
func parseLine(line string) (string, entry, bool) {
	j := strings.LastIndexByte(line, ',')
	if j < 0 {
		return "", entry{}, false
	}
	i := strings.LastIndexByte(line[:j], ',')
	if i <= 0 {
		return "", entry{}, false
	}
	e := entry{hash: line[i+1 : j], encoded: line[j+1:]}
	if e.hash == "" {
		return "", entry{}, false
	}
	return line[:i], e, true
}

// Path returns the backing file, or "" for a pass-through cache.
func (c *Cache) Path() string {
	return c.path
}

// Tokenize reads the file at path and returns its tokens, from the cache if
// the file is unchanged since it was last stored.
func (c *Cache) Tokenize(path string) ([]token.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.TokenizeSource(path, data)
}

// TokenizeSource is like [Cache.Tokenize] for bytes already read from path.
func (c *Cache) TokenizeSource(path string, data []byte) ([]token.Token, error) {
	if c.path == "" {
		return c.lex(path, data)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	e, ok := c.entries.Get(path)
	c.mu.Unlock()

	if ok && e.hash == hash {
		tokens, err := decodeString(path, e.encoded)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		c.logger.Debug("token cache hit", slog.String("file", path))
		return tokens, nil
	}

	c.logger.Debug("token cache miss", slog.String("file", path), slog.Bool("stale", ok))
	tokens, err := c.lex(path, data)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	c.entries.Set(path, entry{hash: hash, encoded: encodeString(tokens)})
	c.dirty = true
	return tokens, nil
}

// Entries returns a snapshot of every stored entry, ordered by path.
func (c *Cache) Entries() ([]Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]Entry, 0, c.entries.Len())
	var err error
	c.entries.Scan(func(path string, e entry) bool {
		var data []byte
		data, err = base64.StdEncoding.DecodeString(e.encoded)
		if err != nil {
			err = fmt.Errorf("%s: %w: %w", path, ErrCorruptEntry, err)
			return false
		}
		entries = append(entries, Entry{Path: path, Hash: e.hash, Data: data})
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Close ends the cache's lifetime and rewrites the backing file with every
// entry, old and new. The file is left alone if nothing changed since Open.
// Calling Close again does nothing.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.path == "" || !c.dirty {
		return nil
	}

	var buf bytes.Buffer
	c.entries.Scan(func(path string, e entry) bool {
		buf.WriteString(path)
		buf.WriteByte(',')
		buf.WriteString(e.hash)
		buf.WriteByte(',')
		buf.WriteString(e.encoded)
		buf.WriteByte('\n')
		return true
	})
	if err := writeFile(c.path, buf.Bytes()); err != nil {
		return fmt.Errorf("flush token cache: %w", err)
	}
	c.logger.Debug("flushed token cache", slog.String("path", c.path), slog.Int("entries", c.entries.Len()))
	return nil
}

// writeFile replaces path through a rename, so a failed write leaves the
// previous contents in place.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
