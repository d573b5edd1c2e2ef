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

// Package tokencache provides a content-addressed cache of token sequences.
//
// A [Cache] maps a file path to the hash of the bytes it was last lexed from
// and the tokens that came out. Tokenizing a file whose bytes still hash the
// same returns the stored tokens without running the lexer. Entries are held
// in memory and written back to a line-oriented backing file when the cache
// is closed, one line per file:
//
//	<path>,<sha256 hex>,<base64 token encoding>
//
// The whole file is rewritten on close. Two caches open on the same backing
// file at once will lose each other's entries; callers must make sure only
// one cache writes to a given path at a time.
package tokencache
