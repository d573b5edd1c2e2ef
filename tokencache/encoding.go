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
	"encoding/base64"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bufbuild/swiftcompile/token"
)

// Tokens are stored as a sequence of length-delimited records, the same
// layout a repeated message field would have on the wire. File names are not
// stored; every token in an entry belongs to the entry's path.
const (
	tokenField protowire.Number = 1

	kindField protowire.Number = 1
	textField protowire.Number = 2
	lineField protowire.Number = 3
	colField  protowire.Number = 4
)

func encodeTokens(tokens []token.Token) []byte {
	var buf, rec []byte
	for _, t := range tokens {
		rec = rec[:0]
		rec = protowire.AppendTag(rec, kindField, protowire.VarintType)
		rec = protowire.AppendVarint(rec, uint64(t.Kind))
		if t.Text != "" {
			rec = protowire.AppendTag(rec, textField, protowire.BytesType)
			rec = protowire.AppendString(rec, t.Text)
		}
		rec = protowire.AppendTag(rec, lineField, protowire.VarintType)
		rec = protowire.AppendVarint(rec, uint64(t.Line))
		rec = protowire.AppendTag(rec, colField, protowire.VarintType)
		rec = protowire.AppendVarint(rec, uint64(t.Col))

		buf = protowire.AppendTag(buf, tokenField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, rec)
	}
	return buf
}

func encodeString(tokens []token.Token) string {
	return base64.StdEncoding.EncodeToString(encodeTokens(tokens))
}

func decodeString(file, data string) ([]token.Token, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}
	return decodeTokens(file, raw)
}

func decodeTokens(file string, data []byte) ([]token.Token, error) {
	var tokens []token.Token
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, corrupt(n)
		}
		data = data[n:]
		if num != tokenField || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, corrupt(n)
			}
			data = data[n:]
			continue
		}
		rec, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, corrupt(n)
		}
		data = data[n:]
		tok, err := decodeToken(file, rec)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return nil, fmt.Errorf("%w: token sequence does not end in EOF", ErrCorruptEntry)
	}
	return tokens, nil
}

func decodeToken(file string, rec []byte) (token.Token, error) {
	tok := token.Token{File: file}
	for len(rec) > 0 {
		num, typ, n := protowire.ConsumeTag(rec)
		if n < 0 {
			return tok, corrupt(n)
		}
		rec = rec[n:]
		switch {
		case num == textField && typ == protowire.BytesType:
			text, n := protowire.ConsumeString(rec)
			if n < 0 {
				return tok, corrupt(n)
			}
			tok.Text = text
			rec = rec[n:]
		case typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(rec)
			if n < 0 {
				return tok, corrupt(n)
			}
			rec = rec[n:]
			switch num {
			case kindField:
				if v > math.MaxUint8 || !token.Kind(v).IsLexed() {
					return tok, fmt.Errorf("%w: token kind %d out of range", ErrCorruptEntry, v)
				}
				tok.Kind = token.Kind(v)
			case lineField:
				tok.Line = int(v)
			case colField:
				tok.Col = int(v)
			}
		default:
			n = protowire.ConsumeFieldValue(num, typ, rec)
			if n < 0 {
				return tok, corrupt(n)
			}
			rec = rec[n:]
		}
	}
	return tok, nil
}

func corrupt(n int) error {
	return fmt.Errorf("%w: %w", ErrCorruptEntry, protowire.ParseError(n))
}
