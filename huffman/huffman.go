// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements Huffman coding of text with a textual
// representation of both the code table and the encoded bits.
//
// The output of Compress is the code table as a JSON array of
// [symbol, code] pairs, a '|' delimiter, and the encoded payload as a
// bit-symbol string. For the input "hello":
//
//	[["h","00"],["e","01"],["o","10"],["l","11"]]|0001111110
//
// Symbols are runes. The table lists the codes in depth-first order of the
// Huffman tree, which is built deterministically from the rune frequencies,
// so equal inputs always produce equal outputs.
//
// Decompress is lenient: an artifact without a delimiter, with an empty table
// or with an empty payload decodes to the empty string. Decoding stops at the
// first payload character that is not a bit, such as a trailing newline, and
// bits that do not complete a code at the end are ignored.
package huffman

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/textcodec/internal"
)

const delim = '|'

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var ErrCorrupt error = Error("stream is corrupted")

// Code is an entry of a code table.
type Code struct {
	Sym  rune
	Bits string // Bit-symbol string
}

// Codec is the Huffman codec. The zero value is ready for use.
type Codec struct{}

// Compress is equivalent to the package level Compress.
func (Codec) Compress(s string) (string, error) { return Compress(s) }

// Decompress is equivalent to the package level Decompress.
func (Codec) Decompress(s string) (string, error) { return Decompress(s) }

// CodeTable returns the code table that Compress uses for s.
// It is empty for empty input.
func CodeTable(s string) []Code {
	return buildCodes(buildTree(countFreqs(s)))
}

// Compress encodes s together with its code table.
// The empty string compresses to the empty string.
func Compress(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	codes := CodeTable(s)
	table, err := marshalTable(codes)
	if err != nil {
		return "", err
	}
	lut := make(map[rune]string, len(codes))
	for _, c := range codes {
		lut[c.Sym] = c.Bits
	}

	var sb strings.Builder
	sb.WriteString(table)
	sb.WriteByte(delim)
	for _, r := range s {
		sb.WriteString(lut[r])
	}
	return sb.String(), nil
}

// Decompress decodes the output of Compress.
//
// The payload is the text after the last '|', since a '|' symbol may appear
// within the table. Only its leading bit symbols are decoded. A table that
// cannot be parsed yields ErrCorrupt.
func Decompress(s string) (out string, err error) {
	i := strings.LastIndexByte(s, delim)
	if i < 0 {
		return "", nil
	}
	table, payload := s[:i], s[i+1:]
	if table == "" || payload == "" {
		return "", nil
	}

	defer errs.Recover(&err)
	lut := unmarshalTable(table)
	return decodePayload(lut, leadingBits(payload)), nil
}

// leadingBits returns the longest prefix of s that is a bit-symbol string.
func leadingBits(s string) string {
	for i := 0; i < len(s); i++ {
		if !internal.IsBit(s[i]) {
			return s[:i]
		}
	}
	return s
}

// decodePayload greedily matches prefixes of the payload against the table.
// This is unambiguous since the codes are prefix-free.
func decodePayload(lut map[string]string, payload string) string {
	var sb strings.Builder
	var start int
	for end := 1; end <= len(payload); end++ {
		if sym, ok := lut[payload[start:end]]; ok {
			sb.WriteString(sym)
			start = end
		}
	}
	return sb.String()
}

// marshalTable serializes the codes as an array of [symbol, code] pairs.
// HTML characters are not escaped.
func marshalTable(codes []Code) (string, error) {
	pairs := make([][2]string, len(codes))
	for i, c := range codes {
		pairs[i] = [2]string{string(c.Sym), c.Bits}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pairs); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// unmarshalTable parses a serialized table into a map from code to symbol.
// This function panics with ErrCorrupt if the table is malformed.
func unmarshalTable(table string) map[string]string {
	var pairs [][]string
	errs.Assert(json.Unmarshal([]byte(table), &pairs) == nil, ErrCorrupt)

	lut := make(map[string]string, len(pairs))
	for _, p := range pairs {
		errs.Assert(len(p) == 2, ErrCorrupt)
		errs.Assert(p[0] != "" && internal.IsBitString(p[1]), ErrCorrupt)
		lut[p[1]] = p[0]
	}
	return lut
}
