// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzw implements Lempel-Ziv-Welch coding over the UTF-8 bytes of text.
//
// The dictionary starts with the 256 single-byte strings, which take the
// codes 0 through 255, and grows by one entry for every code after the first.
// It is not bounded and there are no clear or end codes.
//
// Compress renders the codes as a JSON array of integers:
//
//	[84,79,66,69,79,82,78,79,84,256,258,260,265,259,261,263]
//
// is the output for "TOBEORNOTTOBEORTOBEORNOT".
package lzw

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/dsnet/golib/errs"
)

const numLits = 256 // Codes below this are literal bytes

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

var ErrCorrupt error = Error("invalid compressed data")

// Codec is the LZW codec. The zero value is ready for use.
type Codec struct{}

// Compress is equivalent to the package level Compress.
func (Codec) Compress(s string) (string, error) { return Compress(s) }

// Decompress is equivalent to the package level Decompress.
func (Codec) Decompress(s string) (string, error) { return Decompress(s) }

// Encode returns the codes for b. It never returns nil.
func Encode(b []byte) []int {
	dict := make(map[string]int, numLits+len(b))
	for i := 0; i < numLits; i++ {
		dict[string([]byte{byte(i)})] = i
	}

	// The current phrase is b[start:end-1]. It is always in the dictionary.
	codes := make([]int, 0, len(b)/2+1)
	var start int
	for end := 1; end <= len(b); end++ {
		if _, ok := dict[string(b[start:end])]; ok {
			continue
		}
		codes = append(codes, dict[string(b[start:end-1])])
		dict[string(b[start:end])] = len(dict)
		start = end - 1
	}
	if start < len(b) {
		codes = append(codes, dict[string(b[start:])])
	}
	return codes
}

// Decode returns the bytes for codes.
// It reports ErrCorrupt for a code that is not yet defined.
func Decode(codes []int) (b []byte, err error) {
	defer errs.Recover(&err)
	return decode(codes), nil
}

func decode(codes []int) []byte {
	if len(codes) == 0 {
		return []byte{}
	}

	entries := make([][]byte, numLits, numLits+len(codes))
	for i := range entries {
		entries[i] = []byte{byte(i)}
	}

	k := codes[0]
	errs.Assert(k >= 0 && k < numLits, ErrCorrupt)
	w := entries[k]
	out := append([]byte(nil), w...)
	for _, k := range codes[1:] {
		var entry []byte
		switch {
		case k >= 0 && k < len(entries):
			entry = entries[k]
		case k == len(entries):
			// The code being defined by this very step.
			entry = append(w[:len(w):len(w)], w[0])
		default:
			errs.Panic(ErrCorrupt)
		}
		out = append(out, entry...)
		entries = append(entries, append(w[:len(w):len(w)], entry[0]))
		w = entry
	}
	return out
}

// Compress encodes the UTF-8 bytes of s as a JSON array of codes.
// The empty string compresses to "[]".
func Compress(s string) (string, error) {
	b, err := json.Marshal(Encode([]byte(s)))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decompress decodes the output of Compress.
// Both "" and "[]" decompress to the empty string.
func Decompress(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	var codes []int
	if err := json.Unmarshal([]byte(s), &codes); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	b, err := Decode(codes)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrCorrupt
	}
	return string(b), nil
}
