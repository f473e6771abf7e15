// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rle implements a textual run-length encoding.
//
// A run of a single rune is written as the rune itself. A run of n > 1 runes
// is written as n in decimal followed by the rune. For example:
//
//	aaabbbcccdddd  <=>  3a3b3c4d
//	abc            <=>  abc
//	wwwwwwwwwwwwx  <=>  12wx
//
// Since counts are written with the ASCII digits '0' through '9', text that
// itself contains those digits cannot be told apart from a count. Compress
// rejects such input with ErrDigit. Other runes, including non-ASCII digits,
// are ordinary symbols.
//
// The input is processed rune by rune; invalid UTF-8 sequences are read as
// utf8.RuneError like any other range over a string.
//
// A few bytes of compressed text may expand to a very large output, so
// decompression is bounded by a limit on the decompressed size
// (DefaultMaxSize unless Codec.MaxSize says otherwise).
package rle

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/textcodec/internal"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "rle: " + string(e) }

var (
	ErrCorrupt  error = Error("stream is corrupted")
	ErrDigit    error = Error("input contains decimal digits")
	ErrTooLarge error = Error("decompressed size exceeds limit")
)

// DefaultMaxSize is the default limit in bytes on the decompressed size.
const DefaultMaxSize = 1 << 26

// Codec is the RLE codec. The zero value is ready for use.
type Codec struct {
	// MaxSize is the maximum size in bytes of decompressed text.
	// If zero or negative, DefaultMaxSize is used.
	MaxSize int
}

// Compress is equivalent to the package level Compress.
func (Codec) Compress(s string) (string, error) { return Compress(s) }

// Decompress is like the package level Decompress, but honors MaxSize.
func (c Codec) Decompress(s string) (string, error) {
	limit := c.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	return decompress(s, limit)
}

// Compress run-length encodes s.
func Compress(s string) (string, error) {
	if strings.IndexFunc(s, internal.IsDigit) >= 0 {
		return "", ErrDigit
	}

	var sb strings.Builder
	grouper := NewRunGrouper(s)
	for {
		run, err := grouper.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return "", err
		}
		if run.Length > 1 {
			sb.WriteString(strconv.Itoa(run.Length))
		}
		sb.WriteRune(run.Rune)
	}
}

// Decompress expands the output of Compress.
//
// A count that is not followed by a rune, or that exceeds math.MaxInt32,
// yields ErrCorrupt. A count of zero expands to nothing. Output larger than
// DefaultMaxSize bytes yields ErrTooLarge.
func Decompress(s string) (string, error) {
	return decompress(s, DefaultMaxSize)
}

func decompress(s string, limit int) (out string, err error) {
	defer errs.Recover(&err)
	return expand(s, int64(limit)), nil
}

// expand panics with ErrCorrupt on malformed input, and with ErrTooLarge
// once the output would exceed limit bytes.
func expand(s string, limit int64) string {
	var sb strings.Builder
	var cnt, size int64
	var hasCnt bool // Distinguishes "0a" from "a"
	for _, r := range s {
		if internal.IsDigit(r) {
			cnt = 10*cnt + int64(r-'0')
			errs.Assert(cnt <= math.MaxInt32, ErrCorrupt)
			hasCnt = true
			continue
		}
		n := int64(1)
		if hasCnt {
			n = cnt
		}
		size += n * int64(utf8.RuneLen(r))
		errs.Assert(size <= limit, ErrTooLarge)
		if hasCnt {
			sb.WriteString(strings.Repeat(string(r), int(cnt)))
		} else {
			sb.WriteRune(r)
		}
		cnt, hasCnt = 0, false
	}
	errs.Assert(!hasCnt, ErrCorrupt) // Dangling count
	return sb.String()
}
