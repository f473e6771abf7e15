// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the text codecs.
//
// The codecs exchange two kinds of textual artifacts: plain text, and
// bit-symbol strings where every character is either '0' or '1'. The
// predicates here describe both alphabets.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "textcodec: " + string(e) }

// IsDigit reports whether r is an ASCII decimal digit.
// Only these runes act as run counts in the RLE format.
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }

// IsBit reports whether c is a bit symbol.
func IsBit(c byte) bool { return c == '0' || c == '1' }

// IsBitString reports whether s is a non-empty string of bit symbols.
func IsBitString(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsBit(s[i]) {
			return false
		}
	}
	return true
}
