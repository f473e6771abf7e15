// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"io/ioutil"
	"unicode/utf8"
)

// ResizeData resizes the input text. If n < 0, then the original input will be
// returned as is. If n <= len(input), then the input will be truncated, backing
// off to the nearest rune boundary so that valid UTF-8 stays valid. However,
// if n > len(input), then the input will be replicated to fill in the missing
// bytes.
//
// If n > len(input), then len(input) must be > 0.
func ResizeData(input []byte, n int) []byte {
	if n < 0 {
		return input
	}
	if len(input) >= n {
		for n > 0 && n < len(input) && !utf8.RuneStart(input[n]) {
			n--
		}
		return input[:n]
	}
	if len(input) == 0 {
		panic("unable to replicate an empty string")
	}

	output := make([]byte, 0, n)
	for len(output)+len(input) <= n {
		output = append(output, input...)
	}
	rem := ResizeData(input, n-len(output))
	return append(output, rem...)
}

// LoadFile loads the first n bytes of the input file. If n is less than zero,
// then it will return the input file as is. If the file is smaller than n,
// then it will replicate the input until it matches n.
func LoadFile(file string, n int) ([]byte, error) {
	input, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ResizeData(input, n), nil
}

// MustLoadFile must load a file or else panics.
func MustLoadFile(file string, n int) []byte {
	b, err := LoadFile(file, n)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeBitSym must decode a BitSym formatted string or else panics.
func MustDecodeBitSym(s string) string {
	b, err := DecodeBitSym(s)
	if err != nil {
		panic(err)
	}
	return b
}
