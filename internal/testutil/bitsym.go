// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]+$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitSym decodes a BitSym formatted string into a bit-symbol string.
//
// The BitSym format allows bit-symbol strings to be written as a series of
// tokens, so that test vectors can carry the structure of the encoding they
// describe. It is a simplified form of the BitGen format used for packed
// streams: the output is a string of '0' and '1' characters and is always
// read left to right, so there are no bit-packing or bit-parsing modes.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character is used for commenting. Thus, any bytes on a given
// line that appear after the '#' character is ignored.
//
// A token of the pattern "[01]+" is copied to the output as is.
//
// A token of the pattern "D[0-9]+:[0-9]+" represents a decimal value. The
// first number is the bit-length and the second is the value, which is
// written as a zero-padded binary string of exactly that length. The
// bit-length must be long enough to contain the value.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token. This is
// a quantifier decorator which indicates that the current token is to be
// repeated some number of times. A quantifier of zero drops the token.
//
// Example BitSym string for the Golomb code of the byte 37 with m=8:
//	1*4 0 # Quotient: 4 in unary
//	D3:5  # Remainder: 5
//
// Generated output: "11110101"
func DecodeBitSym(str string) (string, error) {
	// Tokenize the input string by removing comments and superfluous spaces.
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	var sb strings.Builder
	for _, t := range toks {
		// Check for quantifier decorators.
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return "", errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			sb.WriteString(strings.Repeat(t, rep))
		case reDec.MatchString(t):
			i := strings.IndexByte(t, ':')
			tn, tv := t[1:i], t[i+1:]

			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, 10, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return "", errors.New("testutil: invalid numeric token: " + t)
			}
			var s string
			if v > 0 {
				s = strconv.FormatUint(v, 2)
			}
			if len(s) > n {
				return "", errors.New("testutil: integer overflow on token: " + t)
			}
			s = strings.Repeat("0", n-len(s)) + s
			sb.WriteString(strings.Repeat(s, rep))
		default:
			return "", errors.New("testutil: invalid token: " + t)
		}
	}
	return sb.String(), nil
}
