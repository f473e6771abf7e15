// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitsym converts between bit-symbol strings and packed bits.
//
// The codecs emit one character per bit. Packing is never part of their
// format; it is used to measure what a packed rendition would cost and by
// tools that want to store artifacts compactly.
package bitsym

import (
	"github.com/dsnet/golib/bits"
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/textcodec/internal"
)

// ErrInvalid reports a character other than '0' or '1'.
var ErrInvalid error = internal.Error("invalid bit symbol")

// Pack packs the bit-symbol string s, first character first.
// The last byte is padded with zero bits. The number of meaningful bits is
// returned in n and is needed by Unpack.
func Pack(s string) (b []byte, n int64, err error) {
	defer errs.Recover(&err)

	bb := bits.NewBuffer(nil)
	for i := 0; i < len(s); i++ {
		errs.Assert(internal.IsBit(s[i]), ErrInvalid)
		writeBit(bb, s[i] == '1')
	}
	n = bb.BitsWritten()
	if pads := numPads(n); pads > 0 {
		_, err := bb.WriteBits(0, pads)
		errs.Panic(err)
	}
	return bb.Bytes(), n, nil
}

// Unpack is the inverse of Pack. It reads the first n bits of b.
func Unpack(b []byte, n int64) (s string, err error) {
	defer errs.Recover(&err)

	errs.Assert(n >= 0 && n <= 8*int64(len(b)), ErrInvalid)
	bb := bits.NewBuffer(b)
	buf := make([]byte, n)
	for i := range buf {
		bit, err := bb.ReadBit()
		errs.Panic(err)
		buf[i] = '0'
		if bit {
			buf[i] = '1'
		}
	}
	return string(buf), nil
}

// PackedLen reports the number of bytes Pack would produce for s,
// without validating the symbols.
func PackedLen(s string) int {
	return (len(s) + 7) / 8
}

// Write a single bit.
// This function panics if an error occurs.
func writeBit(bw bits.BitsWriter, bit bool) {
	var v uint
	if bit {
		v = 1
	}
	_, err := bw.WriteBits(v, 1)
	errs.Panic(err)
}

// Number of bits needed to pad n-bits to a byte alignment.
func numPads(n int64) int {
	return int((8 - n%8) % 8)
}
