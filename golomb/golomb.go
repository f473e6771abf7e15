// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package golomb implements a Golomb code over the UTF-8 bytes of text.
//
// Every byte b is split into a quotient q = b/m and a remainder r = b%m.
// The quotient is written in unary as q '1' symbols terminated by a '0', and
// the remainder is written as a 3-symbol binary number. With m = 8 the byte 37
// has q = 4 and r = 5:
//
//	11110 101
//
// The output is a bit-symbol string: one '0' or '1' character per bit.
//
// The remainder field has a fixed width of 3 symbols for every m, so only
// 1 <= m <= 8 can be represented. NewCodec rejects any other parameter.
package golomb

import (
	"strings"
	"unicode/utf8"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/textcodec/internal"
)

const (
	// DefaultM is the parameter used by Compress and Decompress.
	DefaultM = 8

	remBits = 3 // Width of the remainder field
	maxM    = 1 << remBits
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "golomb: " + string(e) }

var (
	ErrCorrupt   error = Error("stream is corrupted")
	ErrParameter error = Error("parameter out of range")
)

// Codec is a Golomb codec with a fixed parameter.
// It is immutable and safe for concurrent use.
// The zero value uses DefaultM.
type Codec struct {
	m int // Zero means DefaultM
}

// NewCodec returns a codec with parameter m, which must be within 1..8.
func NewCodec(m int) (*Codec, error) {
	if m < 1 || m > maxM {
		return nil, ErrParameter
	}
	return &Codec{m: m}, nil
}

var defaultCodec = &Codec{m: DefaultM}

// Compress encodes s with the default parameter.
func Compress(s string) (string, error) { return defaultCodec.Compress(s) }

// Decompress decodes s with the default parameter.
func Decompress(s string) (string, error) { return defaultCodec.Decompress(s) }

// M reports the parameter of the codec.
func (c *Codec) M() int { return c.param() }

func (c *Codec) param() int {
	if c.m == 0 {
		return DefaultM
	}
	return c.m
}

// Compress encodes every byte of s.
func (c *Codec) Compress(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s) * (remBits + 1))
	for i := 0; i < len(s); i++ {
		c.encodeByte(&sb, s[i])
	}
	return sb.String(), nil
}

// Decompress decodes the output of Compress. Any malformed segment,
// including a truncated one, yields ErrCorrupt.
func (c *Codec) Decompress(s string) (out string, err error) {
	defer errs.Recover(&err)

	d := decoder{m: c.param(), s: s}
	buf := make([]byte, 0, len(s)/(remBits+1))
	for !d.done() {
		buf = append(buf, d.decodeByte())
	}
	errs.Assert(utf8.Valid(buf), ErrCorrupt)
	return string(buf), nil
}

func (c *Codec) encodeByte(sb *strings.Builder, b byte) {
	m := c.param()
	q, r := int(b)/m, int(b)%m
	for i := 0; i < q; i++ {
		sb.WriteByte('1')
	}
	sb.WriteByte('0')
	for i := remBits - 1; i >= 0; i-- {
		sb.WriteByte(byte('0' + (r>>uint(i))&1))
	}
}

// decoder reads segments from a bit-symbol string.
// Its methods panic with ErrCorrupt on malformed input.
type decoder struct {
	m   int
	s   string
	pos int
}

func (d *decoder) done() bool { return d.pos >= len(d.s) }

func (d *decoder) decodeByte() byte {
	q := d.readUnary()
	r := d.readRemainder()
	errs.Assert(r < d.m, ErrCorrupt)
	errs.Assert(q <= (0xff-r)/d.m, ErrCorrupt)
	return byte(q*d.m + r)
}

// readUnary reads '1' symbols up to and including the terminating '0'.
func (d *decoder) readUnary() (q int) {
	for ; d.pos < len(d.s) && d.s[d.pos] == '1'; d.pos++ {
		q++
	}
	errs.Assert(d.pos < len(d.s), ErrCorrupt) // Unterminated run
	errs.Assert(d.s[d.pos] == '0', ErrCorrupt)
	d.pos++
	return q
}

// readRemainder reads exactly remBits symbols as a binary number.
func (d *decoder) readRemainder() (r int) {
	errs.Assert(d.pos+remBits <= len(d.s), ErrCorrupt)
	for i := d.pos; i < d.pos+remBits; i++ {
		errs.Assert(internal.IsBit(d.s[i]), ErrCorrupt)
		r = r<<1 | int(d.s[i]-'0')
	}
	d.pos += remBits
	return r
}
