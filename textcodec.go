// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package textcodec provides access to a family of lossless text codecs:
// run-length encoding, Huffman coding, Golomb coding and
// Lempel-Ziv-Welch coding.
//
// Every codec maps text to a textual artifact and back. The codecs live in
// their own packages and may be used directly; this package selects them by
// name and reports statistics about their output.
package textcodec

import (
	"fmt"
	"strings"

	"github.com/dsnet/textcodec/golomb"
	"github.com/dsnet/textcodec/huffman"
	"github.com/dsnet/textcodec/internal"
	"github.com/dsnet/textcodec/lzw"
	"github.com/dsnet/textcodec/rle"
)

// Codec is the capability shared by all codecs.
// For every supported input s, Decompress(Compress(s)) returns s.
type Codec interface {
	Compress(s string) (string, error)
	Decompress(s string) (string, error)
}

// Algorithm names a codec.
type Algorithm string

const (
	RLE     Algorithm = "rle"
	Huffman Algorithm = "huffman"
	Golomb  Algorithm = "golomb"
	LZW     Algorithm = "lzw"
)

var ErrUnknownAlgorithm error = internal.Error("unknown algorithm")

var codecs = map[Algorithm]Codec{
	RLE:     rle.Codec{},
	Huffman: huffman.Codec{},
	Golomb:  mustGolomb(golomb.DefaultM),
	LZW:     lzw.Codec{},
}

func mustGolomb(m int) *golomb.Codec {
	c, err := golomb.NewCodec(m)
	if err != nil {
		panic(err)
	}
	return c
}

// Algorithms lists the known algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{RLE, Huffman, Golomb, LZW}
}

// ParseAlgorithm returns the algorithm with the given name,
// ignoring case and surrounding space.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := codecs[alg]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// New returns the codec for alg. The Golomb codec uses golomb.DefaultM.
func New(alg Algorithm) (Codec, error) {
	c, ok := codecs[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	return c, nil
}
