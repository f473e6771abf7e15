// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textcodec

import (
	"strings"

	"github.com/dsnet/textcodec/internal/bitsym"
)

// Stats describes the result of compressing some text.
// All sizes are in bytes of UTF-8 text.
type Stats struct {
	Algorithm      Algorithm
	OriginalSize   int
	CompressedSize int

	// PackedSize is the size the artifact would have if its bit-symbol
	// strings were packed eight bits per byte. It equals CompressedSize
	// for artifacts without bit-symbol strings.
	PackedSize int

	// Ratio is the percentage of space saved, (1 - compressed/original)*100.
	// It is negative when the artifact is larger than the input,
	// and zero for empty input.
	Ratio float64

	Data string // The compressed artifact
}

// Compress compresses s with the codec for alg and reports statistics.
func Compress(alg Algorithm, s string) (Stats, error) {
	c, err := New(alg)
	if err != nil {
		return Stats{}, err
	}
	data, err := c.Compress(s)
	if err != nil {
		return Stats{}, err
	}
	return NewStats(alg, s, data), nil
}

// NewStats computes the statistics for original text and the artifact data
// produced from it by alg.
func NewStats(alg Algorithm, original, data string) Stats {
	st := Stats{
		Algorithm:      alg,
		OriginalSize:   len(original),
		CompressedSize: len(data),
		PackedSize:     packedSize(alg, data),
		Data:           data,
	}
	if st.OriginalSize > 0 {
		st.Ratio = (1 - float64(st.CompressedSize)/float64(st.OriginalSize)) * 100
	}
	return st
}

func packedSize(alg Algorithm, data string) int {
	switch alg {
	case Golomb:
		return bitsym.PackedLen(data)
	case Huffman:
		// The table stays textual; only the payload is packed.
		if i := strings.LastIndexByte(data, '|'); i >= 0 {
			return i + 1 + bitsym.PackedLen(data[i+1:])
		}
	}
	return len(data)
}
