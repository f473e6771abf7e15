// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"

	"github.com/noxer/bytewriter"

	"github.com/dsnet/textcodec"
	"github.com/dsnet/textcodec/internal/bitsym"
)

// The packed codecs store the bit-symbol part of an artifact eight bits per
// byte. This estimates what the Golomb and Huffman codes cost once the
// one-character-per-bit rendition is removed.
//
// A packed artifact is framed as:
//	uvarint(len(head)) head uvarint(nbits) packed-bits
//
// where head is the textual part of the artifact that precedes the bits
// (the Huffman table and its delimiter) and is empty for Golomb.

var errFrame = errors.New("bench: invalid packed frame")

func init() {
	for _, alg := range []textcodec.Algorithm{textcodec.Golomb, textcodec.Huffman} {
		c, err := textcodec.New(alg)
		if err != nil {
			panic(err)
		}
		hasHead := alg == textcodec.Huffman
		RegisterEncoder(string(alg)+".packed",
			func(w io.Writer) io.WriteCloser {
				return &textWriter{w: w, fn: func(s string) (string, error) {
					data, err := c.Compress(s)
					if err != nil {
						return "", err
					}
					return packArtifact(data, hasHead)
				}}
			})
		RegisterDecoder(string(alg)+".packed",
			func(r io.Reader) io.ReadCloser {
				return &textReader{r: r, fn: func(s string) (string, error) {
					data, err := unpackArtifact(s)
					if err != nil {
						return "", err
					}
					return c.Decompress(data)
				}}
			})
	}
}

func packArtifact(data string, hasHead bool) (string, error) {
	var head, body string
	if i := strings.LastIndexByte(data, '|'); hasHead && i >= 0 {
		head, body = data[:i+1], data[i+1:]
	} else {
		body = data
	}
	packed, nbits, err := bitsym.Pack(body)
	if err != nil {
		return "", err
	}

	var lenHead, lenBits [binary.MaxVarintLen64]byte
	parts := [][]byte{
		lenHead[:binary.PutUvarint(lenHead[:], uint64(len(head)))],
		[]byte(head),
		lenBits[:binary.PutUvarint(lenBits[:], uint64(nbits))],
		packed,
	}

	out := make([]byte, 2*binary.MaxVarintLen64+len(head)+len(packed))
	wr := bytewriter.New(out)
	var n int
	for _, p := range parts {
		cnt, err := wr.Write(p)
		if err != nil {
			return "", err
		}
		n += cnt
	}
	return string(out[:n]), nil
}

func unpackArtifact(s string) (string, error) {
	b := []byte(s)
	n, k := binary.Uvarint(b)
	if k <= 0 || n > uint64(len(b)-k) {
		return "", errFrame
	}
	head, b := string(b[k:k+int(n)]), b[k+int(n):]

	nbits, k := binary.Uvarint(b)
	if k <= 0 || nbits > 8*uint64(len(b)-k) {
		return "", errFrame
	}
	body, err := bitsym.Unpack(b[k:], int64(nbits))
	if err != nil {
		return "", err
	}
	return head + body, nil
}
