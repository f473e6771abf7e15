// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textcodec

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/textcodec/golomb"
	"github.com/dsnet/textcodec/internal/testutil"
	"github.com/dsnet/textcodec/rle"
)

func TestParseAlgorithm(t *testing.T) {
	var vectors = []struct {
		input  string
		output Algorithm
		fail   bool
	}{
		{input: "rle", output: RLE},
		{input: "Huffman", output: Huffman},
		{input: " GOLOMB ", output: Golomb},
		{input: "lzw", output: LZW},
		{input: "flate", fail: true},
		{input: "", fail: true},
	}

	for _, v := range vectors {
		alg, err := ParseAlgorithm(v.input)
		if v.fail {
			assert.ErrorIs(t, err, ErrUnknownAlgorithm, "input %q", v.input)
			continue
		}
		assert.NoError(t, err, "input %q", v.input)
		assert.Equal(t, v.output, alg, "input %q", v.input)
	}
}

func TestNew(t *testing.T) {
	for _, alg := range Algorithms() {
		c, err := New(alg)
		require.NoError(t, err, alg)
		assert.NotNil(t, c, alg)
	}

	_, err := New("bzip2")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestCompress(t *testing.T) {
	var vectors = []struct {
		alg    Algorithm
		input  string
		output Stats
	}{{
		alg:   RLE,
		input: "aaabbbcccdddd",
		output: Stats{
			Algorithm:      RLE,
			OriginalSize:   13,
			CompressedSize: 8,
			PackedSize:     8,
			Ratio:          (1 - 8.0/13.0) * 100,
			Data:           "3a3b3c4d",
		},
	}, {
		alg:   Golomb,
		input: "%",
		output: Stats{
			Algorithm:      Golomb,
			OriginalSize:   1,
			CompressedSize: 8,
			PackedSize:     1,
			Ratio:          -700,
			Data:           "11110101",
		},
	}, {
		alg:   Huffman,
		input: "aaaa",
		output: Stats{
			Algorithm:      Huffman,
			OriginalSize:   4,
			CompressedSize: 16,
			PackedSize:     13,
			Ratio:          -300,
			Data:           `[["a","0"]]|0000`,
		},
	}, {
		alg:   LZW,
		input: "",
		output: Stats{
			Algorithm:      LZW,
			CompressedSize: 2,
			PackedSize:     2,
			Data:           "[]",
		},
	}}

	for _, v := range vectors {
		st, err := Compress(v.alg, v.input)
		require.NoError(t, err, v.alg)
		assert.InDelta(t, v.output.Ratio, st.Ratio, 1e-9, v.alg)
		st.Ratio, v.output.Ratio = 0, 0
		assert.Equal(t, v.output, st, v.alg)
	}

	_, err := Compress(RLE, "route 66")
	assert.ErrorIs(t, err, rle.ErrDigit)
	_, err = Compress("zstd", "abc")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestCheck(t *testing.T) {
	rand := testutil.NewRand(0)
	for _, input := range []string{
		"",
		"TOBEORNOTTOBEORTOBEORNOT",
		rand.Text(200, testutil.Letters),
		rand.Text(100, testutil.Unicode),
	} {
		assert.NoError(t, Check(input))
	}

	// Only RLE rejects digits.
	err := Check("route 66")
	require.Error(t, err)
	assert.ErrorIs(t, err, rle.ErrDigit)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 1)

	assert.NoError(t, Check("route 66", Huffman, Golomb, LZW))
	assert.ErrorIs(t, Check("abc", "deflate"), ErrUnknownAlgorithm)
}

// The registry codecs and a shared golomb.Codec are used from many
// goroutines at once. Run with -race.
func TestConcurrent(t *testing.T) {
	const numRoutines = 8

	rand := testutil.NewRand(0)
	var inputs []string
	for i := 0; i < numRoutines; i++ {
		inputs = append(inputs, rand.Runs(100, 10, testutil.Letters))
	}
	gc, err := golomb.NewCodec(5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errc := make(chan error, 3*numRoutines)
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			if err := Check(input); err != nil {
				errc <- fmt.Errorf("routine %d: %w", i, err)
			}
			if _, err := Compress(Huffman, input); err != nil {
				errc <- fmt.Errorf("routine %d: %w", i, err)
			}
			output, err := gc.Compress(input)
			if err == nil {
				var got string
				got, err = gc.Decompress(output)
				if err == nil && got != input {
					err = ErrMismatch
				}
			}
			if err != nil {
				errc <- fmt.Errorf("routine %d: %w", i, err)
			}
		}(i, input)
	}
	wg.Wait()
	close(errc)
	for err := range errc {
		t.Error(err)
	}
}
