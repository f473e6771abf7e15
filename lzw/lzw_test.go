// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/textcodec/internal/testutil"
)

func TestEncode(t *testing.T) {
	var vectors = []struct {
		input string
		codes []int
	}{{
		input: "",
		codes: []int{},
	}, {
		input: "a",
		codes: []int{97},
	}, {
		input: "TOBEORNOTTOBEORTOBEORNOT",
		codes: []int{84, 79, 66, 69, 79, 82, 78, 79, 84, 256, 258, 260, 265, 259, 261, 263},
	}, {
		// Code 257 is emitted while it is being defined.
		input: "aaaaaaa",
		codes: []int{97, 256, 257, 97},
	}, {
		input: "abababab",
		codes: []int{97, 98, 256, 258, 98},
	}, {
		input: "é",
		codes: []int{195, 169},
	}, {
		input: "日本",
		codes: []int{230, 151, 165, 230, 156, 172},
	}}

	for i, v := range vectors {
		codes := Encode([]byte(v.input))
		if diff := cmp.Diff(v.codes, codes); diff != "" {
			t.Errorf("test %d, codes mismatch (-want +got):\n%s", i, diff)
		}

		output, err := Decode(codes)
		assert.NoError(t, err, "test %d", i)
		assert.Equal(t, v.input, string(output), "test %d", i)
	}
}

func TestDecodeErrors(t *testing.T) {
	var vectors = []struct {
		desc  string
		codes []int
	}{
		{"first code not a literal", []int{256}},
		{"negative first code", []int{-1}},
		{"code above next", []int{97, 257}},
		{"code far above next", []int{84, 79, 1000}},
		{"negative code", []int{97, -5}},
	}

	for _, v := range vectors {
		output, err := Decode(v.codes)
		assert.ErrorIs(t, err, ErrCorrupt, v.desc)
		assert.Nil(t, output, v.desc)
	}
}

func TestCompress(t *testing.T) {
	var vectors = []struct {
		input  string
		output string
	}{
		{"", "[]"},
		{"a", "[97]"},
		{"TOBEORNOTTOBEORTOBEORNOT", "[84,79,66,69,79,82,78,79,84,256,258,260,265,259,261,263]"},
		{"é", "[195,169]"},
	}

	for i, v := range vectors {
		output, err := Compress(v.input)
		assert.NoError(t, err, "test %d", i)
		assert.Equal(t, v.output, output, "test %d", i)

		input, err := Decompress(output)
		assert.NoError(t, err, "test %d", i)
		assert.Equal(t, v.input, input, "test %d", i)
	}
}

func TestDecompress(t *testing.T) {
	var vectors = []struct {
		desc   string
		input  string
		output string
		fail   bool
	}{
		{desc: "empty", input: "", output: ""},
		{desc: "empty array", input: "[]", output: ""},
		{desc: "spaced array", input: "[ 72, 105 ]", output: "Hi"},
		{desc: "not JSON", input: "84,79", fail: true},
		{desc: "not integers", input: `["a"]`, fail: true},
		{desc: "fractional code", input: "[1.5]", fail: true},
		{desc: "undefined code", input: "[97,300]", fail: true},
		{desc: "invalid UTF-8", input: "[255]", fail: true},
		{desc: "truncated rune", input: "[230,151]", fail: true},
	}

	for _, v := range vectors {
		output, err := Decompress(v.input)
		if v.fail {
			assert.ErrorIs(t, err, ErrCorrupt, v.desc)
			assert.Empty(t, output, v.desc)
			continue
		}
		assert.NoError(t, err, v.desc)
		assert.Equal(t, v.output, output, v.desc)
	}
}

func TestRoundTrip(t *testing.T) {
	rand := testutil.NewRand(0)
	inputs := []string{
		"",
		"TOBEORNOTTOBEORTOBEORNOT",
		"0123456789[],",
		rand.Text(1000, testutil.Letters),
		rand.Text(300, testutil.Unicode),
		rand.Runs(200, 30, testutil.Binary),
	}

	var c Codec
	for i, input := range inputs {
		output, err := c.Compress(input)
		require.NoError(t, err, "test %d", i)
		got, err := c.Decompress(output)
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, input, got, "test %d", i)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{"", "a", "TOBEORNOTTOBEORTOBEORNOT", "aaaaaaa", "日本"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}
		output, err := Compress(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := Decompress(output)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != input {
			t.Fatalf("mismatch:\ngot  %q\nwant %q", got, input)
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	input := []byte(testutil.NewRand(0).Text(1<<12, testutil.Letters))
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(input)
	}
}

func BenchmarkDecode(b *testing.B) {
	input := []byte(testutil.NewRand(0).Text(1<<12, testutil.Letters))
	codes := Encode(input)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode(codes)
	}
}
