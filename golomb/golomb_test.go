// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package golomb

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/textcodec/internal/testutil"
)

func TestNewCodec(t *testing.T) {
	for m := -1; m <= 10; m++ {
		c, err := NewCodec(m)
		if m < 1 || m > 8 {
			assert.ErrorIs(t, err, ErrParameter, "m=%d", m)
			assert.Nil(t, c, "m=%d", m)
			continue
		}
		require.NoError(t, err, "m=%d", m)
		assert.Equal(t, m, c.M())
	}
}

func TestZeroCodec(t *testing.T) {
	var c Codec
	assert.Equal(t, DefaultM, c.M())

	output, err := c.Compress("%")
	require.NoError(t, err)
	assert.Equal(t, "11110101", output)

	input := "TOBEORNOTTOBEORTOBEORNOT"
	want, err := Compress(input)
	require.NoError(t, err)
	output, err = c.Compress(input)
	require.NoError(t, err)
	assert.Equal(t, want, output)

	got, err := c.Decompress(output)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestCodec(t *testing.T) {
	var vectors = []struct {
		desc   string
		m      int
		input  string
		output string // BitSym format
	}{{
		desc:   "empty",
		m:      8,
		input:  "",
		output: "",
	}, {
		desc:   "byte 37",
		m:      8,
		input:  "%",
		output: "1*4 0 D3:5",
	}, {
		desc:  "hello",
		m:     8,
		input: "Hello",
		output: `
			1*9  0 D3:0 # 'H' = 72
			1*12 0 D3:5 # 'e' = 101
			1*13 0 D3:4 # 'l' = 108
			1*13 0 D3:4 # 'l' = 108
			1*13 0 D3:7 # 'o' = 111
		`,
	}, {
		desc:   "zero byte",
		m:      8,
		input:  "\x00",
		output: "0 D3:0",
	}, {
		desc:  "two byte rune",
		m:     8,
		input: "é",
		output: `
			1*24 0 D3:3 # 0xc3
			1*21 0 D3:1 # 0xa9
		`,
	}, {
		desc:   "unary only",
		m:      1,
		input:  "A",
		output: "1*65 0 D3:0",
	}, {
		desc:   "odd parameter",
		m:      5,
		input:  "A",
		output: "1*13 0 D3:0",
	}, {
		desc:   "odd parameter with remainder",
		m:      3,
		input:  "d",
		output: "1*33 0 D3:1",
	}}

	for _, v := range vectors {
		c, err := NewCodec(v.m)
		require.NoError(t, err, v.desc)
		want := testutil.MustDecodeBitSym(v.output)

		output, err := c.Compress(v.input)
		assert.NoError(t, err, v.desc)
		assert.Equal(t, want, output, v.desc)

		input, err := c.Decompress(want)
		assert.NoError(t, err, v.desc)
		assert.Equal(t, v.input, input, v.desc)
	}
}

// Known-good outputs of existing artifacts, written as plain strings.
func TestGoldenOutputs(t *testing.T) {
	var vectors = []struct {
		m      int
		input  string
		output string
	}{
		{8, "Hello", "11111111100001111111111110101111111111111101001111111111111010011111111111110111"},
		{8, "%", "11110101"},
		{5, "A", "11111111111110000"},
		{8, "é", "11111111111111111111111100111111111111111111111110001"},
	}

	for i, v := range vectors {
		c, _ := NewCodec(v.m)
		output, err := c.Compress(v.input)
		assert.NoError(t, err, "test %d", i)
		assert.Equal(t, v.output, output, "test %d", i)
	}
}

func TestDecompressErrors(t *testing.T) {
	var vectors = []struct {
		desc  string
		m     int
		input string // BitSym format
	}{
		{"unterminated unary", 8, "1*4"},
		{"missing remainder", 8, "0"},
		{"short remainder", 8, "1 0 D2:1"},
		{"truncated second byte", 8, "1*4 0 D3:5 1*4 0 D3:5 1*4 0"},
		{"value above 255", 8, "1*32 0 D3:0"},
		{"remainder not below m", 5, "0 D3:6"},
		{"invalid UTF-8", 8, "1*31 0 D3:7"},
		{"truncated rune", 8, "1*24 0 D3:3"},
	}

	for _, v := range vectors {
		c, _ := NewCodec(v.m)
		output, err := c.Decompress(testutil.MustDecodeBitSym(v.input))
		assert.ErrorIs(t, err, ErrCorrupt, v.desc)
		assert.Empty(t, output, v.desc)
	}

	for _, s := range []string{"2", "0x01", "1111 0101", "0101\n"} {
		_, err := Decompress(s)
		assert.ErrorIs(t, err, ErrCorrupt, "input %q", s)
	}
}

func TestRoundTrip(t *testing.T) {
	rand := testutil.NewRand(0)
	inputs := []string{
		"",
		"TOBEORNOTTOBEORTOBEORNOT",
		"the quick brown fox jumps over the lazy dog 0123456789",
		rand.Text(300, testutil.Letters),
		rand.Text(100, testutil.Unicode),
	}

	for m := 1; m <= 8; m++ {
		c, err := NewCodec(m)
		require.NoError(t, err)
		for i, input := range inputs {
			output, err := c.Compress(input)
			require.NoError(t, err, "m=%d, test %d", m, i)
			assert.Equal(t, "", strings.Trim(output, "01"), "m=%d, test %d", m, i)

			got, err := c.Decompress(output)
			require.NoError(t, err, "m=%d, test %d", m, i)
			assert.Equal(t, input, got, "m=%d, test %d", m, i)
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{"", "Hello", "%", "é", "日本語"} {
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

func BenchmarkCompress(b *testing.B) {
	input := testutil.NewRand(0).Text(1<<12, testutil.Letters)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compress(input)
	}
}

func BenchmarkDecompress(b *testing.B) {
	input := testutil.NewRand(0).Text(1<<12, testutil.Letters)
	output, _ := Compress(input)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decompress(output)
	}
}
