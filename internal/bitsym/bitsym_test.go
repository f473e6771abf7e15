// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitsym

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/textcodec/internal/testutil"
)

func TestPack(t *testing.T) {
	var vectors = []string{
		"",
		"0",
		"1",
		"11110101",
		"111101011",
		strings.Repeat("10", 100),
	}

	for i, v := range vectors {
		b, n, err := Pack(v)
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, int64(len(v)), n, "test %d", i)
		assert.Len(t, b, PackedLen(v), "test %d", i)

		s, err := Unpack(b, n)
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, v, s, "test %d", i)
	}
}

func TestPackRandom(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 50; i++ {
		v := rand.Text(rand.Intn(200), []rune("01"))
		b, n, err := Pack(v)
		require.NoError(t, err)
		s, err := Unpack(b, n)
		require.NoError(t, err)
		assert.Equal(t, v, s)
	}
}

func TestErrors(t *testing.T) {
	_, _, err := Pack("0120")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Unpack([]byte{0xff}, 9)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = Unpack(nil, -1)
	assert.ErrorIs(t, err, ErrInvalid)
}
