// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textcodec

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/dsnet/textcodec/internal"
)

var ErrMismatch error = internal.Error("round trip mismatch")

// Check compresses and decompresses s with each of algs, or with every
// algorithm if none are given. It returns an error describing every codec
// that failed or did not reproduce s, and nil if all succeeded.
func Check(s string, algs ...Algorithm) error {
	if len(algs) == 0 {
		algs = Algorithms()
	}

	var result *multierror.Error
	for _, alg := range algs {
		if err := checkOne(alg, s); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", alg, err))
		}
	}
	return result.ErrorOrNil()
}

func checkOne(alg Algorithm, s string) error {
	c, err := New(alg)
	if err != nil {
		return err
	}
	data, err := c.Compress(s)
	if err != nil {
		return err
	}
	got, err := c.Decompress(data)
	if err != nil {
		return err
	}
	if got != s {
		return ErrMismatch
	}
	return nil
}
