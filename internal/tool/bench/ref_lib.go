// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// General purpose byte compressors used as a point of reference.
const refLevel = 6

func init() {
	RegisterEncoder("flate",
		func(w io.Writer) io.WriteCloser {
			zw, err := flate.NewWriter(w, refLevel)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("flate",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
	RegisterEncoder("gzip",
		func(w io.Writer) io.WriteCloser {
			zw, err := gzip.NewWriterLevel(w, refLevel)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("gzip",
		func(r io.Reader) io.ReadCloser {
			zr, err := gzip.NewReader(r)
			if err != nil {
				return errReader{err}
			}
			return zr
		})
	RegisterEncoder("xz",
		func(w io.Writer) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("xz",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				return errReader{err}
			}
			return ioutil.NopCloser(zr)
		})
}

// errReader reports a failure to set up a decoder on first use.
type errReader struct{ err error }

func (er errReader) Read([]byte) (int, error) { return 0, er.err }
func (er errReader) Close() error             { return er.err }
