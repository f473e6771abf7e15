// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"

	"github.com/dsnet/textcodec"
)

// The text codecs work on whole strings. The adapters below buffer the
// stream and run the codec once the writer is closed or the reader is
// first read from.

func init() {
	for _, alg := range textcodec.Algorithms() {
		c, err := textcodec.New(alg)
		if err != nil {
			panic(err)
		}
		RegisterEncoder(string(alg),
			func(w io.Writer) io.WriteCloser {
				return &textWriter{w: w, fn: c.Compress}
			})
		RegisterDecoder(string(alg),
			func(r io.Reader) io.ReadCloser {
				return &textReader{r: r, fn: c.Decompress}
			})
	}
}

type textFunc func(string) (string, error)

type textWriter struct {
	w   io.Writer
	fn  textFunc
	buf bytes.Buffer
}

func (tw *textWriter) Write(b []byte) (int, error) { return tw.buf.Write(b) }

func (tw *textWriter) Close() error {
	s, err := tw.fn(tw.buf.String())
	if err != nil {
		return err
	}
	_, err = io.WriteString(tw.w, s)
	return err
}

type textReader struct {
	r  io.Reader
	fn textFunc
	rd *strings.Reader
}

func (tr *textReader) Read(b []byte) (int, error) {
	if tr.rd == nil {
		in, err := ioutil.ReadAll(tr.r)
		if err != nil {
			return 0, err
		}
		s, err := tr.fn(string(in))
		if err != nil {
			return 0, err
		}
		tr.rd = strings.NewReader(s)
	}
	return tr.rd.Read(b)
}

func (tr *textReader) Close() error { return nil }
