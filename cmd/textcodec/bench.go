// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strings"
	"time"

	"github.com/dsnet/golib/strconv"
	"github.com/urfave/cli/v2"

	"github.com/dsnet/textcodec/internal/tool/bench"
)

const (
	defaultPaths = "testdata"
	defaultSizes = "1e4,1e5"
	defaultTests = "encRate,decRate,ratio"
)

// The first codec is the primary one that the others are compared with.
const primaryCodec = "flate"

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Compare the codecs with general purpose compressors",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tests", Value: defaultTests, Usage: "List of different benchmark tests"},
			&cli.StringFlag{Name: "codecs", Value: defaultCodecs(), Usage: "List of codecs to benchmark"},
			&cli.StringFlag{Name: "paths", Value: defaultPaths, Usage: "List of paths to search for test files"},
			&cli.StringFlag{Name: "files", Usage: "List of input files to benchmark (default: all .txt files)"},
			&cli.StringFlag{Name: "sizes", Value: defaultSizes, Usage: "List of input sizes to benchmark"},
			&cli.BoolFlag{Name: "csv", Usage: "Output CSV instead of a table"},
		},
		Action: runBench,
	}
}

func defaultCodecs() string {
	var s []string
	for k := range bench.Encoders {
		if _, ok := bench.Decoders[k]; ok && k != primaryCodec {
			s = append(s, k)
		}
	}
	sort.Strings(s)
	return strings.Join(append([]string{primaryCodec}, s...), ",")
}

func defaultFiles(paths []string) []string {
	var s []string
	for _, p := range paths {
		fis, err := ioutil.ReadDir(p)
		if err != nil {
			continue
		}
		for _, fi := range fis {
			if strings.HasSuffix(fi.Name(), ".txt") {
				s = append(s, fi.Name())
			}
		}
	}
	return s
}

func runBench(c *cli.Context) error {
	// Parse the flag arguments.
	var tests, sizes []int
	codecs := sep.Split(c.String("codecs"), -1)
	paths := sep.Split(c.String("paths"), -1)
	files := defaultFiles(paths)
	if c.String("files") != "" {
		files = sep.Split(c.String("files"), -1)
	}
	for _, s := range sep.Split(c.String("tests"), -1) {
		t, ok := bench.ParseTest(s)
		if !ok {
			return fmt.Errorf("invalid test: %q", s)
		}
		tests = append(tests, t)
	}
	for _, s := range sep.Split(c.String("sizes"), -1) {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			return fmt.Errorf("invalid size: %q", s)
		}
		sizes = append(sizes, int(nf))
	}
	for _, codec := range codecs {
		if _, ok := bench.Encoders[codec]; !ok {
			return fmt.Errorf("invalid codec: %q", codec)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no test files found in %v", paths)
	}

	w := c.App.Writer
	ts := time.Now()
	bench.Paths = paths
	for _, t := range tests {
		// Progress ticker.
		var cnt int
		tick := func() {
			if c.Bool("csv") {
				return
			}
			total := len(codecs) * len(files) * len(sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Fprintf(w, "\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		if !c.Bool("csv") {
			fmt.Fprintf(w, "BENCHMARK: %s\n", bench.TestName(t))
		}
		r, err := bench.Run(t, codecs, files, sizes, tick)
		if err != nil {
			return err
		}
		if c.Bool("csv") {
			if err := r.WriteCSV(w); err != nil {
				return err
			}
			continue
		}
		r.Print(w)
		fmt.Fprintln(w)
	}
	if !c.Bool("csv") {
		fmt.Fprintf(w, "RUNTIME: %v\n", time.Since(ts))
	}
	return nil
}
