// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gocarina/gocsv"
)

var testNames = map[int]string{
	TestEncodeRate:    "encRate",
	TestDecodeRate:    "decRate",
	TestCompressRatio: "ratio",
}

// TestName returns the flag name of a benchmark test.
func TestName(test int) string { return testNames[test] }

// ParseTest is the inverse of TestName.
func ParseTest(name string) (int, bool) {
	for k, v := range testNames {
		if v == name {
			return k, true
		}
	}
	return 0, false
}

// Report holds the results of a single suite.
type Report struct {
	Test    int
	Codecs  []string
	Names   []string
	Results [][]Result
}

// Title is the unit the results are measured in.
func (r *Report) Title() (title, suffix string) {
	if r.Test == TestCompressRatio {
		return "ratio", "x"
	}
	return "MB/s", ""
}

// Run performs the suite. This may take some time.
func Run(test int, codecs, files []string, sizes []int, tick func()) (*Report, error) {
	r := &Report{Test: test, Codecs: codecs}
	switch test {
	case TestEncodeRate:
		r.Results, r.Names = BenchmarkEncoderSuite(codecs, files, sizes, tick)
	case TestDecodeRate:
		r.Results, r.Names = BenchmarkDecoderSuite(codecs, files, sizes, tick)
	case TestCompressRatio:
		r.Results, r.Names = BenchmarkRatioSuite(codecs, files, sizes, tick)
	default:
		return nil, fmt.Errorf("bench: unknown test %d", test)
	}
	return r, nil
}

// Print writes the results as an aligned table. The first codec is the
// primary one and every other column reports a delta relative to it.
func (r *Report) Print(w io.Writer) {
	title, suffix := r.Title()

	// Allocate result table.
	cells := make([][]string, 1+len(r.Names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(r.Codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range r.Codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range r.Results {
		cells[1+j][0] = r.Names[j]
		for i, res := range row {
			if isValid(res.R) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", res.R) + suffix
			}
			if isValid(res.D) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", res.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(r.Codecs))
	for _, row := range cells {
		for i, s := range row {
			if n := len([]rune(s)); maxLens[i] < n {
				maxLens[i] = n
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		var sb strings.Builder
		sb.WriteString("\t")
		for i, s := range row {
			pad := maxLens[i] - len([]rune(s))
			switch {
			case i == 0: // Column 0
				sb.WriteString(s + strings.Repeat(" ", pad))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				sb.WriteString(strings.Repeat(" ", 6+pad) + s)
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				sb.WriteString(strings.Repeat(" ", 2+pad) + s)
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}

type csvRow struct {
	Test      string  `csv:"test"`
	Benchmark string  `csv:"benchmark"`
	Codec     string  `csv:"codec"`
	Value     float64 `csv:"value"`
	Delta     float64 `csv:"delta"`
}

// WriteCSV writes one record per benchmark and codec.
// Missing or non-finite results are written as zero.
func (r *Report) WriteCSV(w io.Writer) error {
	var rows []*csvRow
	for j, row := range r.Results {
		for i, res := range row {
			cr := &csvRow{Test: TestName(r.Test), Benchmark: r.Names[j], Codec: r.Codecs[i]}
			if isValid(res.R) {
				cr.Value = res.R
			}
			if isValid(res.D) {
				cr.Delta = res.D
			}
			rows = append(rows, cr)
		}
	}
	return gocsv.Marshal(&rows, w)
}

func isValid(f float64) bool {
	return f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}
