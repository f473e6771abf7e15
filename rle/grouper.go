// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"io"
	"strings"
)

// Run represents a single run of a particular rune.
type Run struct {
	// Rune is the symbol repeated in this run.
	Rune rune
	// Length gives the number of times the rune occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A zero Length
	// indicates that the input is exhausted.
	Length int
}

// InvalidRun is returned together with io.EOF once the input is exhausted.
var InvalidRun = Run{}

// RunGrouper splits text into maximal runs of identical runes.
type RunGrouper struct {
	rd *strings.Reader
}

// NewRunGrouper returns a RunGrouper that reads runs from s.
func NewRunGrouper(s string) *RunGrouper {
	return &RunGrouper{rd: strings.NewReader(s)}
}

// Next returns the next run in the text, or InvalidRun and io.EOF when there
// are no runes left.
func (g *RunGrouper) Next() (Run, error) {
	first, _, err := g.rd.ReadRune()
	if err != nil {
		return InvalidRun, err
	}

	length := 1
	for {
		r, _, err := g.rd.ReadRune()
		if err == io.EOF {
			break
		}
		if r != first {
			// Hit a different rune, back up and return.
			g.rd.UnreadRune()
			break
		}
		length++
	}
	return Run{Rune: first, Length: length}, nil
}
