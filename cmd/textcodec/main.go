// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command textcodec compresses and decompresses text with the codecs of
// the textcodec module, and benchmarks them.
//
// Example usage:
//	$ echo -n aaabbbcccdddd | textcodec compress -a rle
//	3a3b3c4d
//	$ echo -n hello | textcodec compress -a huffman
//	[["h","00"],["e","01"],["o","10"],["l","11"]]|0001111110
//	$ textcodec stats testdata/prose.txt
//	$ textcodec bench -tests ratio -codecs flate,huffman,huffman.packed
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dsnet/textcodec"
	"github.com/dsnet/textcodec/golomb"
)

var sep = regexp.MustCompile("[,:]")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp() *cli.App {
	algFlag := &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Value:   string(textcodec.Huffman),
		Usage:   "codec to use: " + algNames(),
	}
	algsFlag := &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Usage:   "comma separated list of codecs (default: all)",
	}
	mFlag := &cli.IntFlag{
		Name:  "golomb-m",
		Value: golomb.DefaultM,
		Usage: "Golomb parameter, within 1..8",
	}

	return &cli.App{
		Name:  "textcodec",
		Usage: "Lossless text compression with RLE, Huffman, Golomb and LZW codes",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress text",
				ArgsUsage: "[FILE]",
				Flags:     []cli.Flag{algFlag, mFlag},
				Action:    compressText,
			},
			{
				Name:      "decompress",
				Usage:     "Decompress an artifact",
				ArgsUsage: "[FILE]",
				Flags:     []cli.Flag{algFlag, mFlag},
				Action:    decompressText,
			},
			{
				Name:      "check",
				Usage:     "Verify that text survives a round trip",
				ArgsUsage: "[FILE]",
				Flags:     []cli.Flag{algsFlag},
				Action:    checkText,
			},
			{
				Name:      "stats",
				Usage:     "Report the compression ratio of every codec",
				ArgsUsage: "[FILE]",
				Flags:     []cli.Flag{algsFlag},
				Action:    statsText,
			},
			benchCommand(),
		},
	}
}

func algNames() string {
	var names []string
	for _, alg := range textcodec.Algorithms() {
		names = append(names, string(alg))
	}
	return strings.Join(names, ", ")
}

// readInput reads the file named by the first argument, or standard input
// if there is none.
func readInput(c *cli.Context) (string, error) {
	var b []byte
	var err error
	if c.Args().Present() {
		b, err = ioutil.ReadFile(c.Args().First())
	} else {
		b, err = ioutil.ReadAll(c.App.Reader)
	}
	return string(b), err
}

// newCodec returns the codec selected by the flags.
func newCodec(c *cli.Context) (textcodec.Codec, error) {
	alg, err := textcodec.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return nil, err
	}
	if alg == textcodec.Golomb {
		gc, err := golomb.NewCodec(c.Int("golomb-m"))
		if err != nil {
			return nil, err
		}
		return gc, nil
	}
	return textcodec.New(alg)
}

// parseAlgorithms parses a list of algorithms. An empty list means all.
func parseAlgorithms(s string) ([]textcodec.Algorithm, error) {
	if s == "" {
		return textcodec.Algorithms(), nil
	}
	var algs []textcodec.Algorithm
	for _, name := range sep.Split(s, -1) {
		alg, err := textcodec.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

func compressText(c *cli.Context) error {
	return transform(c, textcodec.Codec.Compress)
}

func decompressText(c *cli.Context) error {
	return transform(c, textcodec.Codec.Decompress)
}

func transform(c *cli.Context, fn func(textcodec.Codec, string) (string, error)) error {
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	input, err := readInput(c)
	if err != nil {
		return err
	}
	output, err := fn(codec, input)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.App.Writer, output)
	return err
}

func checkText(c *cli.Context) error {
	algs, err := parseAlgorithms(c.String("algorithm"))
	if err != nil {
		return err
	}
	input, err := readInput(c)
	if err != nil {
		return err
	}
	if err := textcodec.Check(input, algs...); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "OK: %d codecs\n", len(algs))
	return nil
}

func statsText(c *cli.Context) error {
	algs, err := parseAlgorithms(c.String("algorithm"))
	if err != nil {
		return err
	}
	input, err := readInput(c)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%-10s %10s %10s %10s %9s\n", "algorithm", "original", "compressed", "packed", "ratio")
	for _, alg := range algs {
		st, err := textcodec.Compress(alg, input)
		if err != nil {
			fmt.Fprintf(w, "%-10s %v\n", alg, err)
			continue
		}
		fmt.Fprintf(w, "%-10s %10d %10d %10d %8.2f%%\n",
			st.Algorithm, st.OriginalSize, st.CompressedSize, st.PackedSize, st.Ratio)
	}
	return nil
}
