// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bwt applies the Burrows-Wheeler transform to stdin.
//
// Example usage:
//	$ echo -n "ABRACADABRA!" | bwt - | xxd
//	00000000: 0000 0003 4152 4421 5243 4141 4141 4242  ....ARD!RCAAAABB
//	$ echo -n "ABRACADABRA!" | bwt - | bwt +
//	ABRACADABRA!
//
// The "-" argument transforms stdin and writes the first-index as a 32-bit
// big-endian integer followed by the last column. The "+" argument inverts it.
package main

import (
	"flag"
	"io"

	"github.com/dsnet/blocksort/bwt"
	"github.com/dsnet/blocksort/csa"
	"github.com/dsnet/blocksort/internal/cli"
)

func main() {
	cli.Main(run)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bwt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	compat := fs.Bool("compat", false, "Decode without validating the last column")
	algo := fs.String("algo", csa.Doubling.String(), "Suffix sort algorithm: doubling or compare")
	verbose := fs.Bool("v", false, "Log debug information to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := cli.NewLogger(stderr, *verbose)

	dir, err := cli.ParseDirection("bwt", fs.Args())
	if err != nil {
		log.Error(err)
		fs.Usage()
		return err
	}
	a, err := csa.ParseAlgorithm(*algo)
	if err != nil {
		log.Error(err)
		return err
	}
	mode := bwt.Strict
	if *compat {
		mode = bwt.Compatible
	}

	in := &cli.Counter{R: stdin}
	out := &cli.Counter{W: stdout}
	if dir == cli.Forward {
		err = bwt.Transform(out, in, &bwt.WriterConfig{Algorithm: a})
	} else {
		err = bwt.InverseTransform(out, in, &bwt.ReaderConfig{Mode: mode})
	}
	entry := log.WithFields(in.Fields("in")).WithFields(out.Fields("out")).
		WithField("direction", dir.String())
	if err != nil {
		entry.Errorf("transform failed: %v", err)
		return err
	}
	entry.WithField("algo", a.String()).WithField("mode", mode.String()).Debug("transform done")
	return nil
}
