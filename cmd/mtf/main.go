// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command mtf applies the move-to-front transform to stdin.
//
// Example usage:
//	$ echo -n "ARD!RCAAAABB" | mtf - | xxd
//	00000000: 4152 4524 0245 0400 0000 4500            ARE$.E....E.
//
// The "-" argument writes one index byte per input byte. The "+" argument
// decodes the indexes back into the original bytes.
package main

import (
	"flag"
	"io"

	"github.com/dsnet/blocksort/internal/cli"
	"github.com/dsnet/blocksort/mtf"
)

func main() {
	cli.Main(run)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mtf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Log debug information to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := cli.NewLogger(stderr, *verbose)

	dir, err := cli.ParseDirection("mtf", fs.Args())
	if err != nil {
		log.Error(err)
		fs.Usage()
		return err
	}

	in := &cli.Counter{R: stdin}
	out := &cli.Counter{W: stdout}
	if dir == cli.Forward {
		err = mtf.EncodeStream(out, in)
	} else {
		err = mtf.DecodeStream(out, in)
	}
	entry := log.WithFields(in.Fields("in")).WithFields(out.Fields("out")).
		WithField("direction", dir.String())
	if err != nil {
		entry.Errorf("transform failed: %v", err)
		return err
	}
	entry.Debug("transform done")
	return nil
}
