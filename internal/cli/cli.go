// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package cli holds the plumbing shared by the command-line drivers.
//
// Every driver reads all of stdin, applies a transform in one direction
// selected by a single positional argument, and writes the result to stdout.
// The argument "-" selects the forward transform and "+" the inverse.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dsnet/blocksort/internal"
	"github.com/dsnet/blocksort/internal/errors"
	"github.com/sirupsen/logrus"
)

// Direction is the transform direction selected on the command line.
type Direction int

const (
	Forward Direction = iota // "-"
	Inverse                  // "+"
)

func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}

// ParseDirection parses the positional arguments left over after the flags.
// Exactly one argument, either "-" or "+", must be present.
func ParseDirection(cmd string, args []string) (Direction, error) {
	if len(args) != 1 {
		return 0, errors.New(cmd, errors.Invalid, "expected one argument of - or +, got %d arguments", len(args))
	}
	switch args[0] {
	case "-":
		return Forward, nil
	case "+":
		return Inverse, nil
	default:
		return 0, errors.New(cmd, errors.Invalid, "illegal command line argument: %q", args[0])
	}
}

// NewLogger returns a text logger writing to w at Info level,
// or at Debug level if verbose is set.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Counter tallies the length and block checksum of data flowing through it.
// Either R or W is set, depending on which side is being measured.
type Counter struct {
	R   io.Reader
	W   io.Writer
	N   int64
	CRC uint32
}

func (c *Counter) Read(buf []byte) (int, error) {
	n, err := c.R.Read(buf)
	c.N += int64(n)
	c.CRC = internal.UpdateCRC(c.CRC, buf[:n])
	return n, err
}

func (c *Counter) Write(buf []byte) (int, error) {
	n, err := c.W.Write(buf)
	c.N += int64(n)
	c.CRC = internal.UpdateCRC(c.CRC, buf[:n])
	return n, err
}

// Fields reports the tallies as structured log fields.
func (c *Counter) Fields(prefix string) logrus.Fields {
	return logrus.Fields{
		prefix + "_bytes": c.N,
		prefix + "_crc":   fmt.Sprintf("%08x", c.CRC),
	}
}

// Main runs fn with the process's standard streams and exits with status 1
// if it fails. The run function receives the arguments without the program
// name.
func Main(fn func(args []string, stdin io.Reader, stdout, stderr io.Writer) error) {
	if err := fn(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
