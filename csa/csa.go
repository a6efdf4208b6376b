// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package csa implements a circular suffix array.
//
// A circular suffix array of a string s of length N is the permutation of
// the offsets 0..N-1 that sorts the N circular rotations of s, where the
// rotation at offset i reads s[i:] followed by s[:i]. The permutation is the
// backbone of the Burrows-Wheeler transform.
package csa

import (
	"fmt"

	"github.com/dsnet/blocksort/internal"
	"github.com/dsnet/blocksort/internal/errors"
)

// Algorithm selects how the rotations are sorted.
type Algorithm int

const (
	// Doubling sorts the rotations by cyclic prefix doubling in O(N log N).
	Doubling Algorithm = iota

	// Compare sorts the rotations with a comparison sort whose comparator
	// scans up to N bytes of both rotations, taking O(N² log N) in the worst
	// case. Equal rotations retain ascending offset order.
	Compare
)

func (a Algorithm) String() string {
	switch a {
	case Doubling:
		return "doubling"
	case Compare:
		return "compare"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm returns the Algorithm named by s.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "doubling":
		return Doubling, nil
	case "compare":
		return Compare, nil
	default:
		return 0, errors.New("csa", errors.Invalid, "unknown algorithm: %q", s)
	}
}

// Array is a circular suffix array over an immutable byte string.
type Array struct {
	s  []byte
	sa []int
}

// New returns the circular suffix array of s, sorted by the Doubling
// algorithm. The input must not be empty and is not retained after New
// returns.
func New(s []byte) (*Array, error) {
	return NewWithAlgorithm(s, Doubling)
}

// NewWithAlgorithm returns the circular suffix array of s using algo.
func NewWithAlgorithm(s []byte, algo Algorithm) (*Array, error) {
	if s == nil {
		return nil, errors.New("csa", errors.Invalid, "nil input")
	}
	if len(s) == 0 {
		return nil, errors.New("csa", errors.Invalid, "empty input")
	}

	a := &Array{s: s, sa: make([]int, len(s))}
	switch algo {
	case Doubling:
		sortDoubling(s, a.sa)
	case Compare:
		sortCompare(s, a.sa)
	default:
		return nil, errors.New("csa", errors.Invalid, "unknown algorithm: %v", algo)
	}
	if internal.Debug && !a.sorted() {
		panic("csa: rotations not sorted")
	}
	a.s = nil
	return a, nil
}

// Len reports the length N of the input string.
func (a *Array) Len() int { return len(a.sa) }

// Index returns the offset of the rotation that ranks i-th in sorted order.
func (a *Array) Index(i int) (int, error) {
	if i < 0 || i >= len(a.sa) {
		return 0, errors.New("csa", errors.OutOfRange, "index %d not in [0, %d)", i, len(a.sa))
	}
	return a.sa[i], nil
}

// Offsets returns a copy of the whole suffix order permutation.
func (a *Array) Offsets() []int {
	return append([]int(nil), a.sa...)
}

// sorted reports whether every adjacent pair of rotations is in order.
// It is only used when debugging.
func (a *Array) sorted() bool {
	for i := 1; i < len(a.sa); i++ {
		if compareRotations(a.s, a.sa[i-1], a.sa[i]) > 0 {
			return false
		}
	}
	return true
}
