// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler transform.
//
// The forward transform sorts all circular rotations of a block and emits the
// last byte of every rotation in sorted order (the last column), together
// with the rank of the unrotated block (the origin pointer). For typical
// input, the last column contains long runs of repeated bytes.
//
// The serialized form of a transformed block is the origin pointer as a
// big-endian 32-bit integer followed by the last column. The block length is
// not stored; it is implied by the length of the stream.
package bwt

import (
	"github.com/dsnet/blocksort/csa"
	"github.com/dsnet/blocksort/internal/errors"
)

// MaxBlockSize is the largest block whose origin pointer fits in the
// 32-bit signed integer of the serialized form.
const MaxBlockSize = 1<<31 - 1

// Mode controls how much validation Decode performs.
type Mode int

const (
	// Strict verifies that the last column and origin pointer are the
	// output of a forward transform, and fails with a corrupted input error
	// otherwise. It never returns bytes that do not re-encode to the input.
	Strict Mode = iota

	// Compatible decodes any input without validation, as the classic
	// inverse transform does. Corrupted input yields arbitrary output.
	Compatible
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Compatible:
		return "compatible"
	default:
		return "unknown"
	}
}

// Encode computes the Burrows-Wheeler transform of block using the default
// suffix sort. The block is not modified.
func Encode(block []byte) (ptr int, last []byte, err error) {
	return EncodeWithAlgorithm(block, csa.Doubling)
}

// EncodeWithAlgorithm is Encode using the given suffix sort algorithm.
// The last column is identical for all algorithms. The origin pointer is
// identical unless the block is a repetition of a shorter string, in which
// case any rank among the equal rotations is a valid origin.
func EncodeWithAlgorithm(block []byte, algo csa.Algorithm) (ptr int, last []byte, err error) {
	if len(block) == 0 {
		return -1, nil, errors.New("bwt", errors.Invalid, "empty block")
	}
	if int64(len(block)) > MaxBlockSize {
		return -1, nil, errors.New("bwt", errors.Invalid, "block size %d exceeds %d", len(block), MaxBlockSize)
	}
	a, err := csa.NewWithAlgorithm(block, algo)
	if err != nil {
		return -1, nil, err
	}

	n := len(block)
	last = make([]byte, n)
	for k, off := range a.Offsets() {
		if off == 0 {
			ptr = k
			off = n
		}
		last[k] = block[off-1]
	}
	return ptr, last, nil
}

// Decode inverts the Burrows-Wheeler transform of the last column with the
// given origin pointer. The last column is not modified. A mode other than
// Strict or Compatible is an Invalid error.
func Decode(last []byte, ptr int, mode Mode) ([]byte, error) {
	switch mode {
	case Strict, Compatible:
	default:
		return nil, errors.New("bwt", errors.Invalid, "unknown mode: %d", int(mode))
	}
	n := len(last)
	if n == 0 {
		return nil, errors.New("bwt", errors.Corrupted, "empty last column")
	}
	if ptr < 0 || ptr >= n {
		return nil, errors.New("bwt", errors.Corrupted, "origin pointer %d not in [0, %d)", ptr, n)
	}

	// Compute the starting offset of every byte value in the first column,
	// which is the last column in sorted order.
	var c [256]int
	for _, v := range last {
		c[v]++
	}
	first := make([]byte, n)
	var sum int
	for i, v := range c {
		for j := sum; j < sum+v; j++ {
			first[j] = byte(i)
		}
		sum += v
		c[i] = sum - v
	}

	// The k-th occurrence of a byte in the first column and the k-th
	// occurrence of that byte in the last column belong to the same position
	// of the original block.
	next := make([]int, n)
	for i, b := range last {
		next[c[b]] = i
		c[b]++
	}

	// Walk the permutation from the origin, recording the length of the
	// cycle that contains it.
	out := make([]byte, n)
	cycle := 0
	for i, pos := 0, ptr; i < n; i++ {
		out[i] = first[pos]
		pos = next[pos]
		if pos == ptr && cycle == 0 {
			cycle = i + 1
		}
	}

	if mode == Strict && cycle != n {
		if err := verifyPeriodic(out, last, ptr, cycle); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// verifyPeriodic checks a decoded block whose origin lies on a cycle shorter
// than the block. This is only valid when the block is a repetition of some
// primitive word, in which case the last column must be the transform of that
// word with every byte repeated once per repetition, and the origin must rank
// among the copies of the word's own origin.
func verifyPeriodic(out, last []byte, ptr, cycle int) error {
	n := len(out)
	if cycle == 0 || n%cycle != 0 {
		return errors.New("bwt", errors.Corrupted, "cycle of length %d does not divide block size %d", cycle, n)
	}
	word := out[:primitivePeriod(out[:cycle])]
	reps := n / len(word)

	wptr, wlast, err := Encode(word)
	if err != nil {
		return err
	}
	if ptr/reps != wptr {
		return errors.New("bwt", errors.Corrupted, "origin pointer %d inconsistent with block", ptr)
	}
	for k, b := range last {
		if b != wlast[k/reps] {
			return errors.New("bwt", errors.Corrupted, "last column inconsistent at offset %d", k)
		}
	}
	return nil
}

// primitivePeriod returns the length of the shortest string p such that s is
// p repeated some whole number of times.
func primitivePeriod(s []byte) int {
	// Compute the Knuth-Morris-Pratt failure function; the longest proper
	// border of s determines its smallest period.
	fail := make([]int, len(s)+1)
	fail[0] = -1
	for i, k := 0, -1; i < len(s); {
		for k >= 0 && s[k] != s[i] {
			k = fail[k]
		}
		i, k = i+1, k+1
		fail[i] = k
	}
	if p := len(s) - fail[len(s)]; len(s)%p == 0 {
		return p
	}
	return len(s)
}
