// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mtf implements the move-to-front transform.
//
// The transform replaces every symbol with its current position in a table of
// recently used symbols, then moves that symbol to the front of the table.
// After a Burrows-Wheeler transform, the output is dominated by small indexes,
// which an entropy coder compresses well.
//
// The table always starts as the alphabet in the order given to Init, which
// for the package-level functions is every byte value in ascending order.
package mtf

import (
	"github.com/dsnet/blocksort/internal"
	"github.com/dsnet/blocksort/internal/errors"
)

// MoveToFront holds the symbol table of a single encode or decode session.
// The zero value is not ready for use; call Init or Reset first.
type MoveToFront struct {
	dictBuf [256]uint8
	dictLen int
}

// New returns a MoveToFront whose table holds all 256 byte values in
// ascending order.
func New() *MoveToFront {
	m := new(MoveToFront)
	m.Reset()
	return m
}

// Reset restores the table to all 256 byte values in ascending order.
func (m *MoveToFront) Reset() {
	m.dictBuf = internal.IdentityLUT
	m.dictLen = len(m.dictBuf)
}

// Init initializes the table to dict. The dict must contain all of the
// symbols used in future operations, each exactly once. A copy of the input
// dict will be made so that it will not be mutated.
func (m *MoveToFront) Init(dict []uint8) error {
	if len(dict) > len(m.dictBuf) {
		return errors.New("mtf", errors.Invalid, "alphabet too large: %d", len(dict))
	}
	var seen [256]bool
	for _, v := range dict {
		if seen[v] {
			return errors.New("mtf", errors.Invalid, "duplicate symbol: %d", v)
		}
		seen[v] = true
	}
	copy(m.dictBuf[:], dict)
	m.dictLen = len(dict)
	return nil
}

// Dict returns a copy of the current table, front first.
func (m *MoveToFront) Dict() []uint8 {
	return append([]uint8(nil), m.dictBuf[:m.dictLen]...)
}

// EncodeByte returns the position of val in the table and moves val to the
// front. It reports an Invalid error if val is not in the alphabet.
func (m *MoveToFront) EncodeByte(val byte) (uint8, error) {
	dict := m.dictBuf[:m.dictLen]

	idx := -1 // Reverse lookup idx in dict
	for di, dv := range dict {
		if dv == val {
			idx = di
			break
		}
	}
	if idx < 0 {
		return 0, errors.New("mtf", errors.Invalid, "symbol %d not in alphabet", val)
	}
	copy(dict[1:], dict[:idx])
	dict[0] = val
	return uint8(idx), nil
}

// DecodeByte returns the symbol at position idx and moves it to the front.
// It reports a Corrupted error if idx is beyond the table.
func (m *MoveToFront) DecodeByte(idx uint8) (byte, error) {
	dict := m.dictBuf[:m.dictLen]
	if int(idx) >= len(dict) {
		return 0, errors.New("mtf", errors.Corrupted, "index %d not in [0, %d)", idx, len(dict))
	}
	val := dict[idx] // Forward lookup val in dict
	copy(dict[1:], dict[:idx])
	dict[0] = val
	return val, nil
}

// Encode transforms vals into table positions.
func (m *MoveToFront) Encode(vals []byte) ([]uint8, error) {
	idxs := make([]uint8, len(vals))
	for i, val := range vals {
		idx, err := m.EncodeByte(val)
		if err != nil {
			return nil, err
		}
		idxs[i] = idx
	}
	return idxs, nil
}

// Decode transforms table positions back into symbols.
func (m *MoveToFront) Decode(idxs []uint8) ([]byte, error) {
	vals := make([]byte, len(idxs))
	for i, idx := range idxs {
		val, err := m.DecodeByte(idx)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return vals, nil
}

// Encode transforms vals using a fresh table of all 256 byte values.
func Encode(vals []byte) []uint8 {
	idxs, err := New().Encode(vals)
	if err != nil {
		panic(err) // Every byte is in the full alphabet
	}
	return idxs
}

// Decode inverts Encode using a fresh table of all 256 byte values.
func Decode(idxs []uint8) []byte {
	vals, err := New().Decode(idxs)
	if err != nil {
		panic(err) // Every index is within the full alphabet
	}
	return vals
}
