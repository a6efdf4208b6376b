// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package bwt

import (
	"bytes"
	"io/ioutil"

	"github.com/dsnet/blocksort"
	"github.com/dsnet/blocksort/bwt"
	"github.com/dsnet/blocksort/csa"
	"github.com/dsnet/blocksort/internal/errors"
	"github.com/dsnet/blocksort/mtf"
)

func Fuzz(data []byte) int {
	ok := testDecoders(data)
	testEncoders(data)
	testMoveToFront(data)
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoders treats the input as a transformed block and checks that the
// strict and compatible decoders agree on every block that strict accepts.
// Strict decoding may reject what compatible decoding accepts, but any block
// it accepts must transform back into the same last column.
func testDecoders(data []byte) bool {
	sb, serr := decode(data, bwt.Strict)
	cb, cerr := decode(data, bwt.Compatible)

	switch {
	case serr == nil && cerr == nil:
		if !bytes.Equal(sb, cb) {
			panic("mismatching bytes")
		}
		var bb bytes.Buffer
		if err := bwt.Transform(&bb, bytes.NewReader(sb), nil); err != nil {
			panic(err)
		}
		// Periodic blocks have several valid first-indexes,
		// but only one last column.
		if !bytes.Equal(bb.Bytes()[4:], data[4:]) {
			panic("strict decoding accepted a block that does not re-encode")
		}
		return true
	case serr == nil && cerr != nil:
		panic(cerr)
	case serr != nil:
		if !errors.IsCorrupted(serr) {
			panic(serr)
		}
		return false
	}
	return false
}

func decode(data []byte, mode bwt.Mode) ([]byte, error) {
	br, err := bwt.NewReader(bytes.NewReader(data), &bwt.ReaderConfig{Mode: mode})
	if err != nil {
		panic(err)
	}
	b, err := ioutil.ReadAll(br)
	if cerr := br.Close(); cerr != err {
		panic("mismatching Close error")
	}
	return b, err
}

// testEncoders treats the input as a block and checks that both suffix sorts
// produce the same last column and that the block round-trips.
func testEncoders(data []byte) {
	if len(data) == 0 {
		if _, _, err := bwt.Encode(data); !errors.IsInvalid(err) {
			panic("empty block not rejected")
		}
		return
	}
	if len(data)%bwt.PrimitivePeriod(data) != 0 {
		panic("primitive period does not divide the block length")
	}

	ptr1, last1, err := bwt.EncodeWithAlgorithm(data, csa.Doubling)
	if err != nil {
		panic(err)
	}
	ptr2, last2, err := bwt.EncodeWithAlgorithm(data, csa.Compare)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(last1, last2) {
		panic("mismatching last columns")
	}
	for _, ptr := range []int{ptr1, ptr2} {
		b, err := bwt.Decode(last1, ptr, bwt.Strict)
		if err != nil {
			panic(err)
		}
		if !bytes.Equal(b, data) {
			panic("mismatching round-trip")
		}
	}

	ptr, idxs, err := blocksort.Encode(data)
	if err != nil {
		panic(err)
	}
	b, err := blocksort.Decode(ptr, idxs)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(b, data) {
		panic("mismatching pipeline round-trip")
	}
}

// testMoveToFront checks that the input round-trips through the plain and
// run-length augmented move-to-front transforms.
func testMoveToFront(data []byte) {
	if !bytes.Equal(mtf.Decode(mtf.Encode(data)), data) {
		panic("mismatching move-to-front round-trip")
	}

	m := mtf.New()
	idxs, runs, err := m.EncodeRuns(data)
	if err != nil {
		panic(err)
	}
	syms, err := mtf.AppendSymbols(nil, idxs, runs)
	if err != nil {
		panic(err)
	}
	idxs, runs, err = mtf.ParseSymbols(syms)
	if err != nil {
		panic(err)
	}
	m.Reset()
	b, err := m.DecodeRuns(idxs, runs)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(b, data) {
		panic("mismatching run-length round-trip")
	}

	// With the full table, every index is valid.
	if err := mtf.DecodeStream(ioutil.Discard, bytes.NewReader(data)); err != nil {
		panic(err)
	}
}
