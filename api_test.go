// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package blocksort

import (
	"bytes"
	"testing"

	"github.com/dsnet/blocksort/bwt"
	"github.com/dsnet/blocksort/csa"
	"github.com/dsnet/blocksort/internal/errors"
	"github.com/dsnet/blocksort/internal/testutil"
	"github.com/dsnet/blocksort/mtf"
	"github.com/stretchr/testify/assert"
)

// Every error returned by the public packages must satisfy Error.
var _ Error = errors.Error{}

func TestPipeline(t *testing.T) {
	var vectors = []struct {
		input  []byte
		ptr    int
		output []byte
	}{{
		input:  []byte("ABRACADABRA!"),
		ptr:    3,
		output: testutil.MustDecodeHex("415245240245040000004500"),
	}, {
		input:  []byte("A"),
		ptr:    0,
		output: []byte{65},
	}, {
		input:  []byte("banana"),
		ptr:    3,
		output: mtf.Encode([]byte("nnbaaa")),
	}}

	for i, v := range vectors {
		ptr, idxs, err := Encode(v.input)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		if ptr != v.ptr {
			t.Errorf("test %d, first-index mismatch: got %d, want %d", i, ptr, v.ptr)
		}
		if !bytes.Equal(idxs, v.output) {
			t.Errorf("test %d, output mismatch:\ngot  %x\nwant %x", i, idxs, v.output)
		}

		output, err := Decode(ptr, idxs)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		if !bytes.Equal(output, v.input) {
			t.Errorf("test %d, input mismatch:\ngot  %q\nwant %q", i, output, v.input)
		}
	}
}

func TestPipelineRandom(t *testing.T) {
	r := testutil.NewRand(0)
	for i := 0; i < 50; i++ {
		input := r.Alphabet(1+r.Intn(2000), "acgt")
		ptr, idxs, err := Encode(input)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		assert.Len(t, idxs, len(input))
		assert.True(t, ptr >= 0 && ptr < len(input), "first-index %d out of bounds", ptr)

		output, err := Decode(ptr, idxs)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		if !bytes.Equal(output, input) {
			t.Fatalf("test %d, round-trip mismatch", i)
		}
	}
}

func TestPipelineErrors(t *testing.T) {
	var err error
	var check = func(name string, ok func(Error) bool) {
		t.Helper()
		e, isErr := err.(Error)
		if !isErr {
			t.Errorf("%s: error %v (%T) does not implement Error", name, err, err)
			return
		}
		assert.True(t, ok(e), "%s: unexpected classification: %v", name, err)
	}

	_, _, err = Encode(nil)
	check("Encode(nil)", Error.IsInvalid)

	_, err = Decode(0, nil)
	check("Decode(0, nil)", Error.IsCorrupted)

	_, err = Decode(12, testutil.MustDecodeHex("415245240245040000004500"))
	check("Decode with ptr == N", Error.IsCorrupted)

	// The last column "abab" (MTF indexes 97 98 1 1) has no preimage in
	// which rotation 1 is the original block.
	_, err = Decode(1, []byte{97, 98, 1, 1})
	check("Decode of invalid last column", Error.IsCorrupted)

	_, err = csa.NewWithAlgorithm([]byte("x"), csa.Algorithm(9))
	check("csa.NewWithAlgorithm", Error.IsInvalid)

	a, _ := csa.New([]byte("x"))
	_, err = a.Index(1)
	check("csa.Index", Error.IsOutOfRange)

	_, err = bwt.NewReader(nil, &bwt.ReaderConfig{Mode: bwt.Mode(9)})
	check("bwt.NewReader", Error.IsInvalid)
}
