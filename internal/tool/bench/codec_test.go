// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/dsnet/blocksort/internal"
)

// TestCodecs tests that the output of each registered encoder is a valid input
// for the decoder of the same name, which verifies every preconditioned block
// against its checksum.
func TestCodecs(t *testing.T) {
	for _, fl := range SyntheticFiles() {
		dd, err := LoadInput(fl, 1e5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		t.Run(fmt.Sprintf("File:%v", fl), func(t *testing.T) { testFormats(t, dd) })
	}
}

func testFormats(t *testing.T, dd []byte) {
	t.Parallel()
	formats := []Format{
		FormatFlate, FormatXZ, FormatLZMA, FormatZstd, FormatSnappy,
	}
	for _, ft := range formats {
		if len(Encoders[ft]) == 0 || len(Decoders[ft]) == 0 {
			continue
		}
		ft := ft
		t.Run(fmt.Sprintf("Format:%v", ft), func(t *testing.T) { testCodecs(t, ft, dd) })
	}
}

func testCodecs(t *testing.T, ft Format, dd []byte) {
	t.Parallel()
	const level = 6 // Default compression on all encoders
	for name := range Encoders[ft] {
		name := name
		t.Run(fmt.Sprintf("Codec:%v", name), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := Encoders[ft][name](be, level)
			if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}

			bd := new(bytes.Buffer)
			zr := Decoders[ft][name](bytes.NewReader(be.Bytes()))
			if _, err := io.Copy(bd, zr); err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if got, want := internal.UpdateCRC(0, bd.Bytes()), internal.UpdateCRC(0, dd); got != want {
				t.Errorf("mismatching checksum: got 0x%08x, want 0x%08x", got, want)
			}
		})
	}
}

func TestRatioSuite(t *testing.T) {
	encs := []string{"std", "std+bwt"}
	results, names := BenchmarkRatioSuite(FormatFlate, encs, []string{"dna.txt"}, []int{6}, []int{1e5}, nil)
	if len(results) != 1 || len(names) != 1 {
		t.Fatalf("unexpected result shape: %d results, %d names", len(results), len(names))
	}
	if names[0] != "dna.txt:6:1e5" {
		t.Errorf("name mismatch: got %q", names[0])
	}
	raw, pre := results[0][0], results[0][1]
	if raw.R <= 1 || pre.R <= 1 {
		t.Errorf("expected both codecs to compress DNA: raw %.2fx, preconditioned %.2fx", raw.R, pre.R)
	}
	if raw.D != 1 {
		t.Errorf("delta of the first codec: got %v, want 1", raw.D)
	}
}
