// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package internal

import "testing"

func TestReverse(t *testing.T) {
	var vectors = []struct {
		input  uint32
		output uint32
	}{
		{input: 0x00000000, output: 0x00000000},
		{input: 0x00000001, output: 0x80000000},
		{input: 0x000000f0, output: 0x0f000000},
		{input: 0x01234567, output: 0xe6a2c480},
		{input: 0x89abcdef, output: 0xf7b3d591},
		{input: 0xffffffff, output: 0xffffffff},
	}

	for i, v := range vectors {
		if got := ReverseUint32(v.input); got != v.output {
			t.Errorf("test %d, ReverseUint32(0x%08x) = 0x%08x, want 0x%08x", i, v.input, got, v.output)
		}
		if got := ReverseUint32(v.output); got != v.input {
			t.Errorf("test %d, ReverseUint32(0x%08x) = 0x%08x, want 0x%08x", i, v.output, got, v.input)
		}
	}
	for i, b := range IdentityLUT {
		if int(b) != i || ReverseLUT[ReverseLUT[i]] != b {
			t.Fatalf("lookup tables inconsistent at %d", i)
		}
	}
}

func TestCRC(t *testing.T) {
	var vectors = []struct {
		input string
		crc   uint32
	}{
		{input: "", crc: 0x00000000},
		{input: "123456789", crc: 0xfc891918},
	}

	for i, v := range vectors {
		if got := UpdateCRC(0, []byte(v.input)); got != v.crc {
			t.Errorf("test %d, UpdateCRC(%q) = 0x%08x, want 0x%08x", i, v.input, got, v.crc)
		}
	}

	data := []byte("The quick brown fox jumps over the lazy dog.")
	for i := 0; i <= len(data); i++ {
		crc1 := UpdateCRC(0, data[:i])
		crc2 := UpdateCRC(0, data[i:])
		want := UpdateCRC(0, data)
		if got := CombineCRC(crc1, crc2, int64(len(data)-i)); got != want {
			t.Errorf("split %d, CombineCRC = 0x%08x, want 0x%08x", i, got, want)
		}
		if got := UpdateCRC(crc1, data[i:]); got != want {
			t.Errorf("split %d, UpdateCRC = 0x%08x, want 0x%08x", i, got, want)
		}
	}
}
