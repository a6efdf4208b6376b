// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mtf

import "github.com/dsnet/blocksort/internal/errors"

// EncodeRuns performs the move-to-front transform while collapsing runs of
// zero indexes. Any run of zeros in the output is replaced by a single zero,
// and the length of the run is appended to the runs slice.
//
// For example, if the normal output was:
//	idxs: []uint8{0, 0, 1, 6, 3, 0, 0, 0, 2, 1, 0, 4}
//
// Then the actual output will be:
//	idxs: []uint8{0, 1, 6, 3, 0, 2, 1, 0, 4}
//	runs: []uint32{2, 3, 1}
func (m *MoveToFront) EncodeRuns(vals []byte) (idxs []uint8, runs []uint32, err error) {
	var lastCnt *uint32
	for _, val := range vals {
		idx, err := m.EncodeByte(val)
		if err != nil {
			return nil, nil, err
		}

		// Run-length encoding augmentation.
		if idx == 0 {
			if lastCnt == nil {
				idxs = append(idxs, 0)
				runs = append(runs, 0)
				lastCnt = &runs[len(runs)-1]
			}
			(*lastCnt)++
		} else {
			idxs = append(idxs, idx)
			lastCnt = nil
		}
	}
	return idxs, runs, nil
}

// DecodeRuns inverts EncodeRuns.
func (m *MoveToFront) DecodeRuns(idxs []uint8, runs []uint32) (vals []byte, err error) {
	var i int
	for _, idx := range idxs {
		val, err := m.DecodeByte(idx)
		if err != nil {
			return nil, err
		}

		// Run-length encoding augmentation.
		if idx == 0 {
			if i >= len(runs) {
				return nil, errors.New("mtf", errors.Corrupted, "missing run length")
			}
			rep := int(runs[i])
			i++
			for j := 0; j < rep; j++ {
				vals = append(vals, val)
			}
		} else {
			vals = append(vals, val)
		}
	}
	if i != len(runs) {
		return nil, errors.New("mtf", errors.Corrupted, "%d unused run lengths", len(runs)-i)
	}
	return vals, nil
}

// Symbols for the zero-run digits produced by AppendSymbols.
// All other indexes are shifted up by one to make room for them.
const (
	RunA = 0
	RunB = 1
)

// AppendSymbols flattens the output of EncodeRuns into a single symbol stream,
// where every run length is written in bijective base-2 as a sequence of
// RunA (digit 1) and RunB (digit 2) symbols, least-significant digit first,
// and every non-zero index i is written as the symbol i+1.
func AppendSymbols(syms []uint16, idxs []uint8, runs []uint32) ([]uint16, error) {
	var i int
	for _, idx := range idxs {
		if idx != 0 {
			syms = append(syms, uint16(idx)+1)
			continue
		}
		if i >= len(runs) {
			return nil, errors.New("mtf", errors.Invalid, "missing run length")
		}
		if runs[i] == 0 {
			return nil, errors.New("mtf", errors.Invalid, "zero run length")
		}
		code := runCode(runs[i]).Encode()
		if code == ^uint32(0) {
			return nil, errors.New("mtf", errors.Invalid, "run length %d too large", runs[i])
		}
		i++
		n, digits := int(code&0x1f), code>>5
		for j := 0; j < n; j++ {
			syms = append(syms, uint16(digits&1))
			digits >>= 1
		}
	}
	return syms, nil
}

// ParseSymbols inverts AppendSymbols.
func ParseSymbols(syms []uint16) (idxs []uint8, runs []uint32, err error) {
	var code, n uint32
	flush := func() error {
		if n == 0 {
			return nil
		}
		if n > 27 {
			return errors.New("mtf", errors.Corrupted, "run of %d digits too long", n)
		}
		idxs = append(idxs, 0)
		runs = append(runs, runCode(code<<5|n).Decode())
		code, n = 0, 0
		return nil
	}
	for _, sym := range syms {
		if sym == RunA || sym == RunB {
			if n < 27 {
				code |= uint32(sym) << n
			}
			n++
			continue
		}
		if err := flush(); err != nil {
			return nil, nil, err
		}
		if sym > 256 {
			return nil, nil, errors.New("mtf", errors.Corrupted, "symbol %d out of range", sym)
		}
		idxs = append(idxs, uint8(sym-1))
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}
	return idxs, runs, nil
}

// For the RLE encoding that is applied after MTF, a bijective base-2 numeration
// is used. This is a variable length code, so the length of the input effects
// the value of the output.
//
// To save space, the RLE encoding is stored in a single uint32, where the lower
// 5-bits are used for the bit-length, the upper 27-bits are for the RLE code
// itself. RunA is represented by a 0; RunB is represented by a 1. The bits
// are packed in LE order; that is, the least significant bit is in the LSB
// position of the integer. This encoding has a maximum size of ~256MiB.
type runCode uint32

func (v runCode) Encode() (x uint32) {
	var n int
	if v > 0 {
		for rep := v - 1; ; rep = (rep - 2) / 2 {
			if x >>= 1; rep&1 > 0 {
				x |= 0x80000000
			}
			n++
			if rep < 2 {
				break
			}
		}
		if n > 27 {
			return ^uint32(0) // Invalid value to cause problems later
		}
	}
	return (x >> uint(27-n)) | uint32(n)
}

func (v runCode) Decode() (x uint32) {
	repPwr := uint32(1)
	n := int(v & 0x1f)
	v >>= 5
	for i := 0; i < n; i++ {
		x += repPwr << (v & 1)
		repPwr <<= 1
		v >>= 1
	}
	if n > 27 {
		return ^uint32(0) // Invalid value to cause problems later
	}
	return x
}
