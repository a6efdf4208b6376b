// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reNum = regexp.MustCompile("^[DH][0-9]+:[0-9a-fA-F]+$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string into the MSB-first
// bit-stream that bitio.Writer produces.
//
// Tokens are separated by white space and '#' starts a comment running to the
// end of the line. Each token appends bits to the stream:
//
//	[01]{1,64}        a bit-string, written left to right
//	D<n>:<decimal>    an n-bit value, most-significant bit first
//	H<n>:<hex>        likewise, with the value in hexadecimal
//	X:<hex>           literal bytes; the stream must be byte-aligned
//
// Any token may end with a "*<count>" quantifier that repeats it.
// A stream that does not end on a byte boundary is padded with 0 bits.
//
// Example:
//	H32:00000003 # First-index: 3
//	X:2c646f     # Last column: ",do"
//	1 0*7        # A lone bit, padded out by the quantifier
//
// decodes to "000000032c646f80".
func DecodeBitGen(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	var bb bitBuffer
	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			n, err := strconv.Atoi(t[i+1:])
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = t[:i], n
		}

		switch {
		case reBin.MatchString(t):
			v, _ := strconv.ParseUint(t, 2, 64)
			for i := 0; i < rep; i++ {
				bb.WriteBits64(v, uint(len(t)))
			}
		case reNum.MatchString(t):
			i := strings.IndexByte(t, ':')
			base := 10
			if t[0] == 'H' {
				base = 16
			}
			n, err1 := strconv.Atoi(t[1:i])
			v, err2 := strconv.ParseUint(t[i+1:], base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v>>uint(n) != 0 {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				bb.WriteBits64(v, uint(n))
			}
		case reRaw.MatchString(t):
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			if _, err := bb.Write(bytes.Repeat(b, rep)); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bb.b, nil
}

// bitBuffer is a minimal MSB-first bit writer.
// It is separate from bitio.Writer so that tests of bitio do not depend on it.
type bitBuffer struct {
	b []byte
	n uint // Number of bits used in the last byte; 0 if aligned
}

func (b *bitBuffer) Write(buf []byte) (int, error) {
	if b.n != 0 {
		return 0, errors.New("testutil: unaligned write")
	}
	b.b = append(b.b, buf...)
	return len(buf), nil
}

func (b *bitBuffer) WriteBits64(v uint64, n uint) {
	for i := n; i > 0; i-- {
		if b.n == 0 {
			b.b = append(b.b, 0x00)
		}
		if v>>(i-1)&1 != 0 {
			b.b[len(b.b)-1] |= 0x80 >> b.n
		}
		b.n = (b.n + 1) % 8
	}
}
