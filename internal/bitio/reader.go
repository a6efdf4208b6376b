// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"bufio"
	"io"
	"io/ioutil"

	"github.com/dsnet/blocksort/internal/errors"
)

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Reader reads bit-granular values from an underlying io.Reader.
// It never reads more bytes from the underlying reader than needed, unless
// the reader had to be wrapped in a bufio.Reader.
type Reader struct {
	rd      byteReader
	bufBits uint64 // Unread bits of the current byte, right-aligned
	numBits uint   // Number of valid bits in bufBits
	offset  int64  // Number of bytes read from the underlying io.Reader
	peek    *bufio.Reader
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	br := new(Reader)
	br.Reset(r)
	return br
}

// Reset discards any state and switches the Reader to read from r.
func (br *Reader) Reset(r io.Reader) {
	*br = Reader{}
	if rr, ok := r.(byteReader); ok {
		br.rd = rr
	} else {
		br.rd = bufio.NewReader(r)
	}
	br.peek, _ = br.rd.(*bufio.Reader)
}

// Offset reports the number of whole bytes consumed from the underlying reader.
func (br *Reader) Offset() int64 { return br.offset }

// ReadBits reads n bits and returns them right-aligned in the result,
// with the first bit read as the most-significant. The bit-width n must be
// within 1..64. It returns io.EOF only if no bits were read at all,
// and io.ErrUnexpectedEOF if the stream ended partway through the value.
func (br *Reader) ReadBits(n uint) (uint64, error) {
	if n == 0 || n > 64 {
		return 0, errors.New("bitio", errors.Invalid, "invalid bit-width: %d", n)
	}
	var v uint64
	for got := uint(0); got < n; {
		if br.numBits == 0 {
			c, err := br.rd.ReadByte()
			if err != nil {
				if err == io.EOF && got > 0 {
					err = io.ErrUnexpectedEOF
				}
				return 0, err
			}
			br.bufBits, br.numBits = uint64(c), 8
			br.offset++
		}
		cnt := n - got
		if cnt > br.numBits {
			cnt = br.numBits
		}
		br.numBits -= cnt
		v = v<<cnt | (br.bufBits>>br.numBits)&(1<<cnt-1)
		got += cnt
	}
	return v, nil
}

// ReadByte reads a single 8-bit value. It returns io.EOF at the end of the
// stream.
func (br *Reader) ReadByte() (byte, error) {
	if br.numBits == 0 {
		c, err := br.rd.ReadByte()
		if err == nil {
			br.offset++
		}
		return c, err
	}
	v, err := br.ReadBits(8)
	return byte(v), err
}

// ReadUint32 reads a 32-bit value.
func (br *Reader) ReadUint32() (uint32, error) {
	v, err := br.ReadBits(32)
	return uint32(v), err
}

// Read reads up to len(buf) 8-bit values into buf.
func (br *Reader) Read(buf []byte) (int, error) {
	if br.numBits == 0 {
		n, err := br.rd.Read(buf)
		br.offset += int64(n)
		return n, err
	}
	for i := range buf {
		c, err := br.ReadByte()
		if err != nil {
			return i, err
		}
		buf[i] = c
	}
	return len(buf), nil
}

// ReadAll reads 8-bit values until the stream is exhausted.
// Trailing bits that do not form a complete byte are discarded.
func (br *Reader) ReadAll() ([]byte, error) {
	if br.numBits == 0 {
		b, err := ioutil.ReadAll(br.rd)
		br.offset += int64(len(b))
		return b, err
	}
	var b []byte
	for {
		c, err := br.ReadByte()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return b, nil
		}
		if err != nil {
			return b, err
		}
		b = append(b, c)
	}
}

// IsEmpty reports whether the stream has no more whole bytes to read.
func (br *Reader) IsEmpty() bool {
	if br.numBits >= 8 {
		return false
	}
	if br.peek != nil {
		_, err := br.peek.Peek(1)
		return err != nil
	}
	c, err := br.rd.ReadByte()
	if err != nil {
		return true
	}
	// Splice the byte into the bit buffer so no data is lost.
	br.bufBits = br.bufBits<<8 | uint64(c)
	br.numBits += 8
	br.offset++
	return false
}
