// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitio implements the byte-stream source and sink used by the
// transform drivers.
//
// Bits are packed in big-endian order; that is, the first bit written is
// stored in the most-significant bit of the first byte. Multi-bit values are
// written starting with their most-significant bit, so a 32-bit value written
// on a byte boundary is laid out as a big-endian integer.
package bitio

import (
	"bufio"
	"io"

	"github.com/dsnet/blocksort/internal/errors"
)

// Writer writes bit-granular values to an underlying io.Writer.
type Writer struct {
	wr      *bufio.Writer
	bufBits uint64 // Pending bits, right-aligned
	numBits uint   // Number of valid bits in bufBits, always < 8 between calls
	offset  int64  // Number of bytes written to the underlying io.Writer
	err     error  // Persistent error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	bw := new(Writer)
	bw.Reset(w)
	return bw
}

// Reset discards any state and switches the Writer to write to w.
func (bw *Writer) Reset(w io.Writer) {
	if bw.wr == nil {
		bw.wr = bufio.NewWriter(w)
	} else {
		bw.wr.Reset(w)
	}
	bw.bufBits, bw.numBits, bw.offset, bw.err = 0, 0, 0, nil
}

// Offset reports the number of whole bytes written so far.
func (bw *Writer) Offset() int64 { return bw.offset }

// WriteBits writes the lower n bits of v, most-significant bit first.
// The bit-width n must be within 1..64.
func (bw *Writer) WriteBits(v uint64, n uint) error {
	if bw.err != nil {
		return bw.err
	}
	if n == 0 || n > 64 {
		return errors.New("bitio", errors.Invalid, "invalid bit-width: %d", n)
	}
	if n < 64 {
		v &= 1<<n - 1
	}
	for n > 0 {
		// Take as many bits as fill up the current byte.
		cnt := 8 - bw.numBits
		if cnt > n {
			cnt = n
		}
		n -= cnt
		bw.bufBits = bw.bufBits<<cnt | (v>>n)&(1<<cnt-1)
		bw.numBits += cnt
		if bw.numBits == 8 {
			if bw.err = bw.wr.WriteByte(byte(bw.bufBits)); bw.err != nil {
				return bw.err
			}
			bw.bufBits, bw.numBits = 0, 0
			bw.offset++
		}
	}
	return nil
}

// WriteByte writes a single 8-bit value.
func (bw *Writer) WriteByte(c byte) error {
	return bw.WriteBits(uint64(c), 8)
}

// WriteUint32 writes a 32-bit value.
func (bw *Writer) WriteUint32(v uint32) error {
	return bw.WriteBits(uint64(v), 32)
}

// Write writes buf as a series of 8-bit values.
func (bw *Writer) Write(buf []byte) (int, error) {
	if bw.err != nil {
		return 0, bw.err
	}
	if bw.numBits == 0 {
		n, err := bw.wr.Write(buf)
		bw.offset += int64(n)
		bw.err = err
		return n, err
	}
	for i, c := range buf {
		if err := bw.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(buf), nil
}

// Flush pads any partial byte with zero bits and flushes buffered data to the
// underlying io.Writer.
func (bw *Writer) Flush() error {
	if bw.err != nil {
		return bw.err
	}
	if bw.numBits > 0 {
		if err := bw.WriteBits(0, 8-bw.numBits); err != nil {
			return err
		}
	}
	bw.err = bw.wr.Flush()
	return bw.err
}

// Close flushes the Writer. Subsequent writes fail with a Closed error.
// Closing an already closed Writer reports the Closed error.
func (bw *Writer) Close() error {
	if err := bw.Flush(); err != nil {
		return err
	}
	bw.err = errors.New("bitio", errors.Closed, "")
	return nil
}
