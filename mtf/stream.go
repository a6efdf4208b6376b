// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mtf

import (
	"io"

	"github.com/dsnet/blocksort/internal/bitio"
	"github.com/dsnet/blocksort/internal/errors"
)

// Writer move-to-front encodes all data written to it, one 8-bit index per
// input byte. Unlike the block transforms, encoding is fully incremental.
type Writer struct {
	InputOffset  int64 // Total number of bytes accepted by Write
	OutputOffset int64 // Total number of bytes written to the underlying io.Writer

	bw  bitio.Writer
	mtf MoveToFront
	err error
}

// NewWriter returns a Writer that writes indexes to w.
func NewWriter(w io.Writer) *Writer {
	mw := new(Writer)
	mw.Reset(w)
	return mw
}

func (mw *Writer) Write(buf []byte) (int, error) {
	if mw.err != nil {
		return 0, mw.err
	}
	for i, val := range buf {
		idx, err := mw.mtf.EncodeByte(val)
		if err == nil {
			err = mw.bw.WriteBits(uint64(idx), 8)
		}
		if err != nil {
			mw.err = err
			return i, err
		}
		mw.InputOffset++
	}
	mw.OutputOffset = mw.bw.Offset()
	return len(buf), nil
}

// Close flushes all indexes to the underlying io.Writer.
// It does not close the underlying io.Writer.
func (mw *Writer) Close() error {
	if mw.err != nil {
		if errors.IsClosed(mw.err) {
			return nil
		}
		return mw.err
	}
	if mw.err = mw.bw.Flush(); mw.err != nil {
		return mw.err
	}
	mw.OutputOffset = mw.bw.Offset()
	mw.err = errors.New("mtf", errors.Closed, "")
	return nil
}

// Reset discards the Writer's state, including its symbol table, and makes
// it equivalent to the result of NewWriter, but writing to w instead.
func (mw *Writer) Reset(w io.Writer) {
	mw.bw.Reset(w)
	mw.mtf.Reset()
	mw.InputOffset, mw.OutputOffset, mw.err = 0, 0, nil
}

// Reader decodes move-to-front indexes read from an underlying io.Reader.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from the underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	br  bitio.Reader
	mtf MoveToFront
	err error
}

// NewReader returns a Reader that reads indexes from r.
func NewReader(r io.Reader) *Reader {
	mr := new(Reader)
	mr.Reset(r)
	return mr
}

func (mr *Reader) Read(buf []byte) (int, error) {
	if mr.err != nil {
		return 0, mr.err
	}
	var n int
	for n < len(buf) {
		idx, err := mr.br.ReadByte()
		if err == nil {
			buf[n], err = mr.mtf.DecodeByte(idx)
		}
		if err != nil {
			mr.err = err
			break
		}
		n++
	}
	mr.InputOffset = mr.br.Offset()
	mr.OutputOffset += int64(n)
	if n > 0 {
		return n, nil
	}
	return 0, mr.err
}

// Close ends the use of the Reader. Subsequent reads fail with a Closed error.
// It does not close the underlying io.Reader.
func (mr *Reader) Close() error {
	if mr.err == io.EOF || mr.err == nil {
		mr.err = errors.New("mtf", errors.Closed, "")
		return nil
	}
	if errors.IsClosed(mr.err) {
		return nil
	}
	return mr.err
}

// Reset discards the Reader's state, including its symbol table, and makes
// it equivalent to the result of NewReader, but reading from r instead.
func (mr *Reader) Reset(r io.Reader) {
	mr.br.Reset(r)
	mr.mtf.Reset()
	mr.InputOffset, mr.OutputOffset, mr.err = 0, 0, nil
}

// EncodeStream move-to-front encodes r until it is exhausted and writes the
// indexes to w. If r fails, the indexes of the bytes read so far are still
// flushed to w and the read error is reported.
func EncodeStream(w io.Writer, r io.Reader) error {
	mw := NewWriter(w)
	_, err := io.Copy(mw, r)
	if cerr := mw.Close(); err == nil {
		err = cerr
	}
	return err
}

// DecodeStream decodes the indexes in r until it is exhausted and writes the
// symbols to w.
func DecodeStream(w io.Writer, r io.Reader) error {
	mr := NewReader(r)
	if _, err := io.Copy(w, mr); err != nil {
		return err
	}
	return mr.Close()
}
