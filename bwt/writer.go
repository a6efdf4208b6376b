// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"io"

	"github.com/dsnet/blocksort/csa"
	"github.com/dsnet/blocksort/internal/bitio"
	"github.com/dsnet/blocksort/internal/errors"
)

// WriterConfig configures a Writer. The zero value uses the defaults.
type WriterConfig struct {
	// Algorithm is the suffix sort used to compute the transform.
	Algorithm csa.Algorithm

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Writer buffers a single block and writes its transform upon Close.
type Writer struct {
	InputOffset  int64 // Total number of bytes accepted by Write
	OutputOffset int64 // Total number of bytes written to the underlying io.Writer

	bw   bitio.Writer
	algo csa.Algorithm
	buf  bytes.Buffer
	err  error
}

// NewWriter returns a Writer that writes the transform of all data written to
// it into w. A nil conf uses the defaults.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	var algo csa.Algorithm
	if conf != nil {
		algo = conf.Algorithm
	}
	switch algo {
	case csa.Doubling, csa.Compare:
	default:
		return nil, errors.New("bwt", errors.Invalid, "unknown algorithm: %v", algo)
	}
	bw := &Writer{algo: algo}
	bw.Reset(w)
	return bw, nil
}

// Write buffers buf as part of the block.
func (bw *Writer) Write(buf []byte) (int, error) {
	if bw.err != nil {
		return 0, bw.err
	}
	if int64(bw.buf.Len()+len(buf)) > MaxBlockSize {
		bw.err = errors.New("bwt", errors.Invalid, "block exceeds %d bytes", MaxBlockSize)
		return 0, bw.err
	}
	n, _ := bw.buf.Write(buf)
	bw.InputOffset += int64(n)
	return n, nil
}

// Close transforms the buffered block and writes it to the underlying
// io.Writer. An empty block is rejected without writing anything.
// It does not close the underlying io.Writer.
func (bw *Writer) Close() error {
	if bw.err != nil {
		if errors.IsClosed(bw.err) {
			return nil
		}
		return bw.err
	}

	err := bw.encode()
	if bw.err = err; err == nil {
		bw.err = errors.New("bwt", errors.Closed, "")
	}
	return err
}

func (bw *Writer) encode() error {
	ptr, last, err := EncodeWithAlgorithm(bw.buf.Bytes(), bw.algo)
	if err != nil {
		return err
	}
	if err := bw.bw.WriteUint32(uint32(ptr)); err != nil {
		return err
	}
	if _, err := bw.bw.Write(last); err != nil {
		return err
	}
	err = bw.bw.Flush()
	bw.OutputOffset = bw.bw.Offset()
	return err
}

// Reset discards the Writer's state and makes it equivalent to the result of
// NewWriter, but writing to w instead.
func (bw *Writer) Reset(w io.Writer) {
	bw.bw.Reset(w)
	bw.buf.Reset()
	bw.InputOffset, bw.OutputOffset, bw.err = 0, 0, nil
}

// Transform reads the entire block from r and writes its transform to w.
func Transform(w io.Writer, r io.Reader, conf *WriterConfig) error {
	bw, err := NewWriter(w, conf)
	if err != nil {
		return err
	}
	if _, err := io.Copy(bw, r); err != nil {
		return err // Nothing has been written yet
	}
	return bw.Close()
}
