// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/dsnet/blocksort"
	"github.com/dsnet/blocksort/bwt"
	"github.com/dsnet/blocksort/internal"
	"github.com/dsnet/blocksort/internal/bitio"
	"github.com/dsnet/blocksort/internal/errors"
)

// DefaultBlockSize is the largest block size that BZip2 permits.
const DefaultBlockSize = 900000

// The preconditioned stream splits the input into blocks, each of which is
// stored as:
//	[N:32] [ptr:32] [crc:32] [N MTF indexes]
//
// The stream ends with a zero length followed by the checksum of the whole
// stream, which is the combination of every block checksum:
//	[0:32] [crc:32]
//
// All integers are big-endian and the checksums are the BZip2 CRC-32.

// BlockWriter preconditions data for an underlying entropy encoder.
type BlockWriter struct {
	zw        io.WriteCloser
	bw        bitio.Writer
	blockSize int
	buf       []byte
	crc       uint32 // Checksum of all blocks written so far
	err       error
}

// NewBlockWriter returns a BlockWriter that writes preconditioned blocks of
// at most blockSize bytes into zw. A non-positive blockSize selects the
// default. Closing the BlockWriter closes zw.
func NewBlockWriter(zw io.WriteCloser, blockSize int) *BlockWriter {
	if blockSize <= 0 || blockSize > bwt.MaxBlockSize {
		blockSize = DefaultBlockSize
	}
	w := &BlockWriter{zw: zw, blockSize: blockSize}
	w.bw.Reset(zw)
	return w
}

func (w *BlockWriter) Write(buf []byte) (int, error) {
	var n int
	for len(buf) > 0 {
		if w.err != nil {
			return n, w.err
		}
		cnt := w.blockSize - len(w.buf)
		if cnt > len(buf) {
			cnt = len(buf)
		}
		w.buf = append(w.buf, buf[:cnt]...)
		buf, n = buf[cnt:], n+cnt
		if len(w.buf) == w.blockSize {
			w.err = w.writeBlock()
		}
	}
	return n, w.err
}

func (w *BlockWriter) writeBlock() error {
	ptr, idxs, err := blocksort.Encode(w.buf)
	if err != nil {
		return err
	}
	crc := internal.UpdateCRC(0, w.buf)
	w.crc = internal.CombineCRC(w.crc, crc, int64(len(w.buf)))
	w.bw.WriteUint32(uint32(len(w.buf)))
	w.bw.WriteUint32(uint32(ptr))
	w.bw.WriteUint32(crc)
	if _, err := w.bw.Write(idxs); err != nil {
		return err // Earlier write errors persist in bw
	}
	w.buf = w.buf[:0]
	return nil
}

// Close writes any buffered block along with the stream trailer and closes
// the underlying encoder.
func (w *BlockWriter) Close() error {
	if w.err != nil {
		if errors.IsClosed(w.err) {
			return nil
		}
		return w.err
	}
	if len(w.buf) > 0 {
		if w.err = w.writeBlock(); w.err != nil {
			return w.err
		}
	}
	w.bw.WriteUint32(0)
	w.bw.WriteUint32(w.crc)
	if w.err = w.bw.Flush(); w.err != nil {
		return w.err
	}
	if w.err = w.zw.Close(); w.err != nil {
		return w.err
	}
	w.err = errors.New("bench", errors.Closed, "")
	return nil
}

// BlockReader reverses the preconditioning applied by BlockWriter on the
// output of an underlying entropy decoder. Every block is verified against
// its checksum before any of it is returned.
type BlockReader struct {
	zr        io.ReadCloser
	br        bitio.Reader
	blockSize int    // Largest block length accepted
	buf       []byte // Decoded data not yet returned
	crc       uint32 // Checksum of all blocks read so far
	err       error
}

// NewBlockReader returns a BlockReader that reads preconditioned blocks from
// zr. Blocks longer than blockSize are rejected as corrupted; a non-positive
// blockSize selects the default. Closing the BlockReader closes zr.
func NewBlockReader(zr io.ReadCloser, blockSize int) *BlockReader {
	if blockSize <= 0 || blockSize > bwt.MaxBlockSize {
		blockSize = DefaultBlockSize
	}
	r := &BlockReader{zr: zr, blockSize: blockSize}
	r.br.Reset(zr)
	return r
}

func (r *BlockReader) Read(buf []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.err = r.readBlock()
	}
	n := copy(buf, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

func (r *BlockReader) readBlock() (err error) {
	defer errors.Recover(&err)

	n := r.readUint32()
	if n == 0 {
		if crc := r.readUint32(); crc != r.crc {
			errors.Panic(errors.New("bench", errors.Corrupted, "stream checksum mismatch: got %08x, want %08x", r.crc, crc))
		}
		return io.EOF
	}
	if int64(n) > int64(r.blockSize) {
		errors.Panic(errors.New("bench", errors.Corrupted, "block size %d exceeds %d", n, r.blockSize))
	}
	ptr := r.readUint32()
	crc := r.readUint32()
	idxs := make([]byte, n)
	if _, err := io.ReadFull(&r.br, idxs); err != nil {
		errors.Panic(noEOF(err))
	}

	out, err := blocksort.Decode(int(ptr), idxs)
	if err != nil {
		return err
	}
	if got := internal.UpdateCRC(0, out); got != crc {
		return errors.New("bench", errors.Corrupted, "block checksum mismatch: got %08x, want %08x", got, crc)
	}
	r.crc = internal.CombineCRC(r.crc, crc, int64(n))
	r.buf = out
	return nil
}

func (r *BlockReader) readUint32() uint32 {
	v, err := r.br.ReadUint32()
	if err != nil {
		errors.Panic(noEOF(err))
	}
	return v
}

// Close closes the underlying decoder. It reports any error other than
// reaching the end of the stream.
func (r *BlockReader) Close() error {
	cerr := r.zr.Close()
	if r.err != nil && r.err != io.EOF {
		return r.err
	}
	return cerr
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
