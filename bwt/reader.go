// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"io"

	"github.com/dsnet/blocksort/internal/bitio"
	"github.com/dsnet/blocksort/internal/errors"
)

// ReaderConfig configures a Reader. The zero value uses the defaults.
type ReaderConfig struct {
	// Mode selects how the block is validated when decoded.
	Mode Mode

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Reader decodes a transformed block. The whole block is read from the
// underlying io.Reader and validated before any byte is returned by Read.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from the underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	br   bitio.Reader
	mode Mode
	buf  []byte // Decoded data yet to be consumed
	done bool   // Whether the block has been decoded
	err  error  // Persistent error
}

// NewReader returns a Reader that decodes the block stored in r.
// A nil conf uses the defaults.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	var mode Mode
	if conf != nil {
		mode = conf.Mode
	}
	switch mode {
	case Strict, Compatible:
	default:
		return nil, errors.New("bwt", errors.Invalid, "unknown mode: %d", int(mode))
	}
	br := &Reader{mode: mode}
	br.Reset(r)
	return br, nil
}

// Read reads the decoded block.
func (br *Reader) Read(buf []byte) (int, error) {
	if br.err != nil {
		return 0, br.err
	}
	if !br.done {
		br.buf, br.err = br.decode()
		br.done = true
		if br.err != nil {
			return 0, br.err
		}
	}
	if len(br.buf) == 0 {
		br.err = io.EOF
		return 0, br.err
	}
	n := copy(buf, br.buf)
	br.buf = br.buf[n:]
	br.OutputOffset += int64(n)
	return n, nil
}

func (br *Reader) decode() (out []byte, err error) {
	defer func() { br.InputOffset = br.br.Offset() }()

	ptr, err := br.br.ReadUint32()
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.New("bwt", errors.Corrupted, "missing origin pointer")
		}
		return nil, err
	}
	if ptr > MaxBlockSize {
		return nil, errors.New("bwt", errors.Corrupted, "origin pointer %d exceeds %d", ptr, MaxBlockSize)
	}
	last, err := br.br.ReadAll()
	if err != nil {
		return nil, err
	}
	return Decode(last, int(ptr), br.mode)
}

// Close ends the use of the Reader. Subsequent reads fail with a Closed error.
// It does not close the underlying io.Reader.
func (br *Reader) Close() error {
	if br.err == io.EOF || br.err == nil {
		br.err = errors.New("bwt", errors.Closed, "")
		return nil
	}
	if errors.IsClosed(br.err) {
		return nil
	}
	return br.err
}

// Reset discards the Reader's state and makes it equivalent to the result of
// NewReader, but reading from r instead.
func (br *Reader) Reset(r io.Reader) {
	br.br.Reset(r)
	br.buf, br.done, br.err = nil, false, nil
	br.InputOffset, br.OutputOffset = 0, 0
}

// InverseTransform reads a transformed block from r and writes the decoded
// block to w. Nothing is written to w if the block fails to decode.
func InverseTransform(w io.Writer, r io.Reader, conf *ReaderConfig) error {
	br, err := NewReader(r, conf)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, br); err != nil {
		return err
	}
	return br.Close()
}
