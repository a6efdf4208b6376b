// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package blocksort is a collection of block-sorting transforms used to
// precondition data for an entropy coder.
//
// The csa package sorts the circular rotations of a block, the bwt package
// implements the Burrows-Wheeler transform on top of it, and the mtf package
// implements the move-to-front stage that typically follows. This package
// ties the two transforms into a single pipeline.
package blocksort

import (
	"github.com/dsnet/blocksort/bwt"
	"github.com/dsnet/blocksort/mtf"
)

// The Error interface identifies all errors generated by this module.
type Error interface {
	error

	// IsInvalid reports whether the error was a result of the caller misusing
	// the API, such as transforming an empty block.
	IsInvalid() bool

	// IsOutOfRange reports whether an index passed to an accessor was outside
	// the bounds of the object.
	IsOutOfRange() bool

	// IsCorrupted reports whether the input data was malformed, such as a
	// first-index outside the block or a last column with no valid preimage.
	IsCorrupted() bool

	// IsClosed reports whether a Reader or Writer was used after Close.
	IsClosed() bool
}

// Encode applies the Burrows-Wheeler transform to block and move-to-front
// encodes the resulting last column. It returns the first-index needed to
// invert the transform along with the indexes.
func Encode(block []byte) (ptr int, idxs []byte, err error) {
	ptr, last, err := bwt.Encode(block)
	if err != nil {
		return 0, nil, err
	}
	return ptr, mtf.Encode(last), nil
}

// Decode inverts Encode. The last column is validated in strict mode, so
// corrupted input is reported as an error rather than decoded into garbage.
func Decode(ptr int, idxs []byte) ([]byte, error) {
	return bwt.Decode(mtf.Decode(idxs), ptr, bwt.Strict)
}
