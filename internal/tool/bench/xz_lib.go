// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_xz_lib
// +build !no_xz_lib

package bench

import (
	"io"
	"io/ioutil"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// dictCap maps a compression level onto a dictionary capacity,
// from 128KiB at level 1 up to 32MiB at level 9.
func dictCap(lvl int) int {
	if lvl < 1 {
		lvl = 1
	}
	if lvl > 9 {
		lvl = 9
	}
	return 1 << uint(16+lvl)
}

func init() {
	RegisterCodec(FormatXZ, "uk",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := xz.WriterConfig{DictCap: dictCap(lvl)}.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			return ioutil.NopCloser(newLazyReader(func() (io.Reader, error) {
				return xz.NewReader(r)
			}))
		})
	RegisterCodec(FormatLZMA, "uk",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := lzma.WriterConfig{DictCap: dictCap(lvl)}.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			return ioutil.NopCloser(newLazyReader(func() (io.Reader, error) {
				return lzma.NewReader(r)
			}))
		})
}

// lazyReader defers construction of a decoder that reads its header eagerly
// until the first call to Read, so that header errors are reported by Read.
type lazyReader struct {
	newReader func() (io.Reader, error)
	rd        io.Reader
	err       error
}

func newLazyReader(fn func() (io.Reader, error)) *lazyReader {
	return &lazyReader{newReader: fn}
}

func (lr *lazyReader) Read(buf []byte) (int, error) {
	if lr.rd == nil && lr.err == nil {
		lr.rd, lr.err = lr.newReader()
	}
	if lr.err != nil {
		return 0, lr.err
	}
	return lr.rd.Read(buf)
}
