// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	var vectors = []struct {
		err  error
		want string
	}{
		{Error{}, "unknown error"},
		{Error{Code: Invalid}, "invalid argument"},
		{Error{Pkg: "csa", Code: OutOfRange}, "csa: index out of range"},
		{Error{Pkg: "bwt", Code: Corrupted, Msg: "short cycle"}, "bwt: corrupted input: short cycle"},
		{New("mtf", Closed, "write after close"), "mtf: closed handler: write after close"},
	}

	for i, v := range vectors {
		if got := v.err.Error(); got != v.want {
			t.Errorf("test %d, Error() mismatch: got %q, want %q", i, got, v.want)
		}
	}
}

func TestClassify(t *testing.T) {
	assert.True(t, IsInvalid(New("csa", Invalid, "")))
	assert.True(t, IsOutOfRange(New("csa", OutOfRange, "")))
	assert.True(t, IsCorrupted(New("bwt", Corrupted, "")))
	assert.True(t, IsClosed(New("bwt", Closed, "")))
	assert.False(t, IsCorrupted(New("bwt", Invalid, "")))
	assert.False(t, IsCorrupted(io.EOF))
	assert.False(t, IsInvalid(nil))
}

func TestPanicRecover(t *testing.T) {
	want := New("bwt", Corrupted, "bad pointer")
	got := func() (err error) {
		defer Recover(&err)
		Panic(want)
		return nil
	}()
	assert.Equal(t, want, got)

	// Panics that did not originate from Panic propagate.
	assert.Panics(t, func() {
		var err error
		defer Recover(&err)
		var b []byte
		_ = b[1]
	})
	assert.Panics(t, func() {
		var err error
		defer Recover(&err)
		panic("boom")
	})
}
