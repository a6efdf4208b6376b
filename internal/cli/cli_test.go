// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/dsnet/blocksort/internal"
	"github.com/dsnet/blocksort/internal/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	var vectors = []struct {
		args []string
		want Direction
		ok   bool
	}{
		{args: []string{"-"}, want: Forward, ok: true},
		{args: []string{"+"}, want: Inverse, ok: true},
		{args: nil},
		{args: []string{""}},
		{args: []string{"--"}},
		{args: []string{"+", "-"}},
	}

	for i, v := range vectors {
		got, err := ParseDirection("test", v.args)
		if !v.ok {
			assert.True(t, errors.IsInvalid(err), "test %d, got error %v", i, err)
			continue
		}
		assert.NoError(t, err, "test %d", i)
		assert.Equal(t, v.want, got, "test %d", i)
	}
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "inverse", Inverse.String())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false)
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = NewLogger(&buf, true)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.Debug("hidden")
	assert.Contains(t, buf.String(), "hidden")
}

func TestCounter(t *testing.T) {
	input := "The quick brown fox jumps over the lazy dog."
	rd := &Counter{R: strings.NewReader(input)}
	var buf bytes.Buffer
	wr := &Counter{W: &buf}
	b, err := ioutil.ReadAll(rd)
	assert.NoError(t, err)
	wr.Write(b[:10])
	wr.Write(b[10:])

	want := internal.UpdateCRC(0, []byte(input))
	assert.Equal(t, int64(len(input)), rd.N)
	assert.Equal(t, want, rd.CRC)
	assert.Equal(t, rd.N, wr.N)
	assert.Equal(t, rd.CRC, wr.CRC)
	assert.Equal(t, input, buf.String())

	f := rd.Fields("in")
	assert.Equal(t, int64(len(input)), f["in_bytes"])
	assert.Len(t, f["in_crc"], 8)
}
