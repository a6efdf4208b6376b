// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/dsnet/blocksort/csa"
	"github.com/dsnet/blocksort/internal/errors"
	"github.com/dsnet/blocksort/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	var vectors = []struct {
		input  []byte
		output []byte
	}{{
		input:  []byte("ABRACADABRA!"),
		output: append([]byte{0, 0, 0, 3}, "ARD!RCAAAABB"...),
	}, {
		input:  []byte("A"),
		output: testutil.MustDecodeBitGen("H32:00000000 H8:41"),
	}, {
		input:  []byte("9876543210"),
		output: append([]byte{0, 0, 0, 9}, "1234567890"...),
	}}

	for i, v := range vectors {
		for _, algo := range []csa.Algorithm{csa.Doubling, csa.Compare} {
			var buf bytes.Buffer
			if err := Transform(&buf, bytes.NewReader(v.input), &WriterConfig{Algorithm: algo}); err != nil {
				t.Fatalf("test %d (%v), unexpected error: %v", i, algo, err)
			}
			if diff := cmp.Diff(v.output, buf.Bytes()); diff != "" {
				t.Errorf("test %d (%v), output mismatch (-want +got):\n%s", i, algo, diff)
			}

			var out bytes.Buffer
			if err := InverseTransform(&out, &buf, nil); err != nil {
				t.Fatalf("test %d (%v), unexpected error: %v", i, algo, err)
			}
			if diff := cmp.Diff(v.input, out.Bytes()); diff != "" {
				t.Errorf("test %d (%v), input mismatch (-want +got):\n%s", i, algo, diff)
			}
		}
	}
}

func TestWriter(t *testing.T) {
	input := testutil.NewRand(0).Alphabet(5000, "abcd")
	ptr, last, err := Encode(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	bw, err := NewWriter(&buf, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for b := input; len(b) > 0; b = b[min(len(b), 333):] {
		if _, err := bw.Write(b[:min(len(b), 333)]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Zero(t, buf.Len(), "nothing may be written before Close")
	assert.NoError(t, bw.Close())
	assert.NoError(t, bw.Close(), "second Close")
	assert.Equal(t, int64(len(input)), bw.InputOffset)
	assert.Equal(t, int64(4+len(last)), bw.OutputOffset)

	want := append([]byte{byte(ptr >> 24), byte(ptr >> 16), byte(ptr >> 8), byte(ptr)}, last...)
	assert.Equal(t, want, buf.Bytes())

	_, err = bw.Write([]byte("x"))
	assert.True(t, errors.IsClosed(err), "Write after Close: %v", err)

	// Reset makes the Writer usable again.
	buf.Reset()
	bw.Reset(&buf)
	bw.Write([]byte("ABRACADABRA!"))
	assert.NoError(t, bw.Close())
	assert.Equal(t, append([]byte{0, 0, 0, 3}, "ARD!RCAAAABB"...), buf.Bytes())
}

func TestWriterErrors(t *testing.T) {
	var buf bytes.Buffer
	bw, err := NewWriter(&buf, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = bw.Close()
	assert.True(t, errors.IsInvalid(err), "Close of empty block: %v", err)
	assert.Zero(t, buf.Len())

	_, err = NewWriter(&buf, &WriterConfig{Algorithm: csa.Algorithm(7)})
	assert.True(t, errors.IsInvalid(err), "NewWriter with bad algorithm: %v", err)

	// Errors from the underlying writer are reported by Close.
	errBad := io.ErrShortWrite
	bw, _ = NewWriter(&testutil.BuggyWriter{W: ioutil.Discard, N: 2, Err: errBad}, nil)
	bw.Write([]byte("ABRACADABRA!"))
	assert.Equal(t, errBad, bw.Close())

	// Errors from the underlying reader abort the transform without output.
	buf.Reset()
	br := &testutil.BuggyReader{R: strings.NewReader("ABRACADABRA!"), N: 5, Err: io.ErrClosedPipe}
	assert.Equal(t, io.ErrClosedPipe, Transform(&buf, br, nil))
	assert.Zero(t, buf.Len())
}

func TestReader(t *testing.T) {
	var vectors = []struct {
		input  []byte
		output string
		mode   Mode
		errf   func(error) bool // Expected error class; nil if no error
	}{{
		input:  append([]byte{0, 0, 0, 3}, "ARD!RCAAAABB"...),
		output: "ABRACADABRA!",
	}, {
		input:  testutil.MustDecodeBitGen("H32:00000000 H8:41"),
		output: "A",
	}, {
		input: nil,
		errf:  errors.IsCorrupted,
	}, {
		input: []byte{0, 0, 3},
		errf:  errors.IsCorrupted,
	}, {
		input: []byte{0, 0, 0, 0},
		errf:  errors.IsCorrupted,
	}, {
		input: append([]byte{0, 0, 0, 12}, "ARD!RCAAAABB"...),
		errf:  errors.IsCorrupted,
	}, {
		input: append([]byte{0xff, 0xff, 0xff, 0xff}, "ARD!RCAAAABB"...),
		errf:  errors.IsCorrupted,
	}, {
		input: append([]byte{0, 0, 0, 1}, "abab"...),
		errf:  errors.IsCorrupted,
	}, {
		input:  append([]byte{0, 0, 0, 1}, "abab"...),
		output: "abab",
		mode:   Compatible,
	}}

	for i, v := range vectors {
		br, err := NewReader(bytes.NewReader(v.input), &ReaderConfig{Mode: v.mode})
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		out, err := ioutil.ReadAll(br)
		if v.errf != nil {
			if !v.errf(err) {
				t.Errorf("test %d, mismatching error: got %v", i, err)
			}
			if len(out) > 0 {
				t.Errorf("test %d, partial output on error: %q", i, out)
			}
			if cerr := br.Close(); cerr != err {
				t.Errorf("test %d, Close() = %v, want %v", i, cerr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		if string(out) != v.output {
			t.Errorf("test %d, output mismatch: got %q, want %q", i, out, v.output)
		}
		if br.InputOffset != int64(len(v.input)) {
			t.Errorf("test %d, input offset: got %d, want %d", i, br.InputOffset, len(v.input))
		}
		if br.OutputOffset != int64(len(v.output)) {
			t.Errorf("test %d, output offset: got %d, want %d", i, br.OutputOffset, len(v.output))
		}
		if err := br.Close(); err != nil {
			t.Errorf("test %d, unexpected error on Close: %v", i, err)
		}
		if _, err := br.Read(make([]byte, 1)); !errors.IsClosed(err) {
			t.Errorf("test %d, Read after Close: got %v, want closed error", i, err)
		}
	}

	if _, err := NewReader(nil, &ReaderConfig{Mode: Mode(5)}); !errors.IsInvalid(err) {
		t.Errorf("NewReader with bad mode: got %v, want invalid error", err)
	}
}

func TestReaderUnderlyingError(t *testing.T) {
	input := append([]byte{0, 0, 0, 3}, "ARD!RCAAAABB"...)
	rd := &testutil.BuggyReader{R: bytes.NewReader(input), N: 8, Err: io.ErrClosedPipe}
	br, _ := NewReader(rd, nil)
	out, err := ioutil.ReadAll(br)
	assert.Equal(t, io.ErrClosedPipe, err)
	assert.Empty(t, out)
}

func TestRoundTripRandom(t *testing.T) {
	r := testutil.NewRand(1)
	for i := 0; i < 200; i++ {
		var input []byte
		switch i % 4 {
		case 0:
			input = r.Bytes(1 + r.Intn(300))
		case 1:
			input = r.Alphabet(1+r.Intn(300), "ab")
		case 2:
			input = bytes.Repeat(r.Alphabet(1+r.Intn(5), "xyz"), 1+r.Intn(20))
		case 3:
			input = bytes.Repeat([]byte{byte(i)}, 1+r.Intn(50))
		}

		var buf, out bytes.Buffer
		if err := Transform(&buf, bytes.NewReader(input), nil); err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		if err := InverseTransform(&out, &buf, nil); err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		if !bytes.Equal(input, out.Bytes()) {
			t.Fatalf("test %d, round-trip mismatch:\ngot  %q\nwant %q", i, out.Bytes(), input)
		}
	}
}
