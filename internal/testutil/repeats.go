// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

// Repeats returns n bytes made mostly of copies of earlier data at varying
// distances, interleaved with runs of random bytes. Such data sorts into long
// runs of equal symbols after a Burrows-Wheeler transform.
func (r *Rand) Repeats(n int) []byte {
	var b []byte

	// Lengths and distances are drawn from power-of-two buckets.
	randLen := func() int {
		lo := 4 << uint(r.Intn(7)) // 4..512
		return lo + r.Intn(lo)
	}
	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			lo := 1 << uint(r.Intn(15)) // 1..32768
			d = lo + r.Intn(lo)
		}
		return d
	}
	writeRand := func(l int) {
		b = append(b, r.Bytes(l)...)
	}
	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(512 + randLen()) // Seed enough history for the first copy
	for len(b) < n {
		switch p := r.Intn(10); {
		case p == 0:
			writeRand(randLen())
		case p <= 8:
			d, l := randDist(), randLen()
			for d <= l {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			writeCopy(randDist(), randLen())
		}
	}
	return b[:n]
}
