// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package csa

import "sort"

// compareRotations compares the rotations of s starting at offsets i and j.
// All N bytes are examined before declaring the rotations equal, since two
// rotations may share an arbitrarily long common prefix.
func compareRotations(s []byte, i, j int) int {
	n := len(s)
	for k := 0; k < n; k++ {
		if a, b := s[i], s[j]; a != b {
			if a < b {
				return -1
			}
			return +1
		}
		if i++; i == n {
			i = 0
		}
		if j++; j == n {
			j = 0
		}
	}
	return 0
}

type rotations struct {
	s  []byte
	sa []int
}

func (r rotations) Len() int           { return len(r.sa) }
func (r rotations) Swap(i, j int)      { r.sa[i], r.sa[j] = r.sa[j], r.sa[i] }
func (r rotations) Less(i, j int) bool { return compareRotations(r.s, r.sa[i], r.sa[j]) < 0 }

// sortCompare places the sorted rotation offsets of s into sa.
func sortCompare(s []byte, sa []int) {
	for i := range sa {
		sa[i] = i
	}
	sort.Stable(rotations{s, sa})
}
