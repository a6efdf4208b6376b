// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package csa

// The prefix doubling method sorts the cyclic substrings of length 2k using
// the ranks already computed for length k. A substring of length 2k at
// offset i is the pair (class[i], class[i+k]), where class assigns equal
// numbers to equal substrings. Sorting by the second half is free, since the
// array sorted by length k already lists every i+k in order; a single stable
// counting sort by the first half then completes the step.
//
// Once 2k >= N, the substrings cover entire rotations, so the order is final.
// Each step is O(N), giving O(N log N) total.
//
// References:
//	https://cp-algorithms.com/string/suffix-array.html
//	https://doi.org/10.1137/0222058

// sortDoubling places the sorted rotation offsets of s into sa.
// Both s and sa must be the same non-zero length.
func sortDoubling(s []byte, sa []int) {
	n := len(s)
	class := make([]int, n)
	tmp := make([]int, n)
	cnt := make([]int, max(256, n))

	// Sort by the first byte of every rotation.
	for _, b := range s {
		cnt[b]++
	}
	sum := 0
	for i := 0; i < 256; i++ {
		sum += cnt[i]
		cnt[i] = sum
	}
	for i := n - 1; i >= 0; i-- {
		cnt[s[i]]--
		sa[cnt[s[i]]] = i
	}
	numClasses := 1
	class[sa[0]] = 0
	for i := 1; i < n; i++ {
		if s[sa[i]] != s[sa[i-1]] {
			numClasses++
		}
		class[sa[i]] = numClasses - 1
	}

	for k := 1; k < n && numClasses < n; k <<= 1 {
		// Order by the second half: shifting each offset back by k keeps the
		// array sorted with respect to class[i+k].
		for i, p := range sa {
			if p -= k; p < 0 {
				p += n
			}
			tmp[i] = p
		}

		// Stable counting sort by the first half.
		for i := range cnt[:numClasses] {
			cnt[i] = 0
		}
		for _, p := range tmp {
			cnt[class[p]]++
		}
		sum = 0
		for i, c := range cnt[:numClasses] {
			sum += c
			cnt[i] = sum
		}
		for i := n - 1; i >= 0; i-- {
			p := tmp[i]
			cnt[class[p]]--
			sa[cnt[class[p]]] = p
		}

		// Assign new classes to the substrings of length 2k.
		next := tmp
		next[sa[0]] = 0
		numClasses = 1
		for i := 1; i < n; i++ {
			cur, prev := sa[i], sa[i-1]
			if class[cur] != class[prev] || class[wrap(cur+k, n)] != class[wrap(prev+k, n)] {
				numClasses++
			}
			next[cur] = numClasses - 1
		}
		class, tmp = next, class
	}
}

func wrap(i, n int) int {
	if i >= n {
		return i - n
	}
	return i
}
