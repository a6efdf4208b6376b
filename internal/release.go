// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !debug && !gofuzz
// +build !debug,!gofuzz

package internal

// Debug indicates whether the debug or gofuzz build tag was set.
//
// If set, the transforms verify their own outputs (for example, that a
// suffix order permutation is actually sorted) and panic on any mismatch.
const Debug = false
