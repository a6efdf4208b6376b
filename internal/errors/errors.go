// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate the errors returned by
// the block-sorting transforms.
//
// Every error produced by the public packages is an Error value, so that
// callers may classify it through the methods of blocksort.Error.
package errors

import (
	"fmt"
	"runtime"
)

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	// Users should file an issue report if this type of error is encountered.
	Internal

	// Invalid indicates that this error is due to the user misusing the API
	// and is indicative of a bug on the user's part.
	Invalid

	// OutOfRange indicates that an index passed to an accessor does not lie
	// within the bounds of the object.
	OutOfRange

	// Corrupted indicates that the input stream is corrupted.
	Corrupted

	// Closed indicates that the handlers are closed.
	Closed
)

var codeMap = map[int]string{
	Unknown:    "unknown error",
	Internal:   "internal error",
	Invalid:    "invalid argument",
	OutOfRange: "index out of range",
	Corrupted:  "corrupted input",
	Closed:     "closed handler",
}

// Error is the error value returned by every package of this module.
type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	switch len(ss) {
	case 0:
		return codeMap[Unknown]
	case 1:
		return ss[0]
	case 2:
		return ss[0] + ": " + ss[1]
	default:
		return ss[0] + ": " + ss[1] + ": " + ss[2]
	}
}

func (e Error) IsInvalid() bool    { return e.Code == Invalid }
func (e Error) IsOutOfRange() bool { return e.Code == OutOfRange }
func (e Error) IsCorrupted() bool  { return e.Code == Corrupted }
func (e Error) IsClosed() bool     { return e.Code == Closed }

// New constructs an Error for package pkg.
func New(pkg string, code int, format string, args ...interface{}) error {
	return Error{Code: code, Pkg: pkg, Msg: fmt.Sprintf(format, args...)}
}

func IsInvalid(err error) bool    { return isCode(err, Invalid) }
func IsOutOfRange(err error) bool { return isCode(err, OutOfRange) }
func IsCorrupted(err error) bool  { return isCode(err, Corrupted) }
func IsClosed(err error) bool     { return isCode(err, Closed) }

func isCode(err error, code int) bool {
	if cerr, ok := err.(Error); ok && cerr.Code == code {
		return true
	}
	return false
}

// errWrap is used by Panic and Recover to ensure that only errors raised by
// Panic are recovered by Recover.
type errWrap struct{ e *error }

// Recover recovers from a panic raised by Panic and stores the error in err.
// Any other panic, including runtime errors, is re-raised.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case errWrap:
		*err = *ex.e
	case runtime.Error:
		panic(ex)
	default:
		panic(ex)
	}
}

// Panic panics with err wrapped so that Recover can extract it.
func Panic(err error) {
	panic(errWrap{&err})
}
