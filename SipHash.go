/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package siphash implements SipHash, a family of keyed pseudorandom
// functions designed by Jean-Philippe Aumasson and Daniel J. Bernstein
// to resist hash-flooding denial-of-service attacks while remaining fast
// enough for hash-table seeding and short-message authentication.
// See https://131002.net/siphash/
//
// The package exposes one-shot functions (Hash, HashRounds, HashHex),
// a Hasher caching an initialized key state for repeated use, and the
// low level State operations. Two interchangeable backends compute the
// digest: a native path using direct 64 bit loads and a portable path
// decoding one byte at a time. The backend is selected once at package
// initialization and never per call.
package siphash

import (
	"fmt"
)

const (
	ERR_INVALID_KEY    = 1
	ERR_INVALID_ROUNDS = 2
	ERR_MISSING_PARAM  = 3
	ERR_OPEN_FILE      = 4
	ERR_READ_FILE      = 5
	ERR_UNKNOWN        = 127
)

// HashError an extended error containing a message and a code value
type HashError struct {
	msg  string
	code int
}

// Error returns the underlying error
func (this HashError) Error() string {
	return fmt.Sprintf("%v (code %v)", this.msg, this.code)
}

// Message returns the message string associated with the error
func (this HashError) Message() string {
	return this.msg
}

// ErrorCode returns the code value associated with the error
func (this HashError) ErrorCode() int {
	return this.code
}

// Backend computes a keyed 64 bit digest from an initialized state.
// Both implementations (native and portable) are interchangeable black
// boxes: identical inputs yield identical outputs. The rounds c and d
// must be validated by the caller.
type Backend interface {
	// Compute consumes the whole message from the given initialized
	// state and returns the 64 bit digest.
	Compute(s State, message []byte, c, d int) uint64

	// Name returns a short identifier for diagnostics
	Name() string
}
