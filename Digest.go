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

package siphash

import (
	"fmt"
)

const (
	_DEFAULT_ROUNDS_C = 2
	_DEFAULT_ROUNDS_D = 4
)

// Hash computes the SipHash-2-4 digest of the message under the given
// 16 byte key.
func Hash(key, message []byte) (uint64, error) {
	return HashRounds(key, message, _DEFAULT_ROUNDS_C, _DEFAULT_ROUNDS_D)
}

// HashRounds computes the SipHash-c-d digest of the message under the
// given 16 byte key. Both round counts must be at least 1: skipping
// compression entirely would defeat the security property, so zero or
// negative values are rejected rather than ignored.
func HashRounds(key, message []byte, c, d int) (uint64, error) {
	if err := checkRounds(c, d); err != nil {
		return 0, err
	}

	s, err := InitializeState(key)

	if err != nil {
		return 0, err
	}

	return activeBackend.Compute(s, message, c, d), nil
}

// HashHex computes the SipHash-2-4 digest and renders it as hexadecimal
// text. The options only affect the text, never the digest value.
func HashHex(key, message []byte, opts HexOptions) (string, error) {
	digest, err := Hash(key, message)

	if err != nil {
		return "", err
	}

	return FormatHex(digest, opts), nil
}

// MustHash is like Hash but panics on invalid input. It is meant for
// callers that guarantee correctness upstream; the validation and
// computation are identical to Hash.
func MustHash(key, message []byte) uint64 {
	return MustHashRounds(key, message, _DEFAULT_ROUNDS_C, _DEFAULT_ROUNDS_D)
}

// MustHashRounds is like HashRounds but panics on invalid input
func MustHashRounds(key, message []byte, c, d int) uint64 {
	digest, err := HashRounds(key, message, c, d)

	if err != nil {
		panic(err)
	}

	return digest
}

// Hasher caches the digest state derived from one key so that many
// messages can be hashed without re-deriving k0/k1 and the initial XOR
// with the magic constants. Results are bit identical to one-shot calls
// with the same key and rounds. A Hasher is read-only after creation
// and safe for concurrent use.
type Hasher struct {
	state State
	c     int
	d     int
}

// NewHasher creates a SipHash-2-4 Hasher from a 16 byte key
func NewHasher(key []byte) (*Hasher, error) {
	return NewHasherWithRounds(key, _DEFAULT_ROUNDS_C, _DEFAULT_ROUNDS_D)
}

// NewHasherWithRounds creates a SipHash-c-d Hasher from a 16 byte key
func NewHasherWithRounds(key []byte, c, d int) (*Hasher, error) {
	if err := checkRounds(c, d); err != nil {
		return nil, err
	}

	s, err := InitializeState(key)

	if err != nil {
		return nil, err
	}

	return &Hasher{state: s, c: c, d: d}, nil
}

// Hash computes the digest of the message under the cached key state
func (this *Hasher) Hash(message []byte) uint64 {
	return activeBackend.Compute(this.state, message, this.c, this.d)
}

// HashHex computes the digest and renders it as hexadecimal text
func (this *Hasher) HashHex(message []byte, opts HexOptions) string {
	return FormatHex(this.Hash(message), opts)
}

// Rounds returns the compression and finalization round counts
func (this *Hasher) Rounds() (int, int) {
	return this.c, this.d
}

func checkRounds(c, d int) error {
	if c <= 0 || d <= 0 {
		msg := fmt.Sprintf("Invalid rounds configuration: c=%d, d=%d, both must be at least 1", c, d)
		return &HashError{msg: msg, code: ERR_INVALID_ROUNDS}
	}

	return nil
}
