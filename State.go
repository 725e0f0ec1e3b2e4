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
	"math/bits"
)

const (
	_SIPHASH_PRIME0 = uint64(0x736f6d6570736575)
	_SIPHASH_PRIME1 = uint64(0x646f72616e646f6d)
	_SIPHASH_PRIME2 = uint64(0x6c7967656e657261)
	_SIPHASH_PRIME3 = uint64(0x7465646279746573)

	_KEY_LENGTH = 16
)

// State is the 4 word SipHash digest state. It is a value type: every
// operation returns a new State and never mutates the receiver, so an
// initialized State may be shared read-only across goroutines and reused
// for any number of messages keyed alike.
type State struct {
	v0 uint64
	v1 uint64
	v2 uint64
	v3 uint64
}

// InitializeState derives the initial digest state from a 16 byte key.
// The key bytes are only read during this call; the returned State holds
// no reference to them.
func InitializeState(key []byte) (State, error) {
	if len(key) != _KEY_LENGTH {
		msg := fmt.Sprintf("Invalid key length: %d bytes, must be exactly %d", len(key), _KEY_LENGTH)
		return State{}, &HashError{msg: msg, code: ERR_INVALID_KEY}
	}

	k0 := u8tou64LE(key[0:8])
	k1 := u8tou64LE(key[8:16])

	return State{
		v0: _SIPHASH_PRIME0 ^ k0,
		v1: _SIPHASH_PRIME1 ^ k1,
		v2: _SIPHASH_PRIME2 ^ k0,
		v3: _SIPHASH_PRIME3 ^ k1,
	}, nil
}

// Compress applies one SipRound. The 12 step order is load bearing:
// reordering any step changes the output entirely.
func (this State) Compress() State {
	v0, v1, v2, v3 := this.v0, this.v1, this.v2, this.v3

	v0 += v1
	v2 += v3
	v1 = rotl64(v1, 13)
	v3 = rotl64(v3, 16)
	v1 ^= v0
	v3 ^= v2
	v0 = rotl64(v0, 32)
	v2 += v1
	v0 += v3
	v1 = rotl64(v1, 17)
	v3 = rotl64(v3, 21)
	v1 ^= v2
	v3 ^= v0
	v2 = rotl64(v2, 32)

	return State{v0: v0, v1: v1, v2: v2, v3: v3}
}

// CompressN applies Compress exactly n times. n may be 0, in which case
// the state is returned unchanged.
func (this State) CompressN(n int) State {
	s := this

	for i := 0; i < n; i++ {
		s = s.Compress()
	}

	return s
}

// ApplyBlock folds one 8 byte message block (already decoded as a little
// endian word) into the state with c compression rounds.
func (this State) ApplyBlock(m uint64, c int) State {
	s := this
	s.v3 ^= m
	s = s.CompressN(c)
	s.v0 ^= m
	return s
}

// ApplyLastBlock folds the trailing 0..7 message bytes into the state.
// The tail is zero padded to 7 bytes and tagged with the low byte of the
// original message length as the most significant byte. The length byte
// is mandatory even when the tail is empty.
func (this State) ApplyLastBlock(tail []byte, length int, c int) State {
	m := uint64(length&0xFF) << 56

	for i, b := range tail {
		m |= uint64(b) << (8 * uint(i))
	}

	return this.ApplyBlock(m, c)
}

// Finalize runs d finalization rounds and collapses the state into the
// 64 bit digest.
func (this State) Finalize(d int) uint64 {
	s := this
	s.v2 ^= 0xFF
	s = s.CompressN(d)
	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

func rotl64(x uint64, s int) uint64 {
	return bits.RotateLeft64(x, s)
}

// u8tou64LE decodes 8 bytes as a little endian word one byte at a time,
// independent of host endianness.
func u8tou64LE(p []byte) uint64 {
	return uint64(p[0]) | uint64(p[1])<<8 | uint64(p[2])<<16 | uint64(p[3])<<24 |
		uint64(p[4])<<32 | uint64(p[5])<<40 | uint64(p[6])<<48 | uint64(p[7])<<56
}
