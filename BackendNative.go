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

//go:build (386 || amd64 || arm64 || ppc64le || riscv64 || wasm) && !purego

package siphash

import (
	"unsafe"
)

// Native fast path for little endian targets: message blocks are read
// with direct 64 bit loads (uses unsafe package) and the round loop runs
// on locals instead of State values. Must stay bit identical to the
// portable backend for all inputs.

const nativeAvailable = true

type nativeBackend struct {
}

func newNativeBackend() Backend {
	return &nativeBackend{}
}

func (this *nativeBackend) Name() string {
	return "native"
}

func (this *nativeBackend) Compute(s State, message []byte, c, d int) uint64 {
	v0, v1, v2, v3 := s.v0, s.v1, s.v2, s.v3
	length := len(message)
	n := length &^ 7

	for i := 0; i < n; i += 8 {
		m := *(*uint64)(unsafe.Pointer(&message[i]))
		v3 ^= m

		for r := 0; r < c; r++ {
			v0, v1, v2, v3 = mix(v0, v1, v2, v3)
		}

		v0 ^= m
	}

	last := uint64(length&0xFF) << 56

	for i, b := range message[n:] {
		last |= uint64(b) << (8 * uint(i))
	}

	v3 ^= last

	for r := 0; r < c; r++ {
		v0, v1, v2, v3 = mix(v0, v1, v2, v3)
	}

	v0 ^= last
	v2 ^= 0xFF

	for r := 0; r < d; r++ {
		v0, v1, v2, v3 = mix(v0, v1, v2, v3)
	}

	return v0 ^ v1 ^ v2 ^ v3
}

func mix(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v1 = (v1 << 13) | (v1 >> 51)
	v1 ^= v0
	v0 = (v0 << 32) | (v0 >> 32)
	v2 += v3
	v3 = (v3 << 16) | (v3 >> 48)
	v3 ^= v2
	v0 += v3
	v3 = (v3 << 21) | (v3 >> 43)
	v3 ^= v0
	v2 += v1
	v1 = (v1 << 17) | (v1 >> 47)
	v1 ^= v2
	v2 = (v2 << 32) | (v2 >> 32)
	return v0, v1, v2, v3
}
