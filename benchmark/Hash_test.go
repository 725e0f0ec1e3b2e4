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

package benchmark

import (
	"fmt"
	"testing"

	siphash "github.com/flanglet/siphash-go"
)

var benchKey = []byte("0123456789ABCDEF")

func BenchmarkSipHash24(b *testing.B) {
	buffer := make([]byte, 1024*1024)

	for i := range buffer {
		buffer[i] = byte(i * i)
	}

	hasher, err := siphash.NewHasher(benchKey)

	if err != nil {
		msg := fmt.Sprintf("Failed to create Hasher: %v\n", err)
		b.Errorf(msg)
	}

	iter := b.N

	for i := 0; i < iter; i++ {
		hasher.Hash(buffer)
	}
}

func BenchmarkSipHash24Small(b *testing.B) {
	buffer := make([]byte, 64)

	for i := range buffer {
		buffer[i] = byte(i * i)
	}

	hasher, err := siphash.NewHasher(benchKey)

	if err != nil {
		msg := fmt.Sprintf("Failed to create Hasher: %v\n", err)
		b.Errorf(msg)
	}

	iter := b.N

	for i := 0; i < iter; i++ {
		hasher.Hash(buffer)
	}
}

func BenchmarkSipHash48(b *testing.B) {
	buffer := make([]byte, 1024*1024)

	for i := range buffer {
		buffer[i] = byte(i * i)
	}

	hasher, err := siphash.NewHasherWithRounds(benchKey, 4, 8)

	if err != nil {
		msg := fmt.Sprintf("Failed to create Hasher: %v\n", err)
		b.Errorf(msg)
	}

	iter := b.N

	for i := 0; i < iter; i++ {
		hasher.Hash(buffer)
	}
}
