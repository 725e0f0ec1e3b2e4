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
	"encoding/binary"
	"math/rand"
	"testing"

	dsiphash "github.com/dchest/siphash"
)

func TestBackendSelection(t *testing.T) {
	if activeBackend == nil {
		t.Fatalf("No backend selected at initialization")
	}

	if IsNativeBackendActive() != (ActiveBackendName() == "native") {
		t.Errorf("Backend diagnostics are inconsistent: active=%v name=%s", IsNativeBackendActive(), ActiveBackendName())
	}

	// Forcing the portable implementation must always succeed
	selectBackend("portable")

	if IsNativeBackendActive() == true || ActiveBackendName() != "portable" {
		t.Errorf("SIPHASH_IMPL=portable must select the portable backend")
	}

	selectBackend("")

	if nativeAvailable == true && IsNativeBackendActive() == false {
		t.Errorf("The native backend must be selected when the build supports it")
	}

	if nativeAvailable == false && IsNativeBackendActive() == true {
		t.Errorf("The native backend cannot be active when the build does not support it")
	}
}

func TestBackendsAreInterchangeable(t *testing.T) {
	if nativeAvailable == false {
		t.Skip("Native backend not available in this build")
	}

	native := newNativeBackend()
	portable := &portableBackend{}
	s, err := InitializeState(testKey)

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	r := rand.New(rand.NewSource(7))

	for _, rounds := range [][2]int{{2, 4}, {1, 3}, {4, 8}} {
		c, d := rounds[0], rounds[1]

		for length := 0; length <= 130; length++ {
			message := make([]byte, length)

			for i := range message {
				message[i] = byte(r.Intn(256))
			}

			n := native.Compute(s, message, c, d)
			p := portable.Compute(s, message, c, d)

			if n != p {
				t.Fatalf("Backends diverge for a %d byte message with c=%d d=%d: native=%016x portable=%016x",
					length, c, d, n, p)
			}
		}
	}
}

// The 2-4 digest is cross checked against an independent implementation
func TestAgainstReferenceImplementation(t *testing.T) {
	k0 := binary.LittleEndian.Uint64(testKey[0:8])
	k1 := binary.LittleEndian.Uint64(testKey[8:16])
	r := rand.New(rand.NewSource(42))

	for length := 0; length <= 200; length++ {
		message := make([]byte, length)

		for i := range message {
			message[i] = byte(r.Intn(256))
		}

		expected := dsiphash.Hash(k0, k1, message)
		digest, err := Hash(testKey, message)

		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if digest != expected {
			t.Fatalf("Digest differs from the reference implementation for a %d byte message: %016x != %016x",
				length, digest, expected)
		}
	}
}
