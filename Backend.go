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
	"os"
)

// The backend is chosen once when the package loads and is read-only
// afterwards, so concurrent callers need no synchronization. Setting the
// environment variable SIPHASH_IMPL=portable before the process starts
// forces the portable path; otherwise the native path is used whenever
// the build supports it.

const _ENV_IMPL = "SIPHASH_IMPL"

var (
	activeBackend Backend
	nativeActive  bool
)

func init() {
	selectBackend(os.Getenv(_ENV_IMPL))
}

func selectBackend(impl string) {
	if impl != "portable" && nativeAvailable {
		activeBackend = newNativeBackend()
		nativeActive = true
		return
	}

	activeBackend = &portableBackend{}
	nativeActive = false
}

// IsNativeBackendActive reports whether the native backend was selected
// at initialization. Diagnostics only: the active backend never changes
// the API surface or the digest values.
func IsNativeBackendActive() bool {
	return nativeActive
}

// ActiveBackendName returns the name of the selected backend
func ActiveBackendName() string {
	return activeBackend.Name()
}

// portableBackend decodes the message one byte at a time through the
// State operations. It is correct on any architecture and endianness
// and serves as the fallback when the native path is unavailable.
type portableBackend struct {
}

func (this *portableBackend) Name() string {
	return "portable"
}

func (this *portableBackend) Compute(s State, message []byte, c, d int) uint64 {
	blocks, tail := splitBlocks(message)

	for i := 0; i < len(blocks); i += 8 {
		s = s.ApplyBlock(u8tou64LE(blocks[i:i+8]), c)
	}

	s = s.ApplyLastBlock(tail, len(message), c)
	return s.Finalize(d)
}
