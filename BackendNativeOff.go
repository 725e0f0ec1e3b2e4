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

//go:build !(386 || amd64 || arm64 || ppc64le || riscv64 || wasm) || purego

package siphash

// The native backend needs little endian 64 bit loads; on other targets
// (or with the purego tag) the selector silently falls back to the
// portable backend. This is never surfaced to callers as an error.

const nativeAvailable = false

func newNativeBackend() Backend {
	return nil
}
