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

// splitBlocks splits a message into its full 8 byte blocks and the
// trailing 0..7 tail bytes. Both results are subslices of the message,
// in original order. The tail is empty (never nil padded) when the
// message length is a multiple of 8; the length byte handling for that
// case belongs to State.ApplyLastBlock.
func splitBlocks(message []byte) (blocks, tail []byte) {
	n := len(message) &^ 7
	return message[:n], message[n:]
}
