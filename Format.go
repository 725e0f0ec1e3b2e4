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
	"strconv"
	"strings"
)

const _HEX_WIDTH = 16

// HexCase selects the letter case of hexadecimal output
type HexCase int

const (
	// HexUpper renders A..F (the default)
	HexUpper HexCase = iota

	// HexLower renders a..f
	HexLower
)

// HexOptions controls the hexadecimal rendering of a digest. The zero
// value is the canonical contract: upper case, left zero padded to 16
// characters.
type HexOptions struct {
	Case      HexCase
	NoPadding bool
}

// FormatHex renders a 64 bit digest as hexadecimal text. Rendering
// never alters the digest value.
func FormatHex(digest uint64, opts HexOptions) string {
	s := strconv.FormatUint(digest, 16)

	if opts.NoPadding == false && len(s) < _HEX_WIDTH {
		s = strings.Repeat("0", _HEX_WIDTH-len(s)) + s
	}

	if opts.Case == HexUpper {
		return strings.ToUpper(s)
	}

	return s
}
