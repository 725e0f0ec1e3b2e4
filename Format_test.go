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
	"testing"
)

func TestFormatHex(t *testing.T) {
	cases := []struct {
		digest   uint64
		opts     HexOptions
		expected string
	}{
		{0x3D1974E948748CE2, HexOptions{}, "3D1974E948748CE2"},
		{0x3D1974E948748CE2, HexOptions{Case: HexLower}, "3d1974e948748ce2"},
		{0xABC, HexOptions{}, "0000000000000ABC"},
		{0xABC, HexOptions{NoPadding: true}, "ABC"},
		{0xABC, HexOptions{Case: HexLower, NoPadding: true}, "abc"},
		{0, HexOptions{}, "0000000000000000"},
		{0, HexOptions{NoPadding: true}, "0"},
	}

	for _, tc := range cases {
		if text := FormatHex(tc.digest, tc.opts); text != tc.expected {
			t.Errorf("Invalid rendering of %016x with %+v: got %s, expected %s", tc.digest, tc.opts, text, tc.expected)
		}
	}
}
