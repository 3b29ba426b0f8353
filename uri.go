// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

import (
	"strings"
	"unicode/utf8"
)

// normalizeURI percent-encodes s for use as an href or src attribute
// value: percent-triples already present are uppercased and preserved,
// ASCII letters, digits and the characters ;/?:@&=+$,-_.!~*'()# are preserved,
// surrogate pairs encode the full code point, and everything else is
// percent-encoded.
func normalizeURI(s string) string {
	const safeSet = `;/?:@&=+$,-_.!~*'()#`

	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]):
			b.WriteByte('%')
			b.WriteByte(toUpperHex(s[i+1]))
			b.WriteByte(toUpperHex(s[i+2]))
			i += 3
		case c < 0x80 && (isASCIIAlnum(c) || strings.IndexByte(safeSet, c) >= 0):
			b.WriteByte(c)
			i++
		case c < 0x80:
			percentEncodeByte(&b, c)
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			for _, bb := range buf[:n] {
				percentEncodeByte(&b, bb)
			}
			i += size
		}
	}
	return b.String()
}

func percentEncodeByte(b *strings.Builder, c byte) {
	const hex = "0123456789ABCDEF"
	b.WriteByte('%')
	b.WriteByte(hex[c>>4])
	b.WriteByte(hex[c&0x0f])
}

func toUpperHex(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - ('a' - 'A')
	}
	return c
}
