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

import "strings"

// scanAngleBracket attempts to parse the `<...>` construct at s[i] (s[i]
// must be '<'): a URI autolink, an email autolink, or raw inline HTML
//. It returns the node to emit and the end offset just
// past the closing '>', or ok=false if nothing matched.
func scanAngleBracket(s string, i int) (node *Inline, end int, ok bool) {
	if i >= len(s) || s[i] != '<' {
		return nil, 0, false
	}
	if dest, e, ok := scanURIAutolink(s, i); ok {
		n := newInline(AutolinkKind)
		n.Destination = dest
		n.children = []*Inline{textNode(dest)}
		return n, e, true
	}
	if addr, e, ok := scanEmailAutolink(s, i); ok {
		n := newInline(AutolinkKind)
		n.Destination = "mailto:" + addr
		n.children = []*Inline{textNode(addr)}
		return n, e, true
	}
	if e, ok := scanHTMLTag(s, i); ok {
		n := newInline(HTMLInlineKind)
		n.Literal = s[i:e]
		return n, e, true
	}
	return nil, 0, false
}

// scanURIAutolink matches <scheme:...> where scheme is 2-32 characters
// matching [A-Za-z][A-Za-z0-9+.-]* and the rest contains no ASCII
// control characters, space, or '<'/'>'.
func scanURIAutolink(s string, i int) (dest string, end int, ok bool) {
	j := i + 1
	if j >= len(s) || !isASCIILetter(s[j]) {
		return "", 0, false
	}
	start := j
	j++
	for j < len(s) && (isASCIIAlnum(s[j]) || s[j] == '+' || s[j] == '.' || s[j] == '-') {
		j++
	}
	schemeLen := j - start
	if schemeLen < 2 || schemeLen > 32 || j >= len(s) || s[j] != ':' {
		return "", 0, false
	}
	j++
	contentStart := j
	for j < len(s) {
		c := s[j]
		if c == '>' {
			return s[i+1 : j], j + 1, true
		}
		if c <= 0x20 || c == 0x7f || c == '<' {
			return "", 0, false
		}
		j++
	}
	_ = contentStart
	return "", 0, false
}

// scanEmailAutolink matches <addr> where addr is a restricted subset of
// RFC 5322 addr-spec.
func scanEmailAutolink(s string, i int) (addr string, end int, ok bool) {
	j := i + 1
	start := j
	for j < len(s) && isEmailLocalChar(s[j]) {
		j++
	}
	if j == start || j >= len(s) || s[j] != '@' {
		return "", 0, false
	}
	j++
	labelStart := j
	sawLabel := false
	for {
		ls := j
		for j < len(s) && isASCIIAlnum(s[j]) {
			j++
		}
		if j == ls {
			return "", 0, false
		}
		// Optional run of hyphens/alnum, never ending in a hyphen.
		for j < len(s) && (isASCIIAlnum(s[j]) || s[j] == '-') {
			j++
		}
		if s[j-1] == '-' {
			return "", 0, false
		}
		sawLabel = true
		if j < len(s) && s[j] == '.' {
			j++
			continue
		}
		break
	}
	if !sawLabel || j >= len(s) || s[j] != '>' {
		return "", 0, false
	}
	_ = labelStart
	return s[i+1 : j], j + 1, true
}

func isEmailLocalChar(c byte) bool {
	if isASCIIAlnum(c) {
		return true
	}
	return strings.IndexByte(".!#$%&'*+/=?^_`{|}~-", c) >= 0
}

// scanHTMLTag matches an open tag, closing tag, HTML comment, processing
// instruction, CDATA section, or declaration starting at s[i],
// returning the end offset just past the closing '>'.
func scanHTMLTag(s string, i int) (end int, ok bool) {
	j := i + 1
	if j >= len(s) {
		return 0, false
	}
	switch {
	case s[j] == '?':
		if k := strings.Index(s[j:], "?>"); k >= 0 {
			return j + k + 2, true
		}
		return 0, false
	case s[j] == '!' && j+1 < len(s) && s[j+1] == '-' && j+2 < len(s) && s[j+2] == '-':
		rest := s[j+3:]
		if strings.HasPrefix(rest, ">") || strings.HasPrefix(rest, "->") {
			return 0, false
		}
		if k := strings.Index(rest, "-->"); k >= 0 {
			if strings.Contains(rest[:k], "--") {
				return 0, false
			}
			return j + 3 + k + 3, true
		}
		return 0, false
	case s[j] == '!' && strings.HasPrefix(s[j:], "![CDATA["):
		if k := strings.Index(s[j+8:], "]]>"); k >= 0 {
			return j + 8 + k + 3, true
		}
		return 0, false
	case s[j] == '!' && j+1 < len(s) && isASCIILetter(s[j+1]):
		if k := strings.IndexByte(s[j:], '>'); k >= 0 {
			return j + k + 1, true
		}
		return 0, false
	case s[j] == '/':
		return scanHTMLClosingTag(s, j+1)
	default:
		return scanHTMLOpenTag(s, j)
	}
}

func scanHTMLOpenTag(s string, i int) (end int, ok bool) {
	j, ok := scanHTMLTagName(s, i)
	if !ok {
		return 0, false
	}
	for {
		before := j
		k, matched := scanHTMLAttribute(s, j)
		if matched {
			j = k
		}
		if j == before {
			break
		}
	}
	j = skipSpaceTabNewline(s, j)
	if strings.HasPrefix(s[j:], "/>") {
		return j + 2, true
	}
	if j < len(s) && s[j] == '>' {
		return j + 1, true
	}
	return 0, false
}

func scanHTMLClosingTag(s string, i int) (end int, ok bool) {
	j, ok := scanHTMLTagName(s, i)
	if !ok {
		return 0, false
	}
	j = skipSpaceTabNewline(s, j)
	if j < len(s) && s[j] == '>' {
		return j + 1, true
	}
	return 0, false
}

func scanHTMLTagName(s string, i int) (end int, ok bool) {
	if i >= len(s) || !isASCIILetter(s[i]) {
		return 0, false
	}
	j := i + 1
	for j < len(s) && (isASCIIAlnum(s[j]) || s[j] == '-') {
		j++
	}
	return j, true
}

func scanHTMLAttribute(s string, i int) (end int, ok bool) {
	n := skipSpaceTabNewline(s, i)
	if n == i {
		return i, false
	}
	j := n
	if j >= len(s) || !(isASCIILetter(s[j]) || s[j] == '_' || s[j] == ':') {
		return i, false
	}
	j++
	for j < len(s) && (isASCIIAlnum(s[j]) || strings.IndexByte("_.:-", s[j]) >= 0) {
		j++
	}
	afterName := j
	k := skipSpaceTabNewline(s, j)
	if k >= len(s) || s[k] != '=' {
		return afterName, true
	}
	k = skipSpaceTabNewline(s, k+1)
	if k >= len(s) {
		return i, false
	}
	switch s[k] {
	case '\'':
		end := strings.IndexByte(s[k+1:], '\'')
		if end < 0 {
			return i, false
		}
		return k + 1 + end + 1, true
	case '"':
		end := strings.IndexByte(s[k+1:], '"')
		if end < 0 {
			return i, false
		}
		return k + 1 + end + 1, true
	default:
		start := k
		for k < len(s) && isUnquotedAttributeValueChar(s[k]) {
			k++
		}
		if k == start {
			return i, false
		}
		return k, true
	}
}

func isUnquotedAttributeValueChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '"', '\'', '=', '<', '>', '`':
		return false
	}
	return true
}

func skipSpaceTabNewline(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}
