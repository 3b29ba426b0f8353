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

// gfmAutolinkSchemes are the literal prefixes recognized by the GFM
// extended-autolink extension, tried in this order, with "https://"
// checked before "http://".
var gfmAutolinkSchemes = []string{"https://", "http://", "ftp://", "mailto:", "xmpp:", "www."}

// scanExtendedAutolink attempts to recognize a GFM extended autolink
// starting at s[i]. prevRune is the character immediately before s[i]
// (or a space if s[i] is the start of the scope), used for the trigger-
// character check. It returns a fully formed Link node and the end
// offset of the consumed source.
func scanExtendedAutolink(s string, i int, prevRune rune) (node *Inline, end int, ok bool) {
	if prevRune == '<' {
		return nil, 0, false
	}
	if !isExtendedAutolinkTrigger(prevRune) {
		return nil, 0, false
	}

	for _, scheme := range gfmAutolinkSchemes {
		if !strings.HasPrefix(strings.ToLower(s[i:]), scheme) {
			continue
		}
		switch scheme {
		case "mailto:", "xmpp:":
			rest := s[i+len(scheme):]
			addr, n := scanExtendedEmail(rest)
			if n == 0 {
				continue
			}
			full := s[i : i+len(scheme)+n]
			link := newInline(LinkKind)
			link.Destination = scheme + addr
			link.children = []*Inline{textNode(full)}
			return link, i + len(scheme) + n, true
		case "www.":
			rest := s[i:]
			n := scanExtendedURLRest(rest, len(scheme))
			if n == 0 {
				continue
			}
			full := s[i : i+n]
			link := newInline(LinkKind)
			link.Destination = "http://" + full
			link.children = []*Inline{textNode(full)}
			return link, i + n, true
		default: // http://, https://, ftp://
			rest := s[i:]
			n := scanExtendedURLRest(rest, len(scheme))
			if n == 0 {
				continue
			}
			full := s[i : i+n]
			link := newInline(LinkKind)
			link.Destination = full
			link.children = []*Inline{textNode(full)}
			return link, i + n, true
		}
	}

	// Bare email address, not preceded by a scheme.
	if addr, n := scanBareEmail(s[i:]); n > 0 {
		link := newInline(LinkKind)
		link.Destination = "mailto:" + addr
		link.children = []*Inline{textNode(addr)}
		return link, i + n, true
	}
	return nil, 0, false
}

func isExtendedAutolinkTrigger(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '*', '_', '~', '(', '"', '\'', ':', '/':
		return true
	}
	return r == 0
}

// scanExtendedURLRest scans the domain and path of a www./http(s)/ftp
// extended autolink, given that s[:schemeLen] is the already-matched
// scheme prefix. It returns the total consumed length (including the
// scheme) or 0 if no valid domain follows.
func scanExtendedURLRest(s string, schemeLen int) int {
	rest := s[schemeLen:]
	j := 0
	for j < len(rest) && isExtendedURLChar(rest[j]) {
		j++
	}
	domainAndPath := rest[:j]
	domainEnd := len(domainAndPath)
	if slash := strings.IndexByte(domainAndPath, '/'); slash >= 0 {
		domainEnd = slash
	}
	domain := domainAndPath[:domainEnd]
	if !strings.Contains(domain, ".") {
		return 0
	}
	labels := strings.Split(domain, ".")
	if len(labels) >= 2 {
		last, secondLast := labels[len(labels)-1], labels[len(labels)-2]
		if strings.Contains(last, "_") || strings.Contains(secondLast, "_") {
			return 0
		}
	}
	n := schemeLen + j
	return trimExtendedAutolinkTrailer(s[:n])
}

// trimExtendedAutolinkTrailer strips trailing punctuation, an unbalanced
// closing paren, and a trailing HTML-entity-like ";" suffix from the
// candidate match s, returning the trimmed length.
func trimExtendedAutolinkTrailer(s string) int {
	n := len(s)
	for n > 0 {
		c := s[n-1]
		switch c {
		case '?', '!', '.', ',', ':', '*', '_', '~', '\'', '"':
			n--
			continue
		case ')':
			open := strings.Count(s[:n], "(")
			closeCount := strings.Count(s[:n], ")")
			if closeCount > open {
				n--
				continue
			}
		case ';':
			if semi := strings.LastIndexByte(s[:n-1], '&'); semi >= 0 && isEntityLike(s[semi:n]) {
				n -= n - semi
				continue
			}
		}
		break
	}
	return n
}

func isEntityLike(s string) bool {
	if len(s) < 3 || s[0] != '&' || s[len(s)-1] != ';' {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if !isASCIIAlnum(s[i]) {
			return false
		}
	}
	return true
}

func isExtendedURLChar(c byte) bool {
	return c > 0x20 && c != '<' && c != '>'
}

// scanExtendedEmail and scanBareEmail scan a domain-containing email
// address for the mailto:/xmpp: and bare-email forms of the extended
// autolink. The local part allows only ASCII letters, digits and ".+-_",
// a narrower set than [scanEmailAutolink] accepts.
func scanExtendedEmail(s string) (addr string, n int) {
	return scanBareEmail(s)
}

func scanBareEmail(s string) (addr string, n int) {
	j := 0
	for j < len(s) && isEmailAutolinkLocalChar(s[j]) {
		j++
	}
	if j == 0 || j >= len(s) || s[j] != '@' {
		return "", 0
	}
	j++
	domainStart := j
	for j < len(s) && (isASCIIAlnum(s[j]) || s[j] == '.' || s[j] == '-') {
		j++
	}
	domain := s[domainStart:j]
	if !strings.Contains(domain, ".") {
		return "", 0
	}
	for len(domain) > 0 && (domain[len(domain)-1] == '.' || domain[len(domain)-1] == '-') {
		domain = domain[:len(domain)-1]
		j--
	}
	if domain == "" {
		return "", 0
	}
	return s[:j], j
}

func isEmailAutolinkLocalChar(c byte) bool {
	return isASCIIAlnum(c) || strings.IndexByte(".+-_", c) >= 0
}
