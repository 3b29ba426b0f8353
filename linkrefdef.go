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

// scanLeadingLinkRefDef attempts to parse a single link reference
// definition from the start of s ("flushing a paragraph
// repeatedly strips leading link reference definitions"). It returns the
// normalized label, the parsed definition, and the byte count consumed
// (including the trailing newline, if any).
func scanLeadingLinkRefDef(s string) (label string, def LinkDefinition, consumed int, ok bool) {
	i := 0
	for i < len(s) && i < 3 && s[i] == ' ' {
		i++
	}
	if i >= len(s) || s[i] != '[' {
		return "", LinkDefinition{}, 0, false
	}
	rawLabel, end, ok2 := scanBlockLabel(s, i)
	if !ok2 {
		return "", LinkDefinition{}, 0, false
	}
	i = end
	if i >= len(s) || s[i] != ':' {
		return "", LinkDefinition{}, 0, false
	}
	i++
	i = skipLinkWhitespace(s, i)
	dest, dend, ok3 := scanBareDestination(s, i)
	if !ok3 {
		return "", LinkDefinition{}, 0, false
	}
	i = dend

	var title string
	var titleSet bool
	afterDest := i
	titleStart := skipLinkWhitespace(s, i)
	if titleStart > afterDest && titleStart < len(s) && isTitleQuote(s[titleStart]) {
		if t, tend, ok4 := scanBlockTitle(s, titleStart); ok4 && restOfLineBlank(s, tend) {
			title, titleSet = t, true
			i = tend
		}
	}

	i = consumeBlankLineRemainder(s, i)
	if i < 0 {
		return "", LinkDefinition{}, 0, false
	}
	return normalizeLabel(rawLabel), LinkDefinition{Destination: dest, Title: title, TitlePresent: titleSet}, i, true
}

func isTitleQuote(c byte) bool {
	return c == '"' || c == '\'' || c == '('
}

// scanBlockLabel parses "[...]" allowing embedded newlines but not a
// fully blank line, per the CommonMark link-label grammar.
func scanBlockLabel(s string, i int) (label string, end int, ok bool) {
	j := i + 1
	start := j
	blankRun := 0
	for j < len(s) {
		switch {
		case s[j] == '\\' && j+1 < len(s) && isASCIIPunct(s[j+1]):
			j += 2
			blankRun = 0
		case s[j] == '[':
			return "", 0, false
		case s[j] == ']':
			if j == start {
				return "", 0, false
			}
			return s[start:j], j + 1, true
		case s[j] == '\n':
			blankRun++
			if blankRun > 1 {
				return "", 0, false
			}
			j++
		case s[j] == ' ' || s[j] == '\t':
			j++
		default:
			blankRun = 0
			j++
		}
	}
	return "", 0, false
}

func skipLinkWhitespace(s string, i int) int {
	j := i
	newlines := 0
	for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n') {
		if s[j] == '\n' {
			newlines++
			if newlines > 1 {
				break
			}
		}
		j++
	}
	return j
}

// scanBareDestination scans a link destination (the grammar for
// reused at the block level): either an angle-bracketed form or a bare
// token with balanced parens and no unescaped whitespace.
func scanBareDestination(s string, i int) (dest string, end int, ok bool) {
	if i < len(s) && s[i] == '<' {
		k := i + 1
		for k < len(s) {
			switch {
			case s[k] == '\\' && k+1 < len(s):
				k += 2
			case s[k] == '<' || s[k] == '\n':
				return "", 0, false
			case s[k] == '>':
				return decodeEntitiesAndEscapes(s[i+1 : k]), k + 1, true
			default:
				k++
			}
		}
		return "", 0, false
	}
	j := i
	depth := 0
	for j < len(s) {
		c := s[j]
		switch {
		case c == '\\' && j+1 < len(s) && isASCIIPunct(s[j+1]):
			j += 2
		case c == '(':
			depth++
			j++
		case c == ')':
			if depth == 0 {
				return decodeEntitiesAndEscapes(s[i:j]), j, true
			}
			depth--
			j++
		case c <= 0x20:
			return decodeEntitiesAndEscapes(s[i:j]), j, true
		default:
			j++
		}
	}
	if j == i {
		return "", 0, false
	}
	return decodeEntitiesAndEscapes(s[i:j]), j, true
}

// scanBlockTitle scans a quoted title ("...", '...', or (...)), allowing
// embedded newlines, starting at s[i].
func scanBlockTitle(s string, i int) (title string, end int, ok bool) {
	quote := s[i]
	closing := quote
	if quote == '(' {
		closing = ')'
	}
	j := i + 1
	for j < len(s) {
		if s[j] == '\\' && j+1 < len(s) {
			j += 2
			continue
		}
		if s[j] == closing {
			return decodeEntitiesAndEscapes(s[i+1 : j]), j + 1, true
		}
		j++
	}
	return "", 0, false
}

func restOfLineBlank(s string, i int) bool {
	j := i
	for j < len(s) && s[j] != '\n' {
		if s[j] != ' ' && s[j] != '\t' {
			return false
		}
		j++
	}
	return true
}

// consumeBlankLineRemainder requires that s[i:] up to and including the
// next newline (or EOF) is blank, returning the offset past it, or -1.
func consumeBlankLineRemainder(s string, i int) int {
	j := i
	for j < len(s) && s[j] != '\n' {
		if s[j] != ' ' && s[j] != '\t' {
			return -1
		}
		j++
	}
	if j < len(s) {
		j++
	}
	return j
}
