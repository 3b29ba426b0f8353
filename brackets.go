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

// closeBracket handles a ']' at p.s[i]: it pops the innermost bracket and
// attempts, in order, an inline link/image, a full reference, a collapsed
// reference, and a shortcut reference. On success it
// splices the interior into a Link or Image node and returns the offset
// just past the construct that was consumed.
func (p *inlineParser) closeBracket(i int) (next int, ok bool) {
	if len(p.brackets) == 0 {
		return 0, false
	}
	be := p.brackets[len(p.brackets)-1]
	p.brackets = p.brackets[:len(p.brackets)-1]
	if !be.active {
		return 0, false
	}

	s := p.s
	afterBracket := i + 1
	var dest, title string
	var titleSet bool
	var consumedEnd int
	matched := false
	triedSecondBracket := false

	if afterBracket < len(s) && s[afterBracket] == '(' {
		if d, t, ts, end, ok := scanLinkDestinationTitle(s, afterBracket); ok {
			dest, title, titleSet, consumedEnd = d, t, ts, end
			matched = true
		}
	}
	if !matched && afterBracket < len(s) && s[afterBracket] == '[' {
		triedSecondBracket = true
		if label, end, ok := scanLinkLabelBracket(s, afterBracket); ok {
			if label != "" {
				key := normalizeLabel(label)
				if def, ok := p.refs[key]; ok {
					dest, title, titleSet = def.Destination, def.Title, def.TitlePresent
					consumedEnd = end
					matched = true
				}
			} else {
				key := normalizeLabel(s[be.textStart:i])
				if def, ok := p.refs[key]; ok {
					dest, title, titleSet = def.Destination, def.Title, def.TitlePresent
					consumedEnd = end
					matched = true
				}
			}
		}
	}
	if !matched && !triedSecondBracket {
		key := normalizeLabel(s[be.textStart:i])
		if def, ok := p.refs[key]; ok {
			dest, title, titleSet = def.Destination, def.Title, def.TitlePresent
			consumedEnd = afterBracket
			matched = true
		}
	}
	if !matched {
		return 0, false
	}

	// Resolve emphasis/strikethrough once, scoped to this bracket's
	// interior, then discard its delimiters: they can never participate
	// in resolution outside the now-closed bracket.
	var innerEm, innerTilde []*delimRun
	for _, d := range p.delims[be.delimBase:] {
		if d.char == '~' {
			innerTilde = append(innerTilde, d)
		} else {
			innerEm = append(innerEm, d)
		}
	}
	p.nodes = resolveEmphasis(p.nodes, innerEm)
	if p.exts.has(ExtStrikethrough) {
		p.nodes = resolveStrikethrough(p.nodes, innerTilde)
	}
	p.delims = p.delims[:be.delimBase]

	children := make([]*Inline, 0, len(p.nodes)-be.nodeIndex-1)
	for _, c := range p.nodes[be.nodeIndex+1:] {
		if c.InlineKind() == TextKind && c.Literal == "" {
			continue
		}
		children = append(children, c)
	}

	var wrapper *Inline
	if be.isImage {
		wrapper = newInline(ImageKind)
		wrapper.Alt = flattenAltText(children)
	} else {
		wrapper = newInline(LinkKind)
	}
	wrapper.Destination = dest
	wrapper.Title = title
	wrapper.TitleSet = titleSet
	wrapper.children = children

	p.nodes = append(p.nodes[:be.nodeIndex], wrapper)

	if !be.isImage {
		for _, b := range p.brackets {
			if !b.isImage {
				b.active = false
			}
		}
	}

	return consumedEnd, true
}

// flattenAltText flattens nodes to plain text for an image's alt
// attribute: code spans contribute their literal,
// nested images contribute their own alt, breaks contribute a space.
func flattenAltText(nodes []*Inline) string {
	var b strings.Builder
	var walk func([]*Inline)
	walk = func(ns []*Inline) {
		for _, n := range ns {
			switch n.InlineKind() {
			case TextKind, CodeSpanKind, HTMLInlineKind:
				b.WriteString(n.Literal)
			case SoftBreakKind, HardBreakKind:
				b.WriteByte(' ')
			case ImageKind:
				b.WriteString(n.Alt)
			default:
				walk(n.Children())
			}
		}
	}
	walk(nodes)
	return b.String()
}

// scanLinkDestinationTitle parses the "(dest title)" construct of an
// inline link or image starting at s[i] (s[i] must be '('), per
// CommonMark's inline-link grammar.
func scanLinkDestinationTitle(s string, i int) (dest, title string, titleSet bool, end int, ok bool) {
	j := skipSpaceTabNewline(s, i+1)

	var rawDest string
	if j < len(s) && s[j] == '<' {
		k := j + 1
		for k < len(s) {
			switch {
			case s[k] == '\\' && k+1 < len(s):
				k += 2
			case s[k] == '<' || s[k] == '\n':
				return "", "", false, 0, false
			case s[k] == '>':
				rawDest = s[j+1 : k]
				j = k + 1
				goto destDone
			default:
				k++
			}
		}
		return "", "", false, 0, false
	}
	{
		start := j
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
					goto bareDestDone
				}
				depth--
				j++
			case c <= 0x20:
				goto bareDestDone
			default:
				j++
			}
		}
	bareDestDone:
		rawDest = s[start:j]
	}
destDone:
	dest = decodeEntitiesAndEscapes(rawDest)

	j = skipSpaceTabNewline(s, j)
	if j < len(s) && (s[j] == '"' || s[j] == '\'' || s[j] == '(') {
		quote := s[j]
		closing := quote
		if quote == '(' {
			closing = ')'
		}
		k := j + 1
		for k < len(s) {
			if s[k] == '\\' && k+1 < len(s) {
				k += 2
				continue
			}
			if s[k] == closing {
				break
			}
			k++
		}
		if k >= len(s) {
			return "", "", false, 0, false
		}
		title = decodeEntitiesAndEscapes(s[j+1 : k])
		titleSet = true
		j = skipSpaceTabNewline(s, k+1)
	}

	if j >= len(s) || s[j] != ')' {
		return "", "", false, 0, false
	}
	return dest, title, titleSet, j + 1, true
}

// scanLinkLabelBracket parses a "[label]" construct starting at s[i]
// (s[i] must be '['), disallowing unescaped nested '[' per the CommonMark
// link-label grammar. An empty label (the collapsed-reference form "[]")
// is reported as label == "".
func scanLinkLabelBracket(s string, i int) (label string, end int, ok bool) {
	j := i + 1
	start := j
	for j < len(s) {
		switch {
		case s[j] == '\\' && j+1 < len(s) && isASCIIPunct(s[j+1]):
			j += 2
		case s[j] == '[':
			return "", 0, false
		case s[j] == ']':
			return s[start:j], j + 1, true
		default:
			j++
		}
	}
	return "", 0, false
}
