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

// textNode builds a leaf Text inline with the given literal.
func textNode(s string) *Inline {
	n := newInline(TextKind)
	n.Literal = s
	return n
}

// bracketEntry is a stack frame for an open '[' or '!['.
type bracketEntry struct {
	nodeIndex int // index into p.nodes of the opening marker node
	textStart int // byte offset in p.s just after the opening marker
	isImage   bool
	active    bool // false once deactivated by an enclosing matched link
	delimBase int  // len(p.delims) snapshot when this bracket opened
}

// inlineParser holds the mutable state of the single left-to-right pass
// over a block's raw text: the output node sequence, the delimiter-run
// side array used by emphasis/strikethrough resolution, and the bracket
// stack used by link/image resolution.
type inlineParser struct {
	s         string
	exts      ExtensionSet
	refs      ReferenceMap
	footnotes *FootnoteMap

	nodes    []*Inline
	delims   []*delimRun
	brackets []*bracketEntry
	buf      strings.Builder
}

// resolveInlines parses the raw inline content of a paragraph, heading, or
// table cell into a forest of inline nodes. refs and
// footnotes are the side tables accumulated by the block parser.
func resolveInlines(raw string, exts ExtensionSet, refs ReferenceMap, footnotes *FootnoteMap) []*Inline {
	p := &inlineParser{s: raw, exts: exts, refs: refs, footnotes: footnotes}
	p.run()
	return p.nodes
}

func (p *inlineParser) flush() {
	if p.buf.Len() == 0 {
		return
	}
	p.nodes = append(p.nodes, textNode(p.buf.String()))
	p.buf.Reset()
}

func (p *inlineParser) trimTrailingBufSpaces() {
	s := p.buf.String()
	trimmed := strings.TrimRight(s, " \t")
	if trimmed != s {
		p.buf.Reset()
		p.buf.WriteString(trimmed)
	}
}

func (p *inlineParser) prevRune() rune {
	if p.buf.Len() > 0 {
		return runeBefore(p.buf.String(), p.buf.Len())
	}
	for i := len(p.nodes) - 1; i >= 0; i-- {
		switch p.nodes[i].InlineKind() {
		case TextKind:
			if lit := p.nodes[i].Literal; lit != "" {
				return runeBefore(lit, len(lit))
			}
		case SoftBreakKind, HardBreakKind:
			return '\n'
		default:
			return 'x' // opaque non-whitespace, non-punctuation placeholder
		}
	}
	return ' '
}

func (p *inlineParser) run() {
	s := p.s
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 < len(s) && isASCIIPunct(s[i+1]) {
				p.flush()
				t := textNode(string(s[i+1]))
				switch s[i+1] {
				case '*', '_':
					t.NoDelim = true
				case '"', '\'', '-', '.':
					t.NoSmart = true
				}
				p.nodes = append(p.nodes, t)
				i += 2
				continue
			}
			if i+1 < len(s) && s[i+1] == '\n' {
				p.trimTrailingBufSpaces()
				p.flush()
				p.nodes = append(p.nodes, newInline(HardBreakKind))
				i += 2
				for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
					i++
				}
				continue
			}
			p.buf.WriteByte('\\')
			i++

		case c == '&':
			if repl, n := matchEntity(s[i:]); n > 0 {
				p.buf.WriteString(repl)
				i += n
				continue
			}
			p.buf.WriteByte('&')
			i++

		case c == '`':
			if node, end, ok := scanCodeSpan(s, i); ok {
				p.flush()
				p.nodes = append(p.nodes, node)
				i = end
				continue
			}
			j := i
			for j < len(s) && s[j] == '`' {
				j++
			}
			p.buf.WriteString(s[i:j])
			i = j

		case c == '<':
			if node, end, ok := scanAngleBracket(s, i); ok {
				p.flush()
				p.nodes = append(p.nodes, node)
				i = end
				continue
			}
			p.buf.WriteByte('<')
			i++

		case c == '\n':
			p.consumeLineBreak(&i)
			continue

		case c == '*' || c == '_':
			i = p.consumeEmphasisRun(i)
			continue

		case c == '~' && p.exts.has(ExtStrikethrough):
			i = p.consumeStrikethroughRun(i)
			continue

		case c == '!' && i+1 < len(s) && s[i+1] == '[':
			p.flush()
			marker := textNode("![")
			p.nodes = append(p.nodes, marker)
			p.brackets = append(p.brackets, &bracketEntry{
				nodeIndex: len(p.nodes) - 1,
				textStart: i + 2,
				isImage:   true,
				active:    true,
				delimBase: len(p.delims),
			})
			i += 2

		case c == '[':
			if p.exts.has(ExtFootnotes) {
				if label, n, ok := scanFootnoteLabel(s[i:]); ok {
					key := normalizeLabel(label)
					if _, defined := p.footnotes.Lookup(key); defined {
						p.flush()
						ref := newInline(FootnoteRefKind)
						ref.Label = label
						ref.Key = key
						p.nodes = append(p.nodes, ref)
						i += n
						continue
					}
				}
			}
			p.flush()
			marker := textNode("[")
			p.nodes = append(p.nodes, marker)
			p.brackets = append(p.brackets, &bracketEntry{
				nodeIndex: len(p.nodes) - 1,
				textStart: i + 1,
				isImage:   false,
				active:    true,
				delimBase: len(p.delims),
			})
			i++

		case c == ']':
			p.flush()
			if next, ok := p.closeBracket(i); ok {
				i = next
				continue
			}
			p.nodes = append(p.nodes, textNode("]"))
			i++

		default:
			if p.exts.has(ExtAutolink) && isExtendedAutolinkStart(c) {
				prev := p.prevRune()
				if node, end, ok := scanExtendedAutolink(s, i, prev); ok {
					p.flush()
					p.nodes = append(p.nodes, node)
					i = end
					continue
				}
			}
			p.buf.WriteByte(c)
			i++
		}
	}
	p.flush()

	// Top-level emphasis/strikethrough resolution over whatever delimiters
	// were never consumed by a bracket close.
	var emDelims, tildeDelims []*delimRun
	for _, d := range p.delims {
		if d.char == '~' {
			tildeDelims = append(tildeDelims, d)
		} else {
			emDelims = append(emDelims, d)
		}
	}
	p.nodes = resolveEmphasis(p.nodes, emDelims)
	if p.exts.has(ExtStrikethrough) {
		p.nodes = resolveStrikethrough(p.nodes, tildeDelims)
	}
}

// consumeLineBreak handles a bare newline: two or more trailing spaces
// before it make a hard break; otherwise it is a soft break. Leading
// spaces/tabs of the following line are discarded.
func (p *inlineParser) consumeLineBreak(i *int) {
	s := p.buf.String()
	trimmed := strings.TrimRight(s, " ")
	trailingSpaces := len(s) - len(trimmed)
	if trailingSpaces >= 2 {
		p.buf.Reset()
		p.buf.WriteString(trimmed)
		p.flush()
		p.nodes = append(p.nodes, newInline(HardBreakKind))
	} else {
		p.trimTrailingBufSpaces()
		p.flush()
		p.nodes = append(p.nodes, newInline(SoftBreakKind))
	}
	*i++
	for *i < len(p.s) && (p.s[*i] == ' ' || p.s[*i] == '\t') {
		*i++
	}
}

// consumeEmphasisRun scans a run of '*' or '_' starting at i, computes its
// flanking, appends a Text node holding the literal run, and registers a
// delimRun for it. It returns the index just past the run.
func (p *inlineParser) consumeEmphasisRun(i int) int {
	s := p.s
	c := s[i]
	j := i
	for j < len(s) && s[j] == c {
		j++
	}
	canOpen, canClose := emphasisFlanking(s, i, j, c)
	p.flush()
	n := textNode(s[i:j])
	p.nodes = append(p.nodes, n)
	if canOpen || canClose {
		p.delims = append(p.delims, &delimRun{
			node:       n,
			char:       c,
			length:     j - i,
			origLength: j - i,
			canOpen:    canOpen,
			canClose:   canClose,
		})
	}
	return j
}

// consumeStrikethroughRun scans a GFM '~' run at i. Runs longer than two
// disqualify the whole run from delimiter status, but the
// run is still emitted as a plain text node.
func (p *inlineParser) consumeStrikethroughRun(i int) int {
	s := p.s
	j := i
	for j < len(s) && s[j] == '~' {
		j++
	}
	length := j - i
	p.flush()
	n := textNode(s[i:j])
	p.nodes = append(p.nodes, n)
	if length <= 2 {
		canOpen, canClose := strikethroughFlanking(s, i, j)
		if canOpen || canClose {
			p.delims = append(p.delims, &delimRun{
				node:       n,
				char:       '~',
				length:     length,
				origLength: length,
				canOpen:    canOpen,
				canClose:   canClose,
			})
		}
	}
	return j
}

func isExtendedAutolinkStart(c byte) bool {
	switch c {
	case 'w', 'W', 'h', 'H', 'f', 'F', 'm', 'M', 'x', 'X':
		return true
	}
	return isASCIIAlnum(c)
}

// scanCodeSpan matches an opening backtick run at s[i] against the next
// backtick run of exactly the same length.
func scanCodeSpan(s string, i int) (node *Inline, end int, ok bool) {
	k := runLength(s, i, '`')
	j := i + k
	for j < len(s) {
		if s[j] != '`' {
			j++
			continue
		}
		runStart := j
		runLen := runLength(s, j, '`')
		if runLen == k {
			content := s[i+k : runStart]
			n := newInline(CodeSpanKind)
			n.Literal = normalizeCodeSpanContent(content)
			return n, runStart + runLen, true
		}
		j = runStart + runLen
	}
	return nil, 0, false
}

func runLength(s string, i int, c byte) int {
	j := i
	for j < len(s) && s[j] == c {
		j++
	}
	return j - i
}

func normalizeCodeSpanContent(content string) string {
	replaced := strings.ReplaceAll(content, "\n", " ")
	if len(replaced) >= 2 && strings.HasPrefix(replaced, " ") && strings.HasSuffix(replaced, " ") &&
		strings.TrimSpace(replaced) != "" {
		replaced = replaced[1 : len(replaced)-1]
	}
	return replaced
}
