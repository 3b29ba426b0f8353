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

// FootnoteDefinition is the data of a GFM [footnote definition].
//
// [footnote definition]: https://github.github.com/gfm/#footnotes-extension-
type FootnoteDefinition struct {
	Label  string // original label text, as written after [^
	Blocks []*Block
}

// FootnoteMap is a mapping of normalized footnote labels to their
// definitions. The block parser populates it as it
// encounters footnote definitions; the first
// definition for a given normalized label wins.
type FootnoteMap struct {
	defs      map[string]*FootnoteDefinition
	usedOrder []string // normalized keys, in first-use order, set by assignFootnoteOrder
}

// NewFootnoteMap returns an empty FootnoteMap.
func NewFootnoteMap() *FootnoteMap {
	return &FootnoteMap{defs: make(map[string]*FootnoteDefinition)}
}

// Lookup returns the definition for the normalized key and whether it exists.
func (m *FootnoteMap) Lookup(key string) (*FootnoteDefinition, bool) {
	if m == nil {
		return nil, false
	}
	d, ok := m.defs[key]
	return d, ok
}

func (m *FootnoteMap) define(key string, def *FootnoteDefinition) {
	if key == "" {
		return
	}
	if _, exists := m.defs[key]; exists {
		return
	}
	m.defs[key] = def
}

func (m *FootnoteMap) merge(src *FootnoteMap) {
	if src == nil {
		return
	}
	for key, def := range src.defs {
		if _, exists := m.defs[key]; !exists {
			m.defs[key] = def
		}
	}
}

// UsedOrder returns the normalized keys of every footnote reference that
// was actually rendered, in the order they were first encountered — the
// order GFM uses for both the reference numbers and the appended
// footnotes section.
func (m *FootnoteMap) UsedOrder() []string {
	if m == nil {
		return nil
	}
	return m.usedOrder
}

// assignFootnoteOrder walks doc's blocks in document order and assigns
// each FootnoteRefKind inline an Index (1-based, shared by every
// reference to the same key) and a Reuse count (0 for the first
// reference to a key, n for the (n+1)th). This must run once, after all
// raw content has been resolved into inlines and before the tree is
// handed to a renderer, since the AST is immutable for
// rendering after that point.
func assignFootnoteOrder(doc *Document) {
	if doc.Footnotes == nil {
		doc.Footnotes = NewFootnoteMap()
	}
	seen := make(map[string]int) // key -> index
	reuse := make(map[string]int)
	var walkInlines func(ins []*Inline)
	walkInlines = func(ins []*Inline) {
		for _, in := range ins {
			if in.InlineKind() == FootnoteRefKind {
				idx, ok := seen[in.Key]
				if !ok {
					idx = len(seen) + 1
					seen[in.Key] = idx
					doc.Footnotes.usedOrder = append(doc.Footnotes.usedOrder, in.Key)
				} else {
					reuse[in.Key]++
				}
				in.Index = idx
				in.Reuse = reuse[in.Key]
			}
			walkInlines(in.Children())
		}
	}
	var walkBlocks func(bs []*Block)
	walkBlocks = func(bs []*Block) {
		for _, b := range bs {
			walkInlines(b.Inlines)
			walkBlocks(b.Children())
		}
	}
	walkBlocks(doc.Blocks)
	// Footnote definition bodies can themselves reference other footnotes.
	for _, key := range append([]string(nil), doc.Footnotes.usedOrder...) {
		if def, ok := doc.Footnotes.Lookup(key); ok {
			walkBlocks(def.Blocks)
		}
	}
}

// scanFootnoteLabel recognizes the interior of a footnote label
// [^label]: \[, \], and \ are the only
// recognized escapes inside the label.
func scanFootnoteLabel(s string) (label string, n int, ok bool) {
	if !strings.HasPrefix(s, "[^") {
		return "", 0, false
	}
	i := 2
	var b strings.Builder
	for i < len(s) {
		switch {
		case s[i] == ']':
			if b.Len() == 0 || i-2 > 999 {
				return "", 0, false
			}
			return b.String(), i + 1, true
		case s[i] == '\\' && i+1 < len(s) && (s[i+1] == '[' || s[i+1] == ']' || s[i+1] == '\\'):
			b.WriteByte(s[i+1])
			i += 2
		case s[i] == '\n':
			return "", 0, false
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return "", 0, false
}
