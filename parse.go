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

// Parse runs both phases of the pipeline described in the package doc
// comment and returns the finished tree: the block-structure pass builds
// doc.Blocks plus the reference and footnote side tables, then every
// block left holding unparsed text (paragraphs, headings, table cells)
// has that text resolved into inline nodes.
func Parse(source string, opts ParseOptions) *Document {
	if strings.IndexByte(source, 0) >= 0 {
		source = strings.ReplaceAll(source, "\x00", "�")
	}
	result := parseBlocks(splitLines(source), opts.Extensions)
	doc := &Document{
		Blocks:     result.blocks,
		References: result.refs,
		Footnotes:  result.footnotes,
	}
	resolveDocumentInlines(doc, opts.Extensions)
	assignFootnoteOrder(doc)
	return doc
}

// resolveDocumentInlines walks every block in doc and, for the ones that
// carry unparsed text in Raw, runs the inline-structure pass and moves
// the result into Inlines.
func resolveDocumentInlines(doc *Document, exts ExtensionSet) {
	var walkBlocks func(blocks []*Block)
	walkBlocks = func(blocks []*Block) {
		for _, b := range blocks {
			if hasRawInlineContent(b.BlockKind()) {
				b.Inlines = resolveInlines(b.Raw, exts, doc.References, doc.Footnotes)
				b.Raw = ""
			}
			walkBlocks(b.Children())
		}
	}
	walkBlocks(doc.Blocks)
	if doc.Footnotes != nil {
		for _, def := range doc.Footnotes.defs {
			walkBlocks(def.Blocks)
		}
	}
}

func hasRawInlineContent(kind BlockKind) bool {
	switch kind {
	case ParagraphKind, HeadingKind, TableCellKind:
		return true
	default:
		return false
	}
}
