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

// Node is satisfied by [*Block] and [*Inline]. It lets generic tree walks
// (see [Walk]) cross the block/inline boundary without a type switch at
// every call site.
type Node interface {
	Kind() string
	ChildNodes() []Node
}

// BlockKind identifies the variant of a [Block] node.
type BlockKind int

const (
	DocumentKind BlockKind = 1 + iota
	ParagraphKind
	HeadingKind
	ThematicBreakKind
	CodeBlockKind
	BlockQuoteKind
	ListKind
	ListItemKind
	HTMLBlockKind
	TableKind
	TableRowKind
	TableCellKind
)

func (k BlockKind) String() string {
	switch k {
	case DocumentKind:
		return "DocumentKind"
	case ParagraphKind:
		return "ParagraphKind"
	case HeadingKind:
		return "HeadingKind"
	case ThematicBreakKind:
		return "ThematicBreakKind"
	case CodeBlockKind:
		return "CodeBlockKind"
	case BlockQuoteKind:
		return "BlockQuoteKind"
	case ListKind:
		return "ListKind"
	case ListItemKind:
		return "ListItemKind"
	case HTMLBlockKind:
		return "HTMLBlockKind"
	case TableKind:
		return "TableKind"
	case TableRowKind:
		return "TableRowKind"
	case TableCellKind:
		return "TableCellKind"
	default:
		return "BlockKind(?)"
	}
}

// ListType distinguishes bullet lists from ordered lists.
type ListType int

const (
	BulletList ListType = iota
	OrderedList
)

// Alignment is a table column's horizontal alignment, taken from its
// delimiter-row cell.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Block is a node of the block tree: a container (block quote, list, list
// item, table, table row) or a leaf that holds literal or raw-inline
// content.
//
// Paragraphs, headings, and table cells carry their content as an
// unparsed string in Raw until the inline phase runs; after that Raw is
// cleared and Inlines holds the parsed forest, distinguishing
// "inline-pending" from "inline-resolved" content without needing a
// separate variant tag.
type Block struct {
	kind     BlockKind
	children []*Block

	// Raw holds unparsed inline content for Paragraph, Heading, and
	// TableCell nodes until resolveDocumentInlines runs.
	Raw string
	// Inlines holds the parsed inline forest once resolveDocumentInlines has run.
	Inlines []*Inline

	// Heading
	Level int

	// CodeBlock
	Info    string
	Literal string
	Fenced  bool

	// List
	ListType  ListType
	Start     int
	Bullet    byte
	Delimiter byte
	Tight     bool

	// ListItem
	Checked *bool // nil unless the task-list extension recognized a checkbox

	// Table / TableCell
	Alignments []Alignment
	Alignment  Alignment
	IsHeader   bool
}

func (b *Block) Kind() string {
	if b == nil {
		return ""
	}
	return b.kind.String()
}

// BlockKind returns the typed kind of b.
func (b *Block) BlockKind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Children returns b's block children. It is nil for leaf kinds.
func (b *Block) Children() []*Block {
	if b == nil {
		return nil
	}
	return b.children
}

func (b *Block) ChildNodes() []Node {
	children := b.Children()
	nodes := make([]Node, 0, len(children)+len(b.Inlines))
	for _, c := range children {
		nodes = append(nodes, c)
	}
	for _, c := range b.Inlines {
		nodes = append(nodes, c)
	}
	return nodes
}

// InlineKind identifies the variant of an [Inline] node.
type InlineKind int

const (
	TextKind InlineKind = 1 + iota
	SoftBreakKind
	HardBreakKind
	CodeSpanKind
	EmphasisKind
	StrongKind
	StrikethroughKind
	LinkKind
	ImageKind
	AutolinkKind
	HTMLInlineKind
	FootnoteRefKind
)

func (k InlineKind) String() string {
	switch k {
	case TextKind:
		return "TextKind"
	case SoftBreakKind:
		return "SoftBreakKind"
	case HardBreakKind:
		return "HardBreakKind"
	case CodeSpanKind:
		return "CodeSpanKind"
	case EmphasisKind:
		return "EmphasisKind"
	case StrongKind:
		return "StrongKind"
	case StrikethroughKind:
		return "StrikethroughKind"
	case LinkKind:
		return "LinkKind"
	case ImageKind:
		return "ImageKind"
	case AutolinkKind:
		return "AutolinkKind"
	case HTMLInlineKind:
		return "HTMLInlineKind"
	case FootnoteRefKind:
		return "FootnoteRefKind"
	default:
		return "InlineKind(?)"
	}
}

// Inline is a node of the inline forest produced by the inline parser.
type Inline struct {
	kind     InlineKind
	children []*Inline

	// Text / CodeSpan / HTMLInline
	Literal string
	NoDelim bool // set by the escape parser; emphasis resolution skips this node
	NoSmart bool // set by the escape parser; smart punctuation skips this node

	// Link / Image / Autolink
	Destination string
	Title       string
	TitleSet    bool
	Alt         string // Image only: flattened plain-text of the interior

	// FootnoteRef
	Label string // original label text
	Key   string // normalized label
	Index int    // 1-based order of first use across the document
	Reuse int    // 0 for the first use of Key, n for the (n+1)th use
}

func (in *Inline) Kind() string {
	if in == nil {
		return ""
	}
	return in.kind.String()
}

// InlineKind returns the typed kind of in.
func (in *Inline) InlineKind() InlineKind {
	if in == nil {
		return 0
	}
	return in.kind
}

// Children returns in's inline children. It is nil for leaf kinds.
func (in *Inline) Children() []*Inline {
	if in == nil {
		return nil
	}
	return in.children
}

func (in *Inline) ChildNodes() []Node {
	children := in.Children()
	nodes := make([]Node, len(children))
	for i, c := range children {
		nodes[i] = c
	}
	return nodes
}

// Document is the root of a parsed Markdown document.
type Document struct {
	Blocks []*Block

	// References holds the document's link reference definitions,
	// keyed by normalized label.
	References ReferenceMap

	// Footnotes holds the document's GFM footnote definitions, keyed by
	// normalized label.
	Footnotes *FootnoteMap
}

func (doc *Document) ChildNodes() []Node {
	nodes := make([]Node, len(doc.Blocks))
	for i, b := range doc.Blocks {
		nodes[i] = b
	}
	return nodes
}
