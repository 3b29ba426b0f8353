// Copyright 2024 Ross Light
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

// Package format writes a parsed document back out as CommonMark. It
// regenerates Markdown syntax from the semantic tree rather than
// reproducing the original source byte-for-byte, so output is
// normalized: headings are always ATX-style, emphasis always uses '*',
// and so on.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-md/commonmark"
)

// Format writes doc to w as CommonMark source.
func Format(w io.Writer, doc *commonmark.Document) error {
	f := &formatter{w: &errWriter{w: w}}
	f.blocks(doc.Blocks, 0)
	for label, def := range doc.References {
		f.blank()
		f.w.WriteString("[")
		f.w.WriteString(label)
		f.w.WriteString("]: ")
		f.w.WriteString(def.Destination)
		if def.TitlePresent {
			f.w.WriteString(` "`)
			f.w.WriteString(def.Title)
			f.w.WriteString(`"`)
		}
		f.w.WriteString("\n")
	}
	return f.w.err
}

type formatter struct {
	w      *errWriter
	wrote  bool
	indent string
}

func (f *formatter) blank() {
	if f.wrote {
		f.w.WriteString("\n")
	}
}

func (f *formatter) blocks(blocks []*commonmark.Block, indent int) {
	for _, b := range blocks {
		f.block(b, indent)
	}
}

func (f *formatter) block(b *commonmark.Block, indent int) {
	pad := strings.Repeat(" ", indent)
	switch b.BlockKind() {
	case commonmark.ParagraphKind:
		f.blank()
		f.w.WriteString(pad)
		f.inlines(b.Inlines)
		f.w.WriteString("\n")
		f.wrote = true
	case commonmark.HeadingKind:
		f.blank()
		f.w.WriteString(pad)
		f.w.WriteString(strings.Repeat("#", b.Level))
		f.w.WriteString(" ")
		f.inlines(b.Inlines)
		f.w.WriteString("\n")
		f.wrote = true
	case commonmark.ThematicBreakKind:
		f.blank()
		f.w.WriteString(pad)
		f.w.WriteString("---\n")
		f.wrote = true
	case commonmark.CodeBlockKind:
		f.blank()
		if b.Fenced {
			fence := "```"
			f.w.WriteString(pad)
			f.w.WriteString(fence)
			f.w.WriteString(b.Info)
			f.w.WriteString("\n")
			for _, line := range strings.Split(strings.TrimSuffix(b.Literal, "\n"), "\n") {
				f.w.WriteString(pad)
				f.w.WriteString(line)
				f.w.WriteString("\n")
			}
			f.w.WriteString(pad)
			f.w.WriteString(fence)
			f.w.WriteString("\n")
		} else {
			for _, line := range strings.Split(strings.TrimSuffix(b.Literal, "\n"), "\n") {
				f.w.WriteString(pad)
				f.w.WriteString("    ")
				f.w.WriteString(line)
				f.w.WriteString("\n")
			}
		}
		f.wrote = true
	case commonmark.BlockQuoteKind:
		f.blank()
		sub := &formatter{w: f.w}
		for _, child := range b.Children() {
			sub.blockQuoted(child, indent)
		}
		f.wrote = true
	case commonmark.ListKind:
		f.blank()
		f.list(b, indent)
		f.wrote = true
	case commonmark.HTMLBlockKind:
		f.blank()
		f.w.WriteString(b.Literal)
		f.wrote = true
	case commonmark.TableKind:
		f.blank()
		f.table(b, indent)
		f.wrote = true
	default:
		panic(fmt.Sprintf("format: unhandled block kind %v", b.BlockKind()))
	}
}

// blockQuoted writes b prefixed with "> " on every line it produces, by
// formatting into a nested formatter whose writer injects the prefix.
func (f *formatter) blockQuoted(b *commonmark.Block, indent int) {
	pw := &prefixWriter{under: f.w, prefix: "> "}
	sub := &formatter{w: &errWriter{w: pw}}
	sub.block(b, indent)
}

func (f *formatter) list(list *commonmark.Block, indent int) {
	for i, item := range list.Children() {
		marker := f.listMarker(list, i)
		f.w.WriteString(strings.Repeat(" ", indent))
		f.w.WriteString(marker)
		pw := &prefixWriter{under: f.w, prefix: strings.Repeat(" ", len(marker)), skipFirst: true}
		sub := &formatter{w: &errWriter{w: pw}}
		sub.blocks(item.Children(), 0)
		if !list.Tight {
			f.w.WriteString("\n")
		}
	}
}

func (f *formatter) listMarker(list *commonmark.Block, index int) string {
	if list.ListType == commonmark.OrderedList {
		return strconv.Itoa(list.Start+index) + string(list.Delimiter) + " "
	}
	return string(list.Bullet) + " "
}

func (f *formatter) table(t *commonmark.Block, indent int) {
	pad := strings.Repeat(" ", indent)
	rows := t.Children()
	for i, row := range rows {
		f.w.WriteString(pad)
		f.tableRow(row)
		if i == 0 {
			f.w.WriteString(pad)
			f.w.WriteString("|")
			for _, align := range t.Alignments {
				f.w.WriteString(alignDelim(align))
				f.w.WriteString("|")
			}
			f.w.WriteString("\n")
		}
	}
}

func (f *formatter) tableRow(row *commonmark.Block) {
	f.w.WriteString("|")
	for _, cell := range row.Children() {
		f.w.WriteString(" ")
		f.inlines(cell.Inlines)
		f.w.WriteString(" |")
	}
	f.w.WriteString("\n")
}

func alignDelim(a commonmark.Alignment) string {
	switch a {
	case commonmark.AlignLeft:
		return ":---"
	case commonmark.AlignRight:
		return "---:"
	case commonmark.AlignCenter:
		return ":---:"
	default:
		return "---"
	}
}

func (f *formatter) inlines(ins []*commonmark.Inline) {
	for _, in := range ins {
		f.inline(in)
	}
}

func (f *formatter) inline(in *commonmark.Inline) {
	switch in.InlineKind() {
	case commonmark.TextKind:
		f.w.WriteString(in.Literal)
	case commonmark.SoftBreakKind:
		f.w.WriteString("\n")
	case commonmark.HardBreakKind:
		f.w.WriteString("\\\n")
	case commonmark.CodeSpanKind:
		f.w.WriteString("`")
		f.w.WriteString(in.Literal)
		f.w.WriteString("`")
	case commonmark.EmphasisKind:
		f.w.WriteString("*")
		f.inlines(in.Children())
		f.w.WriteString("*")
	case commonmark.StrongKind:
		f.w.WriteString("**")
		f.inlines(in.Children())
		f.w.WriteString("**")
	case commonmark.StrikethroughKind:
		f.w.WriteString("~~")
		f.inlines(in.Children())
		f.w.WriteString("~~")
	case commonmark.AutolinkKind:
		f.w.WriteString("<")
		f.w.WriteString(in.Destination)
		f.w.WriteString(">")
	case commonmark.HTMLInlineKind:
		f.w.WriteString(in.Literal)
	case commonmark.FootnoteRefKind:
		f.w.WriteString("[^")
		f.w.WriteString(in.Label)
		f.w.WriteString("]")
	case commonmark.LinkKind:
		f.link(in, "[", "]")
	case commonmark.ImageKind:
		f.w.WriteString("!")
		f.link(in, "[", "]")
	default:
		panic(fmt.Sprintf("format: unhandled inline kind %v", in.InlineKind()))
	}
}

func (f *formatter) link(in *commonmark.Inline, open, close string) {
	f.w.WriteString(open)
	f.inlines(in.Children())
	f.w.WriteString(close)
	if in.Label != "" {
		f.w.WriteString("[")
		f.w.WriteString(in.Label)
		f.w.WriteString("]")
		return
	}
	f.w.WriteString("(")
	f.w.WriteString(in.Destination)
	if in.TitleSet {
		f.w.WriteString(` "`)
		f.w.WriteString(in.Title)
		f.w.WriteString(`"`)
	}
	f.w.WriteString(")")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}

// prefixWriter writes prefix before every line written through it, used
// to render block quotes and list item continuation indents without
// threading an accumulated prefix through every formatter call. When
// skipFirst is set, the first line is left unprefixed because the
// caller already wrote an equivalent-width marker or quote lead-in.
type prefixWriter struct {
	under     io.Writer
	prefix    string
	skipFirst bool
	midLine   bool // the last byte written was not a newline
}

func (w *prefixWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if !w.midLine {
			if w.skipFirst {
				w.skipFirst = false
			} else if _, err := io.WriteString(w.under, w.prefix); err != nil {
				return total, err
			}
			w.midLine = true
		}
		i := strings.IndexByte(string(p), '\n')
		if i < 0 {
			n, err := w.under.Write(p)
			total += n
			return total, err
		}
		n, err := w.under.Write(p[:i+1])
		total += n
		if err != nil {
			return total, err
		}
		p = p[i+1:]
		w.midLine = false
	}
	return total, nil
}
