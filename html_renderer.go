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
	"html"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// Render writes doc to an HTML string.
//
// # Security considerations
//
// CommonMark permits the use of [raw HTML], which can introduce
// [Cross-Site Scripting (XSS)] vulnerabilities when used with untrusted
// input. Setting [RenderOptions.Safe] drops raw HTML blocks, inline raw
// HTML, and image tags from the output entirely, and renders a link whose
// destination uses the javascript: scheme as its text only; this guarantees a fixed
// element vocabulary but can omit content a trusted author intended to
// keep. For untrusted input that still needs raw HTML preserved, combine
// an unsafe render with an HTML sanitizer downstream.
//
// [Cross-Site Scripting (XSS)]: https://owasp.org/www-community/attacks/xss/
// [raw HTML]: https://spec.commonmark.org/0.30/#raw-html
func Render(doc *Document, opts RenderOptions) string {
	r := &htmlRenderer{opts: opts, refs: doc.References, footnotes: doc.Footnotes}
	for _, b := range doc.Blocks {
		r.block(b)
	}
	r.footnoteSection()
	return r.buf.String()
}

type htmlRenderer struct {
	opts      RenderOptions
	refs      ReferenceMap
	footnotes *FootnoteMap
	buf       strings.Builder
}

func (r *htmlRenderer) openTagAttr(name atom.Atom) {
	r.buf.WriteByte('<')
	r.buf.WriteString(name.String())
}

func (r *htmlRenderer) openTag(name atom.Atom) {
	r.openTagAttr(name)
	r.buf.WriteByte('>')
}

func (r *htmlRenderer) closeTag(name atom.Atom) {
	r.buf.WriteString("</")
	r.buf.WriteString(name.String())
	r.buf.WriteByte('>')
}

func (r *htmlRenderer) block(b *Block) {
	switch b.BlockKind() {
	case ParagraphKind:
		r.openTag(atom.P)
		r.inlines(b.Inlines)
		r.closeTag(atom.P)
		r.buf.WriteByte('\n')
	case ThematicBreakKind:
		r.buf.WriteString("<hr />\n")
	case HeadingKind:
		tag := headingTag(b.Level)
		r.openTag(tag)
		r.inlines(b.Inlines)
		r.closeTag(tag)
		r.buf.WriteByte('\n')
	case CodeBlockKind:
		r.openTag(atom.Pre)
		r.openTagAttr(atom.Code)
		if b.Info != "" {
			lang := ""
			if fields := strings.Fields(b.Info); len(fields) > 0 {
				lang = fields[0]
			}
			if lang != "" {
				r.buf.WriteString(` class="language-`)
				r.buf.WriteString(html.EscapeString(lang))
				r.buf.WriteByte('"')
				if r.opts.FullInfoString && b.Info != lang {
					r.buf.WriteString(` data-meta="`)
					r.buf.WriteString(html.EscapeString(strings.TrimSpace(strings.TrimPrefix(b.Info, lang))))
					r.buf.WriteByte('"')
				}
			}
		}
		r.buf.WriteByte('>')
		r.buf.WriteString(html.EscapeString(b.Literal))
		r.closeTag(atom.Code)
		r.closeTag(atom.Pre)
		r.buf.WriteByte('\n')
	case BlockQuoteKind:
		r.openTag(atom.Blockquote)
		r.buf.WriteByte('\n')
		r.blockChildren(b.Children(), false)
		r.closeTag(atom.Blockquote)
		r.buf.WriteByte('\n')
	case ListKind:
		tag := atom.Ul
		if b.ListType == OrderedList {
			tag = atom.Ol
			r.openTagAttr(tag)
			if b.Start != 1 {
				r.buf.WriteString(` start="`)
				r.buf.WriteString(strconv.Itoa(b.Start))
				r.buf.WriteByte('"')
			}
			r.buf.WriteByte('>')
		} else {
			r.openTag(tag)
		}
		r.buf.WriteByte('\n')
		for _, item := range b.Children() {
			r.listItem(item, b.Tight)
		}
		r.closeTag(tag)
		r.buf.WriteByte('\n')
	case HTMLBlockKind:
		if !r.opts.Safe {
			if r.opts.TagFilter {
				r.filterRaw(b.Literal)
			} else {
				r.buf.WriteString(b.Literal)
			}
		}
	case TableKind:
		r.table(b)
	}
}

func headingTag(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func (r *htmlRenderer) blockChildren(blocks []*Block, tight bool) {
	for _, c := range blocks {
		if tight && c.BlockKind() == ParagraphKind {
			r.inlines(c.Inlines)
		} else {
			r.block(c)
		}
	}
}

func (r *htmlRenderer) listItem(item *Block, tight bool) {
	r.openTag(atom.Li)
	if item.Checked != nil {
		r.buf.WriteString(`<input `)
		if *item.Checked {
			r.buf.WriteString(`checked="" `)
		}
		r.buf.WriteString(`disabled="" type="checkbox"> `)
	}
	r.blockChildren(item.Children(), tight)
	r.closeTag(atom.Li)
	r.buf.WriteByte('\n')
}

func (r *htmlRenderer) table(t *Block) {
	r.openTag(atom.Table)
	r.buf.WriteByte('\n')
	children := t.Children()
	if len(children) > 0 {
		r.openTag(atom.Thead)
		r.buf.WriteByte('\n')
		r.tableRow(children[0], t.Alignments)
		r.closeTag(atom.Thead)
		r.buf.WriteByte('\n')
	}
	if len(children) > 1 {
		r.openTag(atom.Tbody)
		r.buf.WriteByte('\n')
		for _, row := range children[1:] {
			r.tableRow(row, t.Alignments)
		}
		r.closeTag(atom.Tbody)
		r.buf.WriteByte('\n')
	}
	r.closeTag(atom.Table)
	r.buf.WriteByte('\n')
}

func (r *htmlRenderer) tableRow(row *Block, aligns []Alignment) {
	r.openTag(atom.Tr)
	r.buf.WriteByte('\n')
	for i, cell := range row.Children() {
		tag := atom.Td
		if row.IsHeader {
			tag = atom.Th
		}
		var align Alignment
		if i < len(aligns) {
			align = aligns[i]
		}
		if align == AlignNone || !r.opts.TablePreferStyleAttributes {
			r.openTagAttr(tag)
			if align != AlignNone {
				r.buf.WriteString(` align="`)
				r.buf.WriteString(alignString(align))
				r.buf.WriteByte('"')
			}
			r.buf.WriteByte('>')
		} else {
			r.openTagAttr(tag)
			r.buf.WriteString(` style="text-align: `)
			r.buf.WriteString(alignString(align))
			r.buf.WriteString(`"`)
			r.buf.WriteByte('>')
		}
		r.inlines(cell.Inlines)
		r.closeTag(tag)
		r.buf.WriteByte('\n')
	}
	r.closeTag(atom.Tr)
	r.buf.WriteByte('\n')
}

func alignString(a Alignment) string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

func (r *htmlRenderer) inlines(ins []*Inline) {
	tokens := flattenForSmartPunct(ins)
	if r.opts.Smart {
		applySmartPunctuation(tokens)
	}
	for _, tok := range tokens {
		r.inlineToken(tok)
	}
}

func (r *htmlRenderer) inlineToken(tok smartToken) {
	if tok.isText {
		r.buf.WriteString(escapeHTMLString(tok.text))
		return
	}
	r.inline(tok.node)
}

func (r *htmlRenderer) inline(in *Inline) {
	switch in.InlineKind() {
	case TextKind:
		r.buf.WriteString(escapeHTMLString(in.Literal))
	case SoftBreakKind:
		r.buf.WriteString(r.opts.softBreak())
	case HardBreakKind:
		r.buf.WriteString("<br />\n")
	case CodeSpanKind:
		r.openTag(atom.Code)
		r.buf.WriteString(escapeHTMLString(in.Literal))
		r.closeTag(atom.Code)
	case EmphasisKind:
		r.openTag(atom.Em)
		r.inlineChildren(in.Children())
		r.closeTag(atom.Em)
	case StrongKind:
		r.openTag(atom.Strong)
		r.inlineChildren(in.Children())
		r.closeTag(atom.Strong)
	case StrikethroughKind:
		r.buf.WriteString("<del>")
		r.inlineChildren(in.Children())
		r.buf.WriteString("</del>")
	case LinkKind:
		dest, title, titleSet := r.resolveLink(in)
		if r.opts.Safe && strings.HasPrefix(strings.ToLower(dest), "javascript:") {
			r.inlineChildren(in.Children())
			return
		}
		r.openTagAttr(atom.A)
		r.buf.WriteString(` href="`)
		r.buf.WriteString(html.EscapeString(normalizeURI(dest)))
		r.buf.WriteByte('"')
		if titleSet {
			r.buf.WriteString(` title="`)
			r.buf.WriteString(html.EscapeString(title))
			r.buf.WriteByte('"')
		}
		r.buf.WriteByte('>')
		r.inlineChildren(in.Children())
		r.closeTag(atom.A)
	case ImageKind:
		if r.opts.Safe {
			return
		}
		dest, title, titleSet := r.resolveLink(in)
		r.openTagAttr(atom.Img)
		r.buf.WriteString(` src="`)
		r.buf.WriteString(html.EscapeString(normalizeURI(dest)))
		r.buf.WriteByte('"')
		r.buf.WriteString(` alt="`)
		r.buf.WriteString(html.EscapeString(in.Alt))
		r.buf.WriteByte('"')
		if titleSet {
			r.buf.WriteString(` title="`)
			r.buf.WriteString(html.EscapeString(title))
			r.buf.WriteByte('"')
		}
		r.buf.WriteString(" />")
	case AutolinkKind:
		dest := in.Destination
		if r.opts.Safe && strings.HasPrefix(strings.ToLower(dest), "javascript:") {
			r.inlineChildren(in.Children())
			return
		}
		r.openTagAttr(atom.A)
		r.buf.WriteString(` href="`)
		r.buf.WriteString(html.EscapeString(normalizeURI(dest)))
		r.buf.WriteByte('"')
		r.buf.WriteByte('>')
		r.inlineChildren(in.Children())
		r.closeTag(atom.A)
	case HTMLInlineKind:
		if !r.opts.Safe {
			if r.opts.TagFilter {
				r.filterRaw(in.Literal)
			} else {
				r.buf.WriteString(in.Literal)
			}
		}
	case FootnoteRefKind:
		r.footnoteRef(in)
	}
}

func (r *htmlRenderer) inlineChildren(ins []*Inline) {
	tokens := flattenForSmartPunct(ins)
	if r.opts.Smart {
		applySmartPunctuation(tokens)
	}
	for _, tok := range tokens {
		r.inlineToken(tok)
	}
}

func (r *htmlRenderer) resolveLink(in *Inline) (dest, title string, titleSet bool) {
	if in.Label != "" {
		if def, ok := r.refs[in.Key]; ok {
			return def.Destination, def.Title, def.TitlePresent
		}
	}
	return in.Destination, in.Title, in.TitleSet
}

func (r *htmlRenderer) footnoteRef(in *Inline) {
	anchor := normalizeURI(in.Label)
	r.openTagAttr(atom.Sup)
	r.buf.WriteString(` class="footnote-ref"`)
	r.buf.WriteByte('>')
	r.openTagAttr(atom.A)
	r.buf.WriteString(` href="#fn-`)
	r.buf.WriteString(anchor)
	r.buf.WriteString(`" id="fnref-`)
	r.buf.WriteString(anchor)
	if in.Reuse > 0 {
		r.buf.WriteString("-" + strconv.Itoa(in.Reuse+1))
	}
	r.buf.WriteString(`" data-footnote-ref`)
	r.buf.WriteByte('>')
	r.buf.WriteString(strconv.Itoa(in.Index))
	r.closeTag(atom.A)
	r.closeTag(atom.Sup)
}

// footnoteSection appends the "Footnotes" section GFM renders after the
// main document body, in first-use order, each entry backlinked to the
// place it was referenced. Anchor IDs are a URL-encoding of the
// original footnote label, not the resolution index, so they line up
// with the fn-/fnref- pair footnoteRef emits.
func (r *htmlRenderer) footnoteSection() {
	order := r.footnotes.UsedOrder()
	if len(order) == 0 {
		return
	}
	r.buf.WriteString(`<section class="footnotes" data-footnotes>` + "\n")
	r.openTag(atom.Ol)
	r.buf.WriteByte('\n')
	for _, key := range order {
		def, _ := r.footnotes.Lookup(key)
		label := key
		if def != nil {
			label = def.Label
		}
		anchor := normalizeURI(label)
		r.openTagAttr(atom.Li)
		r.buf.WriteString(` id="fn-`)
		r.buf.WriteString(anchor)
		r.buf.WriteString(`"`)
		r.buf.WriteByte('>')
		r.buf.WriteByte('\n')
		r.footnoteBody(def, anchor)
		r.closeTag(atom.Li)
		r.buf.WriteByte('\n')
	}
	r.closeTag(atom.Ol)
	r.buf.WriteByte('\n')
	r.buf.WriteString("</section>\n")
}

func (r *htmlRenderer) footnoteBody(def *FootnoteDefinition, anchor string) {
	if def == nil || len(def.Blocks) == 0 {
		r.buf.WriteString(`<p>`)
		r.writeBackref(anchor, 0)
		r.buf.WriteString("</p>\n")
		return
	}
	for i, b := range def.Blocks {
		if b.BlockKind() == ParagraphKind && i == len(def.Blocks)-1 {
			r.openTag(atom.P)
			r.inlines(b.Inlines)
			r.writeBackref(anchor, 0)
			r.closeTag(atom.P)
			r.buf.WriteByte('\n')
			continue
		}
		r.block(b)
	}
	if def.Blocks[len(def.Blocks)-1].BlockKind() != ParagraphKind {
		r.writeBackref(anchor, 0)
		r.buf.WriteByte('\n')
	}
}

func (r *htmlRenderer) writeBackref(anchor string, reuse int) {
	r.buf.WriteString(` <a href="#fnref-`)
	r.buf.WriteString(anchor)
	if reuse > 0 {
		r.buf.WriteString("-" + strconv.Itoa(reuse+1))
	}
	r.buf.WriteString(`" class="footnote-backref" data-footnote-backref aria-label="Back to content">↩</a>`)
}

// filterRaw rewrites the leading '<' of any raw HTML tag whose name is on
// the GFM [tagfilter] disallow list to "&lt;", leaving the rest of the
// tag (and any text around it) untouched. It operates directly on
// incomplete tag fragments, since raw HTML in Markdown may start or end
// mid-tag, so it cannot use a conventional HTML tokenizer.
//
// [tagfilter]: https://github.github.com/gfm/#disallowed-raw-html-extension-
func (r *htmlRenderer) filterRaw(rawHTML string) {
	const (
		copyState = iota
		commentState
		piState
		declState
		cdataState
	)
	state := copyState
	copyStart := 0
	i := 0
	for i < len(rawHTML) {
		switch state {
		case copyState:
			if rawHTML[i] == '<' {
				switch {
				case strings.HasPrefix(rawHTML[i:], "<![CDATA["):
					state = cdataState
					i += len("<![CDATA[")
				case strings.HasPrefix(rawHTML[i:], "<!--"):
					state = commentState
					i += len("<!--")
				case strings.HasPrefix(rawHTML[i:], "<?"):
					state = piState
					i += len("<?")
				case len(rawHTML[i:]) >= 3 && rawHTML[i+1] == '!' && isASCIILetter(rawHTML[i+2]):
					state = declState
					i += len("<!x")
				default:
					tagNameStart := i + 1
					tagEnd := len(rawHTML)
					if j := strings.IndexByte(rawHTML[tagNameStart:], '>'); j >= 0 {
						tagEnd = tagNameStart + j + len(">")
					}
					tagNameEnd := tagNameStart + htmlTagNameEnd(rawHTML[tagNameStart:tagEnd])
					tagName := strings.TrimPrefix(rawHTML[tagNameStart:tagNameEnd], "/")
					if FilterTagGFM(tagName) {
						r.buf.WriteString(rawHTML[copyStart:i])
						r.buf.WriteString("&lt;")
						r.buf.WriteString(rawHTML[tagNameStart:tagEnd])
						copyStart = tagEnd
					}
					i = tagEnd
				}
			} else {
				i++
			}
		case commentState:
			if strings.HasPrefix(rawHTML[i:], "-->") {
				state = copyState
				i += 3
			} else {
				i++
			}
		case piState:
			if strings.HasPrefix(rawHTML[i:], "?>") {
				state = copyState
				i += 2
			} else {
				i++
			}
		case declState:
			if rawHTML[i] == '>' {
				state = copyState
			}
			i++
		case cdataState:
			if strings.HasPrefix(rawHTML[i:], "]]>") {
				state = copyState
				i += 3
			} else {
				i++
			}
		}
	}
	r.buf.WriteString(rawHTML[copyStart:])
}

// htmlTagNameEnd returns the length of the run starting at s[0] that
// consists of an optional leading '/' (for a closing tag) followed by
// tag-name characters.
func htmlTagNameEnd(s string) int {
	i := 0
	if i < len(s) && s[i] == '/' {
		i++
	}
	for i < len(s) && (isASCIIAlnum(s[i]) || s[i] == '-') {
		i++
	}
	return i
}

// FilterTagGFM reports whether tagName (lowercase or mixed case) names
// one of the GFM tagfilter extension's disallowed raw-HTML elements.
//
// [tagfilter]: https://github.github.com/gfm/#disallowed-raw-html-extension-
func FilterTagGFM(tagName string) bool {
	a := atom.Lookup([]byte(strings.ToLower(tagName)))
	switch a {
	case atom.Title, atom.Textarea, atom.Style, atom.Xmp, atom.Iframe,
		atom.Noembed, atom.Noframes, atom.Script, atom.Plaintext:
		return true
	default:
		return false
	}
}

// escapeHTMLString escapes the 4 characters &, <, > and " HTML requires within text
// content and attribute values, used for literal text nodes and code
// span contents.
func escapeHTMLString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range []byte(s) {
		switch c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
