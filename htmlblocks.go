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
	"strings"

	"golang.org/x/net/html/atom"
)

// htmlBlockCondition is one of the seven HTML block start/end conditions
// of the GFM HTML-block type table.
type htmlBlockCondition struct {
	start                  func(line string) bool
	end                    func(line string) bool
	canInterruptParagraph  bool
}

var htmlBlockConditions = []htmlBlockCondition{
	{ // type 1: <pre, <script, <style, <textarea
		start: func(line string) bool {
			for _, starter := range htmlBlockStarters1 {
				if hasCaseInsensitivePrefix(line, starter) {
					rest := line[len(starter):]
					if rest == "" || isSpaceTabOrEOL(rest[0]) || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		end: func(line string) bool {
			for _, ender := range htmlBlockEnders1 {
				if caseInsensitiveContains(line, ender) {
					return true
				}
			}
			return false
		},
		canInterruptParagraph: true,
	},
	{ // type 2: <!--
		start:                  func(line string) bool { return strings.HasPrefix(line, "<!--") },
		end:                    func(line string) bool { return strings.Contains(line, "-->") },
		canInterruptParagraph:  true,
	},
	{ // type 3: <?
		start:                  func(line string) bool { return strings.HasPrefix(line, "<?") },
		end:                    func(line string) bool { return strings.Contains(line, "?>") },
		canInterruptParagraph:  true,
	},
	{ // type 4: <!LETTER
		start: func(line string) bool {
			return strings.HasPrefix(line, "<!") && len(line) >= 3 && isASCIILetter(line[2])
		},
		end:                    func(line string) bool { return strings.Contains(line, ">") },
		canInterruptParagraph:  true,
	},
	{ // type 5: <![CDATA[
		start:                  func(line string) bool { return strings.HasPrefix(line, "<![CDATA[") },
		end:                    func(line string) bool { return strings.Contains(line, "]]>") },
		canInterruptParagraph:  true,
	},
	{ // type 6: block-level tag names
		start: func(line string) bool {
			rest := line
			switch {
			case strings.HasPrefix(rest, "</"):
				rest = rest[2:]
			case strings.HasPrefix(rest, "<"):
				rest = rest[1:]
			default:
				return false
			}
			for _, starter := range htmlBlockStarters6 {
				if hasCaseInsensitivePrefix(rest, starter) {
					tail := rest[len(starter):]
					if tail == "" || isSpaceTabOrEOL(tail[0]) || tail[0] == '>' || strings.HasPrefix(tail, "/>") {
						return true
					}
				}
			}
			return false
		},
		end:                    isBlankLine,
		canInterruptParagraph:  true,
	},
	{ // type 7: any well-formed open/close tag alone on its line
		start: func(line string) bool {
			if !strings.HasPrefix(line, "<") {
				return false
			}
			var end int
			var ok bool
			if strings.HasPrefix(line, "</") {
				end, ok = scanHTMLClosingTag(line, 1)
			} else {
				end, ok = scanHTMLOpenTag(line, 1)
			}
			if !ok {
				return false
			}
			return strings.TrimRight(line[end:], " \t") == ""
		},
		end:                    isBlankLine,
		canInterruptParagraph:  false,
	},
}

func hasCaseInsensitivePrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

func caseInsensitiveContains(s, search string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(search))
}

func isSpaceTabOrEOL(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

var htmlBlockStarters1 = []string{"<pre", "<script", "<style", "<textarea"}
var htmlBlockEnders1 = []string{"</pre>", "</script>", "</style>", "</textarea>"}

// htmlBlockStarters6 is the fixed set of block-level tag names recognized
// by type-6 HTML blocks, sourced from the standard HTML
// atom table so the set stays in sync with the parser's other HTML
// handling rather than being retyped by hand.
var htmlBlockStarters6 = []string{
	atom.Address.String(), atom.Article.String(), atom.Aside.String(),
	atom.Base.String(), atom.Basefont.String(), atom.Blockquote.String(),
	atom.Body.String(), atom.Caption.String(), atom.Center.String(),
	atom.Col.String(), atom.Colgroup.String(), atom.Dd.String(),
	atom.Details.String(), atom.Dialog.String(), atom.Dir.String(),
	atom.Div.String(), atom.Dl.String(), atom.Dt.String(),
	atom.Fieldset.String(), atom.Figcaption.String(), atom.Figure.String(),
	atom.Footer.String(), atom.Form.String(), atom.Frame.String(),
	atom.Frameset.String(), atom.H1.String(), atom.H2.String(),
	atom.H3.String(), atom.H4.String(), atom.H5.String(), atom.H6.String(),
	atom.Head.String(), atom.Header.String(), atom.Hr.String(),
	atom.Html.String(), atom.Iframe.String(), atom.Legend.String(),
	atom.Li.String(), atom.Link.String(), atom.Main.String(),
	atom.Menu.String(), atom.Menuitem.String(), atom.Nav.String(),
	atom.Noframes.String(), atom.Ol.String(), atom.Optgroup.String(),
	atom.Option.String(), atom.P.String(), atom.Param.String(),
	atom.Section.String(), atom.Source.String(), atom.Summary.String(),
	atom.Table.String(), atom.Tbody.String(), atom.Td.String(),
	atom.Tfoot.String(), atom.Th.String(), atom.Thead.String(),
	atom.Title.String(), atom.Tr.String(), atom.Track.String(),
	atom.Ul.String(),
}

// classifyHTMLBlockStart returns the index into htmlBlockConditions of the
// first condition whose start pattern matches line, or -1. interrupting
// reports whether the line is attempting to interrupt an open paragraph
// (in which case type 7 never matches).
func classifyHTMLBlockStart(line string, interrupting bool) int {
	for idx, cond := range htmlBlockConditions {
		if interrupting && !cond.canInterruptParagraph {
			continue
		}
		if cond.start(line) {
			return idx
		}
	}
	return -1
}
