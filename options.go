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

// Extension names a single optional GFM behavior.
type Extension string

const (
	ExtTable         Extension = "table"
	ExtStrikethrough Extension = "strikethrough"
	ExtTaskList      Extension = "tasklist"
	ExtAutolink      Extension = "autolink"
	ExtTagFilter     Extension = "tagfilter"
	ExtFootnotes     Extension = "footnotes"
)

// ExtensionSet is a set of enabled [Extension] names.
type ExtensionSet map[Extension]bool

// GFMExtensions returns the full default GFM extension set.
func GFMExtensions() ExtensionSet {
	return ExtensionSet{
		ExtTable:         true,
		ExtStrikethrough: true,
		ExtTaskList:      true,
		ExtAutolink:      true,
		ExtTagFilter:     true,
		ExtFootnotes:     true,
	}
}

func (e ExtensionSet) has(ext Extension) bool {
	return e != nil && e[ext]
}

// ParseOptions configures [Parse].
type ParseOptions struct {
	// Extensions is the set of enabled GFM extensions. A nil or empty set
	// parses plain CommonMark.
	Extensions ExtensionSet
}

// RenderOptions configures [Render].
type RenderOptions struct {
	// Safe scrubs raw HTML and javascript: URLs from the output.
	Safe bool
	// SoftBreak is emitted in place of a soft line break. Defaults to "\n".
	SoftBreak string
	// Smart applies smart-punctuation substitution.
	Smart bool
	// TablePreferStyleAttributes emits style="text-align:…" instead of
	// align="…" on table cells.
	TablePreferStyleAttributes bool
	// FullInfoString emits a code block's info-string suffix (after the
	// first whitespace-separated token) as a data-meta attribute.
	FullInfoString bool
	// TagFilter applies the GFM tag filter to raw HTML output.
	TagFilter bool
}

func (o RenderOptions) softBreak() string {
	if o.SoftBreak == "" {
		return "\n"
	}
	return o.SoftBreak
}
