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

// splitTableRow splits a GFM table row into raw cell contents: backtick
// runs suspend '|' as a separator, "\|" is an escaped pipe, and one
// optional leading/trailing unescaped pipe is stripped.
func splitTableRow(line string) []string {
	s := strings.TrimSpace(line)
	if strings.HasPrefix(s, "|") {
		s = s[1:]
	}
	var cells []string
	var cur strings.Builder
	codeRun := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			i++
		case c == '`':
			j := i
			for j < len(s) && s[j] == '`' {
				j++
			}
			run := j - i
			cur.WriteString(s[i:j])
			if codeRun == 0 {
				codeRun = run
			} else if codeRun == run {
				codeRun = 0
			}
			i = j - 1
		case c == '|' && codeRun == 0:
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	last := cur.String()
	if strings.TrimSpace(last) != "" || len(cells) == 0 {
		cells = append(cells, last)
	}
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// tableDelimiterRow reports whether line is a valid GFM delimiter row and,
// if so, its per-cell alignments.
func tableDelimiterRow(line string) (aligns []Alignment, ok bool) {
	cells := splitTableRow(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns = make([]Alignment, len(cells))
	for i, cell := range cells {
		if cell == "" {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		core := cell
		if left {
			core = core[1:]
		}
		if right && len(core) > 0 {
			core = core[:len(core)-1]
		}
		if core == "" || strings.Trim(core, "-") != "" {
			return nil, false
		}
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case right:
			aligns[i] = AlignRight
		case left:
			aligns[i] = AlignLeft
		default:
			aligns[i] = AlignNone
		}
	}
	return aligns, true
}

// isTableCandidateRow reports whether line could be a table header or body
// row: it must contain a '|'. Escaped pipes and pipes inside code spans
// count here as well; this check does not tell them apart.
func isTableCandidateRow(line string) bool {
	return len(splitTableRow(line)) >= 1 && strings.Contains(line, "|")
}

// buildTableRow constructs a TableRowKind block from raw cell strings,
// padding or truncating to match len(aligns) ("extra body
// cells beyond the header count are dropped; missing cells are filled
// with empty content").
func buildTableRow(cells []string, aligns []Alignment, isHeader bool) *Block {
	row := newBlock(TableRowKind)
	row.IsHeader = isHeader
	for i, align := range aligns {
		cell := newBlock(TableCellKind)
		cell.Alignment = align
		cell.IsHeader = isHeader
		if i < len(cells) {
			cell.Raw = cells[i]
		}
		row.children = append(row.children, cell)
	}
	return row
}

// tableInterrupts reports whether line interrupts an open GFM table body:
// a blank line, or the start of a construct that would otherwise open a
// new block.
func tableInterrupts(line string) bool {
	if isBlankLine(line) {
		return true
	}
	if isThematicBreak(line) {
		return true
	}
	if _, _, ok := matchATXHeading(line); ok {
		return true
	}
	if _, _, _, _, ok := matchFenceOpen(line); ok {
		return true
	}
	if _, ok := matchBlockquoteMarker(line); ok {
		return true
	}
	if classifyHTMLBlockStart(line, true) >= 0 {
		return true
	}
	return false
}
