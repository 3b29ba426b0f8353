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

// scanTaskListMarker recognizes a GFM task-list checkbox ("[ ] " or
// "[x] "/"[X] ") at the start of raw, a list item's first paragraph text
// (checked must be strictly true or false, never null, and
// the marker text is removed). It reports the checked state and the
// remaining text with the marker stripped.
func scanTaskListMarker(raw string) (checked bool, rest string, ok bool) {
	if len(raw) < 4 || raw[0] != '[' || raw[2] != ']' {
		return false, raw, false
	}
	switch raw[1] {
	case ' ':
		checked = false
	case 'x', 'X':
		checked = true
	default:
		return false, raw, false
	}
	if raw[3] != ' ' && raw[3] != '\t' {
		return false, raw, false
	}
	return checked, raw[4:], true
}
