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

// IsContainer reports whether b's kind holds other blocks as children,
// as opposed to literal or raw-inline leaf content.
func (b *Block) IsContainer() bool {
	switch b.BlockKind() {
	case BlockQuoteKind, ListKind, ListItemKind, TableKind, TableRowKind:
		return true
	default:
		return false
	}
}

// newBlock allocates a block of the given kind.
func newBlock(kind BlockKind) *Block {
	return &Block{kind: kind}
}

// newInline allocates an inline node of the given kind.
func newInline(kind InlineKind) *Inline {
	return &Inline{kind: kind}
}
