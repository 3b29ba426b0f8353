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

// Package commonmark parses and renders [CommonMark] with optional
// [GitHub Flavored Markdown] extensions.
//
// Parsing runs in two phases. [Parse] first walks the source line by line
// and builds a tree of block nodes (paragraphs, headings, lists, block
// quotes, code blocks, HTML blocks, and — when the table extension is on —
// tables), extracting link reference definitions and footnote definitions
// into side tables as it goes. It then makes a second pass over every
// block that carries raw text (paragraphs, headings, table cells) and
// parses that text into inline nodes (emphasis, links, code spans, and so
// on), consulting the side tables to resolve reference-style links and
// footnote references.
//
// [Render] walks the finished tree and writes HTML.
//
// [CommonMark]: https://commonmark.org/
// [GitHub Flavored Markdown]: https://github.github.com/gfm/
package commonmark
