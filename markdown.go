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

// Markdown parses source as plain CommonMark and renders it to HTML in a
// single call, applying no GFM extensions.
func Markdown(source string, opts RenderOptions) string {
	doc := Parse(source, ParseOptions{})
	return Render(doc, opts)
}

// GFM parses source with the full default GFM extension set and renders
// it to HTML in a single call.
func GFM(source string, opts RenderOptions) string {
	doc := Parse(source, ParseOptions{Extensions: GFMExtensions()})
	return Render(doc, opts)
}
