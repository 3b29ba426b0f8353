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

package format

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-md/commonmark"
	"github.com/go-md/commonmark/internal/normhtml"
)

var fuzzSeeds = []string{
	"Hello, **World**!\n",
	"# Title\n\nSome *text* with `code` and a [link](https://example.com).\n\n- one\n- two\n  - nested\n",
	"> quoted\n> paragraph\n\n1. first\n2. second\n",
	"```go\nfunc main() {}\n```\n",
}

func FuzzFormat(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, markdown string) {
		doc := commonmark.Parse(markdown, commonmark.ParseOptions{})
		originalHTML := commonmark.Render(doc, commonmark.RenderOptions{})

		got := new(bytes.Buffer)
		if err := Format(got, doc); err != nil {
			t.Error("Format #1:", err)
		}

		formattedDoc := commonmark.Parse(got.String(), commonmark.ParseOptions{})
		formattedHTML := commonmark.Render(formattedDoc, commonmark.RenderOptions{})

		diff := cmp.Diff(string(normhtml.NormalizeHTML([]byte(originalHTML))), string(normhtml.NormalizeHTML([]byte(formattedHTML))))
		if diff != "" {
			t.Skipf("Reformatting changed semantics. Original:\n%s\nReformatting:\n%s\nHTML diff (-want +got):\n%s", markdown, got, diff)
		}

		reformatted := new(bytes.Buffer)
		if err := Format(reformatted, formattedDoc); err != nil {
			t.Error("Format #2:", err)
		}
		if diff := cmp.Diff(got.String(), reformatted.String()); diff != "" {
			t.Errorf("Format not idempotent (-first +second):\n%s", diff)
		}
	})
}

func TestFormatGFMSeeds(t *testing.T) {
	for _, markdown := range fuzzSeeds {
		doc := commonmark.Parse(markdown, commonmark.ParseOptions{Extensions: commonmark.GFMExtensions()})
		var buf bytes.Buffer
		if err := Format(&buf, doc); err != nil {
			t.Errorf("Format(%q): %v", markdown, err)
		}
	}
}
