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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSoftBreakBehavior(t *testing.T) {
	tests := []struct {
		name      string
		softBreak string
		input     string
		want      string
	}{
		{
			name:      "DefaultLF",
			softBreak: "",
			input:     "Hello\nWorld!\n",
			want:      "<p>Hello\nWorld!</p>\n",
		},
		{
			name:      "Space",
			softBreak: " ",
			input:     "Hello\nWorld!\n",
			want:      "<p>Hello World!</p>\n",
		},
		{
			name:      "Harden",
			softBreak: "<br>\n",
			input:     "Hello\nWorld!\n",
			want:      "<p>Hello<br>\nWorld!</p>\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc := Parse(test.input, ParseOptions{})
			got := Render(doc, RenderOptions{SoftBreak: test.softBreak})
			if got != test.want {
				t.Errorf("output = %q; want %q", got, test.want)
			}
		})
	}
}

func TestSafeRendering(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "NoRaw",
			input: "Hello World!\n",
			want:  "<p>Hello World!</p>\n",
		},
		{
			name:  "MarkdownStrong",
			input: "Hello **World**!\n",
			want:  "<p>Hello <strong>World</strong>!</p>\n",
		},
		{
			name:  "HTMLInlineBlocked",
			input: "Hello <strong>World</strong>!\n",
			want:  "<p>Hello World!</p>\n",
		},
		{
			name:  "HTMLBlockBlocked",
			input: "<table>\n<tr><td>Hello</td></tr>\n</table>\n",
			want:  "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc := Parse(test.input, ParseOptions{})
			got := Render(doc, RenderOptions{Safe: true})
			if got != test.want {
				t.Errorf("output = %q; want %q", got, test.want)
			}
		})
	}
}

func TestTagFilter(t *testing.T) {
	const input = "<strong> <title> <style> <xmp> <XMP> <em>\n"

	doc := Parse(input, ParseOptions{Extensions: GFMExtensions()})

	filtered := Render(doc, RenderOptions{TagFilter: true})
	for _, tag := range []string{"title", "style", "xmp", "XMP"} {
		if !strings.Contains(filtered, "&lt;"+tag+">") {
			t.Errorf("TagFilter output is missing escaped <%s>: %s", tag, filtered)
		}
	}
	if !strings.Contains(filtered, "<strong>") {
		t.Errorf("TagFilter output unexpectedly filtered allowed tag <strong>: %s", filtered)
	}

	unfiltered := Render(doc, RenderOptions{TagFilter: false})
	if !strings.Contains(unfiltered, "<title>") {
		t.Errorf("unfiltered output unexpectedly escaped <title>: %s", unfiltered)
	}
}

func BenchmarkRenderHTML(b *testing.B) {
	b.Run("Spec", func(b *testing.B) {
		testsuite := loadTestSuite(b, "spec-0.30.json")
		var input string
		for i, test := range testsuite {
			if i > 0 {
				input += "\n\n"
			}
			input += test.Markdown
		}
		doc := Parse(input, ParseOptions{})
		b.ResetTimer()
		b.SetBytes(int64(len(input)))
		b.ReportMetric(float64(len(testsuite)), "examples/op")

		for i := 0; i < b.N; i++ {
			io.WriteString(io.Discard, Render(doc, RenderOptions{}))
		}
	})

	b.Run("Goldmark", func(b *testing.B) {
		input, err := os.ReadFile(filepath.Join("testdata", "goldmark_bench.md"))
		if err != nil {
			b.Skip(err)
		}
		doc := Parse(string(input), ParseOptions{})
		b.ResetTimer()
		b.SetBytes(int64(len(input)))

		for i := 0; i < b.N; i++ {
			io.WriteString(io.Discard, Render(doc, RenderOptions{}))
		}
	})
}
