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

// Command commonmark reads Markdown from stdin and writes rendered HTML
// (or, with --format, reformatted Markdown) to stdout.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/go-md/commonmark"
	"github.com/go-md/commonmark/format"
)

var cli struct {
	GFM                        bool     `help:"Enable the full GitHub Flavored Markdown extension set." name:"gfm"`
	Extension                  []string `help:"Enable a single named extension or option (repeatable)." name:"extension" short:"e"`
	Smart                      bool     `help:"Apply smart punctuation substitution." name:"smart"`
	TablePreferStyleAttributes bool     `help:"Emit style=\"text-align:…\" instead of align=\"…\" on table cells." name:"table-prefer-style-attributes"`
	FullInfoString             bool     `help:"Emit a fenced code block's info string suffix as a data-meta attribute." name:"full-info-string"`
	Unsafe                     bool     `help:"Accepted for compatibility; has no effect. Raw HTML is allowed unless --safe is given." name:"unsafe"`
	Safe                       bool     `help:"Scrub raw HTML and javascript: URLs from the output." name:"safe"`
	Format                     bool     `help:"Write reformatted Markdown instead of HTML." name:"format"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("commonmark"),
		kong.Description("Render CommonMark or GitHub Flavored Markdown from stdin to stdout."),
		kong.UsageOnError(),
	)

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(r io.Reader, w io.Writer) error {
	source, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("commonmark: read input: %w", err)
	}

	extensions := parseOptions()

	doc := commonmark.Parse(string(source), commonmark.ParseOptions{Extensions: extensions})

	if cli.Format {
		return format.Format(w, doc)
	}

	out := commonmark.Render(doc, commonmark.RenderOptions{
		Safe:                       cli.Safe,
		Smart:                      cli.Smart,
		TablePreferStyleAttributes: cli.TablePreferStyleAttributes,
		FullInfoString:             cli.FullInfoString,
		TagFilter:                  extensions[commonmark.ExtTagFilter],
	})
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("commonmark: write output: %w", err)
	}
	return nil
}

// parseOptions builds the extension set from --gfm and any -e flags.
func parseOptions() commonmark.ExtensionSet {
	extensions := commonmark.ExtensionSet{}
	if cli.GFM {
		extensions = commonmark.GFMExtensions()
	}
	for _, name := range cli.Extension {
		switch name {
		case "table-prefer-style-attributes":
			cli.TablePreferStyleAttributes = true
		case "full-info-string":
			cli.FullInfoString = true
		case "smart":
			cli.Smart = true
		default:
			extensions[commonmark.Extension(name)] = true
		}
	}
	return extensions
}
