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

package commonmark_test

import (
	"fmt"

	"github.com/go-md/commonmark"
)

func Example() {
	fmt.Print(commonmark.Markdown("Hello, **World**!\n", commonmark.RenderOptions{}))
	// Output:
	// <p>Hello, <strong>World</strong>!</p>
}

func ExampleParse() {
	doc := commonmark.Parse(
		"Hello, [World][]!\n\n[World]: https://www.example.com/\n",
		commonmark.ParseOptions{},
	)
	fmt.Print(commonmark.Render(doc, commonmark.RenderOptions{}))
	// Output:
	// <p>Hello, <a href="https://www.example.com/">World</a>!</p>
}

func ExampleGFM() {
	fmt.Print(commonmark.GFM("- [x] done\n- [ ] not done\n", commonmark.RenderOptions{}))
	// Output:
	// <ul>
	// <li><input checked="" disabled="" type="checkbox"> done</li>
	// <li><input disabled="" type="checkbox"> not done</li>
	// </ul>
}
