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

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	defer resetCLI()

	var out bytes.Buffer
	if err := run(strings.NewReader("Hello, **World**!\n"), &out); err != nil {
		t.Fatal(err)
	}
	if want := "<p>Hello, <strong>World</strong>!</p>\n"; out.String() != want {
		t.Errorf("run output = %q; want %q", out.String(), want)
	}
}

func TestRunGFMTaskList(t *testing.T) {
	defer resetCLI()
	cli.GFM = true

	var out bytes.Buffer
	if err := run(strings.NewReader("- [x] done\n"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `type="checkbox"`) {
		t.Errorf("run output missing task-list checkbox markup: %q", out.String())
	}
}

func TestRunFormat(t *testing.T) {
	defer resetCLI()
	cli.Format = true

	var out bytes.Buffer
	if err := run(strings.NewReader("# Title\n"), &out); err != nil {
		t.Fatal(err)
	}
	if want := "# Title\n"; out.String() != want {
		t.Errorf("run output = %q; want %q", out.String(), want)
	}
}

func resetCLI() {
	cli.GFM = false
	cli.Extension = nil
	cli.Smart = false
	cli.TablePreferStyleAttributes = false
	cli.FullInfoString = false
	cli.Unsafe = false
	cli.Safe = false
	cli.Format = false
}
