/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package jsondiff renders a readable unified diff between two JSON
// documents for test failure output. Round-trip tests on metadata records
// produce long single-line JSON; a structural diff of the pretty-printed
// forms pinpoints the field that changed.
package jsondiff

import (
	"bytes"
	"encoding/json"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between two JSON byte slices, each
// pretty-printed first so the diff is line-per-field. Inputs that fail to
// re-indent (not actually JSON) are diffed raw.
func Diff(want, got []byte) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(indent(want)),
		B:        difflib.SplitLines(indent(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return "diff unavailable: " + err.Error()
	}
	return diff
}

// Equal reports whether two JSON byte slices are structurally equal,
// ignoring formatting differences.
func Equal(a, b []byte) bool {
	var va, vb any
	if err := json.Unmarshal(a, &va); err != nil {
		return bytes.Equal(a, b)
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return bytes.Equal(a, b)
	}

	ca, errA := json.Marshal(va)
	cb, errB := json.Marshal(vb)
	if errA != nil || errB != nil {
		return bytes.Equal(a, b)
	}
	return bytes.Equal(ca, cb)
}

func indent(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String() + "\n"
}
