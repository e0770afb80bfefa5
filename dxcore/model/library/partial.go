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

package library

import (
	"dirpx.dev/dxmeta/dxcore/model/maven"
	"dirpx.dev/dxmeta/dxcore/model/rules"
)

// Partial is the sparse patch form of a Library: every field is optional,
// including the coordinate. Third-party patch documents carry Partial
// records that Merge overlays onto canonical libraries.
//
// Partial is deliberately a distinct type rather than a Library with
// relaxed rules: keeping the canonical type's invariants (coordinate
// always present) enforceable requires the overlay to live elsewhere, and
// Merge is then the single seam where overlay semantics are defined.
type Partial struct {
	// Downloads overrides or deep-merges into the base's download
	// section; see Merge.
	Downloads *Downloads `json:"downloads,omitempty" yaml:"downloads,omitempty"`

	// Extract replaces the base's extraction rules when present.
	Extract *Extract `json:"extract,omitempty" yaml:"extract,omitempty"`

	// Name replaces the base's coordinate when present.
	Name *maven.Coordinate `json:"name,omitempty" yaml:"name,omitempty"`

	// URL replaces the base's repository URL when present.
	URL *string `json:"url,omitempty" yaml:"url,omitempty"`

	// Natives deep-merges into the base's natives table.
	Natives map[rules.Os]string `json:"natives,omitempty" yaml:"natives,omitempty"`

	// Rules are appended after the base's rules, taking last-match-wins
	// precedence for overlapping contexts.
	Rules []rules.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Checksums replaces the base's checksum list when present.
	Checksums []string `json:"checksums,omitempty" yaml:"checksums,omitempty"`

	// IncludeInClasspath replaces the base's classpath flag when present.
	IncludeInClasspath *bool `json:"includeInClasspath,omitempty" yaml:"includeInClasspath,omitempty"`
}

// IsZero reports whether the Partial overrides nothing.
func (p Partial) IsZero() bool {
	return p.Downloads == nil &&
		p.Extract == nil &&
		p.Name == nil &&
		p.URL == nil &&
		p.Natives == nil &&
		p.Rules == nil &&
		p.Checksums == nil &&
		p.IncludeInClasspath == nil
}

// Merge overlays a sparse patch onto a canonical library and returns the
// derived record. Neither input is modified; map and slice fields of the
// result never share storage with either input where the patch touched
// them.
//
// Per-field policy:
//
//   - Downloads.Artifact: replaced wholesale when the patch carries one.
//   - Downloads.Classifiers and Natives: deep-merged; patch entries
//     overwrite same-keyed base entries, base-only entries survive.
//   - Rules: appended after the base's rules, so patch rules win for
//     overlapping contexts under last-match-wins evaluation.
//   - Every other field: replaced when present in the patch, unchanged
//     otherwise.
//
// The result always has Patched == true, even for an empty patch: passing
// through Merge is itself the provenance being recorded. Merge never
// fails.
func Merge(partial Partial, base Library) Library {
	out := base

	if partial.Downloads != nil {
		if base.Downloads != nil {
			merged := base.Downloads.Clone()
			if partial.Downloads.Artifact != nil {
				artifact := *partial.Downloads.Artifact
				merged.Artifact = &artifact
			}
			if partial.Downloads.Classifiers != nil {
				if merged.Classifiers == nil {
					merged.Classifiers = make(map[string]Download, len(partial.Downloads.Classifiers))
				}
				for k, v := range partial.Downloads.Classifiers {
					merged.Classifiers[k] = v
				}
			}
			out.Downloads = &merged
		} else {
			cloned := partial.Downloads.Clone()
			out.Downloads = &cloned
		}
	}

	if partial.Extract != nil {
		extract := *partial.Extract
		out.Extract = &extract
	}
	if partial.Name != nil {
		out.Name = *partial.Name
	}
	if partial.URL != nil {
		out.URL = *partial.URL
	}

	if partial.Natives != nil {
		merged := make(map[rules.Os]string, len(base.Natives)+len(partial.Natives))
		for k, v := range base.Natives {
			merged[k] = v
		}
		for k, v := range partial.Natives {
			merged[k] = v
		}
		out.Natives = merged
	}

	if partial.Rules != nil {
		merged := make([]rules.Rule, 0, len(base.Rules)+len(partial.Rules))
		merged = append(merged, base.Rules...)
		merged = append(merged, partial.Rules...)
		out.Rules = merged
	}

	if partial.Checksums != nil {
		out.Checksums = append([]string(nil), partial.Checksums...)
	}
	if partial.IncludeInClasspath != nil {
		out.IncludeInClasspath = *partial.IncludeInClasspath
	}

	out.Patched = true
	return out
}
