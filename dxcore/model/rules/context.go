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

package rules

import "fmt"

// ExecutionContext describes the environment a set of rules is evaluated
// against: the host platform plus the launcher feature flags in effect for
// one launch. It is a plain value assembled by the caller; this package
// never inspects the live system except through CurrentOs, which callers
// invoke explicitly.
//
// The zero ExecutionContext is usable: no OS, no version, no architecture,
// no features. Against it, only rules without predicates (or with
// all-false feature expectations) match.
type ExecutionContext struct {
	// Os is the host platform token, usually CurrentOs().
	Os Os

	// OsVersion is the host OS version string that OS rule version
	// patterns are matched against. Empty means unknown, in which case
	// any rule carrying a version pattern does not match.
	OsVersion string

	// Arch is the host architecture string compared exactly against OS
	// rule arch predicates.
	Arch string

	// Features is the set of launcher feature flags in effect, keyed by
	// the Feature* constants. A missing key is equivalent to false. May
	// be nil.
	Features map[string]bool
}

// HostContext returns an ExecutionContext for the current process: the
// host OS token from CurrentOs and the given feature flags. OsVersion and
// Arch are left empty because Go offers no portable way to read them; a
// caller that knows them fills them in on the returned value.
func HostContext(features map[string]bool) ExecutionContext {
	return ExecutionContext{
		Os:       CurrentOs(),
		Features: features,
	}
}

// WithFeature returns a copy of the context with one feature flag set. The
// receiver is not modified; the Features map is copied so contexts can be
// derived freely.
func (c ExecutionContext) WithFeature(name string, enabled bool) ExecutionContext {
	out := c
	out.Features = make(map[string]bool, len(c.Features)+1)
	for k, v := range c.Features {
		out.Features[k] = v
	}
	out.Features[name] = enabled
	return out
}

// String returns a human-readable representation of the context for
// logging.
func (c ExecutionContext) String() string {
	return fmt.Sprintf("ExecutionContext{Os:%s, OsVersion:%q, Arch:%q, Features:%v}",
		c.Os, c.OsVersion, c.Arch, c.Features)
}
