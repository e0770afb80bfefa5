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

import "regexp"

// VersionMatcher decides whether an OS rule's version pattern matches the
// host's OS version string. It is a pluggable seam: the metadata format
// does not pin a pattern language for version predicates, so callers with
// different compatibility needs can substitute their own matcher via
// EvaluateWith.
//
// A matcher MUST be total: it returns a boolean for every input and never
// panics, because rule evaluation itself never fails.
type VersionMatcher func(pattern, hostVersion string) bool

// DefaultVersionMatcher treats the pattern as a Go regular expression and
// reports whether it matches anywhere in hostVersion. This is the behavior
// the dominant metadata producers assume (patterns like "^10\\." appear in
// published documents).
//
// A pattern that does not compile yields a non-match rather than an error:
// a rule carrying a broken pattern simply never applies, which keeps
// evaluation total and means one malformed rule cannot poison a whole
// document.
func DefaultVersionMatcher(pattern, hostVersion string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(hostVersion)
}

// Evaluate folds a rule list into a single inclusion decision for ctx
// using DefaultVersionMatcher. See EvaluateWith for the semantics.
func Evaluate(rules []Rule, ctx ExecutionContext) bool {
	return EvaluateWith(rules, ctx, DefaultVersionMatcher)
}

// EvaluateWith folds a rule list into a single inclusion decision for ctx,
// using match for OS version patterns.
//
// The semantics are last-match-wins over a closed-by-default fold:
//
//   - An empty (or nil) rule list means "unconditional": the artifact is
//     included, and EvaluateWith returns true.
//   - A non-empty list starts from false. Rules are visited in document
//     order; each rule whose predicates match the context overwrites the
//     running decision with its action (allow sets true, disallow sets
//     false). The final value is the decision.
//
// Consequences worth spelling out: a non-empty list in which no rule
// matches yields false, so attaching any rule at all flips the default
// from include to exclude; and when several rules match, only the LAST
// matching rule's action survives, which is how documents layer a broad
// allow with narrow platform-specific disallows (or the reverse).
//
// EvaluateWith never fails. Rules with malformed actions count as
// disallow when they match (see Rule.Allows).
func EvaluateWith(rules []Rule, ctx ExecutionContext, match VersionMatcher) bool {
	if len(rules) == 0 {
		return true
	}

	allowed := false
	for _, rule := range rules {
		if rule.Matches(ctx, match) {
			allowed = rule.Allows()
		}
	}
	return allowed
}
