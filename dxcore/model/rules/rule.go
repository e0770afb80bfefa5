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

import (
	"encoding/json"
	"fmt"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"gopkg.in/yaml.v3"
)

// OsRule is the operating-system predicate a Rule may carry. Every present
// field must match the execution context for the predicate to match; absent
// fields are not checked.
//
// Name compares exactly against the context's Os token. Arch compares
// exactly against the context's architecture string, with no wildcard
// expansion. Version is a pattern matched against the context's host OS
// version string by the evaluator's VersionMatcher (a regular expression
// under the default matcher); it is stored here as an opaque string.
//
// The zero value matches every context and is equivalent to an absent OS
// predicate.
type OsRule struct {
	// Name is the OS token the context must equal, or empty for "any OS".
	Name Os `json:"name,omitempty" yaml:"name,omitempty"`

	// Version is the pattern the context's host OS version must match, or
	// empty for "any version".
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Arch is the architecture string the context must equal, or empty
	// for "any architecture".
	Arch string `json:"arch,omitempty" yaml:"arch,omitempty"`
}

// IsZero reports whether the OsRule carries no predicates at all.
func (r OsRule) IsZero() bool {
	return r == OsRule{}
}

// Matches reports whether every present predicate of the OsRule holds for
// ctx, using match to compare the version pattern against the context's
// host version string. An OsRule with no predicates matches every context.
func (r OsRule) Matches(ctx ExecutionContext, match VersionMatcher) bool {
	if !r.Name.IsZero() && r.Name != ctx.Os {
		return false
	}
	if r.Version != "" && !match(r.Version, ctx.OsVersion) {
		return false
	}
	if r.Arch != "" && r.Arch != ctx.Arch {
		return false
	}
	return true
}

// Validate always returns nil: every combination of OsRule fields is
// meaningful, including the empty one.
func (r OsRule) Validate() error {
	return nil
}

// Feature flag names checked by FeatureRule predicates. These are the
// exact keys callers put into ExecutionContext.Features.
const (
	FeatureIsDemoUser              = "is_demo_user"
	FeatureHasCustomResolution     = "has_custom_resolution"
	FeatureHasQuickPlaysSupport    = "has_quick_plays_support"
	FeatureIsQuickPlaySingleplayer = "is_quick_play_singleplayer"
	FeatureIsQuickPlayMultiplayer  = "is_quick_play_multiplayer"
	FeatureIsQuickPlayRealms       = "is_quick_play_realms"
)

// FeatureRule is the launcher-feature predicate a Rule may carry. Each
// field is an optional expectation about one feature flag: nil means the
// flag is not checked, a non-nil value means the flag's effective state in
// the context (present-and-true versus absent-or-false) must equal it.
//
// The predicate set is fixed by the metadata format; documents do not
// invent new feature names inside feature rules.
type FeatureRule struct {
	// IsDemoUser expects whether the player is in demo mode.
	IsDemoUser *bool `json:"is_demo_user,omitempty" yaml:"is_demo_user,omitempty"`

	// HasCustomResolution expects whether a custom window resolution is
	// configured.
	HasCustomResolution *bool `json:"has_custom_resolution,omitempty" yaml:"has_custom_resolution,omitempty"`

	// HasQuickPlaysSupport expects whether the launcher supports quick
	// play.
	HasQuickPlaysSupport *bool `json:"has_quick_plays_support,omitempty" yaml:"has_quick_plays_support,omitempty"`

	// IsQuickPlaySingleplayer expects whether the instance is being
	// launched straight into a singleplayer world.
	IsQuickPlaySingleplayer *bool `json:"is_quick_play_singleplayer,omitempty" yaml:"is_quick_play_singleplayer,omitempty"`

	// IsQuickPlayMultiplayer expects whether the instance is being
	// launched straight onto a multiplayer server.
	IsQuickPlayMultiplayer *bool `json:"is_quick_play_multiplayer,omitempty" yaml:"is_quick_play_multiplayer,omitempty"`

	// IsQuickPlayRealms expects whether the instance is being launched
	// straight into a realms world.
	IsQuickPlayRealms *bool `json:"is_quick_play_realms,omitempty" yaml:"is_quick_play_realms,omitempty"`
}

// IsZero reports whether the FeatureRule carries no predicates at all.
func (r FeatureRule) IsZero() bool {
	return r == FeatureRule{}
}

// Matches reports whether every present predicate of the FeatureRule holds
// for the given feature flag set. A flag absent from the set counts as
// false, so a predicate of false matches both "explicitly disabled" and
// "never mentioned".
func (r FeatureRule) Matches(features map[string]bool) bool {
	for _, p := range []struct {
		key  string
		want *bool
	}{
		{FeatureIsDemoUser, r.IsDemoUser},
		{FeatureHasCustomResolution, r.HasCustomResolution},
		{FeatureHasQuickPlaysSupport, r.HasQuickPlaysSupport},
		{FeatureIsQuickPlaySingleplayer, r.IsQuickPlaySingleplayer},
		{FeatureIsQuickPlayMultiplayer, r.IsQuickPlayMultiplayer},
		{FeatureIsQuickPlayRealms, r.IsQuickPlayRealms},
	} {
		if p.want != nil && features[p.key] != *p.want {
			return false
		}
	}
	return true
}

// Validate always returns nil: every combination of optional expectations
// is meaningful.
func (r FeatureRule) Validate() error {
	return nil
}

// Rule is one conditional-inclusion rule attached to a library, argument
// or download. A rule carries an action (allow or disallow) and up to two
// predicates; it matches a context when every present predicate matches,
// and a rule with no predicates matches unconditionally.
//
// Rules are evaluated in document order with last-match-wins semantics by
// Evaluate; a single Rule in isolation decides nothing.
//
// Rule implements the model.Model interface.
type Rule struct {
	// Action is the decision this rule contributes when it matches.
	// Required.
	Action RuleAction `json:"action" yaml:"action"`

	// Os is the optional operating-system predicate.
	Os *OsRule `json:"os,omitempty" yaml:"os,omitempty"`

	// Features is the optional launcher-feature predicate.
	Features *FeatureRule `json:"features,omitempty" yaml:"features,omitempty"`
}

// Compile-time check that Rule implements model.Model.
var _ model.Model = (*Rule)(nil)

// Matches reports whether the rule's predicates hold for ctx, using match
// for version patterns. A rule with neither an OS nor a feature predicate
// matches every context: such rules are how documents express "allow (or
// disallow) by default" at the head of a rule list.
//
// Matches never fails; a contradictory or odd rule still yields a boolean.
func (r Rule) Matches(ctx ExecutionContext, match VersionMatcher) bool {
	if r.Os != nil && !r.Os.Matches(ctx, match) {
		return false
	}
	if r.Features != nil && !r.Features.Matches(ctx.Features) {
		return false
	}
	return true
}

// Allows reports whether this rule's action is ActionAllow. Used by the
// evaluator fold; anything other than an explicit allow (including a
// malformed action) counts as disallow, so broken data fails closed.
func (r Rule) Allows() bool {
	return r.Action == ActionAllow
}

// Validate checks that the rule carries a valid action. The predicates are
// unconstrained (see OsRule.Validate and FeatureRule.Validate).
func (r Rule) Validate() error {
	if err := r.Action.Validate(); err != nil {
		return &dxerrors.ValidationError{
			Type:   "Rule",
			Field:  "Action",
			Reason: "must be \"allow\" or \"disallow\"",
			Value:  string(r.Action),
		}
	}
	return nil
}

// String returns a complete human-readable representation of the rule,
// including which predicates are present.
func (r Rule) String() string {
	return fmt.Sprintf("Rule{Action:%s, Os:%v, Features:%v}", r.Action, r.Os, r.Features)
}

// Redacted returns a compact representation: the action plus one-letter
// markers for the present predicates ("o" for an OS predicate, "f" for a
// feature predicate). Example: "allow[of]".
func (r Rule) Redacted() string {
	marks := ""
	if r.Os != nil {
		marks += "o"
	}
	if r.Features != nil {
		marks += "f"
	}
	return fmt.Sprintf("%s[%s]", r.Action, marks)
}

// TypeName returns "Rule", the name of the type for logging and debugging.
func (r Rule) TypeName() string {
	return "Rule"
}

// IsZero reports whether the Rule is the zero value: no action and no
// predicates.
func (r Rule) IsZero() bool {
	return r.Action.IsZero() && r.Os == nil && r.Features == nil
}

// MarshalJSON implements json.Marshaler for Rule, validating first so that
// a rule without an action never reaches a published document.
func (r Rule) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type alias Rule
	return json.Marshal((alias)(r))
}

// UnmarshalJSON implements json.Unmarshaler for Rule. An unknown action
// token is a hard failure (see RuleAction); everything else decodes
// structurally.
func (r *Rule) UnmarshalJSON(data []byte) error {
	type alias Rule
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Rule is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Rule with the same validity
// guard as the JSON form.
func (r Rule) MarshalYAML() (any, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type alias Rule
	return (alias)(r), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Rule.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	type alias Rule
	if err := node.Decode((*alias)(r)); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Rule is invalid: %w", err)
	}
	return nil
}
