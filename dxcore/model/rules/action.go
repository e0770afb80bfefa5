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

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"gopkg.in/yaml.v3"
)

// RuleAction is the decision a matching Rule contributes to the inclusion
// fold: allow or disallow.
//
// Unlike Os, RuleAction is a CLOSED enumeration. An unrecognized action
// token does not mean "a platform we have not heard of"; it means the
// document speaks a newer, incompatible revision of the rule schema whose
// semantics this library cannot honor. Silently skipping such a rule could
// invert an inclusion decision, so an unknown action is a hard unmarshal
// failure, propagated rather than swallowed.
//
// The zero value (empty string) means "no action" and fails validation;
// every well-formed rule carries an explicit action.
type RuleAction string

// String constants for RuleAction values. These serialize exactly as
// written and are a bit-exact contract with the metadata ecosystem.
const (
	// ActionAllow includes the artifact when the rule matches.
	ActionAllow RuleAction = "allow"

	// ActionDisallow excludes the artifact when the rule matches.
	ActionDisallow RuleAction = "disallow"
)

// Compile-time check that RuleAction implements model.Model.
var _ model.Model = (*RuleAction)(nil)

// ParseRuleAction converts a textual token into a RuleAction value.
//
// Only the exact lowercase tokens "allow" and "disallow" are accepted; any
// other input returns a *errors.ParseError. The vocabulary is
// case-sensitive because the wire format is machine-generated, never
// hand-typed.
func ParseRuleAction(s string) (RuleAction, error) {
	switch s {
	case string(ActionAllow):
		return ActionAllow, nil
	case string(ActionDisallow):
		return ActionDisallow, nil
	default:
		return "", &dxerrors.ParseError{Type: "RuleAction", Value: s}
	}
}

// String returns the canonical token of the RuleAction ("allow" or
// "disallow"); invalid values print their raw underlying string.
func (a RuleAction) String() string {
	return string(a)
}

// Redacted returns the same representation as String. Rule actions carry
// no sensitive information.
func (a RuleAction) Redacted() string {
	return a.String()
}

// TypeName returns "RuleAction", the name of the type for logging and
// debugging.
func (a RuleAction) TypeName() string {
	return "RuleAction"
}

// IsZero reports whether the RuleAction is the zero value (no action
// specified).
func (a RuleAction) IsZero() bool {
	return a == ""
}

// Valid reports whether the RuleAction is one of the defined constants.
// Values created via casts or left at their zero value report false.
func (a RuleAction) Valid() bool {
	return a == ActionAllow || a == ActionDisallow
}

// Equal reports whether two RuleAction values are the same constant.
func (a RuleAction) Equal(other RuleAction) bool {
	return a == other
}

// Validate returns nil for the defined constants and a *errors.ValidationError
// for anything else, including the zero value.
func (a RuleAction) Validate() error {
	if !a.Valid() {
		return &dxerrors.ValidationError{
			Type:   "RuleAction",
			Reason: "must be \"allow\" or \"disallow\"",
			Value:  string(a),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for RuleAction. A valid action
// serializes as its token string; an invalid value returns a
// *errors.MarshalError so that broken rules never reach published
// documents.
func (a RuleAction) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, &dxerrors.MarshalError{Type: "RuleAction", Value: string(a)}
	}
	return json.Marshal(string(a))
}

// UnmarshalJSON implements json.Unmarshaler for RuleAction. Unrecognized
// tokens are a hard failure (incompatible schema revision), returned as
// the underlying *errors.ParseError.
func (a *RuleAction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "RuleAction", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseRuleAction(s)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for RuleAction with the same
// validity guard as the JSON form.
func (a RuleAction) MarshalYAML() (any, error) {
	if !a.Valid() {
		return nil, &dxerrors.MarshalError{Type: "RuleAction", Value: string(a)}
	}
	return string(a), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for RuleAction via
// ParseRuleAction; unknown tokens fail hard.
func (a *RuleAction) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "RuleAction", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseRuleAction(s)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for RuleAction.
func (a RuleAction) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &dxerrors.MarshalError{Type: "RuleAction", Value: string(a)}
	}
	return []byte(a), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for RuleAction via
// ParseRuleAction.
func (a *RuleAction) UnmarshalText(text []byte) error {
	parsed, err := ParseRuleAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
