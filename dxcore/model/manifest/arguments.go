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

package manifest

import (
	"encoding/json"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model/rules"
)

// ArgumentType classifies a command-line argument list: game arguments,
// JVM arguments, or the user-customizable JVM defaults. A closed
// vocabulary; unknown tokens fail hard.
type ArgumentType string

// String constants for ArgumentType values.
const (
	// ArgumentTypeGame arguments are passed to the game.
	ArgumentTypeGame ArgumentType = "game"

	// ArgumentTypeJvm arguments are passed to the JVM.
	ArgumentTypeJvm ArgumentType = "jvm"

	// ArgumentTypeDefaultUserJvm are default JVM arguments users can
	// customize.
	ArgumentTypeDefaultUserJvm ArgumentType = "default-user-jvm"
)

// ParseArgumentType converts a textual token into an ArgumentType; unknown
// tokens return a *errors.ParseError.
func ParseArgumentType(s string) (ArgumentType, error) {
	switch s {
	case string(ArgumentTypeGame):
		return ArgumentTypeGame, nil
	case string(ArgumentTypeJvm):
		return ArgumentTypeJvm, nil
	case string(ArgumentTypeDefaultUserJvm):
		return ArgumentTypeDefaultUserJvm, nil
	default:
		return "", &dxerrors.ParseError{Type: "ArgumentType", Value: s}
	}
}

// String returns the canonical token of the ArgumentType.
func (t ArgumentType) String() string {
	return string(t)
}

// Valid reports whether the ArgumentType is one of the defined constants.
func (t ArgumentType) Valid() bool {
	switch t {
	case ArgumentTypeGame, ArgumentTypeJvm, ArgumentTypeDefaultUserJvm:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler so ArgumentType works as a
// JSON map key (VersionInfo.Arguments is keyed by it).
func (t ArgumentType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &dxerrors.MarshalError{Type: "ArgumentType", Value: string(t)}
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for ArgumentType via
// ParseArgumentType; unknown tokens fail hard.
func (t *ArgumentType) UnmarshalText(text []byte) error {
	parsed, err := ParseArgumentType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ArgumentValue is the payload of a conditional argument: either one
// argument string or several. On the wire it is an untagged union, a bare
// JSON string or an array of strings.
type ArgumentValue struct {
	// Single holds the argument when the wire form was one string.
	Single string

	// Many holds the arguments when the wire form was an array. Non-nil
	// Many takes precedence over Single.
	Many []string
}

// Values returns the contained argument strings, one element for the
// single form.
func (v ArgumentValue) Values() []string {
	if v.Many != nil {
		return v.Many
	}
	return []string{v.Single}
}

// MarshalJSON implements json.Marshaler for ArgumentValue, reproducing the
// untagged wire form.
func (v ArgumentValue) MarshalJSON() ([]byte, error) {
	if v.Many != nil {
		return json.Marshal(v.Many)
	}
	return json.Marshal(v.Single)
}

// UnmarshalJSON implements json.Unmarshaler for ArgumentValue, accepting a
// string or an array of strings. Anything else is a structural failure.
func (v *ArgumentValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = ArgumentValue{Single: single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*v = ArgumentValue{Many: many}
		return nil
	}

	return &dxerrors.UnmarshalError{
		Type:   "ArgumentValue",
		Data:   data,
		Reason: "expected a string or an array of strings",
	}
}

// Argument is one command-line argument entry: either an unconditional
// plain string or a ruled entry whose value only applies when its rules
// evaluate to inclusion. On the wire it is an untagged union.
type Argument struct {
	// Rules conditions the argument on the execution context. Nil means
	// the argument is unconditional (the plain-string wire form).
	Rules []rules.Rule `json:"rules,omitempty"`

	// Value is the argument payload.
	Value ArgumentValue `json:"value"`
}

// AppliesTo reports whether the argument should be passed for ctx. An
// unconditional argument always applies; a ruled one follows the standard
// last-match-wins evaluation.
func (a Argument) AppliesTo(ctx rules.ExecutionContext) bool {
	return rules.Evaluate(a.Rules, ctx)
}

// MarshalJSON implements json.Marshaler for Argument: unconditional
// arguments serialize as their bare value (string or array), ruled ones as
// an object.
func (a Argument) MarshalJSON() ([]byte, error) {
	if a.Rules == nil {
		return json.Marshal(a.Value)
	}

	type ruled struct {
		Rules []rules.Rule  `json:"rules"`
		Value ArgumentValue `json:"value"`
	}
	return json.Marshal(ruled{Rules: a.Rules, Value: a.Value})
}

// UnmarshalJSON implements json.Unmarshaler for Argument, accepting the
// bare-string, bare-array and ruled-object wire forms.
func (a *Argument) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*a = Argument{Value: ArgumentValue{Single: plain}}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*a = Argument{Value: ArgumentValue{Many: many}}
		return nil
	}

	var ruled struct {
		Rules []rules.Rule  `json:"rules"`
		Value ArgumentValue `json:"value"`
	}
	if err := json.Unmarshal(data, &ruled); err != nil {
		return &dxerrors.UnmarshalError{
			Type:   "Argument",
			Data:   data,
			Reason: "expected a string, an array of strings, or a ruled argument object: " + err.Error(),
		}
	}

	*a = Argument{Rules: ruled.Rules, Value: ruled.Value}
	return nil
}
