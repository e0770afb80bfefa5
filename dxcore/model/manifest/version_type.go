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
	"dirpx.dev/dxmeta/dxcore/model"
	"gopkg.in/yaml.v3"
)

// VersionType classifies a game version: stable release, experimental
// snapshot, or one of the pre-release historical eras.
//
// VersionType is a CLOSED enumeration. The set of version types has been
// stable for over a decade, and a token outside it signals a document from
// an incompatible schema revision rather than organic growth, so an
// unknown token is a hard unmarshal failure.
type VersionType string

// String constants for VersionType values, serialized exactly as written.
const (
	// TypeRelease is a major version, stable for all players.
	TypeRelease VersionType = "release"

	// TypeSnapshot is an experimental version used for feature previews
	// and beta testing.
	TypeSnapshot VersionType = "snapshot"

	// TypeOldAlpha covers the oldest versions, before the game was
	// released.
	TypeOldAlpha VersionType = "old_alpha"

	// TypeOldBeta covers early versions of the game.
	TypeOldBeta VersionType = "old_beta"
)

// Compile-time check that VersionType implements model.Model.
var _ model.Model = (*VersionType)(nil)

// ParseVersionType converts a textual token into a VersionType value. Only
// the exact lowercase tokens are accepted; anything else returns a
// *errors.ParseError.
func ParseVersionType(s string) (VersionType, error) {
	switch s {
	case string(TypeRelease):
		return TypeRelease, nil
	case string(TypeSnapshot):
		return TypeSnapshot, nil
	case string(TypeOldAlpha):
		return TypeOldAlpha, nil
	case string(TypeOldBeta):
		return TypeOldBeta, nil
	default:
		return "", &dxerrors.ParseError{Type: "VersionType", Value: s}
	}
}

// String returns the canonical token of the VersionType.
func (t VersionType) String() string {
	return string(t)
}

// Redacted returns the same representation as String. Version types carry
// no sensitive information.
func (t VersionType) Redacted() string {
	return t.String()
}

// TypeName returns "VersionType", the name of the type for logging and
// debugging.
func (t VersionType) TypeName() string {
	return "VersionType"
}

// IsZero reports whether the VersionType is the zero value.
func (t VersionType) IsZero() bool {
	return t == ""
}

// Valid reports whether the VersionType is one of the defined constants.
func (t VersionType) Valid() bool {
	switch t {
	case TypeRelease, TypeSnapshot, TypeOldAlpha, TypeOldBeta:
		return true
	default:
		return false
	}
}

// Equal reports whether two VersionType values are the same constant.
func (t VersionType) Equal(other VersionType) bool {
	return t == other
}

// Validate returns nil for the defined constants and a
// *errors.ValidationError for anything else, including the zero value.
func (t VersionType) Validate() error {
	if !t.Valid() {
		return &dxerrors.ValidationError{
			Type:   "VersionType",
			Reason: "must be one of \"release\", \"snapshot\", \"old_alpha\", \"old_beta\"",
			Value:  string(t),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for VersionType; an invalid value
// returns a *errors.MarshalError.
func (t VersionType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &dxerrors.MarshalError{Type: "VersionType", Value: string(t)}
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON implements json.Unmarshaler for VersionType. Unrecognized
// tokens are a hard failure, returned as the underlying *errors.ParseError.
func (t *VersionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "VersionType", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseVersionType(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for VersionType with the same
// validity guard as the JSON form.
func (t VersionType) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, &dxerrors.MarshalError{Type: "VersionType", Value: string(t)}
	}
	return string(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for VersionType via
// ParseVersionType; unknown tokens fail hard.
func (t *VersionType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "VersionType", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseVersionType(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for VersionType.
func (t VersionType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &dxerrors.MarshalError{Type: "VersionType", Value: string(t)}
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for VersionType via
// ParseVersionType.
func (t *VersionType) UnmarshalText(text []byte) error {
	parsed, err := ParseVersionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
