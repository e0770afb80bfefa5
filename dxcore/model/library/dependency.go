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
	"encoding/json"
	"fmt"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Dependency declares that a version or library group needs (or conflicts
// with) another component, identified by a human-readable group name and a
// component uid.
//
// A dependency may carry at most one version rule, flattened into the
// record on the wire: "equals" pins an exact version (a hard requirement),
// "suggests" names a preferred version the consumer may deviate from. A
// record carrying both is structurally invalid and fails to deserialize.
//
// Dependency implements the model.Model interface.
type Dependency struct {
	// Name is the group name this dependency refers to, for example
	// "lwjgl".
	Name string `json:"name" yaml:"name"`

	// UID is the component uid, usually the Maven group id, for example
	// "org.lwjgl".
	UID string `json:"uid" yaml:"uid"`

	// Equals pins the dependency to exactly this version. Empty means no
	// exact pin. Mutually exclusive with Suggests.
	Equals string `json:"equals,omitempty" yaml:"equals,omitempty"`

	// Suggests names the preferred version without requiring it. Empty
	// means no suggestion. Mutually exclusive with Equals.
	Suggests string `json:"suggests,omitempty" yaml:"suggests,omitempty"`
}

// Compile-time check that Dependency implements model.Model.
var _ model.Model = (*Dependency)(nil)

// Satisfied reports whether the given component version satisfies this
// dependency's version rule.
//
// An "equals" pin requires the versions to be the same: both sides are
// compared as semantic versions when both parse (so "1.2.3" and "v1.2.3"
// agree), falling back to exact string comparison for the non-semver
// version strings launcher ecosystems use freely. A "suggests" rule and
// the absence of any rule are satisfied by every version.
func (d Dependency) Satisfied(version string) bool {
	if d.Equals == "" {
		return true
	}

	want, errW := semver.ParseTolerant(d.Equals)
	got, errG := semver.ParseTolerant(version)
	if errW == nil && errG == nil {
		return want.Equals(got)
	}
	return d.Equals == version
}

// Validate checks that the Dependency names a component and carries at
// most one version rule.
func (d Dependency) Validate() error {
	if d.Name == "" {
		return &dxerrors.ValidationError{Type: "Dependency", Field: "Name", Reason: "must not be empty"}
	}
	if d.UID == "" {
		return &dxerrors.ValidationError{Type: "Dependency", Field: "UID", Reason: "must not be empty"}
	}
	if d.Equals != "" && d.Suggests != "" {
		return &dxerrors.ValidationError{
			Type:   "Dependency",
			Reason: "equals and suggests are mutually exclusive",
		}
	}
	return nil
}

// String returns a complete human-readable representation of the
// dependency, including its version rule if any.
func (d Dependency) String() string {
	switch {
	case d.Equals != "":
		return fmt.Sprintf("Dependency{%s (%s) equals %s}", d.Name, d.UID, d.Equals)
	case d.Suggests != "":
		return fmt.Sprintf("Dependency{%s (%s) suggests %s}", d.Name, d.UID, d.Suggests)
	default:
		return fmt.Sprintf("Dependency{%s (%s)}", d.Name, d.UID)
	}
}

// Redacted returns just the uid, the stable identifier of the dependency.
func (d Dependency) Redacted() string {
	return d.UID
}

// TypeName returns "Dependency", the name of the type for logging and
// debugging.
func (d Dependency) TypeName() string {
	return "Dependency"
}

// IsZero reports whether the Dependency is the zero value.
func (d Dependency) IsZero() bool {
	return d == Dependency{}
}

// Equal reports whether two Dependencies are identical, including their
// version rules.
func (d Dependency) Equal(other Dependency) bool {
	return d == other
}

type dependencyAlias Dependency

// MarshalJSON implements json.Marshaler for Dependency, validating first
// so that a record carrying both version rules never reaches a published
// document.
func (d Dependency) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return json.Marshal((dependencyAlias)(d))
}

// UnmarshalJSON implements json.Unmarshaler for Dependency. A record with
// both "equals" and "suggests" is a structurally invalid document and
// fails hard.
func (d *Dependency) UnmarshalJSON(data []byte) error {
	var aux dependencyAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*d = (Dependency)(aux)
	if err := d.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Dependency is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Dependency with the same
// validity guard as the JSON form.
func (d Dependency) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return (dependencyAlias)(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Dependency.
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	var aux dependencyAlias
	if err := node.Decode(&aux); err != nil {
		return err
	}
	*d = (Dependency)(aux)
	if err := d.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Dependency is invalid: %w", err)
	}
	return nil
}
