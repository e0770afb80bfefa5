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

// JavaProfile names the Java runtime a game version requires, using the
// kebab-case profile identifiers published in version manifests.
//
// Like Os, JavaProfile is an OPEN enumeration: new runtime profiles appear
// with new Java major versions (delta arrived with Java 21), so an
// unrecognized token is preserved verbatim with Known() == false rather
// than breaking deserialization. Token() is the accessor that fails when
// code needs a concrete, actionable profile.
type JavaProfile string

// Known Java runtime profile tokens.
const (
	// ProfileJreLegacy targets Java 8.
	ProfileJreLegacy JavaProfile = "jre-legacy"

	// ProfileJavaRuntimeAlpha targets Java 16.
	ProfileJavaRuntimeAlpha JavaProfile = "java-runtime-alpha"

	// ProfileJavaRuntimeBeta targets Java 17.
	ProfileJavaRuntimeBeta JavaProfile = "java-runtime-beta"

	// ProfileJavaRuntimeGamma targets Java 17.
	ProfileJavaRuntimeGamma JavaProfile = "java-runtime-gamma"

	// ProfileJavaRuntimeGammaSnapshot targets Java 17 snapshot builds.
	ProfileJavaRuntimeGammaSnapshot JavaProfile = "java-runtime-gamma-snapshot"

	// ProfileJavaRuntimeDelta targets Java 21.
	ProfileJavaRuntimeDelta JavaProfile = "java-runtime-delta"

	// ProfileMinecraftJavaExe targets the bundled Java 14 Windows
	// executable.
	ProfileMinecraftJavaExe JavaProfile = "minecraft-java-exe"
)

// Compile-time check that JavaProfile implements model.Model.
var _ model.Model = (*JavaProfile)(nil)

// ParseJavaProfile converts a textual token into a JavaProfile. It never
// fails; unrecognized tokens are preserved verbatim with Known() == false,
// and the empty string parses to the zero value.
func ParseJavaProfile(s string) JavaProfile {
	return JavaProfile(s)
}

// Known reports whether the JavaProfile is one of the tokens this library
// recognizes. Unknown tokens and the zero value report false.
func (p JavaProfile) Known() bool {
	switch p {
	case ProfileJreLegacy, ProfileJavaRuntimeAlpha, ProfileJavaRuntimeBeta,
		ProfileJavaRuntimeGamma, ProfileJavaRuntimeGammaSnapshot,
		ProfileJavaRuntimeDelta, ProfileMinecraftJavaExe:
		return true
	default:
		return false
	}
}

// Token returns the concrete wire token for a known profile and fails with
// a *errors.ParseError otherwise. Code that selects a runtime to install
// goes through Token; everything else lets unknown profiles flow through.
func (p JavaProfile) Token() (string, error) {
	if !p.Known() {
		return "", &dxerrors.ParseError{Type: "JavaProfile", Value: string(p)}
	}
	return string(p), nil
}

// String returns the raw token of the JavaProfile.
func (p JavaProfile) String() string {
	return string(p)
}

// Redacted returns the same representation as String.
func (p JavaProfile) Redacted() string {
	return p.String()
}

// TypeName returns "JavaProfile", the name of the type for logging and
// debugging.
func (p JavaProfile) TypeName() string {
	return "JavaProfile"
}

// IsZero reports whether the JavaProfile is the zero value, meaning "no
// profile specified".
func (p JavaProfile) IsZero() bool {
	return p == ""
}

// Equal reports whether two JavaProfile values carry the same token.
func (p JavaProfile) Equal(other JavaProfile) bool {
	return p == other
}

// Validate always returns nil; the open-enumeration policy accepts every
// token, known or not.
func (p JavaProfile) Validate() error {
	return nil
}

// MarshalJSON implements json.Marshaler for JavaProfile; unknown tokens
// round-trip unchanged.
func (p JavaProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// UnmarshalJSON implements json.Unmarshaler for JavaProfile, accepting any
// JSON string.
func (p *JavaProfile) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "JavaProfile", Data: data, Reason: err.Error()}
	}
	*p = ParseJavaProfile(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler for JavaProfile.
func (p JavaProfile) MarshalYAML() (any, error) {
	return string(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for JavaProfile.
func (p *JavaProfile) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "JavaProfile", Data: []byte(node.Value), Reason: err.Error()}
	}
	*p = ParseJavaProfile(s)
	return nil
}

// MarshalText implements encoding.TextMarshaler for JavaProfile.
func (p JavaProfile) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JavaProfile.
func (p *JavaProfile) UnmarshalText(text []byte) error {
	*p = ParseJavaProfile(string(text))
	return nil
}
