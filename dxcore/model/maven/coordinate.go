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

// Package maven provides the Coordinate value type, the structured
// identifier naming a specific library artifact in the Maven coordinate
// convention used throughout launcher metadata documents.
package maven

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"gopkg.in/yaml.v3"
)

// DefaultExtension is the artifact extension assumed when a coordinate
// string carries no explicit "@ext" suffix. Java library artifacts are jar
// files unless stated otherwise.
const DefaultExtension = "jar"

// Coordinate is a structured Maven-style library identifier, parsed from
// and serialized to the textual form
//
//	group:artifact:version[:classifier][@extension]
//
// as carried by the "name" field of library records. Examples:
//
//	org.lwjgl:lwjgl:3.3.3
//	org.lwjgl:lwjgl:3.3.3:natives-linux
//	net.minecraftforge:forge:1.20.4-49.0.3:universal@zip
//
// All downstream logic (classpath assembly, artifact path construction,
// CAS resolution) assumes a well-formed coordinate, so parsing a malformed
// coordinate string is a hard failure at the point of construction: there
// is no "unknown coordinate" fallback the way there is for OS tokens.
//
// The zero value of Coordinate represents "no coordinate" and fails
// validation; canonical library records always carry a non-zero
// coordinate.
//
// Coordinate implements the model.Model interface. In JSON and YAML it
// serializes as the plain coordinate string, matching the wire format.
type Coordinate struct {
	// Group is the reverse-domain group identifier, for example
	// "org.lwjgl". MUST be non-empty.
	Group string

	// Artifact is the artifact identifier within the group, for example
	// "lwjgl". MUST be non-empty.
	Artifact string

	// Version is the artifact version string, for example "3.3.3".
	// Launcher ecosystems use non-semver versions freely, so Version is
	// treated as an opaque non-empty token.
	Version string

	// Classifier is the optional variant suffix distinguishing artifacts
	// that share the same group:artifact:version, most commonly
	// platform-specific natives such as "natives-windows". Empty means no
	// classifier.
	Classifier string

	// Extension is the optional artifact file extension. Empty means the
	// default ("jar"); it is only serialized when it differs from the
	// default.
	Extension string
}

// Compile-time check that Coordinate implements model.Model.
var _ model.Model = (*Coordinate)(nil)

// ParseCoordinate parses a Maven-style coordinate string into a Coordinate
// value.
//
// The expected input format is "group:artifact:version[:classifier][@extension]":
// two or three colon-separated segments after the group, with an optional
// extension introduced by '@' at the end of the string. Surrounding
// whitespace is not tolerated and no normalization is applied; coordinate
// strings are case-sensitive identifiers.
//
// Examples:
//
//	ParseCoordinate("org.lwjgl:lwjgl:3.3.3")
//	// -> Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.3"}
//
//	ParseCoordinate("org.lwjgl:lwjgl:3.3.3:natives-linux")
//	// -> classifier "natives-linux"
//
//	ParseCoordinate("net.minecraftforge:forge:1.20.4-49.0.3:universal@zip")
//	// -> classifier "universal", extension "zip"
//
// On malformed input (wrong number of segments, empty segments, empty
// extension after '@') ParseCoordinate returns a zero Coordinate and a
// *errors.ParseError. Callers MUST check the error before using the
// returned value.
func ParseCoordinate(s string) (Coordinate, error) {
	body := s
	ext := ""

	if at := strings.LastIndexByte(body, '@'); at >= 0 {
		ext = body[at+1:]
		body = body[:at]
		if ext == "" {
			return Coordinate{}, &dxerrors.ParseError{Type: "Coordinate", Value: s}
		}
	}

	parts := strings.Split(body, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return Coordinate{}, &dxerrors.ParseError{Type: "Coordinate", Value: s}
	}
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, &dxerrors.ParseError{Type: "Coordinate", Value: s}
		}
	}

	c := Coordinate{
		Group:    parts[0],
		Artifact: parts[1],
		Version:  parts[2],
	}
	if len(parts) == 4 {
		c.Classifier = parts[3]
	}
	if ext != DefaultExtension {
		c.Extension = ext
	}

	return c, nil
}

// String returns the canonical textual representation of the Coordinate:
// "group:artifact:version[:classifier][@extension]". The extension suffix
// is included only when it differs from the default "jar", so parsing and
// printing round-trip the common form exactly.
//
// The zero Coordinate prints as "::" fragments and is not a valid wire
// value; callers SHOULD validate before printing into documents.
func (c Coordinate) String() string {
	var b strings.Builder
	b.WriteString(c.Group)
	b.WriteByte(':')
	b.WriteString(c.Artifact)
	b.WriteByte(':')
	b.WriteString(c.Version)
	if c.Classifier != "" {
		b.WriteByte(':')
		b.WriteString(c.Classifier)
	}
	if c.Extension != "" && c.Extension != DefaultExtension {
		b.WriteByte('@')
		b.WriteString(c.Extension)
	}
	return b.String()
}

// Redacted returns the same representation as String. Coordinates are
// public identifiers with no sensitive content, and the canonical form is
// already compact enough for production logs.
func (c Coordinate) Redacted() string {
	return c.String()
}

// TypeName returns "Coordinate", the name of the type for logging and
// debugging.
func (c Coordinate) TypeName() string {
	return "Coordinate"
}

// IsZero reports whether the Coordinate is the zero value, carrying no
// identifier components at all.
func (c Coordinate) IsZero() bool {
	return c == Coordinate{}
}

// Equal reports whether two Coordinates identify the same artifact. The
// comparison treats an empty Extension and the explicit default extension
// as equal, since both denote a jar artifact.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Group == other.Group &&
		c.Artifact == other.Artifact &&
		c.Version == other.Version &&
		c.Classifier == other.Classifier &&
		c.Ext() == other.Ext()
}

// Ext returns the effective artifact extension: the explicit Extension
// field when set, otherwise the default "jar".
func (c Coordinate) Ext() string {
	if c.Extension == "" {
		return DefaultExtension
	}
	return c.Extension
}

// Base returns the coordinate without its version-specific parts, in
// "group:artifact" form. This is the identity under which a library is
// deduplicated when patched definitions override canonical ones.
func (c Coordinate) Base() string {
	return c.Group + ":" + c.Artifact
}

// Path returns the repository-relative path of the artifact in the Maven
// repository layout:
//
//	group/with/slashes/artifact/version/artifact-version[-classifier].ext
//
// For example, "org.lwjgl:lwjgl:3.3.3:natives-linux" yields
// "org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3-natives-linux.jar". Callers join the
// result onto a repository base URL or an on-disk libraries directory.
func (c Coordinate) Path() string {
	file := c.Artifact + "-" + c.Version
	if c.Classifier != "" {
		file += "-" + c.Classifier
	}
	file += "." + c.Ext()

	return strings.ReplaceAll(c.Group, ".", "/") + "/" + c.Artifact + "/" + c.Version + "/" + file
}

// Validate checks that the Coordinate is well-formed: Group, Artifact and
// Version MUST be non-empty and no component may contain the ':' or '@'
// separator characters or whitespace, so that String output always parses
// back to an equal value.
func (c Coordinate) Validate() error {
	if c.Group == "" {
		return &dxerrors.ValidationError{Type: "Coordinate", Field: "Group", Reason: "must not be empty"}
	}
	if c.Artifact == "" {
		return &dxerrors.ValidationError{Type: "Coordinate", Field: "Artifact", Reason: "must not be empty"}
	}
	if c.Version == "" {
		return &dxerrors.ValidationError{Type: "Coordinate", Field: "Version", Reason: "must not be empty"}
	}

	for _, part := range []struct {
		field string
		value string
	}{
		{"Group", c.Group},
		{"Artifact", c.Artifact},
		{"Version", c.Version},
		{"Classifier", c.Classifier},
		{"Extension", c.Extension},
	} {
		if strings.ContainsAny(part.value, ":@ \t\n") {
			return &dxerrors.ValidationError{
				Type:   "Coordinate",
				Field:  part.field,
				Reason: "contains separator or whitespace characters",
				Value:  part.value,
			}
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler for Coordinate.
//
// A valid Coordinate is serialized as its canonical coordinate string (for
// example, "org.lwjgl:lwjgl:3.3.3"), which is the exact wire form of the
// library "name" field. If the Coordinate is invalid, MarshalJSON returns
// the validation error and produces no output.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler for Coordinate.
//
// The JSON value MUST be a string in coordinate form; it is parsed via
// ParseCoordinate and any parse error is returned directly. A malformed
// coordinate is a hard failure per the dxmeta error taxonomy.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Coordinate", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseCoordinate(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Coordinate, emitting the same
// canonical string scalar as the JSON form.
func (c Coordinate) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Coordinate. The YAML value
// is expected to be a scalar string in coordinate form, parsed via
// ParseCoordinate.
func (c *Coordinate) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Coordinate", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseCoordinate(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Coordinate, using the
// same canonical string as String(). This lets Coordinates serve as map
// keys in encoding/json documents.
func (c Coordinate) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Coordinate via
// ParseCoordinate.
func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
