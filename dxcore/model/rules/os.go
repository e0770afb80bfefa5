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
	"runtime"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Os identifies an operating system / architecture combination as named by
// launcher metadata documents. The wire representation is a kebab-case
// token such as "osx-arm64" or "linux".
//
// Os is an OPEN enumeration: the metadata format gains new platform
// identifiers over time (osx-arm64 and windows-arm64 were both added years
// after the format was first published), so an unrecognized token MUST NOT
// break deserialization. Any token outside the known set is preserved
// verbatim in the Os value and reports Known() == false; it round-trips
// through serialization unchanged. Code that needs a concrete, actionable
// platform calls Token(), which fails on unknown values instead of
// guessing.
//
// The zero value (empty string) means "no OS specified" and is used by
// optional fields such as OsRule.Name; it is valid and distinct from an
// unknown token.
//
// Os implements the model.Model interface. Because the underlying type is
// a string kind, Os values also work directly as JSON and YAML map keys
// (the natives table of a library is keyed by Os).
type Os string

// Known operating system tokens. These names form the stable external
// representation of Os and are a bit-exact contract with the launcher
// metadata ecosystem; changing them is a breaking change for every
// consumer of published documents.
const (
	// OsOsx is macOS on x86-64.
	OsOsx Os = "osx"

	// OsOsxArm64 is macOS on Apple silicon.
	OsOsxArm64 Os = "osx-arm64"

	// OsWindows is Windows on x86 or x86-64.
	OsWindows Os = "windows"

	// OsWindowsArm64 is Windows on ARM64.
	OsWindowsArm64 Os = "windows-arm64"

	// OsLinux is Linux on x86 or x86-64, and its derivatives.
	OsLinux Os = "linux"

	// OsLinuxArm64 is Linux on ARM64.
	OsLinuxArm64 Os = "linux-arm64"

	// OsLinuxArm32 is Linux on 32-bit ARM.
	OsLinuxArm32 Os = "linux-arm32"
)

// Compile-time check that Os implements model.Model.
var _ model.Model = (*Os)(nil)

// ParseOs converts a textual token into an Os value.
//
// ParseOs never fails: recognized tokens map to the corresponding
// constant, and any other non-empty token is preserved verbatim as an
// unknown Os (Known() == false). This is deliberate; the format is known
// to evolve with new platform identifiers, and a document mentioning a
// platform this library predates is still a valid document. The empty
// string parses to the zero value, meaning "no OS specified".
func ParseOs(s string) Os {
	return Os(s)
}

// CurrentOs returns the Os token describing the platform this process is
// running on, derived from the Go runtime's GOOS and GOARCH.
//
// Callers use it to build an ExecutionContext for the host machine:
//
//	ctx := rules.ExecutionContext{Os: rules.CurrentOs()}
//
// Combinations the metadata ecosystem has no token for (for example,
// linux/riscv64) are returned as a combined "goos-goarch" token with
// Known() == false, so rule evaluation degrades to "no OS rule matches"
// rather than mis-matching a different platform.
func CurrentOs() Os {
	switch runtime.GOOS {
	case "darwin":
		switch runtime.GOARCH {
		case "arm64":
			return OsOsxArm64
		case "amd64":
			return OsOsx
		}
	case "windows":
		switch runtime.GOARCH {
		case "arm64":
			return OsWindowsArm64
		case "amd64", "386":
			return OsWindows
		}
	case "linux":
		switch runtime.GOARCH {
		case "arm64":
			return OsLinuxArm64
		case "arm":
			return OsLinuxArm32
		case "amd64", "386":
			return OsLinux
		}
	}
	return Os(runtime.GOOS + "-" + runtime.GOARCH)
}

// Known reports whether the Os is one of the tokens this library
// recognizes as a concrete platform. Unknown tokens (and the zero value)
// report false.
//
// Known is the guard for code that branches on platform identity; rule
// matching does not need it, because an unknown Os simply never equals a
// known rule token.
func (o Os) Known() bool {
	switch o {
	case OsOsx, OsOsxArm64, OsWindows, OsWindowsArm64, OsLinux, OsLinuxArm64, OsLinuxArm32:
		return true
	default:
		return false
	}
}

// Token returns the concrete wire token for a known Os. It fails with a
// *errors.ParseError when the Os is unknown or unset, which is the single
// seam where "we met a platform we do not understand" surfaces as an
// error; everywhere else unknown values flow through harmlessly.
func (o Os) Token() (string, error) {
	if !o.Known() {
		return "", &dxerrors.ParseError{Type: "Os", Value: string(o)}
	}
	return string(o), nil
}

// String returns the raw token of the Os value, which for known values is
// the canonical wire representation. Unknown values print their preserved
// raw token; the zero value prints as an empty string.
func (o Os) String() string {
	return string(o)
}

// Redacted returns the same representation as String. OS tokens carry no
// sensitive information.
func (o Os) Redacted() string {
	return o.String()
}

// TypeName returns "Os", the name of the type for logging and debugging.
func (o Os) TypeName() string {
	return "Os"
}

// IsZero reports whether the Os is the zero value, meaning "no OS
// specified". An unknown but non-empty token is NOT zero.
func (o Os) IsZero() bool {
	return o == ""
}

// Equal reports whether two Os values carry the same token. Unknown
// tokens compare by their preserved raw string, so two documents naming
// the same future platform agree with each other.
func (o Os) Equal(other Os) bool {
	return o == other
}

// Validate always returns nil: every Os value, including unknown tokens
// and the zero value, is valid by design. The open-enumeration policy
// would be defeated by a validator that rejected tokens it has not heard
// of.
func (o Os) Validate() error {
	return nil
}

// MarshalJSON implements json.Marshaler for Os, emitting the raw token as
// a JSON string. Unknown tokens round-trip unchanged.
func (o Os) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(o))
}

// UnmarshalJSON implements json.Unmarshaler for Os. Any JSON string is
// accepted; unrecognized tokens are preserved rather than rejected. A
// non-string JSON value is a structural failure and returns an
// *errors.UnmarshalError.
func (o *Os) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Os", Data: data, Reason: err.Error()}
	}
	*o = ParseOs(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Os, emitting the raw token as
// a YAML scalar.
func (o Os) MarshalYAML() (any, error) {
	return string(o), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Os, accepting any scalar
// string with the same open-enumeration semantics as UnmarshalJSON.
func (o *Os) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Os", Data: []byte(node.Value), Reason: err.Error()}
	}
	*o = ParseOs(s)
	return nil
}

// MarshalText implements encoding.TextMarshaler for Os so that Os works as
// a map key in encoding/json documents (the natives table).
func (o Os) MarshalText() ([]byte, error) {
	return []byte(o), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Os with the same
// open-enumeration semantics as ParseOs.
func (o *Os) UnmarshalText(text []byte) error {
	*o = ParseOs(string(text))
	return nil
}
