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

// Package errors provides reusable error types for dxmeta model types.
//
// This package defines the common error vocabulary used across the dxmeta
// model packages (rules, library, manifest, maven) when parsing, validating,
// marshaling and unmarshaling strongly typed values. Centralizing these
// types keeps the error handling story consistent across the whole module
// and lets callers recognize failure classes via type assertions instead of
// string matching.
//
// The errors here are intentionally simple value carriers with stable
// message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / unmarshaling code,
//   - easy to recognize via type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a typed value fails. Used by
//     ParseXxx helpers that accept textual input, such as Maven coordinate
//     strings or enum tokens whose vocabulary is closed (RuleAction,
//     VersionType).
//
//   - MarshalError
//     Returned when marshaling an invalid typed value fails. Used in
//     MarshalJSON / MarshalYAML / MarshalText implementations to reject
//     values outside the known vocabulary before they leak into documents.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     invalid input, parse errors or constraint violations. Used in
//     UnmarshalJSON / UnmarshalYAML implementations to give callers precise
//     diagnostics about a structurally broken document.
//
//   - ValidationError
//     Returned when validation of a model type fails. Used in Validate()
//     methods to report constraint violations, missing required fields, or
//     invalid field values.
//
// Note that dxmeta deliberately does NOT raise these errors for every kind
// of odd input: the launcher metadata format evolves, so open enumerations
// (operating system tokens, Java runtime profiles) absorb unknown values
// instead of failing. Only closed vocabularies whose unknown tokens signal
// an incompatible schema version (rule actions, version types) produce hard
// errors.
//
// # Usage
//
// Each package that defines typed values can use these error types directly
// or alias them locally:
//
//	import "dirpx.dev/dxmeta/dxcore/errors"
//
//	func ParseAction(s string) (RuleAction, error) {
//	    switch s {
//	    case "allow":
//	        return ActionAllow, nil
//	    case "disallow":
//	        return ActionDisallow, nil
//	    default:
//	        return "", &errors.ParseError{Type: "RuleAction", Value: s}
//	    }
//	}
package errors

// ParseError is returned when parsing a string into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed (for example, "RuleAction",
// "Coordinate", "VersionType"), and Value contains the exact string that
// could not be interpreted. Callers MAY pattern-match on Type to provide
// type-specific guidance or translate errors into friendlier messages.
//
// # Example
//
//	func ParseVersionType(s string) (VersionType, error) {
//	    switch s {
//	    case "release":
//	        return VersionTypeRelease, nil
//	    default:
//	        // Returned error will format as:
//	        // "dxmeta: invalid VersionType value: <value>"
//	        return "", &errors.ParseError{
//	            Type:  "VersionType",
//	            Value: s,
//	        }
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example,
	// "Coordinate").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxmeta: invalid {Type} value: {Value}"
//
// For example:
//
//	"dxmeta: invalid RuleAction value: maybe"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "dxmeta: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails because the
// value lies outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example,
// "VersionType"), and Value contains the underlying string representation
// that was deemed invalid.
//
// This error is primarily a guardrail: it prevents invalid enum-like values
// from being silently emitted into JSON or YAML documents consumed by
// launchers. In most cases a MarshalError indicates a programming error
// (for example, a zero value that was never validated).
//
// # Example
//
//	func (t VersionType) MarshalJSON() ([]byte, error) {
//	    if !t.Valid() {
//	        // Returned error will format as:
//	        // "dxmeta: cannot marshal invalid VersionType value: <value>"
//	        return nil, &errors.MarshalError{
//	            Type:  "VersionType",
//	            Value: string(t),
//	        }
//	    }
//	    return []byte(`"` + string(t) + `"`), nil
//	}
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying representation that could not be marshaled
	// because it does not correspond to a known constant.
	Value string
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxmeta: cannot marshal invalid {Type} value: {Value}"
//
// For example:
//
//	"dxmeta: cannot marshal invalid VersionType value: nightly"
func (e *MarshalError) Error() string {
	return "dxmeta: cannot marshal invalid " + e.Type + " value: " + e.Value
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated (for example, "Rule"),
// Data contains the original raw payload (typically a JSON fragment), and
// Reason provides a human-readable description of what went wrong (for
// example, a parse error or an unknown closed-vocabulary token).
//
// This struct is intended to be surfaced directly in diagnostics or logs so
// that users can understand why a metadata document could not be
// interpreted. Callers MAY wrap UnmarshalError with additional context when
// propagating it further up the stack. Per the dxmeta error taxonomy, an
// UnmarshalError is terminal for the document that produced it: the model
// packages never attempt partial recovery from a structurally broken
// document.
//
// # Example
//
//	func (a *RuleAction) UnmarshalJSON(data []byte) error {
//	    if len(data) == 0 {
//	        return &errors.UnmarshalError{
//	            Type:   "RuleAction",
//	            Data:   data,
//	            Reason: "empty data",
//	        }
//	    }
//	    // ... parsing logic ...
//	}
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on size
	// considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown action 'deny'") rather than repeating the type name; the
	// type name is already available in the Type field and reflected in
	// Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxmeta: cannot unmarshal {Type}: {Reason}"
//
// For example:
//
//	"dxmeta: cannot unmarshal RuleAction: unknown action 'deny'"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose logs; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "dxmeta: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for
// example, "Library", "LibraryGroup"), Field optionally identifies which
// field failed validation, Reason provides a human-readable explanation of
// the failure, and Value optionally contains the problematic value.
//
// This error is used by Validate() methods in model types to report
// constraint violations, missing required fields, or invalid field values.
//
// # Example
//
//	func (l Library) Validate() error {
//	    if l.Name.IsZero() {
//	        return &errors.ValidationError{
//	            Type:   "Library",
//	            Field:  "Name",
//	            Reason: "must not be empty",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation
	// failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxmeta: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxmeta: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"dxmeta: invalid Library.Name: must not be empty"
//	"dxmeta: invalid LibraryGroup: no libraries"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxmeta: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxmeta: invalid " + e.Type + ": " + e.Reason
}
