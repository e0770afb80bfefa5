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

// Package model defines the core contracts that dxmeta domain model types
// implement to ensure consistency, type safety, and proper behavior across
// the entire system.
//
// Domain types representing launcher metadata entities (such as Library,
// Rule, Coordinate, VersionType) SHOULD implement the Model interface or
// its constituent parts (Validatable, Serializable, Loggable, Identifiable,
// ZeroCheckable). These interfaces establish a common contract for
// validation, serialization, logging, and identity that enables generic
// operations and guarantees safety at compile time.
//
// Launcher metadata is deserialized from documents fetched over the network
// and published by third parties, so the contracts prioritize boundary
// safety: Validation ensures that structurally valid but semantically
// broken records are rejected where the format demands it, while known
// open-ended vocabularies (operating system tokens, Java runtime profiles)
// are absorbed rather than rejected. Serialization provides round-trip
// guarantees for the wire format. Loggable gives callers a compact
// representation for structured logs. Identifiable enables reflection and
// structured logging. ZeroCheckable supports optional field detection.
//
// Unless explicitly documented otherwise, implementations are not
// thread-safe for concurrent mutation. All dxmeta model types are designed
// as immutable value types, making them naturally safe for concurrent read
// access; operations that derive new records (such as merging a partial
// library onto a canonical one) return new values instead of mutating
// shared state. Callers MUST synchronize any concurrent writes to mutable
// instances.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON,
// ToYAML, Clone, and Equal. These helpers rely on the Model contract and
// will fail at compile time if applied to types that do not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxmeta domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both compact (Redacted) and full
// (String) string representations; Identifiable supplies a canonical type
// name; and ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented (the
// UnmarshalXxx methods are the documented exception). Concurrent reads are
// safe; concurrent writes require external synchronization.
//
// Example implementation:
//
//	type MyModel struct {
//	    Field string
//	}
//
//	func (m MyModel) Validate() error {
//	    if m.Field == "" {
//	        return errors.New("field required")
//	    }
//	    return nil
//	}
//
//	func (m MyModel) TypeName() string { return "MyModel" }
//	func (m MyModel) IsZero() bool { return m.Field == "" }
//	func (m MyModel) Redacted() string { return "MyModel{...}" }
//	func (m MyModel) String() string { return "MyModel{Field:" + m.Field + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyModel)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity.
//
// The Validate method MUST check all required fields for non-empty or
// non-zero values, verify cross-field consistency, recursively validate any
// nested objects by calling their Validate methods, and return nil if and
// only if the instance is fully valid. When validation fails, the returned
// error MUST describe what is invalid in a way that helps callers diagnose
// and fix the problem; prefer specific messages like "Library.Name must not
// be empty" over generic ones.
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT perform
// I/O, MUST NOT mutate the receiver, MUST NOT have side effects, and MUST
// NOT depend on external mutable state.
//
// Callers SHOULD invoke Validate at boundaries: immediately after
// unmarshaling a fetched metadata document, after constructing instances
// programmatically, and before re-serializing records for publication.
// Validation of a zero-value instance SHOULD typically return an error
// unless the zero value represents a valid state (several dxmeta types,
// such as an absent OS rule, treat the zero value as "not set" and accept
// it).
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads but
	// not with concurrent writes.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to
// and deserialized from JSON and YAML.
//
// JSON is the wire format of the launcher metadata ecosystem: field names
// emitted by MarshalJSON are a bit-exact contract with external consumers
// and MUST NOT change. YAML is supported for configuration files and
// human-edited patch documents.
//
// Implementations MUST call Validate before marshaling so that invalid
// instances never leak into published documents, and after unmarshaling so
// that malformed external input is rejected at the boundary. If validation
// fails, the marshal or unmarshal method MUST return the validation error;
// after a failed unmarshal the receiver is in an undefined state and MUST
// NOT be used.
//
// A value serialized to JSON and then deserialized MUST equal the original
// value, and the same MUST hold for YAML. Fields excluded from the wire
// format (such as the Patched provenance flag on Library) are the
// documented exception to the round-trip rule.
//
// Implementations SHOULD use the "type alias" pattern to avoid infinite
// recursion: define a local type alias to the model type, cast the
// receiver to the alias, and delegate to the standard library's marshal or
// unmarshal function.
//
// Example:
//
//	func (m MyModel) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
//	    }
//	    type alias MyModel
//	    return json.Marshal((alias)(m))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// The Redacted method returns a compact representation suitable for
// production logging. Launcher metadata carries no credentials or PII, so
// for dxmeta types redaction is about brevity rather than secrecy: a
// Library with hundreds of classifier entries SHOULD log as its coordinate
// plus summary counts, not as a full dump. Redacted MUST be fast, MUST NOT
// perform I/O, MUST be safe to call concurrently and MUST NOT mutate the
// receiver.
//
// The String method returns a complete human-readable representation for
// development, debugging, and test failure output. It MAY be verbose.
//
// If a type contains nested objects that are also Loggable, Redacted SHOULD
// call Redacted on those nested objects so that log volume stays bounded
// throughout the object graph.
type Loggable interface {
	// Redacted returns a compact string representation suitable for
	// production logging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	Redacted() string

	// String returns a complete human-readable representation of the
	// instance, primarily for development debugging and test output.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The type name returned by TypeName MUST be constant for a given type and
// unique within the dxmeta domain. It SHOULD follow CamelCase convention
// (for example, "Library", "RuleAction", "Coordinate") and MUST NOT
// include a package prefix. Type names are used in structured logging, in
// error messages produced by the generic helpers, and by the reusable
// error types in dxcore/errors.
//
// TypeName MUST be fast, MUST NOT allocate, MUST NOT have side effects and
// MUST be safe to call concurrently. It SHOULD return a string constant.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether
// they are in a zero or empty state. This enables optional field
// detection: launcher metadata documents omit most fields most of the
// time, and "absent" is routinely meaningful (an absent rule list means
// "always included").
//
// IsZero MUST return true if and only if the instance is semantically
// empty. For types with multiple fields, IsZero SHOULD return true only if
// all fields are zero. IsZero MUST be fast, deterministic, idempotent,
// allocation-free, side-effect-free and safe for concurrent use.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types
// that require equality testing in tests, assertions, or business logic.
//
// The Equal method MUST be reflexive, symmetric, transitive and
// consistent. Equal SHOULD compare all semantically significant fields and
// ignore internal or derived fields that do not affect the logical value
// (for example, a cached fingerprint). Nested objects SHOULD be compared
// using deep equality.
//
// Equal MUST NOT mutate the receiver or the argument, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional but recommended for types
// containing references to shared data structures (maps and slices), where
// a shallow Go assignment would alias state between the original and the
// copy.
//
// The Clone method MUST create a deep copy: the returned instance shares
// no mutable references with the original, modifying either does not
// affect the other, and the clone is valid whenever the original is.
//
// Clone MUST NOT mutate the receiver, MUST NOT have side effects, and MUST
// be safe to call concurrently.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	Clone() T
}
