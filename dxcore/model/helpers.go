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

package model

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation
// errors encountered, combined into a single error via multierr.
//
// The function iterates through each model in the provided slice and
// invokes its Validate method. When a model fails validation, the error is
// wrapped with the model's position in the slice (zero-indexed) and its
// type name, so that callers can identify exactly which entries of a
// fetched document failed and why. The whole slice is always processed;
// validation does not stop at the first failure.
//
// If all models pass validation, or the slice is empty, ValidateAll
// returns nil. The combined error can be unpacked with multierr.Errors for
// programmatic inspection.
//
// The constraint is the value-receiver subset of Model (Validatable plus
// Identifiable) rather than Model itself: model types implement the
// UnmarshalXxx methods on the pointer receiver, so a slice of values only
// satisfies the narrower constraint.
//
// This is the intended way to validate the library listing of a version
// document or library group after deserialization:
//
//	if err := model.ValidateAll(group.Libraries); err != nil {
//	    return fmt.Errorf("group %s: %w", group.ID, err)
//	}
func ValidateAll[T interface {
	Validatable
	Identifiable
}](models []T) error {
	var combined error

	for i, m := range models {
		if err := m.Validate(); err != nil {
			combined = multierr.Append(combined, fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return combined
}

// FilterZero returns a new slice containing only non-zero models, removing
// all instances where IsZero returns true.
//
// The returned slice is always a new allocation and never shares backing
// array storage with the input slice. If all models in the input are zero,
// or the input is empty or nil, the function returns an empty non-nil
// slice.
//
// Callers SHOULD use FilterZero before serializing collections to avoid
// emitting empty placeholder values into published documents. The function
// does not validate models; it only checks for zero values using IsZero.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// This is for contexts where an invalid model is a programming error
// rather than a recoverable runtime condition: test fixtures, package
// initialization, and hardcoded constants. It MUST NOT be used on data
// deserialized from the network; fetched documents go through the
// error-returning paths instead.
//
// On success the model is returned unchanged, allowing inline
// initialization:
//
//	lib := model.MustValidate(fixtureLibrary())
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model, compact by
// default, or complete when the unsafe parameter is true.
//
// When unsafe is false (the recommended value for production logging),
// SafeString invokes the model's Redacted method. When unsafe is true, it
// invokes String, which MAY be verbose (a full library listing, for
// example). The parameter makes the choice explicit and auditable at every
// call site:
//
//	log.Info().Str("library", model.SafeString(lib, false)).Msg("resolved")
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating that the model is
// in a consistent and valid state.
//
// The function first invokes the model's Validate method; if validation
// fails, ToJSON returns an error that wraps the failure with the model's
// type name and no marshaling is attempted. Otherwise it delegates to
// json.Marshal, which invokes the model's MarshalJSON when implemented.
//
// Callers SHOULD use ToJSON instead of calling json.Marshal directly when
// producing documents for publication, so that only valid records reach
// the wire format.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating that the model is
// in a consistent and valid state.
//
// Semantics mirror ToJSON: validation first, then yaml.Marshal, which
// invokes the model's MarshalYAML when implemented. YAML output is
// intended for configuration files and human-edited patch documents rather
// than the launcher wire format.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result.
//
// The target is reset to its zero value before decoding, so a reused
// variable never contributes stale fields to a partial document. Then
// json.Unmarshal decodes the bytes into the model pointer; a decoding
// failure (malformed JSON, wrong types, unknown closed-vocabulary tokens)
// is returned as-is per the structural failure taxonomy. If decoding
// succeeds, the model's Validate method is invoked so that structurally
// correct but semantically broken documents are rejected at the boundary.
//
// If FromJSON returns an error, the model variable's state is undefined
// and MUST NOT be used.
//
//	var lib library.Library
//	if err := model.FromJSON(data, &lib); err != nil {
//	    return err
//	}
func FromJSON[T any, PT interface {
	Model
	*T
}](data []byte, m PT) error {
	var zero T
	*m = zero

	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result.
//
// Semantics mirror FromJSON with yaml.Unmarshal doing the decoding,
// including the zero-reset of the target. If FromYAML returns an error,
// the model variable's state is undefined and MUST NOT be used.
func FromYAML[T any, PT interface {
	Model
	*T
}](data []byte, m PT) error {
	var zero T
	*m = zero

	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model by serializing it to JSON and
// deserializing back into a new instance.
//
// The JSON round-trip guarantees a deep copy for the nested maps and
// slices that launcher metadata records carry (classifiers, natives,
// version hash tables): the cloned model shares no mutable references with
// the original. Fields excluded from the wire format do not survive the
// round-trip; types that must preserve such fields implement Cloneable
// with hand-written copy logic instead.
//
// If Clone returns an error, the model return value is a zero-value
// instance that MUST NOT be used.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by serializing both to JSON and
// comparing the resulting bytes.
//
// Two models are considered equal if and only if their JSON
// representations are identical. Struct field order is deterministic in
// Go's encoder and map keys are sorted, so the comparison is stable. Only
// wire-format fields participate; fields excluded from serialization (such
// as provenance flags) are ignored, which is the desired semantic when
// comparing fetched documents. If either model fails to marshal, Equal
// returns false.
//
// Types needing cheaper or stricter comparison implement Comparable with
// hand-written logic instead.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
