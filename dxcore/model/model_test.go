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

package model_test

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"dirpx.dev/dxmeta/dxcore/model"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// MetaRecord demonstrates a complete Model implementation: a named artifact
// reference with a checksum, the smallest shape the metadata documents
// traffic in.
type MetaRecord struct {
	ID   string `json:"id" yaml:"id"`
	SHA1 string `json:"sha1,omitempty" yaml:"sha1,omitempty"`
	Size int64  `json:"size,omitempty" yaml:"size,omitempty"`
}

// Validate implements Validatable
func (r MetaRecord) Validate() error {
	if r.ID == "" {
		return errors.New("id required")
	}
	if r.Size < 0 {
		return errors.New("size must not be negative")
	}
	return nil
}

// TypeName implements Identifiable
func (r MetaRecord) TypeName() string {
	return "MetaRecord"
}

// IsZero implements ZeroCheckable
func (r MetaRecord) IsZero() bool {
	return r.ID == "" && r.SHA1 == "" && r.Size == 0
}

// Redacted implements Loggable (compact, for production logs)
func (r MetaRecord) Redacted() string {
	return "MetaRecord{ID:" + r.ID + "}"
}

// String implements Loggable (complete, for debugging)
func (r MetaRecord) String() string {
	return "MetaRecord{ID:" + r.ID + ", SHA1:" + r.SHA1 + ", Size:" + strconv.FormatInt(r.Size, 10) + "}"
}

// MarshalJSON implements Serializable
func (r MetaRecord) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	type alias MetaRecord
	return json.Marshal((alias)(r))
}

// UnmarshalJSON implements Serializable
func (r *MetaRecord) UnmarshalJSON(data []byte) error {
	type alias MetaRecord
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}
	return r.Validate()
}

// MarshalYAML implements Serializable
func (r MetaRecord) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	type alias MetaRecord
	return (alias)(r), nil
}

// UnmarshalYAML implements Serializable
func (r *MetaRecord) UnmarshalYAML(node *yaml.Node) error {
	type alias MetaRecord
	if err := node.Decode((*alias)(r)); err != nil {
		return err
	}
	return r.Validate()
}

// Verify MetaRecord implements Model at compile time
var _ model.Model = (*MetaRecord)(nil)

func TestModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  MetaRecord
		wantErr bool
	}{
		{
			name:    "valid",
			record:  MetaRecord{ID: "client.jar", SHA1: "aa", Size: 1024},
			wantErr: false,
		},
		{
			name:    "valid_without_optional_fields",
			record:  MetaRecord{ID: "client.jar"},
			wantErr: false,
		},
		{
			name:    "missing_id",
			record:  MetaRecord{SHA1: "aa", Size: 1024},
			wantErr: true,
		},
		{
			name:    "negative_size",
			record:  MetaRecord{ID: "client.jar", Size: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModel_IsZero(t *testing.T) {
	if !(MetaRecord{}).IsZero() {
		t.Error("IsZero() = false for a zero value")
	}
	if (MetaRecord{ID: "client.jar"}).IsZero() {
		t.Error("IsZero() = true for a populated record")
	}
}

func TestModel_Redacted(t *testing.T) {
	r := MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}

	if got := r.Redacted(); strings.Contains(got, "aabbcc") {
		t.Errorf("Redacted() = %q, should stay compact and omit the checksum", got)
	}
	if got := r.String(); !strings.Contains(got, "aabbcc") {
		t.Errorf("String() = %q, should carry the full record", got)
	}
}

func TestModel_JSON_RoundTrip(t *testing.T) {
	original := MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded MetaRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}
}

func TestModel_YAML_RoundTrip(t *testing.T) {
	original := MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded MetaRecord
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}
}

func TestModel_Marshal_FailsOnInvalid(t *testing.T) {
	invalid := MetaRecord{SHA1: "aa"}

	if _, err := json.Marshal(invalid); err == nil {
		t.Error("json.Marshal() succeeded for an invalid record")
	}
	if _, err := yaml.Marshal(invalid); err == nil {
		t.Error("yaml.Marshal() succeeded for an invalid record")
	}
}

func TestModel_Unmarshal_FailsOnInvalid(t *testing.T) {
	var r MetaRecord
	if err := json.Unmarshal([]byte(`{"sha1":"aa"}`), &r); err == nil {
		t.Error("json.Unmarshal() accepted a record without an id")
	}
	if err := yaml.Unmarshal([]byte("sha1: aa\n"), &r); err == nil {
		t.Error("yaml.Unmarshal() accepted a record without an id")
	}
}

func TestValidateAll(t *testing.T) {
	valid := &MetaRecord{ID: "a"}
	broken := &MetaRecord{Size: -1}

	if err := model.ValidateAll([]*MetaRecord{valid, valid}); err != nil {
		t.Errorf("ValidateAll() = %v for an all-valid slice", err)
	}
	if err := model.ValidateAll([]*MetaRecord{}); err != nil {
		t.Errorf("ValidateAll() = %v for an empty slice", err)
	}

	err := model.ValidateAll([]*MetaRecord{broken, valid, broken})
	if err == nil {
		t.Fatal("ValidateAll() = nil despite two invalid entries")
	}

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("ValidateAll() combined %d errors, want 2", len(errs))
	}
	if !strings.Contains(errs[0].Error(), "model[0] (MetaRecord)") {
		t.Errorf("first error = %q, want the slice position and type name", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "model[2] (MetaRecord)") {
		t.Errorf("second error = %q, want the slice position and type name", errs[1])
	}
}

func TestValidateAll_ValueElements(t *testing.T) {
	// Value-typed slices are the common case: document types carry their
	// listings as []T, not []*T, and only implement the codec methods on
	// the pointer receiver.
	records := []MetaRecord{
		{ID: "a"},
		{Size: -1},
	}

	err := model.ValidateAll(records)
	if err == nil {
		t.Fatal("ValidateAll() = nil despite an invalid entry")
	}
	if !strings.Contains(err.Error(), "model[1] (MetaRecord)") {
		t.Errorf("error = %q, want the slice position and type name", err)
	}

	if err := model.ValidateAll([]MetaRecord{{ID: "a"}}); err != nil {
		t.Errorf("ValidateAll() = %v for an all-valid slice", err)
	}
}

func TestFilterZero(t *testing.T) {
	records := []*MetaRecord{
		{},
		{ID: "a"},
		{},
		{ID: "b"},
	}

	got := model.FilterZero(records)
	if len(got) != 2 {
		t.Fatalf("FilterZero() = %d entries, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("FilterZero() reordered or dropped entries: %v, %v", got[0], got[1])
	}

	empty := model.FilterZero([]*MetaRecord(nil))
	if empty == nil || len(empty) != 0 {
		t.Errorf("FilterZero(nil) = %v, want an empty non-nil slice", empty)
	}
}

func TestMustValidate(t *testing.T) {
	valid := &MetaRecord{ID: "a"}
	if got := model.MustValidate(valid); got != valid {
		t.Error("MustValidate() did not return the validated model")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustValidate() did not panic for an invalid model")
		}
	}()
	model.MustValidate(&MetaRecord{Size: -1})
}

func TestSafeString(t *testing.T) {
	r := &MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}

	if got := model.SafeString(r, false); strings.Contains(got, "aabbcc") {
		t.Errorf("SafeString(unsafe=false) = %q, want the redacted form", got)
	}
	if got := model.SafeString(r, true); !strings.Contains(got, "aabbcc") {
		t.Errorf("SafeString(unsafe=true) = %q, want the full form", got)
	}
}

func TestToJSON_FromJSON(t *testing.T) {
	original := MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}

	data, err := model.ToJSON(&original)
	if err != nil {
		t.Fatalf("ToJSON() failed: %v", err)
	}

	var decoded MetaRecord
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() failed: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}

	if _, err := model.ToJSON(&MetaRecord{Size: -1}); err == nil {
		t.Error("ToJSON() succeeded for an invalid model")
	}

	var fresh MetaRecord
	if err := model.FromJSON([]byte(`{"sha1":"aa"}`), &fresh); err == nil {
		t.Error("FromJSON() accepted an invalid document")
	}
}

func TestFromJSON_ResetsStaleTarget(t *testing.T) {
	// Reusing a decode target must not let an earlier document's fields
	// leak into a partial one: a document missing its id stays invalid no
	// matter what the variable held before.
	target := MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}

	if err := model.FromJSON([]byte(`{"sha1":"ddeeff"}`), &target); err == nil {
		t.Error("FromJSON() accepted a partial document merged onto a stale target")
	}
}

func TestToYAML_FromYAML(t *testing.T) {
	original := MetaRecord{ID: "client.jar", Size: 1024}

	data, err := model.ToYAML(&original)
	if err != nil {
		t.Fatalf("ToYAML() failed: %v", err)
	}

	var decoded MetaRecord
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() failed: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}

	if _, err := model.ToYAML(&MetaRecord{}); err == nil {
		t.Error("ToYAML() succeeded for an invalid model")
	}
}

func TestClone(t *testing.T) {
	original := &MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}

	clone, err := model.Clone(original)
	if err != nil {
		t.Fatalf("Clone() failed: %v", err)
	}
	if *clone != *original {
		t.Errorf("Clone() = %+v, want %+v", clone, original)
	}

	clone.SHA1 = "ddeeff"
	if original.SHA1 != "aabbcc" {
		t.Error("mutating the clone changed the original")
	}

	if _, err := model.Clone(&MetaRecord{Size: -1}); err == nil {
		t.Error("Clone() succeeded for an invalid model")
	}
}

func TestEqual(t *testing.T) {
	a := &MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}
	b := &MetaRecord{ID: "client.jar", SHA1: "aabbcc", Size: 1024}
	c := &MetaRecord{ID: "server.jar", SHA1: "aabbcc", Size: 1024}

	if !model.Equal(a, b) {
		t.Error("Equal() = false for identical records")
	}
	if model.Equal(a, c) {
		t.Error("Equal() = true for records with different ids")
	}
	if model.Equal(a, &MetaRecord{Size: -1}) {
		t.Error("Equal() = true when one side cannot marshal")
	}
}

func TestModel_TypeName(t *testing.T) {
	if got := (MetaRecord{}).TypeName(); got != "MetaRecord" {
		t.Errorf("TypeName() = %q, want MetaRecord", got)
	}
}
