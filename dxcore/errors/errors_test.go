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

package errors

import "testing"

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"RuleAction type",
			&ParseError{Type: "RuleAction", Value: "approve"},
			"dxmeta: invalid RuleAction value: approve",
		},
		{
			"Coordinate type",
			&ParseError{Type: "Coordinate", Value: "org.lwjgl"},
			"dxmeta: invalid Coordinate value: org.lwjgl",
		},
		{
			"Os type",
			&ParseError{Type: "Os", Value: "haiku"},
			"dxmeta: invalid Os value: haiku",
		},
		{
			"empty value",
			&ParseError{Type: "VersionType", Value: ""},
			"dxmeta: invalid VersionType value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"invalid action",
			&MarshalError{Type: "RuleAction", Value: "veto"},
			"dxmeta: cannot marshal invalid RuleAction value: veto",
		},
		{
			"zero value",
			&MarshalError{Type: "VersionType", Value: ""},
			"dxmeta: cannot marshal invalid VersionType value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"with reason",
			&UnmarshalError{Type: "Os", Data: []byte("42"), Reason: "expected a string"},
			"dxmeta: cannot unmarshal Os: expected a string",
		},
		{
			"data_not_in_message",
			&UnmarshalError{Type: "RuleAction", Data: []byte(`{"huge":"payload"}`), Reason: "unknown action 'deny'"},
			"dxmeta: cannot unmarshal RuleAction: unknown action 'deny'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Library", Field: "Name", Reason: "must not be empty"},
			"dxmeta: invalid Library.Name: must not be empty",
		},
		{
			"without field",
			&ValidationError{Type: "Dependency", Reason: "equals and suggests are mutually exclusive"},
			"dxmeta: invalid Dependency: equals and suggests are mutually exclusive",
		},
		{
			"value_not_in_message",
			&ValidationError{Type: "Rule", Field: "Action", Reason: "unknown action", Value: "veto"},
			"dxmeta: invalid Rule.Action: unknown action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
}
