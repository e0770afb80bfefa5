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

package library_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxmeta/dxcore/model/library"
)

func TestDependency_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    library.Dependency
		wantErr bool
	}{
		{
			name: "no_rule",
			json: `{"name":"lwjgl","uid":"org.lwjgl"}`,
			want: library.Dependency{Name: "lwjgl", UID: "org.lwjgl"},
		},
		{
			name: "equals_rule_flattened",
			json: `{"name":"lwjgl","uid":"org.lwjgl","equals":"3.3.3"}`,
			want: library.Dependency{Name: "lwjgl", UID: "org.lwjgl", Equals: "3.3.3"},
		},
		{
			name: "suggests_rule_flattened",
			json: `{"name":"lwjgl","uid":"org.lwjgl","suggests":"3.3.3"}`,
			want: library.Dependency{Name: "lwjgl", UID: "org.lwjgl", Suggests: "3.3.3"},
		},
		{
			name:    "both_rules_rejected",
			json:    `{"name":"lwjgl","uid":"org.lwjgl","equals":"3.3.3","suggests":"3.3.2"}`,
			wantErr: true,
		},
		{
			name:    "missing_uid_rejected",
			json:    `{"name":"lwjgl"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got library.Dependency
			err := json.Unmarshal([]byte(tt.json), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("UnmarshalJSON() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDependency_JSON_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		dep  library.Dependency
	}{
		{
			name: "no_rule",
			dep:  library.Dependency{Name: "lwjgl", UID: "org.lwjgl"},
		},
		{
			name: "equals",
			dep:  library.Dependency{Name: "lwjgl", UID: "org.lwjgl", Equals: "3.3.3"},
		},
		{
			name: "suggests",
			dep:  library.Dependency{Name: "lwjgl3", UID: "org.lwjgl3", Suggests: "3.2.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.dep)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}

			var decoded library.Dependency
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal() failed: %v", err)
			}

			if !decoded.Equal(tt.dep) {
				t.Errorf("Round-trip failed: got %+v, want %+v", decoded, tt.dep)
			}
		})
	}
}

func TestDependency_Satisfied(t *testing.T) {
	tests := []struct {
		name    string
		dep     library.Dependency
		version string
		want    bool
	}{
		{
			name:    "no_rule_always_satisfied",
			dep:     library.Dependency{Name: "lwjgl", UID: "org.lwjgl"},
			version: "anything",
			want:    true,
		},
		{
			name:    "suggests_always_satisfied",
			dep:     library.Dependency{Name: "lwjgl", UID: "org.lwjgl", Suggests: "3.3.3"},
			version: "2.9.4",
			want:    true,
		},
		{
			name:    "equals_exact_match",
			dep:     library.Dependency{Name: "lwjgl", UID: "org.lwjgl", Equals: "3.3.3"},
			version: "3.3.3",
			want:    true,
		},
		{
			name:    "equals_semver_tolerant_match",
			dep:     library.Dependency{Name: "lwjgl", UID: "org.lwjgl", Equals: "3.3.3"},
			version: "v3.3.3",
			want:    true,
		},
		{
			name:    "equals_mismatch",
			dep:     library.Dependency{Name: "lwjgl", UID: "org.lwjgl", Equals: "3.3.3"},
			version: "3.3.2",
			want:    false,
		},
		{
			name:    "equals_non_semver_string_compare",
			dep:     library.Dependency{Name: "forge", UID: "net.minecraftforge", Equals: "1.20.4-49.0.3-beta"},
			version: "1.20.4-49.0.3-beta",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dep.Satisfied(tt.version)
			if got != tt.want {
				t.Errorf("Satisfied(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestDependency_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dep     library.Dependency
		wantErr bool
	}{
		{
			name:    "valid",
			dep:     library.Dependency{Name: "lwjgl", UID: "org.lwjgl"},
			wantErr: false,
		},
		{
			name:    "missing_name",
			dep:     library.Dependency{UID: "org.lwjgl"},
			wantErr: true,
		},
		{
			name:    "missing_uid",
			dep:     library.Dependency{Name: "lwjgl"},
			wantErr: true,
		},
		{
			name:    "both_rules",
			dep:     library.Dependency{Name: "lwjgl", UID: "org.lwjgl", Equals: "1", Suggests: "2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dep.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
