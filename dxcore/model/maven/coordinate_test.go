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

package maven_test

import (
	"encoding/json"
	"errors"
	"testing"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model/maven"
	"gopkg.in/yaml.v3"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    maven.Coordinate
		wantErr bool
	}{
		{
			name:  "three_segments",
			input: "org.lwjgl:lwjgl:3.3.3",
			want:  maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.3"},
		},
		{
			name:  "four_segments_with_classifier",
			input: "org.lwjgl:lwjgl:3.3.3:natives-linux",
			want: maven.Coordinate{
				Group:      "org.lwjgl",
				Artifact:   "lwjgl",
				Version:    "3.3.3",
				Classifier: "natives-linux",
			},
		},
		{
			name:  "classifier_and_extension",
			input: "net.minecraftforge:forge:1.20.4-49.0.3:universal@zip",
			want: maven.Coordinate{
				Group:      "net.minecraftforge",
				Artifact:   "forge",
				Version:    "1.20.4-49.0.3",
				Classifier: "universal",
				Extension:  "zip",
			},
		},
		{
			name:  "explicit_default_extension_normalized_away",
			input: "org.lwjgl:lwjgl:3.3.3@jar",
			want:  maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.3"},
		},
		{
			name:    "too_few_segments",
			input:   "org.lwjgl:lwjgl",
			wantErr: true,
		},
		{
			name:    "too_many_segments",
			input:   "a:b:c:d:e",
			wantErr: true,
		},
		{
			name:    "empty_segment",
			input:   "org.lwjgl::3.3.3",
			wantErr: true,
		},
		{
			name:    "empty_extension",
			input:   "org.lwjgl:lwjgl:3.3.3@",
			wantErr: true,
		},
		{
			name:    "empty_string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := maven.ParseCoordinate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCoordinate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var parseErr *dxerrors.ParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("error = %T, want *dxerrors.ParseError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseCoordinate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCoordinate_String_RoundTrip(t *testing.T) {
	inputs := []string{
		"org.lwjgl:lwjgl:3.3.3",
		"org.lwjgl:lwjgl:3.3.3:natives-linux",
		"net.minecraftforge:forge:1.20.4-49.0.3:universal@zip",
		"commons-io:commons-io:2.15.1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			c, err := maven.ParseCoordinate(input)
			if err != nil {
				t.Fatalf("ParseCoordinate() failed: %v", err)
			}
			if got := c.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}
		})
	}
}

func TestCoordinate_Ext(t *testing.T) {
	implicit := maven.Coordinate{Group: "a", Artifact: "b", Version: "1"}
	if got := implicit.Ext(); got != "jar" {
		t.Errorf("Ext() = %q, want the default jar", got)
	}

	explicit := maven.Coordinate{Group: "a", Artifact: "b", Version: "1", Extension: "zip"}
	if got := explicit.Ext(); got != "zip" {
		t.Errorf("Ext() = %q, want zip", got)
	}
}

func TestCoordinate_Equal(t *testing.T) {
	a := maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.3"}
	b := maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.3", Extension: "jar"}
	c := maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.4"}

	if !a.Equal(b) {
		t.Error("Equal() = false for implicit vs explicit jar extension")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for different versions")
	}
}

func TestCoordinate_Base(t *testing.T) {
	c := maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.3", Classifier: "natives-linux"}
	if got := c.Base(); got != "org.lwjgl:lwjgl" {
		t.Errorf("Base() = %q, want org.lwjgl:lwjgl", got)
	}
}

func TestCoordinate_Path(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain",
			input: "org.lwjgl:lwjgl:3.3.3",
			want:  "org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar",
		},
		{
			name:  "classifier",
			input: "org.lwjgl:lwjgl:3.3.3:natives-linux",
			want:  "org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3-natives-linux.jar",
		},
		{
			name:  "extension",
			input: "net.minecraftforge:forge:1.20.4-49.0.3:universal@zip",
			want:  "net/minecraftforge/forge/1.20.4-49.0.3/forge-1.20.4-49.0.3-universal.zip",
		},
		{
			name:  "single_word_group",
			input: "commons-io:commons-io:2.15.1",
			want:  "commons-io/commons-io/2.15.1/commons-io-2.15.1.jar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := maven.ParseCoordinate(tt.input)
			if err != nil {
				t.Fatalf("ParseCoordinate() failed: %v", err)
			}
			if got := c.Path(); got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       maven.Coordinate
		wantErr bool
	}{
		{
			name: "valid",
			c:    maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.3"},
		},
		{
			name:    "zero_value",
			c:       maven.Coordinate{},
			wantErr: true,
		},
		{
			name:    "missing_version",
			c:       maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl"},
			wantErr: true,
		},
		{
			name:    "separator_in_group",
			c:       maven.Coordinate{Group: "org:lwjgl", Artifact: "lwjgl", Version: "3.3.3"},
			wantErr: true,
		},
		{
			name:    "whitespace_in_version",
			c:       maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3 .3"},
			wantErr: true,
		},
		{
			name:    "at_sign_in_classifier",
			c:       maven.Coordinate{Group: "a", Artifact: "b", Version: "1", Classifier: "nat@ives"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCoordinate_JSON_RoundTrip(t *testing.T) {
	original := maven.Coordinate{
		Group:      "org.lwjgl",
		Artifact:   "lwjgl",
		Version:    "3.3.3",
		Classifier: "natives-linux",
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != `"org.lwjgl:lwjgl:3.3.3:natives-linux"` {
		t.Errorf("Marshal() = %s, want the plain coordinate string", data)
	}

	var decoded maven.Coordinate
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}
}

func TestCoordinate_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not_a_string",
			data: `42`,
		},
		{
			name: "malformed_coordinate",
			data: `"org.lwjgl"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c maven.Coordinate
			if err := json.Unmarshal([]byte(tt.data), &c); err == nil {
				t.Error("Unmarshal() accepted malformed input")
			}
		})
	}
}

func TestCoordinate_YAML_RoundTrip(t *testing.T) {
	original := maven.Coordinate{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.3"}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded maven.Coordinate
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip = %+v, want %+v", decoded, original)
	}
}

func TestCoordinate_AsMapKey(t *testing.T) {
	key, err := maven.ParseCoordinate("org.lwjgl:lwjgl:3.3.3")
	if err != nil {
		t.Fatalf("ParseCoordinate() failed: %v", err)
	}

	data, err := json.Marshal(map[maven.Coordinate]string{key: "canonical"})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != `{"org.lwjgl:lwjgl:3.3.3":"canonical"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var decoded map[maven.Coordinate]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if decoded[key] != "canonical" {
		t.Errorf("map round-trip lost the entry: %v", decoded)
	}
}
