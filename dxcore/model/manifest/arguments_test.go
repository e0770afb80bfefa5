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

package manifest_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxmeta/dxcore/model/manifest"
	"dirpx.dev/dxmeta/dxcore/model/rules"
)

func TestArgument_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantRuled  bool
		wantValues []string
		wantErr    bool
	}{
		{
			name:       "plain_string",
			json:       `"--demo"`,
			wantRuled:  false,
			wantValues: []string{"--demo"},
		},
		{
			name:       "ruled_single_value",
			json:       `{"rules":[{"action":"allow","os":{"name":"osx"}}],"value":"-XstartOnFirstThread"}`,
			wantRuled:  true,
			wantValues: []string{"-XstartOnFirstThread"},
		},
		{
			name:       "ruled_many_values",
			json:       `{"rules":[{"action":"allow","features":{"has_custom_resolution":true}}],"value":["--width","${resolution_width}"]}`,
			wantRuled:  true,
			wantValues: []string{"--width", "${resolution_width}"},
		},
		{
			name:       "bare_array",
			json:       `["--width","854","--height","480"]`,
			wantRuled:  false,
			wantValues: []string{"--width", "854", "--height", "480"},
		},
		{
			name:    "ruled_with_unknown_action",
			json:    `{"rules":[{"action":"approve"}],"value":"x"}`,
			wantErr: true,
		},
		{
			name:    "number_rejected",
			json:    `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var arg manifest.Argument
			err := json.Unmarshal([]byte(tt.json), &arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if (arg.Rules != nil) != tt.wantRuled {
				t.Errorf("Rules presence = %v, want %v", arg.Rules != nil, tt.wantRuled)
			}
			got := arg.Value.Values()
			if len(got) != len(tt.wantValues) {
				t.Fatalf("Values() = %v, want %v", got, tt.wantValues)
			}
			for i := range got {
				if got[i] != tt.wantValues[i] {
					t.Errorf("Values()[%d] = %q, want %q", i, got[i], tt.wantValues[i])
				}
			}
		})
	}
}

func TestArgument_JSON_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "plain",
			json: `"--username"`,
		},
		{
			name: "ruled_single",
			json: `{"rules":[{"action":"allow","os":{"name":"osx"}}],"value":"-XstartOnFirstThread"}`,
		},
		{
			name: "ruled_many",
			json: `{"rules":[{"action":"allow","features":{"is_demo_user":true}}],"value":["--demo","--noop"]}`,
		},
		{
			name: "bare_many",
			json: `["--width","854"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var arg manifest.Argument
			if err := json.Unmarshal([]byte(tt.json), &arg); err != nil {
				t.Fatalf("Unmarshal() failed: %v", err)
			}

			out, err := json.Marshal(arg)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			if string(out) != tt.json {
				t.Errorf("round-trip = %s, want %s", out, tt.json)
			}
		})
	}
}

func TestArgument_MarshalJSON_UnconditionalMany(t *testing.T) {
	arg := manifest.Argument{
		Value: manifest.ArgumentValue{Many: []string{"--width", "854"}},
	}

	out, err := json.Marshal(arg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(out) != `["--width","854"]` {
		t.Errorf("Marshal() = %s, want the full value array", out)
	}
}

func TestArgument_AppliesTo(t *testing.T) {
	osxOnly := manifest.Argument{
		Rules: []rules.Rule{
			{Action: rules.ActionAllow, Os: &rules.OsRule{Name: rules.OsOsx}},
		},
		Value: manifest.ArgumentValue{Single: "-XstartOnFirstThread"},
	}
	plain := manifest.Argument{Value: manifest.ArgumentValue{Single: "--demo"}}

	osxCtx := rules.ExecutionContext{Os: rules.OsOsx}
	linuxCtx := rules.ExecutionContext{Os: rules.OsLinux}

	if !plain.AppliesTo(linuxCtx) {
		t.Error("unconditional argument did not apply")
	}
	if !osxOnly.AppliesTo(osxCtx) {
		t.Error("ruled argument did not apply on its target platform")
	}
	if osxOnly.AppliesTo(linuxCtx) {
		t.Error("ruled argument applied on a non-matching platform")
	}
}

func TestParseArgumentType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    manifest.ArgumentType
		wantErr bool
	}{
		{
			name:  "game",
			input: "game",
			want:  manifest.ArgumentTypeGame,
		},
		{
			name:  "jvm",
			input: "jvm",
			want:  manifest.ArgumentTypeJvm,
		},
		{
			name:  "default_user_jvm",
			input: "default-user-jvm",
			want:  manifest.ArgumentTypeDefaultUserJvm,
		},
		{
			name:    "unknown_rejected",
			input:   "wrapper",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifest.ParseArgumentType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseArgumentType() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseArgumentType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArgumentType_AsMapKey(t *testing.T) {
	doc := []byte(`{"game":["--demo"],"jvm":["-Xmx2G"],"default-user-jvm":["-XX:+UseG1GC"]}`)

	var args map[manifest.ArgumentType][]manifest.Argument
	if err := json.Unmarshal(doc, &args); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if len(args) != 3 {
		t.Fatalf("decoded %d keys, want 3", len(args))
	}
	if got := args[manifest.ArgumentTypeJvm][0].Value.Single; got != "-Xmx2G" {
		t.Errorf("jvm argument = %q, want -Xmx2G", got)
	}

	if _, err := json.Marshal(args); err != nil {
		t.Errorf("Marshal() of argument map failed: %v", err)
	}
}
