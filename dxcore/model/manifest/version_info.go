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

package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"dirpx.dev/dxmeta/dxcore/model/library"
	"dirpx.dev/dxmeta/dxcore/model/rules"
	"gopkg.in/yaml.v3"
)

// DownloadType classifies a game download entry. A closed vocabulary;
// unknown tokens fail hard.
type DownloadType string

// String constants for DownloadType values.
const (
	// DownloadClient is the game client jar.
	DownloadClient DownloadType = "client"

	// DownloadClientMappings is the obfuscation mappings for the client.
	DownloadClientMappings DownloadType = "client_mappings"

	// DownloadServer is the game server jar.
	DownloadServer DownloadType = "server"

	// DownloadServerMappings is the obfuscation mappings for the server.
	DownloadServerMappings DownloadType = "server_mappings"

	// DownloadWindowsServer is the legacy Windows server executable.
	DownloadWindowsServer DownloadType = "windows_server"
)

// Valid reports whether the DownloadType is one of the defined constants.
func (t DownloadType) Valid() bool {
	switch t {
	case DownloadClient, DownloadClientMappings, DownloadServer,
		DownloadServerMappings, DownloadWindowsServer:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler so DownloadType works as a
// JSON map key.
func (t DownloadType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &dxerrors.MarshalError{Type: "DownloadType", Value: string(t)}
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for DownloadType;
// unknown tokens fail hard.
func (t *DownloadType) UnmarshalText(text []byte) error {
	candidate := DownloadType(text)
	if !candidate.Valid() {
		return &dxerrors.ParseError{Type: "DownloadType", Value: string(text)}
	}
	*t = candidate
	return nil
}

// Download describes one game download: checksum, size, and location.
type Download struct {
	// SHA1 is the hex-encoded checksum of the file.
	SHA1 string `json:"sha1" yaml:"sha1"`

	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// URL is where the file can be downloaded.
	URL string `json:"url" yaml:"url"`
}

// AssetIndex points at the assets index document for a version.
type AssetIndex struct {
	// ID is the name of the assets index, for example "12".
	ID string `json:"id" yaml:"id"`

	// SHA1 is the checksum of the index document.
	SHA1 string `json:"sha1" yaml:"sha1"`

	// Size is the size of the index document in bytes.
	Size int64 `json:"size" yaml:"size"`

	// TotalSize is the combined size of all assets the index names.
	TotalSize int64 `json:"totalSize" yaml:"totalSize"`

	// URL is where the index document can be fetched.
	URL string `json:"url" yaml:"url"`
}

// JavaVersion names the Java component and major version a game version
// supports.
type JavaVersion struct {
	// Component is the runtime component name, for example
	// "java-runtime-gamma".
	Component string `json:"component" yaml:"component"`

	// MajorVersion is the Java major version, for example 17.
	MajorVersion int `json:"majorVersion" yaml:"majorVersion"`
}

// LoggingType identifies the format of a logging configuration file.
type LoggingType string

// LoggingTypeLog4j2Xml is a Log4j XML config file, the only format in use.
const LoggingTypeLog4j2Xml LoggingType = "log4j2-xml"

// LoggingConfigName identifies which side a logging configuration applies
// to.
type LoggingConfigName string

// LoggingClient is the client logging configuration.
const LoggingClient LoggingConfigName = "client"

// LoggingArtifact is a downloadable logging configuration file.
type LoggingArtifact struct {
	// ID is the name of the artifact.
	ID string `json:"id" yaml:"id"`

	// SHA1 is the checksum of the file.
	SHA1 string `json:"sha1" yaml:"sha1"`

	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// URL is where the file can be fetched.
	URL string `json:"url" yaml:"url"`
}

// LoggingConfig wires a logging artifact into the JVM invocation.
type LoggingConfig struct {
	// File is the logging config file to download.
	File LoggingArtifact `json:"file" yaml:"file"`

	// Argument is the JVM argument referencing the file, with a ${path}
	// placeholder.
	Argument string `json:"argument" yaml:"argument"`

	// Type is the config file format.
	Type LoggingType `json:"type" yaml:"type"`
}

// VersionInfo is the detail document for one game version: everything a
// launcher needs to assemble the classpath, arguments, and downloads.
//
// VersionInfo implements the model.Model interface.
type VersionInfo struct {
	// Arguments holds the conditional argument lists, keyed by where they
	// are passed.
	Arguments map[ArgumentType][]Argument `json:"arguments,omitempty" yaml:"arguments,omitempty"`

	// AssetIndex points at the assets for this version.
	AssetIndex AssetIndex `json:"assetIndex" yaml:"assetIndex"`

	// Assets is the version id of the assets.
	Assets string `json:"assets" yaml:"assets"`

	// Downloads lists the game downloads of the version.
	Downloads map[DownloadType]Download `json:"downloads" yaml:"downloads"`

	// ID is the version id of this version.
	ID string `json:"id" yaml:"id"`

	// InheritsFrom is the vanilla version id when this document was
	// produced by merging a modded partial version; otherwise equal to
	// ID.
	InheritsFrom string `json:"inheritsFrom,omitempty" yaml:"inheritsFrom,omitempty"`

	// JavaVersion is the Java runtime this version supports.
	JavaVersion *JavaVersion `json:"javaVersion,omitempty" yaml:"javaVersion,omitempty"`

	// Libraries lists the libraries the version depends on.
	Libraries []library.Library `json:"libraries" yaml:"libraries"`

	// Requires lists dependencies not included in Libraries.
	Requires []library.Dependency `json:"requires,omitempty" yaml:"requires,omitempty"`

	// MainClass is the class launched to start the game.
	MainClass string `json:"mainClass" yaml:"mainClass"`

	// MinecraftArguments is the legacy pre-1.13 argument string.
	MinecraftArguments string `json:"minecraftArguments,omitempty" yaml:"minecraftArguments,omitempty"`

	// MinimumLauncherVersion is the minimum launcher version that can run
	// this version of the game.
	MinimumLauncherVersion int `json:"minimumLauncherVersion" yaml:"minimumLauncherVersion"`

	// ReleaseTime is when the version was released.
	ReleaseTime time.Time `json:"releaseTime" yaml:"releaseTime"`

	// Time is the latest time a file in this version was updated.
	Time time.Time `json:"time" yaml:"time"`

	// Type is the release type of the version.
	Type VersionType `json:"type" yaml:"type"`

	// Logging holds the logging configurations, keyed by side.
	Logging map[LoggingConfigName]LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`

	// Data carries modded-ecosystem sided values consumed by Processors.
	Data map[string]SidedDataEntry `json:"data,omitempty" yaml:"data,omitempty"`

	// Processors lists post-download processing steps for modded
	// versions.
	Processors []Processor `json:"processors,omitempty" yaml:"processors,omitempty"`
}

// Compile-time check that VersionInfo implements model.Model.
var _ model.Model = (*VersionInfo)(nil)

// ActiveLibraries returns the libraries whose rules include them for ctx,
// in document order. The result is a fresh slice; the receiver is not
// modified.
func (v VersionInfo) ActiveLibraries(ctx rules.ExecutionContext) []library.Library {
	out := make([]library.Library, 0, len(v.Libraries))
	for _, lib := range v.Libraries {
		if rules.Evaluate(lib.Rules, ctx) {
			out = append(out, lib)
		}
	}
	return out
}

// ActiveArguments returns the argument strings of the given type that
// apply to ctx, flattened in document order.
func (v VersionInfo) ActiveArguments(kind ArgumentType, ctx rules.ExecutionContext) []string {
	var out []string
	for _, arg := range v.Arguments[kind] {
		if arg.AppliesTo(ctx) {
			out = append(out, arg.Value.Values()...)
		}
	}
	return out
}

// Validate checks the document's required fields and every library entry.
func (v VersionInfo) Validate() error {
	if v.ID == "" {
		return &dxerrors.ValidationError{Type: "VersionInfo", Field: "ID", Reason: "must not be empty"}
	}
	if err := v.Type.Validate(); err != nil {
		return err
	}
	if v.MainClass == "" {
		return &dxerrors.ValidationError{Type: "VersionInfo", Field: "MainClass", Reason: "must not be empty"}
	}
	return model.ValidateAll(v.Libraries)
}

// String returns a complete human-readable representation of the version
// document.
func (v VersionInfo) String() string {
	return fmt.Sprintf("VersionInfo{ID:%s, Type:%s, Libraries:%d}", v.ID, v.Type, len(v.Libraries))
}

// Redacted returns just the version id.
func (v VersionInfo) Redacted() string {
	return v.ID
}

// TypeName returns "VersionInfo", the name of the type for logging and
// debugging.
func (v VersionInfo) TypeName() string {
	return "VersionInfo"
}

// IsZero reports whether the VersionInfo carries no data.
func (v VersionInfo) IsZero() bool {
	return v.ID == "" && v.Type.IsZero() && v.Libraries == nil && v.Downloads == nil
}

type versionInfoAlias VersionInfo

// MarshalJSON implements json.Marshaler for VersionInfo, validating first
// so that incomplete documents never reach consumers.
func (v VersionInfo) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal((versionInfoAlias)(v))
}

// UnmarshalJSON implements json.Unmarshaler for VersionInfo.
func (v *VersionInfo) UnmarshalJSON(data []byte) error {
	var aux versionInfoAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*v = (VersionInfo)(aux)
	return nil
}

// MarshalYAML implements yaml.Marshaler for VersionInfo with the same
// validity guard as the JSON form.
func (v VersionInfo) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return (versionInfoAlias)(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for VersionInfo.
func (v *VersionInfo) UnmarshalYAML(node *yaml.Node) error {
	var aux versionInfoAlias
	if err := node.Decode(&aux); err != nil {
		return err
	}
	*v = (VersionInfo)(aux)
	return nil
}
