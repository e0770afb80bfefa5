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

// Package manifest defines the launcher metadata documents built on top of
// the library and rules models: the version manifest listing all game
// versions, the per-version detail document, asset indexes, and grouped
// library records with their content fingerprints.
package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"gopkg.in/yaml.v3"
)

// CurrentFormatVersion is the latest revision of the metadata format these
// model types deserialize.
const CurrentFormatVersion = 2

// VersionManifestURL is the default location of the upstream version
// manifest.
const VersionManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

// Version is one entry of the version manifest: enough to identify a game
// version and fetch its detail document, but not the detail itself.
//
// Version implements the model.Model interface.
type Version struct {
	// ID is the unique identifier of the version, for example "1.20.4".
	ID string `json:"id" yaml:"id"`

	// Type is the release type of the version.
	Type VersionType `json:"type" yaml:"type"`

	// URL links to the detail document (VersionInfo) for this version.
	URL string `json:"url" yaml:"url"`

	// Time is the latest time a file in this version was updated.
	Time time.Time `json:"time" yaml:"time"`

	// ReleaseTime is when this version was released.
	ReleaseTime time.Time `json:"releaseTime" yaml:"releaseTime"`

	// SHA1 is the checksum of the detail document at URL.
	SHA1 string `json:"sha1" yaml:"sha1"`

	// ComplianceLevel reports whether the version supports the latest
	// player safety features.
	ComplianceLevel int `json:"complianceLevel" yaml:"complianceLevel"`

	// AssetsIndexURL is a mirror-provided link to the assets index for
	// this version. Only present on some mirrors.
	AssetsIndexURL string `json:"assetsIndexUrl,omitempty" yaml:"assetsIndexUrl,omitempty"`

	// AssetsIndexSHA1 is the checksum of the mirror-provided assets
	// index.
	AssetsIndexSHA1 string `json:"assetsIndexSha1,omitempty" yaml:"assetsIndexSha1,omitempty"`

	// JavaProfile is the Java runtime profile required to run this
	// version, when the mirror provides it.
	JavaProfile JavaProfile `json:"javaProfile,omitempty" yaml:"javaProfile,omitempty"`
}

// Compile-time check that Version implements model.Model.
var _ model.Model = (*Version)(nil)

// Validate checks that the Version entry carries the fields needed to
// fetch and verify its detail document.
func (v Version) Validate() error {
	if v.ID == "" {
		return &dxerrors.ValidationError{Type: "Version", Field: "ID", Reason: "must not be empty"}
	}
	if err := v.Type.Validate(); err != nil {
		return err
	}
	if v.URL == "" {
		return &dxerrors.ValidationError{Type: "Version", Field: "URL", Reason: "must not be empty"}
	}
	return nil
}

// String returns a complete human-readable representation of the manifest
// entry.
func (v Version) String() string {
	return fmt.Sprintf("Version{ID:%s, Type:%s, ReleaseTime:%s}", v.ID, v.Type, v.ReleaseTime.Format(time.RFC3339))
}

// Redacted returns just the version id.
func (v Version) Redacted() string {
	return v.ID
}

// TypeName returns "Version", the name of the type for logging and
// debugging.
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether the Version is the zero value.
func (v Version) IsZero() bool {
	return v == Version{}
}

type versionAlias Version

// MarshalJSON implements json.Marshaler for Version, validating first so
// that incomplete manifest entries never reach documents.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal((versionAlias)(v))
}

// UnmarshalJSON implements json.Unmarshaler for Version.
func (v *Version) UnmarshalJSON(data []byte) error {
	var aux versionAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*v = (Version)(aux)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Version with the same validity
// guard as the JSON form.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return (versionAlias)(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Version.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var aux versionAlias
	if err := node.Decode(&aux); err != nil {
		return err
	}
	*v = (Version)(aux)
	return nil
}

// LatestVersion names the newest release and snapshot in a manifest.
type LatestVersion struct {
	// Release is the version id of the latest stable release.
	Release string `json:"release" yaml:"release"`

	// Snapshot is the version id of the latest snapshot.
	Snapshot string `json:"snapshot" yaml:"snapshot"`
}

// VersionManifest is the top-level document listing every available game
// version plus the latest release and snapshot pointers.
type VersionManifest struct {
	// Latest points at the newest release and snapshot.
	Latest LatestVersion `json:"latest" yaml:"latest"`

	// Versions lists every known version, newest first.
	Versions []Version `json:"versions" yaml:"versions"`
}

// Get returns the manifest entry with the given version id, or false when
// the manifest does not list it.
func (m VersionManifest) Get(id string) (Version, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return Version{}, false
}

// Validate checks every version entry in the manifest and combines the
// failures, so a single broken entry does not mask the rest.
func (m VersionManifest) Validate() error {
	return model.ValidateAll(m.Versions)
}
