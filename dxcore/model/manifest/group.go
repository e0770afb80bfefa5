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
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"dirpx.dev/dxmeta/dxcore/model/library"
	"gopkg.in/yaml.v3"
)

// LibraryGroup is a named, versioned grouping of libraries that move
// together, such as the LWJGL natives set. Groups are published as
// standalone documents and referenced from versions through dependencies.
//
// Field order in this struct is the canonical serialization order;
// Fingerprint depends on it staying stable.
//
// LibraryGroup implements the model.Model interface.
type LibraryGroup struct {
	// ID is the version ID of the group document.
	ID string `json:"id" yaml:"id"`

	// Version is the version string for this group.
	Version string `json:"version" yaml:"version"`

	// UID is the Maven package group id of this group, for example
	// "org.lwjgl".
	UID string `json:"uid" yaml:"uid"`

	// ReleaseTime is when this group was released. Volatile across
	// refetches of otherwise identical content; Fingerprint ignores it.
	ReleaseTime time.Time `json:"releaseTime" yaml:"releaseTime"`

	// Type is the release type of the group.
	Type VersionType `json:"type" yaml:"type"`

	// Libraries is the library listing for this group.
	Libraries []library.Library `json:"libraries" yaml:"libraries"`

	// Requires lists groups this group depends on.
	Requires []library.Dependency `json:"requires,omitempty" yaml:"requires,omitempty"`

	// Conflicts lists groups this group cannot coexist with.
	Conflicts []library.Dependency `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`

	// HasSplitNatives marks groups whose libraries ship natives as
	// separate classified artifacts. Derived locally; read from documents
	// but never written back out.
	HasSplitNatives *bool `json:"hasSplitNatives,omitempty" yaml:"hasSplitNatives,omitempty"`
}

// Compile-time check that LibraryGroup implements model.Model.
var _ model.Model = (*LibraryGroup)(nil)

// fingerprintEpoch is the sentinel ReleaseTime used when fingerprinting,
// so that two groups differing only by timestamp hash identically.
var fingerprintEpoch = time.Unix(0, 0).UTC()

// Fingerprint computes a stable content hash of the group: the group is
// copied, its ReleaseTime reset to a fixed sentinel, the copy serialized
// to canonical JSON (fixed struct field order, sorted map keys), and the
// bytes hashed with SHA-1. The hex digest is returned.
//
// Two groups differing only in ReleaseTime produce the same fingerprint;
// any change to a library entry changes it. The serialization is
// deterministic across runs and platforms, which is what makes the
// fingerprint usable for change detection between two fetches.
func (g LibraryGroup) Fingerprint() (string, error) {
	copied := g
	copied.ReleaseTime = fingerprintEpoch

	data, err := json.Marshal(copied)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint %s: %w", g.TypeName(), err)
	}

	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}

// Validate checks the group's required identity fields and every library
// entry.
func (g LibraryGroup) Validate() error {
	if g.ID == "" {
		return &dxerrors.ValidationError{Type: "LibraryGroup", Field: "ID", Reason: "must not be empty"}
	}
	if g.UID == "" {
		return &dxerrors.ValidationError{Type: "LibraryGroup", Field: "UID", Reason: "must not be empty"}
	}
	if err := g.Type.Validate(); err != nil {
		return err
	}
	return model.ValidateAll(g.Libraries)
}

// String returns a complete human-readable representation of the group.
func (g LibraryGroup) String() string {
	return fmt.Sprintf("LibraryGroup{ID:%s, UID:%s, Version:%s, Libraries:%d}",
		g.ID, g.UID, g.Version, len(g.Libraries))
}

// Redacted returns the group's uid and version, its stable identity.
func (g LibraryGroup) Redacted() string {
	return g.UID + "@" + g.Version
}

// TypeName returns "LibraryGroup", the name of the type for logging and
// debugging.
func (g LibraryGroup) TypeName() string {
	return "LibraryGroup"
}

// IsZero reports whether the LibraryGroup carries no data.
func (g LibraryGroup) IsZero() bool {
	return g.ID == "" && g.Version == "" && g.UID == "" &&
		g.ReleaseTime.IsZero() && g.Type.IsZero() &&
		g.Libraries == nil && g.Requires == nil && g.Conflicts == nil &&
		g.HasSplitNatives == nil
}

type groupAlias LibraryGroup

// MarshalJSON implements json.Marshaler for LibraryGroup. HasSplitNatives
// is a locally derived flag: it is accepted from documents but never
// serialized back out.
func (g LibraryGroup) MarshalJSON() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", g.TypeName(), err)
	}
	copied := g
	copied.HasSplitNatives = nil
	return json.Marshal((groupAlias)(copied))
}

// UnmarshalJSON implements json.Unmarshaler for LibraryGroup.
func (g *LibraryGroup) UnmarshalJSON(data []byte) error {
	var aux groupAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*g = (LibraryGroup)(aux)
	return nil
}

// MarshalYAML implements yaml.Marshaler for LibraryGroup with the same
// derived-flag handling as the JSON form.
func (g LibraryGroup) MarshalYAML() (any, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", g.TypeName(), err)
	}
	copied := g
	copied.HasSplitNatives = nil
	return (groupAlias)(copied), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for LibraryGroup.
func (g *LibraryGroup) UnmarshalYAML(node *yaml.Node) error {
	var aux groupAlias
	if err := node.Decode(&aux); err != nil {
		return err
	}
	*g = (LibraryGroup)(aux)
	return nil
}

// GroupEntry pairs a library group with the fingerprint of its content,
// the unit callers compare across fetches to detect changed groups.
// Derived on demand, never persisted as authoritative state.
type GroupEntry struct {
	// SHA1 is the hex fingerprint of the group's content.
	SHA1 string

	// Group is the fingerprinted group.
	Group LibraryGroup
}

// NewGroupEntry fingerprints a group and pairs the two. The group is
// stored as given; only the hashed copy has its ReleaseTime reset.
func NewGroupEntry(group LibraryGroup) (GroupEntry, error) {
	sum, err := group.Fingerprint()
	if err != nil {
		return GroupEntry{}, err
	}
	return GroupEntry{SHA1: sum, Group: group}, nil
}
