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

// Package library defines the canonical library record of launcher
// metadata documents, the sparse patch form third parties overlay onto it,
// and the content-addressed URL resolution attached to library records.
package library

import (
	"encoding/json"
	"fmt"

	dxerrors "dirpx.dev/dxmeta/dxcore/errors"
	"dirpx.dev/dxmeta/dxcore/model"
	"dirpx.dev/dxmeta/dxcore/model/maven"
	"dirpx.dev/dxmeta/dxcore/model/rules"
	"gopkg.in/yaml.v3"
)

// CASShardPrefixLen is the number of leading hash characters used as the
// shard directory in the content-addressable-storage layout. The layout is
// a fixed convention shared between the resolver and anything regenerating
// a CAS tree; both sides read this constant.
const CASShardPrefixLen = 2

// Library is the canonical library record: the complete, authoritative
// description of one runtime artifact, including where to download it,
// which platforms it applies to, and how to locate it in
// content-addressable storage.
//
// A Library is an immutable value from the consumer's perspective.
// Instances come from deserializing a fetched document or from Merge,
// which builds a new record rather than modifying a shared one.
//
// Library implements the model.Model interface.
type Library struct {
	// Downloads lists the files published for this library.
	Downloads *Downloads `json:"downloads,omitempty" yaml:"downloads,omitempty"`

	// Extract holds extraction rules for natives archives.
	Extract *Extract `json:"extract,omitempty" yaml:"extract,omitempty"`

	// Name is the Maven coordinate identifying this library. Always
	// present and well-formed on a valid record.
	Name maven.Coordinate `json:"name" yaml:"name"`

	// URL is the base URL of a Maven repository the library can be
	// fetched from, used as the fallback when no content hash applies.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Natives maps an OS token to the classifier suffix of the natives
	// variant that platform needs.
	Natives map[rules.Os]string `json:"natives,omitempty" yaml:"natives,omitempty"`

	// Rules conditions the library's inclusion on the execution context;
	// empty means always included. Evaluated by rules.Evaluate.
	Rules []rules.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Checksums carries SHA-1 checksums for integrity validation. Only
	// present on some modded ecosystems' records.
	Checksums []string `json:"checksums,omitempty" yaml:"checksums,omitempty"`

	// IncludeInClasspath reports whether the library belongs on the game
	// classpath at launch. Defaults to true when the field is absent from
	// a document; natives-only libraries set it to false.
	IncludeInClasspath bool `json:"includeInClasspath" yaml:"includeInClasspath"`

	// Patched records provenance: false on every record as published,
	// true exactly when the record was produced by Merge. Not part of the
	// wire format.
	Patched bool `json:"-" yaml:"-"`

	// VersionHashes maps an exact game version string to the hex content
	// hash of the library build for that version. When the requested
	// version is present here, CAS resolution takes precedence over URL.
	VersionHashes map[string]string `json:"version_hashes,omitempty" yaml:"version_hashes,omitempty"`
}

// Compile-time check that Library implements model.Model.
var _ model.Model = (*Library)(nil)

// ResolveURL resolves the concrete download URL for this library and the
// given game version.
//
// When VersionHashes contains versionKey, the hash is turned into a
// content-addressable URL of the form
//
//	<baseURL>/v<casVersion>/objects/<hash[:2]>/<hash[2:]>
//
// using the first CASShardPrefixLen characters as the shard directory.
// Hash-based resolution always wins over the static URL field. A hash too
// short to shard is treated as "no URL available" rather than an error,
// since it indicates corrupt hash data the caller can only fall back from.
//
// When no hash applies, the library's URL field is returned if set. The
// second return value reports whether any URL was resolved.
func (l Library) ResolveURL(versionKey, baseURL string, casVersion uint32) (string, bool) {
	if hash, ok := l.VersionHashes[versionKey]; ok {
		if len(hash) < CASShardPrefixLen {
			return "", false
		}
		return fmt.Sprintf("%s/v%d/objects/%s/%s",
			baseURL, casVersion, hash[:CASShardPrefixLen], hash[CASShardPrefixLen:]), true
	}

	if l.URL != "" {
		return l.URL, true
	}
	return "", false
}

// Validate checks that the Library is well-formed: the coordinate MUST be
// present and valid, and every nested section and rule must validate.
func (l Library) Validate() error {
	if l.Name.IsZero() {
		return &dxerrors.ValidationError{Type: "Library", Field: "Name", Reason: "coordinate must be present"}
	}
	if err := l.Name.Validate(); err != nil {
		return err
	}
	if l.Downloads != nil {
		if err := l.Downloads.Validate(); err != nil {
			return err
		}
	}
	for _, rule := range l.Rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the library's coordinate plus its provenance flag, the
// two facts that identify a record in debugging output.
func (l Library) String() string {
	return fmt.Sprintf("Library{Name:%s, Patched:%v}", l.Name, l.Patched)
}

// Redacted returns just the coordinate string, compact enough for
// production logs.
func (l Library) Redacted() string {
	return l.Name.String()
}

// TypeName returns "Library", the name of the type for logging and
// debugging.
func (l Library) TypeName() string {
	return "Library"
}

// IsZero reports whether the Library carries no data at all. Note that a
// freshly constructed Library has IncludeInClasspath == false and is
// considered zero; records built from documents always pass through
// UnmarshalJSON, which applies the true default.
func (l Library) IsZero() bool {
	return l.Name.IsZero() &&
		l.Downloads == nil &&
		l.Extract == nil &&
		l.URL == "" &&
		l.Natives == nil &&
		l.Rules == nil &&
		l.Checksums == nil &&
		l.VersionHashes == nil &&
		!l.Patched &&
		!l.IncludeInClasspath
}

// libraryAlias strips Library's methods so the codec helpers can use the
// default struct encoding. The unmarshal side pre-sets the documented
// defaults before decoding over them.
type libraryAlias Library

// MarshalJSON implements json.Marshaler for Library, validating first so
// that records with missing or malformed coordinates never reach a
// published document. Patched is provenance, not payload, and is not
// serialized.
func (l Library) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	return json.Marshal((libraryAlias)(l))
}

// UnmarshalJSON implements json.Unmarshaler for Library. The
// includeInClasspath field defaults to true when absent, and Patched is
// always false on a freshly deserialized record regardless of input.
func (l *Library) UnmarshalJSON(data []byte) error {
	aux := libraryAlias{IncludeInClasspath: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	aux.Patched = false
	*l = (Library)(aux)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Library with the same validity
// guard as the JSON form.
func (l Library) MarshalYAML() (any, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	return (libraryAlias)(l), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Library with the same
// defaults as the JSON form.
func (l *Library) UnmarshalYAML(node *yaml.Node) error {
	aux := libraryAlias{IncludeInClasspath: true}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	aux.Patched = false
	*l = (Library)(aux)
	return nil
}
