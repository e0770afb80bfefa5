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

package library

import dxerrors "dirpx.dev/dxmeta/dxcore/errors"

// Download describes one downloadable library file: where it lives, where
// it lands relative to the libraries directory, and the integrity data
// needed to verify it.
type Download struct {
	// Path is the destination path relative to the libraries directory.
	Path string `json:"path" yaml:"path"`

	// SHA1 is the hex-encoded SHA-1 checksum of the file.
	SHA1 string `json:"sha1" yaml:"sha1"`

	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// URL is where the file can be fetched from. May be empty when the
	// location is derived elsewhere (CAS resolution or a repository URL).
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// IsZero reports whether the Download carries no information.
func (d Download) IsZero() bool {
	return d == Download{}
}

// Validate checks that the Download names a destination path and carries a
// checksum. Size and URL are optional in practice (some ecosystems publish
// entries without them).
func (d Download) Validate() error {
	if d.Path == "" {
		return &dxerrors.ValidationError{Type: "Download", Field: "Path", Reason: "must not be empty"}
	}
	if d.SHA1 == "" {
		return &dxerrors.ValidationError{Type: "Download", Field: "SHA1", Reason: "must not be empty"}
	}
	return nil
}

// Downloads is the download section of a library record: an optional main
// artifact plus an optional table of classifier-keyed variants (typically
// platform natives).
type Downloads struct {
	// Artifact is the main library file, if any.
	Artifact *Download `json:"artifact,omitempty" yaml:"artifact,omitempty"`

	// Classifiers maps a classifier key (for example "natives-linux") to
	// the variant file published under it.
	Classifiers map[string]Download `json:"classifiers,omitempty" yaml:"classifiers,omitempty"`
}

// IsZero reports whether the Downloads section is entirely absent.
func (d Downloads) IsZero() bool {
	return d.Artifact == nil && len(d.Classifiers) == 0
}

// Validate checks every present download entry.
func (d Downloads) Validate() error {
	if d.Artifact != nil {
		if err := d.Artifact.Validate(); err != nil {
			return err
		}
	}
	for key, dl := range d.Classifiers {
		if err := dl.Validate(); err != nil {
			return &dxerrors.ValidationError{
				Type:   "Downloads",
				Field:  "Classifiers",
				Reason: "entry " + key + " is invalid: " + err.Error(),
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the Downloads section. The merge engine
// uses it so that a merged library never shares map storage or the
// artifact pointer with its inputs.
func (d Downloads) Clone() Downloads {
	out := Downloads{}
	if d.Artifact != nil {
		artifact := *d.Artifact
		out.Artifact = &artifact
	}
	if d.Classifiers != nil {
		out.Classifiers = make(map[string]Download, len(d.Classifiers))
		for k, v := range d.Classifiers {
			out.Classifiers[k] = v
		}
	}
	return out
}

// Extract holds the rules applied when a library (usually a natives
// archive) is unpacked.
type Extract struct {
	// Exclude lists archive paths that must not be extracted, most
	// commonly "META-INF/".
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// IsZero reports whether the Extract section carries no exclusions.
func (e Extract) IsZero() bool {
	return len(e.Exclude) == 0
}
