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

import dxerrors "dirpx.dev/dxmeta/dxcore/errors"

// Asset is one game asset file, located by the hash of its content.
type Asset struct {
	// Hash is the SHA-1 hash of the asset file.
	Hash string `json:"hash" yaml:"hash"`

	// Size is the size of the asset file in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// AssetsIndex lists every asset a game version needs, keyed by the
// asset's virtual file name.
type AssetsIndex struct {
	// Objects maps the virtual file name to its asset record.
	Objects map[string]Asset `json:"objects" yaml:"objects"`

	// MapVirtual reports whether the index should be reconstructed at a
	// virtual path.
	MapVirtual bool `json:"virtual,omitempty" yaml:"virtual,omitempty"`

	// MapToResources reports whether the index should be reconstructed in
	// the instance's resource directory.
	MapToResources bool `json:"map_to_resources,omitempty" yaml:"map_to_resources,omitempty"`
}

// Validate checks that every asset entry carries the content hash it is
// located by.
func (a AssetsIndex) Validate() error {
	for name, asset := range a.Objects {
		if asset.Hash == "" {
			return &dxerrors.ValidationError{
				Type:   "AssetsIndex",
				Field:  "Objects",
				Reason: "asset " + name + " has no hash",
			}
		}
	}
	return nil
}
