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

// Package fetch defines the boundary to the byte-transfer collaborator:
// the Fetcher contract, checksum verification semantics, and typed
// retrieval of the metadata documents. The actual transport (HTTP client,
// mirror selection, retries, caching) is the caller's to provide; this
// package only shapes the contract and deserializes what comes back.
package fetch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"dirpx.dev/dxmeta/dxcore/model/manifest"
	"github.com/rs/zerolog"
)

// Fetcher retrieves the bytes at a URL. When expectedSHA1 is non-empty,
// the implementation MUST verify the payload against it (VerifySHA1 is
// the canonical check) and fail with a *ChecksumError on mismatch; the
// callers in this package never re-verify. Implementations own all
// transport concerns, including honoring ctx for cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string, expectedSHA1 string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string, expectedSHA1 string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, url string, expectedSHA1 string) ([]byte, error) {
	return f(ctx, url, expectedSHA1)
}

// ChecksumError reports a payload whose SHA-1 digest did not match the
// expected value. Terminal for the fetch that raised it; the metadata
// layer propagates it untouched.
type ChecksumError struct {
	// URL is where the payload came from.
	URL string

	// Expected is the hex digest the caller demanded.
	Expected string

	// Actual is the hex digest of the received payload.
	Actual string
}

// Error implements the error interface for ChecksumError.
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("dxmeta: checksum mismatch for %s: expected %s, got %s", e.URL, e.Expected, e.Actual)
}

// VerifySHA1 checks data against an expected hex SHA-1 digest and returns
// a *ChecksumError on mismatch. An empty expected digest skips the check;
// manifests reference some documents without checksums.
func VerifySHA1(url string, data []byte, expected string) error {
	if expected == "" {
		return nil
	}

	sum := sha1.Sum(data)
	actual := hex.EncodeToString(sum[:])
	if actual != expected {
		return &ChecksumError{URL: url, Expected: expected, Actual: actual}
	}
	return nil
}

// Client retrieves and deserializes metadata documents through a Fetcher.
type Client struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// NewClient returns a Client using the given Fetcher for byte transfer
// and logger for fetch-boundary diagnostics.
func NewClient(fetcher Fetcher, log zerolog.Logger) *Client {
	return &Client{fetcher: fetcher, log: log}
}

// VersionManifest fetches, deserializes and validates the version manifest
// from url, or from the default upstream location when url is empty.
func (c *Client) VersionManifest(ctx context.Context, url string) (*manifest.VersionManifest, error) {
	if url == "" {
		url = manifest.VersionManifestURL
	}

	c.log.Debug().Str("url", url).Msg("fetching version manifest")

	data, err := c.fetcher.Fetch(ctx, url, "")
	if err != nil {
		return nil, err
	}

	var m manifest.VersionManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("dxmeta: cannot deserialize version manifest from %s: %w", url, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("dxmeta: invalid version manifest from %s: %w", url, err)
	}

	c.log.Info().
		Str("url", url).
		Int("versions", len(m.Versions)).
		Str("latest_release", m.Latest.Release).
		Msg("fetched version manifest")

	return &m, nil
}

// VersionInfo fetches, deserializes and validates the detail document for
// a manifest entry, verifying it against the entry's checksum. A document
// missing required fields (a library record without a name, a version
// without a main class) is rejected, not returned half-populated.
func (c *Client) VersionInfo(ctx context.Context, version manifest.Version) (*manifest.VersionInfo, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("id", version.ID).
		Str("url", version.URL).
		Msg("fetching version info")

	data, err := c.fetcher.Fetch(ctx, version.URL, version.SHA1)
	if err != nil {
		return nil, err
	}

	var info manifest.VersionInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("dxmeta: cannot deserialize version info for %s: %w", version.ID, err)
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("dxmeta: invalid version info for %s: %w", version.ID, err)
	}

	c.log.Info().
		Str("id", info.ID).
		Int("libraries", len(info.Libraries)).
		Msg("fetched version info")

	return &info, nil
}

// AssetsIndex fetches, deserializes and validates the assets index
// referenced by a version detail document, verifying it against the
// referenced checksum.
func (c *Client) AssetsIndex(ctx context.Context, info *manifest.VersionInfo) (*manifest.AssetsIndex, error) {
	c.log.Debug().
		Str("id", info.AssetIndex.ID).
		Str("url", info.AssetIndex.URL).
		Msg("fetching assets index")

	data, err := c.fetcher.Fetch(ctx, info.AssetIndex.URL, info.AssetIndex.SHA1)
	if err != nil {
		return nil, err
	}

	var index manifest.AssetsIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("dxmeta: cannot deserialize assets index %s: %w", info.AssetIndex.ID, err)
	}
	if err := index.Validate(); err != nil {
		return nil, fmt.Errorf("dxmeta: invalid assets index %s: %w", info.AssetIndex.ID, err)
	}

	c.log.Info().
		Str("id", info.AssetIndex.ID).
		Int("objects", len(index.Objects)).
		Msg("fetched assets index")

	return &index, nil
}
