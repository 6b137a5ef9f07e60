// Package primitives provides versioning utilities for GalleryConfig.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Fingerprint computes a deterministic identifier for a GalleryConfig.
// Priority: user-provided config.Version, else the first 8 bytes of SHA256(config JSON).
func Fingerprint(config *GalleryConfig) string {
	if config.Version != "" {
		return config.Version
	}

	data, err := json.Marshal(config)
	if err != nil {
		// GalleryConfig holds only strings and ints; unreachable in practice.
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
