package repository

import (
	"context"
	"encoding/json"
)

// Well-known keys for whole-value settings blobs.
const (
	KeyTargets           = "agency_targets"
	KeyAgencySettings    = "agency_settings"
	KeyValueLossSettings = "vl_settings"
)

// KVRepository is a durable key-value store for settings-style values that
// are always replaced as a whole, never patched.
type KVRepository interface {
	// Load returns the stored JSON value for key, or nil if absent.
	Load(ctx context.Context, key string) (json.RawMessage, error)

	// Save upserts the JSON value under key.
	Save(ctx context.Context, key string, value json.RawMessage) error
}
