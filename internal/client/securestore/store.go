// Package securestore is the encrypted local key-value store backing the
// vault. It plays the role the mobile platform's secure storage played:
// opaque string values under fixed string keys, encrypted at rest.
package securestore

import "context"

// Store is a string key-value store with encrypted persistence.
// Get returns common.ErrorNotFound for absent keys. Delete of an absent
// key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
