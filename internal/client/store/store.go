// Package store implements the persistent key/value store backing the
// investrack client: whole named values, written and read in full, surviving
// restarts. Serialization to and from the durable text form happens here;
// callers only ever see decoded values.
package store

import "context"

// Names of the values the client keeps in the store.
const (
	KeySession = "session"
	KeyUsers   = "user-directory"
	KeyLedger  = "investment-ledger"
)

// Store is a synchronous, whole-value key/value store.
//
// Get reports absence with the second return value rather than an error.
// Set overwrites the full value for a key. Remove on a missing key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
