package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mrezendes/investrack/internal/logging"
)

// Load reads and decodes the value stored under key.
//
// A missing key yields ok=false. A value that is present but cannot be
// decoded into T is treated the same way, after a warning is logged: an
// unreadable store must not brick the client, so corrupt content is
// discarded in favor of the empty default. Only real store failures are
// returned as errors.
func Load[T any](ctx context.Context, s Store, key string, log logging.Logger) (T, bool, error) {
	var v T

	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return v, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return v, false, nil
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn(ctx, "discarding unreadable store value", "key", key, "error", err)
		var empty T
		return empty, false, nil
	}
	return v, true, nil
}

// Save encodes v and writes it as the whole value under key.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
