// Package services contains the application services of the investrack
// client: the user directory, the session manager, and the investment
// ledger. Each one owns a single store key, loads its state once at startup,
// holds it in memory, and rewrites the whole value on every mutation, so the
// in-memory state and the persisted copy are equal after each operation.
package services
