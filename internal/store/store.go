// Package store persists the history of formatting and simplification
// requests.
package store

// Request kinds recorded in history.
const (
	KindFormat   = "format"
	KindSimplify = "simplify"
)

// Entry is one recorded request.
type Entry struct {
	ID         int64
	Kind       string
	Formula    string
	Pretty     string
	Simplified string // empty for format entries
	Comment    string // empty for format entries
	CreatedAt  string // RFC 3339, UTC
}

// Store is the interface for history persistence. Recording is best effort
// at call sites; a failing store must never fail a request.
type Store interface {
	// Record appends an entry. The entry's ID and CreatedAt are assigned
	// by the store.
	Record(e Entry) error
	// Recent returns up to limit entries, newest first.
	Recent(limit int) ([]Entry, error)
	// Close releases resources.
	Close() error
}
