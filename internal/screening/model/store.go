package model

import (
	"context"
)

// CandidateStore persists completed candidate records, keyed by session id.
type CandidateStore interface {
	// Save writes the record exactly once and returns the storage key.
	// A write failure is a correctness issue and must surface to the caller.
	Save(ctx context.Context, record *CandidateRecord) (string, error)

	// Load retrieves a record by session id.
	Load(ctx context.Context, sessionID string) (*CandidateRecord, error)

	// List returns all stored records, most recent first.
	List(ctx context.Context) ([]*CandidateRecord, error)
}
