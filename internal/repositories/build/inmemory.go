package build

import (
	"context"
	"sync"

	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. Builds
// are lost when the process exits.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Record
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the build
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	record := &Record{
		SessionID:      input.SessionID,
		CatalogVersion: input.CatalogVersion,
		State:          input.State.Clone(),
		UpdatedAt:      r.clock.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.SessionID] = record

	return &SaveOutput{Record: copyRecord(record)}, nil
}

// Get returns a copy of the stored build
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.store[input.SessionID]
	if !exists {
		return nil, errors.NotFound(errBuildNotFound).WithMeta("session_id", input.SessionID)
	}

	return &GetOutput{Record: copyRecord(record)}, nil
}

// Delete removes the stored build
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.SessionID]
	delete(r.store, input.SessionID)

	return &DeleteOutput{Deleted: exists}, nil
}

func copyRecord(record *Record) *Record {
	out := *record
	out.State = record.State.Clone()
	return &out
}
