// Package build persists planner build states between sessions
package build

import (
	"context"
	"time"

	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=buildmock github.com/KirkDiggler/skilltree-api/internal/repositories/build Repository

// Record is a stored build
type Record struct {
	SessionID string `json:"session_id"`

	// CatalogVersion is the catalog the build was last validated against
	CatalogVersion string `json:"catalog_version"`

	State skilltree.BuildState `json:"state"`

	UpdatedAt time.Time `json:"updated_at"`
}

// SaveInput contains parameters for storing a build
type SaveInput struct {
	SessionID      string
	CatalogVersion string
	State          skilltree.BuildState
}

// SaveOutput contains the stored record
type SaveOutput struct {
	Record *Record
}

// GetInput contains parameters for loading a build
type GetInput struct {
	SessionID string
}

// GetOutput contains the loaded record
type GetOutput struct {
	Record *Record
}

// DeleteInput contains parameters for removing a build
type DeleteInput struct {
	SessionID string
}

// DeleteOutput reports whether a record existed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines storage operations for builds. Get returns a NotFound
// error when no build is stored for the session.
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errSessionIDEmpty = "session ID cannot be empty"
	errBuildNotFound  = "build not found"
)
