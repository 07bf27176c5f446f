// Package store persists fusion run history behind a driver-selectable
// interface: sqlite for local use, postgres for shared deployments.
package store

import (
	"context"

	"github.com/sells-group/consensus-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Label  string          `json:"label,omitempty"`
	Limit  int             `json:"limit,omitempty"`
}

// Store defines the persistence interface for fusion run history.
type Store interface {
	CreateRun(ctx context.Context, run model.Run) (*model.Run, error)
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
