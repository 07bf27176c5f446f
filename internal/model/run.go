// Package model holds the shared types persisted by the run store.
package model

import (
	"encoding/json"
	"time"
)

// RunStatus represents the outcome of a fusion run.
type RunStatus string

const (
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one recorded fusion invocation: which document it fused, how many
// providers contributed, and the full consensus result as JSON.
type Run struct {
	ID                string          `json:"id"`
	Label             string          `json:"label"`
	ProviderCount     int             `json:"provider_count"`
	OverallConfidence float64         `json:"overall_confidence"`
	Status            RunStatus       `json:"status"`
	Result            json.RawMessage `json:"result,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
