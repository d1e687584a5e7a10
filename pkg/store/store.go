// Package store records profile run history.
//
// Every profile run leaves a small record (run id, input, preset, counts)
// so `graphlens history` can answer "what did I analyze and when". The
// default backend is a JSON file in the user data directory; a MongoDB
// backend exists for shared deployments.
package store

import (
	"context"
	"time"

	"github.com/lkirchner/graphlens/pkg/errors"
)

// Run is one recorded profile run.
type Run struct {
	ID         string    `json:"id" bson:"id"`
	Input      string    `json:"input" bson:"input"`
	Preset     string    `json:"preset" bson:"preset"`
	Nodes      int       `json:"nodes" bson:"nodes"`
	Edges      int       `json:"edges" bson:"edges"`
	ReportPath string    `json:"report_path" bson:"report_path"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Store persists run records.
type Store interface {
	// Record appends a run.
	Record(ctx context.Context, run Run) error

	// List returns the most recent runs, newest first. A non-positive
	// limit returns everything.
	List(ctx context.Context, limit int) ([]Run, error)

	// Get returns the run with the given id.
	Get(ctx context.Context, id string) (Run, error)

	// Close releases backend resources.
	Close() error
}

// errRunNotFound builds the shared not-found error.
func errRunNotFound(id string) error {
	return errors.New(errors.ErrCodeRunNotFound, "no recorded run with id %s", id)
}
