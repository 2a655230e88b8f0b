// Package store defines the persistence boundary for templates and export
// jobs, with interchangeable backends.
//
// The core packages never talk to storage; only the API layer and the CLI
// depend on these interfaces. Backends:
//   - memory: process-local maps for development and tests
//   - redis:  job state and artifact buffers with TTL, for multi-instance
//     deployments
//   - mongo:  durable template documents
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/deckforge/deckforge/pkg/brand"
)

// JobStatus is the lifecycle state of an export job.
type JobStatus string

// Job lifecycle states. Completed and failed are terminal; a job never
// leaves a terminal state.
const (
	StatusPending    JobStatus = "pending"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Terminal reports whether the status is final.
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job is one export request's tracked state. The artifact bytes live in a
// separate keyspace so polling a job stays cheap.
type Job struct {
	ID         string    `json:"jobId"`
	TemplateID string    `json:"templateId"`
	Status     JobStatus `json:"status"`

	// Progress is a coarse synthesized percentage (0, 30, 90, 100), not a
	// measured one.
	Progress int `json:"progress"`

	Format   string   `json:"format"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewJob creates a pending job for a template export.
func NewJob(templateID, format string) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:         uuid.NewString(),
		TemplateID: templateID,
		Status:     StatusPending,
		Format:     format,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ArtifactTTL bounds how long completed export artifacts are retained by
// TTL-capable backends.
const ArtifactTTL = 24 * time.Hour

// TemplateRepository stores brand template states keyed by template ID.
type TemplateRepository interface {
	// Put creates or replaces a template.
	Put(ctx context.Context, s brand.State) error

	// Get returns the template or a NOT_FOUND error.
	Get(ctx context.Context, id string) (brand.State, error)

	// List returns all stored templates.
	List(ctx context.Context) ([]brand.State, error)

	// Delete removes a template. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error

	Close() error
}

// JobStore tracks export jobs and their produced artifacts.
type JobStore interface {
	// Create stores a new job.
	Create(ctx context.Context, job *Job) error

	// Get returns the job or a JOB_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Job, error)

	// Update replaces the stored job state.
	Update(ctx context.Context, job *Job) error

	// PutArtifact stores the rendered bytes for a completed job.
	PutArtifact(ctx context.Context, jobID string, data []byte) error

	// Artifact returns the stored bytes or a JOB_NOT_FOUND error.
	Artifact(ctx context.Context, jobID string) ([]byte, error)

	Close() error
}
