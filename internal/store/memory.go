package store

import (
	"context"
	"sort"
	"sync"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/errors"
)

// MemoryTemplates is an in-process template repository.
type MemoryTemplates struct {
	mu        sync.RWMutex
	templates map[string]brand.State
}

// NewMemoryTemplates creates an empty in-memory template repository.
func NewMemoryTemplates() *MemoryTemplates {
	return &MemoryTemplates{templates: map[string]brand.State{}}
}

// Put creates or replaces a template.
func (m *MemoryTemplates) Put(ctx context.Context, s brand.State) error {
	if s.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "template id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[s.ID] = s.Clone()
	return nil
}

// Get returns the template or a NOT_FOUND error.
func (m *MemoryTemplates) Get(ctx context.Context, id string) (brand.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.templates[id]
	if !ok {
		return brand.State{}, errors.New(errors.ErrCodeNotFound, "template %s not found", id)
	}
	return s.Clone(), nil
}

// List returns all templates sorted by ID for stable output.
func (m *MemoryTemplates) List(ctx context.Context) ([]brand.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]brand.State, 0, len(m.templates))
	for _, s := range m.templates {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes a template.
func (m *MemoryTemplates) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.templates, id)
	return nil
}

// Close does nothing.
func (m *MemoryTemplates) Close() error { return nil }

var _ TemplateRepository = (*MemoryTemplates)(nil)

// MemoryJobs is an in-process job store.
type MemoryJobs struct {
	mu        sync.RWMutex
	jobs      map[string]Job
	artifacts map[string][]byte
}

// NewMemoryJobs creates an empty in-memory job store.
func NewMemoryJobs() *MemoryJobs {
	return &MemoryJobs{
		jobs:      map[string]Job{},
		artifacts: map[string][]byte{},
	}
}

// Create stores a new job.
func (m *MemoryJobs) Create(ctx context.Context, job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[job.ID] = *job
	return nil
}

// Get returns a copy of the job or a JOB_NOT_FOUND error.
func (m *MemoryJobs) Get(ctx context.Context, id string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeJobNotFound, "job %s not found", id)
	}
	out := j
	return &out, nil
}

// Update replaces the stored job state.
func (m *MemoryJobs) Update(ctx context.Context, job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[job.ID]; !ok {
		return errors.New(errors.ErrCodeJobNotFound, "job %s not found", job.ID)
	}
	m.jobs[job.ID] = *job
	return nil
}

// PutArtifact stores the rendered bytes.
func (m *MemoryJobs) PutArtifact(ctx context.Context, jobID string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.artifacts[jobID] = buf
	return nil
}

// Artifact returns the stored bytes or a JOB_NOT_FOUND error.
func (m *MemoryJobs) Artifact(ctx context.Context, jobID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.artifacts[jobID]
	if !ok {
		return nil, errors.New(errors.ErrCodeJobNotFound, "no artifact for job %s", jobID)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Close does nothing.
func (m *MemoryJobs) Close() error { return nil }

var _ JobStore = (*MemoryJobs)(nil)
