package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/style"
)

func TestMemoryTemplatesRoundTrip(t *testing.T) {
	repo := NewMemoryTemplates()
	ctx := context.Background()

	s := brand.NewState()
	require.NoError(t, repo.Put(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.StyleFamily, got.StyleFamily)
}

func TestMemoryTemplatesIsolation(t *testing.T) {
	repo := NewMemoryTemplates()
	ctx := context.Background()

	s := brand.NewState()
	require.NoError(t, repo.Put(ctx, s))

	// Mutating the retrieved copy must not affect the stored one.
	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	got.Layouts[0].Regions[0].ID = "mutated"

	again, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Layouts[0].Regions[0].ID)
}

func TestMemoryTemplatesNotFound(t *testing.T) {
	repo := NewMemoryTemplates()
	_, err := repo.Get(context.Background(), "absent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
}

func TestMemoryTemplatesPutReplacesAndLists(t *testing.T) {
	repo := NewMemoryTemplates()
	ctx := context.Background()

	a := brand.NewState()
	b := brand.NewState()
	require.NoError(t, repo.Put(ctx, a))
	require.NoError(t, repo.Put(ctx, b))

	updated := a.SetStyleFamily(style.FamilyBold)
	require.NoError(t, repo.Put(ctx, updated))

	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, style.FamilyBold, got.StyleFamily)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.LessOrEqual(t, all[0].ID, all[1].ID)
}

func TestMemoryTemplatesRejectsEmptyID(t *testing.T) {
	repo := NewMemoryTemplates()
	err := repo.Put(context.Background(), brand.State{})
	require.Error(t, err)
}

func TestMemoryTemplatesDelete(t *testing.T) {
	repo := NewMemoryTemplates()
	ctx := context.Background()

	s := brand.NewState()
	require.NoError(t, repo.Put(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.Get(ctx, s.ID)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))

	// Deleting an absent ID is not an error.
	require.NoError(t, repo.Delete(ctx, "absent"))
}

func TestNewJobDefaults(t *testing.T) {
	job := NewJob("tmpl-1", "pptx")
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, StatusPending, job.Status)
	assert.Equal(t, "tmpl-1", job.TemplateID)
	assert.Equal(t, 0, job.Progress)
	assert.Nil(t, job.CompletedAt)
}

func TestJobStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestMemoryJobsLifecycle(t *testing.T) {
	jobs := NewMemoryJobs()
	ctx := context.Background()

	job := NewJob("tmpl-1", "pptx")
	require.NoError(t, jobs.Create(ctx, job))

	job.Status = StatusProcessing
	job.Progress = 30
	require.NoError(t, jobs.Update(ctx, job))

	got, err := jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)
	assert.Equal(t, 30, got.Progress)

	now := time.Now().UTC()
	job.Status = StatusCompleted
	job.Progress = 100
	job.CompletedAt = &now
	require.NoError(t, jobs.Update(ctx, job))

	got, err = jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestMemoryJobsNotFound(t *testing.T) {
	jobs := NewMemoryJobs()
	ctx := context.Background()

	_, err := jobs.Get(ctx, "absent")
	assert.True(t, errors.Is(err, errors.ErrCodeJobNotFound))

	err = jobs.Update(ctx, NewJob("t", "svg"))
	assert.True(t, errors.Is(err, errors.ErrCodeJobNotFound))
}

func TestMemoryJobsArtifact(t *testing.T) {
	jobs := NewMemoryJobs()
	ctx := context.Background()

	job := NewJob("tmpl-1", "pptx")
	require.NoError(t, jobs.Create(ctx, job))

	_, err := jobs.Artifact(ctx, job.ID)
	assert.True(t, errors.Is(err, errors.ErrCodeJobNotFound), "artifact before completion")

	payload := []byte("PK\x03\x04fake")
	require.NoError(t, jobs.PutArtifact(ctx, job.ID, payload))

	got, err := jobs.Artifact(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// The store keeps its own copy.
	payload[0] = 'X'
	got, err = jobs.Artifact(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, byte('P'), got[0])
}
