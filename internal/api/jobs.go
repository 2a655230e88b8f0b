package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/deckforge/deckforge/internal/store"
	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/observability"
	"github.com/deckforge/deckforge/pkg/pipeline"
)

// Coarse progress checkpoints. Progress is synthesized from lifecycle
// transitions, not measured.
const (
	progressQueued    = 0
	progressRendering = 30
	progressStoring   = 90
	progressDone      = 100
)

// jobTimeout bounds a single export render.
const jobTimeout = 2 * time.Minute

// JobManager drives export jobs through pending → processing →
// completed/failed. One worker goroutine per job; terminal states are final.
type JobManager struct {
	store  store.JobStore
	runner *pipeline.Runner
	logger *log.Logger
}

// NewJobManager creates a job manager over a job store and a pipeline runner.
func NewJobManager(s store.JobStore, r *pipeline.Runner, logger *log.Logger) *JobManager {
	if logger == nil {
		logger = log.Default()
	}
	return &JobManager{store: s, runner: r, logger: logger}
}

// Start creates a pending job and launches its worker.
func (m *JobManager) Start(ctx context.Context, state brand.State, format string) (*store.Job, error) {
	if err := pipeline.ValidateFormat(format); err != nil {
		return nil, err
	}
	job := store.NewJob(state.ID, format)
	if err := m.store.Create(ctx, job); err != nil {
		return nil, err
	}
	go m.run(*job, state)
	return job, nil
}

// run renders the export and walks the job to a terminal state. The worker
// owns its own context: the request that started the job has long returned.
func (m *JobManager) run(job store.Job, state brand.State) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	m.transition(ctx, &job, store.StatusProcessing, progressRendering, nil)

	result, err := m.runner.Execute(ctx, state, pipeline.Options{
		Formats: []string{job.Format},
	})
	if err != nil {
		m.logger.Error("export job failed", "job", job.ID, "err", err)
		m.transition(ctx, &job, store.StatusFailed, job.Progress, err)
		return
	}

	for _, w := range result.Warnings {
		job.Warnings = append(job.Warnings, errors.UserMessage(w))
	}

	m.transition(ctx, &job, store.StatusProcessing, progressStoring, nil)
	if err := m.store.PutArtifact(ctx, job.ID, result.Artifacts[job.Format]); err != nil {
		m.logger.Error("artifact store failed", "job", job.ID, "err", err)
		m.transition(ctx, &job, store.StatusFailed, job.Progress, err)
		return
	}

	m.transition(ctx, &job, store.StatusCompleted, progressDone, nil)
	m.logger.Info("export job completed",
		"job", job.ID,
		"format", job.Format,
		"duration", result.Stats.RenderTime)
}

// transition updates the job unless it already reached a terminal state.
func (m *JobManager) transition(ctx context.Context, job *store.Job, status store.JobStatus, progress int, cause error) {
	if job.Status.Terminal() {
		return
	}
	job.Status = status
	job.Progress = progress
	job.UpdatedAt = time.Now().UTC()
	if cause != nil {
		job.Error = errors.UserMessage(cause)
	}
	if status.Terminal() {
		now := time.Now().UTC()
		job.CompletedAt = &now
	}
	if err := m.store.Update(ctx, job); err != nil {
		m.logger.Error("job update failed", "job", job.ID, "err", err)
	}
	observability.Jobs().OnJobTransition(ctx, job.ID, string(job.Status), job.Progress)
}

// exportRequest is the optional body of POST /export/{templateID}.
type exportRequest struct {
	Format string `json:"format,omitempty"`
}

// jobResponse is the job document returned by the export endpoints.
type jobResponse struct {
	store.Job

	// DownloadURL is present only once the job completes.
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// handleStartExport launches an export job for a stored template and
// returns 202 with the pending job document.
func (s *Server) handleStartExport(w http.ResponseWriter, r *http.Request) {
	state, err := s.templates.Get(r.Context(), chi.URLParam(r, "templateID"))
	if err != nil {
		writeError(w, err)
		return
	}

	req := exportRequest{Format: pipeline.FormatPPTX}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode export request"))
			return
		}
		if req.Format == "" {
			req.Format = pipeline.FormatPPTX
		}
	}

	job, err := s.jobs.Start(r.Context(), state, req.Format)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, jobResponse{Job: *job})
}

// handleExportStatus returns the job document. The download URL appears only
// on completed jobs.
func (s *Server) handleExportStatus(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobs.store.Get(r.Context(), chi.URLParam(r, "jobID"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp := jobResponse{Job: *job}
	if job.Status == store.StatusCompleted {
		resp.DownloadURL = "/export/download/" + job.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleExportDownload streams the finished artifact as an attachment.
// A job that has not completed yet is a client error, not a server one.
func (s *Server) handleExportDownload(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, err := s.jobs.store.Get(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	switch job.Status {
	case store.StatusCompleted:
	case store.StatusFailed:
		writeError(w, errors.New(errors.ErrCodeExportFailed, "export failed: %s", job.Error))
		return
	default:
		writeError(w, errors.New(errors.ErrCodeExportNotReady,
			"job %s is %s, not completed", jobID, job.Status))
		return
	}

	data, err := s.jobs.store.Artifact(r.Context(), jobID)
	if err != nil {
		// A completed job without its artifact is a store integrity
		// problem, not a bad request.
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "artifact missing for completed job %s", jobID))
		return
	}

	w.Header().Set("Content-Type", contentType(job.Format))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "deckforge-"+jobID[:8]+"."+job.Format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatPPTX:
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}
