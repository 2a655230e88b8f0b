package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge/internal/store"
	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/color"
	"github.com/deckforge/deckforge/pkg/pipeline"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := NewServer(Options{
		Addr:      ":0",
		Templates: store.NewMemoryTemplates(),
		Jobs:      store.NewMemoryJobs(),
		Runner:    pipeline.NewRunner(nil, nil, logger),
		Logger:    logger,
	})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createTemplate(t *testing.T, ts *httptest.Server) brand.State {
	t.Helper()
	resp := postJSON(t, ts.URL+"/templates", map[string]string{"name": "Acme Corp"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[brand.State](t, resp)
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTemplateCRUD(t *testing.T) {
	_, ts := newTestServer(t)

	created := createTemplate(t, ts)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Acme Corp", created.Name)
	assert.NotEmpty(t, created.Layouts, "defaults merged in")

	resp, err := http.Get(ts.URL + "/templates/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[brand.State](t, resp)
	assert.Equal(t, created.ID, got.ID)

	// Update with a partial document: only the named field changes.
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/templates/"+created.ID,
		strings.NewReader(`{"styleFamily":"brutalist"}`))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[brand.State](t, resp)
	assert.Equal(t, "brutalist", string(updated.StyleFamily))
	assert.Equal(t, "Acme Corp", updated.Name)

	req, err = http.NewRequest(http.MethodDelete, ts.URL+"/templates/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/templates/" + created.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateTemplateRejectsInvalid(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/templates", map[string]any{
		"name": "Bad Colors",
		"tokens": map[string]any{
			"colors": map[string]string{
				"primary":    "not-a-color",
				"secondary":  "#3D5A80",
				"neutral":    "#5C6672",
				"background": "#FAFAF8",
				"accent":     "#EE6C4D",
			},
		},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTemplateNotFound(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/templates/ghost")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPaletteGeneration(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/palette", map[string]any{
		"harmony": "triadic",
		"mood":    "cool",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decodeBody[color.Palette](t, resp)
	require.NoError(t, p.Validate())

	ok, err := color.MeetsAA(p.Primary, p.Background)
	require.NoError(t, err)
	assert.True(t, ok, "generated primary must meet AA on its background")
}

func TestPaletteSeededAndLocked(t *testing.T) {
	_, ts := newTestServer(t)

	current := color.Palette{
		Primary:    "#111111",
		Secondary:  "#3D5A80",
		Neutral:    "#5C6672",
		Background: "#FAFAF8",
		Accent:     "#EE6C4D",
	}
	resp := postJSON(t, ts.URL+"/palette", map[string]any{
		"harmony": "analogous",
		"seed":    "#3D5A80",
		"current": current,
		"locked":  map[string]bool{"accent": true},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decodeBody[color.Palette](t, resp)
	assert.Equal(t, current.Accent, p.Accent, "locked role copied verbatim")
}

func TestPaletteRejectsUnknownHarmony(t *testing.T) {
	_, ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/palette", map[string]string{"harmony": "tetradic"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func waitForJob(t *testing.T, ts *httptest.Server, jobID string) jobResponse {
	t.Helper()
	var last jobResponse
	require.Eventually(t, func() bool {
		resp, err := http.Get(ts.URL + "/export/status/" + jobID)
		if err != nil {
			return false
		}
		last = decodeBody[jobResponse](t, resp)
		return last.Status.Terminal()
	}, 30*time.Second, 50*time.Millisecond, "job never reached a terminal state")
	return last
}

func TestExportJobLifecycle(t *testing.T) {
	_, ts := newTestServer(t)
	tmpl := createTemplate(t, ts)

	resp := postJSON(t, ts.URL+"/export/"+tmpl.ID, map[string]string{"format": "pptx"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	accepted := decodeBody[jobResponse](t, resp)
	assert.NotEmpty(t, accepted.ID)
	assert.Equal(t, store.StatusPending, accepted.Status)
	assert.Empty(t, accepted.DownloadURL)

	final := waitForJob(t, ts, accepted.ID)
	require.Equal(t, store.StatusCompleted, final.Status)
	assert.Equal(t, 100, final.Progress)
	assert.Equal(t, "/export/download/"+accepted.ID, final.DownloadURL)
	require.NotNil(t, final.CompletedAt)

	dl, err := http.Get(ts.URL + final.DownloadURL)
	require.NoError(t, err)
	defer dl.Body.Close()
	require.Equal(t, http.StatusOK, dl.StatusCode)
	assert.Contains(t, dl.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, dl.Header.Get("Content-Type"), "presentationml")

	data, err := io.ReadAll(dl.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "pptx must be a zip")
}

func TestExportUnknownTemplate(t *testing.T) {
	_, ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/export/ghost", map[string]string{"format": "pptx"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportRejectsBadFormat(t *testing.T) {
	_, ts := newTestServer(t)
	tmpl := createTemplate(t, ts)
	resp := postJSON(t, ts.URL+"/export/"+tmpl.ID, map[string]string{"format": "pdf"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDownloadBeforeCompletionIsClientError(t *testing.T) {
	srv, ts := newTestServer(t)

	// Plant a processing job directly so the worker cannot race the check.
	job := store.NewJob("tmpl", "pptx")
	job.Status = store.StatusProcessing
	require.NoError(t, srv.jobs.store.Create(t.Context(), job))

	resp, err := http.Get(ts.URL + "/export/download/" + job.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "EXPORT_NOT_READY", body.Error.Code)
}

func TestDownloadCompletedJobWithoutArtifactIsServerError(t *testing.T) {
	srv, ts := newTestServer(t)

	// Plant a completed job whose artifact was never stored. The job says
	// done, so the missing bytes are an integrity failure on our side.
	job := store.NewJob("tmpl", "pptx")
	job.Status = store.StatusCompleted
	job.Progress = 100
	require.NoError(t, srv.jobs.store.Create(t.Context(), job))

	resp, err := http.Get(ts.URL + "/export/download/" + job.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestDownloadUnknownJob(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/export/download/ghost")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportStatusUnknownJob(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/export/status/ghost")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
