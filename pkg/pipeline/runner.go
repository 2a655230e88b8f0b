package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/observability"
	"github.com/deckforge/deckforge/pkg/render/deck"
	"github.com/deckforge/deckforge/pkg/render/preview"
	"github.com/deckforge/deckforge/pkg/render/sink"
)

// Runner executes the pipeline with artifact caching. It is stateless apart
// from the cache and logger; one Runner serves concurrent callers.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil keyer
// selects the default keyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artifacts holds rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Warnings carries non-fatal issues (font substitutions).
	Warnings []error

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which formats came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	StateHash  string
	RenderTime time.Duration
	SlideCount int
}

// CacheInfo tracks cache hits per format.
type CacheInfo struct {
	Hits map[string]bool
}

// Execute renders the requested formats for one template state.
func (r *Runner) Execute(ctx context.Context, state brand.State, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, string(opts.LayoutType), opts.Formats)
	result := &Result{
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{Hits: map[string]bool{}},
	}

	stateData, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash state")
	}
	result.Stats.StateHash = cache.Hash(stateData)

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := r.Keyer.ArtifactKey(result.Stats.StateHash, cache.ArtifactKeyOpts{
			Format:      format,
			LayoutType:  string(opts.LayoutType),
			Width:       opts.Width,
			ShowRegions: opts.ShowRegions,
		})
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, format)
				result.Artifacts[format] = data
				result.CacheInfo.Hits[format] = true
				continue
			}
			observability.Cache().OnCacheMiss(ctx, format)
		}

		data, warnings, slides, err := r.renderFormat(state, format, opts)
		if err != nil {
			observability.Render().OnRenderComplete(ctx, string(opts.LayoutType), opts.Formats, time.Since(start), err)
			return nil, err
		}
		result.Artifacts[format] = data
		result.Warnings = append(result.Warnings, warnings...)
		if slides > result.Stats.SlideCount {
			result.Stats.SlideCount = slides
		}

		ttl := cache.TTLPreview
		if format == FormatPPTX {
			ttl = cache.TTLDocument
		}
		if err := r.Cache.Set(ctx, key, data, ttl); err == nil {
			observability.Cache().OnCacheSet(ctx, format, len(data))
		}
	}

	result.Stats.RenderTime = time.Since(start)
	observability.Render().OnRenderComplete(ctx, string(opts.LayoutType), opts.Formats, result.Stats.RenderTime, nil)
	logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"layout", opts.LayoutType,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// renderFormat produces the bytes for one format. Preview formats render
// the selected layout; pptx exports the whole enabled set.
func (r *Runner) renderFormat(state brand.State, format string, opts Options) ([]byte, []error, int, error) {
	if format == FormatPPTX {
		res := deck.Export(state)
		if !res.Success {
			err := errors.New(errors.ErrCodeExportFailed, "document export failed")
			if len(res.Errors) > 0 {
				err = errors.Wrap(errors.ErrCodeExportFailed, res.Errors[0], "document export failed")
			}
			return nil, nil, 0, err
		}
		return res.Buffer, res.Warnings, res.Metrics.SlideCount, nil
	}

	l, ok := state.Layout(opts.LayoutType)
	if !ok {
		return nil, nil, 0, errors.New(errors.ErrCodeInvalidLayout,
			"template has no layout of type %q", opts.LayoutType)
	}
	sc := preview.Render(state, l, preview.Options{
		Width:       opts.Width,
		ShowRegions: opts.ShowRegions,
	})

	switch format {
	case FormatSVG:
		return sink.RenderSVG(sc), nil, 1, nil
	case FormatPNG:
		data, err := sink.RenderPNG(sc)
		if err != nil {
			return nil, nil, 0, errors.Wrap(errors.ErrCodeExportFailed, err, "rasterize png")
		}
		return data, nil, 1, nil
	case FormatJSON:
		data, err := sink.RenderJSON(sc)
		if err != nil {
			return nil, nil, 0, errors.Wrap(errors.ErrCodeInternal, err, "encode scene json")
		}
		return data, nil, 1, nil
	}
	return nil, nil, 0, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
