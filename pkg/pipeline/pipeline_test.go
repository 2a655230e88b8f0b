package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/layout"
)

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	if opts.LayoutType != DefaultLayoutType {
		t.Errorf("LayoutType = %q, want %q", opts.LayoutType, DefaultLayoutType)
	}
	if opts.Width != DefaultWidth {
		t.Errorf("Width = %g, want %g", opts.Width, DefaultWidth)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
}

func TestOptionsRejectsBadFormat(t *testing.T) {
	opts := Options{Formats: []string{"pdf"}}
	err := opts.ValidateAndSetDefaults()
	if err == nil {
		t.Fatal("pdf accepted")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestOptionsRejectsBadLayout(t *testing.T) {
	opts := Options{LayoutType: "hexagonChart"}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Fatalf("error = %v, want INVALID_LAYOUT", err)
	}
}

func TestExecuteAllFormats(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	state := brand.NewState()

	result, err := r.Execute(context.Background(), state, Options{
		Formats: []string{FormatSVG, FormatPNG, FormatJSON, FormatPPTX},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, f := range []string{FormatSVG, FormatPNG, FormatJSON, FormatPPTX} {
		if len(result.Artifacts[f]) == 0 {
			t.Errorf("format %s produced no bytes", f)
		}
	}
	if !bytes.HasPrefix(result.Artifacts[FormatPPTX], []byte("PK")) {
		t.Error("pptx artifact is not a zip")
	}
	if result.Stats.StateHash == "" {
		t.Error("state hash not recorded")
	}
}

func TestExecuteCachesArtifacts(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	state := brand.NewState()
	opts := Options{Formats: []string{FormatSVG}}

	first, err := r.Execute(context.Background(), state, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.CacheInfo.Hits[FormatSVG] {
		t.Fatal("first run reported a cache hit")
	}

	second, err := r.Execute(context.Background(), state, Options{Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.CacheInfo.Hits[FormatSVG] {
		t.Fatal("second run missed the cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Fatal("cached artifact differs from rendered artifact")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	state := brand.NewState()

	if _, err := r.Execute(context.Background(), state, Options{Formats: []string{FormatSVG}}); err != nil {
		t.Fatalf("warm run: %v", err)
	}
	result, err := r.Execute(context.Background(), state, Options{Formats: []string{FormatSVG}, Refresh: true})
	if err != nil {
		t.Fatalf("refresh run: %v", err)
	}
	if result.CacheInfo.Hits[FormatSVG] {
		t.Fatal("refresh run hit the cache")
	}
}

func TestExecuteUnknownLayoutInTemplate(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	state := brand.NewState()
	// Remove the quote layout from the template, then ask for it.
	var kept []layout.Layout
	for _, l := range state.Layouts {
		if l.Type != layout.TypeQuote {
			kept = append(kept, l)
		}
	}
	state.Layouts = kept

	_, err := r.Execute(context.Background(), state, Options{LayoutType: layout.TypeQuote})
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Fatalf("error = %v, want INVALID_LAYOUT", err)
	}
}

func TestExecutePPTXWarningsSurface(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	state := brand.NewState() // Helvetica title font forces a substitution

	result, err := r.Execute(context.Background(), state, Options{Formats: []string{FormatPPTX}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	found := false
	for _, w := range result.Warnings {
		if errors.Is(w, errors.ErrCodeFontSubstituted) {
			found = true
		}
	}
	if !found {
		t.Fatal("font substitution warning not surfaced through the pipeline")
	}
}
