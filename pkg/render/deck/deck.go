// Package deck exports a brand template as an editable PowerPoint document.
//
// The exporter is a second, independent rendering of the template semantics:
// it composes the same style and layout products as the on-screen preview but
// emits OOXML parts instead of scene nodes, so a change to the combination
// rules must land in both renderers. Slides contain native shapes, text
// boxes, and charts; nothing is flattened to images.
//
// Export runs a strict validate, build, serialize sequence and always
// returns a Result, never a bare error: partial failures (font
// substitutions) surface as warnings on a successful result, and any panic
// in the build converts to a failed result with EXPORT_FAILED.
package deck

import (
	"bytes"
	"fmt"
	"time"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/style"
)

// Metrics captures timing and volume data for one export run. It is
// populated on failed results too.
type Metrics struct {
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	SlideCount       int       `json:"slideCount"`
	MasterSlideCount int       `json:"masterSlideCount"`

	// FontSubstitutions maps requested family to delivered family for
	// every substitution that occurred.
	FontSubstitutions map[string]string `json:"fontSubstitutions,omitempty"`
}

// Duration returns the wall time of the run.
func (m Metrics) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}

// Result is the outcome of one export run.
type Result struct {
	Success  bool
	Buffer   []byte
	Errors   []error
	Warnings []error
	Metrics  Metrics
}

// Export renders the template state into a complete .pptx archive.
func Export(state brand.State) (result Result) {
	result.Metrics.StartTime = time.Now().UTC()
	result.Metrics.FontSubstitutions = map[string]string{}
	defer func() {
		result.Metrics.EndTime = time.Now().UTC()
		if r := recover(); r != nil {
			result.Success = false
			result.Buffer = nil
			result.Errors = append(result.Errors,
				errors.New(errors.ErrCodeExportFailed, "export panicked: %v", r))
		}
	}()

	if errs := validate(state); len(errs) > 0 {
		result.Errors = errs
		return result
	}

	b := newBuilder(state)
	doc := b.build()
	result.Warnings = append(result.Warnings, b.warnings...)
	for requested, delivered := range b.substitutions {
		result.Metrics.FontSubstitutions[requested] = delivered
	}
	result.Metrics.SlideCount = len(doc.slides)
	result.Metrics.MasterSlideCount = len(doc.masters)

	var buf bytes.Buffer
	if err := doc.writeTo(&buf); err != nil {
		result.Errors = append(result.Errors,
			errors.Wrap(errors.ErrCodeExportFailed, err, "serialize archive"))
		return result
	}

	result.Success = true
	result.Buffer = buf.Bytes()
	return result
}

// validate rejects states that cannot produce a coherent document: missing
// identity fields, sub-minimum font sizes, and anything that would make the
// exporter itself misbehave. The template validator additionally covers
// authoring concerns like contrast.
func validate(state brand.State) []error {
	var errs []error

	if state.ID == "" {
		errs = append(errs, errors.New(errors.ErrCodeValidation, "template id is empty"))
	}
	if state.Name == "" {
		errs = append(errs, errors.New(errors.ErrCodeValidation, "template name is empty"))
	}
	if state.Typography.TitleSize < brand.MinTitleSize {
		errs = append(errs, errors.New(errors.ErrCodeValidation,
			"title size %.0fpt is below the %dpt minimum", state.Typography.TitleSize, brand.MinTitleSize))
	}
	if state.Typography.BodySize < brand.MinBodySize {
		errs = append(errs, errors.New(errors.ErrCodeValidation,
			"body size %.0fpt is below the %dpt minimum", state.Typography.BodySize, brand.MinBodySize))
	}

	if !state.StyleFamily.Valid() {
		errs = append(errs, errors.New(errors.ErrCodeInvalidStyle, "unknown style family %q", state.StyleFamily))
	}
	if !state.Mood.Valid() {
		errs = append(errs, errors.New(errors.ErrCodeInvalidMood, "unknown mood %q", state.Mood))
	}

	enabled := state.EnabledLayouts()
	if len(enabled) == 0 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidLayout, "no enabled layouts to export"))
	}
	for _, l := range enabled {
		if !l.Type.Valid() {
			errs = append(errs, errors.New(errors.ErrCodeInvalidLayout, "unknown layout type %q", l.Type))
		}
		if l.Grid.Columns <= 0 || l.Grid.Rows <= 0 {
			errs = append(errs, errors.New(errors.ErrCodeInvalidLayout, "layout %s has a zero-sized grid", l.Type))
		}
	}

	for _, role := range []struct{ name, hex string }{
		{"primary", state.Tokens.Colors.Primary},
		{"secondary", state.Tokens.Colors.Secondary},
		{"neutral", state.Tokens.Colors.Neutral},
		{"background", state.Tokens.Colors.Background},
		{"accent", state.Tokens.Colors.Accent},
	} {
		if err := errors.ValidateHexColor(role.hex); err != nil {
			errs = append(errs, errors.Wrap(errors.ErrCodeInvalidColorFormat, err, "%s color", role.name))
		}
	}
	return errs
}

// builder carries the per-run derived parameters shared by every slide.
type builder struct {
	state brand.State
	sp    style.Params
	mp    style.MoodParams
	cf    float64

	titleFont string
	bodyFont  string

	substitutions map[string]string
	warnings      []error

	chartSeq int
}

func newBuilder(state brand.State) *builder {
	b := &builder{
		state:         state,
		sp:            style.Compile(state.StyleFamily),
		mp:            style.CompileMood(state.Mood),
		cf:            style.ContrastFactor(state.ContrastLevel),
		substitutions: map[string]string{},
	}
	b.titleFont = b.font(state.Typography.TitleFont)
	b.bodyFont = b.font(state.Typography.BodyFont)
	return b
}

// font resolves a family through the fallback table, recording the
// substitution once per requested family.
func (b *builder) font(requested string) string {
	delivered, substituted := resolveFont(requested)
	if substituted {
		if _, seen := b.substitutions[requested]; !seen {
			b.substitutions[requested] = delivered
			b.warnings = append(b.warnings, errors.New(errors.ErrCodeFontSubstituted,
				"font %q is not available in PowerPoint, substituting %q", requested, delivered))
		}
	}
	return delivered
}

// build assembles one master, one slide layout, and one slide per enabled
// template layout, plus chart parts for the data archetypes.
func (b *builder) build() *document {
	doc := newDocument()
	doc.theme = b.themeXML()

	for i, l := range b.state.EnabledLayouts() {
		doc.addMaster(b.masterXML(i, l))
		doc.addLayout(b.layoutXML(l))
		doc.addSlide(b.buildSlide(l))
	}
	return doc
}

// slidePart is one slide plus its relationships.
type slidePart struct {
	xml    string
	charts []chartPart
}

type chartPart struct {
	name string // part name under ppt/charts/
	xml  string
}

func (b *builder) nextChartName() string {
	b.chartSeq++
	return fmt.Sprintf("chart%d.xml", b.chartSeq)
}
