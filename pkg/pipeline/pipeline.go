// Package pipeline runs the resolve, render, encode sequence shared by the
// CLI, the HTTP API, and the export worker. Centralizing it keeps the entry
// points behaviorally identical: the same state and options produce the same
// artifacts no matter which surface asked.
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/preview"
)

// Defaults shared by CLI and API.
const (
	// DefaultWidth is the default preview frame width in pixels.
	DefaultWidth = preview.DesignWidth

	// DefaultLayoutType is rendered when the caller names none.
	DefaultLayoutType = layout.TypeTitle
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPPTX = "pptx"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPPTX: true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pptx, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options configures one pipeline run. The struct serializes for API
// requests; runtime-only fields are excluded.
type Options struct {
	// LayoutType selects which template layout to render for the preview
	// formats. The pptx format always exports every enabled layout.
	LayoutType layout.Type `json:"layout_type,omitempty"`

	// Width is the preview frame width in pixels.
	Width float64 `json:"width,omitempty"`

	// ShowRegions renders labeled region boxes instead of content.
	ShowRegions bool `json:"show_regions,omitempty"`

	// Formats are the artifact formats to produce.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized).
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.LayoutType == "" {
		o.LayoutType = DefaultLayoutType
	}
	if !o.LayoutType.Valid() {
		return errors.New(errors.ErrCodeInvalidLayout, "invalid layout type: %q", o.LayoutType)
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
