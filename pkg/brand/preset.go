package brand

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/deckforge/deckforge/pkg/color"
	"github.com/deckforge/deckforge/pkg/style"
)

// StylePreset is the persisted style-preset file shape. It round-trips
// losslessly through export → import.
type StylePreset struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	Colors      color.Palette    `json:"colors"`
	Typography  PresetTypography `json:"typography"`

	StyleFamily    style.Family `json:"styleFamily"`
	Mood           style.Mood   `json:"mood"`
	SpacingDensity float64      `json:"spacingDensity"`
	TypeScale      float64      `json:"typeScale"`
	ContrastLevel  int          `json:"contrastLevel"`
}

// PresetTypography is the subset of typography carried by a preset.
type PresetTypography struct {
	TitleFont   string `json:"titleFont"`
	BodyFont    string `json:"bodyFont"`
	TitleWeight int    `json:"titleWeight"`
	BodyWeight  int    `json:"bodyWeight"`
}

// ExportPreset captures the current state's style settings as a preset.
func ExportPreset(s State, name string) StylePreset {
	return StylePreset{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Colors:    s.Tokens.Colors,
		Typography: PresetTypography{
			TitleFont:   s.Typography.TitleFont,
			BodyFont:    s.Typography.BodyFont,
			TitleWeight: s.Typography.TitleWeight,
			BodyWeight:  s.Typography.BodyWeight,
		},
		StyleFamily:    s.StyleFamily,
		Mood:           s.Mood,
		SpacingDensity: s.SpacingDensity,
		TypeScale:      s.TypeScale,
		ContrastLevel:  s.ContrastLevel,
	}
}

// Apply returns a new state with the preset's settings applied to s.
// Layouts and non-preset typography fields are preserved.
func (p StylePreset) Apply(s State) State {
	out := s.Clone()
	out.Tokens.Colors = p.Colors
	out.Typography.TitleFont = p.Typography.TitleFont
	out.Typography.BodyFont = p.Typography.BodyFont
	out.Typography.TitleWeight = p.Typography.TitleWeight
	out.Typography.BodyWeight = p.Typography.BodyWeight
	out.StyleFamily = p.StyleFamily
	out.Mood = p.Mood
	out.SpacingDensity = p.SpacingDensity
	out.TypeScale = p.TypeScale
	out.ContrastLevel = p.ContrastLevel
	return out.touched()
}

// WritePreset encodes a preset as indented JSON.
func WritePreset(p StylePreset, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	return nil
}

// ReadPreset decodes a preset from JSON.
func ReadPreset(r io.Reader) (StylePreset, error) {
	var p StylePreset
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return StylePreset{}, fmt.Errorf("decode preset: %w", err)
	}
	return p, nil
}
