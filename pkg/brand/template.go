// Package brand defines the template data model for DeckForge.
//
// A Template is the root document of an editing session. It is mutated only
// through whole-replacement of sub-objects, never in-place field mutation,
// so undo/redo can work from structural snapshots. The State wrapper adds
// the presentation-only knobs (style family, mood, density, type scale,
// contrast level); those four fields plus tokens and typography are the only
// inputs the style compiler and renderers may read.
package brand

import (
	"time"

	"github.com/google/uuid"

	"github.com/deckforge/deckforge/pkg/color"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/style"
)

// Tokens holds the design tokens of a template.
type Tokens struct {
	Colors            color.Palette `json:"colors"`
	SpacingScale      float64       `json:"spacingScale"`
	CornerRadiusScale float64       `json:"cornerRadiusScale"`
}

// Typography holds the type settings of a template.
type Typography struct {
	TitleFont   string  `json:"titleFont" validate:"required,max=64"`
	BodyFont    string  `json:"bodyFont" validate:"required,max=64"`
	TitleSize   float64 `json:"titleSize"`
	BodySize    float64 `json:"bodySize"`
	LineHeight  float64 `json:"lineHeight"`
	TitleWeight int     `json:"titleWeight"`
	BodyWeight  int     `json:"bodyWeight"`
}

// Accent is an optional ornamental mark attached to a template.
type Accent struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"` // underline | arrow | squiggle | frame
	Color string `json:"color"`
}

// Template is the root brand document.
type Template struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required,max=120"`
	Version int    `json:"version"`

	Tokens     Tokens          `json:"tokens"`
	Typography Typography      `json:"typography"`
	Layouts    []layout.Layout `json:"layouts" validate:"min=1"`
	Accents    []Accent        `json:"accents,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// State is a template plus the presentation-only knobs. Renderers receive a
// State by value: it is an immutable snapshot for the duration of a render.
type State struct {
	Template

	StyleFamily    style.Family `json:"styleFamily"`
	Mood           style.Mood   `json:"mood"`
	SpacingDensity float64      `json:"spacingDensity" validate:"gte=0.5,lte=2"`
	TypeScale      float64      `json:"typeScale" validate:"gte=1.1,lte=1.5"`
	ContrastLevel  int          `json:"contrastLevel" validate:"gte=0,lte=100"`
}

// DefaultPalette is the out-of-the-box color set.
var DefaultPalette = color.Palette{
	Primary:    "#1A2B4C",
	Secondary:  "#3D5A80",
	Neutral:    "#5C6672",
	Background: "#FAFAF8",
	Accent:     "#EE6C4D",
}

// NewState creates a fresh editing session with hard-coded defaults: one
// layout per archetype, the default palette, and the clean/calm presets.
func NewState() State {
	now := time.Now().UTC()
	return State{
		Template: Template{
			ID:      uuid.NewString(),
			Name:    "Untitled Brand",
			Version: 1,
			Tokens: Tokens{
				Colors:            DefaultPalette,
				SpacingScale:      8,
				CornerRadiusScale: 6,
			},
			Typography: Typography{
				TitleFont:   "Helvetica",
				BodyFont:    "Arial",
				TitleSize:   32,
				BodySize:    16,
				LineHeight:  1.4,
				TitleWeight: 700,
				BodyWeight:  400,
			},
			Layouts:   layout.Defaults(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StyleFamily:    style.FamilyClean,
		Mood:           style.MoodCalm,
		SpacingDensity: 1,
		TypeScale:      1.25,
		ContrastLevel:  50,
	}
}

// Clone returns a deep copy of the state. Mutators clone first so every
// snapshot in the history is structurally independent.
func (s State) Clone() State {
	out := s
	out.Layouts = make([]layout.Layout, len(s.Layouts))
	for i, l := range s.Layouts {
		out.Layouts[i] = l.Clone()
	}
	if s.Accents != nil {
		out.Accents = make([]Accent, len(s.Accents))
		copy(out.Accents, s.Accents)
	}
	return out
}

func (s State) touched() State {
	s.UpdatedAt = time.Now().UTC()
	s.Version++
	return s
}

// SetColors replaces the whole color token set. Generated palettes become
// tokens only through this explicit call, never silently.
func (s State) SetColors(p color.Palette) State {
	out := s.Clone()
	out.Tokens.Colors = p
	return out.touched()
}

// SetTokens replaces the token set wholesale.
func (s State) SetTokens(t Tokens) State {
	out := s.Clone()
	out.Tokens = t
	return out.touched()
}

// SetTypography replaces the typography settings wholesale.
func (s State) SetTypography(t Typography) State {
	out := s.Clone()
	out.Typography = t
	return out.touched()
}

// SetStyleFamily switches the style family preset.
func (s State) SetStyleFamily(f style.Family) State {
	out := s.Clone()
	out.StyleFamily = f
	return out.touched()
}

// SetMood switches the mood preset.
func (s State) SetMood(m style.Mood) State {
	out := s.Clone()
	out.Mood = m
	return out.touched()
}

// SetSpacingDensity sets the continuous spacing knob (0.5–2.0).
func (s State) SetSpacingDensity(d float64) State {
	out := s.Clone()
	out.SpacingDensity = d
	return out.touched()
}

// SetTypeScale sets the continuous type-scale knob (1.1–1.5).
func (s State) SetTypeScale(ts float64) State {
	out := s.Clone()
	out.TypeScale = ts
	return out.touched()
}

// SetContrastLevel sets the contrast knob (0–100).
func (s State) SetContrastLevel(level int) State {
	out := s.Clone()
	out.ContrastLevel = level
	return out.touched()
}

// ReplaceLayout swaps the layout with the same type for the given complete
// definition (variant selection semantics: wholesale replacement, no merge).
// A layout type not present in the template is appended.
func (s State) ReplaceLayout(l layout.Layout) State {
	out := s.Clone()
	for i, existing := range out.Layouts {
		if existing.Type == l.Type {
			out.Layouts[i] = l.Clone()
			return out.touched()
		}
	}
	out.Layouts = append(out.Layouts, l.Clone())
	return out.touched()
}

// SetLayoutEnabled toggles whether the layout with the given type
// participates in export.
func (s State) SetLayoutEnabled(t layout.Type, enabled bool) State {
	out := s.Clone()
	for i := range out.Layouts {
		if out.Layouts[i].Type == t {
			v := enabled
			out.Layouts[i].Enabled = &v
		}
	}
	return out.touched()
}

// Layout returns the template's layout of the given type.
func (s State) Layout(t layout.Type) (layout.Layout, bool) {
	for _, l := range s.Layouts {
		if l.Type == t {
			return l, true
		}
	}
	return layout.Layout{}, false
}

// EnabledLayouts returns the layouts that participate in export.
func (s State) EnabledLayouts() []layout.Layout {
	var out []layout.Layout
	for _, l := range s.Layouts {
		if l.IsEnabled() {
			out = append(out, l)
		}
	}
	return out
}
