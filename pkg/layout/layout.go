// Package layout defines the grid-based coordinate system every slide
// archetype is expressed in.
//
// A Layout is a grid (columns × rows) plus named regions whose bounds are in
// grid units, not pixels. A region's absolute rectangle at any target
// resolution is bounds × (targetSize / gridCount); this single scaling rule
// lets a 320×180 preview and a 10×5.625 inch slide share one definition.
//
// The core does not validate region bounds (caller responsibility); both
// renderers clip out-of-range bounds silently and must not crash on them.
// Division guards for zero-sized grids are a documented precondition, not a
// runtime check.
package layout

// Type identifies a slide archetype.
type Type string

// All supported layout types. The eight chart types share the data-layout
// rendering machinery but each has its own chart-kind code path.
const (
	TypeTitle       Type = "title"
	TypeSection     Type = "section"
	TypeContent     Type = "content"
	TypeTwoColumn   Type = "twoColumn"
	TypeComparison  Type = "comparison"
	TypeTimeline    Type = "timeline"
	TypeQuote       Type = "quote"
	TypeMedia       Type = "media"
	TypeAgenda      Type = "agenda"
	TypeIconography Type = "iconography"
	TypeClosing     Type = "closing"

	TypeBarChart           Type = "barChart"
	TypeHorizontalBarChart Type = "horizontalBarChart"
	TypeLineChart          Type = "lineChart"
	TypeAreaChart          Type = "areaChart"
	TypePieChart           Type = "pieChart"
	TypeDonutChart         Type = "donutChart"
	TypeScatterChart       Type = "scatterChart"
	TypeStackedBarChart    Type = "stackedBarChart"
)

// Types lists every layout type in presentation order.
var Types = []Type{
	TypeTitle, TypeSection, TypeContent, TypeTwoColumn, TypeComparison,
	TypeTimeline, TypeQuote, TypeMedia, TypeAgenda, TypeIconography,
	TypeClosing, TypeBarChart, TypeHorizontalBarChart, TypeLineChart,
	TypeAreaChart, TypePieChart, TypeDonutChart, TypeScatterChart,
	TypeStackedBarChart,
}

// Valid reports whether t is a known layout type.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// IsChart reports whether t is one of the eight chart types.
func (t Type) IsChart() bool {
	switch t {
	case TypeBarChart, TypeHorizontalBarChart, TypeLineChart, TypeAreaChart,
		TypePieChart, TypeDonutChart, TypeScatterChart, TypeStackedBarChart:
		return true
	}
	return false
}

// IsSpecialContent reports whether t renders a native visual in place of
// body/media placeholder text (charts, timeline, comparison, iconography).
func (t Type) IsSpecialContent() bool {
	return t.IsChart() || t == TypeTimeline || t == TypeComparison || t == TypeIconography
}

// Role tags a region with its semantic purpose.
type Role string

// Region roles.
const (
	RoleHeader  Role = "header"
	RoleBody    Role = "body"
	RoleFooter  Role = "footer"
	RoleMedia   Role = "media"
	RoleCaption Role = "caption"
)

// GridConfig describes the layout grid.
type GridConfig struct {
	Columns int     `json:"columns"`
	Rows    int     `json:"rows"`
	Gutter  float64 `json:"gutter"`
}

// Bounds is a rectangle in grid units.
type Bounds struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Region is a named rectangular sub-area of a layout.
type Region struct {
	ID     string `json:"id"`
	Role   Role   `json:"role"`
	Bounds Bounds `json:"bounds"`
}

// Layout is a named, typed grid definition.
type Layout struct {
	Name    string     `json:"name"`
	Type    Type       `json:"type"`
	Grid    GridConfig `json:"grid"`
	Regions []Region   `json:"regions"`

	// Enabled defaults to true when absent; only an explicit false
	// disables the layout for export.
	Enabled *bool `json:"enabled,omitempty"`
}

// IsEnabled reports whether the layout participates in export.
func (l Layout) IsEnabled() bool {
	return l.Enabled == nil || *l.Enabled
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	out := l
	out.Regions = make([]Region, len(l.Regions))
	copy(out.Regions, l.Regions)
	if l.Enabled != nil {
		v := *l.Enabled
		out.Enabled = &v
	}
	return out
}

// Rect is an absolute rectangle at some target resolution.
type Rect struct {
	X, Y, W, H float64
}

// RegionRect maps a region's grid-unit bounds onto a target rectangle of
// width×height. Out-of-range bounds are clamped to the target, never
// rejected.
func RegionRect(b Bounds, grid GridConfig, width, height float64) Rect {
	cols := float64(grid.Columns)
	rows := float64(grid.Rows)
	r := Rect{
		X: b.X * width / cols,
		Y: b.Y * height / rows,
		W: b.W * width / cols,
		H: b.H * height / rows,
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.X+r.W > width {
		r.W = width - r.X
	}
	if r.Y+r.H > height {
		r.H = height - r.Y
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// FindRegion returns the first region with the given role. A missing region
// is non-fatal to renderers: they skip the piece and render the rest.
func (l Layout) FindRegion(role Role) (Region, bool) {
	for _, r := range l.Regions {
		if r.Role == role {
			return r, true
		}
	}
	return Region{}, false
}

// RegionsByRole returns all regions with the given role, in definition order.
func (l Layout) RegionsByRole(role Role) []Region {
	var out []Region
	for _, r := range l.Regions {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out
}
