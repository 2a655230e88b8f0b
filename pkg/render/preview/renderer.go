// Package preview renders a brand template into a resolved scene graph for
// on-screen display.
//
// Render is a pure function of the template state, the chosen layout, and
// the target size; it is re-evaluated in full on every relevant state change
// and must stay cheap enough for that. Every absolute size derives from
// scale = targetWidth / 960 (the canonical design width) multiplied through
// the style/mood parameter products, the same composition the document
// exporter applies, so the two outputs stay visually equivalent.
//
// A missing expected region is non-fatal: the branch renders nothing for
// that piece and the rest of the slide still renders. Grid configs with zero
// columns or rows are a caller precondition, not a runtime check.
package preview

import (
	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/color"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/render/scene"
	"github.com/deckforge/deckforge/pkg/style"
)

// DesignWidth is the canonical frame width all scale math is relative to.
const DesignWidth = 960.0

// DesignHeight is the canonical 16:9 frame height.
const DesignHeight = 540.0

// Options configures a preview render.
type Options struct {
	// Width is the target frame width in pixels. Zero means DesignWidth.
	Width float64

	// ShowRegions bypasses content rendering and draws labeled bounding
	// boxes per region instead, for the layout-variant picker. The two
	// modes are mutually exclusive render paths over the same layout.
	ShowRegions bool
}

// Render resolves a template state and layout into a scene graph.
func Render(state brand.State, l layout.Layout, opts Options) *scene.Scene {
	width := opts.Width
	if width <= 0 {
		width = DesignWidth
	}
	height := width * DesignHeight / DesignWidth

	c := &renderContext{
		state:  state,
		sp:     style.Compile(state.StyleFamily),
		mp:     style.CompileMood(state.Mood),
		colors: state.Tokens.Colors,
		scale:  width / DesignWidth,
		cf:     style.ContrastFactor(state.ContrastLevel),
		width:  width,
		height: height,
	}

	sc := scene.New(width, height, style.Background(c.colors.Background, c.mp))

	if opts.ShowRegions {
		c.renderRegions(sc, l)
		return sc
	}

	c.renderHeader(sc, l)
	c.renderBody(sc, l)
	c.renderFooter(sc, l)
	c.renderCaptions(sc, l)
	return sc
}

type renderContext struct {
	state  brand.State
	sp     style.Params
	mp     style.MoodParams
	colors color.Palette
	scale  float64
	cf     float64
	width  float64
	height float64
}

func (c *renderContext) rect(r layout.Region, l layout.Layout) layout.Rect {
	return layout.RegionRect(r.Bounds, l.Grid, c.width, c.height)
}

func (c *renderContext) spacing(base float64) float64 {
	return style.Spacing(base, c.state.SpacingDensity, c.sp, c.mp) * c.scale
}

func (c *renderContext) fontSize(base float64) float64 {
	return style.FontSize(base, c.state.TypeScale, c.mp) * c.scale
}

func (c *renderContext) radius() float64 {
	return style.CornerRadius(c.state.Tokens.CornerRadiusScale, c.scale, c.sp, c.mp)
}

func (c *renderContext) accentOpacity() float64 {
	return style.AccentOpacity(c.sp, c.mp, c.cf)
}

func (c *renderContext) borderWidth() float64 {
	return style.StrokeWidth(c.sp.BorderThickness, c.scale, c.mp)
}

func (c *renderContext) lineWidth() float64 {
	return style.StrokeWidth(c.sp.LineThickness, c.scale, c.mp)
}

func (c *renderContext) accentWidth() float64 {
	return style.StrokeWidth(c.sp.AccentThickness, c.scale, c.mp)
}

func (c *renderContext) label(s string) string {
	return style.Label(s, c.sp.LabelStyle)
}

// card emits a card-like rectangle, preceded by a flat offset silhouette in
// the shadow tone whenever the family draws shadows. Hard-shadow families
// (offset ≥ 4) get a solid silhouette; soft families get a translucent one.
func (c *renderContext) card(x, y, w, h float64, paint scene.Paint) []scene.Node {
	var nodes []scene.Node
	if off := style.ShadowOffset(c.scale, c.sp, c.mp); off > 0 {
		opacity := 0.2 * c.mp.ShadowIntensity
		if c.sp.ShadowOffset >= 4 {
			opacity = 1
		}
		nodes = append(nodes, scene.Rect{
			X: x + off, Y: y + off, W: w, H: h,
			Radius: c.radius(),
			Paint:  scene.Paint{Fill: "#000000", FillOpacity: opacity},
		})
	}
	r := scene.Rect{X: x, Y: y, W: w, H: h, Radius: c.radius(), Paint: paint}
	nodes = append(nodes, r)
	return nodes
}

func (c *renderContext) renderHeader(sc *scene.Scene, l layout.Layout) {
	for _, reg := range l.RegionsByRole(layout.RoleHeader) {
		r := c.rect(reg, l)
		size := c.fontSize(c.state.Typography.TitleSize) * style.LabelSizeFactor(style.LabelNormal)
		sc.Add(scene.Text{
			X: r.X, Y: r.Y + size,
			Content: c.label(layout.PlaceholderTitle(l.Type)),
			Font:    c.state.Typography.TitleFont,
			Size:    size,
			Weight:  c.state.Typography.TitleWeight,
			Anchor:  scene.AnchorStart,
			Color:   c.colors.Primary,
			Opacity: 1,
		})
		if c.sp.DecorativeElements {
			// Accent underline beneath the title.
			y := r.Y + size + c.spacing(1)
			sc.Add(scene.Line{
				X1: r.X, Y1: y, X2: r.X + r.W*0.25, Y2: y,
				Paint: scene.Paint{
					Stroke:        c.colors.Accent,
					StrokeWidth:   c.accentWidth(),
					StrokeOpacity: c.accentOpacity(),
					Dash:          c.mp.StrokeDasharray,
				},
			})
		}
	}
}

// renderBody dispatches on layout type. Special content types draw their
// native visual; everything else gets generic text/shape placeholders.
func (c *renderContext) renderBody(sc *scene.Scene, l layout.Layout) {
	switch {
	case l.Type.IsChart():
		c.renderChart(sc, l)
	case l.Type == layout.TypeTimeline:
		c.renderTimeline(sc, l)
	case l.Type == layout.TypeComparison:
		c.renderComparison(sc, l)
	case l.Type == layout.TypeIconography:
		c.renderIconGrid(sc, l)
	case l.Type == layout.TypeQuote:
		c.renderQuote(sc, l)
	case l.Type == layout.TypeAgenda:
		c.renderAgenda(sc, l)
	case l.Type == layout.TypeMedia:
		c.renderMedia(sc, l)
	default:
		c.renderTextBlocks(sc, l)
	}
}

func (c *renderContext) renderFooter(sc *scene.Scene, l layout.Layout) {
	for _, reg := range l.RegionsByRole(layout.RoleFooter) {
		r := c.rect(reg, l)
		size := c.fontSize(c.state.Typography.BodySize) * 0.7
		sc.Add(scene.Text{
			X: r.X, Y: r.Y + size,
			Content: c.label(c.state.Name),
			Font:    c.state.Typography.BodyFont,
			Size:    size,
			Weight:  c.state.Typography.BodyWeight,
			Anchor:  scene.AnchorStart,
			Color:   c.colors.Neutral,
			Opacity: 0.8,
		})
	}
}

func (c *renderContext) renderCaptions(sc *scene.Scene, l layout.Layout) {
	// Quote attribution is drawn by the quote branch.
	if l.Type == layout.TypeQuote {
		return
	}
	for _, reg := range l.RegionsByRole(layout.RoleCaption) {
		r := c.rect(reg, l)
		size := c.fontSize(c.state.Typography.BodySize) * 0.8
		sc.Add(scene.Text{
			X: r.X, Y: r.Y + size,
			Content: sample.CaptionPlaceholder,
			Font:    c.state.Typography.BodyFont,
			Size:    size,
			Weight:  c.state.Typography.BodyWeight,
			Italic:  true,
			Anchor:  scene.AnchorStart,
			Color:   c.colors.Neutral,
			Opacity: 0.7,
		})
	}
}
