package preview

import (
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/render/scene"
)

// renderTextBlocks renders generic body placeholders: a few text lines per
// body region, simulated as muted bars so density and spacing read true.
func (c *renderContext) renderTextBlocks(sc *scene.Scene, l layout.Layout) {
	for _, reg := range l.RegionsByRole(layout.RoleBody) {
		r := c.rect(reg, l)
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		bodySize := c.fontSize(c.state.Typography.BodySize)
		sc.Add(scene.Text{
			X: r.X, Y: r.Y + bodySize,
			Content: sample.BodyPlaceholder,
			Font:    c.state.Typography.BodyFont,
			Size:    bodySize,
			Weight:  c.state.Typography.BodyWeight,
			Anchor:  scene.AnchorStart,
			Color:   c.colors.Neutral,
			Opacity: 1,
		})

		// Simulated paragraph lines below the lead sentence.
		lineH := bodySize * c.state.Typography.LineHeight
		gap := c.spacing(1.5)
		y := r.Y + bodySize + gap + lineH
		widths := []float64{0.92, 0.85, 0.95, 0.6}
		for _, wf := range widths {
			if y+lineH > r.Y+r.H {
				break
			}
			sc.Add(scene.Rect{
				X: r.X, Y: y, W: r.W * wf, H: bodySize * 0.55,
				Radius: c.radius() * 0.3,
				Paint:  scene.Paint{Fill: c.colors.Neutral, FillOpacity: 0.25},
			})
			y += lineH
		}
	}
}

// renderQuote draws the testimonial with a family-scaled pull mark and the
// attribution in the caption region.
func (c *renderContext) renderQuote(sc *scene.Scene, l layout.Layout) {
	reg, ok := l.FindRegion(layout.RoleBody)
	if !ok {
		return
	}
	r := c.rect(reg, l)
	quoteSize := c.fontSize(c.state.Typography.TitleSize) * 0.8

	if c.sp.DecorativeElements {
		markSize := quoteSize * 2.4
		sc.Add(scene.Text{
			X: r.X, Y: r.Y + markSize*0.7,
			Content: "“",
			Font:    c.state.Typography.TitleFont,
			Size:    markSize,
			Weight:  c.state.Typography.TitleWeight,
			Anchor:  scene.AnchorStart,
			Color:   c.colors.Accent,
			Opacity: c.accentOpacity(),
		})
	}

	sc.Add(scene.Text{
		X: r.X + r.W/2, Y: r.Y + r.H/2,
		Content: sample.QuoteText,
		Font:    c.state.Typography.TitleFont,
		Size:    quoteSize,
		Weight:  c.state.Typography.TitleWeight,
		Italic:  true,
		Anchor:  scene.AnchorMiddle,
		Color:   c.colors.Primary,
		Opacity: 1,
	})

	if attr, ok := l.FindRegion(layout.RoleCaption); ok {
		ar := c.rect(attr, l)
		size := c.fontSize(c.state.Typography.BodySize)
		sc.Add(scene.Text{
			X: ar.X + ar.W/2, Y: ar.Y + size,
			Content: c.label("— " + sample.QuoteAttribution),
			Font:    c.state.Typography.BodyFont,
			Size:    size,
			Weight:  c.state.Typography.BodyWeight,
			Anchor:  scene.AnchorMiddle,
			Color:   c.colors.Neutral,
			Opacity: 0.9,
		})
	}
}

// renderAgenda lists the agenda items with numbered markers.
func (c *renderContext) renderAgenda(sc *scene.Scene, l layout.Layout) {
	regions := l.RegionsByRole(layout.RoleBody)
	if len(regions) == 0 {
		return
	}

	items := sample.AgendaItems
	perRegion := (len(items) + len(regions) - 1) / len(regions)
	bodySize := c.fontSize(c.state.Typography.BodySize) * 1.1

	idx := 0
	for _, reg := range regions {
		r := c.rect(reg, l)
		rowH := c.spacing(4.5)
		y := r.Y
		for i := 0; i < perRegion && idx < len(items); i++ {
			if y+rowH > r.Y+r.H+rowH/2 {
				break
			}
			markR := bodySize * 0.8
			sc.Add(scene.Ellipse{
				CX: r.X + markR, CY: y + rowH/2, RX: markR, RY: markR,
				Paint: scene.Paint{
					Fill:        c.colors.Accent,
					FillOpacity: c.accentOpacity(),
				},
			})
			sc.Add(scene.Text{
				X: r.X + markR, Y: y + rowH/2 + bodySize*0.35,
				Content: string(rune('1' + idx)),
				Font:    c.state.Typography.BodyFont,
				Size:    bodySize * 0.85,
				Weight:  700,
				Anchor:  scene.AnchorMiddle,
				Color:   c.colors.Background,
				Opacity: 1,
			})
			sc.Add(scene.Text{
				X: r.X + markR*2 + c.spacing(1.5), Y: y + rowH/2 + bodySize*0.35,
				Content: c.label(items[idx]),
				Font:    c.state.Typography.BodyFont,
				Size:    bodySize,
				Weight:  c.state.Typography.BodyWeight,
				Anchor:  scene.AnchorStart,
				Color:   c.colors.Primary,
				Opacity: 1,
			})
			y += rowH
			idx++
		}
	}
}

// renderMedia draws placeholder frames for media regions.
func (c *renderContext) renderMedia(sc *scene.Scene, l layout.Layout) {
	for _, reg := range l.RegionsByRole(layout.RoleMedia) {
		r := c.rect(reg, l)
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		sc.Add(c.card(r.X, r.Y, r.W, r.H, scene.Paint{
			Fill:        c.colors.Secondary,
			FillOpacity: 0.15,
			Stroke:      c.colors.Secondary,
			StrokeWidth: c.borderWidth(),
			Dash:        "6 4",
		})...)

		// Mountain-and-sun glyph marking an image slot.
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		gs := minF(r.W, r.H) * 0.18
		sc.Add(scene.Polygon{
			Points: []scene.Point{
				{X: cx - gs*1.4, Y: cy + gs},
				{X: cx - gs*0.3, Y: cy - gs*0.6},
				{X: cx + gs*0.6, Y: cy + gs},
			},
			Paint: scene.Paint{Fill: c.colors.Secondary, FillOpacity: 0.5},
		})
		sc.Add(scene.Ellipse{
			CX: cx + gs, CY: cy - gs*0.8, RX: gs * 0.35, RY: gs * 0.35,
			Paint: scene.Paint{Fill: c.colors.Accent, FillOpacity: c.accentOpacity()},
		})

		size := c.fontSize(c.state.Typography.BodySize) * 0.85
		sc.Add(scene.Text{
			X: cx, Y: cy + gs*2,
			Content: c.label(sample.MediaPlaceholder),
			Font:    c.state.Typography.BodyFont,
			Size:    size,
			Weight:  c.state.Typography.BodyWeight,
			Anchor:  scene.AnchorMiddle,
			Color:   c.colors.Neutral,
			Opacity: 0.8,
		})
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
