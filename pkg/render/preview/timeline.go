package preview

import (
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/render/scene"
	"github.com/deckforge/deckforge/pkg/style"
)

// renderTimeline draws the milestone journey. The spine and marker treatment
// change per family archetype; milestone count and positions do not.
func (c *renderContext) renderTimeline(sc *scene.Scene, l layout.Layout) {
	reg, ok := l.FindRegion(layout.RoleBody)
	if !ok {
		return
	}
	r := c.rect(reg, l)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	milestones := sample.TimelineMilestones
	spineY := r.Y + r.H*0.45
	inset := c.spacing(3)
	step := (r.W - 2*inset) / float64(len(milestones)-1)

	switch c.state.StyleFamily {
	case style.FamilyBrutalist, style.FamilySwiss, style.FamilyNeubrutalist, style.FamilyGeometric:
		c.timelineBlocks(sc, r, milestones, spineY, inset, step)
	case style.FamilyPlayful, style.FamilyMemphis, style.FamilyRetro, style.FamilyZine:
		c.timelineZigzag(sc, r, milestones, spineY, inset, step)
	case style.FamilyMinimal, style.FamilyGlass, style.FamilyElegant, style.FamilyLuxe:
		c.timelineHairline(sc, r, milestones, spineY, inset, step)
	default:
		c.timelineDots(sc, r, milestones, spineY, inset, step)
	}
}

func (c *renderContext) milestoneLabel(sc *scene.Scene, x, y float64, text string, anchor scene.Anchor) {
	size := c.fontSize(c.state.Typography.BodySize) * 0.9 * style.LabelSizeFactor(c.sp.LabelStyle)
	sc.Add(scene.Text{
		X: x, Y: y,
		Content: c.label(text),
		Font:    c.state.Typography.BodyFont,
		Size:    size,
		Weight:  c.state.Typography.BodyWeight,
		Anchor:  anchor,
		Color:   c.colors.Primary,
		Opacity: 1,
	})
}

// timelineDots: continuous spine, filled circular markers, labels alternating
// above and below so long names do not collide.
func (c *renderContext) timelineDots(sc *scene.Scene, r layout.Rect, milestones []string, spineY, inset, step float64) {
	sc.Add(scene.Line{
		X1: r.X + inset, Y1: spineY, X2: r.X + r.W - inset, Y2: spineY,
		Paint: scene.Paint{
			Stroke: c.colors.Secondary, StrokeWidth: c.lineWidth(), StrokeOpacity: 1,
			Dash: c.mp.StrokeDasharray,
		},
	})
	markR := c.spacing(1.2) * c.mp.ElementScale
	for i, m := range milestones {
		x := r.X + inset + float64(i)*step
		fill := c.colors.Secondary
		if i == len(milestones)-1 {
			fill = c.colors.Accent
		}
		sc.Add(scene.Ellipse{
			CX: x, CY: spineY, RX: markR, RY: markR,
			Paint: scene.Paint{
				Fill: fill, FillOpacity: c.accentOpacity(),
				Stroke: c.colors.Background, StrokeWidth: c.borderWidth(),
			},
		})
		labelY := spineY - markR - c.spacing(2)
		if i%2 == 1 {
			labelY = spineY + markR + c.spacing(3)
		}
		c.milestoneLabel(sc, x, labelY, m, scene.AnchorMiddle)
	}
}

// timelineBlocks: heavy bar spine and square markers, labels all below.
func (c *renderContext) timelineBlocks(sc *scene.Scene, r layout.Rect, milestones []string, spineY, inset, step float64) {
	barH := c.accentWidth() * 1.5
	sc.Add(scene.Rect{
		X: r.X + inset, Y: spineY - barH/2, W: r.W - 2*inset, H: barH,
		Paint: scene.Paint{Fill: c.colors.Primary, FillOpacity: 1},
	})
	side := c.spacing(2.4) * c.mp.ElementScale
	for i, m := range milestones {
		x := r.X + inset + float64(i)*step
		fill := c.colors.Primary
		if i == len(milestones)-1 {
			fill = c.colors.Accent
		}
		sc.Add(scene.Rect{
			X: x - side/2, Y: spineY - side/2, W: side, H: side,
			Paint: scene.Paint{
				Fill: fill, FillOpacity: 1,
				Stroke: "#000000", StrokeWidth: c.borderWidth(),
			},
		})
		c.milestoneLabel(sc, x, spineY+side+c.spacing(2), m, scene.AnchorMiddle)
	}
}

// timelineZigzag: markers alternate above and below a mid spine, joined by a
// polyline instead of a straight rule.
func (c *renderContext) timelineZigzag(sc *scene.Scene, r layout.Rect, milestones []string, spineY, inset, step float64) {
	rise := r.H * 0.16
	pts := make([]scene.Point, len(milestones))
	for i := range milestones {
		y := spineY - rise
		if i%2 == 1 {
			y = spineY + rise
		}
		pts[i] = scene.Point{X: r.X + inset + float64(i)*step, Y: y}
	}
	sc.Add(scene.Polyline{
		Points: pts,
		Paint: scene.Paint{
			Stroke: c.colors.Secondary, StrokeWidth: c.lineWidth(), StrokeOpacity: 1,
			Dash: c.mp.StrokeDasharray,
		},
	})
	markR := c.spacing(1.4) * c.mp.ElementScale
	for i, m := range milestones {
		fill := c.colors.Accent
		if i%2 == 1 {
			fill = c.colors.Secondary
		}
		sc.Add(scene.Ellipse{
			CX: pts[i].X, CY: pts[i].Y, RX: markR, RY: markR,
			Paint: scene.Paint{
				Fill: fill, FillOpacity: c.accentOpacity(),
				Stroke: c.colors.Background, StrokeWidth: c.borderWidth(),
			},
		})
		labelY := pts[i].Y - markR - c.spacing(2)
		if i%2 == 1 {
			labelY = pts[i].Y + markR + c.spacing(3)
		}
		c.milestoneLabel(sc, pts[i].X, labelY, m, scene.AnchorMiddle)
	}
}

// timelineHairline: thin spine, open ring markers, understated labels above.
func (c *renderContext) timelineHairline(sc *scene.Scene, r layout.Rect, milestones []string, spineY, inset, step float64) {
	sc.Add(scene.Line{
		X1: r.X + inset, Y1: spineY, X2: r.X + r.W - inset, Y2: spineY,
		Paint: scene.Paint{Stroke: c.colors.Neutral, StrokeWidth: c.lineWidth() * 0.6, StrokeOpacity: 0.7},
	})
	markR := c.spacing(1) * c.mp.ElementScale
	for i, m := range milestones {
		x := r.X + inset + float64(i)*step
		paint := scene.Paint{
			Fill: c.colors.Background, FillOpacity: 1,
			Stroke: c.colors.Secondary, StrokeWidth: c.lineWidth() * 0.8, StrokeOpacity: 1,
		}
		if i == len(milestones)-1 {
			paint.Fill = c.colors.Accent
			paint.FillOpacity = c.accentOpacity()
			paint.Stroke = c.colors.Accent
		}
		sc.Add(scene.Ellipse{CX: x, CY: spineY, RX: markR, RY: markR, Paint: paint})
		c.milestoneLabel(sc, x, spineY-markR-c.spacing(2), m, scene.AnchorMiddle)
	}
}
