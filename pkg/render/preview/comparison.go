package preview

import (
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/render/scene"
	"github.com/deckforge/deckforge/pkg/style"
)

// renderComparison dispatches on style family to structurally different
// sub-renderings, not recolored versions of one template. Families that
// share a structural archetype route to the same branch; the branches
// themselves are intentionally independent.
func (c *renderContext) renderComparison(sc *scene.Scene, l layout.Layout) {
	regions := l.RegionsByRole(layout.RoleBody)
	if len(regions) < 2 {
		return
	}
	left := c.rect(regions[0], l)
	right := c.rect(regions[1], l)

	switch c.state.StyleFamily {
	case style.FamilyClean, style.FamilySoft, style.FamilyOrganic:
		c.comparisonCards(sc, left, right)
	case style.FamilyEditorial, style.FamilyElegant, style.FamilyLuxe, style.FamilyZine:
		c.comparisonEditorial(sc, left, right)
	case style.FamilyBold, style.FamilyRetro, style.FamilyMemphis, style.FamilyPlayful:
		c.comparisonBold(sc, left, right)
	case style.FamilyMinimal, style.FamilyGlass:
		c.comparisonMinimal(sc, left, right)
	case style.FamilyCorporate, style.FamilyTech:
		c.comparisonCorporate(sc, left, right)
	case style.FamilyBento:
		c.comparisonBento(sc, left, right)
	case style.FamilyNeubrutalist:
		c.comparisonNeubrutalist(sc, left, right)
	default: // brutalist, swiss, geometric
		c.comparisonStark(sc, left, right)
	}
}

func (c *renderContext) comparisonSide(sc *scene.Scene, r layout.Rect, side int, textColor string, startY float64) {
	size := c.fontSize(c.state.Typography.BodySize)
	lineH := size * c.state.Typography.LineHeight * 1.3
	y := startY
	for _, point := range sample.ComparisonPoints[side] {
		if y+lineH > r.Y+r.H {
			break
		}
		sc.Add(scene.Ellipse{
			CX: r.X + c.spacing(2) + size*0.25, CY: y - size*0.3, RX: size * 0.2, RY: size * 0.2,
			Paint: scene.Paint{Fill: c.colors.Accent, FillOpacity: c.accentOpacity()},
		})
		sc.Add(scene.Text{
			X: r.X + c.spacing(2) + size, Y: y,
			Content: point,
			Font:    c.state.Typography.BodyFont,
			Size:    size,
			Weight:  c.state.Typography.BodyWeight,
			Anchor:  scene.AnchorStart,
			Color:   textColor,
			Opacity: 1,
		})
		y += lineH
	}
}

func (c *renderContext) sideHeading(sc *scene.Scene, r layout.Rect, side int, color string, anchor scene.Anchor, x float64) float64 {
	size := c.fontSize(c.state.Typography.BodySize) * 1.2 * style.LabelSizeFactor(c.sp.LabelStyle)
	sc.Add(scene.Text{
		X: x, Y: r.Y + c.spacing(2) + size,
		Content: c.label(sample.ComparisonLabels[side]),
		Font:    c.state.Typography.TitleFont,
		Size:    size,
		Weight:  c.state.Typography.TitleWeight,
		Anchor:  anchor,
		Color:   color,
		Opacity: 1,
	})
	return r.Y + c.spacing(2) + size
}

// comparisonCards: two soft cards, rounded, shadowed per family.
func (c *renderContext) comparisonCards(sc *scene.Scene, left, right layout.Rect) {
	for side, r := range [2]layout.Rect{left, right} {
		fill := c.colors.Secondary
		if side == 1 {
			fill = c.colors.Primary
		}
		sc.Add(c.card(r.X, r.Y, r.W, r.H, scene.Paint{Fill: fill, FillOpacity: 0.08})...)
		headY := c.sideHeading(sc, r, side, c.colors.Primary, scene.AnchorStart, r.X+c.spacing(2))
		c.comparisonSide(sc, r, side, c.colors.Neutral, headY+c.spacing(3))
	}
}

// comparisonEditorial: no containers; a hairline column rule and serif-like
// headings.
func (c *renderContext) comparisonEditorial(sc *scene.Scene, left, right layout.Rect) {
	midX := (left.X + left.W + right.X) / 2
	sc.Add(scene.Line{
		X1: midX, Y1: left.Y, X2: midX, Y2: left.Y + left.H,
		Paint: scene.Paint{Stroke: c.colors.Neutral, StrokeWidth: c.borderWidth(), StrokeOpacity: 0.6},
	})
	for side, r := range [2]layout.Rect{left, right} {
		headY := c.sideHeading(sc, r, side, c.colors.Primary, scene.AnchorStart, r.X)
		sc.Add(scene.Line{
			X1: r.X, Y1: headY + c.spacing(1), X2: r.X + r.W*0.3, Y2: headY + c.spacing(1),
			Paint: scene.Paint{Stroke: c.colors.Accent, StrokeWidth: c.accentWidth(), StrokeOpacity: c.accentOpacity()},
		})
		c.comparisonSide(sc, r, side, c.colors.Neutral, headY+c.spacing(4))
	}
}

// comparisonBold: heavy filled panels, inverted text on the highlighted side.
func (c *renderContext) comparisonBold(sc *scene.Scene, left, right layout.Rect) {
	for side, r := range [2]layout.Rect{left, right} {
		fill, text := c.colors.Neutral, c.colors.Primary
		opacity := 0.15
		if side == 1 {
			fill, text = c.colors.Primary, c.colors.Background
			opacity = 1
		}
		sc.Add(c.card(r.X, r.Y, r.W, r.H, scene.Paint{
			Fill: fill, FillOpacity: opacity,
			Stroke: c.colors.Primary, StrokeWidth: c.borderWidth(),
		})...)
		headY := c.sideHeading(sc, r, side, text, scene.AnchorStart, r.X+c.spacing(2))
		c.comparisonSide(sc, r, side, text, headY+c.spacing(3))
	}
}

// comparisonMinimal: text only, generous air, no rules or containers.
func (c *renderContext) comparisonMinimal(sc *scene.Scene, left, right layout.Rect) {
	for side, r := range [2]layout.Rect{left, right} {
		headY := c.sideHeading(sc, r, side, c.colors.Neutral, scene.AnchorStart, r.X)
		c.comparisonSide(sc, r, side, c.colors.Primary, headY+c.spacing(5))
	}
}

// comparisonCorporate: bordered table-like panels with header bands.
func (c *renderContext) comparisonCorporate(sc *scene.Scene, left, right layout.Rect) {
	bandH := c.spacing(5)
	for side, r := range [2]layout.Rect{left, right} {
		sc.Add(scene.Rect{
			X: r.X, Y: r.Y, W: r.W, H: r.H,
			Radius: c.radius(),
			Paint: scene.Paint{
				Stroke: c.colors.Neutral, StrokeWidth: c.borderWidth(), StrokeOpacity: 0.8,
				Dash: c.mp.StrokeDasharray,
			},
		})
		sc.Add(scene.Rect{
			X: r.X, Y: r.Y, W: r.W, H: bandH,
			Radius: c.radius(),
			Paint:  scene.Paint{Fill: c.colors.Primary, FillOpacity: 1},
		})
		size := c.fontSize(c.state.Typography.BodySize) * 1.1
		sc.Add(scene.Text{
			X: r.X + r.W/2, Y: r.Y + bandH/2 + size*0.35,
			Content: c.label(sample.ComparisonLabels[side]),
			Font:    c.state.Typography.TitleFont,
			Size:    size,
			Weight:  c.state.Typography.TitleWeight,
			Anchor:  scene.AnchorMiddle,
			Color:   c.colors.Background,
			Opacity: 1,
		})
		c.comparisonSide(sc, r, side, c.colors.Neutral, r.Y+bandH+c.spacing(4))
	}
}

// comparisonBento: each point becomes its own rounded tile.
func (c *renderContext) comparisonBento(sc *scene.Scene, left, right layout.Rect) {
	for side, r := range [2]layout.Rect{left, right} {
		headY := c.sideHeading(sc, r, side, c.colors.Primary, scene.AnchorStart, r.X)
		points := sample.ComparisonPoints[side]
		gap := c.spacing(1.5)
		top := headY + c.spacing(2)
		tileH := (r.Y + r.H - top - gap*float64(len(points)-1)) / float64(len(points))
		size := c.fontSize(c.state.Typography.BodySize)
		for i, point := range points {
			y := top + float64(i)*(tileH+gap)
			sc.Add(c.card(r.X, y, r.W, tileH, scene.Paint{
				Fill: c.colors.Secondary, FillOpacity: 0.1,
			})...)
			sc.Add(scene.Text{
				X: r.X + c.spacing(2), Y: y + tileH/2 + size*0.35,
				Content: point,
				Font:    c.state.Typography.BodyFont,
				Size:    size,
				Weight:  c.state.Typography.BodyWeight,
				Anchor:  scene.AnchorStart,
				Color:   c.colors.Primary,
				Opacity: 1,
			})
		}
	}
}

// comparisonNeubrutalist: offset hard shadows, thick borders, accent header
// chips.
func (c *renderContext) comparisonNeubrutalist(sc *scene.Scene, left, right layout.Rect) {
	for side, r := range [2]layout.Rect{left, right} {
		sc.Add(c.card(r.X, r.Y, r.W, r.H, scene.Paint{
			Fill: c.colors.Background, FillOpacity: 1,
			Stroke: "#000000", StrokeWidth: c.borderWidth(),
		})...)
		chipW, chipH := r.W*0.45, c.spacing(4)
		sc.Add(scene.Rect{
			X: r.X + c.spacing(2), Y: r.Y - chipH/2, W: chipW, H: chipH,
			Radius: c.radius(),
			Paint: scene.Paint{
				Fill: c.colors.Accent, FillOpacity: c.accentOpacity(),
				Stroke: "#000000", StrokeWidth: c.borderWidth(),
			},
		})
		size := c.fontSize(c.state.Typography.BodySize)
		sc.Add(scene.Text{
			X: r.X + c.spacing(2) + chipW/2, Y: r.Y + size*0.35,
			Content: c.label(sample.ComparisonLabels[side]),
			Font:    c.state.Typography.TitleFont,
			Size:    size,
			Weight:  800,
			Anchor:  scene.AnchorMiddle,
			Color:   "#000000",
			Opacity: 1,
		})
		c.comparisonSide(sc, r, side, c.colors.Primary, r.Y+chipH+c.spacing(3))
	}
}

// comparisonStark: brutalist/swiss grid — one heavy dividing bar, flush
// uppercase headings, no ornament.
func (c *renderContext) comparisonStark(sc *scene.Scene, left, right layout.Rect) {
	midX := (left.X + left.W + right.X) / 2
	sc.Add(scene.Rect{
		X: midX - c.accentWidth()/2, Y: left.Y, W: c.accentWidth(), H: left.H,
		Paint: scene.Paint{Fill: c.colors.Primary, FillOpacity: 1},
	})
	for side, r := range [2]layout.Rect{left, right} {
		headY := c.sideHeading(sc, r, side, c.colors.Primary, scene.AnchorStart, r.X)
		sc.Add(scene.Rect{
			X: r.X, Y: headY + c.spacing(1.5), W: r.W * 0.2, H: c.accentWidth(),
			Paint: scene.Paint{Fill: c.colors.Accent, FillOpacity: c.accentOpacity()},
		})
		c.comparisonSide(sc, r, side, c.colors.Primary, headY+c.spacing(5))
	}
}
