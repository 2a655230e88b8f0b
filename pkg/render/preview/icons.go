package preview

import (
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/render/scene"
	"github.com/deckforge/deckforge/pkg/style"
)

// renderIconGrid lays the icon labels out in a 3×2 grid of tiles. The tile
// container shape follows the family archetype; the glyph inside is always a
// simple abstract mark since real icon art is user content.
func (c *renderContext) renderIconGrid(sc *scene.Scene, l layout.Layout) {
	reg, ok := l.FindRegion(layout.RoleBody)
	if !ok {
		return
	}
	r := c.rect(reg, l)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	const cols, rows = 3, 2
	gap := c.spacing(2)
	cellW := (r.W - gap*(cols-1)) / cols
	cellH := (r.H - gap*(rows-1)) / rows

	for i, lbl := range sample.IconLabels {
		if i >= cols*rows {
			break
		}
		col, row := i%cols, i/cols
		x := r.X + float64(col)*(cellW+gap)
		y := r.Y + float64(row)*(cellH+gap)
		c.iconTile(sc, x, y, cellW, cellH, lbl)
	}
}

func (c *renderContext) iconTile(sc *scene.Scene, x, y, w, h float64, lbl string) {
	glyphR := minF(w, h) * 0.18 * c.mp.ElementScale
	cx := x + w/2
	glyphCY := y + h*0.38

	switch c.state.StyleFamily {
	case style.FamilyBrutalist, style.FamilySwiss, style.FamilyGeometric:
		// Bare square glyph, no container.
		sc.Add(scene.Rect{
			X: cx - glyphR, Y: glyphCY - glyphR, W: glyphR * 2, H: glyphR * 2,
			Paint: scene.Paint{Fill: c.colors.Primary, FillOpacity: 1},
		})
	case style.FamilyNeubrutalist:
		sc.Add(c.card(x, y, w, h, scene.Paint{
			Fill: c.colors.Background, FillOpacity: 1,
			Stroke: "#000000", StrokeWidth: c.borderWidth(),
		})...)
		sc.Add(scene.Rect{
			X: cx - glyphR, Y: glyphCY - glyphR, W: glyphR * 2, H: glyphR * 2,
			Radius: c.radius() * 0.5,
			Paint: scene.Paint{
				Fill: c.colors.Accent, FillOpacity: c.accentOpacity(),
				Stroke: "#000000", StrokeWidth: c.borderWidth(),
			},
		})
	case style.FamilyPlayful, style.FamilyMemphis, style.FamilySoft, style.FamilyOrganic:
		// Blob container, diamond glyph.
		sc.Add(scene.Ellipse{
			CX: cx, CY: glyphCY, RX: glyphR * 1.8, RY: glyphR * 1.8,
			Paint: scene.Paint{Fill: c.colors.Secondary, FillOpacity: 0.18},
		})
		sc.Add(scene.Polygon{
			Points: []scene.Point{
				{X: cx, Y: glyphCY - glyphR},
				{X: cx + glyphR, Y: glyphCY},
				{X: cx, Y: glyphCY + glyphR},
				{X: cx - glyphR, Y: glyphCY},
			},
			Paint: scene.Paint{Fill: c.colors.Accent, FillOpacity: c.accentOpacity()},
		})
	case style.FamilyMinimal, style.FamilyGlass, style.FamilyElegant, style.FamilyLuxe:
		// Ring glyph only.
		sc.Add(scene.Ellipse{
			CX: cx, CY: glyphCY, RX: glyphR, RY: glyphR,
			Paint: scene.Paint{Stroke: c.colors.Primary, StrokeWidth: c.lineWidth(), StrokeOpacity: 1},
		})
	default:
		sc.Add(c.card(x, y, w, h, scene.Paint{
			Fill: c.colors.Secondary, FillOpacity: 0.1,
		})...)
		sc.Add(scene.Ellipse{
			CX: cx, CY: glyphCY, RX: glyphR, RY: glyphR,
			Paint: scene.Paint{Fill: c.colors.Accent, FillOpacity: c.accentOpacity()},
		})
	}

	size := c.fontSize(c.state.Typography.BodySize) * style.LabelSizeFactor(c.sp.LabelStyle)
	sc.Add(scene.Text{
		X: cx, Y: y + h*0.78,
		Content: c.label(lbl),
		Font:    c.state.Typography.BodyFont,
		Size:    size,
		Weight:  c.state.Typography.BodyWeight,
		Anchor:  scene.AnchorMiddle,
		Color:   c.colors.Primary,
		Opacity: 1,
	})
}
