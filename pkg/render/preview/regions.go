package preview

import (
	"fmt"

	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/scene"
)

// Role tints for the region-visualization mode.
var regionTints = map[layout.Role]string{
	layout.RoleHeader:  "#4C6FFF",
	layout.RoleBody:    "#2EB87A",
	layout.RoleFooter:  "#8A8F98",
	layout.RoleMedia:   "#E0823C",
	layout.RoleCaption: "#A05CC4",
}

// renderRegions draws labeled bounding boxes per region instead of content.
func (c *renderContext) renderRegions(sc *scene.Scene, l layout.Layout) {
	labelSize := 11 * c.scale
	for _, reg := range l.Regions {
		r := c.rect(reg, l)
		tint, ok := regionTints[reg.Role]
		if !ok {
			tint = "#8A8F98"
		}
		sc.Add(scene.Rect{
			X: r.X, Y: r.Y, W: r.W, H: r.H,
			Paint: scene.Paint{
				Fill:          tint,
				FillOpacity:   0.12,
				Stroke:        tint,
				StrokeWidth:   1.5 * c.scale,
				StrokeOpacity: 0.9,
				Dash:          "4 3",
			},
		})
		sc.Add(scene.Text{
			X: r.X + 4*c.scale, Y: r.Y + labelSize + 2*c.scale,
			Content: fmt.Sprintf("%s · %s", reg.ID, reg.Role),
			Font:    c.state.Typography.BodyFont,
			Size:    labelSize,
			Weight:  500,
			Anchor:  scene.AnchorStart,
			Color:   tint,
			Opacity: 1,
		})
	}
}
