package deck

import (
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/style"
)

// The timeline, comparison, and icon-grid archetypes branch per family
// archetype the same way the preview does, emitting native shapes so the
// result stays editable slide furniture rather than a picture of one.

func (b *builder) slideTimeline(s *slide, l layout.Layout) {
	reg, ok := l.FindRegion(layout.RoleBody)
	if !ok {
		return
	}
	r := b.rect(reg, l)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	milestones := sample.TimelineMilestones
	spineY := r.Y + r.H*0.45
	inset := b.spacing(3)
	step := (r.W - 2*inset) / float64(len(milestones)-1)
	colors := b.state.Tokens.Colors

	heavy := false
	marker := "ellipse"
	switch b.state.StyleFamily {
	case style.FamilyBrutalist, style.FamilySwiss, style.FamilyNeubrutalist, style.FamilyGeometric:
		heavy = true
		marker = "rect"
	case style.FamilyPlayful, style.FamilyMemphis, style.FamilyRetro, style.FamilyZine:
		marker = "diamond"
	}

	lineW := style.StrokeWidth(b.sp.LineThickness, 1, b.mp)
	if heavy {
		lineW = style.StrokeWidth(b.sp.AccentThickness, 1, b.mp) * 1.5
	}
	s.add(b.connector(s.id(), "Timeline Spine",
		r.X+inset, spineY, r.X+r.W-inset, spineY,
		lineW, colors.Secondary, b.mp.StrokeDasharray != ""))

	markR := b.spacing(1.2) * b.mp.ElementScale
	labelSize := b.fontSize(b.state.Typography.BodySize) * 0.9 * style.LabelSizeFactor(b.sp.LabelStyle)
	for i, m := range milestones {
		x := r.X + inset + float64(i)*step
		fillColor := colors.Secondary
		if i == len(milestones)-1 {
			fillColor = colors.Accent
		}
		s.add(b.shape(s.id(), "Milestone", marker,
			layout.Rect{X: x - markR, Y: spineY - markR, W: markR * 2, H: markR * 2},
			fill{color: fillColor, alpha: b.accentOpacity()}, false))

		labelY := spineY - markR - b.spacing(4)
		if !heavy && i%2 == 1 {
			labelY = spineY + markR + b.spacing(1)
		}
		if heavy {
			labelY = spineY + markR + b.spacing(1)
		}
		s.add(b.textBox(s.id(), "Milestone Label",
			layout.Rect{X: x - step/2, Y: labelY, W: step, H: b.spacing(3.5)},
			"ctr", para{
				align: "ctr",
				runs: []run{{
					text:  b.label(m),
					font:  b.bodyFont,
					size:  labelSize,
					color: colors.Primary,
				}},
			}))
	}
}

func (b *builder) slideComparison(s *slide, l layout.Layout) {
	regions := l.RegionsByRole(layout.RoleBody)
	if len(regions) < 2 {
		return
	}
	left := b.rect(regions[0], l)
	right := b.rect(regions[1], l)
	colors := b.state.Tokens.Colors

	// Archetype: filled panels, outlined cards, or bare columns with a rule.
	panels := false
	bare := false
	switch b.state.StyleFamily {
	case style.FamilyBold, style.FamilyRetro, style.FamilyMemphis, style.FamilyPlayful,
		style.FamilyCorporate, style.FamilyTech, style.FamilyNeubrutalist:
		panels = true
	case style.FamilyMinimal, style.FamilyGlass, style.FamilyEditorial,
		style.FamilyElegant, style.FamilyLuxe, style.FamilyZine,
		style.FamilyBrutalist, style.FamilySwiss, style.FamilyGeometric:
		bare = true
	}

	if bare {
		midX := (left.X + left.W + right.X) / 2
		s.add(b.connector(s.id(), "Column Rule",
			midX, left.Y, midX, left.Y+left.H,
			style.StrokeWidth(b.sp.BorderThickness, 1, b.mp), colors.Neutral, false))
	}

	headSize := b.fontSize(b.state.Typography.BodySize) * 1.2 * style.LabelSizeFactor(b.sp.LabelStyle)
	bodySize := b.fontSize(b.state.Typography.BodySize)

	for side, r := range [2]layout.Rect{left, right} {
		textColor := colors.Primary
		if !bare {
			f := fill{color: colors.Secondary, alpha: 0.08}
			if panels {
				f = fill{
					color: colors.Neutral, alpha: 0.15,
					stroke:  colors.Primary,
					strokeW: style.StrokeWidth(b.sp.BorderThickness, 1, b.mp),
				}
				if side == 1 {
					f.color = colors.Primary
					f.alpha = 1
					textColor = colors.Background
				}
			}
			s.add(b.shape(s.id(), "Comparison Panel", b.rectGeometry(), r, f, b.sp.ShadowOffset > 0))
		}

		inset := b.spacing(2)
		s.add(b.textBox(s.id(), "Comparison Heading",
			layout.Rect{X: r.X + inset, Y: r.Y + inset, W: r.W - 2*inset, H: headSize * 2},
			"t", para{
				align: "l",
				runs: []run{{
					text:   b.label(sample.ComparisonLabels[side]),
					font:   b.titleFont,
					size:   headSize,
					weight: b.state.Typography.TitleWeight,
					color:  textColor,
				}},
			}))

		pointColor := textColor
		if !panels {
			pointColor = colors.Neutral
		}
		var paras []para
		for _, point := range sample.ComparisonPoints[side] {
			paras = append(paras, para{
				align: "l",
				runs: []run{{
					text:  "• " + point,
					font:  b.bodyFont,
					size:  bodySize,
					color: pointColor,
				}},
			})
		}
		s.add(b.textBox(s.id(), "Comparison Points",
			layout.Rect{
				X: r.X + inset, Y: r.Y + inset + headSize*2 + b.spacing(1),
				W: r.W - 2*inset, H: r.H - inset*2 - headSize*2 - b.spacing(1),
			},
			"t", paras...))
	}
}

func (b *builder) slideIconGrid(s *slide, l layout.Layout) {
	reg, ok := l.FindRegion(layout.RoleBody)
	if !ok {
		return
	}
	r := b.rect(reg, l)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	colors := b.state.Tokens.Colors

	glyph := "ellipse"
	tiled := true
	switch b.state.StyleFamily {
	case style.FamilyBrutalist, style.FamilySwiss, style.FamilyGeometric:
		glyph = "rect"
		tiled = false
	case style.FamilyPlayful, style.FamilyMemphis, style.FamilySoft, style.FamilyOrganic:
		glyph = "diamond"
	case style.FamilyMinimal, style.FamilyGlass, style.FamilyElegant, style.FamilyLuxe:
		tiled = false
	}

	const cols, rows = 3, 2
	gap := b.spacing(2)
	cellW := (r.W - gap*(cols-1)) / cols
	cellH := (r.H - gap*(rows-1)) / rows

	for i, lbl := range sample.IconLabels {
		if i >= cols*rows {
			break
		}
		col, row := i%cols, i/cols
		x := r.X + float64(col)*(cellW+gap)
		y := r.Y + float64(row)*(cellH+gap)

		if tiled {
			s.add(b.shape(s.id(), "Value Tile", b.rectGeometry(),
				layout.Rect{X: x, Y: y, W: cellW, H: cellH},
				fill{color: colors.Secondary, alpha: 0.1}, b.sp.ShadowOffset > 0))
		}

		glyphR := minf(cellW, cellH) * 0.18 * b.mp.ElementScale
		cx := x + cellW/2
		s.add(b.shape(s.id(), "Value Glyph", glyph,
			layout.Rect{X: cx - glyphR, Y: y + cellH*0.38 - glyphR, W: glyphR * 2, H: glyphR * 2},
			fill{color: colors.Accent, alpha: b.accentOpacity()}, false))

		s.add(b.textBox(s.id(), "Value Label",
			layout.Rect{X: x, Y: y + cellH*0.62, W: cellW, H: cellH * 0.3},
			"t", para{
				align: "ctr",
				runs: []run{{
					text:  b.label(lbl),
					font:  b.bodyFont,
					size:  b.fontSize(b.state.Typography.BodySize) * style.LabelSizeFactor(b.sp.LabelStyle),
					color: colors.Primary,
				}},
			}))
	}
}
