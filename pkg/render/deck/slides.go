package deck

import (
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/style"
)

// designWidth/designHeight mirror the preview's canonical frame; EMU
// conversion happens in the shape builders.
const (
	designWidth  = 960.0
	designHeight = 540.0
)

// slide accumulates shape XML for one slide and hands out element ids.
// Id 1 is reserved for the group shape.
type slide struct {
	sb     strings.Builder
	nextID int
	charts []chartPart
}

func (s *slide) id() int {
	s.nextID++
	return s.nextID
}

func (s *slide) add(xml string) {
	s.sb.WriteString(xml)
}

// Combination-rule helpers in design units (scale 1). These reproduce the
// preview's products exactly; divergence here shows up as preview/export
// mismatch.

func (b *builder) rect(r layout.Region, l layout.Layout) layout.Rect {
	return layout.RegionRect(r.Bounds, l.Grid, designWidth, designHeight)
}

func (b *builder) spacing(base float64) float64 {
	return style.Spacing(base, b.state.SpacingDensity, b.sp, b.mp)
}

func (b *builder) fontSize(base float64) float64 {
	return style.FontSize(base, b.state.TypeScale, b.mp)
}

func (b *builder) radius() float64 {
	return style.CornerRadius(b.state.Tokens.CornerRadiusScale, 1, b.sp, b.mp)
}

func (b *builder) accentOpacity() float64 {
	return style.AccentOpacity(b.sp, b.mp, b.cf)
}

func (b *builder) label(s string) string {
	return style.Label(s, b.sp.LabelStyle)
}

// buildSlide renders one template layout into a full slide part.
func (b *builder) buildSlide(l layout.Layout) slidePart {
	s := &slide{nextID: 1}

	b.slideHeader(s, l)
	b.slideBody(s, l)
	b.slideFooter(s, l)
	b.slideCaptions(s, l)

	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	sb.WriteString(`<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	sb.WriteString(s.sb.String())
	sb.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)

	return slidePart{xml: sb.String(), charts: s.charts}
}

func (b *builder) slideHeader(s *slide, l layout.Layout) {
	for _, reg := range l.RegionsByRole(layout.RoleHeader) {
		r := b.rect(reg, l)
		size := b.fontSize(b.state.Typography.TitleSize)
		s.add(b.textBox(s.id(), "Title", r, "t", para{
			align: "l",
			runs: []run{{
				text:   b.label(layout.PlaceholderTitle(l.Type)),
				font:   b.titleFont,
				size:   size,
				weight: b.state.Typography.TitleWeight,
				color:  b.state.Tokens.Colors.Primary,
			}},
		}))
		if b.sp.DecorativeElements {
			y := r.Y + size*1.3 + b.spacing(1)
			s.add(b.connector(s.id(), "Title Accent",
				r.X, y, r.X+r.W*0.25, y,
				style.StrokeWidth(b.sp.AccentThickness, 1, b.mp),
				b.state.Tokens.Colors.Accent, b.mp.StrokeDasharray != ""))
		}
	}
}

func (b *builder) slideBody(s *slide, l layout.Layout) {
	switch {
	case l.Type.IsChart():
		b.slideChart(s, l)
	case l.Type == layout.TypeTimeline:
		b.slideTimeline(s, l)
	case l.Type == layout.TypeComparison:
		b.slideComparison(s, l)
	case l.Type == layout.TypeIconography:
		b.slideIconGrid(s, l)
	case l.Type == layout.TypeQuote:
		b.slideQuote(s, l)
	case l.Type == layout.TypeAgenda:
		b.slideAgenda(s, l)
	case l.Type == layout.TypeMedia:
		b.slideMedia(s, l)
	default:
		b.slideTextBlocks(s, l)
	}
}

func (b *builder) slideTextBlocks(s *slide, l layout.Layout) {
	for _, reg := range l.RegionsByRole(layout.RoleBody) {
		r := b.rect(reg, l)
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		s.add(b.textBox(s.id(), "Body", r, "t", para{
			align: "l",
			runs: []run{{
				text:  sample.BodyPlaceholder,
				font:  b.bodyFont,
				size:  b.fontSize(b.state.Typography.BodySize),
				color: b.state.Tokens.Colors.Neutral,
			}},
		}))
	}
}

func (b *builder) slideQuote(s *slide, l layout.Layout) {
	if reg, ok := l.FindRegion(layout.RoleBody); ok {
		r := b.rect(reg, l)
		s.add(b.textBox(s.id(), "Quote", r, "ctr", para{
			align: "ctr",
			runs: []run{{
				text:   "“" + sample.QuoteText + "”",
				font:   b.titleFont,
				size:   b.fontSize(b.state.Typography.TitleSize) * 0.8,
				weight: b.state.Typography.TitleWeight,
				italic: true,
				color:  b.state.Tokens.Colors.Primary,
			}},
		}))
	}
	if reg, ok := l.FindRegion(layout.RoleCaption); ok {
		r := b.rect(reg, l)
		s.add(b.textBox(s.id(), "Attribution", r, "t", para{
			align: "ctr",
			runs: []run{{
				text:  b.label("- " + sample.QuoteAttribution),
				font:  b.bodyFont,
				size:  b.fontSize(b.state.Typography.BodySize),
				color: b.state.Tokens.Colors.Neutral,
			}},
		}))
	}
}

func (b *builder) slideAgenda(s *slide, l layout.Layout) {
	regions := l.RegionsByRole(layout.RoleBody)
	if len(regions) == 0 {
		return
	}
	items := sample.AgendaItems
	perRegion := (len(items) + len(regions) - 1) / len(regions)
	size := b.fontSize(b.state.Typography.BodySize) * 1.1

	idx := 0
	for _, reg := range regions {
		r := b.rect(reg, l)
		rowH := b.spacing(4.5)
		y := r.Y
		for i := 0; i < perRegion && idx < len(items); i++ {
			markR := size * 0.8
			s.add(b.shape(s.id(), "Agenda Marker", "ellipse",
				layout.Rect{X: r.X, Y: y + rowH/2 - markR, W: markR * 2, H: markR * 2},
				fill{color: b.state.Tokens.Colors.Accent, alpha: b.accentOpacity()}, false))
			s.add(b.textBox(s.id(), "Agenda Item",
				layout.Rect{X: r.X + markR*2 + b.spacing(1.5), Y: y, W: r.W - markR*2 - b.spacing(1.5), H: rowH},
				"ctr", para{
					align: "l",
					runs: []run{{
						text:  fmt.Sprintf("%d. %s", idx+1, b.label(items[idx])),
						font:  b.bodyFont,
						size:  size,
						color: b.state.Tokens.Colors.Primary,
					}},
				}))
			y += rowH
			idx++
		}
	}
}

func (b *builder) slideMedia(s *slide, l layout.Layout) {
	for _, reg := range l.RegionsByRole(layout.RoleMedia) {
		r := b.rect(reg, l)
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		s.add(b.shape(s.id(), "Image Placeholder", b.rectGeometry(), r, fill{
			color: b.state.Tokens.Colors.Secondary, alpha: 0.15,
			stroke: b.state.Tokens.Colors.Secondary,
			strokeW: style.StrokeWidth(b.sp.BorderThickness, 1, b.mp),
			dash:    true,
		}, b.sp.ShadowOffset > 0))
		s.add(b.textBox(s.id(), "Image Label", r, "ctr", para{
			align: "ctr",
			runs: []run{{
				text:  b.label(sample.MediaPlaceholder),
				font:  b.bodyFont,
				size:  b.fontSize(b.state.Typography.BodySize) * 0.85,
				color: b.state.Tokens.Colors.Neutral,
			}},
		}))
	}
}

func (b *builder) slideFooter(s *slide, l layout.Layout) {
	for _, reg := range l.RegionsByRole(layout.RoleFooter) {
		r := b.rect(reg, l)
		s.add(b.textBox(s.id(), "Footer", r, "t", para{
			align: "l",
			runs: []run{{
				text:  b.label(b.state.Name),
				font:  b.bodyFont,
				size:  b.fontSize(b.state.Typography.BodySize) * 0.7,
				color: b.state.Tokens.Colors.Neutral,
				alpha: 0.8,
			}},
		}))
	}
}

func (b *builder) slideCaptions(s *slide, l layout.Layout) {
	if l.Type == layout.TypeQuote {
		return
	}
	for _, reg := range l.RegionsByRole(layout.RoleCaption) {
		r := b.rect(reg, l)
		s.add(b.textBox(s.id(), "Caption", r, "t", para{
			align: "l",
			runs: []run{{
				text:   sample.CaptionPlaceholder,
				font:   b.bodyFont,
				size:   b.fontSize(b.state.Typography.BodySize) * 0.8,
				italic: true,
				color:  b.state.Tokens.Colors.Neutral,
				alpha:  0.7,
			}},
		}))
	}
}
