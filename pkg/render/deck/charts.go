package deck

import (
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/style"
)

// slideChart embeds a native chart part for the layout's chart kind. The
// chart arrives as real c:chart data, so users re-type values inside
// PowerPoint instead of replacing an image.
func (b *builder) slideChart(s *slide, l layout.Layout) {
	reg, ok := l.FindRegion(layout.RoleBody)
	if !ok {
		return
	}
	r := b.rect(reg, l)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	part := chartPart{name: b.nextChartName(), xml: b.chartXML(l.Type)}
	s.charts = append(s.charts, part)
	rid := len(s.charts) + 1 // rId1 is the slide layout

	frame := fmt.Sprintf(`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="%s"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>`+
		`<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`+
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" r:id="rId%d"/></a:graphicData></a:graphic></p:graphicFrame>`,
		s.id(), xmlEscape(layout.DisplayName(l.Type)),
		emu(r.X), emu(r.Y), emu(r.W), emu(r.H), rid)
	s.add(frame)
}

func (b *builder) chartXML(t layout.Type) string {
	var plot string
	switch t {
	case layout.TypeBarChart:
		plot = b.barChart("col", "clustered", []sample.Series{{Name: "Revenue", Values: sample.BarValues}}, sample.BarCategories)
	case layout.TypeHorizontalBarChart:
		plot = b.barChart("bar", "clustered", []sample.Series{{Name: "Revenue", Values: sample.BarValues}}, sample.BarCategories)
	case layout.TypeStackedBarChart:
		plot = b.barChart("col", "stacked", sample.StackedSeries, sample.BarCategories)
	case layout.TypeLineChart:
		plot = b.lineChart(sample.LineValues, sample.LineCategories)
	case layout.TypeAreaChart:
		plot = b.areaChart(sample.LineValues, sample.LineCategories)
	case layout.TypePieChart:
		plot = b.pieChart(false)
	case layout.TypeDonutChart:
		plot = b.pieChart(true)
	case layout.TypeScatterChart:
		plot = b.scatterChart()
	}

	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`)
	sb.WriteString(`<c:chart><c:plotArea><c:layout/>`)
	sb.WriteString(plot)
	sb.WriteString(`</c:plotArea>`)
	if b.sp.ChartStyle != style.ChartMinimal && (t == layout.TypePieChart || t == layout.TypeDonutChart || t == layout.TypeStackedBarChart) {
		sb.WriteString(`<c:legend><c:legendPos val="r"/><c:overlay val="0"/></c:legend>`)
	}
	sb.WriteString(`<c:plotVisOnly val="1"/></c:chart></c:chartSpace>`)
	return sb.String()
}

// seriesColor cycles the palette roles; identical order to the preview.
func (b *builder) seriesColor(i int) string {
	c := b.state.Tokens.Colors
	switch i % 3 {
	case 0:
		return c.Primary
	case 1:
		return c.Accent
	default:
		return c.Secondary
	}
}

// serShapeProps styles one series per the family's chart style.
func (b *builder) serShapeProps(color string) string {
	switch b.sp.ChartStyle {
	case style.ChartOutlined:
		return fmt.Sprintf(`<c:spPr><a:solidFill>%s</a:solidFill><a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln></c:spPr>`,
			alphaColor(color, 0.12), emu(style.StrokeWidth(b.sp.BorderThickness, 1, b.mp)), hex(color))
	case style.ChartGradient:
		return fmt.Sprintf(`<c:spPr><a:gradFill><a:gsLst><a:gs pos="0">%s</a:gs><a:gs pos="100000">%s</a:gs></a:gsLst><a:lin ang="5400000" scaled="1"/></a:gradFill></c:spPr>`,
			alphaColor(color, b.mp.ColorIntensity), alphaColor(b.state.Tokens.Colors.Secondary, b.mp.ColorIntensity))
	case style.ChartMinimal:
		return fmt.Sprintf(`<c:spPr><a:solidFill>%s</a:solidFill><a:ln><a:noFill/></a:ln></c:spPr>`,
			alphaColor(color, 0.55*b.mp.ColorIntensity))
	default:
		return fmt.Sprintf(`<c:spPr><a:solidFill>%s</a:solidFill></c:spPr>`,
			alphaColor(color, minf(b.mp.ColorIntensity, 1)))
	}
}

// markerXML maps the family's data point style onto chart markers.
func (b *builder) markerXML(color string) string {
	var symbol string
	switch b.sp.DataPointStyle {
	case style.PointCircle:
		symbol = "circle"
	case style.PointSquare:
		symbol = "square"
	case style.PointDiamond:
		symbol = "diamond"
	default:
		return `<c:marker><c:symbol val="none"/></c:marker>`
	}
	return fmt.Sprintf(`<c:marker><c:symbol val="%s"/><c:size val="6"/><c:spPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></c:spPr></c:marker>`,
		symbol, hex(color))
}

func strLit(values []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<c:strLit><c:ptCount val="%d"/>`, len(values))
	for i, v := range values {
		fmt.Fprintf(&sb, `<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, i, xmlEscape(v))
	}
	sb.WriteString(`</c:strLit>`)
	return sb.String()
}

func numLit(values []float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<c:numLit><c:ptCount val="%d"/>`, len(values))
	for i, v := range values {
		fmt.Fprintf(&sb, `<c:pt idx="%d"><c:v>%g</c:v></c:pt>`, i, v)
	}
	sb.WriteString(`</c:numLit>`)
	return sb.String()
}

func (b *builder) series(idx int, name string, cats []string, vals []float64, extra string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<c:ser><c:idx val="%d"/><c:order val="%d"/><c:tx><c:v>%s</c:v></c:tx>`,
		idx, idx, xmlEscape(name))
	sb.WriteString(b.serShapeProps(b.seriesColor(idx)))
	sb.WriteString(extra)
	sb.WriteString(`<c:cat>` + strLit(cats) + `</c:cat>`)
	sb.WriteString(`<c:val>` + numLit(vals) + `</c:val>`)
	sb.WriteString(`</c:ser>`)
	return sb.String()
}

const axes = `<c:catAx><c:axId val="111111111"/><c:scaling><c:orientation val="minMax"/></c:scaling><c:delete val="0"/><c:axPos val="b"/><c:crossAx val="222222222"/></c:catAx>` +
	`<c:valAx><c:axId val="222222222"/><c:scaling><c:orientation val="minMax"/></c:scaling><c:delete val="0"/><c:axPos val="l"/><c:crossAx val="111111111"/></c:valAx>`

const axisRefs = `<c:axId val="111111111"/><c:axId val="222222222"/>`

func (b *builder) barChart(dir, grouping string, series []sample.Series, cats []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<c:barChart><c:barDir val="%s"/><c:grouping val="%s"/><c:varyColors val="0"/>`, dir, grouping)
	for i, ser := range series {
		sb.WriteString(b.series(i, ser.Name, cats, ser.Values, ""))
	}
	if grouping == "stacked" {
		sb.WriteString(`<c:overlap val="100"/>`)
	}
	sb.WriteString(axisRefs)
	sb.WriteString(`</c:barChart>`)
	sb.WriteString(axes)
	return sb.String()
}

func (b *builder) lineChart(vals []float64, cats []string) string {
	var sb strings.Builder
	sb.WriteString(`<c:lineChart><c:grouping val="standard"/><c:varyColors val="0"/>`)
	marker := b.markerXML(b.state.Tokens.Colors.Accent)
	lineProps := fmt.Sprintf(`<c:spPr><a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln></c:spPr>`,
		emu(style.StrokeWidth(b.sp.LineThickness, 1, b.mp)), hex(b.state.Tokens.Colors.Primary))
	fmt.Fprintf(&sb, `<c:ser><c:idx val="0"/><c:order val="0"/><c:tx><c:v>Trend</c:v></c:tx>%s%s<c:cat>%s</c:cat><c:val>%s</c:val><c:smooth val="0"/></c:ser>`,
		lineProps, marker, strLit(cats), numLit(vals))
	sb.WriteString(`<c:marker val="1"/>`)
	sb.WriteString(axisRefs)
	sb.WriteString(`</c:lineChart>`)
	sb.WriteString(axes)
	return sb.String()
}

func (b *builder) areaChart(vals []float64, cats []string) string {
	var sb strings.Builder
	sb.WriteString(`<c:areaChart><c:grouping val="standard"/><c:varyColors val="0"/>`)
	sb.WriteString(b.series(0, "Cumulative", cats, vals, ""))
	sb.WriteString(axisRefs)
	sb.WriteString(`</c:areaChart>`)
	sb.WriteString(axes)
	return sb.String()
}

func (b *builder) pieChart(donut bool) string {
	var sb strings.Builder
	if donut {
		sb.WriteString(`<c:doughnutChart><c:varyColors val="1"/>`)
	} else {
		sb.WriteString(`<c:pieChart><c:varyColors val="1"/>`)
	}
	sb.WriteString(`<c:ser><c:idx val="0"/><c:order val="0"/><c:tx><c:v>Share</c:v></c:tx>`)
	for i := range sample.PieValues {
		fmt.Fprintf(&sb, `<c:dPt><c:idx val="%d"/>%s</c:dPt>`, i, b.serShapeProps(b.seriesColor(i)))
	}
	sb.WriteString(`<c:cat>` + strLit(sample.PieLabels) + `</c:cat>`)
	sb.WriteString(`<c:val>` + numLit(sample.PieValues) + `</c:val>`)
	sb.WriteString(`</c:ser>`)
	if donut {
		sb.WriteString(`<c:holeSize val="55"/></c:doughnutChart>`)
	} else {
		sb.WriteString(`<c:firstSliceAng val="0"/></c:pieChart>`)
	}
	return sb.String()
}

func (b *builder) scatterChart() string {
	xs := make([]float64, len(sample.ScatterPoints))
	ys := make([]float64, len(sample.ScatterPoints))
	for i, pt := range sample.ScatterPoints {
		xs[i] = pt[0]
		ys[i] = pt[1]
	}

	var sb strings.Builder
	sb.WriteString(`<c:scatterChart><c:scatterStyle val="marker"/><c:varyColors val="0"/>`)
	fmt.Fprintf(&sb, `<c:ser><c:idx val="0"/><c:order val="0"/><c:tx><c:v>Observations</c:v></c:tx><c:spPr><a:ln><a:noFill/></a:ln></c:spPr>%s<c:xVal>%s</c:xVal><c:yVal>%s</c:yVal><c:smooth val="0"/></c:ser>`,
		b.markerXML(b.seriesColor(0)), numLit(xs), numLit(ys))
	sb.WriteString(axisRefs)
	sb.WriteString(`</c:scatterChart>`)
	sb.WriteString(`<c:valAx><c:axId val="111111111"/><c:scaling><c:orientation val="minMax"/></c:scaling><c:delete val="0"/><c:axPos val="b"/><c:crossAx val="222222222"/></c:valAx>` +
		`<c:valAx><c:axId val="222222222"/><c:scaling><c:orientation val="minMax"/></c:scaling><c:delete val="0"/><c:axPos val="l"/><c:crossAx val="111111111"/></c:valAx>`)
	return sb.String()
}
