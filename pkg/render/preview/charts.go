package preview

import (
	"math"

	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/sample"
	"github.com/deckforge/deckforge/pkg/render/scene"
	"github.com/deckforge/deckforge/pkg/style"
)

// renderChart dispatches on the chart kind. Each kind applies the family's
// ChartStyle to its fills and, for point-bearing kinds, the family's
// DataPointStyle to its markers.
func (c *renderContext) renderChart(sc *scene.Scene, l layout.Layout) {
	reg, ok := l.FindRegion(layout.RoleBody)
	if !ok {
		return
	}
	r := c.rect(reg, l)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	// Inset for axis labels on cartesian kinds.
	plot := layout.Rect{
		X: r.X + c.spacing(2),
		Y: r.Y + c.spacing(1),
		W: r.W - c.spacing(4),
		H: r.H - c.spacing(5),
	}

	switch l.Type {
	case layout.TypeBarChart:
		c.renderBars(sc, plot, false)
	case layout.TypeHorizontalBarChart:
		c.renderBars(sc, plot, true)
	case layout.TypeLineChart:
		c.renderLine(sc, plot, false)
	case layout.TypeAreaChart:
		c.renderLine(sc, plot, true)
	case layout.TypePieChart:
		c.renderPie(sc, r, 0)
	case layout.TypeDonutChart:
		c.renderPie(sc, r, 0.55)
	case layout.TypeScatterChart:
		c.renderScatter(sc, plot)
	case layout.TypeStackedBarChart:
		c.renderStackedBars(sc, plot)
	}
}

// seriesColor cycles the palette roles for multi-series charts.
func (c *renderContext) seriesColor(i int) string {
	switch i % 3 {
	case 0:
		return c.colors.Primary
	case 1:
		return c.colors.Accent
	default:
		return c.colors.Secondary
	}
}

// chartPaint applies the family's chart style to a data shape.
func (c *renderContext) chartPaint(fill string) scene.Paint {
	switch c.sp.ChartStyle {
	case style.ChartOutlined:
		return scene.Paint{
			Fill: fill, FillOpacity: 0.12,
			Stroke: fill, StrokeWidth: c.borderWidth(), StrokeOpacity: 1,
		}
	case style.ChartGradient:
		return scene.Paint{
			Fill: fill, FillOpacity: c.mp.ColorIntensity,
			GradientTo: c.colors.Secondary,
		}
	case style.ChartMinimal:
		return scene.Paint{Fill: fill, FillOpacity: 0.55 * c.mp.ColorIntensity}
	default: // filled, stacked
		return scene.Paint{Fill: fill, FillOpacity: minF(c.mp.ColorIntensity, 1)}
	}
}

// marker draws one data point in the family's marker shape. PointNone draws
// nothing.
func (c *renderContext) marker(sc *scene.Scene, x, y float64, fill string) {
	rad := c.spacing(0.9) * c.mp.ElementScale
	paint := scene.Paint{
		Fill: fill, FillOpacity: 1,
		Stroke: c.colors.Background, StrokeWidth: c.lineWidth() * 0.5,
	}
	switch c.sp.DataPointStyle {
	case style.PointCircle:
		sc.Add(scene.Ellipse{CX: x, CY: y, RX: rad, RY: rad, Paint: paint})
	case style.PointSquare:
		sc.Add(scene.Rect{X: x - rad, Y: y - rad, W: rad * 2, H: rad * 2, Paint: paint})
	case style.PointDiamond:
		sc.Add(scene.Polygon{
			Points: []scene.Point{
				{X: x, Y: y - rad * 1.2},
				{X: x + rad*1.2, Y: y},
				{X: x, Y: y + rad*1.2},
				{X: x - rad*1.2, Y: y},
			},
			Paint: paint,
		})
	case style.PointNone:
	}
}

func (c *renderContext) axisLabel(sc *scene.Scene, x, y float64, text string, anchor scene.Anchor) {
	size := c.fontSize(c.state.Typography.BodySize) * 0.75
	sc.Add(scene.Text{
		X: x, Y: y,
		Content: c.label(text),
		Font:    c.state.Typography.BodyFont,
		Size:    size,
		Weight:  c.state.Typography.BodyWeight,
		Anchor:  anchor,
		Color:   c.colors.Neutral,
		Opacity: 0.9,
	})
}

func (c *renderContext) baseline(sc *scene.Scene, x1, y1, x2, y2 float64) {
	sc.Add(scene.Line{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Paint: scene.Paint{
			Stroke: c.colors.Neutral, StrokeWidth: c.lineWidth() * 0.75, StrokeOpacity: 0.6,
			Dash: c.mp.StrokeDasharray,
		},
	})
}

func maxValue(vals []float64) float64 {
	m := 0.0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

func (c *renderContext) renderBars(sc *scene.Scene, p layout.Rect, horizontal bool) {
	vals, cats := sample.BarValues, sample.BarCategories
	max := maxValue(vals) * 1.15
	n := float64(len(vals))
	gap := c.spacing(1.5)

	if horizontal {
		c.baseline(sc, p.X, p.Y, p.X, p.Y+p.H)
		rowH := (p.H - gap*(n-1)) / n
		for i, v := range vals {
			y := p.Y + float64(i)*(rowH+gap)
			w := p.W * v / max
			sc.Add(scene.Rect{
				X: p.X, Y: y, W: w, H: rowH,
				Radius: c.radius() * 0.5,
				Paint:  c.chartPaint(c.seriesColor(i % 2)),
			})
			c.axisLabel(sc, p.X+w+c.spacing(1), y+rowH/2+c.spacing(0.5), cats[i], scene.AnchorStart)
		}
		return
	}

	c.baseline(sc, p.X, p.Y+p.H, p.X+p.W, p.Y+p.H)
	colW := (p.W - gap*(n-1)) / n
	for i, v := range vals {
		x := p.X + float64(i)*(colW+gap)
		h := p.H * v / max
		sc.Add(scene.Rect{
			X: x, Y: p.Y + p.H - h, W: colW, H: h,
			Radius: c.radius() * 0.5,
			Paint:  c.chartPaint(c.seriesColor(i % 2)),
		})
		c.axisLabel(sc, x+colW/2, p.Y+p.H+c.spacing(3), cats[i], scene.AnchorMiddle)
	}
}

func (c *renderContext) renderLine(sc *scene.Scene, p layout.Rect, area bool) {
	vals, cats := sample.LineValues, sample.LineCategories
	max := maxValue(vals) * 1.15
	step := p.W / float64(len(vals)-1)

	pts := make([]scene.Point, len(vals))
	for i, v := range vals {
		pts[i] = scene.Point{
			X: p.X + float64(i)*step,
			Y: p.Y + p.H*(1-v/max),
		}
	}

	c.baseline(sc, p.X, p.Y+p.H, p.X+p.W, p.Y+p.H)

	if area {
		poly := make([]scene.Point, 0, len(pts)+2)
		poly = append(poly, scene.Point{X: p.X, Y: p.Y + p.H})
		poly = append(poly, pts...)
		poly = append(poly, scene.Point{X: p.X + p.W, Y: p.Y + p.H})
		fill := c.chartPaint(c.colors.Primary)
		fill.FillOpacity *= 0.45
		fill.Stroke = ""
		sc.Add(scene.Polygon{Points: poly, Paint: fill})
	}

	sc.Add(scene.Polyline{
		Points: pts,
		Paint: scene.Paint{
			Stroke: c.colors.Primary, StrokeWidth: c.lineWidth(), StrokeOpacity: 1,
			Dash: c.mp.StrokeDasharray,
		},
	})
	for _, pt := range pts {
		c.marker(sc, pt.X, pt.Y, c.colors.Accent)
	}
	for i, cat := range cats {
		c.axisLabel(sc, p.X+float64(i)*step, p.Y+p.H+c.spacing(3), cat, scene.AnchorMiddle)
	}
}

// renderPie approximates each slice as a polygon fan. innerRatio > 0 turns
// the pie into a donut by overlaying a background disc.
func (c *renderContext) renderPie(sc *scene.Scene, r layout.Rect, innerRatio float64) {
	cx := r.X + r.W*0.38
	cy := r.Y + r.H/2
	rad := minF(r.W*0.3, r.H*0.42) * c.mp.ElementScale

	total := 0.0
	for _, v := range sample.PieValues {
		total += v
	}

	angle := -math.Pi / 2
	for i, v := range sample.PieValues {
		sweep := 2 * math.Pi * v / total
		steps := int(math.Max(sweep/0.12, 2))
		pts := make([]scene.Point, 0, steps+2)
		pts = append(pts, scene.Point{X: cx, Y: cy})
		for s := 0; s <= steps; s++ {
			a := angle + sweep*float64(s)/float64(steps)
			pts = append(pts, scene.Point{X: cx + rad*math.Cos(a), Y: cy + rad*math.Sin(a)})
		}
		paint := c.chartPaint(c.seriesColor(i))
		if c.sp.ChartStyle == style.ChartOutlined {
			paint.Stroke = c.colors.Background
			paint.StrokeWidth = c.borderWidth()
			paint.FillOpacity = 0.8
		}
		sc.Add(scene.Polygon{Points: pts, Paint: paint})
		angle += sweep
	}

	if innerRatio > 0 {
		sc.Add(scene.Ellipse{
			CX: cx, CY: cy, RX: rad * innerRatio, RY: rad * innerRatio,
			Paint: scene.Solid(style.Background(c.colors.Background, c.mp)),
		})
	}

	// Legend on the right.
	legendX := r.X + r.W*0.72
	size := c.fontSize(c.state.Typography.BodySize) * 0.85
	rowH := size * 1.8
	legendY := cy - rowH*float64(len(sample.PieLabels))/2
	for i, lbl := range sample.PieLabels {
		y := legendY + float64(i)*rowH
		sc.Add(scene.Rect{
			X: legendX, Y: y, W: size, H: size,
			Radius: c.radius() * 0.3,
			Paint:  scene.Paint{Fill: c.seriesColor(i), FillOpacity: 1},
		})
		c.axisLabel(sc, legendX+size+c.spacing(1), y+size*0.85, lbl, scene.AnchorStart)
	}
}

func (c *renderContext) renderScatter(sc *scene.Scene, p layout.Rect) {
	maxX, maxY := 0.0, 0.0
	for _, pt := range sample.ScatterPoints {
		maxX = math.Max(maxX, pt[0])
		maxY = math.Max(maxY, pt[1])
	}
	maxX *= 1.1
	maxY *= 1.15

	c.baseline(sc, p.X, p.Y+p.H, p.X+p.W, p.Y+p.H)
	c.baseline(sc, p.X, p.Y, p.X, p.Y+p.H)

	for i, pt := range sample.ScatterPoints {
		x := p.X + p.W*pt[0]/maxX
		y := p.Y + p.H*(1-pt[1]/maxY)
		c.marker(sc, x, y, c.seriesColor(i%2))
	}
}

func (c *renderContext) renderStackedBars(sc *scene.Scene, p layout.Rect) {
	series, cats := sample.StackedSeries, sample.BarCategories

	max := 0.0
	for i := range cats {
		sum := 0.0
		for _, s := range series {
			sum += s.Values[i]
		}
		max = math.Max(max, sum)
	}
	max *= 1.1

	c.baseline(sc, p.X, p.Y+p.H, p.X+p.W, p.Y+p.H)
	n := float64(len(cats))
	gap := c.spacing(1.5)
	colW := (p.W - gap*(n-1)) / n

	for i, cat := range cats {
		x := p.X + float64(i)*(colW+gap)
		y := p.Y + p.H
		for si, s := range series {
			h := p.H * s.Values[i] / max
			y -= h
			sc.Add(scene.Rect{
				X: x, Y: y, W: colW, H: h,
				Paint: c.chartPaint(c.seriesColor(si)),
			})
		}
		c.axisLabel(sc, x+colW/2, p.Y+p.H+c.spacing(3), cat, scene.AnchorMiddle)
	}
}
