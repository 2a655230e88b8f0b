// Package sink encodes resolved preview scenes into concrete file formats.
// Each format is a thin, stateless pass over the scene graph; nothing here
// re-derives style or layout decisions.
package sink

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"

	"github.com/deckforge/deckforge/pkg/render/scene"
)

// SVGOption configures SVG encoding.
type SVGOption func(*svgEncoder)

type svgEncoder struct {
	precision int
}

// WithPrecision sets the coordinate precision in decimal places (default 2).
func WithPrecision(p int) SVGOption {
	return func(e *svgEncoder) { e.precision = p }
}

// RenderSVG encodes a scene as a standalone SVG document.
func RenderSVG(sc *scene.Scene, opts ...SVGOption) []byte {
	e := svgEncoder{precision: 2}
	for _, opt := range opts {
		opt(&e)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = e.precision
	canvas.Start(sc.Width, sc.Height)

	if sc.Background != "" {
		canvas.Rect(0, 0, sc.Width, sc.Height, fmt.Sprintf("fill:%s", sc.Background))
	}

	grads := collectGradients(sc)
	if len(grads) > 0 {
		canvas.Def()
		for id, pair := range grads {
			canvas.LinearGradient(id, 0, 0, 0, 100, []svg.Offcolor{
				{Offset: 0, Color: pair[0], Opacity: 1},
				{Offset: 100, Color: pair[1], Opacity: 1},
			})
		}
		canvas.DefEnd()
	}

	for _, n := range sc.Nodes {
		encodeNode(canvas, n, grads)
	}

	canvas.End()
	return buf.Bytes()
}

// collectGradients assigns a def id per distinct fill/gradient pair.
func collectGradients(sc *scene.Scene) map[string][2]string {
	grads := make(map[string][2]string)
	for _, n := range sc.Nodes {
		p := paintOf(n)
		if p.GradientTo == "" || p.Fill == "" {
			continue
		}
		grads[gradientID(p)] = [2]string{p.Fill, p.GradientTo}
	}
	return grads
}

func gradientID(p scene.Paint) string {
	return fmt.Sprintf("grad-%s-%s", p.Fill[1:], p.GradientTo[1:])
}

func paintOf(n scene.Node) scene.Paint {
	switch v := n.(type) {
	case scene.Rect:
		return v.Paint
	case scene.Ellipse:
		return v.Paint
	case scene.Line:
		return v.Paint
	case scene.Polygon:
		return v.Paint
	case scene.Polyline:
		return v.Paint
	}
	return scene.Paint{}
}

func encodeNode(canvas *svg.SVG, n scene.Node, grads map[string][2]string) {
	switch v := n.(type) {
	case scene.Rect:
		if v.Radius > 0 {
			canvas.Roundrect(v.X, v.Y, v.W, v.H, v.Radius, v.Radius, paintStyle(v.Paint))
		} else {
			canvas.Rect(v.X, v.Y, v.W, v.H, paintStyle(v.Paint))
		}
	case scene.Ellipse:
		canvas.Ellipse(v.CX, v.CY, v.RX, v.RY, paintStyle(v.Paint))
	case scene.Line:
		canvas.Line(v.X1, v.Y1, v.X2, v.Y2, paintStyle(v.Paint))
	case scene.Polygon:
		xs, ys := splitPoints(v.Points)
		canvas.Polygon(xs, ys, paintStyle(v.Paint))
	case scene.Polyline:
		xs, ys := splitPoints(v.Points)
		style := paintStyle(v.Paint)
		canvas.Polyline(xs, ys, style+";fill:none")
	case scene.Text:
		canvas.Text(v.X, v.Y, v.Content, textStyle(v))
	}
}

func splitPoints(pts []scene.Point) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

func paintStyle(p scene.Paint) string {
	var buf bytes.Buffer
	switch {
	case p.GradientTo != "" && p.Fill != "":
		fmt.Fprintf(&buf, "fill:url(#%s)", gradientID(p))
	case p.Fill != "":
		fmt.Fprintf(&buf, "fill:%s", p.Fill)
	default:
		buf.WriteString("fill:none")
	}
	if p.Fill != "" && p.FillOpacity > 0 && p.FillOpacity < 1 {
		fmt.Fprintf(&buf, ";fill-opacity:%.3g", p.FillOpacity)
	}
	if p.Stroke != "" && p.StrokeWidth > 0 {
		fmt.Fprintf(&buf, ";stroke:%s;stroke-width:%.3g", p.Stroke, p.StrokeWidth)
		if p.StrokeOpacity > 0 && p.StrokeOpacity < 1 {
			fmt.Fprintf(&buf, ";stroke-opacity:%.3g", p.StrokeOpacity)
		}
		if p.Dash != "" {
			fmt.Fprintf(&buf, ";stroke-dasharray:%s", p.Dash)
		}
	}
	return buf.String()
}

func textStyle(t scene.Text) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "font-family:'%s',sans-serif;font-size:%.3gpx;fill:%s", t.Font, t.Size, t.Color)
	if t.Weight != 0 && t.Weight != 400 {
		fmt.Fprintf(&buf, ";font-weight:%d", t.Weight)
	}
	if t.Italic {
		buf.WriteString(";font-style:italic")
	}
	if t.Anchor != "" && t.Anchor != scene.AnchorStart {
		fmt.Fprintf(&buf, ";text-anchor:%s", t.Anchor)
	}
	if t.Opacity > 0 && t.Opacity < 1 {
		fmt.Fprintf(&buf, ";opacity:%.3g", t.Opacity)
	}
	return buf.String()
}
