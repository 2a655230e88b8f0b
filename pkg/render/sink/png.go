package sink

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/deckforge/deckforge/pkg/fonts"
	"github.com/deckforge/deckforge/pkg/render/scene"
)

// PNGOption configures PNG rasterization.
type PNGOption func(*pngEncoder)

type pngEncoder struct {
	scale float64
}

// WithScale sets the raster scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(e *pngEncoder) { e.scale = s }
}

// RenderPNG rasterizes a scene. Text is drawn with the bundled Go fonts
// since the template's fonts are not available at raster time; weight and
// italic map onto the closest bundled face.
func RenderPNG(sc *scene.Scene, opts ...PNGOption) ([]byte, error) {
	e := pngEncoder{scale: 2.0}
	for _, opt := range opts {
		opt(&e)
	}

	w := int(sc.Width * e.scale)
	h := int(sc.Height * e.scale)
	dc := gg.NewContext(w, h)
	dc.Scale(e.scale, e.scale)

	if sc.Background != "" {
		setFill(dc, scene.Paint{Fill: sc.Background, FillOpacity: 1})
		dc.DrawRectangle(0, 0, sc.Width, sc.Height)
		dc.Fill()
	}

	for _, n := range sc.Nodes {
		if err := rasterNode(dc, n); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rasterNode(dc *gg.Context, n scene.Node) error {
	switch v := n.(type) {
	case scene.Rect:
		if v.Radius > 0 {
			dc.DrawRoundedRectangle(v.X, v.Y, v.W, v.H, v.Radius)
		} else {
			dc.DrawRectangle(v.X, v.Y, v.W, v.H)
		}
		fillStroke(dc, v.Paint)
	case scene.Ellipse:
		dc.DrawEllipse(v.CX, v.CY, v.RX, v.RY)
		fillStroke(dc, v.Paint)
	case scene.Line:
		dc.MoveTo(v.X1, v.Y1)
		dc.LineTo(v.X2, v.Y2)
		strokeOnly(dc, v.Paint)
	case scene.Polygon:
		tracePath(dc, v.Points)
		dc.ClosePath()
		fillStroke(dc, v.Paint)
	case scene.Polyline:
		tracePath(dc, v.Points)
		strokeOnly(dc, v.Paint)
	case scene.Text:
		return rasterText(dc, v)
	}
	return nil
}

func tracePath(dc *gg.Context, pts []scene.Point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
}

func fillStroke(dc *gg.Context, p scene.Paint) {
	if p.Fill != "" && p.FillOpacity > 0 {
		setFill(dc, p)
		if hasStroke(p) {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if hasStroke(p) {
		strokeOnly(dc, p)
	} else {
		dc.ClearPath()
	}
}

func hasStroke(p scene.Paint) bool {
	return p.Stroke != "" && p.StrokeWidth > 0
}

func strokeOnly(dc *gg.Context, p scene.Paint) {
	if !hasStroke(p) {
		dc.ClearPath()
		return
	}
	dc.SetColor(paintColor(p.Stroke, strokeAlpha(p)))
	dc.SetLineWidth(p.StrokeWidth)
	if p.Dash != "" {
		dc.SetDash(parseDash(p.Dash)...)
	} else {
		dc.SetDash()
	}
	dc.Stroke()
	dc.SetDash()
}

func strokeAlpha(p scene.Paint) float64 {
	if p.StrokeOpacity > 0 && p.StrokeOpacity < 1 {
		return p.StrokeOpacity
	}
	return 1
}

// setFill handles solid and gradient fills. Gradients raster as a vertical
// two-stop blend matching the SVG encoder's defs.
func setFill(dc *gg.Context, p scene.Paint) {
	alpha := p.FillOpacity
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	if p.GradientTo != "" {
		grad := gg.NewLinearGradient(0, 0, 0, float64(dc.Height()))
		grad.AddColorStop(0, paintColor(p.Fill, alpha))
		grad.AddColorStop(1, paintColor(p.GradientTo, alpha))
		dc.SetFillStyle(grad)
		return
	}
	dc.SetColor(paintColor(p.Fill, alpha))
}

func paintColor(hex string, alpha float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{A: uint8(alpha * 255)}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha * 255)}
}

func parseDash(dash string) []float64 {
	var out []float64
	cur := 0.0
	have := false
	for _, ch := range dash {
		if ch >= '0' && ch <= '9' {
			cur = cur*10 + float64(ch-'0')
			have = true
			continue
		}
		if have {
			out = append(out, cur)
			cur, have = 0, false
		}
	}
	if have {
		out = append(out, cur)
	}
	return out
}

func rasterText(dc *gg.Context, t scene.Text) error {
	dc.SetFontFace(fonts.Face(t.Weight, t.Italic, t.Size))

	alpha := t.Opacity
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	dc.SetColor(paintColor(t.Color, alpha))

	x := t.X
	if t.Anchor == scene.AnchorMiddle || t.Anchor == scene.AnchorEnd {
		w, _ := dc.MeasureString(t.Content)
		if t.Anchor == scene.AnchorMiddle {
			x -= w / 2
		} else {
			x -= w
		}
	}
	dc.DrawString(t.Content, x, t.Y)
	return nil
}
