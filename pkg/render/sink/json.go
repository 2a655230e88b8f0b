package sink

import (
	"encoding/json"

	"github.com/deckforge/deckforge/pkg/render/scene"
)

// JSONOption configures JSON encoding via [RenderJSON].
type JSONOption func(*jsonEncoder)

type jsonEncoder struct {
	compact bool
}

// WithCompact disables pretty-printing.
func WithCompact() JSONOption {
	return func(e *jsonEncoder) { e.compact = true }
}

type jsonOutput struct {
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Background string     `json:"background"`
	Nodes      []jsonNode `json:"nodes"`
}

// jsonNode is a tagged union over the scene primitives. Kind selects which
// field group is meaningful.
type jsonNode struct {
	Kind string `json:"kind"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	Radius float64 `json:"radius,omitempty"`

	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
	RX float64 `json:"rx,omitempty"`
	RY float64 `json:"ry,omitempty"`

	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	Points []scene.Point `json:"points,omitempty"`

	Text    string  `json:"text,omitempty"`
	Font    string  `json:"font,omitempty"`
	Size    float64 `json:"size,omitempty"`
	Weight  int     `json:"weight,omitempty"`
	Italic  bool    `json:"italic,omitempty"`
	Anchor  string  `json:"anchor,omitempty"`
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`

	Paint *jsonPaint `json:"paint,omitempty"`
}

type jsonPaint struct {
	Fill          string  `json:"fill,omitempty"`
	FillOpacity   float64 `json:"fillOpacity,omitempty"`
	GradientTo    string  `json:"gradientTo,omitempty"`
	Stroke        string  `json:"stroke,omitempty"`
	StrokeWidth   float64 `json:"strokeWidth,omitempty"`
	StrokeOpacity float64 `json:"strokeOpacity,omitempty"`
	Dash          string  `json:"dash,omitempty"`
}

// RenderJSON exports the resolved scene as a JSON document. This is the data
// interchange format for external tooling and for re-rendering a frame
// without recomputing style or layout.
func RenderJSON(sc *scene.Scene, opts ...JSONOption) ([]byte, error) {
	e := jsonEncoder{}
	for _, opt := range opts {
		opt(&e)
	}

	out := jsonOutput{
		Width:      sc.Width,
		Height:     sc.Height,
		Background: sc.Background,
		Nodes:      make([]jsonNode, 0, len(sc.Nodes)),
	}
	for _, n := range sc.Nodes {
		out.Nodes = append(out.Nodes, buildJSONNode(n))
	}

	if e.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONNode(n scene.Node) jsonNode {
	switch v := n.(type) {
	case scene.Rect:
		return jsonNode{Kind: "rect", X: v.X, Y: v.Y, W: v.W, H: v.H, Radius: v.Radius, Paint: buildJSONPaint(v.Paint)}
	case scene.Ellipse:
		return jsonNode{Kind: "ellipse", CX: v.CX, CY: v.CY, RX: v.RX, RY: v.RY, Paint: buildJSONPaint(v.Paint)}
	case scene.Line:
		return jsonNode{Kind: "line", X1: v.X1, Y1: v.Y1, X2: v.X2, Y2: v.Y2, Paint: buildJSONPaint(v.Paint)}
	case scene.Polygon:
		return jsonNode{Kind: "polygon", Points: v.Points, Paint: buildJSONPaint(v.Paint)}
	case scene.Polyline:
		return jsonNode{Kind: "polyline", Points: v.Points, Paint: buildJSONPaint(v.Paint)}
	case scene.Text:
		return jsonNode{
			Kind: "text", X: v.X, Y: v.Y,
			Text: v.Content, Font: v.Font, Size: v.Size, Weight: v.Weight,
			Italic: v.Italic, Anchor: string(v.Anchor), Color: v.Color, Opacity: v.Opacity,
		}
	}
	return jsonNode{Kind: "unknown"}
}

func buildJSONPaint(p scene.Paint) *jsonPaint {
	if p == (scene.Paint{}) {
		return nil
	}
	return &jsonPaint{
		Fill:          p.Fill,
		FillOpacity:   p.FillOpacity,
		GradientTo:    p.GradientTo,
		Stroke:        p.Stroke,
		StrokeWidth:   p.StrokeWidth,
		StrokeOpacity: p.StrokeOpacity,
		Dash:          p.Dash,
	}
}
