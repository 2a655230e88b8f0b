// Package scene defines the target-agnostic scene graph both preview sinks
// consume. The preview renderer resolves a template into these primitives;
// the SVG and PNG sinks are thin encoders over them.
package scene

// Paint carries fill and stroke attributes for a shape.
type Paint struct {
	Fill        string  // "#RRGGBB", empty for no fill
	FillOpacity float64 // 0–1
	GradientTo  string  // optional second stop; sinks render a vertical gradient

	Stroke        string
	StrokeWidth   float64
	StrokeOpacity float64
	Dash          string // SVG-style dasharray, empty for solid
}

// Solid returns an opaque fill paint.
func Solid(hex string) Paint {
	return Paint{Fill: hex, FillOpacity: 1}
}

// Outline returns a stroke-only paint.
func Outline(hex string, width float64) Paint {
	return Paint{Stroke: hex, StrokeWidth: width, StrokeOpacity: 1}
}

// Node is one primitive in a scene.
type Node interface {
	node()
}

// Rect is an axis-aligned rectangle with optional rounded corners.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Paint
}

// Ellipse is centered at CX,CY with radii RX,RY.
type Ellipse struct {
	CX, CY, RX, RY float64
	Paint
}

// Line is a straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Paint
}

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Polygon is a closed shape through the given points.
type Polygon struct {
	Points []Point
	Paint
}

// Polyline is an open stroke through the given points.
type Polyline struct {
	Points []Point
	Paint
}

// Anchor positions text relative to its X coordinate.
type Anchor string

// Text anchors.
const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a single line of text. Y is the baseline.
type Text struct {
	X, Y    float64
	Content string
	Font    string
	Size    float64
	Weight  int
	Italic  bool
	Anchor  Anchor
	Color   string
	Opacity float64
}

func (Rect) node()     {}
func (Ellipse) node()  {}
func (Line) node()     {}
func (Polygon) node()  {}
func (Polyline) node() {}
func (Text) node()     {}

// Scene is a fully resolved frame of primitives in paint order.
type Scene struct {
	Width, Height float64
	Background    string
	Nodes         []Node
}

// New creates an empty scene with the given frame and background.
func New(width, height float64, background string) *Scene {
	return &Scene{Width: width, Height: height, Background: background}
}

// Add appends nodes in paint order.
func (s *Scene) Add(nodes ...Node) {
	s.Nodes = append(s.Nodes, nodes...)
}
