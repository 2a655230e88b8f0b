package deck

import (
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/style"
)

// All shape builders take coordinates in the 960x540 design frame and
// convert to EMU at the boundary, mirroring the preview's coordinate space
// with scale fixed at 1.

// fill describes a solid DrawingML fill.
type fill struct {
	color   string  // "#RRGGBB", empty for no fill
	alpha   float64 // 0–1; 0 or 1 means opaque
	gradTo  string  // optional second stop
	stroke  string
	strokeW float64 // design units
	dash    bool
}

func (f fill) xml() string {
	var sb strings.Builder
	switch {
	case f.color == "":
		sb.WriteString(`<a:noFill/>`)
	case f.gradTo != "":
		fmt.Fprintf(&sb, `<a:gradFill><a:gsLst><a:gs pos="0">%s</a:gs><a:gs pos="100000">%s</a:gs></a:gsLst><a:lin ang="5400000" scaled="1"/></a:gradFill>`,
			alphaColor(f.color, f.alpha), alphaColor(f.gradTo, f.alpha))
	default:
		fmt.Fprintf(&sb, `<a:solidFill>%s</a:solidFill>`, alphaColor(f.color, f.alpha))
	}
	if f.stroke != "" && f.strokeW > 0 {
		dash := ""
		if f.dash {
			dash = `<a:prstDash val="dash"/>`
		}
		fmt.Fprintf(&sb, `<a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill>%s</a:ln>`,
			emu(f.strokeW), hex(f.stroke), dash)
	} else {
		sb.WriteString(`<a:ln><a:noFill/></a:ln>`)
	}
	return sb.String()
}

// alphaColor renders a srgbClr element with optional partial opacity.
func alphaColor(color string, alpha float64) string {
	if alpha <= 0 || alpha >= 1 {
		return fmt.Sprintf(`<a:srgbClr val="%s"/>`, hex(color))
	}
	return fmt.Sprintf(`<a:srgbClr val="%s"><a:alpha val="%d"/></a:srgbClr>`, hex(color), int(alpha*100000))
}

// shape emits one autoshape. geometry is a DrawingML preset name
// ("rect", "roundRect", "ellipse", "diamond", "triangle").
func (b *builder) shape(id int, name, geometry string, r layout.Rect, f fill, shadow bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr>`,
		id, xmlEscape(name))
	fmt.Fprintf(&sb, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(r.X), emu(r.Y), emu(r.W), emu(r.H))

	if geometry == "roundRect" {
		// adj is the corner radius as a fraction of the shorter side,
		// scaled by 100000.
		short := minf(r.W, r.H)
		adj := 0
		if short > 0 {
			frac := b.radius() / short
			if frac > 0.5 {
				frac = 0.5
			}
			adj = int(frac * 100000)
		}
		fmt.Fprintf(&sb, `<a:prstGeom prst="roundRect"><a:avLst><a:gd name="adj" fmla="val %d"/></a:avLst></a:prstGeom>`, adj)
	} else {
		fmt.Fprintf(&sb, `<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, geometry)
	}

	sb.WriteString(f.xml())

	if shadow {
		if off := style.ShadowOffset(1, b.sp, b.mp); off > 0 {
			alpha := 20000
			if b.sp.ShadowOffset >= 4 {
				alpha = 100000
			}
			fmt.Fprintf(&sb, `<a:effectLst><a:outerShdw dist="%d" dir="2700000" rotWithShape="0"><a:srgbClr val="000000"><a:alpha val="%d"/></a:srgbClr></a:outerShdw></a:effectLst>`,
				emu(off), alpha)
		}
	}

	sb.WriteString(`</p:spPr></p:sp>`)
	return sb.String()
}

// rectGeometry picks rect or roundRect from the family roundness.
func (b *builder) rectGeometry() string {
	if b.radius() > 0.5 {
		return "roundRect"
	}
	return "rect"
}

// connector emits a straight line shape.
func (b *builder) connector(id int, name string, x1, y1, x2, y2, width float64, color string, dashed bool) string {
	x, y := minf(x1, x2), minf(y1, y2)
	w, h := x2-x1, y2-y1
	flipH, flipV := "", ""
	if w < 0 {
		w, flipH = -w, ` flipH="1"`
	}
	if h < 0 {
		h, flipV = -h, ` flipV="1"`
	}
	dash := ""
	if dashed {
		dash = `<a:prstDash val="dash"/>`
	}
	return fmt.Sprintf(`<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="%d" name="%s"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr><p:spPr><a:xfrm%s%s><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="line"><a:avLst/></a:prstGeom><a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill>%s</a:ln></p:spPr></p:cxnSp>`,
		id, xmlEscape(name), flipH, flipV, emu(x), emu(y), emu(w), emu(h), emu(width), hex(color), dash)
}

// run is one styled text run.
type run struct {
	text   string
	font   string
	size   float64 // points
	weight int
	italic bool
	color  string
	alpha  float64
}

// para is one paragraph: alignment plus runs.
type para struct {
	align string // "l", "ctr", "r"
	runs  []run
}

// textBox emits an editable text box covering r.
func (b *builder) textBox(id int, name string, r layout.Rect, anchor string, paras ...para) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr>`,
		id, xmlEscape(name))
	fmt.Fprintf(&sb, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`,
		emu(r.X), emu(r.Y), emu(r.W), emu(r.H))
	if anchor == "" {
		anchor = "t"
	}
	fmt.Fprintf(&sb, `<p:txBody><a:bodyPr wrap="square" anchor="%s"><a:normAutofit/></a:bodyPr><a:lstStyle/>`, anchor)
	for _, p := range paras {
		align := p.align
		if align == "" {
			align = "l"
		}
		fmt.Fprintf(&sb, `<a:p><a:pPr algn="%s"/>`, align)
		for _, rn := range p.runs {
			bold := ""
			if rn.weight >= 600 {
				bold = ` b="1"`
			}
			ital := ""
			if rn.italic {
				ital = ` i="1"`
			}
			fmt.Fprintf(&sb, `<a:r><a:rPr lang="en-US" sz="%d"%s%s dirty="0"><a:solidFill>%s</a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r>`,
				pts(rn.size), bold, ital, alphaColor(rn.color, rn.alpha), xmlEscape(rn.font), xmlEscape(rn.text))
		}
		sb.WriteString(`</a:p>`)
	}
	sb.WriteString(`</p:txBody></p:sp>`)
	return sb.String()
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
