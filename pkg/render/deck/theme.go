package deck

import (
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/style"
)

// hex strips the '#' prefix; DrawingML srgbClr values are bare RRGGBB.
func hex(color string) string {
	return strings.TrimPrefix(color, "#")
}

// themeXML maps the brand palette onto the Office theme color scheme so
// recoloring inside PowerPoint stays on brand.
func (b *builder) themeXML() string {
	c := b.state.Tokens.Colors
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="DeckForge">`)
	sb.WriteString(`<a:themeElements><a:clrScheme name="Brand">`)
	fmt.Fprintf(&sb, `<a:dk1><a:srgbClr val="%s"/></a:dk1>`, hex(c.Primary))
	fmt.Fprintf(&sb, `<a:lt1><a:srgbClr val="%s"/></a:lt1>`, hex(c.Background))
	fmt.Fprintf(&sb, `<a:dk2><a:srgbClr val="%s"/></a:dk2>`, hex(c.Neutral))
	fmt.Fprintf(&sb, `<a:lt2><a:srgbClr val="%s"/></a:lt2>`, hex(c.Background))
	fmt.Fprintf(&sb, `<a:accent1><a:srgbClr val="%s"/></a:accent1>`, hex(c.Accent))
	fmt.Fprintf(&sb, `<a:accent2><a:srgbClr val="%s"/></a:accent2>`, hex(c.Secondary))
	fmt.Fprintf(&sb, `<a:accent3><a:srgbClr val="%s"/></a:accent3>`, hex(c.Primary))
	fmt.Fprintf(&sb, `<a:accent4><a:srgbClr val="%s"/></a:accent4>`, hex(c.Neutral))
	fmt.Fprintf(&sb, `<a:accent5><a:srgbClr val="%s"/></a:accent5>`, hex(c.Secondary))
	fmt.Fprintf(&sb, `<a:accent6><a:srgbClr val="%s"/></a:accent6>`, hex(c.Accent))
	sb.WriteString(`<a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink>`)
	sb.WriteString(`</a:clrScheme>`)

	fmt.Fprintf(&sb, `<a:fontScheme name="Brand"><a:majorFont><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme>`,
		xmlEscape(b.titleFont), xmlEscape(b.bodyFont))

	sb.WriteString(`<a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>` +
		`<a:lnStyleLst><a:ln w="9525"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="28575"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>` +
		`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>` +
		`<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme>`)
	sb.WriteString(`</a:themeElements></a:theme>`)
	return sb.String()
}

// masterXML builds the master for one layout archetype. The master carries
// the effective slide background and the brand text defaults; content lives
// on the slides so every element stays editable. idx positions the master's
// layout id in the document-wide id space.
func (b *builder) masterXML(idx int, l layout.Layout) string {
	background := style.Background(b.state.Tokens.Colors.Background, b.mp)

	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	fmt.Fprintf(&sb, `<p:cSld name="%s Master">`, xmlEscape(layout.DisplayName(l.Type)))
	fmt.Fprintf(&sb, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, hex(background))
	sb.WriteString(emptySpTree)
	sb.WriteString(`</p:cSld>`)
	sb.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	fmt.Fprintf(&sb, `<p:sldLayoutIdLst><p:sldLayoutId id="%d" r:id="rId1"/></p:sldLayoutIdLst>`, sldLayoutIDBase+idx)
	fmt.Fprintf(&sb, `<p:txStyles><p:titleStyle><a:lvl1pPr><a:defRPr sz="%d" b="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:defRPr></a:lvl1pPr></p:titleStyle>`,
		pts(b.state.Typography.TitleSize*b.state.TypeScale), boolAttr(b.state.Typography.TitleWeight >= 600), hex(b.state.Tokens.Colors.Primary), xmlEscape(b.titleFont))
	fmt.Fprintf(&sb, `<p:bodyStyle><a:lvl1pPr><a:defRPr sz="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:defRPr></a:lvl1pPr></p:bodyStyle><p:otherStyle/></p:txStyles>`,
		pts(b.state.Typography.BodySize*b.state.TypeScale), hex(b.state.Tokens.Colors.Neutral), xmlEscape(b.bodyFont))
	sb.WriteString(`</p:sldMaster>`)
	return sb.String()
}

// layoutXML builds the slide layout shell for one archetype.
func (b *builder) layoutXML(l layout.Layout) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	fmt.Fprintf(&sb, `<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank" preserve="1">`)
	sb.WriteString(`<p:cSld name="`)
	sb.WriteString(xmlEscape(layout.DisplayName(l.Type)))
	sb.WriteString(`">`)
	sb.WriteString(emptySpTree)
	sb.WriteString(`</p:cSld>`)
	sb.WriteString(`<p:clrMapOvr><a:overrideClrMapping bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/></p:clrMapOvr>`)
	sb.WriteString(`</p:sldLayout>`)
	return sb.String()
}

const emptySpTree = `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree>`

// pts converts a point size to the hundredths-of-a-point unit DrawingML
// text properties use.
func pts(size float64) int {
	return int(size * 100)
}

func boolAttr(v bool) int {
	if v {
		return 1
	}
	return 0
}
