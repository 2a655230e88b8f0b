package deck

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"time"
)

// EMU geometry. OOXML positions everything in English Metric Units; the
// 16:9 slide is 13.333 by 7.5 inches. One design-frame unit (1/960 of the
// slide width) is exactly 12700 EMU, so the exporter shares the preview's
// 960x540 coordinate space and converts at the boundary.
const (
	slideWidthEMU  = 12192000
	slideHeightEMU = 6858000
	emuPerUnit     = 12700
)

// emu converts a design-frame coordinate to EMU.
func emu(v float64) int64 {
	return int64(v * emuPerUnit)
}

// document is an in-progress pptx archive: ordered parts plus the
// relationship bookkeeping the container format requires.
type document struct {
	theme   string
	masters []string
	layouts []string
	slides  []slidePart
}

func newDocument() *document {
	return &document{}
}

func (d *document) addMaster(xml string) {
	d.masters = append(d.masters, xml)
}

func (d *document) addLayout(xml string) {
	d.layouts = append(d.layouts, xml)
}

func (d *document) addSlide(s slidePart) {
	d.slides = append(d.slides, s)
}

// xmlEscape escapes text destined for XML character data or attributes.
var xmlEscape = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
).Replace

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// writeTo serializes the archive. Part order and timestamps are fixed so
// identical states produce byte-identical documents.
func (d *document) writeTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	stamp := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	write := func(name, content string) error {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: stamp,
		})
		if err != nil {
			return err
		}
		_, err = io.WriteString(fw, content)
		return err
	}

	parts := []struct{ name, content string }{
		{"[Content_Types].xml", d.contentTypes()},
		{"_rels/.rels", rootRels},
		{"docProps/core.xml", coreProps},
		{"docProps/app.xml", appProps},
		{"ppt/presentation.xml", d.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", d.presentationRels()},
		{"ppt/presProps.xml", presProps},
		{"ppt/viewProps.xml", viewProps},
	}
	for _, p := range parts {
		if err := write(p.name, p.content); err != nil {
			return err
		}
	}

	for i, xml := range d.masters {
		n := i + 1
		if err := write(fmt.Sprintf("ppt/slideMasters/slideMaster%d.xml", n), xml); err != nil {
			return err
		}
		if err := write(fmt.Sprintf("ppt/slideMasters/_rels/slideMaster%d.xml.rels", n), masterRels(n)); err != nil {
			return err
		}
	}
	for i, xml := range d.layouts {
		n := i + 1
		if err := write(fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", n), xml); err != nil {
			return err
		}
		if err := write(fmt.Sprintf("ppt/slideLayouts/_rels/slideLayout%d.xml.rels", n), layoutRels(n)); err != nil {
			return err
		}
	}
	for i, s := range d.slides {
		n := i + 1
		if err := write(fmt.Sprintf("ppt/slides/slide%d.xml", n), s.xml); err != nil {
			return err
		}
		if err := write(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRels(n, s)); err != nil {
			return err
		}
		for _, c := range s.charts {
			if err := write("ppt/charts/"+c.name, c.xml); err != nil {
				return err
			}
		}
	}

	for i := range d.masters {
		if err := write(fmt.Sprintf("ppt/theme/theme%d.xml", i+1), d.theme); err != nil {
			return err
		}
	}

	return zw.Close()
}

func (d *document) contentTypes() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/viewProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"/>`)
	for i := range d.masters {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slideMasters/slideMaster%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`, i+1)
		fmt.Fprintf(&b, `<Override PartName="/ppt/theme/theme%d.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`, i+1)
	}
	for i := range d.layouts {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slideLayouts/slideLayout%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`, i+1)
	}
	for i, s := range d.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
		for _, c := range s.charts {
			fmt.Fprintf(&b, `<Override PartName="/ppt/charts/%s" ContentType="application/vnd.openxmlformats-officedocument.drawingml.chart+xml"/>`, c.name)
		}
	}
	b.WriteString(`</Types>`)
	return b.String()
}

const rootRels = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const coreProps = xmlHeader + `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">` +
	`<dc:creator>DeckForge</dc:creator><cp:lastModifiedBy>DeckForge</cp:lastModifiedBy>` +
	`</cp:coreProperties>`

const appProps = xmlHeader + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
	`<Application>DeckForge</Application>` +
	`</Properties>`

const presProps = xmlHeader + `<p:presentationPr xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`

const viewProps = xmlHeader + `<p:viewPr xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`

// Slide master and slide layout ids live in the same >= 2147483648 space
// and must be unique across the whole document, so layouts allocate from a
// block well above any realistic master count.
const (
	sldMasterIDBase = 2147483648
	sldLayoutIDBase = 2147485648
)

func (d *document) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:sldMasterIdLst>`)
	for i := range d.masters {
		fmt.Fprintf(&b, `<p:sldMasterId id="%d" r:id="rId%d"/>`, sldMasterIDBase+i, i+1)
	}
	b.WriteString(`</p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := range d.slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, len(d.masters)+i+1)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="%d" cy="%d"/>`,
		slideWidthEMU, slideHeightEMU, slideHeightEMU, slideWidthEMU)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (d *document) presentationRels() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	rid := 1
	for i := range d.masters {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster%d.xml"/>`, rid, i+1)
		rid++
	}
	for i := range d.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, rid, i+1)
		rid++
	}
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps" Target="presProps.xml"/>`, rid)
	rid++
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps" Target="viewProps.xml"/>`, rid)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func masterRels(n int) string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		fmt.Sprintf(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout%d.xml"/>`, n) +
		fmt.Sprintf(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme%d.xml"/>`, n) +
		`</Relationships>`
}

func layoutRels(n int) string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		fmt.Sprintf(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster%d.xml"/>`, n) +
		`</Relationships>`
}

func slideRels(n int, s slidePart) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout%d.xml"/>`, n)
	for i, c := range s.charts {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart" Target="../charts/%s"/>`, i+2, c.name)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}
