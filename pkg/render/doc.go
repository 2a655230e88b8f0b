// Package render provides slide rendering for brand templates.
//
// # Overview
//
// This package contains the rendering pipeline that transforms a compiled
// template into visual outputs. It provides:
//
//   - Scene graph construction (in [preview] subpackage)
//   - Scene encoding to SVG, PNG, and JSON (in [sink] subpackage)
//   - PowerPoint document export (in [deck] subpackage)
//
// # Preview Rendering
//
// The [preview] subpackage walks one layout's regions and emits a
// [scene.Scene]: a flat list of primitive nodes (rects, ellipses, lines,
// polygons, text) with resolved colors and style parameters. Structural
// branching per style family happens here, so every encoder downstream
// stays geometry-only.
//
//	sc := preview.Render(state, layout, preview.Options{Width: 960})
//	svg := sink.RenderSVG(sc)
//	png, err := sink.RenderPNG(sc)
//
// # Document Export
//
// The [deck] subpackage writes the whole enabled layout set as a PPTX
// archive: hand-built OOXML parts zipped into the package layout PowerPoint
// expects. Shapes stay editable, they are not rasterized.
//
//	res := deck.Export(state)
//	if res.Success {
//	    os.WriteFile("brand.pptx", res.Buffer, 0o644)
//	}
//
// # Sample Content
//
// The [sample] subpackage holds the placeholder content (chart series,
// quote text, table rows) shared by both renderers so previews and exports
// show identical data.
//
// [preview]: github.com/deckforge/deckforge/pkg/render/preview
// [sink]: github.com/deckforge/deckforge/pkg/render/sink
// [deck]: github.com/deckforge/deckforge/pkg/render/deck
// [sample]: github.com/deckforge/deckforge/pkg/render/sample
// [scene.Scene]: github.com/deckforge/deckforge/pkg/render/scene
package render
