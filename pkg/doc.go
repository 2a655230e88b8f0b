// Package pkg provides the core libraries for DeckForge brand templating.
//
// # Overview
//
// DeckForge compiles a brand template (colors, typography, style family,
// mood) into vector previews and fully editable PowerPoint decks. The pkg
// directory is organized into five main areas:
//
//  1. [brand] - Template state (mutation, validation, history, presets)
//  2. [color], [style], [layout] - Design primitives (palettes, compiled
//     style parameters, grid layouts)
//  3. [render] - Scene graph previews and document export
//  4. [pipeline] - Orchestration (state → scene → artifact) with caching
//  5. [cache], [errors], [fonts], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through DeckForge:
//
//	Brand Template (brand.State)
//	         ↓
//	    [style] package (compile family × mood into parameters)
//	         ↓
//	    [render/preview] package (layout → scene graph)
//	         ↓
//	    [render/sink] / [render/deck] (SVG/PNG/JSON / PPTX output)
//
// # Quick Start
//
// Render a default template to SVG:
//
//	import (
//	    "context"
//	    "github.com/deckforge/deckforge/pkg/brand"
//	    "github.com/deckforge/deckforge/pkg/pipeline"
//	)
//
//	state := brand.NewState()
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), state, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
//
// # Main Packages
//
// [brand] - The template aggregate. Holds colors, typography, the style
// family and mood, and the per-layout region grids; supports undo/redo
// history, named presets, and validation with contrast checks.
//
// [color] - Hex color parsing, HSL conversion, WCAG contrast math, and
// harmony-based palette generation with per-role locks.
//
// [style] - Compiles one of twenty style families and four moods into the
// numeric parameters the renderers consume. Family and mood multiply, they
// do not override each other.
//
// [layout] - The nineteen slide layout types, their default region grids,
// and deterministic layout variants.
//
// [render] - Scene graph construction and encoding. See [render] for the
// preview/deck split.
//
// [pipeline] - Renders requested formats for one template state with
// content-addressed artifact caching.
package pkg
