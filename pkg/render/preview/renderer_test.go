package preview

import (
	"reflect"
	"testing"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/render/scene"
	"github.com/deckforge/deckforge/pkg/style"
)

func testState() brand.State {
	s := brand.NewState()
	s.Name = "Acme"
	return s
}

func TestRenderDeterministic(t *testing.T) {
	state := testState()
	l := layout.Default(layout.TypeTitle)

	a := Render(state, l, Options{Width: 960})
	b := Render(state, l, Options{Width: 960})
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different scenes")
	}
}

func TestRenderEveryLayoutType(t *testing.T) {
	state := testState()
	for _, typ := range layout.Types {
		t.Run(string(typ), func(t *testing.T) {
			sc := Render(state, layout.Default(typ), Options{Width: 960})
			if len(sc.Nodes) == 0 {
				t.Fatalf("layout %s rendered no nodes", typ)
			}
		})
	}
}

func TestRenderEveryFamily(t *testing.T) {
	// Special-content layouts branch per family; all must render.
	types := []layout.Type{
		layout.TypeComparison, layout.TypeTimeline, layout.TypeIconography,
		layout.TypeBarChart, layout.TypeLineChart, layout.TypePieChart,
	}
	for _, fam := range style.Families {
		state := testState()
		state.StyleFamily = fam
		for _, typ := range types {
			sc := Render(state, layout.Default(typ), Options{Width: 960})
			if len(sc.Nodes) == 0 {
				t.Fatalf("family %s layout %s rendered no nodes", fam, typ)
			}
		}
	}
}

func TestRenderScaleProportional(t *testing.T) {
	state := testState()
	l := layout.Default(layout.TypeContent)

	full := Render(state, l, Options{Width: 960})
	half := Render(state, l, Options{Width: 480})

	if full.Width != 960 || full.Height != 540 {
		t.Fatalf("full frame = %gx%g, want 960x540", full.Width, full.Height)
	}
	if half.Width != 480 || half.Height != 270 {
		t.Fatalf("half frame = %gx%g, want 480x270", half.Width, half.Height)
	}
	if len(full.Nodes) != len(half.Nodes) {
		t.Fatalf("node count changed with scale: %d vs %d", len(full.Nodes), len(half.Nodes))
	}

	// Every absolute coordinate halves with the width.
	fr := firstRect(t, full)
	hr := firstRect(t, half)
	if !closeTo(hr.X, fr.X/2) || !closeTo(hr.W, fr.W/2) {
		t.Fatalf("rect did not scale: full=%+v half=%+v", fr, hr)
	}
}

func TestRenderDefaultWidth(t *testing.T) {
	sc := Render(testState(), layout.Default(layout.TypeTitle), Options{})
	if sc.Width != DesignWidth || sc.Height != DesignHeight {
		t.Fatalf("frame = %gx%g, want %gx%g", sc.Width, sc.Height, DesignWidth, DesignHeight)
	}
}

func TestShowRegionsMode(t *testing.T) {
	state := testState()
	l := layout.Default(layout.TypeTwoColumn)

	sc := Render(state, l, Options{Width: 960, ShowRegions: true})

	// One box and one label per region, nothing else.
	want := len(l.Regions) * 2
	if len(sc.Nodes) != want {
		t.Fatalf("region mode rendered %d nodes, want %d", len(sc.Nodes), want)
	}
	for _, n := range sc.Nodes {
		switch n.(type) {
		case scene.Rect, scene.Text:
		default:
			t.Fatalf("region mode rendered unexpected node %T", n)
		}
	}
}

func TestFamiliesDivergeStructurally(t *testing.T) {
	// The comparison layout must produce structurally different scenes per
	// family archetype, not recolored copies.
	l := layout.Default(layout.TypeComparison)

	counts := map[style.Family]int{}
	for _, fam := range []style.Family{style.FamilyClean, style.FamilyEditorial, style.FamilyBento, style.FamilyMinimal} {
		state := testState()
		state.StyleFamily = fam
		counts[fam] = len(Render(state, l, Options{Width: 960}).Nodes)
	}
	if counts[style.FamilyClean] == counts[style.FamilyMinimal] &&
		counts[style.FamilyClean] == counts[style.FamilyBento] {
		t.Fatalf("family branches produced identical node counts: %v", counts)
	}
}

func TestHardShadowFamiliesEmitSilhouette(t *testing.T) {
	l := layout.Default(layout.TypeMedia)

	soft := testState()
	soft.StyleFamily = style.FamilyMinimal
	hard := testState()
	hard.StyleFamily = style.FamilyNeubrutalist

	softBlack := countFill(Render(soft, l, Options{Width: 960}), "#000000")
	hardBlack := countFill(Render(hard, l, Options{Width: 960}), "#000000")
	if hardBlack <= softBlack {
		t.Fatalf("hard-shadow family drew %d silhouettes, soft drew %d", hardBlack, softBlack)
	}
}

func TestBackgroundTintRespectsExplicitColor(t *testing.T) {
	l := layout.Default(layout.TypeTitle)

	nearWhite := testState()
	nearWhite.Mood = style.MoodCalm
	sc := Render(nearWhite, l, Options{Width: 960})
	if sc.Background == nearWhite.Tokens.Colors.Background {
		t.Fatal("near-white background should take the mood tint")
	}

	explicit := testState()
	explicit.Mood = style.MoodCalm
	explicit.Tokens.Colors.Background = "#1A1A2E"
	sc = Render(explicit, l, Options{Width: 960})
	if sc.Background != "#1A1A2E" {
		t.Fatalf("explicit dark background was overridden to %s", sc.Background)
	}
}

func TestMissingRegionIsNonFatal(t *testing.T) {
	state := testState()
	l := layout.Layout{
		Name: "Empty", Type: layout.TypeComparison,
		Grid: layout.GridConfig{Columns: 12, Rows: 8},
	}
	sc := Render(state, l, Options{Width: 960})
	if sc == nil {
		t.Fatal("render returned nil scene")
	}
}

func firstRect(t *testing.T, sc *scene.Scene) scene.Rect {
	t.Helper()
	for _, n := range sc.Nodes {
		if r, ok := n.(scene.Rect); ok {
			return r
		}
	}
	t.Fatal("scene has no rect node")
	return scene.Rect{}
}

func countFill(sc *scene.Scene, hex string) int {
	n := 0
	for _, node := range sc.Nodes {
		if r, ok := node.(scene.Rect); ok && r.Fill == hex {
			n++
		}
	}
	return n
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 0.01 && d > -0.01
}
