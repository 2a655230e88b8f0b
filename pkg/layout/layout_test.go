package layout

import (
	"reflect"
	"testing"
)

func TestTypeValid(t *testing.T) {
	for _, lt := range Types {
		if !lt.Valid() {
			t.Errorf("%s reported invalid", lt)
		}
	}
	if Type("mindMap").Valid() {
		t.Error("mindMap reported valid")
	}
}

func TestIsChart(t *testing.T) {
	charts := 0
	for _, lt := range Types {
		if lt.IsChart() {
			charts++
		}
	}
	if charts != 8 {
		t.Fatalf("chart type count = %d, want 8", charts)
	}
	if TypeTimeline.IsChart() {
		t.Error("timeline reported as chart")
	}
	if !TypeDonutChart.IsChart() {
		t.Error("donutChart not reported as chart")
	}
}

func TestIsSpecialContent(t *testing.T) {
	for _, lt := range []Type{TypeTimeline, TypeComparison, TypeIconography, TypeBarChart} {
		if !lt.IsSpecialContent() {
			t.Errorf("%s not special content", lt)
		}
	}
	for _, lt := range []Type{TypeContent, TypeQuote, TypeAgenda} {
		if lt.IsSpecialContent() {
			t.Errorf("%s reported as special content", lt)
		}
	}
}

func TestRegionRectScaling(t *testing.T) {
	grid := GridConfig{Columns: 12, Rows: 8}
	b := Bounds{X: 1, Y: 2, W: 10, H: 4}

	r := RegionRect(b, grid, 960, 540)
	want := Rect{X: 80, Y: 135, W: 800, H: 270}
	if r != want {
		t.Fatalf("RegionRect = %+v, want %+v", r, want)
	}

	// The same bounds at double resolution scale linearly.
	r2 := RegionRect(b, grid, 1920, 1080)
	if r2.X != 2*r.X || r2.W != 2*r.W {
		t.Fatalf("scaling not linear: %+v vs %+v", r, r2)
	}
}

func TestRegionRectClampsOutOfRange(t *testing.T) {
	grid := GridConfig{Columns: 12, Rows: 8}

	r := RegionRect(Bounds{X: -2, Y: -1, W: 20, H: 12}, grid, 960, 540)
	if r.X != 0 || r.Y != 0 {
		t.Errorf("negative origin not clamped: %+v", r)
	}
	if r.X+r.W > 960 || r.Y+r.H > 540 {
		t.Errorf("overflow not clamped: %+v", r)
	}

	r = RegionRect(Bounds{X: 14, Y: 10, W: 2, H: 2}, grid, 960, 540)
	if r.W != 0 || r.H != 0 {
		t.Errorf("fully out-of-range bounds not zeroed: %+v", r)
	}
}

func TestDefaultsCoverEveryType(t *testing.T) {
	all := Defaults()
	if len(all) != len(Types) {
		t.Fatalf("Defaults() has %d layouts, want %d", len(all), len(Types))
	}
	for i, l := range all {
		if l.Type != Types[i] {
			t.Errorf("Defaults()[%d].Type = %s, want %s", i, l.Type, Types[i])
		}
		if len(l.Regions) == 0 {
			t.Errorf("%s: no regions", l.Type)
		}
		if _, ok := l.FindRegion(RoleHeader); !ok && l.Type != TypeQuote {
			t.Errorf("%s: no header region", l.Type)
		}
		if l.Grid.Columns != 12 || l.Grid.Rows != 8 {
			t.Errorf("%s: grid %+v", l.Type, l.Grid)
		}
	}
}

func TestChartDefaultsShareRegions(t *testing.T) {
	bar := Default(TypeBarChart)
	pie := Default(TypePieChart)
	if !reflect.DeepEqual(bar.Regions, pie.Regions) {
		t.Fatal("chart types diverge in default regions")
	}
	if _, ok := bar.FindRegion(RoleMedia); !ok {
		t.Fatal("chart default has no media region")
	}
}

func TestIsEnabledDefaultsTrue(t *testing.T) {
	l := Default(TypeTitle)
	if !l.IsEnabled() {
		t.Fatal("nil Enabled should report enabled")
	}
	f := false
	l.Enabled = &f
	if l.IsEnabled() {
		t.Fatal("explicit false should disable")
	}
}

func TestCloneIsDeep(t *testing.T) {
	l := Default(TypeContent)
	v := true
	l.Enabled = &v

	c := l.Clone()
	c.Regions[0].ID = "mutated"
	*c.Enabled = false

	if l.Regions[0].ID == "mutated" {
		t.Error("clone shares region slice")
	}
	if !*l.Enabled {
		t.Error("clone shares Enabled pointer")
	}
}

func TestFindRegion(t *testing.T) {
	l := Default(TypeMedia)
	r, ok := l.FindRegion(RoleMedia)
	if !ok || r.ID != "media" {
		t.Fatalf("FindRegion(media) = (%+v, %v)", r, ok)
	}
	if _, ok := l.FindRegion(RoleBody); ok {
		t.Fatal("media layout has no body region")
	}
}

func TestRegionsByRoleOrder(t *testing.T) {
	l := Default(TypeTwoColumn)
	bodies := l.RegionsByRole(RoleBody)
	if len(bodies) != 2 || bodies[0].ID != "left" || bodies[1].ID != "right" {
		t.Fatalf("RegionsByRole = %+v", bodies)
	}
}

func TestVariantsDeterministic(t *testing.T) {
	for _, lt := range Types {
		a := Variants(lt)
		b := Variants(lt)
		if len(a) < 3 {
			t.Errorf("%s: only %d variants", lt, len(a))
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: variants not deterministic", lt)
		}
		names := map[string]bool{}
		for _, v := range a {
			if v.Type != lt {
				t.Errorf("%s: variant %q has type %s", lt, v.Name, v.Type)
			}
			if names[v.Name] {
				t.Errorf("%s: duplicate variant name %q", lt, v.Name)
			}
			names[v.Name] = true
		}
	}
}

func TestDisplayName(t *testing.T) {
	if DisplayName(TypeHorizontalBarChart) != "Horizontal Bar Chart" {
		t.Error("wrong display name for horizontalBarChart")
	}
	if DisplayName(Type("custom")) != "custom" {
		t.Error("unknown type should fall back to its raw value")
	}
}

func TestPlaceholderTitle(t *testing.T) {
	if PlaceholderTitle(TypeAgenda) != "Agenda" {
		t.Error("wrong placeholder for agenda")
	}
	if PlaceholderTitle(Type("custom")) != "Slide Title" {
		t.Error("unknown type should fall back to generic title")
	}
}
