package layout

// Default grid for built-in layouts: 12 columns × 8 rows over the 16:9
// canonical frame.
var defaultGrid = GridConfig{Columns: 12, Rows: 8, Gutter: 0.25}

func region(id string, role Role, x, y, w, h float64) Region {
	return Region{ID: id, Role: role, Bounds: Bounds{X: x, Y: y, W: w, H: h}}
}

// Default returns the built-in layout definition for a type.
func Default(t Type) Layout {
	l := Layout{Name: DisplayName(t), Type: t, Grid: defaultGrid}
	switch t {
	case TypeTitle:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 2.5, 10, 2),
			region("subtitle", RoleBody, 2, 4.5, 8, 1),
			region("footer", RoleFooter, 1, 7, 10, 0.5),
		}
	case TypeSection:
		l.Regions = []Region{
			region("kicker", RoleCaption, 1, 2, 6, 0.5),
			region("title", RoleHeader, 1, 3, 9, 2),
		}
	case TypeContent:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 0.5, 10, 1),
			region("body", RoleBody, 1, 2, 10, 5),
			region("footer", RoleFooter, 1, 7.25, 10, 0.5),
		}
	case TypeTwoColumn:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 0.5, 10, 1),
			region("left", RoleBody, 1, 2, 4.75, 5),
			region("right", RoleBody, 6.25, 2, 4.75, 5),
		}
	case TypeComparison:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 0.5, 10, 1),
			region("left", RoleBody, 1, 2, 4.75, 4.5),
			region("right", RoleBody, 6.25, 2, 4.75, 4.5),
			region("caption", RoleCaption, 1, 6.75, 10, 0.75),
		}
	case TypeTimeline:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 0.5, 10, 1),
			region("track", RoleBody, 1, 2.5, 10, 3.5),
		}
	case TypeQuote:
		l.Regions = []Region{
			region("quote", RoleBody, 2, 2.5, 8, 2.5),
			region("attribution", RoleCaption, 2, 5.25, 8, 0.75),
		}
	case TypeMedia:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 0.5, 10, 1),
			region("media", RoleMedia, 1, 2, 10, 4.75),
			region("caption", RoleCaption, 1, 7, 10, 0.5),
		}
	case TypeAgenda:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 0.5, 10, 1),
			region("items", RoleBody, 1.5, 2, 9, 5),
		}
	case TypeIconography:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 0.5, 10, 1),
			region("grid", RoleBody, 1, 2, 10, 5),
		}
	case TypeClosing:
		l.Regions = []Region{
			region("title", RoleHeader, 1, 3, 10, 1.5),
			region("contact", RoleCaption, 1, 5, 10, 1),
		}
	default:
		if t.IsChart() {
			l.Regions = []Region{
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("chart", RoleMedia, 1, 2, 10, 5),
				region("caption", RoleCaption, 1, 7.25, 10, 0.5),
			}
		} else {
			l.Regions = []Region{
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("body", RoleBody, 1, 2, 10, 5),
			}
		}
	}
	return l
}

// Defaults returns one layout per type, in presentation order.
func Defaults() []Layout {
	out := make([]Layout, len(Types))
	for i, t := range Types {
		out[i] = Default(t)
	}
	return out
}

// DisplayName returns the human-readable name for a layout type.
func DisplayName(t Type) string {
	if n, ok := displayNames[t]; ok {
		return n
	}
	return string(t)
}

var displayNames = map[Type]string{
	TypeTitle:              "Title",
	TypeSection:            "Section Divider",
	TypeContent:            "Content",
	TypeTwoColumn:          "Two Column",
	TypeComparison:         "Comparison",
	TypeTimeline:           "Timeline",
	TypeQuote:              "Quote",
	TypeMedia:              "Media",
	TypeAgenda:             "Agenda",
	TypeIconography:        "Icon Grid",
	TypeClosing:            "Closing",
	TypeBarChart:           "Bar Chart",
	TypeHorizontalBarChart: "Horizontal Bar Chart",
	TypeLineChart:          "Line Chart",
	TypeAreaChart:          "Area Chart",
	TypePieChart:           "Pie Chart",
	TypeDonutChart:         "Donut Chart",
	TypeScatterChart:       "Scatter Chart",
	TypeStackedBarChart:    "Stacked Bar Chart",
}

// PlaceholderTitle returns the canned header string for a layout type.
// Both renderers use the same table so preview and export stay in sync.
func PlaceholderTitle(t Type) string {
	if s, ok := placeholderTitles[t]; ok {
		return s
	}
	return "Slide Title"
}

var placeholderTitles = map[Type]string{
	TypeTitle:              "Presentation Title",
	TypeSection:            "Section Title",
	TypeContent:            "Key Points",
	TypeTwoColumn:          "Two Perspectives",
	TypeComparison:         "Before & After",
	TypeTimeline:           "Our Journey",
	TypeQuote:              "What They Say",
	TypeMedia:              "In Pictures",
	TypeAgenda:             "Agenda",
	TypeIconography:        "Core Values",
	TypeClosing:            "Thank You",
	TypeBarChart:           "Quarterly Results",
	TypeHorizontalBarChart: "Category Breakdown",
	TypeLineChart:          "Growth Over Time",
	TypeAreaChart:          "Cumulative Impact",
	TypePieChart:           "Market Share",
	TypeDonutChart:         "Budget Allocation",
	TypeScatterChart:       "Correlation",
	TypeStackedBarChart:    "Segment Performance",
}
