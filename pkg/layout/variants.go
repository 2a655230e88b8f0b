package layout

// Variants returns 3–5 named alternative region arrangements for a layout
// type. The generator is pure and deterministic: the same type always yields
// the same variants in the same order. Each variant is a complete
// replacement layout (same type, different grid/regions); selecting one
// replaces the template's layout wholesale, it never merges.
func Variants(t Type) []Layout {
	base := Default(t)
	switch t {
	case TypeTitle:
		return []Layout{
			named(base, "Centered"),
			variant(t, "Left Aligned",
				region("title", RoleHeader, 1, 2, 7, 2),
				region("subtitle", RoleBody, 1, 4, 6, 1),
				region("footer", RoleFooter, 1, 7, 10, 0.5),
			),
			variant(t, "Split Layout",
				region("title", RoleHeader, 1, 2.5, 5.5, 3),
				region("subtitle", RoleBody, 7, 4.5, 4, 1.5),
				region("media", RoleMedia, 7, 1, 4, 3),
			),
			variant(t, "Bottom Heavy",
				region("title", RoleHeader, 1, 4.5, 10, 2),
				region("subtitle", RoleBody, 1, 6.5, 8, 1),
			),
		}
	case TypeSection:
		return []Layout{
			named(base, "Left Aligned"),
			variant(t, "Centered",
				region("kicker", RoleCaption, 3, 2.5, 6, 0.5),
				region("title", RoleHeader, 2, 3.25, 8, 2),
			),
			variant(t, "Numbered",
				region("kicker", RoleCaption, 1, 1, 2, 2),
				region("title", RoleHeader, 3.5, 3, 7.5, 2),
			),
		}
	case TypeTwoColumn:
		return []Layout{
			named(base, "Even Split"),
			variant(t, "Wide Left",
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("left", RoleBody, 1, 2, 6.5, 5),
				region("right", RoleBody, 8, 2, 3, 5),
			),
			variant(t, "Wide Right",
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("left", RoleBody, 1, 2, 3, 5),
				region("right", RoleBody, 4.5, 2, 6.5, 5),
			),
			variant(t, "Stacked",
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("left", RoleBody, 1, 2, 10, 2.25),
				region("right", RoleBody, 1, 4.75, 10, 2.25),
			),
		}
	case TypeQuote:
		return []Layout{
			named(base, "Centered"),
			variant(t, "Offset",
				region("quote", RoleBody, 1, 1.5, 7, 3.5),
				region("attribution", RoleCaption, 6, 5.5, 5, 0.75),
			),
			variant(t, "With Portrait",
				region("media", RoleMedia, 1, 2, 3, 4),
				region("quote", RoleBody, 4.5, 2.25, 6.5, 2.5),
				region("attribution", RoleCaption, 4.5, 5, 6.5, 0.75),
			),
		}
	case TypeMedia:
		return []Layout{
			named(base, "Full Bleed"),
			variant(t, "Framed",
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("media", RoleMedia, 2, 2, 8, 4.5),
				region("caption", RoleCaption, 2, 6.75, 8, 0.5),
			),
			variant(t, "Side Caption",
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("media", RoleMedia, 1, 2, 7, 5),
				region("caption", RoleCaption, 8.5, 2, 2.5, 5),
			),
			variant(t, "Dual Media",
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("media-a", RoleMedia, 1, 2, 4.75, 4.5),
				region("media-b", RoleMedia, 6.25, 2, 4.75, 4.5),
			),
		}
	case TypeTimeline:
		return []Layout{
			named(base, "Horizontal"),
			variant(t, "Vertical",
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("track", RoleBody, 2, 2, 8, 5.5),
			),
			variant(t, "Compact",
				region("title", RoleHeader, 1, 0.5, 6, 1),
				region("track", RoleBody, 1, 3.5, 10, 2),
			),
		}
	case TypeAgenda:
		return []Layout{
			named(base, "List"),
			variant(t, "Two Column",
				region("title", RoleHeader, 1, 0.5, 10, 1),
				region("items", RoleBody, 1, 2, 4.75, 5),
				region("items-b", RoleBody, 6.25, 2, 4.75, 5),
			),
			variant(t, "Side Title",
				region("title", RoleHeader, 1, 1, 3.5, 5),
				region("items", RoleBody, 5, 1, 6, 6),
			),
		}
	default:
		if t.IsChart() {
			return []Layout{
				named(base, "Full Width"),
				variant(t, "With Sidebar",
					region("title", RoleHeader, 1, 0.5, 10, 1),
					region("chart", RoleMedia, 1, 2, 7, 5),
					region("caption", RoleCaption, 8.5, 2, 2.5, 5),
				),
				variant(t, "Compact",
					region("title", RoleHeader, 1, 0.5, 5, 1),
					region("chart", RoleMedia, 3, 2, 6, 4.5),
				),
			}
		}
		return []Layout{
			named(base, "Standard"),
			variant(t, "Centered",
				region("title", RoleHeader, 2, 0.75, 8, 1),
				region("body", RoleBody, 2, 2.25, 8, 4.5),
			),
			variant(t, "Left Rail",
				region("title", RoleHeader, 1, 0.5, 3.5, 2),
				region("body", RoleBody, 5, 0.5, 6, 6.75),
			),
		}
	}
}

func named(l Layout, name string) Layout {
	out := l.Clone()
	out.Name = name
	return out
}

func variant(t Type, name string, regions ...Region) Layout {
	return Layout{Name: name, Type: t, Grid: defaultGrid, Regions: regions}
}
