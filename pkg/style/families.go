package style

// Compile maps a style family to its full parameter record. The switch is
// closed over every known family with a fallback default branch, so the
// function is total and never fails on an unrecognized value.
func Compile(f Family) Params {
	switch f {
	case FamilyClean:
		return Params{
			ElementRoundness:   0.5,
			BorderThickness:    1,
			LineThickness:      1.5,
			AccentThickness:    2,
			ShadowOffset:       0,
			UseGradients:       false,
			ChartStyle:         ChartFilled,
			DecorativeElements: false,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  1,
			AccentOpacity:      0.9,
		}
	case FamilyEditorial:
		return Params{
			ElementRoundness:   0,
			BorderThickness:    0.5,
			LineThickness:      1,
			AccentThickness:    3,
			ShadowOffset:       0,
			UseGradients:       false,
			ChartStyle:         ChartOutlined,
			DecorativeElements: true,
			LabelStyle:         LabelSmall,
			DataPointStyle:     PointNone,
			SpacingMultiplier:  1.15,
			AccentOpacity:      1,
		}
	case FamilyBold:
		return Params{
			ElementRoundness:   0.25,
			BorderThickness:    3,
			LineThickness:      3,
			AccentThickness:    5,
			ShadowOffset:       0,
			UseGradients:       false,
			ChartStyle:         ChartFilled,
			DecorativeElements: true,
			LabelStyle:         LabelUppercase,
			DataPointStyle:     PointSquare,
			SpacingMultiplier:  0.9,
			AccentOpacity:      1,
		}
	case FamilyMinimal:
		return Params{
			ElementRoundness:   0,
			BorderThickness:    0.5,
			LineThickness:      0.75,
			AccentThickness:    1,
			ShadowOffset:       0,
			UseGradients:       false,
			ChartStyle:         ChartMinimal,
			DecorativeElements: false,
			LabelStyle:         LabelSmall,
			DataPointStyle:     PointNone,
			SpacingMultiplier:  1.3,
			AccentOpacity:      0.7,
		}
	case FamilyCorporate:
		return Params{
			ElementRoundness:   0.35,
			BorderThickness:    1,
			LineThickness:      1.5,
			AccentThickness:    2.5,
			ShadowOffset:       2,
			UseGradients:       false,
			ChartStyle:         ChartStacked,
			DecorativeElements: false,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  1,
			AccentOpacity:      0.85,
		}
	case FamilyPlayful:
		return Params{
			ElementRoundness:   2,
			BorderThickness:    2,
			LineThickness:      2.5,
			AccentThickness:    3,
			ShadowOffset:       3,
			UseGradients:       true,
			ChartStyle:         ChartGradient,
			DecorativeElements: true,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  1.05,
			AccentOpacity:      1,
		}
	case FamilyElegant:
		return Params{
			ElementRoundness:   0.15,
			BorderThickness:    0.5,
			LineThickness:      0.75,
			AccentThickness:    1.5,
			ShadowOffset:       0,
			UseGradients:       true,
			ChartStyle:         ChartOutlined,
			DecorativeElements: true,
			LabelStyle:         LabelSmall,
			DataPointStyle:     PointDiamond,
			SpacingMultiplier:  1.25,
			AccentOpacity:      0.8,
		}
	case FamilyBrutalist:
		return Params{
			ElementRoundness:   0,
			BorderThickness:    4,
			LineThickness:      3,
			AccentThickness:    6,
			ShadowOffset:       6,
			UseGradients:       false,
			ChartStyle:         ChartFilled,
			DecorativeElements: false,
			LabelStyle:         LabelUppercase,
			DataPointStyle:     PointSquare,
			SpacingMultiplier:  0.85,
			AccentOpacity:      1,
		}
	case FamilyNeubrutalist:
		return Params{
			ElementRoundness:   0.75,
			BorderThickness:    3,
			LineThickness:      2.5,
			AccentThickness:    4,
			ShadowOffset:       5,
			UseGradients:       false,
			ChartStyle:         ChartFilled,
			DecorativeElements: true,
			LabelStyle:         LabelUppercase,
			DataPointStyle:     PointSquare,
			SpacingMultiplier:  0.95,
			AccentOpacity:      1,
		}
	case FamilyBento:
		return Params{
			ElementRoundness:   1.5,
			BorderThickness:    0,
			LineThickness:      1.5,
			AccentThickness:    2,
			ShadowOffset:       1,
			UseGradients:       false,
			ChartStyle:         ChartFilled,
			DecorativeElements: false,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  0.9,
			AccentOpacity:      0.9,
		}
	case FamilyGlass:
		return Params{
			ElementRoundness:   1.25,
			BorderThickness:    1,
			LineThickness:      1.5,
			AccentThickness:    2,
			ShadowOffset:       4,
			UseGradients:       true,
			ChartStyle:         ChartGradient,
			DecorativeElements: false,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  1.1,
			AccentOpacity:      0.6,
		}
	case FamilyRetro:
		return Params{
			ElementRoundness:   0.5,
			BorderThickness:    2,
			LineThickness:      2,
			AccentThickness:    3,
			ShadowOffset:       4,
			UseGradients:       false,
			ChartStyle:         ChartFilled,
			DecorativeElements: true,
			LabelStyle:         LabelUppercase,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  1,
			AccentOpacity:      0.95,
		}
	case FamilyOrganic:
		return Params{
			ElementRoundness:   2.5,
			BorderThickness:    1.5,
			LineThickness:      2,
			AccentThickness:    2.5,
			ShadowOffset:       2,
			UseGradients:       true,
			ChartStyle:         ChartGradient,
			DecorativeElements: true,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  1.1,
			AccentOpacity:      0.85,
		}
	case FamilyGeometric:
		return Params{
			ElementRoundness:   0,
			BorderThickness:    1.5,
			LineThickness:      1.5,
			AccentThickness:    3,
			ShadowOffset:       0,
			UseGradients:       false,
			ChartStyle:         ChartFilled,
			DecorativeElements: true,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointDiamond,
			SpacingMultiplier:  1,
			AccentOpacity:      1,
		}
	case FamilyLuxe:
		return Params{
			ElementRoundness:   0.25,
			BorderThickness:    0.75,
			LineThickness:      1,
			AccentThickness:    2,
			ShadowOffset:       3,
			UseGradients:       true,
			ChartStyle:         ChartGradient,
			DecorativeElements: true,
			LabelStyle:         LabelSmall,
			DataPointStyle:     PointDiamond,
			SpacingMultiplier:  1.2,
			AccentOpacity:      0.9,
		}
	case FamilyTech:
		return Params{
			ElementRoundness:   0.25,
			BorderThickness:    1,
			LineThickness:      1.25,
			AccentThickness:    2,
			ShadowOffset:       0,
			UseGradients:       false,
			ChartStyle:         ChartOutlined,
			DecorativeElements: false,
			LabelStyle:         LabelUppercase,
			DataPointStyle:     PointSquare,
			SpacingMultiplier:  0.95,
			AccentOpacity:      0.9,
		}
	case FamilyZine:
		return Params{
			ElementRoundness:   0.1,
			BorderThickness:    2.5,
			LineThickness:      2,
			AccentThickness:    4,
			ShadowOffset:       2,
			UseGradients:       false,
			ChartStyle:         ChartOutlined,
			DecorativeElements: true,
			LabelStyle:         LabelUppercase,
			DataPointStyle:     PointNone,
			SpacingMultiplier:  0.85,
			AccentOpacity:      1,
		}
	case FamilySwiss:
		return Params{
			ElementRoundness:   0,
			BorderThickness:    1,
			LineThickness:      1.25,
			AccentThickness:    2.5,
			ShadowOffset:       0,
			UseGradients:       false,
			ChartStyle:         ChartMinimal,
			DecorativeElements: false,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointNone,
			SpacingMultiplier:  1.2,
			AccentOpacity:      1,
		}
	case FamilyMemphis:
		return Params{
			ElementRoundness:   1,
			BorderThickness:    2.5,
			LineThickness:      2.5,
			AccentThickness:    3.5,
			ShadowOffset:       4,
			UseGradients:       true,
			ChartStyle:         ChartFilled,
			DecorativeElements: true,
			LabelStyle:         LabelUppercase,
			DataPointStyle:     PointSquare,
			SpacingMultiplier:  0.95,
			AccentOpacity:      1,
		}
	case FamilySoft:
		return Params{
			ElementRoundness:   1.75,
			BorderThickness:    0.5,
			LineThickness:      1,
			AccentThickness:    1.5,
			ShadowOffset:       2,
			UseGradients:       true,
			ChartStyle:         ChartGradient,
			DecorativeElements: false,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  1.15,
			AccentOpacity:      0.75,
		}
	default:
		// Unreachable with a closed enum, but the compiler must not fail
		// on an unrecognized value.
		return Params{
			ElementRoundness:   0.5,
			BorderThickness:    1,
			LineThickness:      1.5,
			AccentThickness:    2,
			ChartStyle:         ChartFilled,
			LabelStyle:         LabelNormal,
			DataPointStyle:     PointCircle,
			SpacingMultiplier:  1,
			AccentOpacity:      0.9,
		}
	}
}
