package style

// CompileMood maps a mood preset to its full parameter record. Same total
// function contract as Compile: closed switch, fallback default, never fails.
func CompileMood(m Mood) MoodParams {
	switch m {
	case MoodCalm:
		return MoodParams{
			ColorIntensity:         0.85,
			AccentEmphasis:         0.8,
			ElementScale:           1,
			ShadowIntensity:        0.5,
			SpacingModifier:        1.15,
			SaturationShift:        -0.1,
			BackgroundTint:         "#FAFBFC",
			CornerRadiusMultiplier: 1.1,
			StrokeDasharray:        "",
		}
	case MoodEnergetic:
		return MoodParams{
			ColorIntensity:         1.15,
			AccentEmphasis:         1.25,
			ElementScale:           1.08,
			ShadowIntensity:        1.2,
			SpacingModifier:        0.9,
			SaturationShift:        0.15,
			BackgroundTint:         "#FFFBF5",
			CornerRadiusMultiplier: 1,
			StrokeDasharray:        "",
		}
	case MoodPremium:
		return MoodParams{
			ColorIntensity:         0.95,
			AccentEmphasis:         1,
			ElementScale:           0.96,
			ShadowIntensity:        0.8,
			SpacingModifier:        1.25,
			SaturationShift:        -0.05,
			BackgroundTint:         "#FCFBF9",
			CornerRadiusMultiplier: 0.85,
			StrokeDasharray:        "",
		}
	case MoodTechnical:
		return MoodParams{
			ColorIntensity:         1,
			AccentEmphasis:         0.9,
			ElementScale:           0.94,
			ShadowIntensity:        0.4,
			SpacingModifier:        1,
			SaturationShift:        -0.15,
			BackgroundTint:         "#F8FAFB",
			CornerRadiusMultiplier: 0.6,
			StrokeDasharray:        "4 2",
		}
	default:
		return MoodParams{
			ColorIntensity:         1,
			AccentEmphasis:         1,
			ElementScale:           1,
			ShadowIntensity:        1,
			SpacingModifier:        1,
			SaturationShift:        0,
			BackgroundTint:         "#FFFFFF",
			CornerRadiusMultiplier: 1,
			StrokeDasharray:        "",
		}
	}
}
