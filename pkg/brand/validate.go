package brand

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/deckforge/deckforge/pkg/color"
)

// Severity grades a validation issue.
type Severity string

// Issue severities. Errors block export; warnings do not.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one human-readable validation finding.
type Issue struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Font size floors per role.
const (
	MinTitleSize = 18
	MinBodySize  = 12
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator used across
// the brand package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks a state for structural problems and contrast regressions.
// Findings are returned as a list of readable issues, never a single opaque
// failure. Contrast boundaries: ratio < 3 is an error, 3 ≤ ratio < 4.5 a
// warning, matching the WCAG AA large/normal text thresholds.
func Validate(s State) []Issue {
	var issues []Issue

	if s.ID == "" {
		issues = append(issues, Issue{Field: "id", Message: "template id is required", Severity: SeverityError})
	}
	if s.Name == "" {
		issues = append(issues, Issue{Field: "name", Message: "template name is required", Severity: SeverityError})
	}
	if len(s.Layouts) == 0 {
		issues = append(issues, Issue{Field: "layouts", Message: "template must define at least one layout", Severity: SeverityError})
	}

	issues = append(issues, validateColors(s)...)
	issues = append(issues, validateTypography(s.Typography)...)

	if err := validatorInstance().Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				issues = append(issues, Issue{
					Field:    ve.Namespace(),
					Message:  fmt.Sprintf("field %s fails constraint %q", ve.Field(), ve.Tag()),
					Severity: SeverityError,
				})
			}
		}
	}

	return issues
}

func validateColors(s State) []Issue {
	var issues []Issue
	for _, role := range color.Roles {
		hex := s.Tokens.Colors.Get(role)
		if !hexColorPattern.MatchString(hex) {
			issues = append(issues, Issue{
				Field:    "tokens.colors." + string(role),
				Message:  fmt.Sprintf("color %q is not a valid #RRGGBB value", hex),
				Severity: SeverityError,
			})
		}
	}
	if len(issues) > 0 {
		// Contrast checks need parseable colors.
		return issues
	}

	bg := s.Tokens.Colors.Background
	for _, role := range []color.Role{color.RolePrimary, color.RoleSecondary, color.RoleNeutral} {
		hex := s.Tokens.Colors.Get(role)
		r, err := color.ContrastRatio(hex, bg)
		if err != nil {
			continue
		}
		switch {
		case r < 3.0:
			issues = append(issues, Issue{
				Field:    "tokens.colors." + string(role),
				Message:  fmt.Sprintf("%s fails contrast against background (%.2f:1, minimum 3:1)", role, r),
				Severity: SeverityError,
			})
		case r < 4.5:
			issues = append(issues, Issue{
				Field:    "tokens.colors." + string(role),
				Message:  fmt.Sprintf("%s is below the AA text threshold against background (%.2f:1, target 4.5:1)", role, r),
				Severity: SeverityWarning,
			})
		}
	}
	return issues
}

func validateTypography(t Typography) []Issue {
	var issues []Issue
	if t.TitleSize > 0 && t.TitleSize < MinTitleSize {
		issues = append(issues, Issue{
			Field:    "typography.titleSize",
			Message:  fmt.Sprintf("title size %.0fpt is below the %dpt minimum", t.TitleSize, MinTitleSize),
			Severity: SeverityError,
		})
	}
	if t.BodySize > 0 && t.BodySize < MinBodySize {
		issues = append(issues, Issue{
			Field:    "typography.bodySize",
			Message:  fmt.Sprintf("body size %.0fpt is below the %dpt minimum", t.BodySize, MinBodySize),
			Severity: SeverityError,
		})
	}
	return issues
}

// HasErrors reports whether any issue carries error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
