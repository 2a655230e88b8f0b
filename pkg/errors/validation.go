package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches a 6-digit hex color with a leading '#'.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a 6-digit "#RRGGBB" color string.
// This is the one place the core rejects malformed color data rather
// than coercing it.
func ValidateHexColor(hex string) error {
	if hex == "" {
		return New(ErrCodeInvalidColorFormat, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(hex) {
		return New(ErrCodeInvalidColorFormat, "invalid hex color: %q (expected #RRGGBB)", hex)
	}
	return nil
}

// ValidateTemplateName validates a template display name.
// Rejects names that are empty, oversized, or contain control characters.
func ValidateTemplateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "template name cannot be empty")
	}
	if len(name) > 120 {
		return New(ErrCodeInvalidInput, "template name too long (max 120 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "template name contains invalid control characters")
		}
	}
	return nil
}

// ValidateFontFamily validates a font family name for safety.
// Family names are looked up in the fallback table verbatim, so only a
// conservative character set is accepted.
func ValidateFontFamily(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "font family cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "font family too long (max 64 characters)")
	}
	if strings.ContainsAny(name, "<>&\"'\x00") {
		return New(ErrCodeInvalidInput, "font family contains invalid characters")
	}
	return nil
}
