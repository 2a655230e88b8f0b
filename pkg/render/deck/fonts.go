package deck

import "strings"

// fontFallbacks maps requested font families onto fonts that ship with
// PowerPoint on both platforms. Lookup is case-insensitive; unknown fonts
// fall back to Arial and surface a substitution warning in the result.
var fontFallbacks = map[string]string{
	"arial":           "Arial",
	"helvetica":       "Arial",
	"helvetica neue":  "Arial",
	"avenir next":     "Calibri",
	"sf pro display":  "Segoe UI",
	"sf pro text":     "Segoe UI",
	"georgia":         "Georgia",
	"times new roman": "Times New Roman",
	"calibri":         "Calibri",
	"segoe ui":        "Segoe UI",
	"verdana":         "Verdana",
	"tahoma":          "Tahoma",
	"courier new":     "Courier New",
}

// resolveFont maps a requested family to a deliverable one. The second
// return reports whether the result is a substitution rather than the
// requested font.
func resolveFont(family string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(family))
	if mapped, ok := fontFallbacks[key]; ok {
		return mapped, !strings.EqualFold(mapped, family)
	}
	return "Arial", true
}
