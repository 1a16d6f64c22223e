package recovery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Field-level patterns run against the original raw text, not the extracted
// candidate: a corrupted candidate can make whole-structure recovery
// impossible while individual fields are still locatable at the source.
var (
	scalarFieldRXs = map[string]*regexp.Regexp{
		"primaryEmotion":   scalarFieldRX("primaryEmotion"),
		"complexEmotion":   scalarFieldRX("complexEmotion"),
		"responseStrategy": scalarFieldRX("responseStrategy"),
	}

	numericFieldRXs = map[string]*regexp.Regexp{
		"intensity":    numericFieldRX("intensity"),
		"instability":  numericFieldRX("instability"),
		"collapseRisk": numericFieldRX("collapseRisk"),
	}

	// Straight double quotes, then straight single, then typographic.
	// First match wins; all tolerate escapes and span lines.
	userResponseRXs = []*regexp.Regexp{
		regexp.MustCompile(`(?s)"user_facing_response"\s*:\s*"((?:\\.|[^"\\])*)"`),
		regexp.MustCompile(`(?s)'user_facing_response'\s*:\s*'((?:\\.|[^'\\])*)'`),
		regexp.MustCompile(`(?s)"user_facing_response"\s*:\s*“((?:\\.|[^”\\])*)”`),
	}

	coordinatesRX = regexp.MustCompile(`(?i)"coordinates"\s*:\s*["']?\[?\s*([^\]"']+)`)

	listFieldRXs = map[string]*regexp.Regexp{
		"keyIndicators": listFieldRX("keyIndicators"),
		"riskFactors":   listFieldRX("riskFactors"),
	}
)

func scalarFieldRX(name string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)"%s"\s*:\s*["“']([^"”']*)["”']`, name))
}

func numericFieldRX(name string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)"%s"\s*:\s*(-?\d+(?:\.\d+)?)`, name))
}

func listFieldRX(name string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?is)"%s"\s*:\s*\[([^\]]*)\]`, name))
}

// extractPartialFields is the last-resort decoder. It never parses the whole
// structure; each known field is hunted independently, so a truncated or
// terminally mangled payload still yields whatever can be located. Fields not
// found are absent — defaulting is the coercer's job.
func extractPartialFields(raw string) map[string]any {
	out := make(map[string]any)
	if raw == "" {
		return out
	}

	analysis := make(map[string]any)

	for name, rx := range scalarFieldRXs {
		if m := rx.FindStringSubmatch(raw); m != nil {
			analysis[name] = strings.TrimSpace(m[1])
		}
	}

	for name, rx := range numericFieldRXs {
		if m := rx.FindStringSubmatch(raw); m != nil {
			if f, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64); err == nil {
				analysis[name] = f
			}
		}
	}

	if m := coordinatesRX.FindStringSubmatch(raw); m != nil {
		if coords := parseCoordinateRun(m[1]); len(coords) >= 2 {
			analysis["coordinates"] = []any{coords[0], coords[1]}
		}
	}

	for name, rx := range listFieldRXs {
		if m := rx.FindStringSubmatch(raw); m != nil {
			if items := parseListItems(m[1]); len(items) > 0 {
				analysis[name] = items
			}
		}
	}

	if len(analysis) > 0 {
		out["internal_chs_analysis"] = analysis
	}

	for _, rx := range userResponseRXs {
		if m := rx.FindStringSubmatch(raw); m != nil {
			out["user_facing_response"] = strings.TrimSpace(m[1])
			break
		}
	}

	return out
}

// parseCoordinateRun reads a comma-or-whitespace-separated run of numeric
// literals.
func parseCoordinateRun(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	var out []float64
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// parseListItems splits bracket interior on top-level commas, stripping one
// layer of surrounding quotes per element and dropping empties.
func parseListItems(content string) []any {
	var items []any
	for _, elem := range splitTopLevel(content) {
		elem = stripQuotes(strings.TrimSpace(elem))
		if elem != "" {
			items = append(items, elem)
		}
	}
	return items
}

// stripQuotes removes one matching layer of single or double quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
