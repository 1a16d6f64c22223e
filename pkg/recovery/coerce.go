package recovery

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"atlas/pkg/schema"
)

// coerceReply is the mandatory final stage: whatever the earlier stages
// produced (full tree, partial map, or nothing) comes out as a fully populated
// reply. Each field is coerced independently; a malformed value defaults that
// field and nothing else.
func coerceReply(data any) schema.AtlasReply {
	out := schema.DefaultReply()

	m, ok := data.(map[string]any)
	if !ok {
		if data != nil {
			log.Debug("reply root is not an object, using defaults")
		}
		return out
	}

	if a, ok := m["internal_chs_analysis"].(map[string]any); ok {
		out.Analysis = coerceAnalysis(a)
	} else if _, present := m["internal_chs_analysis"]; !present {
		// Models sometimes emit the analysis fields at the top level without
		// the wrapper key; coerce the root object as the analysis itself.
		out.Analysis = coerceAnalysis(m)
	}

	if s, ok := asString(m["user_facing_response"]); ok {
		out.UserFacingResponse = s
	}

	return out
}

func coerceAnalysis(a map[string]any) schema.Analysis {
	out := schema.DefaultAnalysis()

	if s, ok := asString(a["primaryEmotion"]); ok {
		out.PrimaryEmotion = s
	}
	if s, ok := asString(a["complexEmotion"]); ok {
		out.ComplexEmotion = s
	}
	if s, ok := asString(a["responseStrategy"]); ok {
		out.ResponseStrategy = s
	}

	out.Intensity = boundedField(a, "intensity", out.Intensity)
	out.Instability = boundedField(a, "instability", out.Instability)
	out.CollapseRisk = boundedField(a, "collapseRisk", out.CollapseRisk)

	out.Coordinates = asCoordinates(a["coordinates"])
	out.KeyIndicators = asStringList(a["keyIndicators"])
	out.RiskFactors = asStringList(a["riskFactors"])

	return out
}

// boundedField coerces a[name] to a real number clamped into [0, 1].
func boundedField(a map[string]any, name string, def float64) float64 {
	raw, present := a[name]
	f, ok := asFloat(raw)
	if !ok {
		if present && raw != nil {
			log.Debug("numeric field defaulted", "field", name)
		}
		return def
	}
	return clamp01(f)
}

func clamp01(f float64) float64 {
	if f < 0.0 {
		return 0.0
	}
	if f > 1.0 {
		return 1.0
	}
	return f
}

// asString converts a scalar to its textual form. Absence and non-scalar
// shapes report false.
func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// asFloat converts numeric types directly and trimmed text by parsing.
// Non-finite results are rejected.
func asFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// asCoordinates requires a sequence of at least two elements, each coerced to
// a real number (malformed elements default to 0.0). Anything shorter, or any
// non-sequence, yields the full default pair — one recovered axis alone is
// not meaningful.
func asCoordinates(v any) []float64 {
	seq := asSequence(v)
	if len(seq) < 2 {
		if v != nil {
			log.Debug("coordinates defaulted", "reason", "fewer than two elements")
		}
		return []float64{0.0, 0.0}
	}

	x, ok := asFloat(seq[0])
	if !ok {
		x = 0.0
	}
	y, ok := asFloat(seq[1])
	if !ok {
		y = 0.0
	}
	return []float64{x, y}
}

// asStringList coerces a value into a string sequence. Sequences pass through
// element-wise; text decodes as a bracketed literal when possible, with a
// plain comma-split fallback; any other scalar becomes a one-element sequence.
func asStringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []any:
		return stringifyElements(t)
	case []string:
		out := make([]string, 0, len(t))
		return append(out, t...)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return []string{}
		}
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			if decoded, err := strictDecode(s); err == nil {
				if seq, ok := decoded.([]any); ok {
					return stringifyElements(seq)
				}
			}
			s = strings.TrimSpace(s[1 : len(s)-1])
			if s == "" {
				return []string{}
			}
		}
		return splitCommaList(s)
	default:
		if s, ok := asString(v); ok && s != "" {
			return []string{s}
		}
		return []string{}
	}
}

func stringifyElements(seq []any) []string {
	out := make([]string, 0, len(seq))
	for _, e := range seq {
		if s, ok := asString(e); ok {
			out = append(out, s)
		}
	}
	return out
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = stripQuotes(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// asSequence widens the accepted coordinate shapes: real sequences pass
// through, the textual forms re-use the list coercion.
func asSequence(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out
	case string:
		items := asStringList(t)
		out := make([]any, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}
