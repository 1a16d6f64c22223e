package recovery

import (
	"regexp"
	"strings"
)

var (
	bareKeyRX       = regexp.MustCompile(`(^|[^'"\w])([A-Za-z_]\w*)\s*:`)
	singleKeyRX     = regexp.MustCompile(`'([A-Za-z_]\w*)'(\s*:)`)
	singleValueRX   = regexp.MustCompile(`:(\s*)'((?:\\.|[^'\\])*)'`)
	arraySpanRX     = regexp.MustCompile(`(?s)\[\s*(.*?)\s*\]`)
	trailingCommaRX = regexp.MustCompile(`,\s*([}\]])`)
	commaRunRX      = regexp.MustCompile(`,(\s*,)+`)
	numberLitRX     = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][-+]?\d+)?$`)
)

// repairCandidate applies the ordered sequence of textual fixes for the
// malformations models most often produce: bare keys, single quotes, unquoted
// array elements, trailing and duplicated commas. The result is only a better
// candidate; the strict decoder is still the judge.
func repairCandidate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// { key: ... } -> { "key": ... }
	s = bareKeyRX.ReplaceAllString(s, `$1"$2":`)

	// 'key': -> "key":   and   : 'value' -> : "value"
	s = singleKeyRX.ReplaceAllString(s, `"$1"$2`)
	s = singleValueRX.ReplaceAllStringFunc(s, func(m string) string {
		sub := singleValueRX.FindStringSubmatch(m)
		inner := strings.ReplaceAll(sub[2], `"`, `\"`)
		return ":" + sub[1] + `"` + inner + `"`
	})

	s = arraySpanRX.ReplaceAllStringFunc(s, rewriteArraySpan)

	s = trailingCommaRX.ReplaceAllString(s, `$1`)
	s = commaRunRX.ReplaceAllString(s, ",")

	return s
}

// rewriteArraySpan re-tokenizes one bracketed span and reassembles it with
// strictly quoted, comma-separated elements.
func rewriteArraySpan(span string) string {
	sub := arraySpanRX.FindStringSubmatch(span)
	if sub == nil {
		return span
	}

	var fixed []string
	for _, elem := range splitTopLevel(sub[1]) {
		if out, ok := normalizeElement(elem); ok {
			fixed = append(fixed, out)
		}
	}
	return "[" + strings.Join(fixed, ", ") + "]"
}

// splitTopLevel splits array content on commas at bracket depth zero. Commas
// inside quoted sections (either quote style, escapes respected) or nested
// brackets are not separators. Single pass, explicit state.
func splitTopLevel(content string) []string {
	var elems []string
	var cur strings.Builder
	var quote byte
	inQuotes := false
	escaped := false
	depth := 0

	for i := 0; i < len(content); i++ {
		c := content[i]

		if escaped {
			cur.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			cur.WriteByte(c)
			escaped = true
			continue
		}
		if inQuotes {
			cur.WriteByte(c)
			if c == quote {
				inQuotes = false
			}
			continue
		}

		switch c {
		case '"', '\'':
			cur.WriteByte(c)
			inQuotes = true
			quote = c
		case '[', '{':
			depth++
			cur.WriteByte(c)
		case ']', '}':
			depth--
			cur.WriteByte(c)
		case ',':
			if depth == 0 {
				elems = append(elems, strings.TrimSpace(cur.String()))
				cur.Reset()
			} else {
				cur.WriteByte(c)
			}
		default:
			cur.WriteByte(c)
		}
	}

	if last := strings.TrimSpace(cur.String()); last != "" {
		elems = append(elems, last)
	}
	return elems
}

// normalizeElement converts one array element to a strict JSON token. Empty
// elements are dropped.
func normalizeElement(elem string) (string, bool) {
	elem = strings.TrimSpace(elem)
	if elem == "" {
		return "", false
	}

	switch {
	case len(elem) >= 2 && strings.HasPrefix(elem, `"`) && strings.HasSuffix(elem, `"`):
		return elem, true
	case len(elem) >= 2 && strings.HasPrefix(elem, "'") && strings.HasSuffix(elem, "'"):
		inner := strings.ReplaceAll(elem[1:len(elem)-1], `"`, `\"`)
		return `"` + inner + `"`, true
	case numberLitRX.MatchString(elem):
		return elem, true
	}

	switch strings.ToLower(elem) {
	case "true", "false", "null":
		return strings.ToLower(elem), true
	}

	// Unquoted string.
	return `"` + strings.ReplaceAll(elem, `"`, `\"`) + `"`, true
}
