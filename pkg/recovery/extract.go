package recovery

import (
	"regexp"
	"strings"
)

var (
	fencedRX = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*?\\})\\s*```")
)

// extractCandidate isolates the substring most likely to hold the serialized
// reply. A fenced ```json block wins; otherwise the span from the first '{'
// to the last '}' is taken as-is. No balance checking happens here — the
// strict decoder decides validity.
func extractCandidate(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	if m := fencedRX.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end > start {
		return strings.TrimSpace(text[start : end+1]), true
	}
	return strings.TrimSpace(text[start:]), true
}
