package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPartialFields_Truncated(t *testing.T) {
	raw := `{"internal_chs_analysis": {"primaryEmotion": "Anger", "intensity": 0.9, "keyIndicators": ["yelled", 'no reason'], "coordinates": [0.0, 0.91`

	got := extractPartialFields(raw)
	analysis, ok := got["internal_chs_analysis"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Anger", analysis["primaryEmotion"])
	assert.Equal(t, 0.9, analysis["intensity"])
	assert.Equal(t, []any{"yelled", "no reason"}, analysis["keyIndicators"])
	// The coordinate run does not need its closing bracket to be located.
	assert.Equal(t, []any{0.0, 0.91}, analysis["coordinates"])
	assert.NotContains(t, analysis, "complexEmotion")
}

func TestExtractPartialFields_SmartQuotes(t *testing.T) {
	raw := `"complexEmotion": “Shame”, "user_facing_response": “I hear you”`

	got := extractPartialFields(raw)
	analysis, ok := got["internal_chs_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Shame", analysis["complexEmotion"])
}

func TestExtractPartialFields_UserResponseQuoteOrder(t *testing.T) {
	raw := `'user_facing_response': 'single quoted text'`

	got := extractPartialFields(raw)
	assert.Equal(t, "single quoted text", got["user_facing_response"])
}

func TestExtractPartialFields_CoordinatesWithoutBrackets(t *testing.T) {
	raw := `"coordinates": 0.42, 0.38 and more text`

	got := extractPartialFields(raw)
	analysis, ok := got["internal_chs_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{0.42, 0.38}, analysis["coordinates"])
}

func TestExtractPartialFields_SingleCoordinateAbsent(t *testing.T) {
	raw := `"coordinates": [0.5]`

	got := extractPartialFields(raw)
	assert.Empty(t, got)
}

func TestExtractPartialFields_NegativeNumbers(t *testing.T) {
	raw := `"instability": -0.2, "collapseRisk": 0.65`

	got := extractPartialFields(raw)
	analysis, ok := got["internal_chs_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, -0.2, analysis["instability"])
	assert.Equal(t, 0.65, analysis["collapseRisk"])
}

func TestExtractPartialFields_NothingLocated(t *testing.T) {
	got := extractPartialFields("no recognizable fields here")
	assert.Empty(t, got)

	got = extractPartialFields("")
	assert.Empty(t, got)
}
