package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairCandidate_QuotesBareKeys(t *testing.T) {
	got := repairCandidate(`{intensity: 0.5, responseStrategy: "Grounding"}`)

	data, err := strictDecode(got)
	require.NoError(t, err)
	m := data.(map[string]any)
	assert.Contains(t, m, "intensity")
	assert.Contains(t, m, "responseStrategy")
}

func TestRepairCandidate_ConvertsSingleQuotedValues(t *testing.T) {
	got := repairCandidate(`{'complexEmotion': 'Fear and "dread"'}`)

	data, err := strictDecode(got)
	require.NoError(t, err)
	assert.Equal(t, `Fear and "dread"`, data.(map[string]any)["complexEmotion"])
}

func TestRepairCandidate_RemovesTrailingComma(t *testing.T) {
	got := repairCandidate(`{"a": 1,}`)
	_, err := strictDecode(got)
	assert.NoError(t, err)
}

func TestRepairCandidate_CollapsesCommaRuns(t *testing.T) {
	got := repairCandidate(`{"keyIndicators": ["a",, , "b"]}`)

	data, err := strictDecode(got)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, data.(map[string]any)["keyIndicators"])
}

func TestRepairCandidate_LeavesValidJSONDecodable(t *testing.T) {
	valid := `{"primaryEmotion": "Envy", "coordinates": [0.31, 0.35], "keyIndicators": ["a, b", "c"]}`

	data, err := strictDecode(repairCandidate(valid))
	require.NoError(t, err)
	m := data.(map[string]any)
	assert.Equal(t, "Envy", m["primaryEmotion"])
	assert.Equal(t, []any{"a, b", "c"}, m["keyIndicators"])
}

func TestSplitTopLevel_RespectsQuotesAndDepth(t *testing.T) {
	elems := splitTopLevel(`"a, b", 'c', {"k": [1, 2]}, plain`)

	assert.Equal(t, []string{`"a, b"`, `'c'`, `{"k": [1, 2]}`, "plain"}, elems)
}

func TestSplitTopLevel_RespectsEscapes(t *testing.T) {
	elems := splitTopLevel(`"say \"hi, there\"", next`)

	assert.Equal(t, []string{`"say \"hi, there\""`, "next"}, elems)
}

func TestNormalizeElement(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"quoted"`, `"quoted"`},
		{`'single'`, `"single"`},
		{`burnout`, `"burnout"`},
		{`-0.25`, `-0.25`},
		{`1e-3`, `1e-3`},
		{`TRUE`, `true`},
		{`null`, `null`},
		{`say "hi"`, `"say \"hi\""`},
	}
	for _, tc := range cases {
		got, ok := normalizeElement(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, ok := normalizeElement("   ")
	assert.False(t, ok, "blank elements are dropped")
}
