package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCandidate_PrefersFencedBlock(t *testing.T) {
	text := "Sure! Here it is:\n```JSON\n{\"a\": 1}\n```\nAnd also {\"b\": 2} inline."

	got, ok := extractCandidate(text)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestExtractCandidate_BraceSpan(t *testing.T) {
	text := `Some commentary {"a": {"b": 2}} trailing words`

	got, ok := extractCandidate(text)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 2}}`, got)
}

func TestExtractCandidate_UnterminatedObject(t *testing.T) {
	got, ok := extractCandidate(`prefix {"a": 1, "b"`)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1, "b"`, got)
}

func TestExtractCandidate_NoBraces(t *testing.T) {
	_, ok := extractCandidate("just prose, nothing structured")
	assert.False(t, ok)

	_, ok = extractCandidate("")
	assert.False(t, ok)
}
