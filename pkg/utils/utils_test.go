package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, Levenshtein("abc", "abc"))
	assert.Equal(t, 3, Levenshtein("", "abc"))
	assert.Equal(t, 1, Levenshtein("kitten", "mitten"))
	assert.Equal(t, 3, Levenshtein("kitten", "sitting"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Same", "same"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.InDelta(t, 0.5, Similarity("ab", "aX"), 0.01)
	assert.Less(t, Similarity("completely different", "nothing alike"), 0.5)
}

func TestDiffWords(t *testing.T) {
	deltas := DiffWords("I feel empty", "I feel numb")

	var removed, added []string
	for _, d := range deltas {
		switch d.Op {
		case -1:
			removed = append(removed, d.Text)
		case +1:
			added = append(added, d.Text)
		}
	}
	assert.Equal(t, []string{"empty"}, removed)
	assert.Equal(t, []string{"numb"}, added)
}

func TestLimitStr(t *testing.T) {
	assert.Equal(t, "short", LimitStr("short", 10))
	assert.Equal(t, "lon...", LimitStr("longer text", 3))
}
