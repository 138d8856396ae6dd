package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatchFindsSubsequence(t *testing.T) {
	r := FuzzyMatch(false, "fuzzyfinder", []rune("ff"))
	assert.GreaterOrEqual(t, r.Start, 0)
	assert.Greater(t, r.Score, 0)
}

func TestFuzzyMatchUnicodeCandidate(t *testing.T) {
	r := FuzzyMatch(false, "こんにちは世界", []rune("世界"))
	assert.GreaterOrEqual(t, r.Start, 0)
	assert.Greater(t, r.Score, 0)
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	r := FuzzyMatch(false, "abc", []rune("xyz"))
	assert.Equal(t, -1, r.Start)
}

func TestPrefixAndSuffixMatch(t *testing.T) {
	p := PrefixMatch(false, "hello world", []rune("hello"))
	assert.Equal(t, 0, p.Start)

	s := SuffixMatch(false, "hello world", []rune("world"))
	assert.Equal(t, 6, s.Start)
}
