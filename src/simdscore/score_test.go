package simdscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const charScore = MatchScore + MatchingCaseBonus

func scoreOne(t *testing.T, needle, haystack string) uint16 {
	t.Helper()
	width := len(haystack)
	if width == 0 {
		width = 1
	}
	scores, _, _ := Score[uint16]([]byte(needle), [][]byte{[]byte(haystack)}, width)
	require.Len(t, scores, 1)
	return scores[0]
}

func TestScoreScenarios(t *testing.T) {
	cases := []struct {
		name     string
		needle   string
		haystack string
		want     uint16
	}{
		{"char match, no bonus", "b", "abc", charScore},
		{"prefix bonus", "a", "abc", charScore + PrefixBonus},
		{"exact match", "abc", "abc", 3*charScore + ExactMatchBonus + PrefixBonus},
		{"delimiter bonus", "b", "a-b", charScore + DelimiterBonus},
		{"capital boundary", "D", "forDist", charScore + CapitalizationBonus},
		{"no capital boundary after capital", "D", "foRDist", charScore},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, scoreOne(t, c.needle, c.haystack))
		})
	}
}

func TestScoreGapPenalties(t *testing.T) {
	withGap := scoreOne(t, "test", "Uterst")
	assert.Equal(t, uint16(4*charScore-GapOpenPenalty), withGap)

	withLongerGap := scoreOne(t, "test", "Uterrst")
	assert.Equal(t, uint16(4*charScore-GapOpenPenalty-GapExtendPenalty), withLongerGap)
}

func TestScorePrefersConsecutiveOverSpreadAcronym(t *testing.T) {
	consecutive := scoreOne(t, "swap", "swap(test)")
	spread := scoreOne(t, "swap", "iter_swap(test)")
	assert.Greater(t, consecutive, spread)
}

func TestScoreNonNegative(t *testing.T) {
	needles := []string{"a", "abc", "xyz", "test"}
	haystacks := []string{"", "a", "abcdef", "zzz", "Uterst"}
	for _, n := range needles {
		for _, h := range haystacks {
			width := len(h)
			if width == 0 {
				width = 1
			}
			scores, tab, _ := Score[uint16]([]byte(n), [][]byte{[]byte(h)}, width)
			assert.GreaterOrEqual(t, int(scores[0]), 0)
			for i := 0; i < tab.Rows; i++ {
				for j := 0; j < tab.Width; j++ {
					assert.GreaterOrEqual(t, tab.Cell(i, j)[0], uint16(0))
				}
			}
		}
	}
}

func TestScoreLaneIndependence(t *testing.T) {
	needle := []byte("test")
	haystacks := [][]byte{[]byte("Uterst"), []byte("atestb"), []byte("xxxxxx"), []byte("te-st")}
	width := 0
	for _, h := range haystacks {
		if len(h) > width {
			width = len(h)
		}
	}

	batched, _, _ := Score[uint16](needle, haystacks, width)

	for i, h := range haystacks {
		solo, _, _ := Score[uint16](needle, [][]byte{h}, width)
		assert.Equal(t, solo[0], batched[i], "lane %d should match a width-1 run", i)
	}
}

func TestScoreExactMatchBonus(t *testing.T) {
	s := scoreOne(t, "abc", "abc")
	sPrime := scoreOne(t, "abc", "abcd")
	assert.Equal(t, uint16(ExactMatchBonus), s-sPrime)
}

func TestScorePrefixBonusIsolated(t *testing.T) {
	atStart := scoreOne(t, "a", "ab")
	notAtStart := scoreOne(t, "a", "bab")
	assert.Equal(t, uint16(PrefixBonus), atStart-notAtStart)
}

func TestScoreWidensTo16BitWithoutSaturating(t *testing.T) {
	needle := make([]byte, 40)
	for i := range needle {
		needle[i] = 'a'
	}
	haystack := needle
	scores, _, exact := Score[uint16](needle, [][]byte{haystack}, len(haystack))
	assert.True(t, exact[0])
	assert.Greater(t, scores[0], uint16(255), "uint16 lanes must not clamp at the uint8 ceiling")
}
