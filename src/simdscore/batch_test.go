package simdscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBatchMatchesSoloScoring(t *testing.T) {
	needle := []byte("test")
	haystacks := [][]byte{
		[]byte("Uterst"), []byte("atestb"), []byte("xxxxxx"),
		[]byte("te-st"), []byte("Testing"), []byte(""),
	}

	got := ScoreBatch(needle, haystacks, BatchOptions{Lanes: 4, WantTypos: true})
	require.Len(t, got, len(haystacks))

	for i, h := range haystacks {
		solo := ScoreBatch(needle, [][]byte{h}, BatchOptions{Lanes: 1, WantTypos: true})
		assert.Equal(t, solo[0], got[i], "haystack %q", h)
	}
}

func TestScoreBatchSplitDoesNotChangeResults(t *testing.T) {
	needle := []byte("go")
	haystacks := make([][]byte, 5)
	for i := range haystacks {
		haystacks[i] = []byte("golang")
	}

	whole := ScoreBatch(needle, haystacks, BatchOptions{Lanes: 4})
	split := append(
		ScoreBatch(needle, haystacks[:4], BatchOptions{Lanes: 4}),
		ScoreBatch(needle, haystacks[4:], BatchOptions{Lanes: 4})...,
	)

	assert.Equal(t, whole, split)
}

func TestScoreBatchChoosesWiderLanesForLongNeedles(t *testing.T) {
	short := []byte("go")
	assert.True(t, fitsUint8(len(short)))

	long := make([]byte, 30)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, fitsUint8(len(long)))
}

func TestScoreBatchEmptyInput(t *testing.T) {
	got := ScoreBatch([]byte("x"), nil, BatchOptions{})
	assert.Empty(t, got)
}
