package main

import (
	"runtime"
	"sort"
	"sync"

	"github.com/sumika-fz/simdfz/src/algo"
	"github.com/sumika-fz/simdfz/src/simdscore"
	"github.com/sumika-fz/simdfz/src/util"
)

// Ranked is one candidate's position in the result list: its original
// index (for stable tiebreaks), display text, score and typo count.
type Ranked struct {
	Index int
	Text  string
	Score uint16
	Typos uint16
}

// rankCandidates scores every candidate against every needle (one needle
// per migemo expansion, or a single needle with no expansion), keeping the
// best score per candidate, and returns them sorted best-first.
//
// Work is split into disjoint batches across a worker pool sized to
// GOMAXPROCS (spec §5): each worker owns its batch and calls
// simdscore.ScoreBatch independently, never sharing a tableau.
func rankCandidates(needles []string, candidates []string, wantTypos bool, batchOpts simdscore.BatchOptions) []Ranked {
	n := len(candidates)
	results := make([]Ranked, n)
	for i := range results {
		results[i] = Ranked{Index: i, Text: candidates[i]}
	}
	if n == 0 || len(needles) == 0 {
		return results
	}

	batchOpts.WantTypos = wantTypos

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			scoreRange(needles, candidates, results, start, end, batchOpts)
		}(start, end)
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Typos != results[j].Typos {
			return results[i].Typos < results[j].Typos
		}
		return results[i].Index < results[j].Index
	})
	return results
}

// scoreRange scores candidates[start:end] against every needle, writing the
// best per-candidate result into results[start:end]. ASCII candidates go
// through the batched simdscore path; anything else falls back to the
// Unicode-aware single-pair matcher in src/algo.
func scoreRange(needles []string, candidates []string, results []Ranked, start, end int, batchOpts simdscore.BatchOptions) {
	var asciiIdx []int
	var asciiHaystacks [][]byte
	for i := start; i < end; i++ {
		c := util.NewChars(candidates[i])
		if c.IsASCII() {
			asciiIdx = append(asciiIdx, i)
			asciiHaystacks = append(asciiHaystacks, c.Bytes())
		} else {
			results[i].Score, results[i].Typos = bestUnicodeScore(needles, candidates[i])
		}
	}

	if len(asciiHaystacks) == 0 {
		return
	}

	best := make([]simdscore.Match, len(asciiHaystacks))
	for _, needle := range needles {
		matches := simdscore.ScoreBatch([]byte(needle), asciiHaystacks, batchOpts)
		for i, m := range matches {
			if m.Score > best[i].Score {
				best[i] = m
			}
		}
	}
	for i, idx := range asciiIdx {
		results[idx].Score = best[i].Score
		results[idx].Typos = best[i].Typos
	}
}

func bestUnicodeScore(needles []string, candidate string) (uint16, uint16) {
	var bestScore int
	for _, needle := range needles {
		r := algo.FuzzyMatch(false, candidate, []rune(needle))
		if r.Score > bestScore {
			bestScore = r.Score
		}
	}
	if bestScore < 0 {
		bestScore = 0
	}
	if bestScore > 0xFFFF {
		bestScore = 0xFFFF
	}
	// The Unicode fallback path does not retrace a typo count: its DP
	// tableau is discarded after the best cell is found. Absence of a typo
	// count is surfaced as 0, same as an exact, typo-free match would be.
	return uint16(bestScore), 0
}
