// Package algo is the repository's Unicode-aware fallback matcher.
//
// src/simdscore is ASCII-only by design (spec: case folding beyond ASCII
// A-Z is out of scope for the batched scorer). Real candidate sets are not
// always ASCII, so cmd/simdfz routes any candidate containing non-ASCII
// bytes through this single-pair matcher instead of a simdscore batch. The
// DP here is the teacher's own Smith-Waterman variant
// (github.com/junegunn/fzf/src/algo), generalized from rune comparisons to
// the same match/gap/bonus shape as src/simdscore so the two matchers rank
// candidates on comparable terms, and trimmed of the Slab-reuse and migemo
// plumbing that depended on files outside this package's retrieval.
package algo

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sumika-fz/simdfz/src/util"
)

// Result mirrors simdscore.Match for a single, Unicode-aware comparison.
type Result struct {
	Start, End int
	Score      int
}

const (
	legacyScoreMatch        = 16
	legacyScoreGapStart     = -3
	legacyScoreGapExtension = -1

	legacyBonusBoundary = legacyScoreMatch / 2
	legacyBonusNonWord  = legacyScoreMatch / 2

	legacyBonusCamel123 = legacyBonusBoundary + legacyScoreGapExtension

	legacyBonusConsecutive = -(legacyScoreGapStart + legacyScoreGapExtension)

	legacyBonusFirstCharMultiplier = 2
)

var (
	bonusBoundaryWhite     int16 = legacyBonusBoundary + 2
	bonusBoundaryDelimiter int16 = legacyBonusBoundary + 1

	delimiterChars = "/,:;|"
	whiteChars     = " \t\n\v\f\r\x85\xA0"

	asciiCharClasses [unicode.MaxASCII + 1]charClass
	bonusMatrix      [charNumber + 1][charNumber + 1]int16
)

type charClass int

const (
	charWhite charClass = iota
	charNonWord
	charDelimiter
	charLower
	charUpper
	charLetter
	charNumber
)

func init() {
	for i := 0; i <= unicode.MaxASCII; i++ {
		char := rune(i)
		c := charNonWord
		switch {
		case char >= 'a' && char <= 'z':
			c = charLower
		case char >= 'A' && char <= 'Z':
			c = charUpper
		case char >= '0' && char <= '9':
			c = charNumber
		case strings.ContainsRune(whiteChars, char):
			c = charWhite
		case strings.ContainsRune(delimiterChars, char):
			c = charDelimiter
		}
		asciiCharClasses[i] = c
	}
	for i := 0; i <= int(charNumber); i++ {
		for j := 0; j <= int(charNumber); j++ {
			bonusMatrix[i][j] = bonusFor(charClass(i), charClass(j))
		}
	}
}

func charClassOfNonAscii(char rune) charClass {
	switch {
	case unicode.IsLower(char):
		return charLower
	case unicode.IsUpper(char):
		return charUpper
	case unicode.IsNumber(char):
		return charNumber
	case unicode.IsLetter(char):
		return charLetter
	case unicode.IsSpace(char):
		return charWhite
	case strings.ContainsRune(delimiterChars, char):
		return charDelimiter
	}
	return charNonWord
}

func charClassOf(char rune) charClass {
	if char <= unicode.MaxASCII {
		return asciiCharClasses[char]
	}
	return charClassOfNonAscii(char)
}

func bonusFor(prevClass, class charClass) int16 {
	if class > charNonWord {
		switch prevClass {
		case charWhite:
			return bonusBoundaryWhite
		case charDelimiter:
			return bonusBoundaryDelimiter
		case charNonWord:
			return legacyBonusBoundary
		}
	}
	if prevClass == charLower && class == charUpper ||
		prevClass != charNumber && class == charNumber {
		return legacyBonusCamel123
	}
	switch class {
	case charNonWord, charDelimiter:
		return legacyBonusNonWord
	case charWhite:
		return bonusBoundaryWhite
	}
	return 0
}

// normalizeRune is a simplification of the teacher's accent-folding table:
// that table (src/algo/normalize.go in the upstream repo) was not part of
// this package's retrieved source, so accented Latin and Katakana runes are
// left as-is rather than folded to their plain equivalents. Every other
// behavior below is unaffected.
func normalizeRune(r rune) rune { return r }

func foldRune(r rune, caseSensitive bool) rune {
	if !caseSensitive && unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}
	return r
}

func isAsciiRunes(runes []rune) bool {
	for _, r := range runes {
		if r >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// asciiFuzzyIndex is an early-rejection check run before the O(nm) DP: walk
// the pattern through the text byte-by-byte and return -1 as soon as any
// pattern rune cannot occur in order. Otherwise it returns 0; the search
// window is not narrowed and the DP still scans the whole text. Non-ASCII
// patterns skip the check.
func asciiFuzzyIndex(text []byte, pattern []rune, caseSensitive bool) int {
	if !isAsciiRunes(pattern) {
		return 0
	}
	idx := 0
	for _, r := range pattern {
		b := byte(r)
		found := bytes.IndexByte(text[idx:], b)
		if !caseSensitive && b >= 'a' && b <= 'z' {
			if u := bytes.IndexByte(text[idx:], b-32); u >= 0 && (found < 0 || u < found) {
				found = u
			}
		}
		if found < 0 {
			return -1
		}
		idx += found + 1
	}
	return 0
}

// FuzzyMatch runs the Unicode-aware Smith-Waterman scan of pattern against
// text and returns the best-scoring alignment. Gaps are taken only in text:
// unlike simdscore's recurrence, there is no transition that skips a pattern
// rune.
func FuzzyMatch(caseSensitive bool, text string, pattern []rune) Result {
	if len(pattern) == 0 {
		return Result{0, 0, 0}
	}
	runes := []rune(text)
	n := len(runes)
	m := len(pattern)
	if m > n {
		return Result{-1, -1, 0}
	}

	if asciiFuzzyIndex([]byte(text), pattern, caseSensitive) < 0 {
		return Result{-1, -1, 0}
	}

	folded := make([]rune, n)
	classes := make([]charClass, n)
	for i, r := range runes {
		folded[i] = foldRune(normalizeRune(r), caseSensitive)
		classes[i] = charClassOf(r)
	}

	H := make([][]int16, m)
	C := make([][]int16, m)
	for i := range H {
		H[i] = make([]int16, n)
		C[i] = make([]int16, n)
	}

	best, bestPos := int16(0), 0
	for i, pr := range pattern {
		pr = foldRune(pr, caseSensitive)
		inGap := false
		for j := 0; j < n; j++ {
			var diag, left int16
			if i > 0 && j > 0 {
				diag = H[i-1][j-1]
			}
			if j > 0 {
				left = H[i][j-1]
			}

			var s1, s2, consecutive int16
			if inGap {
				s2 = left + legacyScoreGapExtension
			} else {
				s2 = left + legacyScoreGapStart
			}

			if folded[j] == pr {
				bonus := bonusBoundaryWhite
				if j > 0 {
					bonus = bonusMatrix[classes[j-1]][classes[j]]
				}
				if i > 0 && j > 0 {
					consecutive = C[i-1][j-1] + 1
				} else if i == 0 {
					consecutive = 1
				}
				s1 = diag + legacyScoreMatch
				mult := int16(1)
				if i == 0 {
					mult = legacyBonusFirstCharMultiplier
				}
				if consecutive > 1 {
					bonus = util.Max16(bonus, legacyBonusConsecutive)
				}
				s1 += bonus * mult
			}
			C[i][j] = consecutive
			inGap = s1 < s2
			score := util.Max16(util.Max16(s1, s2), 0)
			H[i][j] = score
			if i == m-1 && score > best {
				best, bestPos = score, j
			}
		}
	}

	if best == 0 {
		return Result{-1, -1, 0}
	}
	start := bestPos - m + 1
	if start < 0 {
		start = 0
	}
	return Result{start, bestPos + 1, int(best)}
}

// PrefixMatch reports whether text starts with pattern (after case folding),
// unchanged in spirit from the teacher's PrefixMatch.
func PrefixMatch(caseSensitive bool, text string, pattern []rune) Result {
	runes := []rune(text)
	trimmed := 0
	if len(pattern) == 0 || !unicode.IsSpace(pattern[0]) {
		for trimmed < len(runes) && unicode.IsSpace(runes[trimmed]) {
			trimmed++
		}
	}
	if len(runes)-trimmed < len(pattern) {
		return Result{-1, -1, 0}
	}
	for i, pr := range pattern {
		r := foldRune(runes[trimmed+i], caseSensitive)
		if r != foldRune(pr, caseSensitive) {
			return Result{-1, -1, 0}
		}
	}
	return Result{trimmed, trimmed + len(pattern), legacyScoreMatch * len(pattern)}
}

// SuffixMatch reports whether text ends with pattern (after case folding).
func SuffixMatch(caseSensitive bool, text string, pattern []rune) Result {
	runes := []rune(text)
	trimmed := len(runes)
	for trimmed > 0 && unicode.IsSpace(runes[trimmed-1]) {
		trimmed--
	}
	diff := trimmed - len(pattern)
	if diff < 0 {
		return Result{-1, -1, 0}
	}
	for i, pr := range pattern {
		r := foldRune(runes[diff+i], caseSensitive)
		if r != foldRune(pr, caseSensitive) {
			return Result{-1, -1, 0}
		}
	}
	return Result{diff, trimmed, legacyScoreMatch * len(pattern)}
}
