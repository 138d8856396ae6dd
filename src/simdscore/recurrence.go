package simdscore

// rowState carries the per-lane values that thread from column j to column
// j+1 within one needle row (spec §4.2). It is reset at the start of every
// row; nothing here survives across rows except through the tableau itself.
type rowState[N Lane] struct {
	upScore     []N
	upGapOpen   []bool
	leftGapOpen []bool
	delimArmed  []bool
}

func newRowState[N Lane](lanes int) rowState[N] {
	s := rowState[N]{
		upScore:     make([]N, lanes),
		upGapOpen:   make([]bool, lanes),
		leftGapOpen: make([]bool, lanes),
		delimArmed:  make([]bool, lanes),
	}
	for k := range s.upGapOpen {
		s.upGapOpen[k] = true
		s.leftGapOpen[k] = true
	}
	return s
}

func gapPenalty[N Lane](open bool) N {
	if open {
		return N(GapOpenPenalty)
	}
	return N(GapExtendPenalty)
}

// evalRow advances one needle row across the width columns of haystackCols.
// prevRow is the previous needle row's cells (nil for the first needle
// character); currRow receives this row's cells. Both are tableau row
// slices of length width*lanes, laid out cell-by-cell.
func evalRow[N Lane](needle NeedleChar, haystackCols []HaystackChar, prevRow, currRow []N, lanes int) {
	st := newRowState[N](lanes)
	width := len(haystackCols)

	for j := 0; j < width; j++ {
		col := haystackCols[j]
		currCell := currRow[j*lanes : j*lanes+lanes]

		var diag, left []N
		if prevRow != nil && j > 0 {
			diag = prevRow[(j-1)*lanes : (j-1)*lanes+lanes]
			left = prevRow[j*lanes : j*lanes+lanes]
		}

		var prevCol *HaystackChar
		if j > 0 {
			prevCol = &haystackCols[j-1]
		}

		for k := 0; k < lanes; k++ {
			var diagVal, leftVal N
			if diag != nil {
				diagVal = diag[k]
			}
			if left != nil {
				leftVal = left[k]
			}

			match := col.Lowercase[k] == needle.Lowercase
			caseMatch := col.IsCapital[k] == needle.IsCapital

			var diagScore N
			if match {
				if j == 0 {
					s := satAdd(diagVal, N(PrefixMatchScore))
					if caseMatch {
						s = satAdd(s, N(MatchingCaseBonus))
					}
					diagScore = s
				} else {
					s := satAdd(diagVal, N(MatchScore))
					if caseMatch {
						s = satAdd(s, N(MatchingCaseBonus))
					}
					if col.IsCapital[k] && !prevCol.IsCapital[k] {
						s = satAdd(s, N(CapitalizationBonus))
					}
					if prevCol.IsDelimiter[k] && st.delimArmed[k] {
						s = satAdd(s, N(DelimiterBonus))
					}
					diagScore = s
				}
			} else {
				diagScore = satSub(diagVal, N(MismatchPenalty))
			}

			upScoreAfter := satSub(st.upScore[k], gapPenalty[N](st.upGapOpen[k]))
			leftScore := satSub(leftVal, gapPenalty[N](st.leftGapOpen[k]))

			maxScore := maxN(diagScore, maxN(upScoreAfter, leftScore))

			diagTie := maxScore == diagScore
			st.upGapOpen[k] = maxScore != upScoreAfter || diagTie
			st.leftGapOpen[k] = maxScore != leftScore || diagTie

			if !col.IsDelimiter[k] {
				st.delimArmed[k] = true
			}

			st.upScore[k] = maxScore
			currCell[k] = maxScore
		}
	}
}
