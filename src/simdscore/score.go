package simdscore

import "bytes"

// Score runs the affine-gap recurrence of needle against every haystack in
// haystacks (one haystack per lane), returning the best local-alignment
// score per lane, the retained tableau (for an optional later call to
// Typos), and an exact-match flag per lane.
//
// width bounds the haystack column dimension; every haystack must be no
// longer than width (spec §7 — this is a caller precondition, not validated
// here). N chooses the lane cell width: uint8 is enough for short needles,
// uint16 avoids saturation on long ones.
func Score[N Lane](needle []byte, haystacks [][]byte, width int) (scores []uint16, tableau *Tableau[N], exact []bool) {
	lanes := len(haystacks)
	rows := len(needle)

	cols := buildHaystackColumns(haystacks, width)
	tab := newTableau[N](rows, width, lanes)

	var prevRow []N
	for i := 0; i < rows; i++ {
		nc := newNeedleChar(needle[i])
		currRow := tab.rowSlice(i)
		evalRow(nc, cols, prevRow, currRow, lanes)
		prevRow = currRow
	}

	scores = make([]uint16, lanes)
	exact = make([]bool, lanes)

	if rows == 0 {
		return scores, tab, exact
	}

	for k := 0; k < lanes; k++ {
		var best N
		for i := 0; i < rows; i++ {
			for j := 0; j < width; j++ {
				v := tab.Cell(i, j)[k]
				if v > best {
					best = v
				}
			}
		}
		exact[k] = bytes.Equal(haystacks[k], needle)
		s := uint32(best)
		if exact[k] {
			s += ExactMatchBonus
		}
		if s > 0xFFFF {
			s = 0xFFFF
		}
		scores[k] = uint16(s)
	}

	return scores, tab, exact
}
