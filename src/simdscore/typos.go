package simdscore

// Typos walks the retained tableau backward from the best-scoring cell of
// the final needle row and returns, per lane, the number of edit operations
// (mismatches and needle-character skips) charged against that lane's best
// alignment. Haystack-character skips are free: this is local alignment, so
// the caller picked the best subrange of the haystack already.
//
// tableau.Rows must be at least 1 — an empty needle has no final row to
// search (spec §7, caller precondition).
func Typos[N Lane](tableau *Tableau[N]) []uint16 {
	lastRow := tableau.Rows - 1
	out := make([]uint16, tableau.Lanes)

	for k := 0; k < tableau.Lanes; k++ {
		// Find the start column: greatest score in the final needle row,
		// ties broken toward the lowest column index.
		bestCol := 0
		best := tableau.Cell(lastRow, 0)[k]
		for j := 1; j < tableau.Width; j++ {
			v := tableau.Cell(lastRow, j)[k]
			if v > best {
				best = v
				bestCol = j
			}
		}

		col := bestCol // haystack column
		row := lastRow // needle row
		score := best
		var typos uint16

		for row > 0 {
			if col == 0 {
				typos++
				row--
				continue
			}

			diag := tableau.Cell(row-1, col-1)[k]
			left := tableau.Cell(row-1, col)[k]
			up := tableau.Cell(row, col-1)[k]

			switch {
			case diag >= left && diag >= up:
				if diag >= score {
					typos++
				}
				row--
				col--
				score = diag
			case left >= up:
				typos++
				row--
				score = left
			default:
				col--
				score = up
			}
		}

		if score == 0 {
			typos++
		}

		out[k] = typos
	}

	return out
}
