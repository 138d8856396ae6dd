package simdscore

// NeedleChar holds the needle byte for one row of the recurrence, broadcast
// conceptually to every lane. Because every lane sees the same needle byte,
// the broadcast is represented as a scalar rather than a length-L vector —
// the value is identical, so there is nothing for a real SIMD backend to
// gain by materializing L copies of it, and the scalar form is what the
// fallback loop actually touches per lane.
type NeedleChar struct {
	Lowercase byte
	IsCapital bool
}

// newNeedleChar lowercases b (ASCII only) and records whether the source
// byte was a capital letter.
func newNeedleChar(b byte) NeedleChar {
	return NeedleChar{Lowercase: toLowerASCII(b), IsCapital: isUpperASCII(b)}
}

// HaystackChar holds one haystack column: L lanes of lowercased byte, capital
// mask and delimiter mask, one lane per haystack in the batch.
type HaystackChar struct {
	Lowercase   []byte
	IsCapital   []bool
	IsDelimiter []bool
}

func newHaystackChar(l int) HaystackChar {
	return HaystackChar{
		Lowercase:   make([]byte, l),
		IsCapital:   make([]bool, l),
		IsDelimiter: make([]bool, l),
	}
}

// buildHaystackColumns gathers the W HaystackChar columns for a batch of L
// haystacks, once per Score call (see spec §3, "Lifecycle"). Lane k at
// column j reads haystacks[k][j] if j is within bounds, else the padding
// value 0, which is simultaneously non-matching, non-capital and
// non-delimiter (0 is not in the delimiter set).
func buildHaystackColumns(haystacks [][]byte, width int) []HaystackChar {
	lanes := len(haystacks)
	cols := make([]HaystackChar, width)
	for j := 0; j < width; j++ {
		col := newHaystackChar(lanes)
		for k, h := range haystacks {
			var b byte
			if j < len(h) {
				b = h[j]
			}
			col.Lowercase[k] = toLowerASCII(b)
			col.IsCapital[k] = isUpperASCII(b)
			col.IsDelimiter[k] = b != 0 && isDelimiterByte(toLowerASCII(b))
		}
		cols[j] = col
	}
	return cols
}
