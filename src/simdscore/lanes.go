package simdscore

import "golang.org/x/sys/cpu"

// Lane is the scalar cell type carried by each SIMD lane. 8-bit lanes are
// enough for short needles; 16-bit lanes avoid saturation on long ones (see
// spec §3). All arithmetic over Lane must be saturating: callers of satAdd
// and satSub never see wraparound.
type Lane interface {
	~uint8 | ~uint16
}

func maxVal[N Lane]() N {
	var z N
	return ^z
}

// satAdd returns a+b, clamped to the type's maximum instead of wrapping.
func satAdd[N Lane](a, b N) N {
	s := a + b
	if s < a {
		return maxVal[N]()
	}
	return s
}

// satSub returns a-b, clamped to zero instead of wrapping.
func satSub[N Lane](a, b N) N {
	if b > a {
		return 0
	}
	return a - b
}

func maxN[N Lane](a, b N) N {
	if a > b {
		return a
	}
	return b
}

// Capability describes the lane widths and counts a build can execute. This
// package has no target-specific assembly: every (N, L) pair below runs
// through the same scalar-per-lane loop, so Capability is informational
// only (used by the batch builder to pick a default L), never a
// prerequisite for correctness.
type Capability struct {
	// MaxLanes8 is the widest supported lane count for 8-bit cells.
	MaxLanes8 int
	// MaxLanes16 is the widest supported lane count for 16-bit cells.
	MaxLanes16 int
}

// Capabilities reports the lane widths this build supports. The recurrence
// itself is a portable scalar-per-lane loop on every platform, so the
// widths below are a batching hint, not a correctness requirement: a wider
// report just means ScoreBatch groups more haystacks per Score call.
// cpu.X86.HasAVX2/cpu.ARM64.HasASIMD reflect the widest lane grouping a real
// vectorized backend for this cell width would likely target on this
// machine; narrower hardware gets a narrower (still correct) default.
func Capabilities() Capability {
	wide := cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
	if wide {
		return Capability{MaxLanes8: 64, MaxLanes16: 32}
	}
	return Capability{MaxLanes8: 32, MaxLanes16: 16}
}
