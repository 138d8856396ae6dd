package util

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Chars is a thin view over one candidate string. The teacher's own Chars
// type (src/util in github.com/junegunn/fzf) caches a rune slice so its
// rune-indexed scanner can work in either text direction; this package's
// only scanner is simdscore, which is byte-indexed and ASCII-folding, so
// Chars holds only the raw bytes handed to simdscore; display metadata
// (DisplayWidth) is computed on each call, not cached.
type Chars struct {
	raw []byte
}

// NewChars wraps s for scoring and display.
func NewChars(s string) Chars {
	return Chars{raw: []byte(s)}
}

// Bytes returns the raw candidate bytes, exactly as simdscore expects them.
func (c Chars) Bytes() []byte { return c.raw }

// IsASCII reports whether every byte in the candidate is ASCII. simdscore's
// case folding and delimiter classification are ASCII-only (spec §1,
// Non-goals); candidates that fail this check still score correctly (their
// non-ASCII bytes simply never match or classify as delimiters), but the
// pipeline uses this to route non-ASCII candidates to the Unicode-aware
// matcher in src/algo instead of a simdscore batch.
func (c Chars) IsASCII() bool {
	for _, b := range c.raw {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// DisplayWidth returns the terminal column width of the candidate, using
// grapheme-cluster segmentation so combining marks and wide CJK characters
// are measured the way a real terminal renders them.
func (c Chars) DisplayWidth() int {
	width := 0
	gr := uniseg.NewGraphemes(string(c.raw))
	for gr.Next() {
		width += runewidth.StringWidth(gr.Str())
	}
	return width
}

func (c Chars) String() string { return string(c.raw) }
