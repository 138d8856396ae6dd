package simdscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typosOne(t *testing.T, needle, haystack string) uint16 {
	t.Helper()
	width := len(haystack)
	if width < 4 {
		width = 4
	}
	_, tab, _ := Score[uint16]([]byte(needle), [][]byte{[]byte(haystack)}, width)
	out := Typos[uint16](tab)
	return out[0]
}

func TestTyposZero(t *testing.T) {
	for _, needle := range []string{"a", "b", "c", "ac"} {
		assert.Equalf(t, uint16(0), typosOne(t, needle, "abc"), "needle %q", needle)
	}
}

func TestTyposOne(t *testing.T) {
	for _, needle := range []string{"d", "da", "dc", "ad", "adc"} {
		assert.Equalf(t, uint16(1), typosOne(t, needle, "abc"), "needle %q", needle)
	}
}

func TestTyposMultiple(t *testing.T) {
	assert.Equal(t, uint16(2), typosOne(t, "add", "abc"))
	assert.Equal(t, uint16(3), typosOne(t, "ddd", "abc"))
}

func TestTyposAgainstEmptyHaystack(t *testing.T) {
	assert.Equal(t, uint16(3), typosOne(t, "ddd", ""))
	assert.Equal(t, uint16(1), typosOne(t, "d", ""))
}

func TestTyposMonotoneInNeedleLength(t *testing.T) {
	base := typosOne(t, "ab", "xaybz")
	withExtraMismatch := typosOne(t, "abq", "xaybz")
	assert.GreaterOrEqual(t, withExtraMismatch, base)
}
