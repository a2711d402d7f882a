package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ligatureExpansions covers the ligatures compatibility normalization
// leaves alone.
var ligatureExpansions = map[rune]string{
	'Æ': "AE",
	'æ': "ae",
	'Œ': "OE",
	'œ': "oe",
	'Ĳ': "IJ",
	'ĳ': "ij",
}

// ExpandLigatures replaces ligature code points with their component
// letters. Runes in the alphabetic presentation forms block (fi, fl, ff
// and friends) go through compatibility normalization; the remaining
// ligatures come from a fixed table. All other runes pass through
// unchanged.
func ExpandLigatures(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if rep, ok := ligatureExpansions[r]; ok {
			sb.WriteString(rep)
			continue
		}
		if r >= 0xFB00 && r <= 0xFB4F {
			sb.WriteString(norm.NFKC.String(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
