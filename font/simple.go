package font

// SimpleFont implements the Font capability for single-byte encoded fonts
// using built-in metrics for the standard font families. Character codes
// above 0xFF have no mapping, so glyph lines over a SimpleFont always
// decode one byte per glyph.
type SimpleFont struct {
	name     string
	encoding Encoding
	widths   map[rune]float64
	ascent   float64
}

// NewSimpleFont creates a font with the metrics of the named standard
// font family. Unknown names fall back to Helvetica metrics. The default
// encoding is WinAnsi.
func NewSimpleFont(baseFont string) *SimpleFont {
	widths, ok := standardWidths[baseFont]
	if !ok {
		widths = helveticaWidths
	}
	ascent, ok := standardAscents[baseFont]
	if !ok {
		ascent = standardAscents["Helvetica"]
	}
	return &SimpleFont{
		name:     baseFont,
		encoding: WinAnsiEncoding,
		widths:   widths,
		ascent:   ascent,
	}
}

// NewSimpleFontWithEncoding creates a standard font decoding through the
// given encoding instead of WinAnsi.
func NewSimpleFontWithEncoding(baseFont string, enc Encoding) *SimpleFont {
	f := NewSimpleFont(baseFont)
	f.encoding = enc
	return f
}

// CharacterToUnicode maps a single-byte code through the font's encoding.
// Codes outside 0x00-0xFF have no mapping.
func (f *SimpleFont) CharacterToUnicode(code int) (string, bool) {
	if code < 0 || code > 0xFF {
		return "", false
	}
	return NormalizeUnicode(string(f.encoding.Decode(byte(code)))), true
}

// Width returns the advance width for a single-byte code, in design units.
func (f *SimpleFont) Width(code int) (float64, bool) {
	if code < 0 || code > 0xFF {
		return 0, false
	}
	w, ok := f.widths[f.encoding.Decode(byte(code))]
	return w, ok
}

// Ascent returns the font ascent in design units.
func (f *SimpleFont) Ascent() float64 {
	return f.ascent
}

// Name returns the base font name.
func (f *SimpleFont) Name() string {
	return f.name
}

// SpaceWidthEstimate returns the width of the space character, or 250
// design units if the metrics carry none.
func (f *SimpleFont) SpaceWidthEstimate() float64 {
	if w, ok := f.widths[' ']; ok {
		return w
	}
	return 250
}

// standardWidths holds per-family advance widths in design units.
var standardWidths = map[string]map[rune]float64{
	"Helvetica":         helveticaWidths,
	"Helvetica-Bold":    helveticaBoldWidths,
	"Helvetica-Oblique": helveticaWidths,
	"Times-Roman":       timesWidths,
	"Times-Bold":        timesBoldWidths,
	"Times-Italic":      timesWidths,
	"Courier":           courierWidths,
	"Courier-Bold":      courierWidths,
}

// standardAscents holds per-family ascents in design units.
var standardAscents = map[string]float64{
	"Helvetica":         718,
	"Helvetica-Bold":    718,
	"Helvetica-Oblique": 718,
	"Times-Roman":       683,
	"Times-Bold":        676,
	"Times-Italic":      683,
	"Courier":           629,
	"Courier-Bold":      629,
}

// Helvetica widths for the printable ASCII range.
var helveticaWidths = map[rune]float64{
	' ': 278, '!': 278, '"': 355, '#': 556, '$': 556, '%': 889,
	'&': 667, '\'': 191, '(': 333, ')': 333, '*': 389, '+': 584,
	',': 278, '-': 333, '.': 278, '/': 278,
	'0': 556, '1': 556, '2': 556, '3': 556, '4': 556,
	'5': 556, '6': 556, '7': 556, '8': 556, '9': 556,
	':': 278, ';': 278, '<': 584, '=': 584, '>': 584, '?': 556, '@': 1015,
	'A': 667, 'B': 667, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778,
	'H': 722, 'I': 278, 'J': 500, 'K': 667, 'L': 556, 'M': 833, 'N': 722,
	'O': 778, 'P': 667, 'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722,
	'V': 667, 'W': 944, 'X': 667, 'Y': 667, 'Z': 611,
	'[': 278, '\\': 278, ']': 278, '^': 469, '_': 556, '`': 333,
	'a': 556, 'b': 556, 'c': 500, 'd': 556, 'e': 556, 'f': 278, 'g': 556,
	'h': 556, 'i': 222, 'j': 222, 'k': 500, 'l': 222, 'm': 833, 'n': 556,
	'o': 556, 'p': 556, 'q': 556, 'r': 333, 's': 500, 't': 278, 'u': 556,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 500,
	'{': 334, '|': 260, '}': 334, '~': 584,
}

// Helvetica-Bold widths for letters and space; codes outside the table
// report no width.
var helveticaBoldWidths = map[rune]float64{
	' ': 278,
	'A': 722, 'B': 722, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778,
	'H': 722, 'I': 278, 'J': 556, 'K': 722, 'L': 611, 'M': 833, 'N': 722,
	'O': 778, 'P': 667, 'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722,
	'V': 667, 'W': 944, 'X': 667, 'Y': 667, 'Z': 611,
	'a': 556, 'b': 611, 'c': 556, 'd': 611, 'e': 556, 'f': 333, 'g': 611,
	'h': 611, 'i': 278, 'j': 278, 'k': 556, 'l': 278, 'm': 889, 'n': 611,
	'o': 611, 'p': 611, 'q': 611, 'r': 389, 's': 556, 't': 333, 'u': 611,
	'v': 556, 'w': 778, 'x': 556, 'y': 556, 'z': 500,
}

// Times-Roman widths.
var timesWidths = map[rune]float64{
	' ': 250,
	'A': 722, 'B': 667, 'C': 667, 'D': 722, 'E': 611, 'F': 556, 'G': 722,
	'H': 722, 'I': 333, 'J': 389, 'K': 722, 'L': 611, 'M': 889, 'N': 722,
	'O': 722, 'P': 556, 'Q': 722, 'R': 667, 'S': 556, 'T': 611, 'U': 722,
	'V': 722, 'W': 944, 'X': 722, 'Y': 722, 'Z': 611,
	'a': 444, 'b': 500, 'c': 444, 'd': 500, 'e': 444, 'f': 333, 'g': 500,
	'h': 500, 'i': 278, 'j': 278, 'k': 500, 'l': 278, 'm': 778, 'n': 500,
	'o': 500, 'p': 500, 'q': 500, 'r': 333, 's': 389, 't': 278, 'u': 500,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 444,
}

// Times-Bold widths.
var timesBoldWidths = map[rune]float64{
	' ': 250,
	'A': 722, 'B': 667, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778,
	'H': 778, 'I': 389, 'J': 500, 'K': 778, 'L': 667, 'M': 944, 'N': 722,
	'O': 778, 'P': 611, 'Q': 778, 'R': 722, 'S': 556, 'T': 667, 'U': 722,
	'V': 722, 'W': 1000, 'X': 722, 'Y': 722, 'Z': 667,
	'a': 500, 'b': 556, 'c': 444, 'd': 556, 'e': 444, 'f': 333, 'g': 500,
	'h': 556, 'i': 278, 'j': 333, 'k': 556, 'l': 278, 'm': 833, 'n': 556,
	'o': 500, 'p': 556, 'q': 556, 'r': 444, 's': 389, 't': 333, 'u': 556,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 444,
}

// Courier widths: monospaced, every printable ASCII code is 600.
var courierWidths = func() map[rune]float64 {
	w := make(map[rune]float64, 95)
	for r := rune(32); r <= 126; r++ {
		w[r] = 600
	}
	return w
}()
