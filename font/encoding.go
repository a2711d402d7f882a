package font

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Encoding maps single bytes to unicode runes. Encodings are read-only
// and safe to share.
type Encoding interface {
	// Name returns the encoding name.
	Name() string

	// Decode maps one byte to a rune.
	Decode(b byte) rune

	// DecodeString maps a byte sequence to a string, one rune per byte.
	DecodeString(data []byte) string
}

// charmapEncoding adapts a character map from x/text.
type charmapEncoding struct {
	name string
	cm   *charmap.Charmap
}

func (e *charmapEncoding) Name() string {
	return e.name
}

func (e *charmapEncoding) Decode(b byte) rune {
	return e.cm.DecodeByte(b)
}

func (e *charmapEncoding) DecodeString(data []byte) string {
	return decodeAll(e, data)
}

// tableEncoding decodes through a differences table, falling back to
// Latin-1 for bytes the table does not cover.
type tableEncoding struct {
	name  string
	table map[byte]rune
}

func (e *tableEncoding) Name() string {
	return e.name
}

func (e *tableEncoding) Decode(b byte) rune {
	if r, ok := e.table[b]; ok {
		return r
	}
	return rune(b)
}

func (e *tableEncoding) DecodeString(data []byte) string {
	return decodeAll(e, data)
}

func decodeAll(e Encoding, data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		sb.WriteRune(e.Decode(b))
	}
	return sb.String()
}

// Built-in encodings.
var (
	// WinAnsiEncoding is Windows code page 1252.
	WinAnsiEncoding Encoding = &charmapEncoding{name: "WinAnsiEncoding", cm: charmap.Windows1252}

	// MacRomanEncoding is the Mac OS Roman character set.
	MacRomanEncoding Encoding = &charmapEncoding{name: "MacRomanEncoding", cm: charmap.Macintosh}

	// PDFDocEncoding is the document-level default text encoding:
	// Latin-1 with typographic characters in the 0x80-0xA0 range.
	PDFDocEncoding Encoding = &tableEncoding{name: "PDFDocEncoding", table: pdfDocDifferences}

	// StandardEncodingTable is Adobe StandardEncoding.
	StandardEncodingTable Encoding = &tableEncoding{name: "StandardEncoding", table: standardDifferences}
)

var pdfDocDifferences = map[byte]rune{
	0x80: '•', // bullet
	0x81: '†', // dagger
	0x82: '‡', // daggerdbl
	0x83: '…', // ellipsis
	0x84: '—', // emdash
	0x85: '–', // endash
	0x86: 'ƒ', // florin
	0x87: '⁄', // fraction
	0x88: '‹', // guilsinglleft
	0x89: '›', // guilsinglright
	0x8A: '−', // minus
	0x8B: '‰', // perthousand
	0x8C: '„', // quotedblbase
	0x8D: '“', // quotedblleft
	0x8E: '”', // quotedblright
	0x8F: '‘', // quoteleft
	0x90: '’', // quoteright
	0x91: '‚', // quotesingbase
	0x92: '™', // trademark
	0x93: 'ﬁ', // fi
	0x94: 'ﬂ', // fl
	0x95: 'Ł', // Lslash
	0x96: 'Œ', // OE
	0x97: 'Š', // Scaron
	0x98: 'Ÿ', // Ydieresis
	0x99: 'Ž', // Zcaron
	0x9A: 'ı', // dotlessi
	0x9B: 'ł', // lslash
	0x9C: 'œ', // oe
	0x9D: 'š', // scaron
	0x9E: 'ž', // zcaron
	0xA0: '€', // Euro
}

var standardDifferences = map[byte]rune{
	0x27: '’', // quoteright
	0x60: '‘', // quoteleft
	0xA4: '⁄', // fraction
	0xA6: 'ƒ', // florin
	0xA8: '¤', // currency
	0xAA: '“', // quotedblleft
	0xAB: '«', // guillemotleft
	0xAC: '‹', // guilsinglleft
	0xAD: '›', // guilsinglright
	0xAE: 'ﬁ', // fi
	0xAF: 'ﬂ', // fl
	0xB1: '–', // endash
	0xB4: '·', // periodcentered
	0xB7: '•', // bullet
	0xB8: '‚', // quotesingbase
	0xB9: '„', // quotedblbase
	0xBA: '”', // quotedblright
	0xBC: '…', // ellipsis
	0xBD: '‰', // perthousand
	0xD0: '—', // emdash
	0xE1: 'Æ', // AE
	0xE9: 'Œ', // OE
	0xF1: 'æ', // ae
	0xF9: 'œ', // oe
}

// customEncoding overlays a differences map on a base encoding.
type customEncoding struct {
	base        Encoding
	differences map[byte]rune
}

func (e *customEncoding) Name() string {
	return e.base.Name() + "+custom"
}

func (e *customEncoding) Decode(b byte) rune {
	if r, ok := e.differences[b]; ok {
		return r
	}
	return e.base.Decode(b)
}

func (e *customEncoding) DecodeString(data []byte) string {
	return decodeAll(e, data)
}

// NewCustomEncoding builds an encoding that decodes the given bytes to
// the given runes and falls through to base for everything else.
func NewCustomEncoding(base Encoding, differences map[byte]rune) Encoding {
	d := make(map[byte]rune, len(differences))
	for b, r := range differences {
		d[b] = r
	}
	return &customEncoding{base: base, differences: d}
}

// NewCustomEncodingFromGlyphs builds a custom encoding from a byte to
// glyph-name differences map, as found in encoding dictionaries. Unknown
// glyph names are ignored.
func NewCustomEncodingFromGlyphs(base Encoding, differences map[byte]string) Encoding {
	d := make(map[byte]rune, len(differences))
	for b, name := range differences {
		if r, ok := glyphNameToUnicode[name]; ok {
			d[b] = r
		}
	}
	return &customEncoding{base: base, differences: d}
}

// GetEncoding returns the built-in encoding with the given name,
// defaulting to WinAnsi for unknown names.
func GetEncoding(name string) Encoding {
	switch name {
	case "MacRomanEncoding":
		return MacRomanEncoding
	case "PDFDocEncoding":
		return PDFDocEncoding
	case "StandardEncoding":
		return StandardEncodingTable
	default:
		return WinAnsiEncoding
	}
}

// DecodeWithEncoding decodes data using the named built-in encoding.
func DecodeWithEncoding(data []byte, encodingName string) string {
	return GetEncoding(encodingName).DecodeString(data)
}

// NormalizeUnicode normalizes a decoded string to NFC so that equal text
// always compares equal regardless of how the font composed it.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// IsValidUTF8 reports whether s is valid UTF-8.
func IsValidUTF8(s string) bool {
	return utf8.ValidString(s)
}

// glyphNameToUnicode maps Adobe glyph names to runes. This is the subset
// of the Adobe Glyph List that shows up in encoding differences arrays in
// practice.
var glyphNameToUnicode = map[string]rune{
	"space":          ' ',
	"exclam":         '!',
	"quotedbl":       '"',
	"numbersign":     '#',
	"dollar":         '$',
	"percent":        '%',
	"ampersand":      '&',
	"quotesingle":    '\'',
	"parenleft":      '(',
	"parenright":     ')',
	"asterisk":       '*',
	"plus":           '+',
	"comma":          ',',
	"hyphen":         '-',
	"period":         '.',
	"slash":          '/',
	"zero":           '0',
	"one":            '1',
	"two":            '2',
	"three":          '3',
	"four":           '4',
	"five":           '5',
	"six":            '6',
	"seven":          '7',
	"eight":          '8',
	"nine":           '9',
	"colon":          ':',
	"semicolon":      ';',
	"less":           '<',
	"equal":          '=',
	"greater":        '>',
	"question":       '?',
	"at":             '@',
	"A":              'A',
	"B":              'B',
	"C":              'C',
	"D":              'D',
	"E":              'E',
	"F":              'F',
	"G":              'G',
	"H":              'H',
	"I":              'I',
	"J":              'J',
	"K":              'K',
	"L":              'L',
	"M":              'M',
	"N":              'N',
	"O":              'O',
	"P":              'P',
	"Q":              'Q',
	"R":              'R',
	"S":              'S',
	"T":              'T',
	"U":              'U',
	"V":              'V',
	"W":              'W',
	"X":              'X',
	"Y":              'Y',
	"Z":              'Z',
	"bracketleft":    '[',
	"backslash":      '\\',
	"bracketright":   ']',
	"underscore":     '_',
	"grave":          '`',
	"a":              'a',
	"b":              'b',
	"c":              'c',
	"d":              'd',
	"e":              'e',
	"f":              'f',
	"g":              'g',
	"h":              'h',
	"i":              'i',
	"j":              'j',
	"k":              'k',
	"l":              'l',
	"m":              'm',
	"n":              'n',
	"o":              'o',
	"p":              'p',
	"q":              'q',
	"r":              'r',
	"s":              's',
	"t":              't',
	"u":              'u',
	"v":              'v',
	"w":              'w',
	"x":              'x',
	"y":              'y',
	"z":              'z',
	"braceleft":      '{',
	"bar":            '|',
	"braceright":     '}',
	"asciitilde":     '~',
	"Euro":           '€',
	"bullet":         '•',
	"dagger":         '†',
	"daggerdbl":      '‡',
	"ellipsis":       '…',
	"emdash":         '—',
	"endash":         '–',
	"florin":         'ƒ',
	"fraction":       '⁄',
	"perthousand":    '‰',
	"quoteleft":      '‘',
	"quoteright":     '’',
	"quotedblleft":   '“',
	"quotedblright":  '”',
	"quotesingbase":  '‚',
	"quotedblbase":   '„',
	"guilsinglleft":  '‹',
	"guilsinglright": '›',
	"trademark":      '™',
	"copyright":      '©',
	"registered":     '®',
	"degree":         '°',
	"cent":           '¢',
	"sterling":       '£',
	"yen":            '¥',
	"section":        '§',
	"paragraph":      '¶',
	"periodcentered": '·',
	"exclamdown":     '¡',
	"questiondown":   '¿',
	"guillemotleft":  '«',
	"guillemotright": '»',
	"Agrave":         'À',
	"Aacute":         'Á',
	"Ccedilla":       'Ç',
	"Eacute":         'É',
	"Ntilde":         'Ñ',
	"Odieresis":      'Ö',
	"Udieresis":      'Ü',
	"agrave":         'à',
	"aacute":         'á',
	"ccedilla":       'ç',
	"egrave":         'è',
	"eacute":         'é',
	"ecircumflex":    'ê',
	"edieresis":      'ë',
	"idieresis":      'ï',
	"ntilde":         'ñ',
	"odieresis":      'ö',
	"udieresis":      'ü',
	"AE":             'Æ',
	"ae":             'æ',
	"OE":             'Œ',
	"oe":             'œ',
	"germandbls":     'ß',
	"fi":             'ﬁ',
	"fl":             'ﬂ',
	"dotlessi":       'ı',
	"Lslash":         'Ł',
	"lslash":         'ł',
	"Scaron":         'Š',
	"scaron":         'š',
	"Ydieresis":      'Ÿ',
	"Zcaron":         'Ž',
	"zcaron":         'ž',
	"minus":          '−',
}
