package font

import "strings"

// replacementGlyphWidth is the design-unit width assigned to glyphs whose
// character code the font cannot map.
const replacementGlyphWidth = 250.0

// Glyph is one rendered character unit: a source character code, the
// unicode text it represents, and its advance width in design units
// (1000 units = 1 em). Glyphs are immutable.
type Glyph struct {
	Code    int
	Unicode string
	Width   float64
}

// GlyphLine is an ordered run of Glyphs sharing one font and one set of
// text-state scalars. Glyph order equals source byte order.
type GlyphLine struct {
	Glyphs []Glyph

	font              Font
	fontSize          float64
	characterSpacing  float64
	wordSpacing       float64
	horizontalScaling float64 // percent, 100 = unscaled
}

// NewGlyphLine decodes raw string bytes into positioned glyphs. Every
// input byte is covered exactly once: at each position the 16-bit
// big-endian code formed by the next two bytes is tried first, then the
// single byte, and finally a replacement glyph is emitted for codes the
// font cannot map. Construction never fails.
func NewGlyphLine(raw []byte, f Font, fontSize, characterSpacing, wordSpacing, horizontalScaling float64) *GlyphLine {
	gl := &GlyphLine{
		font:              f,
		fontSize:          fontSize,
		characterSpacing:  characterSpacing,
		wordSpacing:       wordSpacing,
		horizontalScaling: horizontalScaling,
	}

	i := 0
	for i < len(raw) {
		// Two bytes sometimes make up one character.
		if i+1 < len(raw) {
			code := int(raw[i])<<8 | int(raw[i+1])
			if unicode, ok := f.CharacterToUnicode(code); ok {
				width, _ := f.Width(code) // zero when the font reports none
				gl.Glyphs = append(gl.Glyphs, Glyph{Code: code, Unicode: unicode, Width: width})
				i += 2
				continue
			}
		}

		// Usually it is one byte.
		code := int(raw[i])
		if unicode, ok := f.CharacterToUnicode(code); ok {
			width, _ := f.Width(code)
			gl.Glyphs = append(gl.Glyphs, Glyph{Code: code, Unicode: unicode, Width: width})
			i++
			continue
		}

		// No mapping found by either lookup.
		gl.Glyphs = append(gl.Glyphs, Glyph{Code: code, Unicode: "�", Width: replacementGlyphWidth})
		i++
	}

	return gl
}

// Font returns the font shared by the glyphs of this line.
func (gl *GlyphLine) Font() Font {
	return gl.font
}

// Len returns the number of glyphs in the line.
func (gl *GlyphLine) Len() int {
	return len(gl.Glyphs)
}

// Append adds one glyph to the end of the line and returns the receiver
// for chaining.
func (gl *GlyphLine) Append(g Glyph) *GlyphLine {
	gl.Glyphs = append(gl.Glyphs, g)
	return gl
}

// AppendLine adds every glyph of another line, in order, and returns the
// receiver for chaining.
func (gl *GlyphLine) AppendLine(other *GlyphLine) *GlyphLine {
	gl.Glyphs = append(gl.Glyphs, other.Glyphs...)
	return gl
}

// Split returns one new single-glyph GlyphLine per glyph of the receiver,
// in order. The new lines share the receiver's font and scalars.
func (gl *GlyphLine) Split() []*GlyphLine {
	out := make([]*GlyphLine, 0, len(gl.Glyphs))
	for _, g := range gl.Glyphs {
		single := &GlyphLine{
			Glyphs:            []Glyph{g},
			font:              gl.font,
			fontSize:          gl.fontSize,
			characterSpacing:  gl.characterSpacing,
			wordSpacing:       gl.wordSpacing,
			horizontalScaling: gl.horizontalScaling,
		}
		out = append(out, single)
	}
	return out
}

// WidthInTextSpace calculates the width of the line in text space units.
// Per glyph: width scaled by font size, plus word spacing for space
// glyphs, scaled horizontally, plus character spacing. Character spacing
// applies only between glyphs, so one spacing is subtracted from the sum.
func (gl *GlyphLine) WidthInTextSpace() float64 {
	w := 0.0
	for _, g := range gl.Glyphs {
		glyphWidth := g.Width * gl.fontSize * 0.001

		// Word spacing applies to single-character whitespace glyphs.
		if g.IsSpace() {
			glyphWidth += gl.wordSpacing
		}

		glyphWidth *= gl.horizontalScaling / 100

		glyphWidth += gl.characterSpacing

		w += glyphWidth
	}

	// N glyphs carry only N-1 inter-glyph spacings.
	w -= gl.characterSpacing

	return w
}

// IsSpace reports whether the glyph's unicode text is exactly one
// whitespace character. Word spacing applies only to such glyphs.
func (g Glyph) IsSpace() bool {
	return isSpaceGlyph(g.Unicode)
}

// Text returns the unicode text represented by the glyphs of this line.
func (gl *GlyphLine) Text() string {
	var sb strings.Builder
	for _, g := range gl.Glyphs {
		sb.WriteString(g.Unicode)
	}
	return sb.String()
}

// UsesDescent reports whether the line's text contains a character that
// typically extends below the baseline. This is a heuristic over the
// decoded text, not a font-metrics query.
func (gl *GlyphLine) UsesDescent() bool {
	return strings.ContainsAny(gl.Text(), "ypqfgj")
}

// isSpaceGlyph reports whether a glyph's unicode text is exactly one
// whitespace character.
func isSpaceGlyph(unicode string) bool {
	if len(unicode) != 1 {
		return false
	}
	switch unicode[0] {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}
