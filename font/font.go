package font

// Font is the narrow capability the glyph layer needs from a font. It is
// consumed, never owned: implementations must be safe for concurrent
// read-only use across multiple pipelines.
type Font interface {
	// CharacterToUnicode maps a character code to its unicode text.
	// The second return value is false when the font has no mapping for
	// the code.
	CharacterToUnicode(code int) (string, bool)

	// Width returns the advance width of a character code in design
	// units (1000 units = 1 em). The second return value is false when
	// the font reports no width for the code.
	Width(code int) (float64, bool)

	// Ascent returns the font ascent in design units.
	Ascent() float64

	// Name returns the font (family) name.
	Name() string

	// SpaceWidthEstimate returns an estimate for the width of one space
	// character, in design units.
	SpaceWidthEstimate() float64
}
