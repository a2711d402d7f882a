package font

// MapFont is a Font backed by explicit lookup tables. It serves fonts
// whose code-to-unicode and code-to-width mappings were produced
// elsewhere, including composite fonts with 16-bit character codes.
type MapFont struct {
	FontName   string
	Unicode    map[int]string
	Widths     map[int]float64
	FontAscent float64
	SpaceWidth float64
}

// CharacterToUnicode looks up the code in the unicode table.
func (f *MapFont) CharacterToUnicode(code int) (string, bool) {
	s, ok := f.Unicode[code]
	return s, ok
}

// Width looks up the code in the width table.
func (f *MapFont) Width(code int) (float64, bool) {
	w, ok := f.Widths[code]
	return w, ok
}

// Ascent returns the font ascent in design units.
func (f *MapFont) Ascent() float64 {
	return f.FontAscent
}

// Name returns the font name.
func (f *MapFont) Name() string {
	return f.FontName
}

// SpaceWidthEstimate returns the configured space width, or 250 design
// units when none is set.
func (f *MapFont) SpaceWidthEstimate() float64 {
	if f.SpaceWidth > 0 {
		return f.SpaceWidth
	}
	return 250
}
