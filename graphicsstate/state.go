package graphicsstate

import (
	"fmt"

	"github.com/pagetext/pagetext/font"
	"github.com/pagetext/pagetext/model"
)

// TextState holds the parameters that govern glyph placement and sizing.
// HorizontalScaling is a percentage, 100 meaning unscaled.
type TextState struct {
	Font              font.Font
	FontSize          float64
	CharSpacing       float64
	WordSpacing       float64
	HorizontalScaling float64
	Leading           float64
	Rise              float64
	TextMatrix        model.Matrix
	TextLineMatrix    model.Matrix
}

// State is a snapshot of the interpreter state relevant to text
// rendering. The zero value is not usable; call New.
type State struct {
	CTM       model.Matrix
	Text      TextState
	FillColor [3]float64
}

// New returns a state with identity matrices, default horizontal scaling
// and black fill.
func New() *State {
	return &State{
		CTM: model.Identity(),
		Text: TextState{
			HorizontalScaling: 100,
			TextMatrix:        model.Identity(),
			TextLineMatrix:    model.Identity(),
		},
	}
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// BeginText resets the text matrix and the text line matrix to identity.
func (s *State) BeginText() {
	s.Text.TextMatrix = model.Identity()
	s.Text.TextLineMatrix = model.Identity()
}

// SetFont sets the active font and size.
func (s *State) SetFont(f font.Font, size float64) {
	s.Text.Font = f
	s.Text.FontSize = size
}

// SetCharSpacing sets the character spacing in unscaled text units.
func (s *State) SetCharSpacing(spacing float64) {
	s.Text.CharSpacing = spacing
}

// SetWordSpacing sets the word spacing in unscaled text units.
func (s *State) SetWordSpacing(spacing float64) {
	s.Text.WordSpacing = spacing
}

// SetHorizontalScaling sets the horizontal scaling percentage.
func (s *State) SetHorizontalScaling(scale float64) {
	s.Text.HorizontalScaling = scale
}

// SetLeading sets the text leading in unscaled text units.
func (s *State) SetLeading(leading float64) {
	s.Text.Leading = leading
}

// SetTextRise sets the baseline rise in unscaled text units.
func (s *State) SetTextRise(rise float64) {
	s.Text.Rise = rise
}

// SetTextMatrix sets both the text matrix and the text line matrix.
func (s *State) SetTextMatrix(m model.Matrix) {
	s.Text.TextMatrix = m
	s.Text.TextLineMatrix = m
}

// TranslateText moves to the start of the next line, offset from the
// start of the current line by (tx, ty).
func (s *State) TranslateText(tx, ty float64) {
	s.Text.TextLineMatrix = model.Translate(tx, ty).Multiply(s.Text.TextLineMatrix)
	s.Text.TextMatrix = s.Text.TextLineMatrix
}

// TranslateTextSetLeading moves like TranslateText and additionally sets
// the leading to -ty.
func (s *State) TranslateTextSetLeading(tx, ty float64) {
	s.Text.Leading = -ty
	s.TranslateText(tx, ty)
}

// NextLine moves to the start of the next line using the current leading.
func (s *State) NextLine() {
	s.TranslateText(0, -s.Text.Leading)
}

// SetFillColor sets the fill color as RGB components in [0, 1].
func (s *State) SetFillColor(r, g, b float64) {
	s.FillColor = [3]float64{r, g, b}
}

// TextToPage returns the composed transform from text space to page
// space at the current state.
func (s *State) TextToPage() model.Matrix {
	return s.Text.TextMatrix.Multiply(s.CTM)
}

// ShowText decodes raw string bytes with the active font and advances
// the text matrix by the width of the decoded glyphs. It returns the
// decoded glyph line. Showing text with no font set is an error.
func (s *State) ShowText(raw []byte) (*font.GlyphLine, error) {
	if s.Text.Font == nil {
		return nil, fmt.Errorf("show text: no font set")
	}

	gl := font.NewGlyphLine(raw, s.Text.Font, s.Text.FontSize,
		s.Text.CharSpacing, s.Text.WordSpacing, s.Text.HorizontalScaling)

	s.Text.TextMatrix = model.Translate(gl.WidthInTextSpace(), 0).Multiply(s.Text.TextMatrix)
	return gl, nil
}
