package text

import (
	"fmt"

	"github.com/pagetext/pagetext/font"
	"github.com/pagetext/pagetext/graphicsstate"
	"github.com/pagetext/pagetext/model"
)

// TextRenderEvent is one text-showing instruction bound to the graphics
// state it executed under. Its baseline is already expressed in page
// space; callers never see text-space coordinates once an event exists.
type TextRenderEvent struct {
	glyphLine *font.GlyphLine
	transform model.Matrix
	baseline  model.LineSegment

	fontFamily        string
	fontAscent        float64
	fontSize          float64
	fontColor         [3]float64
	characterSpacing  float64
	wordSpacing       float64
	horizontalScaling float64
	rise              float64
	spaceCharWidth    float64
}

// NewTextRenderEvent decodes raw string bytes under the given state and
// places the resulting glyph line on the page. The baseline runs from
// (0, rise) to (width, rise) in text space and is transformed through
// the state's composed text-to-page matrix. The state is read, not
// advanced; pair with ShowText to move the text matrix.
func NewTextRenderEvent(gs *graphicsstate.State, raw []byte) (*TextRenderEvent, error) {
	f := gs.Text.Font
	if f == nil {
		return nil, fmt.Errorf("text render event: no font set")
	}

	gl := font.NewGlyphLine(raw, f, gs.Text.FontSize,
		gs.Text.CharSpacing, gs.Text.WordSpacing, gs.Text.HorizontalScaling)

	transform := gs.TextToPage()
	width := gl.WidthInTextSpace()
	baseline := model.LineSegment{
		X0: 0, Y0: gs.Text.Rise,
		X1: width, Y1: gs.Text.Rise,
	}.Transform(transform)

	return &TextRenderEvent{
		glyphLine:         gl,
		transform:         transform,
		baseline:          baseline,
		fontFamily:        f.Name(),
		fontAscent:        f.Ascent(),
		fontSize:          gs.Text.FontSize,
		fontColor:         gs.FillColor,
		characterSpacing:  gs.Text.CharSpacing,
		wordSpacing:       gs.Text.WordSpacing,
		horizontalScaling: gs.Text.HorizontalScaling,
		rise:              gs.Text.Rise,
		spaceCharWidth:    f.SpaceWidthEstimate() * 0.001 * gs.Text.FontSize * gs.Text.HorizontalScaling * 0.01,
	}, nil
}

// SplitOnGlyphs produces one event per glyph with contiguous baseline
// segments: the first starts at (0, rise) in text space, each subsequent
// segment starts where the previous one ended, and every segment is
// transformed into page space individually. A segment is the glyph's
// scaled advance plus unscaled word spacing (for space glyphs) plus
// character spacing.
func (e *TextRenderEvent) SplitOnGlyphs() []*TextRenderEvent {
	singles := e.glyphLine.Split()
	out := make([]*TextRenderEvent, 0, len(singles))

	x := 0.0
	for _, gl := range singles {
		g := gl.Glyphs[0]
		length := g.Width * e.fontSize * 0.001 * (e.horizontalScaling / 100)
		if g.IsSpace() {
			length += e.wordSpacing
		}
		length += e.characterSpacing
		baseline := model.LineSegment{
			X0: x, Y0: e.rise,
			X1: x + length, Y1: e.rise,
		}.Transform(e.transform)
		x += length

		split := *e
		split.glyphLine = gl
		split.baseline = baseline
		out = append(out, &split)
	}
	return out
}

// Text returns the unicode text shown by this event.
func (e *TextRenderEvent) Text() string {
	return e.glyphLine.Text()
}

// GlyphLine returns the decoded glyph line.
func (e *TextRenderEvent) GlyphLine() *font.GlyphLine {
	return e.glyphLine
}

// Baseline returns the baseline segment in page space.
func (e *TextRenderEvent) Baseline() model.LineSegment {
	return e.baseline
}

// BoundingBox returns the event's box: anchored at the baseline's left
// end, as wide as the baseline's x extent, ascent-tall.
func (e *TextRenderEvent) BoundingBox() model.BBox {
	b := e.baseline
	return model.NewBBox(b.MinX(), b.Y0, b.MaxX()-b.MinX(), e.fontAscent*0.001*e.fontSize)
}

// Transform returns the text-to-page matrix the event was placed with.
func (e *TextRenderEvent) Transform() model.Matrix {
	return e.transform
}

// FontFamily returns the name of the event's font.
func (e *TextRenderEvent) FontFamily() string {
	return e.fontFamily
}

// FontSize returns the font size the event was shown at.
func (e *TextRenderEvent) FontSize() float64 {
	return e.fontSize
}

// FontAscent returns the font ascent in design units.
func (e *TextRenderEvent) FontAscent() float64 {
	return e.fontAscent
}

// FontColor returns the fill color the event was shown with.
func (e *TextRenderEvent) FontColor() [3]float64 {
	return e.fontColor
}

// CharacterSpacing returns the character spacing in unscaled text units.
func (e *TextRenderEvent) CharacterSpacing() float64 {
	return e.characterSpacing
}

// SpaceCharacterWidth estimates the width one space character would
// occupy, used by the word-gap heuristic.
func (e *TextRenderEvent) SpaceCharacterWidth() float64 {
	return e.spaceCharWidth
}
