package text

import (
	"math"
	"testing"

	"github.com/pagetext/pagetext/font"
	"github.com/pagetext/pagetext/graphicsstate"
	"github.com/pagetext/pagetext/model"
)

// monoFont maps every printable ASCII code to itself with a uniform
// 500-unit advance, so text-space widths are easy to predict.
func monoFont() *font.MapFont {
	f := &font.MapFont{
		FontName:   "Mono",
		Unicode:    map[int]string{},
		Widths:     map[int]float64{},
		FontAscent: 700,
		SpaceWidth: 500,
	}
	for c := 32; c <= 126; c++ {
		f.Unicode[c] = string(rune(c))
		f.Widths[c] = 500
	}
	return f
}

// makeEvent shows s at text position (x, y) with monoFont at size 10,
// so every glyph is 5 units wide and a space estimate is 5 units.
func makeEvent(t *testing.T, x, y float64, s string) *TextRenderEvent {
	t.Helper()
	gs := graphicsstate.New()
	gs.SetFont(monoFont(), 10)
	gs.TranslateText(x, y)
	e, err := NewTextRenderEvent(gs, []byte(s))
	if err != nil {
		t.Fatalf("NewTextRenderEvent() error: %v", err)
	}
	return e
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewTextRenderEventBaseline(t *testing.T) {
	e := makeEvent(t, 100, 700, "ab")

	b := e.Baseline()
	if !almostEqual(b.X0, 100) || !almostEqual(b.Y0, 700) {
		t.Errorf("baseline start = (%v, %v); want (100, 700)", b.X0, b.Y0)
	}
	// Two 500-unit glyphs at size 10 are 10 units wide.
	if !almostEqual(b.X1, 110) || !almostEqual(b.Y1, 700) {
		t.Errorf("baseline end = (%v, %v); want (110, 700)", b.X1, b.Y1)
	}
	if got := e.Text(); got != "ab" {
		t.Errorf("Text() = %q; want %q", got, "ab")
	}
}

func TestNewTextRenderEventRise(t *testing.T) {
	gs := graphicsstate.New()
	gs.SetFont(monoFont(), 10)
	gs.SetTextRise(2)
	gs.TranslateText(100, 700)

	e, err := NewTextRenderEvent(gs, []byte("a"))
	if err != nil {
		t.Fatalf("NewTextRenderEvent() error: %v", err)
	}
	if got := e.Baseline().Y0; !almostEqual(got, 702) {
		t.Errorf("baseline y = %v; want 702", got)
	}
}

func TestNewTextRenderEventRotatedTransform(t *testing.T) {
	// A quarter-turn device transform carries the baseline with it; the
	// baseline length is unchanged.
	gs := graphicsstate.New()
	gs.CTM = model.Rotate(math.Pi / 2)
	gs.SetFont(monoFont(), 10)
	gs.TranslateText(10, 0)

	e, err := NewTextRenderEvent(gs, []byte("a"))
	if err != nil {
		t.Fatalf("NewTextRenderEvent() error: %v", err)
	}

	b := e.Baseline()
	if !almostEqual(b.X0, 0) || !almostEqual(b.Y0, 10) {
		t.Errorf("baseline start = (%v, %v); want (0, 10)", b.X0, b.Y0)
	}
	if !almostEqual(b.X1, 0) || !almostEqual(b.Y1, 15) {
		t.Errorf("baseline end = (%v, %v); want (0, 15)", b.X1, b.Y1)
	}
	if got := b.Length(); !almostEqual(got, 5) {
		t.Errorf("baseline length = %v; want 5", got)
	}
}

func TestNewTextRenderEventWithoutFont(t *testing.T) {
	gs := graphicsstate.New()
	if _, err := NewTextRenderEvent(gs, []byte("x")); err == nil {
		t.Error("NewTextRenderEvent() with no font set returned nil error")
	}
}

func TestEventMetadata(t *testing.T) {
	gs := graphicsstate.New()
	gs.SetFont(monoFont(), 12)
	gs.SetFillColor(1, 0, 0)
	gs.SetCharSpacing(0.5)

	e, err := NewTextRenderEvent(gs, []byte("a"))
	if err != nil {
		t.Fatalf("NewTextRenderEvent() error: %v", err)
	}

	if got := e.FontFamily(); got != "Mono" {
		t.Errorf("FontFamily() = %q; want %q", got, "Mono")
	}
	if got := e.FontSize(); got != 12 {
		t.Errorf("FontSize() = %v; want 12", got)
	}
	if got := e.FontAscent(); got != 700 {
		t.Errorf("FontAscent() = %v; want 700", got)
	}
	if got := e.FontColor(); got != [3]float64{1, 0, 0} {
		t.Errorf("FontColor() = %v; want red", got)
	}
	if got := e.CharacterSpacing(); got != 0.5 {
		t.Errorf("CharacterSpacing() = %v; want 0.5", got)
	}
	// 500 design units at size 12.
	if got := e.SpaceCharacterWidth(); !almostEqual(got, 6) {
		t.Errorf("SpaceCharacterWidth() = %v; want 6", got)
	}
}

func TestSplitOnGlyphs(t *testing.T) {
	e := makeEvent(t, 100, 700, "abc")

	parts := e.SplitOnGlyphs()
	if len(parts) != 3 {
		t.Fatalf("SplitOnGlyphs() returned %d events; want 3", len(parts))
	}

	wantTexts := []string{"a", "b", "c"}
	for i, p := range parts {
		if got := p.Text(); got != wantTexts[i] {
			t.Errorf("parts[%d].Text() = %q; want %q", i, got, wantTexts[i])
		}
		if p.GlyphLine().Len() != 1 {
			t.Errorf("parts[%d] holds %d glyphs; want 1", i, p.GlyphLine().Len())
		}
	}

	// Segments are contiguous and non-overlapping.
	for i := 1; i < len(parts); i++ {
		prev := parts[i-1].Baseline()
		cur := parts[i].Baseline()
		if !almostEqual(prev.X1, cur.X0) || !almostEqual(prev.Y1, cur.Y0) {
			t.Errorf("parts[%d] starts at (%v, %v); want previous end (%v, %v)",
				i, cur.X0, cur.Y0, prev.X1, prev.Y1)
		}
	}

	first := parts[0].Baseline()
	last := parts[2].Baseline()
	if !almostEqual(first.X0, 100) || !almostEqual(last.X1, 115) {
		t.Errorf("chain spans %v..%v; want 100..115", first.X0, last.X1)
	}
}

func TestSplitOnGlyphsWordSpacingUnscaled(t *testing.T) {
	// Horizontal scaling halves the glyph advance but never the word
	// spacing, which is added after scaling.
	gs := graphicsstate.New()
	gs.SetFont(monoFont(), 10)
	gs.SetWordSpacing(4)
	gs.SetHorizontalScaling(50)

	e, err := NewTextRenderEvent(gs, []byte(" a"))
	if err != nil {
		t.Fatalf("NewTextRenderEvent() error: %v", err)
	}

	parts := e.SplitOnGlyphs()
	if len(parts) != 2 {
		t.Fatalf("SplitOnGlyphs() returned %d events; want 2", len(parts))
	}

	// Space glyph: 500 units at size 10 scaled to 2.5, plus 4 units of
	// word spacing.
	space := parts[0].Baseline()
	if got := space.X1 - space.X0; !almostEqual(got, 6.5) {
		t.Errorf("space glyph segment length = %v; want 6.5", got)
	}
	// The next glyph starts where the space segment ended.
	letter := parts[1].Baseline()
	if !almostEqual(letter.X0, 6.5) {
		t.Errorf("second segment starts at %v; want 6.5", letter.X0)
	}
	if got := letter.X1 - letter.X0; !almostEqual(got, 2.5) {
		t.Errorf("letter segment length = %v; want 2.5", got)
	}
}

func TestSplitOnGlyphsWithCharSpacing(t *testing.T) {
	gs := graphicsstate.New()
	gs.SetFont(monoFont(), 10)
	gs.SetCharSpacing(1)

	e, err := NewTextRenderEvent(gs, []byte("ab"))
	if err != nil {
		t.Fatalf("NewTextRenderEvent() error: %v", err)
	}

	parts := e.SplitOnGlyphs()
	if len(parts) != 2 {
		t.Fatalf("SplitOnGlyphs() returned %d events; want 2", len(parts))
	}
	// Each glyph advances 5 units plus 1 unit of spacing.
	if got := parts[0].Baseline(); !almostEqual(got.X1-got.X0, 6) {
		t.Errorf("segment length = %v; want 6", got.X1-got.X0)
	}
}
