package text

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/pagetext/pagetext/model"
)

// Extraction collects text render events per page and reconstructs each
// page's text on demand. The zero value is not usable; call NewExtraction.
type Extraction struct {
	cfg    Config
	events map[int][]*TextRenderEvent
}

// NewExtraction returns an empty collector using the given configuration.
func NewExtraction(cfg Config) *Extraction {
	return &Extraction{
		cfg:    cfg,
		events: make(map[int][]*TextRenderEvent),
	}
}

// Record adds one event to a page. Pages are numbered by the caller;
// recording order does not matter.
func (x *Extraction) Record(page int, e *TextRenderEvent) {
	x.events[page] = append(x.events[page], e)
}

// Pages returns the recorded page numbers in ascending order.
func (x *Extraction) Pages() []int {
	pages := maps.Keys(x.events)
	sort.Ints(pages)
	return pages
}

// Lines sorts a page's events into reading order and groups consecutive
// events sharing one baseline band into line events.
func (x *Extraction) Lines(page int) []*LineRenderEvent {
	events := x.events[page]
	if len(events) == 0 {
		return nil
	}

	sorted := make([]*TextRenderEvent, len(events))
	copy(sorted, events)
	SortReadingOrder(sorted, x.cfg)

	var lines []*LineRenderEvent
	start := 0
	band := quantizeBaseline(sorted[0].Baseline().Y0, x.cfg.BaselineBand)
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) {
			b := quantizeBaseline(sorted[i].Baseline().Y0, x.cfg.BaselineBand)
			if b == band {
				continue
			}
			band = b
		}
		line, err := NewLineRenderEvent(x.cfg, sorted[start:i])
		if err != nil {
			// Unreachable: every group holds at least one event.
			continue
		}
		lines = append(lines, line)
		start = i
	}
	return lines
}

// BoundingBox returns the union of a page's line boxes. The second
// return value is false when the page holds no events.
func (x *Extraction) BoundingBox(page int) (model.BBox, bool) {
	lines := x.Lines(page)
	if len(lines) == 0 {
		return model.BBox{}, false
	}
	box := lines[0].BoundingBox()
	for _, l := range lines[1:] {
		box = box.Union(l.BoundingBox())
	}
	return box, true
}

// EventAt returns the first event in reading order on a page whose
// bounding box contains p, or nil when the point hits no text. Split
// events recorded per glyph make this a glyph-level hit test.
func (x *Extraction) EventAt(page int, p model.Point) *TextRenderEvent {
	for _, l := range x.Lines(page) {
		for _, e := range l.Events() {
			if e.BoundingBox().Contains(p) {
				return e
			}
		}
	}
	return nil
}

// Text reconstructs a page's text, one reconstructed line per text line.
// Unknown pages yield the empty string.
func (x *Extraction) Text(page int) string {
	lines := x.Lines(page)
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.Text())
	}
	out := strings.Join(parts, "\n")
	if x.cfg.ExpandLigatures {
		out = ExpandLigatures(out)
	}
	return out
}
