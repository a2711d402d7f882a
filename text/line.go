package text

import (
	"fmt"
	"math"
	"strings"

	"github.com/pagetext/pagetext/model"
)

// LineRenderEvent is an ordered group of events judged to share one
// visual line. It is a read-only view; membership is assumed, not
// re-verified.
type LineRenderEvent struct {
	events []*TextRenderEvent
	cfg    Config
}

// NewLineRenderEvent groups events into one logical line. The events
// must already be in reading order. An empty group is an error.
func NewLineRenderEvent(cfg Config, events []*TextRenderEvent) (*LineRenderEvent, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("line render event: no contained events")
	}
	return &LineRenderEvent{events: events, cfg: cfg}, nil
}

// Events returns the contained events in order.
func (l *LineRenderEvent) Events() []*TextRenderEvent {
	return l.events
}

// Text reconstructs the line's text, inserting a space wherever the
// horizontal gap between two fragments exceeds the scaled estimate of
// one space character. Fragments that already carry their own spacing
// are appended untouched.
func (l *LineRenderEvent) Text() string {
	var sb strings.Builder
	right := l.events[0].Baseline().MinX()

	for _, e := range l.events {
		t := e.Text()
		if strings.HasPrefix(t, " ") || strings.HasSuffix(sb.String(), " ") {
			sb.WriteString(t)
			right = e.Baseline().MaxX()
			continue
		}

		delta := math.Abs(right - e.Baseline().X0)
		spaceWidth := math.Round(e.SpaceCharacterWidth()*10) / 10
		right = e.Baseline().MaxX()

		if spaceWidth*l.cfg.SpaceInsertionFactor < delta {
			sb.WriteString(" ")
		}
		sb.WriteString(t)
	}

	return sb.String()
}

// Baseline returns the aggregate baseline: the first event's y, spanning
// the minimum to the maximum x endpoint over every contained event.
func (l *LineRenderEvent) Baseline() model.LineSegment {
	y := l.events[0].Baseline().Y0
	minX := l.events[0].Baseline().MinX()
	maxX := l.events[0].Baseline().MaxX()
	for _, e := range l.events[1:] {
		minX = math.Min(minX, e.Baseline().MinX())
		maxX = math.Max(maxX, e.Baseline().MaxX())
	}
	return model.LineSegment{X0: minX, Y0: y, X1: maxX, Y1: y}
}

// BoundingBox returns the line's box: anchored at the baseline's left
// end, as wide as the baseline, as tall as the tallest ascender.
func (l *LineRenderEvent) BoundingBox() model.BBox {
	b := l.Baseline()
	height := 0.0
	for _, e := range l.events {
		height = math.Max(height, e.FontAscent()*0.001*e.FontSize())
	}
	return model.NewBBox(b.X0, b.Y0, math.Abs(b.X1-b.X0), height)
}

// FontFamily returns the first event's font family. Lines are assumed
// visually homogeneous.
func (l *LineRenderEvent) FontFamily() string {
	return l.events[0].FontFamily()
}

// FontSize returns the first event's font size.
func (l *LineRenderEvent) FontSize() float64 {
	return l.events[0].FontSize()
}

// FontColor returns the first event's fill color.
func (l *LineRenderEvent) FontColor() [3]float64 {
	return l.events[0].FontColor()
}

// SpaceCharacterWidth returns the first event's space width estimate.
func (l *LineRenderEvent) SpaceCharacterWidth() float64 {
	return l.events[0].SpaceCharacterWidth()
}
