// Package text turns positioned glyph runs into readable text. A
// [TextRenderEvent] binds a decoded glyph line to the graphics state it
// was shown under, yielding a baseline segment in page space. Events are
// sorted into reading order, grouped into [LineRenderEvent] values that
// infer the spaces the byte stream never encoded, and collected per page
// by [Extraction].
package text
