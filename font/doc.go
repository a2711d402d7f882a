// Package font provides the font capability consumed by glyph-line
// construction, the [Glyph] and [GlyphLine] model, byte encodings, and two
// concrete [Font] implementations: [SimpleFont] for single-byte encoded
// fonts with built-in standard metrics, and [MapFont] for fonts whose
// code-to-unicode and code-to-width tables were produced elsewhere.
//
// A GlyphLine decodes raw string bytes greedily: at each position it first
// tries the 16-bit big-endian code formed by the next two bytes, then the
// single byte, and finally falls back to a replacement glyph. Multi-byte
// and single-byte glyphs may therefore be interleaved within one line.
package font
