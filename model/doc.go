// Package model provides the geometric primitives shared by the glyph and
// text-event packages: points, 2D affine matrices, line segments and
// bounding boxes. Coordinates follow the page convention of the source
// format: origin bottom-left, y growing upward.
package model
