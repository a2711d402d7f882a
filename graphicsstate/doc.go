// Package graphicsstate models the state a content stream interpreter
// carries while executing text operators: the current transformation
// matrix, the text state parameters, and the fill color. The package is
// the bridge between operator execution and the text render events built
// from it.
package graphicsstate
