package core

import "fmt"

// SyntaxError reports a malformed byte sequence, such as a lone '>' that
// is not followed by a second '>', or a string ending in a dangling
// escape. Offset is the absolute position where the anomaly was detected.
type SyntaxError struct {
	Offset int64
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at byte %d: %s", e.Offset, e.Msg)
}

// EOFError reports that the byte source was exhausted inside a construct
// that must be terminated, such as a parenthesized string whose nesting
// never closes.
type EOFError struct {
	Offset int64
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("unexpected end of stream at byte %d", e.Offset)
}
