package core

import (
	"fmt"
	"io"
	"strings"
)

// Tokenizer performs lexical analysis of a page-description byte stream.
// It owns the cursor of its byte source: concurrent calls against the same
// source must be serialized by the caller.
type Tokenizer struct {
	src io.ReadSeeker
	buf [1]byte
}

// NewTokenizer creates a tokenizer over a seekable byte source.
func NewTokenizer(src io.ReadSeeker) *Tokenizer {
	return &Tokenizer{src: src}
}

// NextNonCommentToken returns the next token, transparently skipping
// comment tokens.
func (t *Tokenizer) NextNonCommentToken() (*Token, error) {
	for {
		tok, err := t.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenComment {
			return tok, nil
		}
	}
}

// NextToken returns the next token from the byte source. At the end of the
// source it returns a token of kind TokenEOF rather than an error.
func (t *Tokenizer) NextToken() (*Token, error) {
	b, ok, err := t.nextByte()
	if err != nil {
		return nil, err
	}
	for ok && isWhitespace(b) {
		b, ok, err = t.nextByte()
		if err != nil {
			return nil, err
		}
	}

	pos, err := t.Tell()
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Token{Offset: pos, Kind: TokenEOF}, nil
	}
	pos-- // offset of the byte just consumed

	switch {
	case b == '[':
		return &Token{Offset: pos, Kind: TokenArrayStart, Text: "["}, nil
	case b == ']':
		return &Token{Offset: pos, Kind: TokenArrayEnd, Text: "]"}, nil
	case b == '/':
		return t.readName(pos)
	case b == '>':
		return t.readDictEnd(pos)
	case b == '%':
		return t.readComment(pos)
	case b == '<':
		return t.readHexStringOrDictStart(pos)
	case isNumberByte(b):
		return t.readNumber(pos, b)
	case b == '(':
		return t.readString(pos)
	default:
		return t.readOther(pos, b)
	}
}

// Seek changes the position of the underlying byte source. The offset is
// interpreted relative to whence (io.SeekStart, io.SeekCurrent or
// io.SeekEnd) and the new absolute position is returned.
func (t *Tokenizer) Seek(offset int64, whence int) (int64, error) {
	return t.src.Seek(offset, whence)
}

// Tell returns the current position of the underlying byte source.
func (t *Tokenizer) Tell() (int64, error) {
	return t.src.Seek(0, io.SeekCurrent)
}

// readName accumulates a name token. The leading '/' has already been
// consumed and is part of the token text.
func (t *Tokenizer) readName(pos int64) (*Token, error) {
	var sb strings.Builder
	sb.WriteByte('/')
	for {
		b, ok, err := t.nextByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if isDelimiter(b) {
			if err := t.unreadByte(); err != nil {
				return nil, err
			}
			break
		}
		sb.WriteByte(b)
	}
	return &Token{Offset: pos, Kind: TokenName, Text: sb.String()}, nil
}

// readDictEnd handles a consumed '>'. It must be followed immediately by a
// second '>'; anything else is a syntax error at the current offset.
func (t *Tokenizer) readDictEnd(pos int64) (*Token, error) {
	b, ok, err := t.nextByte()
	if err != nil {
		return nil, err
	}
	off, err := t.Tell()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &SyntaxError{Offset: off, Msg: "expected '>' before end of stream"}
	}
	if b != '>' {
		return nil, &SyntaxError{Offset: off, Msg: fmt.Sprintf("expected '>', got %q", string(b))}
	}
	return &Token{Offset: pos, Kind: TokenDictEnd, Text: ">>"}, nil
}

// readComment accumulates a comment up to, but not including, the next CR
// or LF. The terminator is pushed back so it can be re-tokenized.
func (t *Tokenizer) readComment(pos int64) (*Token, error) {
	var sb strings.Builder
	sb.WriteByte('%')
	for {
		b, ok, err := t.nextByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if b == '\r' || b == '\n' {
			if err := t.unreadByte(); err != nil {
				return nil, err
			}
			break
		}
		sb.WriteByte(b)
	}
	return &Token{Offset: pos, Kind: TokenComment, Text: sb.String()}, nil
}

// readHexStringOrDictStart handles a consumed '<'. A second '<' makes a
// dictionary start; '>' makes the empty hex string "<>"; anything else
// starts a hex string read as raw bytes until a '>' is consumed or the
// source ends. Truncation is not an error: the value ends however much
// was read.
func (t *Tokenizer) readHexStringOrDictStart(pos int64) (*Token, error) {
	b, ok, err := t.nextByte()
	if err != nil {
		return nil, err
	}
	if ok && b == '<' {
		return &Token{Offset: pos, Kind: TokenDictStart, Text: "<<"}, nil
	}
	if ok && b == '>' {
		return &Token{Offset: pos, Kind: TokenHexString, Text: "<>"}, nil
	}

	var sb strings.Builder
	sb.WriteByte('<')
	if ok {
		sb.WriteByte(b)
		for {
			b, ok, err = t.nextByte()
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			sb.WriteByte(b)
			if b == '>' {
				break
			}
		}
	}
	return &Token{Offset: pos, Kind: TokenHexString, Text: sb.String()}, nil
}

// readNumber accumulates a number token. first is the already consumed
// leading byte. The terminating byte, if any, is pushed back.
func (t *Tokenizer) readNumber(pos int64, first byte) (*Token, error) {
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		b, ok, err := t.nextByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if !isNumberByte(b) {
			if err := t.unreadByte(); err != nil {
				return nil, err
			}
			break
		}
		sb.WriteByte(b)
	}
	return &Token{Offset: pos, Kind: TokenNumber, Text: sb.String()}, nil
}

// readString accumulates a parenthesized string. The opening '(' has been
// consumed. Parentheses nest; a backslash introduces a two-byte escape
// copied verbatim without interpretation. Running out of bytes before the
// nesting closes is an EOFError, except right after a backslash, which is
// a dangling escape and therefore a SyntaxError.
func (t *Tokenizer) readString(pos int64) (*Token, error) {
	var sb strings.Builder
	sb.WriteByte('(')
	depth := 1
	for depth > 0 {
		b, ok, err := t.nextByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			off, terr := t.Tell()
			if terr != nil {
				return nil, terr
			}
			return nil, &EOFError{Offset: off}
		}
		if b == '\\' {
			esc, ok, err := t.nextByte()
			if err != nil {
				return nil, err
			}
			if !ok {
				off, terr := t.Tell()
				if terr != nil {
					return nil, terr
				}
				return nil, &SyntaxError{Offset: off, Msg: "unterminated escape sequence"}
			}
			sb.WriteByte('\\')
			sb.WriteByte(esc)
			continue
		}
		if b == '(' {
			depth++
		}
		if b == ')' {
			depth--
		}
		sb.WriteByte(b)
	}
	return &Token{Offset: pos, Kind: TokenString, Text: sb.String()}, nil
}

// readOther accumulates a run of bytes that fits no other class. first is
// the already consumed leading byte and is always part of the token; any
// terminating delimiter is pushed back.
func (t *Tokenizer) readOther(pos int64, first byte) (*Token, error) {
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		b, ok, err := t.nextByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if isDelimiter(b) {
			if err := t.unreadByte(); err != nil {
				return nil, err
			}
			break
		}
		sb.WriteByte(b)
	}
	return &Token{Offset: pos, Kind: TokenOther, Text: sb.String()}, nil
}

// nextByte reads one byte and advances the cursor. ok is false once the
// source is exhausted.
func (t *Tokenizer) nextByte() (b byte, ok bool, err error) {
	n, err := t.src.Read(t.buf[:])
	if n == 1 {
		return t.buf[0], true, nil
	}
	if err != nil && err != io.EOF {
		return 0, false, err
	}
	return 0, false, nil
}

// unreadByte rewinds the cursor by one byte so the byte is re-tokenized by
// the next call.
func (t *Tokenizer) unreadByte() error {
	_, err := t.src.Seek(-1, io.SeekCurrent)
	return err
}

// isWhitespace reports whether b is one of the six whitespace bytes:
// null, tab, LF, FF, CR and space.
func isWhitespace(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// isDelimiter reports whether b terminates an unquoted token. Delimiters
// are the whitespace bytes plus % ( ) / < > [ ].
func isDelimiter(b byte) bool {
	switch b {
	case '%', '(', ')', '/', '<', '>', '[', ']':
		return true
	}
	return isWhitespace(b)
}

// isNumberByte reports whether b can appear in a number token.
func isNumberByte(b byte) bool {
	return b == '-' || b == '+' || b == '.' || (b >= '0' && b <= '9')
}
