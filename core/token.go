package core

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	TokenNumber    TokenKind = iota // 123, -4, 3.14, .5
	TokenString                     // (hello), parentheses and escapes kept verbatim
	TokenHexString                  // <48656C6C6F>, angle brackets kept
	TokenName                       // /Type, leading slash kept
	TokenComment                    // %comment, percent sign kept
	TokenArrayStart                 // [
	TokenArrayEnd                   // ]
	TokenDictStart                  // <<
	TokenDictEnd                    // >>
	TokenRef                        // R, assigned by the object layer
	TokenObj                        // obj, assigned by the object layer
	TokenEndObj                     // endobj, assigned by the object layer
	TokenOther                      // any other run of non-delimiter bytes
	TokenEOF                        // end of the byte source
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenString:
		return "String"
	case TokenHexString:
		return "HexString"
	case TokenName:
		return "Name"
	case TokenComment:
		return "Comment"
	case TokenArrayStart:
		return "ArrayStart"
	case TokenArrayEnd:
		return "ArrayEnd"
	case TokenDictStart:
		return "DictStart"
	case TokenDictEnd:
		return "DictEnd"
	case TokenRef:
		return "Ref"
	case TokenObj:
		return "Obj"
	case TokenEndObj:
		return "EndObj"
	case TokenOther:
		return "Other"
	case TokenEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Token is a classified, offset-tagged lexical unit extracted from the
// byte stream. Offset is the absolute position of the token's first byte.
// Tokens are immutable once returned by the tokenizer.
type Token struct {
	Offset int64
	Kind   TokenKind
	Text   string
}
