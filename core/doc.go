// Package core provides the low-level tokenizer for page-description
// byte streams.
//
// The [Tokenizer] turns a seekable byte source into a stream of typed,
// offset-tagged [Token] values:
//
//	tok := core.NewTokenizer(strings.NewReader("<< /Type /Page >>"))
//	for {
//	    token, err := tok.NextToken()
//	    if err != nil || token.Kind == core.TokenEOF {
//	        break
//	    }
//	    // use token
//	}
//
// Every token records the byte offset of its first character, so any
// consumer can attribute errors to an exact position in the source.
// The tokenizer itself reports malformed input through [SyntaxError] and
// [EOFError], both of which carry the offending byte offset.
//
// The tokenizer is purely lexical: it does not recognize keywords such as
// "obj", "endobj" or "R". Those arrive as [TokenOther] and are classified
// by the object layer above, which can also use [Tokenizer.Seek] and
// [Tokenizer.Tell] for lookahead-and-rewind parsing.
package core
