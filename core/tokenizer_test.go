package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// collect tokenizes the whole input and returns every token up to and
// excluding the EOF token.
func collect(t *testing.T, input string) []Token {
	t.Helper()
	tok := NewTokenizer(strings.NewReader(input))
	var out []Token
	for {
		token, err := tok.NextToken()
		if err != nil {
			t.Fatalf("NextToken() error: %v", err)
		}
		if token.Kind == TokenEOF {
			return out
		}
		out = append(out, *token)
	}
}

// TestTokenizerEOF tests end-of-stream handling
func TestTokenizerEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", " \t\n\f\r \x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tt.input))
			token, err := tok.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.Kind != TokenEOF {
				t.Errorf("expected TokenEOF, got %v", token.Kind)
			}
		})
	}
}

// TestTokenizerNames tests name accumulation and delimiter pushback
func TestTokenizerNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple name", "/Type", []string{"/Type"}},
		{"two adjacent names", "/Foo/Bar", []string{"/Foo", "/Bar"}},
		{"empty name", "/", []string{"/"}},
		{"name before space", "/Font ", []string{"/Font"}},
		{"name before bracket", "/Kids[", []string{"/Kids", "["}},
		{"name at EOF", "/Last", []string{"/Last"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := collect(t, tt.input)
			var got []string
			for _, token := range tokens {
				got = append(got, token.Text)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("token texts mismatch (-want +got):\n%s", diff)
			}
			if tokens[0].Kind != TokenName {
				t.Errorf("expected TokenName, got %v", tokens[0].Kind)
			}
		})
	}
}

// TestTokenizerNumbers tests number accumulation
func TestTokenizerNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"integer", "123", "123"},
		{"real", "123.45", "123.45"},
		{"negative", "-456", "-456"},
		{"positive sign", "+789", "+789"},
		{"leading decimal", ".5", ".5"},
		{"number before delimiter", "42/Next", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tt.input))
			token, err := tok.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.Kind != TokenNumber {
				t.Errorf("expected TokenNumber, got %v", token.Kind)
			}
			if token.Text != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, token.Text)
			}
		})
	}
}

// TestTokenizerArray tests the array token sequence from "[1 2]"
func TestTokenizerArray(t *testing.T) {
	want := []Token{
		{Offset: 0, Kind: TokenArrayStart, Text: "["},
		{Offset: 1, Kind: TokenNumber, Text: "1"},
		{Offset: 3, Kind: TokenNumber, Text: "2"},
		{Offset: 4, Kind: TokenArrayEnd, Text: "]"},
	}
	got := collect(t, "[1 2]")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

// TestTokenizerDict tests dictionary delimiters
func TestTokenizerDict(t *testing.T) {
	want := []Token{
		{Offset: 0, Kind: TokenDictStart, Text: "<<"},
		{Offset: 2, Kind: TokenDictEnd, Text: ">>"},
	}
	got := collect(t, "<<>>")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

// TestTokenizerStrings tests parenthesized strings with nesting and
// verbatim escapes
func TestTokenizerStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple string", "(hello)", "(hello)"},
		{"empty string", "()", "()"},
		{"nested parens", "(a(b)c)", "(a(b)c)"},
		{"escaped close paren", `(a\)b)`, `(a\)b)`},
		{"escaped open paren", `(a\(b)`, `(a\(b)`},
		{"escape kept verbatim", `(line\nbreak)`, `(line\nbreak)`},
		{"escaped backslash", `(a\\b)`, `(a\\b)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tt.input))
			token, err := tok.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.Kind != TokenString {
				t.Errorf("expected TokenString, got %v", token.Kind)
			}
			if token.Text != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, token.Text)
			}
		})
	}
}

// TestTokenizerStringErrors tests the two string failure modes: truncation
// is an EOFError, a dangling escape is a SyntaxError
func TestTokenizerStringErrors(t *testing.T) {
	t.Run("unterminated string", func(t *testing.T) {
		tok := NewTokenizer(strings.NewReader("(unterminated"))
		_, err := tok.NextToken()
		var eofErr *EOFError
		if !errors.As(err, &eofErr) {
			t.Fatalf("expected EOFError, got %v", err)
		}
		if eofErr.Offset != 13 {
			t.Errorf("expected offset 13, got %d", eofErr.Offset)
		}
	})

	t.Run("dangling escape", func(t *testing.T) {
		tok := NewTokenizer(strings.NewReader(`(bad\`))
		_, err := tok.NextToken()
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("expected SyntaxError, got %v", err)
		}
		if synErr.Offset != 5 {
			t.Errorf("expected offset 5, got %d", synErr.Offset)
		}
	})
}

// TestTokenizerDictEndErrors tests malformed '>' sequences
func TestTokenizerDictEndErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lone close angle", ">"},
		{"close angle then other", ">x"},
		{"close angle then space", "> >"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tt.input))
			_, err := tok.NextToken()
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}
		})
	}
}

// TestTokenizerHexStrings tests hex strings including graceful truncation
func TestTokenizerHexStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple hex", "<48656C6C6F>", "<48656C6C6F>"},
		{"empty hex", "<>", "<>"},
		{"truncated hex", "<4865", "<4865"},
		{"lone open angle", "<", "<"},
		{"hex keeps interior bytes", "<48 65>", "<48 65>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tt.input))
			token, err := tok.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.Kind != TokenHexString {
				t.Errorf("expected TokenHexString, got %v", token.Kind)
			}
			if token.Text != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, token.Text)
			}
		})
	}
}

// TestTokenizerComments tests comment accumulation and terminator pushback
func TestTokenizerComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"comment with LF", "%PDF-1.7\n", "%PDF-1.7"},
		{"comment with CR", "%note\r", "%note"},
		{"comment at EOF", "%trailing", "%trailing"},
		{"empty comment", "%\n", "%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tt.input))
			token, err := tok.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.Kind != TokenComment {
				t.Errorf("expected TokenComment, got %v", token.Kind)
			}
			if token.Text != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, token.Text)
			}
		})
	}
}

// TestTokenizerNextNonCommentToken tests transparent comment skipping
func TestTokenizerNextNonCommentToken(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("%first\n%second\n42"))
	token, err := tok.NextNonCommentToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Kind != TokenNumber || token.Text != "42" {
		t.Errorf("expected Number \"42\", got %v %q", token.Kind, token.Text)
	}
}

// TestTokenizerOther tests that keywords are not special-cased
func TestTokenizerOther(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"obj keyword", "obj", "obj"},
		{"endobj keyword", "endobj", "endobj"},
		{"reference keyword", "R", "R"},
		{"boolean", "true", "true"},
		{"keyword before delimiter", "stream\n", "stream"},
		{"stray close paren", ")", ")"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(strings.NewReader(tt.input))
			token, err := tok.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.Kind != TokenOther {
				t.Errorf("expected TokenOther, got %v", token.Kind)
			}
			if token.Text != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, token.Text)
			}
		})
	}
}

// TestTokenizerOffsets tests byte-offset attribution across a stream
func TestTokenizerOffsets(t *testing.T) {
	input := "12 0 obj\n<< /Type /Page >>\nendobj"
	want := []Token{
		{Offset: 0, Kind: TokenNumber, Text: "12"},
		{Offset: 3, Kind: TokenNumber, Text: "0"},
		{Offset: 5, Kind: TokenOther, Text: "obj"},
		{Offset: 9, Kind: TokenDictStart, Text: "<<"},
		{Offset: 12, Kind: TokenName, Text: "/Type"},
		{Offset: 18, Kind: TokenName, Text: "/Page"},
		{Offset: 24, Kind: TokenDictEnd, Text: ">>"},
		{Offset: 27, Kind: TokenOther, Text: "endobj"},
	}
	got := collect(t, input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

// TestTokenizerByteCoverage tests that every byte of the input is covered
// exactly once: each token occupies [Offset, Offset+len(Text)) and the
// gaps between consecutive tokens hold nothing but whitespace
func TestTokenizerByteCoverage(t *testing.T) {
	inputs := []string{
		"12 0 obj << /Type /Page /MediaBox [0 0 612 792] >> endobj",
		"%header\n(string (nested)) <DEADBEEF> /Name 3.14 R",
		"[/A/B/C]<<>>()",
		"  true false\tnull\n",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens := collect(t, input)
			next := int64(0)
			for _, token := range tokens {
				for i := next; i < token.Offset; i++ {
					if !isWhitespace(input[i]) {
						t.Fatalf("byte %d (%q) not covered by any token", i, input[i])
					}
				}
				end := token.Offset + int64(len(token.Text))
				if end > int64(len(input)) {
					t.Fatalf("token %v overruns input", token)
				}
				if got := input[token.Offset:end]; got != token.Text {
					t.Errorf("span [%d,%d) is %q, token text is %q", token.Offset, end, got, token.Text)
				}
				next = end
			}
			for i := next; i < int64(len(input)); i++ {
				if !isWhitespace(input[i]) {
					t.Errorf("trailing byte %d (%q) not covered", i, input[i])
				}
			}
		})
	}
}

// TestTokenizerSeekTell tests direct cursor control for
// lookahead-and-rewind callers
func TestTokenizerSeekTell(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("1 2 3"))

	if _, err := tok.NextToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mark, err := tok.Tell()
	if err != nil {
		t.Fatalf("Tell() error: %v", err)
	}
	if mark != 1 {
		t.Errorf("expected position 1, got %d", mark)
	}

	second, err := tok.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Text != "2" {
		t.Errorf("expected \"2\", got %q", second.Text)
	}

	// Rewind and re-read the same token.
	if _, err := tok.Seek(mark, 0); err != nil {
		t.Fatalf("Seek() error: %v", err)
	}
	again, err := tok.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Text != "2" || again.Offset != second.Offset {
		t.Errorf("re-read token %+v differs from original %+v", again, second)
	}
}

// Benchmark tests
func BenchmarkTokenizerSimpleTokens(b *testing.B) {
	input := "123 456 /Name (string)"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok := NewTokenizer(strings.NewReader(input))
		for {
			token, err := tok.NextToken()
			if err != nil || token.Kind == TokenEOF {
				break
			}
		}
	}
}

func BenchmarkTokenizerDictionary(b *testing.B) {
	input := "<< /Type /Page /MediaBox [ 0 0 612 792 ] /Contents 123 0 R >>"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok := NewTokenizer(strings.NewReader(input))
		for {
			token, err := tok.NextToken()
			if err != nil || token.Kind == TokenEOF {
				break
			}
		}
	}
}
