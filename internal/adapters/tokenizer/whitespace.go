package tokenizer

import (
	"strings"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// Delimiters are the characters that separate tokens on a command line.
const Delimiters = " \t\r\n\a"

// WhitespaceTokenizer splits a line on runs of delimiter characters.
// It applies no quoting, escaping or expansion.
type WhitespaceTokenizer struct{}

// NewWhitespaceTokenizer creates a new WhitespaceTokenizer.
func NewWhitespaceTokenizer() ports.Tokenizer {
	return &WhitespaceTokenizer{}
}

// Tokenize returns the tokens of line in order. Empty or all-delimiter input yields no tokens.
// Tokens keep the exact bytes of line, whether or not they are valid UTF-8.
func (t *WhitespaceTokenizer) Tokenize(line string) []string {
	var tokens []string
	start := -1

	for i := 0; i < len(line); i++ {
		if !isDelimiter(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, strings.Clone(line[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, strings.Clone(line[start:]))
	}
	return tokens
}

// isDelimiter checks a single byte. Every delimiter is ASCII, so it never matches inside a multi-byte sequence.
func isDelimiter(b byte) bool {
	return strings.IndexByte(Delimiters, b) >= 0
}
