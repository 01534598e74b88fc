package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewWhitespaceTokenizer(t *testing.T) {
	tok := NewWhitespaceTokenizer()
	if tok == nil {
		t.Fatal("NewWhitespaceTokenizer() returned nil")
	}
	if _, ok := tok.(*WhitespaceTokenizer); !ok {
		t.Errorf("NewWhitespaceTokenizer() did not return a *WhitespaceTokenizer, got %T", tok)
	}
}

func TestWhitespaceTokenizer_Tokenize(t *testing.T) {
	tok := NewWhitespaceTokenizer()
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty line", line: "", want: nil},
		{name: "only spaces", line: "    ", want: nil},
		{name: "every delimiter", line: " \t\r\n\a \a\t", want: nil},
		{name: "single command", line: "cwd", want: []string{"cwd"}},
		{name: "command with args", line: "echo hello world", want: []string{"echo", "hello", "world"}},
		{name: "delimiter runs collapse", line: "  mkdir \t\t tmp_dir \r\n", want: []string{"mkdir", "tmp_dir"}},
		{name: "bell separates tokens", line: "a\ab", want: []string{"a", "b"}},
		{name: "quotes are literal", line: `echo "a b"`, want: []string{"echo", `"a`, `b"`}},
		{name: "backslash is literal", line: `echo a\ b`, want: []string{"echo", `a\`, "b"}},
		{name: "no env expansion", line: "echo $HOME", want: []string{"echo", "$HOME"}},
		{name: "unicode tokens", line: "echo héllo wörld", want: []string{"echo", "héllo", "wörld"}},
		{name: "invalid utf-8 kept byte for byte", line: "mkdir caf\xe9", want: []string{"mkdir", "caf\xe9"}},
		{name: "stray high bytes", line: "\x80\xff\t\xc3", want: []string{"\x80\xff", "\xc3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestWhitespaceTokenizer_TokenizeDoesNotTruncate(t *testing.T) {
	tok := NewWhitespaceTokenizer()
	const count = 5000
	words := make([]string, count)
	for i := range words {
		words[i] = "arg"
	}
	longWord := strings.Repeat("x", 1<<16)
	line := strings.Join(words, " ") + " " + longWord

	got := tok.Tokenize(line)
	if len(got) != count+1 {
		t.Fatalf("Tokenize() returned %d tokens, want %d", len(got), count+1)
	}
	if got[count] != longWord {
		t.Errorf("last token has length %d, want %d", len(got[count]), len(longWord))
	}
}
