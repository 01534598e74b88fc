package ports

// Tokenizer splits one command line into its argument tokens.
type Tokenizer interface {
	Tokenize(line string) []string
}
