package token

// Tokenizer converts an arithmetic expression into a token sequence
// terminated by an EOF token.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}
