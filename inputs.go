package synalter

import (
	"strings"

	"github.com/projectdiscovery/synalter/normalize"
)

// Input contains tokenized data of a phrase
type Input struct {
	Raw    string   // phrase as given
	Tokens []string // whitespace delimited words in original casing
	Keys   []string // folded lookup key of every token
}

// NewInput splits phrase on whitespace discarding empty fragments
func NewInput(phrase string) *Input {
	tokens := strings.Fields(phrase)
	keys := make([]string, len(tokens))
	for i, v := range tokens {
		keys[i] = normalize.Fold(v)
	}
	return &Input{
		Raw:    phrase,
		Tokens: tokens,
		Keys:   keys,
	}
}

// Empty returns true if phrase has no tokens
func (i *Input) Empty() bool {
	return len(i.Tokens) == 0
}

// String returns whitespace normalized phrase
func (i *Input) String() string {
	return strings.Join(i.Tokens, " ")
}
