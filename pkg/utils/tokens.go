package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokensFromMessages estimates the token count of text so completion
// budgets can be sized instead of guessed from character length.
func NumTokensFromMessages(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-4-0613")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
