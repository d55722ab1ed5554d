package main

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

const defaultTokenModel = "gpt-4o"

// countPromptTokens returns the tiktoken token count of the prompt for the
// given model, falling back to the default encoding when the model is unknown.
// The count is informational, letting the user judge whether the prompt fits a
// model context window.
func countPromptTokens(prompt, model string) (int, error) {
	if model == "" {
		model = defaultTokenModel
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		if model == defaultTokenModel {
			return 0, fmt.Errorf("loading tiktoken encoding for %s: %w", model, err)
		}
		encoding, err = tiktoken.EncodingForModel(defaultTokenModel)
		if err != nil {
			return 0, fmt.Errorf("loading tiktoken encoding for fallback %s: %w", defaultTokenModel, err)
		}
	}

	return len(encoding.EncodeOrdinary(prompt)), nil
}
