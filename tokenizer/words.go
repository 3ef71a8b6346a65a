// Package tokenizer splits text into tokens: whitespace-delimited word
// unigrams for the presence engine, and BPE tokens for sizing text sent to
// embedding models.
package tokenizer

import "strings"

// Tokenize splits normalized text on whitespace, keeping appearance order.
// Tokens may carry digits or symbols; blank input yields an empty slice.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	if fields == nil {
		return []string{}
	}
	return fields
}
