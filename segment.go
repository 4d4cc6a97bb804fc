package kotodama

import (
	"strings"
)

// sentenceTerminators are the full-width and half-width sentence-ending marks.
var sentenceTerminators = map[rune]bool{
	'。': true,
	'.': true,
	'！': true,
	'!': true,
	'？': true,
	'?': true,
}

// SplitSentences splits text into sentence units on terminal punctuation.
// Delimiters are discarded, pieces are trimmed, and empty pieces are dropped.
// Text without any terminator yields one sentence if non-empty after trimming.
func SplitSentences(text string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return sentenceTerminators[r]
	})
	sentences := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
