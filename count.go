package kotodama

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Language selects the word-counting strategy.
type Language string

const (
	English  Language = "english"
	Japanese Language = "japanese"
)

// ParseLanguage normalizes a user-supplied language name.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en":
		return English, nil
	case "japanese", "ja":
		return Japanese, nil
	}
	return "", fmt.Errorf("unknown language %q (want english or japanese)", s)
}

// CountChars returns the number of characters in text after removing every
// whitespace character (spaces, tabs, newlines, full-width spaces).
func CountChars(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// CountWords counts words in text. English text is split on whitespace runs;
// empty or all-whitespace input counts zero words. Japanese text is
// tokenized, counting every morpheme that is not punctuation or whitespace.
func (e *Engine) CountWords(ctx context.Context, text string, lang Language) (int, error) {
	switch lang {
	case English:
		return len(strings.Fields(text)), nil
	case Japanese:
		h, err := e.provider.Acquire(ctx)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrTokenizerUnavailable, err)
		}
		return len(h.Tokenize(text).Lexical()), nil
	}
	return 0, fmt.Errorf("unknown language %q", lang)
}
