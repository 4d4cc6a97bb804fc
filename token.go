package kotodama

import (
	"strings"
)

// IPA dictionary part-of-speech tags used by the classifier predicates.
const (
	posSymbol    = "記号"
	posBlank     = "空白"
	posParticle  = "助詞"
	posFullStop  = "句点"
	posComma     = "読点"
)

// Token is a single morpheme produced by the tokenizer.
// Tokens are immutable snapshots scoped to one analysis call.
type Token struct {
	Surface            string `json:"surface"`             // text as it appears in the input
	PartOfSpeech       string `json:"pos"`                 // top-level POS tag (名詞, 助詞, 記号, ...)
	PartOfSpeechDetail string `json:"pos_detail"`          // first sub-classification (句点, 空白, ...)
	Reading            string `json:"reading,omitempty"`   // katakana reading
	BaseForm           string `json:"base_form,omitempty"` // dictionary form
}

// Tokens is a slice of tokens representing a complete tokenization result.
type Tokens []Token

// IsPunctOrBlank reports whether the token is a symbol or whitespace morpheme.
// Such tokens are excluded from word counts and lexical statistics.
func (t Token) IsPunctOrBlank() bool {
	return t.PartOfSpeech == posSymbol ||
		t.PartOfSpeech == posBlank ||
		t.PartOfSpeechDetail == posBlank
}

// IsParticle reports whether the token is a grammatical particle (助詞).
func (t Token) IsParticle() bool {
	return t.PartOfSpeech == posParticle
}

// IsKatakana reports whether every rune of the surface form lies in the
// katakana block. Empty surfaces are not katakana.
func (t Token) IsKatakana() bool {
	if t.Surface == "" {
		return false
	}
	for _, r := range t.Surface {
		if r < 0x30A0 || r > 0x30FF {
			return false
		}
	}
	return true
}

// IsSentenceFinal reports whether the token is a sentence-terminating or
// clause-terminating punctuation mark (句点 or 読点).
func (t Token) IsSentenceFinal() bool {
	if t.PartOfSpeech != posSymbol {
		return false
	}
	return t.PartOfSpeechDetail == posFullStop || t.PartOfSpeechDetail == posComma
}

// IsHonorific reports whether the surface or base form contains any of the
// given honorific markers. Conjugated politeness forms are caught through the
// base form (まし -> ます).
func (t Token) IsHonorific(markers []string) bool {
	for _, m := range markers {
		if strings.Contains(t.Surface, m) || strings.Contains(t.BaseForm, m) {
			return true
		}
	}
	return false
}

// Lexical returns the tokens that are neither punctuation nor whitespace.
func (tokens Tokens) Lexical() Tokens {
	out := make(Tokens, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsPunctOrBlank() {
			out = append(out, t)
		}
	}
	return out
}

// Surfaces returns the surface form of every token, in order.
func (tokens Tokens) Surfaces() []string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.Surface)
	}
	return parts
}
