package kotodama

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRune(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected Script
	}{
		{"hiragana", 'ひ', ScriptHiragana},
		{"katakana", 'カ', ScriptKatakana},
		{"prolonged sound mark", 'ー', ScriptKatakana},
		{"kanji", '漢', ScriptKanji},
		{"upper latin", 'A', ScriptLatin},
		{"lower latin", 'z', ScriptLatin},
		{"ascii digit", '7', ScriptDigit},
		{"full-width digit", '７', ScriptDigit},
		{"punctuation", '。', ScriptOther},
		{"full-width latin is other", 'Ａ', ScriptOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRune(tt.r))
		})
	}
}

func TestCountScripts(t *testing.T) {
	counts := CountScripts("ひらがなカタカナ漢字ABC123")

	assert.Equal(t, 4, counts[ScriptHiragana])
	assert.Equal(t, 4, counts[ScriptKatakana])
	assert.Equal(t, 2, counts[ScriptKanji])
	assert.Equal(t, 3, counts[ScriptLatin])
	assert.Equal(t, 3, counts[ScriptDigit])
	assert.Equal(t, 0, counts[ScriptOther])
}

func TestCountScriptsSkipsWhitespace(t *testing.T) {
	// ASCII space, tab, newline, and ideographic space are all excluded.
	counts := CountScripts("猫 ね\tコ\nA　1")

	assert.Equal(t, 6, counts.Total())
	assert.Equal(t, 0, counts[ScriptOther])
}

func TestCountScriptsTotalInvariant(t *testing.T) {
	texts := []string{
		"",
		"吾輩は猫である。名前はまだ無い。",
		"Hello, 世界! １２３ and カタカナ",
		"\t \n　",
	}

	for _, text := range texts {
		nonSpace := 0
		for _, r := range text {
			if !unicode.IsSpace(r) {
				nonSpace++
			}
		}
		assert.Equal(t, nonSpace, CountScripts(text).Total(), "text: %q", text)
	}
}
