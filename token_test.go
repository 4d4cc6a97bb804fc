package kotodama

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPunctOrBlank(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected bool
	}{
		{
			name:     "full stop",
			token:    Token{Surface: "。", PartOfSpeech: "記号", PartOfSpeechDetail: "句点"},
			expected: true,
		},
		{
			name:     "comma",
			token:    Token{Surface: "、", PartOfSpeech: "記号", PartOfSpeechDetail: "読点"},
			expected: true,
		},
		{
			name:     "whitespace morpheme",
			token:    Token{Surface: "　", PartOfSpeech: "記号", PartOfSpeechDetail: "空白"},
			expected: true,
		},
		{
			name:     "blank top-level tag",
			token:    Token{Surface: " ", PartOfSpeech: "空白"},
			expected: true,
		},
		{
			name:     "noun",
			token:    Token{Surface: "猫", PartOfSpeech: "名詞", PartOfSpeechDetail: "一般"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.IsPunctOrBlank())
		})
	}
}

func TestIsParticle(t *testing.T) {
	assert.True(t, Token{Surface: "は", PartOfSpeech: "助詞", PartOfSpeechDetail: "係助詞"}.IsParticle())
	assert.False(t, Token{Surface: "猫", PartOfSpeech: "名詞"}.IsParticle())
	assert.False(t, Token{Surface: "ます", PartOfSpeech: "助動詞"}.IsParticle())
}

func TestIsKatakana(t *testing.T) {
	tests := []struct {
		name     string
		surface  string
		expected bool
	}{
		{"katakana word", "コンピューター", true},
		{"katakana with prolonged mark", "サーバー", true},
		{"hiragana", "ねこ", false},
		{"kanji", "猫", false},
		{"mixed", "ネコだ", false},
		{"latin", "cat", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := Token{Surface: tt.surface}
			assert.Equal(t, tt.expected, tok.IsKatakana())
		})
	}
}

func TestIsSentenceFinal(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected bool
	}{
		{
			name:     "full stop",
			token:    Token{Surface: "。", PartOfSpeech: "記号", PartOfSpeechDetail: "句点"},
			expected: true,
		},
		{
			name:     "comma",
			token:    Token{Surface: "、", PartOfSpeech: "記号", PartOfSpeechDetail: "読点"},
			expected: true,
		},
		{
			name:     "open bracket",
			token:    Token{Surface: "「", PartOfSpeech: "記号", PartOfSpeechDetail: "括弧開"},
			expected: false,
		},
		{
			name:     "noun tagged 句点 detail is not a symbol",
			token:    Token{Surface: "x", PartOfSpeech: "名詞", PartOfSpeechDetail: "句点"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.IsSentenceFinal())
		})
	}
}

func TestIsHonorific(t *testing.T) {
	markers := DefaultHonorifics()

	tests := []struct {
		name     string
		token    Token
		expected bool
	}{
		{
			name:     "polite copula です",
			token:    Token{Surface: "です", BaseForm: "です", PartOfSpeech: "助動詞"},
			expected: true,
		},
		{
			name:     "conjugated まし resolves through base form",
			token:    Token{Surface: "まし", BaseForm: "ます", PartOfSpeech: "助動詞"},
			expected: true,
		},
		{
			name:     "humble いただく",
			token:    Token{Surface: "いただき", BaseForm: "いただく", PartOfSpeech: "動詞"},
			expected: true,
		},
		{
			name:     "honorific prefix 御",
			token:    Token{Surface: "御社", BaseForm: "御社", PartOfSpeech: "名詞"},
			expected: true,
		},
		{
			name:     "plain noun",
			token:    Token{Surface: "猫", BaseForm: "猫", PartOfSpeech: "名詞"},
			expected: false,
		},
		{
			name:     "お prefix alone is not flagged",
			token:    Token{Surface: "お茶", BaseForm: "お茶", PartOfSpeech: "名詞"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.IsHonorific(markers))
		})
	}
}

func TestTokensLexical(t *testing.T) {
	tokens := Tokens{
		{Surface: "猫", PartOfSpeech: "名詞"},
		{Surface: "。", PartOfSpeech: "記号", PartOfSpeechDetail: "句点"},
		{Surface: "　", PartOfSpeech: "記号", PartOfSpeechDetail: "空白"},
		{Surface: "は", PartOfSpeech: "助詞"},
	}

	lexical := tokens.Lexical()
	assert.Equal(t, []string{"猫", "は"}, lexical.Surfaces())
}
