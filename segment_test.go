package kotodama

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "two japanese sentences",
			text:     "吾輩は猫である。名前はまだ無い。",
			expected: []string{"吾輩は猫である", "名前はまだ無い"},
		},
		{
			name:     "mixed terminators",
			text:     "本当？そうです！Good.",
			expected: []string{"本当", "そうです", "Good"},
		},
		{
			name:     "half-width terminators",
			text:     "Really? Yes! Done.",
			expected: []string{"Really", "Yes", "Done"},
		},
		{
			name:     "no terminator yields whole text",
			text:     "  終わらない文  ",
			expected: []string{"終わらない文"},
		},
		{
			name:     "consecutive terminators produce no empties",
			text:     "え。。。まさか！？",
			expected: []string{"え", "まさか"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			text:     "  \n\t",
			expected: []string{},
		},
		{
			name:     "terminators only",
			text:     "。！？",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSentences(tt.text))
		})
	}
}
