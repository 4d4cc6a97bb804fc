package kotodama

import (
	"unicode"
)

// Script identifies the writing system of a single character.
type Script int

const (
	ScriptHiragana Script = iota
	ScriptKatakana
	ScriptKanji
	ScriptLatin
	ScriptDigit
	ScriptOther
)

// String provides human-readable script names, used as report labels.
func (s Script) String() string {
	return map[Script]string{
		ScriptHiragana: "hiragana",
		ScriptKatakana: "katakana",
		ScriptKanji:    "kanji",
		ScriptLatin:    "alphabet",
		ScriptDigit:    "digit",
		ScriptOther:    "other",
	}[s]
}

// scriptOrder is the fixed category order used when reporting distributions.
var scriptOrder = []Script{
	ScriptHiragana,
	ScriptKatakana,
	ScriptKanji,
	ScriptLatin,
	ScriptDigit,
	ScriptOther,
}

type scriptRange struct {
	lo, hi rune
	script Script
}

// scriptRanges is checked in priority order; the first matching range wins.
var scriptRanges = []scriptRange{
	{0x3040, 0x309F, ScriptHiragana},
	{0x30A0, 0x30FF, ScriptKatakana},
	{0x4E00, 0x9FFF, ScriptKanji},
	{'A', 'Z', ScriptLatin},
	{'a', 'z', ScriptLatin},
	{'0', '9', ScriptDigit},
	{0xFF10, 0xFF19, ScriptDigit}, // full-width digits
}

// ClassifyRune returns the script category of a single rune.
// Whitespace handling is the caller's concern; CountScripts skips it.
func ClassifyRune(r rune) Script {
	for _, sr := range scriptRanges {
		if r >= sr.lo && r <= sr.hi {
			return sr.script
		}
	}
	return ScriptOther
}

// ScriptCounts maps script categories to character counts over a text's
// non-whitespace characters. The counts always sum to the non-whitespace
// character count of the source text.
type ScriptCounts map[Script]int

// Total returns the sum of all category counts.
func (sc ScriptCounts) Total() int {
	n := 0
	for _, c := range sc {
		n += c
	}
	return n
}

// CountScripts tallies the script category of every non-whitespace character.
func CountScripts(text string) ScriptCounts {
	counts := make(ScriptCounts)
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		counts[ClassifyRune(r)]++
	}
	return counts
}
