package kotodama

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrTokenizerUnavailable marks an analysis that failed because no tokenizer
// handle could be obtained. The error chain carries the underlying cause.
var ErrTokenizerUnavailable = errors.New("tokenizer unavailable")

// topParticles is the number of particle surface forms reported.
const topParticles = 10

// Engine computes linguistic feature reports. The zero value is not usable;
// construct with NewEngine.
type Engine struct {
	provider   *Provider
	honorifics []string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithProvider replaces the tokenizer provider (the default is the shared
// process-wide one).
func WithProvider(p *Provider) EngineOption {
	return func(e *Engine) {
		e.provider = p
	}
}

// WithHonorifics replaces the honorific marker set.
func WithHonorifics(markers []string) EngineOption {
	return func(e *Engine) {
		e.honorifics = markers
	}
}

// NewEngine creates an analysis engine backed by the default tokenizer
// provider and the built-in honorific set.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		provider:   DefaultProvider(),
		honorifics: DefaultHonorifics(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ratio is one labeled share of a distribution, formatted to two decimals.
type Ratio struct {
	Label string
	Value string
}

// Report is the full linguistic feature report for one text.
type Report struct {
	TotalChars     int
	TotalSentences int
	TotalMorphemes int

	AverageSentenceLength       string
	AverageMorphemesPerSentence string

	POSRatio      []Ratio // one entry per observed POS tag, first-occurrence order
	ParticleRatio []Ratio // top particle surfaces by count; empty when no particles
	ScriptRatio   []Ratio // observed script categories in fixed category order

	VocabularyDiversity    string // type/token ratio, percent
	KatakanaWordRatio      string // percent
	HonorificFrequency     string // per sentence, not a percent
	PunctuationPerSentence string
}

// Metric is one named report entry in the serialized form consumed by the
// protocol layer.
type Metric struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// Analyze produces the full report for text. If no tokenizer handle can be
// obtained the whole analysis fails with ErrTokenizerUnavailable; partial
// reports are never returned.
func (e *Engine) Analyze(ctx context.Context, text string) (*Report, error) {
	handle, err := e.provider.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenizerUnavailable, err)
	}

	sentences := SplitSentences(text)
	scripts := CountScripts(text)
	tokens := handle.Tokenize(text)

	Logger.Debug().
		Int("sentences", len(sentences)).
		Int("morphemes", len(tokens)).
		Msg("analysis input segmented")

	r := &Report{
		TotalChars:     CountChars(text),
		TotalSentences: len(sentences),
		TotalMorphemes: len(tokens),
	}
	r.AverageSentenceLength = perSentence(r.TotalChars, r.TotalSentences)
	r.AverageMorphemesPerSentence = perSentence(r.TotalMorphemes, r.TotalSentences)
	r.POSRatio = posDistribution(tokens)
	r.ParticleRatio = particleDistribution(tokens)
	r.ScriptRatio = scriptDistribution(scripts)
	r.VocabularyDiversity = percent(distinctBaseForms(tokens), r.TotalMorphemes)

	katakana, honorific, sentenceFinal := 0, 0, 0
	for _, t := range tokens {
		if t.IsKatakana() {
			katakana++
		}
		if t.IsHonorific(e.honorifics) {
			honorific++
		}
		if t.IsSentenceFinal() {
			sentenceFinal++
		}
	}
	r.KatakanaWordRatio = percent(katakana, r.TotalMorphemes)
	r.HonorificFrequency = perSentence(honorific, r.TotalSentences)
	r.PunctuationPerSentence = perSentence(sentenceFinal, r.TotalSentences)

	return r, nil
}

// percent formats part/whole as a percentage with two decimals, "0.00" when
// the whole is zero.
func percent(part, whole int) string {
	if whole == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(part)/float64(whole)*100)
}

// perSentence formats a per-sentence rate with two decimals, "0.00" when
// there are no sentences.
func perSentence(part, sentences int) string {
	if sentences == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(part)/float64(sentences))
}

// posDistribution computes the share of each part-of-speech tag over all
// morphemes, ordered by first occurrence.
func posDistribution(tokens Tokens) []Ratio {
	counts := make(map[string]int)
	var order []string
	for _, t := range tokens {
		if counts[t.PartOfSpeech] == 0 {
			order = append(order, t.PartOfSpeech)
		}
		counts[t.PartOfSpeech]++
	}
	ratios := make([]Ratio, 0, len(order))
	for _, tag := range order {
		ratios = append(ratios, Ratio{Label: tag, Value: percent(counts[tag], len(tokens))})
	}
	return ratios
}

// particleDistribution computes the share of each particle surface form over
// all particles, keeping the top entries by descending count. Ties keep
// first-occurrence order so the output is deterministic.
func particleDistribution(tokens Tokens) []Ratio {
	counts := make(map[string]int)
	var order []string
	total := 0
	for _, t := range tokens {
		if !t.IsParticle() {
			continue
		}
		if counts[t.Surface] == 0 {
			order = append(order, t.Surface)
		}
		counts[t.Surface]++
		total++
	}
	if total == 0 {
		return nil
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topParticles {
		order = order[:topParticles]
	}
	ratios := make([]Ratio, 0, len(order))
	for _, surface := range order {
		ratios = append(ratios, Ratio{Label: surface, Value: percent(counts[surface], total)})
	}
	return ratios
}

// scriptDistribution computes the share of each observed script category in
// fixed category order.
func scriptDistribution(scripts ScriptCounts) []Ratio {
	total := scripts.Total()
	ratios := make([]Ratio, 0, len(scripts))
	for _, s := range scriptOrder {
		if scripts[s] == 0 {
			continue
		}
		ratios = append(ratios, Ratio{Label: s.String(), Value: percent(scripts[s], total)})
	}
	return ratios
}

func distinctBaseForms(tokens Tokens) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t.BaseForm] = struct{}{}
	}
	return len(seen)
}

// Entries returns the report as the fixed list of named metrics.
func (r *Report) Entries() []Metric {
	return []Metric{
		{Name: "total_chars", Value: strconv.Itoa(r.TotalChars), Unit: "chars",
			Description: "Characters excluding whitespace"},
		{Name: "total_sentences", Value: strconv.Itoa(r.TotalSentences), Unit: "sentences",
			Description: "Sentence units split on terminal punctuation"},
		{Name: "total_morphemes", Value: strconv.Itoa(r.TotalMorphemes), Unit: "morphemes",
			Description: "Morphemes produced by the tokenizer"},
		{Name: "average_sentence_length", Value: r.AverageSentenceLength, Unit: "chars/sentence",
			Description: "Characters per sentence"},
		{Name: "average_morphemes_per_sentence", Value: r.AverageMorphemesPerSentence, Unit: "morphemes/sentence",
			Description: "Morphemes per sentence"},
		{Name: "pos_ratio", Value: joinRatios(r.POSRatio), Unit: "%",
			Description: "Part-of-speech distribution over all morphemes"},
		{Name: "particle_ratio", Value: joinRatios(r.ParticleRatio), Unit: "%",
			Description: "Top particle surface forms over all particles"},
		{Name: "script_type_ratio", Value: joinRatios(r.ScriptRatio), Unit: "%",
			Description: "Writing-system distribution over all characters"},
		{Name: "vocabulary_diversity", Value: r.VocabularyDiversity, Unit: "%",
			Description: "Distinct base forms over all morphemes (type/token ratio)"},
		{Name: "katakana_word_ratio", Value: r.KatakanaWordRatio, Unit: "%",
			Description: "Katakana-only morphemes over all morphemes"},
		{Name: "honorific_frequency", Value: r.HonorificFrequency, Unit: "per sentence",
			Description: "Honorific-bearing morphemes per sentence"},
		{Name: "punctuation_per_sentence", Value: r.PunctuationPerSentence, Unit: "per sentence",
			Description: "Sentence punctuation marks per sentence"},
	}
}

func joinRatios(ratios []Ratio) string {
	parts := make([]string, 0, len(ratios))
	for _, r := range ratios {
		parts = append(parts, fmt.Sprintf("%s: %s%%", r.Label, r.Value))
	}
	return strings.Join(parts, ", ")
}

// Format renders the report as the single human-readable text block returned
// by the protocol layer.
func (r *Report) Format() string {
	var b strings.Builder
	b.WriteString("Linguistic analysis report\n")
	b.WriteString("--------------------------\n")
	for _, m := range r.Entries() {
		value := m.Value
		if value == "" {
			value = "(none)"
		}
		fmt.Fprintf(&b, "%s [%s]: %s\n", m.Name, m.Unit, value)
	}
	return b.String()
}
