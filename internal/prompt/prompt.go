// Package prompt builds the few-shot prompts sent to the model. Each
// template kind carries a fixed preamble, hardcoded worked examples and a
// slot for the live deck's slide text; building is pure and deterministic.
package prompt

import (
	"fmt"
	"strings"

	"github.com/halcyon-ventures/deckscout/models"
)

// Kind selects one of the fixed prompt templates.
type Kind int

const (
	// Extraction pulls the ten structured entity fields out of a deck.
	Extraction Kind = iota
	// Scoring rates the deck against the ten-section rubric.
	Scoring
	// Insight produces red flags, suggested questions and a summary.
	Insight
	// KeySlides locates the Team, Market and Traction slides.
	KeySlides
)

func (k Kind) String() string {
	switch k {
	case Extraction:
		return "extraction"
	case Scoring:
		return "scoring"
	case Insight:
		return "insight"
	case KeySlides:
		return "key-slides"
	default:
		return "unknown"
	}
}

// DecodingConfig is the fixed decoding setup for one template kind.
type DecodingConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int64
}

// ModelSet names the models used per template. The scoring template
// historically ran on a stronger model than the other two.
type ModelSet struct {
	Extraction string
	Scoring    string
	Insight    string
}

// Config returns the decoding parameters for a template kind. Extraction and
// scoring run at temperature 0 for deterministic output; insight allows mild
// variability.
func Config(kind Kind, m ModelSet) DecodingConfig {
	switch kind {
	case Scoring:
		return DecodingConfig{Model: m.Scoring, Temperature: 0.0, MaxTokens: 1000}
	case Insight:
		return DecodingConfig{Model: m.Insight, Temperature: 0.2, MaxTokens: 800}
	case KeySlides:
		return DecodingConfig{Model: m.Extraction, Temperature: 0.0, MaxTokens: 200}
	default:
		return DecodingConfig{Model: m.Extraction, Temperature: 0.0, MaxTokens: 800}
	}
}

// Build assembles the full prompt string for a deck: preamble, serialized
// examples, the live deck text and the output-instruction suffix. No
// truncation happens here; token limits are the invoker's concern.
//
// Known hazard: deck text containing the example delimiter strings can
// confuse the model about where the live instance starts. This is not
// detected or repaired.
func Build(kind Kind, deckText string) string {
	switch kind {
	case Scoring:
		return scoringPreamble + deckText + scoringSuffix
	case Insight:
		return insightPreamble + strings.TrimSpace(deckText) + insightSuffix
	default:
		return extractionPreamble + deckText + extractionSuffix
	}
}

// BuildKeySlides builds the slide-locator prompt from individual slides,
// including a short snippet of each so the whole deck fits in a small
// context. Snippets are capped at 200 characters with newlines flattened.
func BuildKeySlides(slides []models.Slide) string {
	var b strings.Builder
	b.WriteString(keySlidesPreamble)
	for _, s := range slides {
		snippet := strings.ReplaceAll(strings.TrimSpace(s.Text), "\n", " ")
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		fmt.Fprintf(&b, "---\nPage %d:\n%s\n", s.Number, snippet)
	}
	b.WriteString(keySlidesSuffix)
	return b.String()
}
