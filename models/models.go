package models

import (
	"fmt"
	"strings"
	"time"
)

// DeckData is the raw bytes of a pitch deck PDF.
type DeckData []byte

// Slide is the extracted plain text of a single deck page.
type Slide struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// SlideDeck is the ordered slide text of one pitch deck. Immutable once
// extracted; one SlideDeck maps to one DeckAnalysis.
type SlideDeck struct {
	Filename string  `json:"filename"`
	Slides   []Slide `json:"slides"`
}

// Text concatenates all slides into the delimited form the prompt templates
// expect: "----- Slide {n} -----\n{text}\n" per slide, newline-joined.
func (d SlideDeck) Text() string {
	parts := make([]string, 0, len(d.Slides))
	for _, s := range d.Slides {
		parts = append(parts, fmt.Sprintf("----- Slide %d -----\n%s\n", s.Number, s.Text))
	}
	return strings.Join(parts, "\n")
}

// MarketSize holds the three nested market estimates as opaque strings.
// Always carries exactly these three keys; absent values are null.
type MarketSize struct {
	TAM *string `json:"tam"`
	SAM *string `json:"sam"`
	SOM *string `json:"som"`
}

// SectionScore is one rubric section as scored by the model.
type SectionScore struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

// RubricSection is one weighted section of the scoring rubric. Weights are
// integers summing to 100 across the rubric. Aliases are informational only.
type RubricSection struct {
	Name    string   `json:"name" yaml:"name"`
	Weight  int      `json:"weight" yaml:"weight"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// DeckAnalysis is the composite record produced for one deck once all three
// model calls have completed or failed. Scalar fields are nullable; it is
// never partially written and never mutated after merge.
type DeckAnalysis struct {
	Filename           string         `json:"filename"`
	StartupName        *string        `json:"startup_name"`
	FoundingYear       *string        `json:"founding_year"`
	Founders           []string       `json:"founders"`
	Industry           *string        `json:"industry"`
	Niche              *string        `json:"niche"`
	USP                *string        `json:"usp"`
	FundingStage       *string        `json:"funding_stage"`
	CurrentRevenue     *string        `json:"current_revenue"`
	Market             MarketSize     `json:"market"`
	AmountRaised       *string        `json:"amount_raised"`
	SectionScores      []SectionScore `json:"section_scores"`
	PitchScore         *int           `json:"pitch_score"`
	RedFlags           []string       `json:"red_flags"`
	SuggestedQuestions []string       `json:"suggested_questions"`
	SummaryInsight     string         `json:"summary_insight"`
}

// KeySlides locates the Team, Market and Traction slides within a deck.
// Page numbers are 1-indexed; nil means the model could not find the slide.
type KeySlides struct {
	TeamPage     *int `json:"team_page"`
	MarketPage   *int `json:"market_page"`
	TractionPage *int `json:"traction_page"`
}

// SourceInfo describes where a deck came from.
type SourceInfo struct {
	Path string `json:"path,omitempty"`
	URL  string `json:"url,omitempty"`
}

// DeckInfo is the library listing entry for a stored deck.
type DeckInfo struct {
	DeckID       string    `json:"deck_id"`
	Filename     string    `json:"filename"`
	StartupName  *string   `json:"startup_name"`
	Industry     *string   `json:"industry"`
	FundingStage *string   `json:"funding_stage"`
	FoundingYear *string   `json:"founding_year"`
	PitchScore   *int      `json:"pitch_score"`
	SlideCount   int       `json:"slide_count"`
	CreatedAt    time.Time `json:"created_at"`
}
