package prompt

import (
	"strings"
	"testing"

	"github.com/halcyon-ventures/deckscout/models"
)

var testModels = ModelSet{
	Extraction: "model-a",
	Scoring:    "model-b",
	Insight:    "model-a",
}

func TestBuildDeterministic(t *testing.T) {
	deckText := "----- Slide 1 -----\nAcme Inc.\n"
	for _, kind := range []Kind{Extraction, Scoring, Insight} {
		a := Build(kind, deckText)
		b := Build(kind, deckText)
		if a != b {
			t.Errorf("Build(%s) is not deterministic", kind)
		}
	}
}

func TestBuildEmbedsDeckText(t *testing.T) {
	deckText := "----- Slide 1 -----\nUnmistakable marker text.\n"
	for _, kind := range []Kind{Extraction, Scoring, Insight} {
		built := Build(kind, deckText)
		if !strings.Contains(built, "Unmistakable marker text.") {
			t.Errorf("Build(%s) does not embed the deck text", kind)
		}
	}
}

func TestBuildExtractionShape(t *testing.T) {
	built := Build(Extraction, "deck text here")

	// The few-shot examples precede the live instance.
	if !strings.Contains(built, "Yabscore") || !strings.Contains(built, "Quidax") {
		t.Error("extraction prompt is missing its worked examples")
	}
	if !strings.HasSuffix(built, extractionSuffix) {
		t.Errorf("extraction prompt must end with the output instruction, got %q", built[len(built)-40:])
	}
	if strings.Index(built, "Yabscore") > strings.Index(built, "deck text here") {
		t.Error("worked examples must come before the live deck")
	}
}

func TestBuildScoringShape(t *testing.T) {
	built := Build(Scoring, "deck text here")
	for _, section := range []string{"Team", "Problem", "Solution", "Traction", "Competition"} {
		if !strings.Contains(built, section) {
			t.Errorf("scoring prompt is missing rubric section %q", section)
		}
	}
	if !strings.HasSuffix(built, scoringSuffix) {
		t.Error("scoring prompt must end with the output instruction")
	}
}

func TestBuildInsightShape(t *testing.T) {
	built := Build(Insight, "deck text here")
	for _, part := range []string{"Red Flags", "Suggested Questions", "Summary Insight"} {
		if !strings.Contains(built, part) {
			t.Errorf("insight prompt is missing %q", part)
		}
	}
}

func TestConfigPerKind(t *testing.T) {
	tests := []struct {
		kind      Kind
		model     string
		temp      float64
		maxTokens int64
	}{
		{Extraction, "model-a", 0.0, 800},
		{Scoring, "model-b", 0.0, 1000},
		{Insight, "model-a", 0.2, 800},
		{KeySlides, "model-a", 0.0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			cfg := Config(tt.kind, testModels)
			if cfg.Model != tt.model {
				t.Errorf("Model = %q, want %q", cfg.Model, tt.model)
			}
			if cfg.Temperature != tt.temp {
				t.Errorf("Temperature = %v, want %v", cfg.Temperature, tt.temp)
			}
			if cfg.MaxTokens != tt.maxTokens {
				t.Errorf("MaxTokens = %d, want %d", cfg.MaxTokens, tt.maxTokens)
			}
		})
	}
}

func TestBuildKeySlidesSnippets(t *testing.T) {
	long := strings.Repeat("traction ", 100)
	slides := []models.Slide{
		{Number: 1, Text: "Our\nteam"},
		{Number: 2, Text: long},
	}

	built := BuildKeySlides(slides)

	if !strings.Contains(built, "Page 1:") || !strings.Contains(built, "Page 2:") {
		t.Error("key-slides prompt is missing page labels")
	}
	// Newlines are flattened in snippets.
	if !strings.Contains(built, "Our team") {
		t.Error("snippet newlines were not flattened")
	}
	if strings.Contains(built, long) {
		t.Error("snippet was not capped at 200 characters")
	}
}
