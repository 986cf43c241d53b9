package analysis

import (
	"testing"

	"github.com/halcyon-ventures/deckscout/models"
)

func TestMergeAllNilInputs(t *testing.T) {
	got, err := Merge(nil, nil, nil, "acme.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if got.Filename != "acme.pdf" {
		t.Errorf("Filename = %q, want acme.pdf", got.Filename)
	}
	if got.StartupName != nil {
		t.Errorf("StartupName = %v, want nil", *got.StartupName)
	}
	if got.PitchScore != nil {
		t.Errorf("PitchScore = %v, want nil", *got.PitchScore)
	}
	if got.Market.TAM != nil || got.Market.SAM != nil || got.Market.SOM != nil {
		t.Errorf("Market = %+v, want all nulls", got.Market)
	}
	// List fields default to empty, not null.
	if got.SectionScores == nil || got.RedFlags == nil || got.SuggestedQuestions == nil {
		t.Error("list fields must be empty slices, not nil")
	}
	if got.SummaryInsight != NoSummaryPlaceholder {
		t.Errorf("SummaryInsight = %q, want placeholder", got.SummaryInsight)
	}
}

func TestMergeEmptyExtractionObject(t *testing.T) {
	// An empty object (the model returned {}) behaves like a nil input.
	got, err := Merge(map[string]any{}, nil, nil, "acme.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got.StartupName != nil || got.FoundingYear != nil || got.Founders != nil {
		t.Error("empty extraction must yield null scalar fields")
	}
	if got.Market.TAM != nil || got.Market.SAM != nil || got.Market.SOM != nil {
		t.Errorf("Market = %+v, want all nulls", got.Market)
	}
}

func TestMergeExtractionFields(t *testing.T) {
	extraction := map[string]any{
		"StartupName":  "Acme",
		"FoundingYear": float64(2020),
		"Founders":     []any{"Jane Doe", "John Roe"},
		"Industry":     "Logistics",
		"Market": map[string]any{
			"TAM": "$10B",
			"SAM": nil,
		},
	}

	got, err := Merge(extraction, nil, nil, "acme.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if got.StartupName == nil || *got.StartupName != "Acme" {
		t.Errorf("StartupName = %v, want Acme", got.StartupName)
	}
	// Bare numbers from the model render as strings.
	if got.FoundingYear == nil || *got.FoundingYear != "2020" {
		t.Errorf("FoundingYear = %v, want 2020", got.FoundingYear)
	}
	if len(got.Founders) != 2 || got.Founders[0] != "Jane Doe" {
		t.Errorf("Founders = %v", got.Founders)
	}
	if got.Market.TAM == nil || *got.Market.TAM != "$10B" {
		t.Errorf("Market.TAM = %v, want $10B", got.Market.TAM)
	}
	if got.Market.SAM != nil {
		t.Errorf("Market.SAM = %v, want nil", *got.Market.SAM)
	}
	// Fields the extraction never mentioned stay null.
	if got.USP != nil {
		t.Errorf("USP = %v, want nil", *got.USP)
	}
}

func TestMergeAliasPreference(t *testing.T) {
	// When both key spellings are present, the compact key wins.
	extraction := map[string]any{
		"StartupName":  "Compact",
		"Startup Name": "Spaced",
	}

	got, err := Merge(extraction, nil, nil, "x.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got.StartupName == nil || *got.StartupName != "Compact" {
		t.Errorf("StartupName = %v, want Compact", got.StartupName)
	}
}

func TestMergeSpacedAliasFallback(t *testing.T) {
	extraction := map[string]any{
		"Funding Stage": "Seed",
	}

	got, err := Merge(extraction, nil, nil, "x.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got.FundingStage == nil || *got.FundingStage != "Seed" {
		t.Errorf("FundingStage = %v, want Seed", got.FundingStage)
	}
}

func TestMergeMarketNotAnObject(t *testing.T) {
	extraction := map[string]any{
		"Market": "$10B total",
	}

	got, err := Merge(extraction, nil, nil, "x.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got.Market.TAM != nil || got.Market.SAM != nil || got.Market.SOM != nil {
		t.Errorf("Market = %+v, want all nulls for non-object input", got.Market)
	}
}

func TestMergeScoring(t *testing.T) {
	scoring := map[string]any{
		"sections": []any{
			map[string]any{"name": "Team", "score": float64(10), "comment": "strong"},
			map[string]any{"name": "Problem", "score": float64(5), "reason": "vague"},
		},
		"summary":     "Solid team, fuzzy problem.",
		"total_score": float64(93),
	}

	got, err := Merge(nil, scoring, nil, "x.pdf", []models.RubricSection{
		{Name: "Team", Weight: 50},
		{Name: "Problem", Weight: 50},
	})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if len(got.SectionScores) != 2 {
		t.Fatalf("SectionScores = %v", got.SectionScores)
	}
	// The older "reason" key still populates the comment.
	if got.SectionScores[1].Comment != "vague" {
		t.Errorf("Comment = %q, want vague", got.SectionScores[1].Comment)
	}
	// (10*50 + 5*50) / 10 = 75. The model's own total_score is ignored.
	if got.PitchScore == nil || *got.PitchScore != 75 {
		t.Errorf("PitchScore = %v, want 75", got.PitchScore)
	}
	if got.SummaryInsight != "Solid team, fuzzy problem." {
		t.Errorf("SummaryInsight = %q", got.SummaryInsight)
	}
}

func TestMergeOutOfRangeScoreSurfacedNotClamped(t *testing.T) {
	scoring := map[string]any{
		"sections": []any{
			map[string]any{"name": "Team", "score": float64(15)},
		},
	}

	got, err := Merge(nil, scoring, nil, "x.pdf", DefaultRubric())
	if err == nil {
		t.Fatal("Merge() error = nil, want ScoreRangeError diagnostic")
	}
	if got.PitchScore != nil {
		t.Errorf("PitchScore = %v, want nil", *got.PitchScore)
	}
	// The rest of the record still ships.
	if len(got.SectionScores) != 1 {
		t.Errorf("SectionScores = %v", got.SectionScores)
	}
}

func TestMergeSummaryPrecedence(t *testing.T) {
	scoring := map[string]any{"summary": "from scoring"}
	insight := map[string]any{"SummaryInsight": "from insight"}

	got, err := Merge(nil, scoring, insight, "x.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got.SummaryInsight != "from scoring" {
		t.Errorf("SummaryInsight = %q, want scoring to win", got.SummaryInsight)
	}

	got, err = Merge(nil, nil, insight, "x.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got.SummaryInsight != "from insight" {
		t.Errorf("SummaryInsight = %q, want insight fallback", got.SummaryInsight)
	}
}

func TestMergeInsightLists(t *testing.T) {
	insight := map[string]any{
		"RedFlags":           []any{"No revenue since 2019"},
		"SuggestedQuestions": []any{"What is your churn?", "Who owns the IP?"},
	}

	got, err := Merge(nil, nil, insight, "x.pdf", DefaultRubric())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if len(got.RedFlags) != 1 || got.RedFlags[0] != "No revenue since 2019" {
		t.Errorf("RedFlags = %v", got.RedFlags)
	}
	if len(got.SuggestedQuestions) != 2 {
		t.Errorf("SuggestedQuestions = %v", got.SuggestedQuestions)
	}
}

func TestMergeKeySlides(t *testing.T) {
	located := map[string]any{
		"TeamPage":     float64(2),
		"MarketPage":   float64(99),
		"TractionPage": nil,
	}

	got := MergeKeySlides(located, 12)
	if got.TeamPage == nil || *got.TeamPage != 2 {
		t.Errorf("TeamPage = %v, want 2", got.TeamPage)
	}
	// Out-of-range pages are dropped.
	if got.MarketPage != nil {
		t.Errorf("MarketPage = %v, want nil", *got.MarketPage)
	}
	if got.TractionPage != nil {
		t.Errorf("TractionPage = %v, want nil", *got.TractionPage)
	}
}

func TestMergeKeySlidesNil(t *testing.T) {
	got := MergeKeySlides(nil, 10)
	if got.TeamPage != nil || got.MarketPage != nil || got.TractionPage != nil {
		t.Errorf("MergeKeySlides(nil) = %+v, want all nulls", got)
	}
}
