package analysis

import (
	"errors"
	"testing"

	"github.com/halcyon-ventures/deckscout/models"
)

func TestDefaultRubricValid(t *testing.T) {
	if err := ValidateRubric(DefaultRubric()); err != nil {
		t.Fatalf("ValidateRubric(DefaultRubric()) = %v", err)
	}
}

func TestValidateRubricRejects(t *testing.T) {
	tests := []struct {
		name   string
		rubric []models.RubricSection
	}{
		{"empty", nil},
		{"bad sum", []models.RubricSection{{Name: "Team", Weight: 50}}},
		{"negative weight", []models.RubricSection{
			{Name: "Team", Weight: 150},
			{Name: "Problem", Weight: -50},
		}},
		{"duplicate names", []models.RubricSection{
			{Name: "Team", Weight: 50},
			{Name: "team", Weight: 50},
		}},
		{"empty name", []models.RubricSection{{Name: "", Weight: 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateRubric(tt.rubric); err == nil {
				t.Error("ValidateRubric() = nil, want error")
			}
		})
	}
}

func TestScoreWeighted(t *testing.T) {
	rubric := []models.RubricSection{
		{Name: "A", Weight: 15},
		{Name: "B", Weight: 85},
	}
	sections := []models.SectionScore{
		{Name: "A", Score: 10},
		{Name: "B", Score: 0},
	}

	got, err := Score(sections, rubric)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != 15 {
		t.Errorf("Score() = %d, want 15", got)
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	rubric := DefaultRubric()
	sections := []models.SectionScore{
		{Name: "Team", Score: 8},
		{Name: "Problem", Score: 7},
		{Name: "Traction", Score: 5},
	}
	reversed := []models.SectionScore{sections[2], sections[1], sections[0]}

	a, err := Score(sections, rubric)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	b, err := Score(reversed, rubric)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if a != b {
		t.Errorf("Score() order-dependent: %d vs %d", a, b)
	}
}

func TestScorePerfectDeck(t *testing.T) {
	rubric := DefaultRubric()
	var sections []models.SectionScore
	for _, entry := range rubric {
		sections = append(sections, models.SectionScore{Name: entry.Name, Score: 10})
	}

	got, err := Score(sections, rubric)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != 100 {
		t.Errorf("Score() = %d, want 100", got)
	}
}

func TestScoreCaseInsensitiveNames(t *testing.T) {
	rubric := []models.RubricSection{
		{Name: "Team", Weight: 100},
	}
	sections := []models.SectionScore{{Name: "  team ", Score: 10}}

	got, err := Score(sections, rubric)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != 100 {
		t.Errorf("Score() = %d, want 100", got)
	}
}

func TestScoreUnmatchedSectionIgnored(t *testing.T) {
	rubric := []models.RubricSection{{Name: "Team", Weight: 100}}
	sections := []models.SectionScore{
		{Name: "Team", Score: 5},
		{Name: "Design", Score: 9},
	}

	got, err := Score(sections, rubric)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != 50 {
		t.Errorf("Score() = %d, want 50", got)
	}
}

func TestScoreOutOfRange(t *testing.T) {
	rubric := DefaultRubric()

	tests := []struct {
		name     string
		sections []models.SectionScore
	}{
		{"above ten", []models.SectionScore{{Name: "Team", Score: 11}}},
		{"negative", []models.SectionScore{{Name: "Team", Score: -1}}},
		// Out-of-range scores fail even when the name matches no rubric entry.
		{"unmatched out of range", []models.SectionScore{{Name: "Design", Score: 42}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(tt.sections, rubric)
			var rangeErr *ScoreRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Score() error = %v, want *ScoreRangeError", err)
			}
		})
	}
}

func TestScoreEmptySections(t *testing.T) {
	got, err := Score(nil, DefaultRubric())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Score() = %d, want 0", got)
	}
}
