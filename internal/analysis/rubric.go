package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/halcyon-ventures/deckscout/models"
)

// Rubric weights are integers summing to 100. A section score in [0,10]
// multiplied by its weight and divided by 10 therefore lands on a 0-100
// scale (10 x 100 / 10 = 100 at the maximum).
const rubricWeightTotal = 100

// ScoreRangeError indicates a section score or the normalized total outside
// its contractual range. This points at a rubric misconfiguration or a
// model returning out-of-range values; it must surface, never be clamped.
type ScoreRangeError struct {
	Section string
	Value   float64
}

func (e *ScoreRangeError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("section %q score %v is outside [0,10]", e.Section, e.Value)
	}
	return fmt.Sprintf("normalized total %v is outside [0,100]", e.Value)
}

// DefaultRubric is the built-in ten-section scoring rubric. Aliases are
// informational only and never matched at runtime.
func DefaultRubric() []models.RubricSection {
	return []models.RubricSection{
		{Name: "Team", Weight: 15, Aliases: []string{"team", "leadership", "founders"}},
		{Name: "Problem", Weight: 10, Aliases: []string{"problem", "pain point"}},
		{Name: "Solution", Weight: 10, Aliases: []string{"solution", "product", "offering"}},
		{Name: "Revenue Model", Weight: 10, Aliases: []string{"revenue", "monetization", "how we make money"}},
		{Name: "Market Size", Weight: 10, Aliases: []string{"market", "tam", "sam", "som"}},
		{Name: "Traction", Weight: 10, Aliases: []string{"traction", "metrics", "growth"}},
		{Name: "Go-to-Market", Weight: 10, Aliases: []string{"go-to-market", "gtm", "sales", "acquisition"}},
		{Name: "Competition", Weight: 10, Aliases: []string{"competition", "competitive", "landscape"}},
		{Name: "Business Model Fit", Weight: 10, Aliases: []string{"business model", "scaling", "product-market fit"}},
		{Name: "Ask & Use of Funds", Weight: 5, Aliases: []string{"ask", "funds", "use of proceeds"}},
	}
}

// ValidateRubric checks that weights are non-negative integers summing to
// exactly 100 and that section names are unique.
func ValidateRubric(rubric []models.RubricSection) error {
	if len(rubric) == 0 {
		return fmt.Errorf("rubric has no sections")
	}
	seen := make(map[string]bool, len(rubric))
	total := 0
	for _, section := range rubric {
		if section.Name == "" {
			return fmt.Errorf("rubric section with empty name")
		}
		key := sectionKey(section.Name)
		if seen[key] {
			return fmt.Errorf("duplicate rubric section %q", section.Name)
		}
		seen[key] = true
		if section.Weight < 0 {
			return fmt.Errorf("rubric section %q has negative weight %d", section.Name, section.Weight)
		}
		total += section.Weight
	}
	if total != rubricWeightTotal {
		return fmt.Errorf("rubric weights sum to %d, expected %d", total, rubricWeightTotal)
	}
	return nil
}

// Score computes the deterministic weighted pitch score on a 0-100 scale.
// Section scores whose names match no rubric entry contribute nothing; a
// matched-but-missing rubric section contributes zero. Order of the input
// sections does not affect the result.
func Score(sections []models.SectionScore, rubric []models.RubricSection) (int, error) {
	weights := make(map[string]int, len(rubric))
	for _, entry := range rubric {
		weights[sectionKey(entry.Name)] = entry.Weight
	}

	// Range-check every input before accumulating so an out-of-range score
	// fails the computation even when its name matches no rubric entry.
	for _, section := range sections {
		if section.Score < 0 || section.Score > 10 {
			return 0, &ScoreRangeError{Section: section.Name, Value: section.Score}
		}
	}

	var sum float64
	for _, section := range sections {
		weight, ok := weights[sectionKey(section.Name)]
		if !ok {
			continue
		}
		sum += section.Score * float64(weight)
	}

	normalized := sum / 10
	total := int(math.Round(normalized))
	if total < 0 || total > 100 {
		return 0, &ScoreRangeError{Value: normalized}
	}
	return total, nil
}

func sectionKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
