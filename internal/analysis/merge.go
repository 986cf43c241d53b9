package analysis

import (
	"strings"

	"github.com/halcyon-ventures/deckscout/models"
)

// NoSummaryPlaceholder is used when neither template produced a summary.
const NoSummaryPlaceholder = "No summary insight available."

// Merge combines the three normalized template outputs into one
// DeckAnalysis. Any input may be nil (its model call failed or was
// unparseable); the corresponding fields degrade to null/empty defaults and
// the merge never fails. The returned error is diagnostic only: a
// ScoreRangeError from the rubric scorer, reported alongside a complete
// record whose pitch_score is null.
func Merge(extraction, scoring, insight map[string]any, filename string, rubric []models.RubricSection) (models.DeckAnalysis, error) {
	result := models.DeckAnalysis{
		Filename:           filename,
		SectionScores:      []models.SectionScore{},
		RedFlags:           []string{},
		SuggestedQuestions: []string{},
	}

	if extraction != nil {
		result.StartupName = stringField(extraction, "startup_name")
		result.FoundingYear = stringField(extraction, "founding_year")
		result.Founders = stringList(extraction, "founders")
		result.Industry = stringField(extraction, "industry")
		result.Niche = stringField(extraction, "niche")
		result.USP = stringField(extraction, "usp")
		result.FundingStage = stringField(extraction, "funding_stage")
		result.CurrentRevenue = stringField(extraction, "current_revenue")
		result.Market = marketField(extraction)
		result.AmountRaised = stringField(extraction, "amount_raised")
	}

	var scoreErr error
	if scoring != nil {
		if sections := sectionScores(scoring); sections != nil {
			result.SectionScores = sections
			total, err := Score(sections, rubric)
			if err != nil {
				// Out-of-range input: pitch_score stays null, never clamped.
				scoreErr = err
			} else {
				result.PitchScore = &total
			}
		}
	}

	if insight != nil {
		if flags := stringList(insight, "red_flags"); flags != nil {
			result.RedFlags = flags
		}
		if questions := stringList(insight, "suggested_questions"); questions != nil {
			result.SuggestedQuestions = questions
		}
	}

	// Explicit precedence chain, not a merge of partial text: the scoring
	// template's summary wins, then the insight template's, then the
	// placeholder.
	structured := trimmedString(scoring, "summary")
	fallback := trimmedString(insight, "summary_insight")
	switch {
	case structured != "":
		result.SummaryInsight = structured
	case fallback != "":
		result.SummaryInsight = fallback
	default:
		result.SummaryInsight = NoSummaryPlaceholder
	}

	return result, scoreErr
}

// MergeKeySlides normalizes the slide-locator output, dropping page numbers
// outside the deck's page range.
func MergeKeySlides(located map[string]any, pageCount int) models.KeySlides {
	valid := func(p *int) *int {
		if p == nil || *p < 1 || *p > pageCount {
			return nil
		}
		return p
	}
	if located == nil {
		return models.KeySlides{}
	}
	return models.KeySlides{
		TeamPage:     valid(intField(located, "team_page")),
		MarketPage:   valid(intField(located, "market_page")),
		TractionPage: valid(intField(located, "traction_page")),
	}
}

func trimmedString(m map[string]any, canonical string) string {
	if m == nil {
		return ""
	}
	if s := stringField(m, canonical); s != nil {
		return strings.TrimSpace(*s)
	}
	return ""
}
