package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halcyon-ventures/deckscout/models"
)

// Prompt revisions have used two naming conventions for the same semantic
// fields: a compact camel-style key and a spaced human-readable key. The
// alias table maps each canonical field to its accepted source keys in
// preference order; resolution is total, so a missing field yields null
// rather than an error.
var fieldAliases = map[string][]string{
	"startup_name":        {"StartupName", "Startup Name"},
	"founding_year":       {"FoundingYear", "Founding Year"},
	"founders":            {"Founders"},
	"industry":            {"Industry"},
	"niche":               {"Niche"},
	"usp":                 {"USP"},
	"funding_stage":       {"FundingStage", "Funding Stage"},
	"current_revenue":     {"CurrentRevenue", "Current Revenue"},
	"market":              {"Market"},
	"amount_raised":       {"AmountRaised", "Amount Raised"},
	"red_flags":           {"RedFlags", "Red Flags"},
	"suggested_questions": {"SuggestedQuestions", "Suggested Questions"},
	"summary_insight":     {"SummaryInsight", "Summary Insight"},
	"sections":            {"sections", "Sections"},
	"summary":             {"summary", "Summary"},
	"tam":                 {"TAM", "tam"},
	"sam":                 {"SAM", "sam"},
	"som":                 {"SOM", "som"},
	"team_page":           {"TeamPage"},
	"market_page":         {"MarketPage"},
	"traction_page":       {"TractionPage"},
}

// resolve returns the first present, non-null value among the canonical
// field's accepted source keys.
func resolve(m map[string]any, canonical string) (any, bool) {
	for _, key := range fieldAliases[canonical] {
		if v, ok := m[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringField resolves a nullable scalar. Numbers are rendered as strings
// since the prompts describe every scalar as string-or-null but models
// occasionally return bare numbers for years and amounts.
func stringField(m map[string]any, canonical string) *string {
	v, ok := resolve(m, canonical)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case string:
		return &val
	case float64:
		s := strconv.FormatFloat(val, 'f', -1, 64)
		return &s
	default:
		return nil
	}
}

// stringList resolves a list of strings; non-string elements are rendered
// with fmt to keep the list total.
func stringList(m map[string]any, canonical string) []string {
	v, ok := resolve(m, canonical)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		} else if item != nil {
			out = append(out, fmt.Sprintf("%v", item))
		}
	}
	return out
}

// intField resolves a nullable integer, tolerating float64 (the JSON
// default) and numeric strings.
func intField(m map[string]any, canonical string) *int {
	v, ok := resolve(m, canonical)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case float64:
		n := int(val)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return &n
		}
	}
	return nil
}

// marketField normalizes the market sub-object to exactly three keys. If
// the value is absent or not an object at all, every sub-key is null.
func marketField(m map[string]any) models.MarketSize {
	v, ok := resolve(m, "market")
	if !ok {
		return models.MarketSize{}
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return models.MarketSize{}
	}
	return models.MarketSize{
		TAM: stringField(sub, "tam"),
		SAM: stringField(sub, "sam"),
		SOM: stringField(sub, "som"),
	}
}

// sectionScores extracts per-section rubric scores from the scoring
// template's output. Both "comment" and the older "reason" key are
// accepted for the per-section remark.
func sectionScores(m map[string]any) []models.SectionScore {
	v, ok := resolve(m, "sections")
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	scores := make([]models.SectionScore, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var score models.SectionScore
		if name, ok := entry["name"].(string); ok {
			score.Name = name
		}
		if val, ok := entry["score"].(float64); ok {
			score.Score = val
		}
		if comment, ok := entry["comment"].(string); ok {
			score.Comment = comment
		} else if reason, ok := entry["reason"].(string); ok {
			score.Comment = reason
		}
		scores = append(scores, score)
	}
	return scores
}
