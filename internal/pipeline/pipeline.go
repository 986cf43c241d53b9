// Package pipeline orchestrates deck analysis end to end: fetch, slide
// extraction, the three model calls, normalization, merge and storage.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/halcyon-ventures/deckscout/internal/analysis"
	"github.com/halcyon-ventures/deckscout/internal/documents"
	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/pdf"
	"github.com/halcyon-ventures/deckscout/internal/prompt"
	"github.com/halcyon-ventures/deckscout/internal/storage"
	"github.com/halcyon-ventures/deckscout/models"
)

// Completer is the model invocation dependency, satisfied by llm.Client and
// by stubs in tests.
type Completer interface {
	Complete(ctx context.Context, promptText string, cfg prompt.DecodingConfig) (string, error)
}

// Analyzer runs the analysis pipeline for single decks or batches.
type Analyzer struct {
	llm    Completer
	store  storage.Store
	models prompt.ModelSet
	rubric []models.RubricSection
	log    logger.Logger
}

// New creates an Analyzer. The rubric must already be validated.
func New(llm Completer, store storage.Store, modelSet prompt.ModelSet, rubric []models.RubricSection, log logger.Logger) *Analyzer {
	return &Analyzer{
		llm:    llm,
		store:  store,
		models: modelSet,
		rubric: rubric,
		log:    log,
	}
}

// GetOrAnalyzeDeck returns the stored analysis for a deck when its content
// hash is already cached, otherwise runs the full pipeline and stores the
// result. The deck ID is derived from the document bytes, so renaming a file
// still hits the cache.
func (a *Analyzer) GetOrAnalyzeDeck(ctx context.Context, source models.SourceInfo, filename string) (string, *models.DeckAnalysis, error) {
	data, err := documents.GetData(ctx, source)
	if err != nil {
		return "", nil, err
	}
	if filename == "" {
		filename = sourceFilename(source)
	}
	return a.AnalyzeData(ctx, data, filename)
}

// AnalyzeData analyzes raw deck bytes, consulting the cache first.
func (a *Analyzer) AnalyzeData(ctx context.Context, data models.DeckData, filename string) (string, *models.DeckAnalysis, error) {
	deckID := storage.GenerateDeckID(data)

	exists, err := a.store.DeckExists(ctx, deckID)
	if err != nil {
		return "", nil, fmt.Errorf("check cache for %s: %w", filename, err)
	}
	if exists {
		a.log.Info("Cache hit for %s (deck %s)", filename, shortID(deckID))
		cached, err := a.store.GetAnalysis(ctx, deckID)
		if err != nil {
			return "", nil, err
		}
		return deckID, cached, nil
	}

	deck, err := pdf.ExtractSlides(data, filename)
	if err != nil {
		return "", nil, err
	}
	a.log.Info("Extracted %d slides from %s", len(deck.Slides), filename)

	result, err := a.analyzeDeck(ctx, deck)
	if err != nil {
		return "", nil, err
	}

	// A cancelled document must never leave a partial record behind.
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	if err := a.store.StoreAnalysis(ctx, deckID, deck, result); err != nil {
		return "", nil, fmt.Errorf("store analysis for %s: %w", filename, err)
	}
	a.log.Info("Stored analysis for %s (deck %s)", filename, shortID(deckID))

	return deckID, result, nil
}

// analyzeDeck runs the three template calls and merges their outputs. A
// failed or unparseable call degrades its own fields to defaults; the
// document only aborts on context cancellation.
func (a *Analyzer) analyzeDeck(ctx context.Context, deck models.SlideDeck) (*models.DeckAnalysis, error) {
	deckText := deck.Text()

	extraction, err := a.callTemplate(ctx, prompt.Extraction, deckText)
	if err != nil {
		return nil, err
	}
	scoring, err := a.callTemplate(ctx, prompt.Scoring, deckText)
	if err != nil {
		return nil, err
	}
	insight, err := a.callTemplate(ctx, prompt.Insight, deckText)
	if err != nil {
		return nil, err
	}

	merged, scoreErr := analysis.Merge(extraction, scoring, insight, deck.Filename, a.rubric)
	if scoreErr != nil {
		a.log.Warn("Pitch score unavailable for %s: %v", deck.Filename, scoreErr)
	}
	return &merged, nil
}

// callTemplate invokes one template and normalizes its output. Upstream and
// parse failures are contained: the template's contribution becomes nil and
// the document continues. Context cancellation is the only fatal outcome.
func (a *Analyzer) callTemplate(ctx context.Context, kind prompt.Kind, deckText string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	promptText := prompt.Build(kind, deckText)
	cfg := prompt.Config(kind, a.models)

	raw, err := a.llm.Complete(ctx, promptText, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.log.Warn("%s call failed, fields degrade to defaults: %v", kind, err)
		return nil, nil
	}

	obj, err := analysis.Normalize(raw)
	if err != nil {
		a.log.Warn("%s response unparseable, fields degrade to defaults: %v", kind, err)
		return nil, nil
	}
	return obj, nil
}

// KeySlides locates the Team, Market and Traction slides of a stored deck
// with a small dedicated model call.
func (a *Analyzer) KeySlides(ctx context.Context, deckID string) (models.KeySlides, error) {
	slides, err := a.store.GetSlides(ctx, deckID)
	if err != nil {
		return models.KeySlides{}, err
	}

	promptText := prompt.BuildKeySlides(slides)
	cfg := prompt.Config(prompt.KeySlides, a.models)

	raw, err := a.llm.Complete(ctx, promptText, cfg)
	if err != nil {
		return models.KeySlides{}, err
	}
	located, err := analysis.Normalize(raw)
	if err != nil {
		return models.KeySlides{}, err
	}

	pageCount := 0
	for _, s := range slides {
		if s.Number > pageCount {
			pageCount = s.Number
		}
	}
	return analysis.MergeKeySlides(located, pageCount), nil
}

func sourceFilename(source models.SourceInfo) string {
	if source.Path != "" {
		return filepath.Base(source.Path)
	}
	if source.URL != "" {
		return filepath.Base(source.URL)
	}
	return "deck.pdf"
}

func shortID(deckID string) string {
	if len(deckID) > 12 {
		return deckID[:12]
	}
	return deckID
}
