package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/halcyon-ventures/deckscout/models"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	decks   map[string]*memoryEntry
	ordinal int
}

type memoryEntry struct {
	deck      models.SlideDeck
	analysis  models.DeckAnalysis
	createdAt time.Time
	ordinal   int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{decks: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) DeckExists(ctx context.Context, deckID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.decks[deckID]
	return ok, nil
}

func (s *MemoryStore) StoreAnalysis(ctx context.Context, deckID string, deck models.SlideDeck, analysis *models.DeckAnalysis) error {
	if analysis == nil {
		return fmt.Errorf("nil analysis for deck %s", deckID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ordinal++
	s.decks[deckID] = &memoryEntry{
		deck:      deck,
		analysis:  *analysis,
		createdAt: time.Now(),
		ordinal:   s.ordinal,
	}
	return nil
}

func (s *MemoryStore) GetAnalysis(ctx context.Context, deckID string) (*models.DeckAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.decks[deckID]
	if !ok {
		return nil, fmt.Errorf("deck not found: %s", deckID)
	}
	analysis := entry.analysis
	return &analysis, nil
}

func (s *MemoryStore) GetSlides(ctx context.Context, deckID string) ([]models.Slide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.decks[deckID]
	if !ok {
		return nil, fmt.Errorf("deck not found: %s", deckID)
	}
	slides := make([]models.Slide, len(entry.deck.Slides))
	copy(slides, entry.deck.Slides)
	return slides, nil
}

func (s *MemoryStore) ListDecks(ctx context.Context) ([]models.DeckInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	infos := make([]models.DeckInfo, 0, len(s.decks))
	for id, entry := range s.decks {
		infos = append(infos, models.DeckInfo{
			DeckID:       id,
			Filename:     entry.deck.Filename,
			StartupName:  entry.analysis.StartupName,
			Industry:     entry.analysis.Industry,
			FundingStage: entry.analysis.FundingStage,
			FoundingYear: entry.analysis.FoundingYear,
			PitchScore:   entry.analysis.PitchScore,
			SlideCount:   len(entry.deck.Slides),
			CreatedAt:    entry.createdAt,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return s.decks[infos[i].DeckID].ordinal > s.decks[infos[j].DeckID].ordinal
	})
	return infos, nil
}

func (s *MemoryStore) GetAllAnalyses(ctx context.Context) ([]models.DeckAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.decks))
	for id := range s.decks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.decks[ids[i]].ordinal > s.decks[ids[j]].ordinal
	})
	analyses := make([]models.DeckAnalysis, 0, len(ids))
	for _, id := range ids {
		analyses = append(analyses, s.decks[id].analysis)
	}
	return analyses, nil
}

func (s *MemoryStore) DeleteDeck(ctx context.Context, deckID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.decks[deckID]; !ok {
		return fmt.Errorf("deck not found: %s", deckID)
	}
	delete(s.decks, deckID)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
