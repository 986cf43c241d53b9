package storage

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/halcyon-ventures/deckscout/models"
)

// Store persists analyzed decks and doubles as the content-hash cache:
// deck IDs encode content identity, so a present entry means the model was
// already invoked for bytes-identical input. Entries are written at most
// once per unique key; re-writes for the same key carry equivalent values.
type Store interface {
	// DeckExists reports whether an analysis is cached for the deck ID
	DeckExists(ctx context.Context, deckID string) (bool, error)

	// StoreAnalysis stores a deck's slides and its composite analysis record
	StoreAnalysis(ctx context.Context, deckID string, deck models.SlideDeck, analysis *models.DeckAnalysis) error

	// GetAnalysis retrieves the composite record for a deck
	GetAnalysis(ctx context.Context, deckID string) (*models.DeckAnalysis, error)

	// GetSlides retrieves the ordered slide text for a deck
	GetSlides(ctx context.Context, deckID string) ([]models.Slide, error)

	// ListDecks returns library entries for all stored decks, newest first
	ListDecks(ctx context.Context) ([]models.DeckInfo, error)

	// GetAllAnalyses returns every stored composite record, newest first
	GetAllAnalyses(ctx context.Context) ([]models.DeckAnalysis, error)

	// DeleteDeck removes a deck and its analysis. Deletion is whole-record:
	// individual fields are never edited in place.
	DeleteDeck(ctx context.Context, deckID string) error

	// Close closes the underlying store
	Close() error
}

// GenerateDeckID derives a stable deck ID from the document bytes, keying
// the cache on content identity rather than filename.
func GenerateDeckID(data models.DeckData) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
