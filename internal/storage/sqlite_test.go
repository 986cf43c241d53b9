package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/halcyon-ventures/deckscout/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	deck := models.SlideDeck{
		Filename: "acme.pdf",
		Slides: []models.Slide{
			{Number: 1, Text: "Acme Inc."},
			{Number: 2, Text: ""},
			{Number: 3, Text: "Raising $1M"},
		},
	}
	name := "Acme"
	industry := "Logistics"
	score := 72
	analysis := &models.DeckAnalysis{
		Filename:           "acme.pdf",
		StartupName:        &name,
		Industry:           &industry,
		PitchScore:         &score,
		SectionScores:      []models.SectionScore{{Name: "Team", Score: 8, Comment: "solid"}},
		RedFlags:           []string{},
		SuggestedQuestions: []string{},
		SummaryInsight:     "Promising.",
	}

	if err := store.StoreAnalysis(ctx, "deck-1", deck, analysis); err != nil {
		t.Fatalf("StoreAnalysis() error = %v", err)
	}

	exists, err := store.DeckExists(ctx, "deck-1")
	if err != nil || !exists {
		t.Fatalf("DeckExists() = %v, %v", exists, err)
	}

	got, err := store.GetAnalysis(ctx, "deck-1")
	if err != nil {
		t.Fatalf("GetAnalysis() error = %v", err)
	}
	if *got.StartupName != "Acme" || *got.PitchScore != 72 {
		t.Errorf("analysis = %+v", got)
	}
	if len(got.SectionScores) != 1 || got.SectionScores[0].Comment != "solid" {
		t.Errorf("SectionScores = %v", got.SectionScores)
	}

	slides, err := store.GetSlides(ctx, "deck-1")
	if err != nil {
		t.Fatalf("GetSlides() error = %v", err)
	}
	if len(slides) != 3 {
		t.Fatalf("slides = %d, want 3", len(slides))
	}
	// Empty slides survive storage; numbering stays aligned.
	if slides[1].Number != 2 || slides[1].Text != "" {
		t.Errorf("slide 2 = %+v", slides[1])
	}

	infos, err := store.ListDecks(ctx)
	if err != nil {
		t.Fatalf("ListDecks() error = %v", err)
	}
	if len(infos) != 1 || infos[0].SlideCount != 3 || *infos[0].Industry != "Logistics" {
		t.Errorf("infos = %+v", infos)
	}
}

func TestSQLiteStoreIdempotentWrite(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	deck := models.SlideDeck{Filename: "acme.pdf", Slides: []models.Slide{{Number: 1, Text: "v1"}}}
	if err := store.StoreAnalysis(ctx, "deck-1", deck, &models.DeckAnalysis{Filename: "acme.pdf"}); err != nil {
		t.Fatal(err)
	}
	// Re-writing the same key replaces rather than duplicates.
	if err := store.StoreAnalysis(ctx, "deck-1", deck, &models.DeckAnalysis{Filename: "acme.pdf"}); err != nil {
		t.Fatal(err)
	}

	infos, err := store.ListDecks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Errorf("decks = %d, want 1", len(infos))
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	deck := models.SlideDeck{Filename: "acme.pdf", Slides: []models.Slide{{Number: 1, Text: "x"}}}
	if err := store.StoreAnalysis(ctx, "deck-1", deck, &models.DeckAnalysis{Filename: "acme.pdf"}); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteDeck(ctx, "deck-1"); err != nil {
		t.Fatalf("DeleteDeck() error = %v", err)
	}
	if _, err := store.GetAnalysis(ctx, "deck-1"); err == nil {
		t.Error("GetAnalysis() after delete succeeded, want error")
	}
	if _, err := store.GetSlides(ctx, "deck-1"); err == nil {
		t.Error("GetSlides() after delete succeeded, want error")
	}
	if err := store.DeleteDeck(ctx, "deck-1"); err == nil {
		t.Error("DeleteDeck() on missing deck succeeded, want error")
	}
}

func TestSQLiteStoreMissingDeck(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	if _, err := store.GetAnalysis(ctx, "nope"); err == nil {
		t.Error("GetAnalysis() on missing deck succeeded, want error")
	}
	exists, err := store.DeckExists(ctx, "nope")
	if err != nil || exists {
		t.Errorf("DeckExists() = %v, %v", exists, err)
	}
}
