package storage

import (
	"context"
	"testing"

	"github.com/halcyon-ventures/deckscout/models"
)

func TestGenerateDeckID(t *testing.T) {
	a := GenerateDeckID(models.DeckData("deck one"))
	b := GenerateDeckID(models.DeckData("deck one"))
	c := GenerateDeckID(models.DeckData("deck two"))

	if a != b {
		t.Error("identical bytes must produce the same deck ID")
	}
	if a == c {
		t.Error("different bytes must produce different deck IDs")
	}
	if len(a) != 64 {
		t.Errorf("deck ID length = %d, want 64 hex chars", len(a))
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	deck := models.SlideDeck{
		Filename: "acme.pdf",
		Slides: []models.Slide{
			{Number: 1, Text: "Acme Inc."},
			{Number: 2, Text: "Team"},
		},
	}
	name := "Acme"
	score := 60
	analysis := &models.DeckAnalysis{
		Filename:    "acme.pdf",
		StartupName: &name,
		PitchScore:  &score,
	}

	exists, err := store.DeckExists(ctx, "deck-1")
	if err != nil || exists {
		t.Fatalf("DeckExists() = %v, %v before store", exists, err)
	}

	if err := store.StoreAnalysis(ctx, "deck-1", deck, analysis); err != nil {
		t.Fatalf("StoreAnalysis() error = %v", err)
	}

	exists, err = store.DeckExists(ctx, "deck-1")
	if err != nil || !exists {
		t.Fatalf("DeckExists() = %v, %v after store", exists, err)
	}

	got, err := store.GetAnalysis(ctx, "deck-1")
	if err != nil {
		t.Fatalf("GetAnalysis() error = %v", err)
	}
	if *got.StartupName != "Acme" {
		t.Errorf("StartupName = %q", *got.StartupName)
	}

	slides, err := store.GetSlides(ctx, "deck-1")
	if err != nil {
		t.Fatalf("GetSlides() error = %v", err)
	}
	if len(slides) != 2 || slides[0].Number != 1 {
		t.Errorf("slides = %v", slides)
	}

	infos, err := store.ListDecks(ctx)
	if err != nil {
		t.Fatalf("ListDecks() error = %v", err)
	}
	if len(infos) != 1 || infos[0].SlideCount != 2 || *infos[0].PitchScore != 60 {
		t.Errorf("infos = %+v", infos)
	}

	all, err := store.GetAllAnalyses(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("GetAllAnalyses() = %v, %v", all, err)
	}

	if err := store.DeleteDeck(ctx, "deck-1"); err != nil {
		t.Fatalf("DeleteDeck() error = %v", err)
	}
	if _, err := store.GetAnalysis(ctx, "deck-1"); err == nil {
		t.Error("GetAnalysis() after delete succeeded, want error")
	}
	if err := store.DeleteDeck(ctx, "deck-1"); err == nil {
		t.Error("DeleteDeck() on missing deck succeeded, want error")
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, id := range []string{"first", "second", "third"} {
		deck := models.SlideDeck{Filename: id + ".pdf"}
		if err := store.StoreAnalysis(ctx, id, deck, &models.DeckAnalysis{Filename: deck.Filename}); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := store.ListDecks(ctx)
	if err != nil {
		t.Fatalf("ListDecks() error = %v", err)
	}
	if len(infos) != 3 || infos[0].DeckID != "third" || infos[2].DeckID != "first" {
		t.Errorf("order = %v, want newest first", []string{infos[0].DeckID, infos[1].DeckID, infos[2].DeckID})
	}
}
