package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/storage"
	"github.com/halcyon-ventures/deckscout/models"
)

func seedStore(t *testing.T) storage.Store {
	t.Helper()
	store := storage.NewMemoryStore()
	name := "Acme"
	score := 70
	deck := models.SlideDeck{Filename: "acme.pdf", Slides: []models.Slide{{Number: 1, Text: "Acme"}}}
	rec := &models.DeckAnalysis{
		Filename:           "acme.pdf",
		StartupName:        &name,
		PitchScore:         &score,
		SectionScores:      []models.SectionScore{},
		RedFlags:           []string{},
		SuggestedQuestions: []string{},
	}
	if err := store.StoreAnalysis(context.Background(), "deck-1", deck, rec); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestDeckExportToolHandlerJSON(t *testing.T) {
	store := seedStore(t)

	_, resp, err := DeckExportToolHandler(context.Background(), nil, DeckExportQuery{}, store, logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if resp.Format != "json" || resp.DeckCount != 1 {
		t.Errorf("response = %+v", resp)
	}
	if !strings.Contains(resp.Content, `"startup_name": "Acme"`) {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestDeckExportToolHandlerCSV(t *testing.T) {
	store := seedStore(t)

	_, resp, err := DeckExportToolHandler(context.Background(), nil, DeckExportQuery{Format: "csv"}, store, logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !strings.HasPrefix(resp.Content, "Filename,Startup Name") {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestDeckExportToolHandlerBadFormat(t *testing.T) {
	store := seedStore(t)

	_, _, err := DeckExportToolHandler(context.Background(), nil, DeckExportQuery{Format: "xlsx"}, store, logger.NewNoOpLogger())
	if err == nil {
		t.Fatal("handler accepted unsupported format, want error")
	}
}

func TestDeckListToolHandler(t *testing.T) {
	store := seedStore(t)

	_, resp, err := DeckListToolHandler(context.Background(), nil, DeckListQuery{}, store, logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if resp.DeckCount != 1 || *resp.Decks[0].StartupName != "Acme" {
		t.Errorf("response = %+v", resp)
	}
}

func TestDeckDeleteToolHandler(t *testing.T) {
	store := seedStore(t)

	_, resp, err := DeckDeleteToolHandler(context.Background(), nil, DeckDeleteQuery{DeckID: "deck-1"}, store, logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !resp.Deleted {
		t.Error("Deleted = false, want true")
	}

	if _, _, err := DeckDeleteToolHandler(context.Background(), nil, DeckDeleteQuery{DeckID: "deck-1"}, store, logger.NewNoOpLogger()); err == nil {
		t.Error("second delete succeeded, want error")
	}

	if _, _, err := DeckDeleteToolHandler(context.Background(), nil, DeckDeleteQuery{}, store, logger.NewNoOpLogger()); err == nil {
		t.Error("delete without deck_id succeeded, want error")
	}
}
