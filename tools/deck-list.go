package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/storage"
	"github.com/halcyon-ventures/deckscout/models"
)

type DeckListQuery struct{}

type DeckListResponse struct {
	DeckCount int               `json:"deck_count"`
	Decks     []models.DeckInfo `json:"decks"`
}

func DeckListTool() *mcp.Tool {
	inputschema, err := jsonschema.For[DeckListQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "deck-list",
		Description: "List all analyzed pitch decks in the library with their startup name, industry, funding stage, and pitch score.",
		InputSchema: inputschema,
	}
}

func DeckListToolHandler(ctx context.Context, req *mcp.CallToolRequest, query DeckListQuery, store storage.Store, log logger.Logger) (*mcp.CallToolResult, *DeckListResponse, error) {
	log.Info("deck-list tool called")

	decks, err := store.ListDecks(ctx)
	if err != nil {
		log.Error("Failed to list decks: %v", err)
		return nil, nil, err
	}
	if decks == nil {
		decks = []models.DeckInfo{}
	}

	return nil, &DeckListResponse{
		DeckCount: len(decks),
		Decks:     decks,
	}, nil
}
