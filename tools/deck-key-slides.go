package tools

import (
	"context"
	"errors"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/pipeline"
	"github.com/halcyon-ventures/deckscout/models"
)

type DeckKeySlidesQuery struct {
	DeckID string `json:"deck_id"`
}

type DeckKeySlidesResponse struct {
	DeckID    string           `json:"deck_id"`
	KeySlides models.KeySlides `json:"key_slides"`
}

func DeckKeySlidesTool() *mcp.Tool {
	inputschema, err := jsonschema.For[DeckKeySlidesQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "deck-key-slides",
		Description: "Locate the Team, Market, and Traction slides within a previously analyzed deck. Page numbers are 1-indexed; null means the slide could not be found.",
		InputSchema: inputschema,
	}
}

func DeckKeySlidesToolHandler(ctx context.Context, req *mcp.CallToolRequest, query DeckKeySlidesQuery, analyzer *pipeline.Analyzer, log logger.Logger) (*mcp.CallToolResult, *DeckKeySlidesResponse, error) {
	log.Info("deck-key-slides tool called for %s", query.DeckID)

	if query.DeckID == "" {
		return nil, nil, errors.New("deck_id is required")
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, nil, errors.New("OPENAI_API_KEY environment variable not set")
	}

	keySlides, err := analyzer.KeySlides(ctx, query.DeckID)
	if err != nil {
		log.Error("deck-key-slides tool failed: %v", err)
		return nil, nil, err
	}

	return nil, &DeckKeySlidesResponse{DeckID: query.DeckID, KeySlides: keySlides}, nil
}
