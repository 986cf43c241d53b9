package tools

import (
	"context"
	"errors"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/storage"
)

type DeckDeleteQuery struct {
	DeckID string `json:"deck_id"`
}

type DeckDeleteResponse struct {
	DeckID  string `json:"deck_id"`
	Deleted bool   `json:"deleted"`
}

func DeckDeleteTool() *mcp.Tool {
	inputschema, err := jsonschema.For[DeckDeleteQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "deck-delete",
		Description: "Delete an analyzed deck and its slides from the library. Deletion removes the whole record; a subsequent analysis of the same file re-runs the pipeline.",
		InputSchema: inputschema,
	}
}

func DeckDeleteToolHandler(ctx context.Context, req *mcp.CallToolRequest, query DeckDeleteQuery, store storage.Store, log logger.Logger) (*mcp.CallToolResult, *DeckDeleteResponse, error) {
	log.Info("deck-delete tool called for %s", query.DeckID)

	if query.DeckID == "" {
		return nil, nil, errors.New("deck_id is required")
	}
	if err := store.DeleteDeck(ctx, query.DeckID); err != nil {
		log.Error("Failed to delete deck %s: %v", query.DeckID, err)
		return nil, nil, err
	}

	return nil, &DeckDeleteResponse{DeckID: query.DeckID, Deleted: true}, nil
}
