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

type DeckAnalyzeQuery struct {
	Path    string `json:"path,omitempty"`
	URL     string `json:"url,omitempty"`
	RawData []byte `json:"raw_data,omitempty"`
	Name    string `json:"name,omitempty"`
}

type DeckAnalyzeResponse struct {
	DeckID        string               `json:"deck_id"`
	ResourcePaths []string             `json:"resource_paths"`
	Analysis      *models.DeckAnalysis `json:"analysis"`
}

func DeckAnalyzeTool() *mcp.Tool {
	inputschema, err := jsonschema.For[DeckAnalyzeQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "deck-analyze",
		Description: "Analyze a pitch deck PDF from a file path, URL, or raw bytes. Extracts slide text, pulls structured entity fields, scores the deck against the investment rubric, and produces red flags, suggested questions, and a summary insight. Results are cached by content hash, so re-analyzing an identical deck is free.",
		InputSchema: inputschema,
	}
}

func DeckAnalyzeToolHandler(ctx context.Context, req *mcp.CallToolRequest, query DeckAnalyzeQuery, analyzer *pipeline.Analyzer, log logger.Logger) (*mcp.CallToolResult, *DeckAnalyzeResponse, error) {
	log.Info("deck-analyze tool called")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Error("OPENAI_API_KEY environment variable not set")
		return nil, nil, errors.New("OPENAI_API_KEY environment variable not set")
	}

	var deckID string
	var analysis *models.DeckAnalysis
	var err error

	if len(query.RawData) > 0 {
		name := query.Name
		if name == "" {
			name = "deck.pdf"
		}
		deckID, analysis, err = analyzer.AnalyzeData(ctx, models.DeckData(query.RawData), name)
	} else {
		source := models.SourceInfo{Path: query.Path, URL: query.URL}
		deckID, analysis, err = analyzer.GetOrAnalyzeDeck(ctx, source, query.Name)
	}
	if err != nil {
		log.Error("deck-analyze tool failed: %v", err)
		return nil, nil, err
	}

	return nil, &DeckAnalyzeResponse{
		DeckID:        deckID,
		ResourcePaths: ResourcePaths(deckID),
		Analysis:      analysis,
	}, nil
}

// ResourcePaths lists the resource URIs available for an analyzed deck.
func ResourcePaths(deckID string) []string {
	return []string{
		"deck://" + deckID,
		"deck://" + deckID + "/analysis",
		"deck://" + deckID + "/slides",
	}
}
