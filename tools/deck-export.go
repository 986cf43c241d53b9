package tools

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyon-ventures/deckscout/internal/export"
	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/storage"
)

type DeckExportQuery struct {
	Format string `json:"format,omitempty"` // "json" (default) or "csv"
}

type DeckExportResponse struct {
	Format    string `json:"format"`
	Content   string `json:"content"`
	DeckCount int    `json:"deck_count"`
}

func DeckExportTool() *mcp.Tool {
	inputschema, err := jsonschema.For[DeckExportQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "deck-export",
		Description: "Export every analyzed deck in the library as JSON or CSV. The CSV flattens nested market estimates into TAM/SAM/SOM columns and joins founder lists with semicolons.",
		InputSchema: inputschema,
	}
}

func DeckExportToolHandler(ctx context.Context, req *mcp.CallToolRequest, query DeckExportQuery, store storage.Store, log logger.Logger) (*mcp.CallToolResult, *DeckExportResponse, error) {
	log.Info("deck-export tool called")

	format := strings.ToLower(query.Format)
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		return nil, nil, fmt.Errorf("unsupported format: %s (expected 'json' or 'csv')", query.Format)
	}

	analyses, err := store.GetAllAnalyses(ctx)
	if err != nil {
		log.Error("Failed to load analyses: %v", err)
		return nil, nil, err
	}

	var buf bytes.Buffer
	if format == "csv" {
		err = export.WriteCSV(&buf, analyses)
	} else {
		err = export.WriteJSON(&buf, analyses)
	}
	if err != nil {
		log.Error("Export failed: %v", err)
		return nil, nil, err
	}

	return nil, &DeckExportResponse{
		Format:    format,
		Content:   buf.String(),
		DeckCount: len(analyses),
	}, nil
}
