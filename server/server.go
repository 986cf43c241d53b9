package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyon-ventures/deckscout/internal/config"
	"github.com/halcyon-ventures/deckscout/internal/llm"
	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/pipeline"
	"github.com/halcyon-ventures/deckscout/internal/prompt"
	"github.com/halcyon-ventures/deckscout/internal/storage"
	"github.com/halcyon-ventures/deckscout/resources"
	"github.com/halcyon-ventures/deckscout/tools"
)

func CreateServer(log logger.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "deckscout", Version: "v0.1.0"}, nil)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	rubric, err := config.LoadRubric(cfg.RubricPath)
	if err != nil {
		log.Fatal("Failed to load rubric: %v", err)
	}

	log.Info("Initializing SQLite database at: %s", cfg.DBPath)
	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}

	// The API key may be empty here; tool handlers that invoke the model
	// check OPENAI_API_KEY before calling, and read-only tools work without
	// one.
	client := llm.NewClient(cfg.OpenAIAPIKey, cfg.RequestTimeout, log)
	modelSet := prompt.ModelSet{
		Extraction: cfg.ExtractionModel,
		Scoring:    cfg.ScoringModel,
		Insight:    cfg.InsightModel,
	}
	analyzer := pipeline.New(client, store, modelSet, rubric, log)

	deckResourceHandler := resources.NewDeckResourceHandler(store)

	// Register tools with their analyzer, storage and logger dependencies
	mcp.AddTool(server, tools.DeckAnalyzeTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.DeckAnalyzeQuery) (*mcp.CallToolResult, *tools.DeckAnalyzeResponse, error) {
		return tools.DeckAnalyzeToolHandler(ctx, req, query, analyzer, log)
	})

	mcp.AddTool(server, tools.DeckKeySlidesTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.DeckKeySlidesQuery) (*mcp.CallToolResult, *tools.DeckKeySlidesResponse, error) {
		return tools.DeckKeySlidesToolHandler(ctx, req, query, analyzer, log)
	})

	mcp.AddTool(server, tools.DeckListTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.DeckListQuery) (*mcp.CallToolResult, *tools.DeckListResponse, error) {
		return tools.DeckListToolHandler(ctx, req, query, store, log)
	})

	mcp.AddTool(server, tools.DeckDeleteTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.DeckDeleteQuery) (*mcp.CallToolResult, *tools.DeckDeleteResponse, error) {
		return tools.DeckDeleteToolHandler(ctx, req, query, store, log)
	})

	mcp.AddTool(server, tools.DeckExportTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.DeckExportQuery) (*mcp.CallToolResult, *tools.DeckExportResponse, error) {
		return tools.DeckExportToolHandler(ctx, req, query, store, log)
	})

	// Template for deck summary
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "deck://{deckId}",
		Name:        "deck",
		Description: "Analyzed pitch deck with entity summary and resource links",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return deckResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	// Template for the composite analysis record
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "deck://{deckId}/analysis",
		Name:        "deck-analysis",
		Description: "Composite analysis record: entity fields, section scores, pitch score, red flags, suggested questions, and summary insight",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return deckResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	// Template for slides
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "deck://{deckId}/slides",
		Name:        "deck-slides",
		Description: "Extracted slide text for every page of the deck",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return deckResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	// Template for an individual slide
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "deck://{deckId}/slides/{slideNumber}",
		Name:        "deck-slide",
		Description: "A specific slide from the deck (1-indexed)",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return deckResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	return server
}
