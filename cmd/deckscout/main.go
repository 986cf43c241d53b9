// Batch CLI: analyze every PDF in the input directory, write per-deck
// artifacts and aggregate JSON/CSV exports.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/halcyon-ventures/deckscout/internal/config"
	"github.com/halcyon-ventures/deckscout/internal/documents"
	"github.com/halcyon-ventures/deckscout/internal/export"
	"github.com/halcyon-ventures/deckscout/internal/llm"
	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/pipeline"
	"github.com/halcyon-ventures/deckscout/internal/prompt"
	"github.com/halcyon-ventures/deckscout/internal/storage"
	"github.com/halcyon-ventures/deckscout/models"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	inputDir := flag.String("input", cfg.InputDir, "directory of pitch deck PDFs")
	outputDir := flag.String("output", cfg.OutputDir, "directory for per-deck artifacts and exports")
	singleFile := flag.String("file", "", "analyze a single PDF instead of scanning the input directory")
	deckURL := flag.String("url", "", "analyze a PDF fetched from a URL")
	flag.Parse()

	log, err := logger.NewLogger(logger.LogConfig{Level: cfg.LogLevel})
	if err != nil {
		panic(err)
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable not set")
	}

	rubric, err := config.LoadRubric(cfg.RubricPath)
	if err != nil {
		log.Fatal("Failed to load rubric: %v", err)
	}

	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	client := llm.NewClient(cfg.OpenAIAPIKey, cfg.RequestTimeout, log)
	modelSet := prompt.ModelSet{
		Extraction: cfg.ExtractionModel,
		Scoring:    cfg.ScoringModel,
		Insight:    cfg.InsightModel,
	}
	analyzer := pipeline.New(client, store, modelSet, rubric, log)

	ctx := context.Background()
	runID := uuid.NewString()
	log.Info("Starting run %s", runID)

	sources, err := collectSources(*inputDir, *singleFile, *deckURL)
	if err != nil {
		log.Fatal("%v", err)
	}
	if len(sources) == 0 {
		log.Fatal("No PDF documents found in %s", *inputDir)
	}

	// One bad document never stops the batch.
	succeeded := 0
	var results []models.DeckAnalysis
	for _, source := range sources {
		_, result, err := analyzer.GetOrAnalyzeDeck(ctx, source, "")
		if err != nil {
			log.Error("Skipping %s: %v", sourceLabel(source), err)
			continue
		}
		if path, err := export.WriteDeckArtifact(*outputDir, *result); err != nil {
			log.Error("Artifact for %s: %v", result.Filename, err)
		} else {
			log.Info("Wrote %s", path)
		}
		results = append(results, *result)
		succeeded++
	}

	if err := writeAggregates(*outputDir, results); err != nil {
		log.Error("Aggregate export: %v", err)
	}

	log.Info("Run %s complete: %d/%d decks analyzed", runID, succeeded, len(sources))
	if succeeded == 0 {
		os.Exit(1)
	}
}

func collectSources(inputDir, singleFile, deckURL string) ([]models.SourceInfo, error) {
	if singleFile != "" {
		return []models.SourceInfo{{Path: singleFile}}, nil
	}
	if deckURL != "" {
		return []models.SourceInfo{{URL: deckURL}}, nil
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory %s: %w", inputDir, err)
	}
	var sources []models.SourceInfo
	for _, entry := range entries {
		if entry.IsDir() || !documents.HasPDFExtension(entry.Name()) {
			continue
		}
		sources = append(sources, models.SourceInfo{Path: filepath.Join(inputDir, entry.Name())})
	}
	return sources, nil
}

func writeAggregates(outputDir string, results []models.DeckAnalysis) error {
	if len(results) == 0 {
		return nil
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	jsonFile, err := os.Create(filepath.Join(outputDir, "decks.json"))
	if err != nil {
		return err
	}
	defer jsonFile.Close()
	if err := export.WriteJSON(jsonFile, results); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(outputDir, "decks.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()
	return export.WriteCSV(csvFile, results)
}

func sourceLabel(source models.SourceInfo) string {
	if source.Path != "" {
		return source.Path
	}
	return source.URL
}
