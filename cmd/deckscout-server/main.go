package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/halcyon-ventures/deckscout/internal/api"
	"github.com/halcyon-ventures/deckscout/internal/config"
	"github.com/halcyon-ventures/deckscout/internal/llm"
	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/pipeline"
	"github.com/halcyon-ventures/deckscout/internal/prompt"
	"github.com/halcyon-ventures/deckscout/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(logger.LogConfig{Level: cfg.LogLevel})
	if err != nil {
		panic(err)
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
	defer store.Close()

	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY not set; uploads will fail, library reads still work")
	}
	client := llm.NewClient(cfg.OpenAIAPIKey, cfg.RequestTimeout, log)
	modelSet := prompt.ModelSet{
		Extraction: cfg.ExtractionModel,
		Scoring:    cfg.ScoringModel,
		Insight:    cfg.InsightModel,
	}
	analyzer := pipeline.New(client, store, modelSet, rubric, log)

	srv := api.NewServer(analyzer, store, log, cfg.Port)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("HTTP server error: %v", err)
		}
	}()

	log.Info("deckscout ready on port %d", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info("Shutting down")
}
