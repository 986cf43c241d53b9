// Package api exposes the deck library and analysis pipeline over HTTP for
// the dashboard.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/halcyon-ventures/deckscout/internal/export"
	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/pipeline"
	"github.com/halcyon-ventures/deckscout/internal/storage"
	"github.com/halcyon-ventures/deckscout/models"
)

// maxUploadBytes caps deck uploads at 32 MiB.
const maxUploadBytes = 32 << 20

type Server struct {
	router   *chi.Mux
	analyzer *pipeline.Analyzer
	store    storage.Store
	log      logger.Logger
	port     int
}

func NewServer(analyzer *pipeline.Analyzer, store storage.Store, log logger.Logger, port int) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		analyzer: analyzer,
		store:    store,
		log:      log,
		port:     port,
	}

	router.Get("/health", s.health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/decks", s.listDecks)
		r.Post("/decks", s.uploadDeck)
		r.Get("/decks/{deckID}", s.getDeck)
		r.Delete("/decks/{deckID}", s.deleteDeck)
		r.Get("/decks/{deckID}/slides", s.getSlides)
		r.Get("/decks/{deckID}/key-slides", s.getKeySlides)
		r.Get("/dashboard", s.dashboard)
		r.Get("/export/json", s.exportJSON)
		r.Get("/export/csv", s.exportCSV)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("API server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.store.ListDecks(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if decks == nil {
		decks = []models.DeckInfo{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"decks": decks})
}

// uploadDeck accepts a multipart upload under the "deck" field and runs the
// analysis pipeline on it. Identical bytes hit the cache regardless of the
// uploaded filename.
func (s *Server) uploadDeck(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parse upload: %w", err))
		return
	}
	file, header, err := r.FormFile("deck")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("missing 'deck' form file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return
	}

	s.log.Info("Upload %s: %s (%d bytes)", requestID, header.Filename, len(data))

	deckID, result, err := s.analyzer.AnalyzeData(r.Context(), models.DeckData(data), header.Filename)
	if err != nil {
		s.log.Error("Upload %s failed: %v", requestID, err)
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"deck_id":  deckID,
		"analysis": result,
	})
}

func (s *Server) getDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	analysis, err := s.store.GetAnalysis(r.Context(), deckID)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) deleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	if err := s.store.DeleteDeck(r.Context(), deckID); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": deckID})
}

func (s *Server) getSlides(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	slides, err := s.store.GetSlides(r.Context(), deckID)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deck_id": deckID, "slides": slides})
}

func (s *Server) getKeySlides(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	keySlides, err := s.analyzer.KeySlides(r.Context(), deckID)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, keySlides)
}

// dashboard aggregates the library into the portfolio counters the
// dashboard renders: decks per industry, founding year and funding stage,
// plus the average pitch score over scored decks.
func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	decks, err := s.store.ListDecks(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	byIndustry := map[string]int{}
	byYear := map[string]int{}
	byStage := map[string]int{}
	scored := 0
	scoreSum := 0
	for _, d := range decks {
		byIndustry[bucket(d.Industry)]++
		byYear[bucket(d.FoundingYear)]++
		byStage[bucket(d.FundingStage)]++
		if d.PitchScore != nil {
			scored++
			scoreSum += *d.PitchScore
		}
	}

	var avgScore *float64
	if scored > 0 {
		avg := float64(scoreSum) / float64(scored)
		avgScore = &avg
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_decks":      len(decks),
		"by_industry":      byIndustry,
		"by_founding_year": byYear,
		"by_funding_stage": byStage,
		"scored_decks":     scored,
		"avg_pitch_score":  avgScore,
	})
}

func (s *Server) exportJSON(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.store.GetAllAnalyses(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="decks.json"`)
	if err := export.WriteJSON(w, analyses); err != nil {
		s.log.Error("JSON export failed: %v", err)
	}
}

func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.store.GetAllAnalyses(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="decks.csv"`)
	if err := export.WriteCSV(w, analyses); err != nil {
		s.log.Error("CSV export failed: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	if strings.Contains(err.Error(), "not found") {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func bucket(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "unknown"
	}
	return *v
}
