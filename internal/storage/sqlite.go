package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/halcyon-ventures/deckscout/models"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS decks (
		id TEXT PRIMARY KEY,
		filename TEXT,
		analysis TEXT NOT NULL,
		slide_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS slides (
		deck_id TEXT NOT NULL,
		slide_number INTEGER NOT NULL,
		content TEXT,
		PRIMARY KEY (deck_id, slide_number),
		FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_decks_filename ON decks(filename);
	`

	_, err := s.db.Exec(schema)
	return err
}

// DeckExists reports whether an analysis is cached for the deck ID
func (s *SQLiteStore) DeckExists(ctx context.Context, deckID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM decks WHERE id = ?`, deckID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check deck existence: %w", err)
	}
	return count > 0, nil
}

// StoreAnalysis stores a deck's slides and its composite analysis record
func (s *SQLiteStore) StoreAnalysis(ctx context.Context, deckID string, deck models.SlideDeck, analysis *models.DeckAnalysis) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO decks (id, filename, analysis, slide_count)
		VALUES (?, ?, ?, ?)
	`, deckID, deck.Filename, string(analysisJSON), len(deck.Slides))
	if err != nil {
		return fmt.Errorf("failed to insert deck: %w", err)
	}

	for _, slide := range deck.Slides {
		_, err = tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO slides (deck_id, slide_number, content)
			VALUES (?, ?, ?)
		`, deckID, slide.Number, slide.Text)
		if err != nil {
			return fmt.Errorf("failed to insert slide %d: %w", slide.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAnalysis retrieves the composite record for a deck
func (s *SQLiteStore) GetAnalysis(ctx context.Context, deckID string) (*models.DeckAnalysis, error) {
	var analysisJSON string
	err := s.db.QueryRowContext(ctx, `SELECT analysis FROM decks WHERE id = ?`, deckID).Scan(&analysisJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("deck not found: %s", deckID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}

	var analysis models.DeckAnalysis
	if err := json.Unmarshal([]byte(analysisJSON), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &analysis, nil
}

// GetSlides retrieves the ordered slide text for a deck
func (s *SQLiteStore) GetSlides(ctx context.Context, deckID string) ([]models.Slide, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slide_number, content FROM slides
		WHERE deck_id = ?
		ORDER BY slide_number
	`, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slides: %w", err)
	}
	defer rows.Close()

	var slides []models.Slide
	for rows.Next() {
		var slide models.Slide
		if err := rows.Scan(&slide.Number, &slide.Text); err != nil {
			return nil, fmt.Errorf("failed to scan slide: %w", err)
		}
		slides = append(slides, slide)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slides: %w", err)
	}

	if slides == nil {
		return nil, fmt.Errorf("deck not found: %s", deckID)
	}
	return slides, nil
}

// ListDecks returns library entries for all stored decks, newest first
func (s *SQLiteStore) ListDecks(ctx context.Context) ([]models.DeckInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, analysis, slide_count, created_at
		FROM decks
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query decks: %w", err)
	}
	defer rows.Close()

	var decks []models.DeckInfo
	for rows.Next() {
		var info models.DeckInfo
		var analysisJSON string
		if err := rows.Scan(&info.DeckID, &info.Filename, &analysisJSON, &info.SlideCount, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}

		var analysis models.DeckAnalysis
		if err := json.Unmarshal([]byte(analysisJSON), &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		info.StartupName = analysis.StartupName
		info.Industry = analysis.Industry
		info.FundingStage = analysis.FundingStage
		info.FoundingYear = analysis.FoundingYear
		info.PitchScore = analysis.PitchScore

		decks = append(decks, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating decks: %w", err)
	}

	return decks, nil
}

// GetAllAnalyses returns every stored composite record, newest first
func (s *SQLiteStore) GetAllAnalyses(ctx context.Context) ([]models.DeckAnalysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT analysis FROM decks
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var analyses []models.DeckAnalysis
	for rows.Next() {
		var analysisJSON string
		if err := rows.Scan(&analysisJSON); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		var analysis models.DeckAnalysis
		if err := json.Unmarshal([]byte(analysisJSON), &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}

	return analyses, nil
}

// DeleteDeck removes a deck and its analysis
func (s *SQLiteStore) DeleteDeck(ctx context.Context, deckID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, deckID)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("deck not found: %s", deckID)
	}

	// Cascade is not guaranteed without foreign_keys pragma; delete slides
	// explicitly.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slides WHERE deck_id = ?`, deckID); err != nil {
		return fmt.Errorf("failed to delete slides: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ensure SQLiteStore implements Store interface
var _ Store = (*SQLiteStore)(nil)
