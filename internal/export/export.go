// Package export renders stored analyses as JSON and CSV files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/halcyon-ventures/deckscout/models"
)

// csvHeader fixes the column order of CSV exports. Nested market estimates
// are flattened into their own columns; founders are joined with "; ".
var csvHeader = []string{
	"Filename",
	"Startup Name",
	"Founding Year",
	"Founders",
	"Industry",
	"Niche",
	"USP",
	"Funding Stage",
	"Current Revenue",
	"Amount Raised",
	"TAM",
	"SAM",
	"SOM",
	"Pitch Score",
}

// WriteJSON writes all analyses as one indented JSON array.
func WriteJSON(w io.Writer, analyses []models.DeckAnalysis) error {
	if analyses == nil {
		analyses = []models.DeckAnalysis{}
	}
	data, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analyses: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteCSV writes all analyses as CSV with a fixed header row. Null fields
// render as empty cells.
func WriteCSV(w io.Writer, analyses []models.DeckAnalysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, a := range analyses {
		row := []string{
			a.Filename,
			deref(a.StartupName),
			deref(a.FoundingYear),
			strings.Join(a.Founders, "; "),
			deref(a.Industry),
			deref(a.Niche),
			deref(a.USP),
			deref(a.FundingStage),
			deref(a.CurrentRevenue),
			deref(a.AmountRaised),
			deref(a.Market.TAM),
			deref(a.Market.SAM),
			deref(a.Market.SOM),
			derefInt(a.PitchScore),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row for %s: %w", a.Filename, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDeckArtifact writes one deck's analysis as {basename}_parsed.json in
// the output directory, creating the directory if needed.
func WriteDeckArtifact(outputDir string, a models.DeckAnalysis) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	base := strings.TrimSuffix(a.Filename, filepath.Ext(a.Filename))
	if base == "" {
		base = "deck"
	}
	path := filepath.Join(outputDir, base+"_parsed.json")

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal analysis for %s: %w", a.Filename, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
