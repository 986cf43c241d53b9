package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/halcyon-ventures/deckscout/models"
)

// IsPDF reports whether the data looks like a PDF by its magic bytes.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// HasPDFExtension reports whether a filename carries a .pdf extension.
// Directory scans use this to filter non-deck files before reading them.
func HasPDFExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// GetData retrieves deck data from a filesystem path or URL.
func GetData(ctx context.Context, sourceInfo models.SourceInfo) (models.DeckData, error) {
	var data []byte
	var err error

	if sourceInfo.Path != "" {
		data, err = os.ReadFile(sourceInfo.Path)
		if err != nil {
			return nil, fmt.Errorf("read deck file: %w", err)
		}
	} else if sourceInfo.URL != "" {
		data, err = GetFromURL(ctx, sourceInfo.URL)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, errors.New("no deck source provided")
	}

	if len(data) == 0 {
		return nil, errors.New("no data retrieved")
	}
	if !IsPDF(data) {
		return nil, fmt.Errorf("source is not a PDF document")
	}

	return models.DeckData(data), nil
}

// GetFromURL fetches deck data from a URL
func GetFromURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch deck: unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
