package pdf

import (
	"bytes"
	"fmt"
	"strings"

	ledong "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/halcyon-ventures/deckscout/models"
)

// ExtractionError indicates a deck could not be read or rendered to slide
// text. Callers skip the document and continue with the rest of the batch.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract slide text from %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ExtractSlides validates the PDF and extracts plain text per page, labeled
// with 1-indexed slide numbers. Pages with no extractable text yield an
// empty-text slide so numbering stays aligned with the source document.
func ExtractSlides(data models.DeckData, filename string) (models.SlideDeck, error) {
	deck := models.SlideDeck{Filename: filename}

	// Validate up front so corrupt files fail here rather than mid-extraction.
	conf := model.NewDefaultConfiguration()
	pdfContext, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return deck, &ExtractionError{Filename: filename, Err: err}
	}
	if pdfContext.PageCount == 0 {
		return deck, &ExtractionError{Filename: filename, Err: fmt.Errorf("document has no pages")}
	}

	reader, err := ledong.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return deck, &ExtractionError{Filename: filename, Err: err}
	}

	pageCount := reader.NumPage()
	if pageCount > pdfContext.PageCount {
		pageCount = pdfContext.PageCount
	}

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		page := reader.Page(pageNum)
		text := ""
		if !page.V.IsNull() {
			if content, err := page.GetPlainText(nil); err == nil {
				text = content
			}
			// A single unreadable page is not fatal; it becomes an empty slide.
		}
		deck.Slides = append(deck.Slides, models.Slide{
			Number: pageNum,
			Text:   strings.TrimSpace(text),
		})
	}

	return deck, nil
}

// PageCount returns the validated page count of a PDF.
func PageCount(data models.DeckData) (int, error) {
	pdfContext, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, err
	}
	return pdfContext.PageCount, nil
}
