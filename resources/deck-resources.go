package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyon-ventures/deckscout/internal/storage"
)

// DeckResourceHandler handles resource requests for analyzed pitch decks
type DeckResourceHandler struct {
	store storage.Store
}

// NewDeckResourceHandler creates a new deck resource handler
func NewDeckResourceHandler(store storage.Store) *DeckResourceHandler {
	return &DeckResourceHandler{store: store}
}

// ListResources returns a list of available resources
func (h *DeckResourceHandler) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	decks, err := h.store.ListDecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}

	var resources []mcp.Resource
	for _, deck := range decks {
		name := deck.Filename
		if deck.StartupName != nil {
			name = *deck.StartupName
		}

		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("deck://%s", deck.DeckID),
			Name:        fmt.Sprintf("%s (Deck)", name),
			Description: fmt.Sprintf("Analyzed pitch deck: %s", deck.Filename),
			MIMEType:    "application/json",
		})

		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("deck://%s/analysis", deck.DeckID),
			Name:        fmt.Sprintf("%s (Analysis)", name),
			Description: "Composite analysis record with entity fields, section scores, pitch score, red flags, and suggested questions",
			MIMEType:    "application/json",
		})

		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("deck://%s/slides", deck.DeckID),
			Name:        fmt.Sprintf("%s (Slides)", name),
			Description: "Extracted slide text for every page of the deck",
			MIMEType:    "application/json",
		})
	}

	return resources, nil
}

// ReadResource reads a specific resource by URI
func (h *DeckResourceHandler) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	// Parse URI: deck://deck_id/resource_type/optional_slide_number
	if !strings.HasPrefix(uri, "deck://") {
		return nil, fmt.Errorf("invalid URI scheme, expected deck://")
	}

	path := strings.TrimPrefix(uri, "deck://")
	parts := strings.Split(path, "/")

	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("invalid URI, missing deck ID")
	}

	deckID := parts[0]
	resourceType := ""
	if len(parts) > 1 {
		resourceType = parts[1]
	}

	var content string
	var err error

	switch resourceType {
	case "":
		content, err = h.getDeckSummary(ctx, deckID)
	case "analysis":
		content, err = h.getAnalysis(ctx, deckID)
	case "slides":
		if len(parts) > 2 {
			var slideNum int
			slideNum, err = strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("invalid slide number: %s", parts[2])
			}
			content, err = h.getSlide(ctx, deckID, slideNum)
		} else {
			content, err = h.getAllSlides(ctx, deckID)
		}
	default:
		return nil, fmt.Errorf("unknown resource type: %s", resourceType)
	}

	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     content,
			},
		},
	}, nil
}

func (h *DeckResourceHandler) getDeckSummary(ctx context.Context, deckID string) (string, error) {
	analysis, err := h.store.GetAnalysis(ctx, deckID)
	if err != nil {
		return "", err
	}

	slides, err := h.store.GetSlides(ctx, deckID)
	if err != nil {
		return "", err
	}

	summary := map[string]any{
		"deck_id":       deckID,
		"filename":      analysis.Filename,
		"startup_name":  analysis.StartupName,
		"industry":      analysis.Industry,
		"funding_stage": analysis.FundingStage,
		"pitch_score":   analysis.PitchScore,
		"slide_count":   len(slides),
		"available_resources": []string{
			fmt.Sprintf("deck://%s/analysis", deckID),
			fmt.Sprintf("deck://%s/slides", deckID),
		},
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}
	return string(data), nil
}

func (h *DeckResourceHandler) getAnalysis(ctx context.Context, deckID string) (string, error) {
	analysis, err := h.store.GetAnalysis(ctx, deckID)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return string(data), nil
}

func (h *DeckResourceHandler) getSlide(ctx context.Context, deckID string, slideNum int) (string, error) {
	slides, err := h.store.GetSlides(ctx, deckID)
	if err != nil {
		return "", err
	}

	for _, slide := range slides {
		if slide.Number == slideNum {
			data, err := json.MarshalIndent(slide, "", "  ")
			if err != nil {
				return "", fmt.Errorf("failed to marshal slide: %w", err)
			}
			return string(data), nil
		}
	}
	return "", fmt.Errorf("slide %d not found in deck %s", slideNum, deckID)
}

func (h *DeckResourceHandler) getAllSlides(ctx context.Context, deckID string) (string, error) {
	slides, err := h.store.GetSlides(ctx, deckID)
	if err != nil {
		return "", err
	}

	result := map[string]any{
		"slide_count": len(slides),
		"slides":      slides,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal slides: %w", err)
	}
	return string(data), nil
}
