package google

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/greengold/carbonai"
	"google.golang.org/genai"
)

// SearchEntity looks up UK company information with Google Search grounding.
func (c *Client) SearchEntity(ctx context.Context, query string) (*ai.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search entity: %w", ai.ErrEmptyInput)
	}

	prompt := fmt.Sprintf("Search for UK company information matching: %s. Return the company name, registration number, and primary sector if found.", query)
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := c.generate(ctx, c.set.Search, genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}
	return groundedResult(resp, ai.KindSearch), nil
}

// FindNearbyHubs finds sustainability installers and consultancies near a
// location with Google Maps grounding.
func (c *Client) FindNearbyHubs(ctx context.Context, location string) (*ai.SearchResult, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("find nearby hubs: %w", ai.ErrEmptyInput)
	}

	prompt := fmt.Sprintf("Find the nearest solar energy installers or sustainability consultancy offices near %s.", location)
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
	}

	resp, err := c.generate(ctx, c.set.Maps, genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}
	return groundedResult(resp, ai.KindMaps), nil
}

func groundedResult(resp *genai.GenerateContentResponse, source ai.Kind) *ai.SearchResult {
	text := responseText(resp)
	if text == "" {
		text = ai.NoSearchResultText
	}
	return &ai.SearchResult{
		Text:    text,
		Sources: extractCitations(resp),
		Source:  source,
	}
}

// extractCitations collects grounding chunks that carry a URI.
func extractCitations(resp *genai.GenerateContentResponse) []ai.Citation {
	citations := []ai.Citation{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return citations
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return citations
	}

	for _, chunk := range meta.GroundingChunks {
		if chunk == nil {
			continue
		}
		var title, uri string
		switch {
		case chunk.Web != nil:
			title, uri = chunk.Web.Title, chunk.Web.URI
		case chunk.Maps != nil:
			title, uri = chunk.Maps.Title, chunk.Maps.URI
		case chunk.RetrievedContext != nil:
			title, uri = chunk.RetrievedContext.Title, chunk.RetrievedContext.URI
		}
		if uri == "" {
			continue
		}
		citations = append(citations, ai.Citation{Title: title, URI: uri})
	}
	return citations
}
