package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	ai "github.com/greengold/carbonai"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	searchEntityTool = mcp.NewTool("search_entity",
		mcp.WithDescription("Look up a UK company's name, registration number and primary sector using web search"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Company name or registration number")),
	)

	findNearbyHubsTool = mcp.NewTool("find_nearby_hubs",
		mcp.WithDescription("Find solar installers and sustainability consultancies near a location"),
		mcp.WithString("location", mcp.Required(), mcp.Description("Town, city or postcode")),
	)

	getRecommendationsTool = mcp.NewTool("get_recommendations",
		mcp.WithDescription("Get 2-3 structured carbon reduction recommendations for sustainability data"),
		mcp.WithObject("data", mcp.Required(), mcp.Description("Sustainability data; an \"industry\" field names the sector")),
	)

	deepAnalysisTool = mcp.NewTool("deep_analysis",
		mcp.WithDescription("Produce a 12-month decarbonization roadmap for sustainability data"),
		mcp.WithObject("data", mcp.Required(), mcp.Description("Sustainability data to analyze")),
	)

	generateImageTool = mcp.NewTool("generate_image",
		mcp.WithDescription("Generate an illustrative sustainability image"),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("What the image should show")),
		mcp.WithString("size", mcp.Description("Resolution tier"), mcp.Enum("1K", "2K", "4K")),
		mcp.WithString("aspect_ratio", mcp.Description("Aspect ratio such as 1:1 or 16:9")),
	)
)

type handlers struct {
	svc Service
}

func (h *handlers) searchEntity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := requiredString(req, "query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := h.svc.SearchEntity(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatSearch(res)), nil
}

func (h *handlers) findNearbyHubs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := requiredString(req, "location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := h.svc.FindNearbyHubs(ctx, location)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatSearch(res)), nil
}

func (h *handlers) getRecommendations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := requiredObject(req, "data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	recs, err := h.svc.GetRecommendations(ctx, data)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal recommendations: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (h *handlers) deepAnalysis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := requiredObject(req, "data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	a, err := h.svc.GetDeepAnalysis(ctx, data)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(a.Text), nil
}

func (h *handlers) generateImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := requiredString(req, "prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var opts []ai.ImageOption
	args := arguments(req)
	if size, ok := args["size"].(string); ok && size != "" {
		opts = append(opts, ai.WithImageSize(ai.ImageSize(size)))
	}
	if ratio, ok := args["aspect_ratio"].(string); ok && ratio != "" {
		opts = append(opts, ai.WithAspectRatio(ratio))
	}

	img, err := h.svc.GenerateImage(ctx, prompt, opts...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if img == nil {
		return mcp.NewToolResultText("No image was generated for this prompt."), nil
	}
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return mcp.NewToolResultImage("Generated image", base64.StdEncoding.EncodeToString(img.Data), mime), nil
}

func arguments(req mcp.CallToolRequest) map[string]any {
	args, _ := req.Params.Arguments.(map[string]any)
	return args
}

func requiredString(req mcp.CallToolRequest, name string) (string, error) {
	v, ok := arguments(req)[name].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	return v, nil
}

func requiredObject(req mcp.CallToolRequest, name string) (map[string]any, error) {
	v, ok := arguments(req)[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("argument %q must be an object", name)
	}
	return v, nil
}

// formatSearch renders a grounded answer followed by its sources.
func formatSearch(res *ai.SearchResult) string {
	var b strings.Builder
	b.WriteString(res.Text)
	if len(res.Sources) > 0 {
		b.WriteString("\n\nSources:")
		for _, src := range res.Sources {
			title := src.Title
			if title == "" {
				title = src.URI
			}
			fmt.Fprintf(&b, "\n- %s: %s", title, src.URI)
		}
	}
	return b.String()
}
