// Package mcp exposes gateway operations as MCP (Model Context Protocol)
// tools, so MCP clients like Claude Desktop can search companies, find
// local sustainability hubs and request recommendations.
//
//	g := gateway.New(gateway.Config{})
//	if err := mcp.ServeStdio(g); err != nil {
//	    log.Fatal(err)
//	}
package mcp

import (
	"context"

	ai "github.com/greengold/carbonai"
	"github.com/mark3labs/mcp-go/server"
)

// Service is the subset of the gateway the tools call.
// *gateway.Gateway satisfies it.
type Service interface {
	SearchEntity(ctx context.Context, query string) (*ai.SearchResult, error)
	FindNearbyHubs(ctx context.Context, location string) (*ai.SearchResult, error)
	GetRecommendations(ctx context.Context, data map[string]any) (ai.RecommendationList, error)
	GetDeepAnalysis(ctx context.Context, data map[string]any) (*ai.Analysis, error)
	GenerateImage(ctx context.Context, prompt string, opts ...ai.ImageOption) (*ai.Image, error)
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server with one tool per gateway operation.
func NewServer(svc Service, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "carbonai",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	h := &handlers{svc: svc}
	s.AddTool(searchEntityTool, h.searchEntity)
	s.AddTool(findNearbyHubsTool, h.findNearbyHubs)
	s.AddTool(getRecommendationsTool, h.getRecommendations)
	s.AddTool(deepAnalysisTool, h.deepAnalysis)
	s.AddTool(generateImageTool, h.generateImage)

	return s
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
func ServeStdio(svc Service, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(svc, opts...))
}
