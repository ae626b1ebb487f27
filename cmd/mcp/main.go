// Command mcp serves the carbonai gateway operations as MCP tools over stdio.
//
// Usage:
//
//	go run ./cmd/mcp
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "carbonai": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/carbonai",
//	            "env": {"API_KEY": "..."}
//	        }
//	    }
//	}
//
// Set CARBONAI_METRICS_ADDR (e.g. ":9090") to expose Prometheus metrics
// at /metrics while the server runs.
package main

import (
	"errors"
	"log"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/gateway"
	"github.com/greengold/carbonai/internal/config"
	"github.com/greengold/carbonai/internal/metrics"
	"github.com/greengold/carbonai/mcp"
)

var buildAPIKey string

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		go serveMetrics(cfg.MetricsAddr, reg, logger)
	}

	creds := ai.Credentials{Build: buildAPIKey, Logger: logger}
	g := gateway.New(cfg.Gateway(creds, logger, m))

	if err := mcp.ServeStdio(g,
		mcp.WithName("carbonai"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError}))

	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server stopped", "error", err)
	}
}
