package carbonai

import (
	"log/slog"
	"os"
)

// Environment variables consulted for the API key, in priority order.
const (
	RuntimeKeyVar = "API_KEY"
	BuildKeyVar   = "VITE_API_KEY"
)

// LookupFunc looks up a configuration value by name. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Credentials resolves the backend API key from layered sources:
//
//  1. the runtime variable API_KEY
//  2. the build layer: Build (set at link time) or the VITE_API_KEY variable
//  3. empty
//
// Empty values count as unset. Resolve never caches, so a key rotated in
// the environment is picked up by the next call.
type Credentials struct {
	// Lookup reads configuration values. Defaults to os.LookupEnv.
	Lookup LookupFunc

	// Build is a key baked into the binary, e.g. via
	// -ldflags "-X main.buildAPIKey=...".
	Build string

	// Logger receives the missing-key warning. Defaults to slog.Default().
	Logger *slog.Logger
}

// Resolve returns the API key, or "" after logging one warning if no layer
// provides one.
func (c Credentials) Resolve() string {
	lookup := c.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(RuntimeKeyVar); ok && v != "" {
		return v
	}
	if c.Build != "" {
		return c.Build
	}
	if v, ok := lookup(BuildKeyVar); ok && v != "" {
		return v
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("Gemini API key is missing; set API_KEY in your environment")
	return ""
}

// MapLookup returns a LookupFunc backed by a map.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}
