package carbonai

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCredentialsResolve(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		build string
		want  string
		warns bool
	}{
		{
			name:  "runtime variable wins",
			env:   map[string]string{RuntimeKeyVar: "runtime", BuildKeyVar: "vite"},
			build: "linked",
			want:  "runtime",
		},
		{
			name:  "linked build value when runtime unset",
			env:   map[string]string{BuildKeyVar: "vite"},
			build: "linked",
			want:  "linked",
		},
		{
			name: "build variable when runtime unset",
			env:  map[string]string{BuildKeyVar: "vite"},
			want: "vite",
		},
		{
			name: "empty runtime counts as unset",
			env:  map[string]string{RuntimeKeyVar: "", BuildKeyVar: "vite"},
			want: "vite",
		},
		{
			name:  "neither set",
			env:   map[string]string{},
			want:  "",
			warns: true,
		},
		{
			name:  "both set but empty",
			env:   map[string]string{RuntimeKeyVar: "", BuildKeyVar: ""},
			want:  "",
			warns: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := Credentials{
				Lookup: MapLookup(tt.env),
				Build:  tt.build,
				Logger: newBufferLogger(&buf),
			}

			assert.Equal(t, tt.want, c.Resolve())

			warnings := strings.Count(buf.String(), "level=WARN")
			if tt.warns {
				assert.Equal(t, 1, warnings)
			} else {
				assert.Zero(t, warnings)
			}
		})
	}
}

func TestCredentialsResolveIsNotCached(t *testing.T) {
	env := map[string]string{RuntimeKeyVar: "first"}
	c := Credentials{Lookup: MapLookup(env), Logger: newBufferLogger(&bytes.Buffer{})}

	assert.Equal(t, "first", c.Resolve())
	env[RuntimeKeyVar] = "rotated"
	assert.Equal(t, "rotated", c.Resolve())
}

func TestCredentialsResolveWarnsOncePerCall(t *testing.T) {
	var buf bytes.Buffer
	c := Credentials{Lookup: MapLookup(nil), Logger: newBufferLogger(&buf)}

	for i := 0; i < 3; i++ {
		assert.Empty(t, c.Resolve())
	}
	assert.Equal(t, 3, strings.Count(buf.String(), "level=WARN"))
}

func TestCredentialsDefaultLookupUsesEnvironment(t *testing.T) {
	t.Setenv(RuntimeKeyVar, "from-env")
	assert.Equal(t, "from-env", Credentials{}.Resolve())
}
