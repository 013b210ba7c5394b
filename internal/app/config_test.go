package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cfg, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.FlipDelaySeconds = 5
	cfg.FrontLanguage = "Norwegian"

	require.NoError(t, SaveConfig(path, cfg))
	loaded, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSanitizeConfig(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero delay reset to default",
			in:   Config{FlipDelaySeconds: 0},
			want: func() Config { c := DefaultConfig(); c.DataDir = ""; return c }(),
		},
		{
			name: "oversized delay reset to default",
			in:   func() Config { c := DefaultConfig(); c.FlipDelaySeconds = 120; return c }(),
			want: DefaultConfig(),
		},
		{
			name: "valid delay kept",
			in:   func() Config { c := DefaultConfig(); c.FlipDelaySeconds = 10; return c }(),
			want: func() Config { c := DefaultConfig(); c.FlipDelaySeconds = 10; return c }(),
		},
		{
			name: "blank paths filled in",
			in:   func() Config { c := DefaultConfig(); c.ProgressFile = " "; c.SeedFile = ""; return c }(),
			want: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeConfig(tt.in))
		})
	}
}
