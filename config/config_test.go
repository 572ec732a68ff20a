package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/solemn/config"
	"github.com/viant/solemn/detector"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		description string
		content     string
		expect      func(t *testing.T, cfg *config.Config)
		expectErr   bool
	}{
		{
			description: "empty content keeps defaults",
			content:     "",
			expect: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.Default(), cfg)
			},
		},
		{
			description: "overrides",
			content: `lexicon: words.yaml
format: json
color: true
failOnViolation: false
concurrency: 2
exclude: [dist]
extensions: [js, .java]
`,
			expect: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "words.yaml", cfg.Lexicon)
				assert.Equal(t, "json", cfg.Format)
				assert.True(t, cfg.Color)
				assert.False(t, cfg.FailOnViolation)
				assert.Equal(t, 2, cfg.Concurrency)
				assert.Equal(t, []string{"dist"}, cfg.Exclude)
				assert.Equal(t, []string{"js", ".java"}, cfg.Extensions)
				assert.Equal(t, "javascript", cfg.DefaultLanguage)
			},
		},
		{description: "unknown key", content: "colour: true\n", expectErr: true},
		{description: "unsupported format", content: "format: xml\n", expectErr: true},
		{description: "invalid concurrency", content: "concurrency: 0\n", expectErr: true},
		{description: "unsupported language", content: "defaultLanguage: cobol\n", expectErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			cfg, err := config.Decode([]byte(tt.content))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.expect(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	location := filepath.Join(t.TempDir(), "solemn.yaml")
	require.NoError(t, os.WriteFile(location, []byte("format: yaml\nconcurrency: 3\n"), 0o644))
	cfg, err := config.Load(context.Background(), afs.New(), location)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, detector.DefaultExcludes, cfg.Exclude)

	_, err = config.Load(context.Background(), afs.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeTOML(t *testing.T) {
	cfg, err := config.DecodeTOML([]byte("format = \"json\"\nfailOnViolation = false\nexclude = [\"dist\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.FailOnViolation)
	assert.Equal(t, []string{"dist"}, cfg.Exclude)

	_, err = config.DecodeTOML([]byte("colour = true\n"))
	assert.Error(t, err)

	location := filepath.Join(t.TempDir(), "solemn.toml")
	require.NoError(t, os.WriteFile(location, []byte("concurrency = 5\n"), 0o644))
	cfg, err = config.Load(context.Background(), afs.New(), location)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Concurrency)

	_, err = config.Load(context.Background(), afs.New(), filepath.Join(t.TempDir(), "solemn.ini"))
	assert.Error(t, err)
}

func TestConfig_ApplyEnv(t *testing.T) {
	env := map[string]string{
		"SOLEMN_FORMAT":            "json",
		"SOLEMN_COLOR":             "true",
		"SOLEMN_FAIL_ON_VIOLATION": "0",
		"SOLEMN_CONCURRENCY":       "4",
		"SOLEMN_EXTENSIONS":        ".js,.go",
	}
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(func(key string) string { return env[key] }))
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.FailOnViolation)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, []string{".js", ".go"}, cfg.Extensions)
	assert.NoError(t, cfg.Validate())

	cfg = config.Default()
	err := cfg.ApplyEnv(func(key string) string {
		return map[string]string{"SOLEMN_COLOR": "maybe", "SOLEMN_CONCURRENCY": "many"}[key]
	})
	assert.ErrorContains(t, err, "SOLEMN_COLOR")
	assert.ErrorContains(t, err, "SOLEMN_CONCURRENCY")
}

func TestConfig_DetectorOptions(t *testing.T) {
	cfg := config.Default()
	assert.Len(t, cfg.DetectorOptions(), 3)
	cfg.Extensions = []string{".js"}
	options := cfg.DetectorOptions()
	assert.Len(t, options, 4)
	assert.NotNil(t, detector.New(options...))
}
