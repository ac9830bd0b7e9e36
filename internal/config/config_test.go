package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ollama", cfg.AI.LLMProvider)
	assert.Equal(t, "gemma3:latest", cfg.AI.GeneratorModel)
	assert.Equal(t, "http://localhost:11434", cfg.AI.OllamaHost)
	assert.Positive(t, cfg.AI.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CRITIC_SERVER_PORT", "9090")
	t.Setenv("CRITIC_AI_GENERATOR_MODEL", "qwen2.5-coder:32b")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "qwen2.5-coder:32b", cfg.AI.GeneratorModel)
}

func TestLoadConfig_GeminiRequiresKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CRITIC_AI_LLM_PROVIDER", "gemini")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini_api_key")
}

func TestLoadConfig_GeminiDefaultModel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CRITIC_AI_LLM_PROVIDER", "gemini")
	t.Setenv("CRITIC_AI_GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.GeneratorModel)
}

func TestLoadConfig_UnsupportedProvider(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CRITIC_AI_LLM_PROVIDER", "parrot")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestLoadConfig_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: \"3000\"\nlogging:\n  format: json\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0600))
	t.Chdir(dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadReviewProfile(t *testing.T) {
	t.Run("missing file returns defaults with sentinel", func(t *testing.T) {
		profile, err := LoadReviewProfile(t.TempDir())
		assert.ErrorIs(t, err, ErrProfileNotFound)
		require.NotNil(t, profile)
		assert.Empty(t, profile.Guidance)
		assert.False(t, profile.SkipSyntaxCheck)
	})

	t.Run("valid profile", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("guidance:\n  - prefer table-driven tests\n  - flag TODO comments\nskip_syntax_check: true\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".code-critic.yml"), content, 0600))

		profile, err := LoadReviewProfile(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"prefer table-driven tests", "flag TODO comments"}, profile.Guidance)
		assert.True(t, profile.SkipSyntaxCheck)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".code-critic.yml"), []byte("guidance: [unclosed"), 0600))

		_, err := LoadReviewProfile(dir)
		assert.ErrorIs(t, err, ErrProfileParsing)
	})
}
