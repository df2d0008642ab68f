package config_test

import (
	"os"
	"testing"
	"time"

	"go-resume-backend/config"

	"github.com/stretchr/testify/assert"
)

// clearEnv unsets a variable for the duration of the test. t.Setenv registers
// the restore; the explicit unset makes LookupEnv miss entirely.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t,
		"PORT", "FRONTEND_URL",
		"DOUBAO_API_KEY", "DOUBAO_MODEL_ID",
		"OPENAI_API_KEY", "OPENAI_MODEL_ID",
		"DEEPSEEK_API_KEY", "DEEPSEEK_MODEL_ID",
		"MOONSHOT_API_KEY", "MOONSHOT_MODEL_ID",
		"POLISH_SYSTEM_PROMPT", "POLISH_TIMEOUT_SECONDS", "POLISH_MOCK_DELAY_MS",
		"STORE_DRIVER", "STORE_PATH", "DATABASE_URL",
	)

	cfg, err := config.LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Empty(t, cfg.Doubao.APIKey)
	assert.Equal(t, "ep-20250219195707-q588r", cfg.Doubao.ModelID)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.ModelID)
	assert.Equal(t, "deepseek-chat", cfg.DeepSeek.ModelID)
	assert.Equal(t, "moonshot-v1-8k", cfg.Moonshot.ModelID)
	assert.Equal(t, config.DefaultSystemPrompt, cfg.SystemPrompt)
	assert.Equal(t, 60*time.Second, cfg.PolishTimeout)
	assert.Equal(t, time.Second, cfg.MockDelay)
	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, "./data", cfg.StorePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DOUBAO_API_KEY", "sk-doubao")
	t.Setenv("DOUBAO_MODEL_ID", "ep-custom")
	t.Setenv("POLISH_TIMEOUT_SECONDS", "5")
	t.Setenv("POLISH_MOCK_DELAY_MS", "10")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("STORE_PATH", "/tmp/resumes")

	cfg, err := config.LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sk-doubao", cfg.Doubao.APIKey)
	assert.Equal(t, "ep-custom", cfg.Doubao.ModelID)
	assert.Equal(t, 5*time.Second, cfg.PolishTimeout)
	assert.Equal(t, 10*time.Millisecond, cfg.MockDelay)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "/tmp/resumes", cfg.StorePath)
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("POLISH_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := config.LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.PolishTimeout)
}
