package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ProviderSettings holds the environment-derived credentials for one
// upstream AI vendor. An empty APIKey puts that provider in mock mode.
type ProviderSettings struct {
	APIKey  string
	ModelID string
}

type Config struct {
	Port        string
	FrontendURL string
	// AI Providers (OpenAI-compatible chat completions)
	Doubao   ProviderSettings
	OpenAI   ProviderSettings
	DeepSeek ProviderSettings
	Moonshot ProviderSettings
	// Polish tuning
	SystemPrompt  string
	PolishTimeout time.Duration
	MockDelay     time.Duration
	// Document store persistence
	StoreDriver string // memory | file | sqlite | postgres
	StorePath   string // data directory for the file/sqlite drivers
	DBUrl       string // postgres driver only
}

// DefaultSystemPrompt is the resume-polishing instruction sent as the system
// message when the caller supplies no prompt of their own.
const DefaultSystemPrompt = "你是一个专业的简历润色助手。请优化以下简历内容，使其更加专业、简洁、有力。直接返回优化后的内容，不要包含任何解释或额外的文字。"

func LoadConfig() (*Config, error) {
	// .env only takes effect locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "3001"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Doubao: ProviderSettings{
			APIKey:  getEnv("DOUBAO_API_KEY", ""),
			ModelID: getEnv("DOUBAO_MODEL_ID", "ep-20250219195707-q588r"),
		},
		OpenAI: ProviderSettings{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			ModelID: getEnv("OPENAI_MODEL_ID", "gpt-3.5-turbo"),
		},
		DeepSeek: ProviderSettings{
			APIKey:  getEnv("DEEPSEEK_API_KEY", ""),
			ModelID: getEnv("DEEPSEEK_MODEL_ID", "deepseek-chat"),
		},
		Moonshot: ProviderSettings{
			APIKey:  getEnv("MOONSHOT_API_KEY", ""),
			ModelID: getEnv("MOONSHOT_MODEL_ID", "moonshot-v1-8k"),
		},
		SystemPrompt:  getEnv("POLISH_SYSTEM_PROMPT", DefaultSystemPrompt),
		PolishTimeout: time.Duration(getEnvInt("POLISH_TIMEOUT_SECONDS", 60)) * time.Second,
		MockDelay:     time.Duration(getEnvInt("POLISH_MOCK_DELAY_MS", 1000)) * time.Millisecond,
		StoreDriver:   getEnv("STORE_DRIVER", "file"),
		StorePath:     getEnv("STORE_PATH", "./data"),
		DBUrl:         getEnv("DATABASE_URL", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
