package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	GeminiTextOnly bool
	ChromePath     string
	TemplatesDir   string
	SchemaPath     string
	KnowledgePath  string
	MaxUploadBytes int64
	SessionTTL     time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "3000"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:  os.Getenv("GEMINI_BASE_URL"),
		GeminiTextOnly: getEnvBool("GEMINI_TEXT_ONLY", false),
		ChromePath:     os.Getenv("CHROME_PATH"),
		TemplatesDir:   getEnv("TEMPLATES_DIR", "templates"),
		SchemaPath:     getEnv("RESUME_SCHEMA_PATH", "templates/resume.schema.json"),
		KnowledgePath:  os.Getenv("KNOWLEDGE_PATH"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 5*1024*1024),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
