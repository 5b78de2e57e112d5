package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Admin    AdminConfig
	Database DatabaseConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	DataDir            string
	KnowledgeFilePath  string
}

type AuthConfig struct {
	JwtSecret string
}

type AdminConfig struct {
	ApiKey     string
	OwnerEmail string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	OpenAIKey     string
	OpenAIModel   string
	OllamaBaseURL string
	OllamaModel   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			DataDir:            getEnv("DATA_DIR", "data"),
			KnowledgeFilePath:  getEnv("KNOWLEDGE_FILE_PATH", "data/knowledge.json"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", "memory_vault_secret_key_2026"),
		},
		Admin: AdminConfig{
			ApiKey:     getEnv("ADMIN_API_KEY", ""),
			OwnerEmail: getEnv("ADMIN_OWNER_EMAIL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
		},
	}

	// The JWT middleware reads the secret from the environment, so make
	// sure the default is visible there too.
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", cfg.Auth.JwtSecret)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
