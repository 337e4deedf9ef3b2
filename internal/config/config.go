package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config application settings
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Acts     ActsConfig
	Groq     GroqConfig
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig database settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// ActsConfig acts service settings.
// An empty ServiceURL means acts are read from this process's own database.
type ActsConfig struct {
	ServiceURL string
	Timeout    time.Duration
}

// GroqConfig Groq API settings
type GroqConfig struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Load reads settings from environment variables
func Load() (*Config, error) {
	// load .env if present
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 10)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 10)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			Username: getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "nyaysahayak"),
		},
		Acts: ActsConfig{
			ServiceURL: getEnv("ACTS_SERVICE_URL", ""),
			Timeout:    time.Duration(getEnvAsInt("ACTS_SERVICE_TIMEOUT", 10)) * time.Second,
		},
		Groq: GroqConfig{
			APIURL:  getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
			APIKey:  getEnv("GROQ_API_KEY", ""),
			Model:   getEnv("GROQ_MODEL", "llama3-8b-8192"),
			Timeout: time.Duration(getEnvAsInt("GROQ_TIMEOUT", 60)) * time.Second,
		},
	}

	return config, nil
}

// getEnv returns the environment variable or the default when unset
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt returns the environment variable as an integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
