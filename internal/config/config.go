// Package config loads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
)

// Config holds every setting of the service
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	LogLevel     string

	DBPath   string
	CanvasID string

	GeminiAPIKey     string
	GeminiModelImage string

	PublicWebURL string

	// DisplayWidth is the assumed browser width used to pick the mini-map layout
	DisplayWidth float64
	CanvasWidth  float64
	CanvasHeight float64
}

// Load reads .env (if present) and then the environment
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		logutil.Debugf("[config] loaded .env")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only
func FromEnv() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 60),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		DBPath:   getEnv("KANVAS_DB_PATH", "data/db/kanvas.db"),
		CanvasID: getEnv("CANVAS_ID", "default"),

		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModelImage: getEnv("GEMINI_MODEL_IMAGE", "gemini-2.0-flash-preview-image-generation"),

		PublicWebURL: os.Getenv("PUBLIC_WEB_URL"),

		DisplayWidth: getEnvAsFloat("MINIMAP_DISPLAY_WIDTH", 1280),
		CanvasWidth:  getEnvAsFloat("CANVAS_WIDTH", 1280),
		CanvasHeight: getEnvAsFloat("CANVAS_HEIGHT", 800),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		logutil.Warnf("[config] %s=%q is not an integer, using %d", key, value, defaultVal)
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		logutil.Warnf("[config] %s=%q is not a number, using %g", key, value, defaultVal)
	}
	return defaultVal
}
