package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	// Groq (OpenAI-compatible chat completions)
	GroqAPIKey  string
	GroqBaseURL string
	Model       string
	VisionModel string
	// OpenWeather
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	// Frontend assets root (templates/ and static/ live under it)
	WebDir string
	// Optional YAML file overriding per-feature system personas
	PersonasFile string
}

const defaultModel = "meta-llama/llama-4-scout-17b-16e-instruct"

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:               getEnvDefault("PORT", "8080"),
		AllowedOrigin:      getEnvDefault("ALLOWED_ORIGIN", "*"),
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:        getEnvDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:              getEnvDefault("GROQ_MODEL", defaultModel),
		VisionModel:        getEnvDefault("GROQ_VISION_MODEL", defaultModel),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: getEnvDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WebDir:             getEnvDefault("WEB_DIR", "web"),
		PersonasFile:       os.Getenv("PERSONAS_FILE"),
	}
	if cfg.GroqAPIKey == "" {
		log.Println("warning: GROQ_API_KEY is not set; AI calls will fail until provided")
	}
	if cfg.OpenWeatherAPIKey == "" {
		log.Println("warning: OPENWEATHER_API_KEY is not set; weather calls will fail until provided")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
