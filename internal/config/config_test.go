package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGIN", "GROQ_API_KEY", "GROQ_BASE_URL",
		"GROQ_MODEL", "GROQ_VISION_MODEL", "OPENWEATHER_API_KEY",
		"OPENWEATHER_BASE_URL", "WEB_DIR", "PERSONAS_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("AllowedOrigin = %q, want *", cfg.AllowedOrigin)
	}
	if cfg.GroqBaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("GroqBaseURL = %q", cfg.GroqBaseURL)
	}
	if cfg.Model != defaultModel || cfg.VisionModel != defaultModel {
		t.Errorf("models = %q / %q", cfg.Model, cfg.VisionModel)
	}
	if cfg.OpenWeatherBaseURL != "https://api.openweathermap.org/data/2.5" {
		t.Errorf("OpenWeatherBaseURL = %q", cfg.OpenWeatherBaseURL)
	}
	if cfg.WebDir != "web" {
		t.Errorf("WebDir = %q, want web", cfg.WebDir)
	}
	// No embedded fallback secrets.
	if cfg.GroqAPIKey != "" || cfg.OpenWeatherAPIKey != "" {
		t.Error("API keys must come from the environment only")
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-custom")
	t.Setenv("PERSONAS_FILE", "prompts/personas.yaml")

	cfg := Load()
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.GroqAPIKey != "gsk_test" {
		t.Errorf("GroqAPIKey = %q", cfg.GroqAPIKey)
	}
	if cfg.Model != "llama-custom" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.PersonasFile != "prompts/personas.yaml" {
		t.Errorf("PersonasFile = %q", cfg.PersonasFile)
	}
}
