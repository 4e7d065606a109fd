package main

import (
	"fmt"
	"log"
	"net/http"

	"chisa-farm-backend/internal/config"
	"chisa-farm-backend/internal/llm"
	"chisa-farm-backend/internal/prompts"
	"chisa-farm-backend/internal/server"
	"chisa-farm-backend/internal/weather"
)

func main() {
	cfg := config.Load()

	asm := prompts.NewAssembler()
	if cfg.PersonasFile != "" {
		if err := asm.LoadOverrides(cfg.PersonasFile); err != nil {
			log.Fatalf("failed to load personas file: %v", err)
		}
	}

	gateway := llm.NewClient(cfg.GroqAPIKey, cfg.GroqBaseURL)
	wapi := weather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL)

	s := server.NewServer(cfg, gateway, wapi, asm)
	addr := ":" + cfg.Port
	fmt.Printf("CHISA server listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, s.Router()))
}
