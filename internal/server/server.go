package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	openai "github.com/sashabaranov/go-openai"

	"chisa-farm-backend/internal/apierr"
	"chisa-farm-backend/internal/config"
	"chisa-farm-backend/internal/llm"
	"chisa-farm-backend/internal/prompts"
	"chisa-farm-backend/internal/types"
	"chisa-farm-backend/internal/weather"
)

type Server struct {
	router  *chi.Mux
	cfg     config.Config
	gateway llm.Gateway
	weather weather.API
	prompts *prompts.Assembler
}

func NewServer(cfg config.Config, gateway llm.Gateway, wapi weather.API, asm *prompts.Assembler) *Server {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	s := &Server{
		router:  r,
		cfg:     cfg,
		gateway: gateway,
		weather: wapi,
		prompts: asm,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Post("/api/vision", s.handleVision)
	s.router.Post("/api/soil-vision", s.handleSoilVision)
	s.router.Post("/api/vision-local", s.handleVisionLocal)
	s.router.Post("/api/crop-calendar", s.handleCalendar)
	s.router.Post("/api/irrigation", s.handleIrrigation)
	s.router.Post("/api/natural-fertilizers", s.handleFertilizers)
	s.router.Post("/api/market-prices", s.handleMarketPrices)
	s.router.Get("/api/weather", s.handleWeather)
	s.router.Get("/api/forecast", s.handleForecast)

	// Frontend
	s.router.Get("/", s.handleIndex)
	staticRoot := http.Dir(filepath.Join(s.cfg.WebDir, "static"))
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(staticRoot)))
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.cfg.WebDir, "templates", "index.html"))
}

// completionResponse forwards the provider response fields and merges in the
// feature label consumed by the frontend history panel.
type completionResponse struct {
	openai.ChatCompletionResponse
	Function string `json:"function"`
}

// complete runs the single upstream attempt shared by all AI-backed handlers.
func (s *Server) complete(w http.ResponseWriter, r *http.Request, messages []openai.ChatCompletionMessage, model string, feature prompts.Feature) {
	resp, err := s.gateway.Complete(r.Context(), messages, model)
	if err != nil {
		s.writeError(w, apierr.HTTPStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, completionResponse{
		ChatCompletionResponse: *resp,
		Function:               feature.Label(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, types.ErrorBody{Error: types.ErrorDetail{Message: msg}})
}
