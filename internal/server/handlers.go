package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"chisa-farm-backend/internal/apierr"
	"chisa-farm-backend/internal/intent"
	"chisa-farm-backend/internal/llm"
	"chisa-farm-backend/internal/prompts"
	"chisa-farm-backend/internal/types"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.UserPrompt) == "" {
		s.writeError(w, http.StatusBadRequest, "user_prompt is required")
		return
	}

	// Free-text price questions are routed to the market analyst persona.
	// The caller's system prompt does not carry over.
	if intent.Detect(req.UserPrompt) == intent.KindMarket {
		s.completeMarket(w, r, types.MarketRequest{
			UserPrompt:      req.UserPrompt,
			LangInstruction: req.LangInstruction,
		})
		return
	}

	system, user := s.prompts.Chat(req.SystemPrompt, req.UserPrompt, req.LangInstruction)
	s.complete(w, r, llm.TextMessages(system, user), s.cfg.Model, prompts.FeatureChat)
}

func (s *Server) handleVision(w http.ResponseWriter, r *http.Request) {
	var req types.VisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Image == "" {
		s.writeError(w, http.StatusBadRequest, "Image data is required")
		return
	}
	system := s.prompts.Vision(req.SystemPrompt, req.LangInstruction)
	s.complete(w, r, llm.ImageMessages(system, req.Image), s.cfg.VisionModel, prompts.FeatureVision)
}

func (s *Server) handleSoilVision(w http.ResponseWriter, r *http.Request) {
	var req types.VisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Image == "" {
		s.writeError(w, http.StatusBadRequest, "Image data is required")
		return
	}
	system := s.prompts.SoilVision(req.LangInstruction)
	s.complete(w, r, llm.ImageMessages(system, req.Image), s.cfg.VisionModel, prompts.FeatureSoilVision)
}

func (s *Server) handleVisionLocal(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusServiceUnavailable,
		"Local vision stack (TensorFlow/OpenCV) is not available in this deployment. Use the Groq Vision engine instead.")
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	var req types.CalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Crop) == "" {
		s.writeError(w, http.StatusBadRequest, "crop is required")
		return
	}
	system, user := s.prompts.Calendar(req.Crop, req.Location, req.Season, req.LangInstruction)
	s.complete(w, r, llm.TextMessages(system, user), s.cfg.Model, prompts.FeatureCalendar)
}

func (s *Server) handleIrrigation(w http.ResponseWriter, r *http.Request) {
	var req types.IrrigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Crop) == "" {
		s.writeError(w, http.StatusBadRequest, "crop is required")
		return
	}
	system, user := s.prompts.Irrigation(req.Crop, req.GrowthStage, req.Climate, req.LangInstruction)
	s.complete(w, r, llm.TextMessages(system, user), s.cfg.Model, prompts.FeatureIrrigation)
}

func (s *Server) handleFertilizers(w http.ResponseWriter, r *http.Request) {
	var req types.FertilizerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Crop) == "" {
		s.writeError(w, http.StatusBadRequest, "crop is required")
		return
	}
	system, user := s.prompts.Fertilizer(req.Crop, req.SoilType, req.Goal, req.Problem, req.Region, req.LangInstruction)
	s.complete(w, r, llm.TextMessages(system, user), s.cfg.Model, prompts.FeatureFertilizer)
}

func (s *Server) handleMarketPrices(w http.ResponseWriter, r *http.Request) {
	var req types.MarketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.completeMarket(w, r, req)
}

// completeMarket serves both the dedicated endpoint and chat redirects. No
// field is strictly required; the assembler applies the fallback chains.
func (s *Server) completeMarket(w http.ResponseWriter, r *http.Request, req types.MarketRequest) {
	system, user := s.prompts.Market(req.Crop, req.Region, req.District, req.UserPrompt, req.LangInstruction)
	s.complete(w, r, llm.TextMessages(system, user), s.cfg.Model, prompts.FeatureMarket)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon := r.URL.Query().Get("lat"), r.URL.Query().Get("lon")
	if lat == "" || lon == "" {
		s.writeError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}
	raw, err := s.weather.Current(r.Context(), lat, lon)
	if err != nil {
		s.writeError(w, apierr.HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	lat, lon := r.URL.Query().Get("lat"), r.URL.Query().Get("lon")
	if lat == "" || lon == "" {
		s.writeError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}
	raw, err := s.weather.Forecast(r.Context(), lat, lon)
	if err != nil {
		s.writeError(w, apierr.HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}
