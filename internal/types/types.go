package types

// ChatRequest is the body for /api/chat.
type ChatRequest struct {
	SystemPrompt    string `json:"system_prompt,omitempty"`
	UserPrompt      string `json:"user_prompt"`
	LangInstruction string `json:"lang_instruction,omitempty"`
}

// VisionRequest is the body for /api/vision and /api/soil-vision. Image is a
// data URL produced by the client-side downscaler.
type VisionRequest struct {
	Image           string `json:"image"`
	SystemPrompt    string `json:"system_prompt,omitempty"`
	LangInstruction string `json:"lang_instruction,omitempty"`
}

// CalendarRequest is the body for /api/crop-calendar.
type CalendarRequest struct {
	Crop            string `json:"crop"`
	Location        string `json:"location,omitempty"`
	Season          string `json:"season,omitempty"`
	LangInstruction string `json:"lang_instruction,omitempty"`
}

// IrrigationRequest is the body for /api/irrigation.
type IrrigationRequest struct {
	Crop            string `json:"crop"`
	GrowthStage     string `json:"growth_stage,omitempty"`
	Climate         string `json:"climate,omitempty"`
	LangInstruction string `json:"lang_instruction,omitempty"`
}

// FertilizerRequest is the body for /api/natural-fertilizers.
type FertilizerRequest struct {
	Crop            string `json:"crop"`
	SoilType        string `json:"soil_type,omitempty"`
	Goal            string `json:"goal,omitempty"`
	Problem         string `json:"problem,omitempty"`
	Region          string `json:"region,omitempty"`
	LangInstruction string `json:"lang_instruction,omitempty"`
}

// MarketRequest is the body for /api/market-prices. Every field is optional;
// the prompt assembler applies the fallback chains.
type MarketRequest struct {
	Crop            string `json:"crop,omitempty"`
	Region          string `json:"region,omitempty"`
	District        string `json:"district,omitempty"`
	UserPrompt      string `json:"user_prompt,omitempty"`
	LangInstruction string `json:"lang_instruction,omitempty"`
}

// ErrorBody matches the { "error": { "message": ... } } envelope the frontend
// expects on every failure.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
}
