package prompts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feature identifies one user-facing capability backed by the AI provider.
type Feature string

const (
	FeatureChat       Feature = "chat"
	FeatureVision     Feature = "vision"
	FeatureSoilVision Feature = "soil-vision"
	FeatureCalendar   Feature = "crop-calendar"
	FeatureIrrigation Feature = "irrigation"
	FeatureFertilizer Feature = "natural-fertilizers"
	FeatureMarket     Feature = "market-prices"
)

var labels = map[Feature]string{
	FeatureChat:       "AI Assistant",
	FeatureVision:     "Plant Vision",
	FeatureSoilVision: "Soil Vision",
	FeatureCalendar:   "Crop Calendar",
	FeatureIrrigation: "Irrigation Management",
	FeatureFertilizer: "Natural Fertilizer Guide",
	FeatureMarket:     "Market Prices",
}

// Label is the "function" tag merged into every successful response.
func (f Feature) Label() string {
	return labels[f]
}

// Field defaults used when the caller omits an optional field.
const (
	DefaultLocation   = "India"
	DefaultSeason     = "the current season"
	DefaultStage      = "general"
	DefaultClimate    = "not specified"
	DefaultSoilType   = "unspecified soil type"
	DefaultGoal       = "improve yield and soil health using only natural inputs"
	DefaultRegion     = "India"
	DefaultMarketCrop = "crops"
	DefaultMarketArea = "local region"
)

// Assembler turns caller-supplied fields into the system/user prompt pair for
// a feature. Assembly is a pure function of its inputs: the same fields always
// yield byte-identical prompts.
type Assembler struct {
	personas map[Feature]string
}

func NewAssembler() *Assembler {
	p := make(map[Feature]string, len(defaultPersonas))
	for k, v := range defaultPersonas {
		p[k] = v
	}
	return &Assembler{personas: p}
}

// personaFile is the YAML shape of an optional persona override file.
type personaFile struct {
	Personas map[string]string `yaml:"personas"`
}

// LoadOverrides replaces base personas for the features named in a YAML file.
// Rules suffixes and user templates are not overridable.
func (a *Assembler) LoadOverrides(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var pf personaFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return fmt.Errorf("parse personas file: %w", err)
	}
	for name, text := range pf.Personas {
		f := Feature(name)
		if _, ok := a.personas[f]; !ok {
			return fmt.Errorf("personas file: unknown feature %q", name)
		}
		if text != "" {
			a.personas[f] = text
		}
	}
	return nil
}

// Chat composes the general assistant prompts. A caller persona, when present,
// replaces the base persona but never the rules suffix.
func (a *Assembler) Chat(systemPrompt, userPrompt, lang string) (string, string) {
	persona := systemPrompt
	if persona == "" {
		persona = a.personas[FeatureChat]
	}
	return persona + chatRules + lang, userPrompt
}

// Vision composes the crop-image system prompt. The user turn carries only
// the image, so no user string is produced.
func (a *Assembler) Vision(systemPrompt, lang string) string {
	persona := systemPrompt
	if persona == "" {
		persona = a.personas[FeatureVision]
	}
	return persona + visionRules + lang
}

// SoilVision composes the soil-image system prompt. The persona is fixed;
// callers cannot substitute it.
func (a *Assembler) SoilVision(lang string) string {
	return a.personas[FeatureSoilVision] + lang
}

func (a *Assembler) Calendar(crop, location, season, lang string) (string, string) {
	if location == "" {
		location = DefaultLocation
	}
	if season == "" {
		season = DefaultSeason
	}
	user := fmt.Sprintf("Generate a detailed crop calendar for %s in %s during %s.", crop, location, season)
	return a.personas[FeatureCalendar] + lang, user
}

func (a *Assembler) Irrigation(crop, growthStage, climate, lang string) (string, string) {
	if growthStage == "" {
		growthStage = DefaultStage
	}
	if climate == "" {
		climate = DefaultClimate
	}
	user := fmt.Sprintf("Recommend an irrigation schedule for %s at %s growth stage. Soil/climate condition: %s.", crop, growthStage, climate)
	return a.personas[FeatureIrrigation] + lang, user
}

func (a *Assembler) Fertilizer(crop, soilType, goal, problem, region, lang string) (string, string) {
	if soilType == "" {
		soilType = DefaultSoilType
	}
	if goal == "" {
		goal = DefaultGoal
	}
	if region == "" {
		region = DefaultRegion
	}
	if problem == "" {
		problem = "none specified"
	}
	user := fmt.Sprintf("Farmer details:\n"+
		"- Crop: %s\n"+
		"- Soil type/condition: %s\n"+
		"- Region: %s\n"+
		"- Main goal: %s\n"+
		"- Field notes / problems: %s\n\n"+
		"Generate a natural / organic fertilizer management plan for this situation.",
		crop, soilType, region, goal, problem)
	return a.personas[FeatureFertilizer] + lang, user
}

// Market applies the fallback chains: crop, then free text, then a generic
// subject; district, then region, then a generic phrase.
func (a *Assembler) Market(crop, region, district, userPrompt, lang string) (string, string) {
	subject := crop
	if subject == "" {
		subject = userPrompt
	}
	if subject == "" {
		subject = DefaultMarketCrop
	}
	area := district
	if area == "" {
		area = region
	}
	if area == "" {
		area = DefaultMarketArea
	}
	user := fmt.Sprintf("Fetch or simulate market prices for %s in %s. Provide current price range, trends, and a short-term outlook. Include approximate mandi prices in INR per quintal.", subject, area)
	return a.personas[FeatureMarket] + lang, user
}
