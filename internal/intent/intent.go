package intent

import "strings"

type Kind string

const (
	KindGeneral Kind = "general"
	KindMarket  Kind = "market"
)

// Rule maps a keyword set to an intent. Rules are evaluated in order and the
// first hit wins.
type Rule struct {
	Keywords []string
	Kind     Kind
}

var rules = []Rule{
	{Keywords: []string{"price", "mandi", "market", "trend", "prediction"}, Kind: KindMarket},
}

// Detect performs simple keyword heuristics over a free-text prompt.
func Detect(message string) Kind {
	m := strings.ToLower(strings.TrimSpace(message))
	if m == "" {
		return KindGeneral
	}
	for _, r := range rules {
		if containsAny(m, r.Keywords) {
			return r.Kind
		}
	}
	return KindGeneral
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
