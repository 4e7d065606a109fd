package intent

import "testing"

func TestDetectMarketKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Kind
	}{
		{"price", "what is the price of wheat today?", KindMarket},
		{"mandi", "nearest mandi rates for onion", KindMarket},
		{"market", "market outlook for cotton", KindMarket},
		{"trend", "show me the trend for soybean", KindMarket},
		{"prediction", "any prediction for tomato rates", KindMarket},
		{"uppercase", "PRICE of wheat", KindMarket},
		{"mixed case", "Market Trends please", KindMarket},
		{"general question", "how do I grow rice in clay soil?", KindGeneral},
		{"empty", "", KindGeneral},
		{"whitespace", "   ", KindGeneral},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.message); got != tc.want {
				t.Errorf("Detect(%q) = %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestDetectMatchesSubstrings(t *testing.T) {
	// The rule is a substring match, not a word match.
	if got := Detect("is the crop marketable?"); got != KindMarket {
		t.Errorf("expected substring hit on 'market', got %q", got)
	}
	if got := Detect("is this unpredictable?"); got != KindGeneral {
		t.Errorf("'prediction' is not a substring here, got %q", got)
	}
}
