package generation

import (
	"encoding/json"
	"regexp"
	"strings"
)

// CostEstimate is the parsed cost-estimation document. It stays a generic
// JSON object so whatever the model produced round-trips to the client
// unchanged.
type CostEstimate = map[string]any

// Greedy across the whole text. Correct while the model emits a single JSON
// object per response; trailing prose containing another brace pair would
// over-capture.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ExtractCostEstimate locates the JSON object embedded in free-form model
// text and parses it. Any failure, missing span or malformed JSON, yields
// the fallback structure carrying the original text verbatim. Never fails.
func ExtractCostEstimate(text string) CostEstimate {
	span := jsonObjectPattern.FindString(text)
	if span != "" {
		var parsed CostEstimate
		if err := json.Unmarshal([]byte(span), &parsed); err == nil {
			return parsed
		}
	}
	return CostEstimate{
		"total_cost":   "Cost estimation unavailable",
		"currency":     "USD",
		"breakdown":    []any{},
		"items":        []any{},
		"raw_response": text,
	}
}

// ExtractRooms locates a JSON array of room names in model text. It returns
// nil when no usable array is present; callers substitute their fallback
// list.
func ExtractRooms(text string) []string {
	span := jsonArrayPattern.FindString(text)
	if span == "" {
		return nil
	}

	var raw []any
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil
	}

	var rooms []string
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if name := strings.TrimSpace(v); name != "" {
				rooms = append(rooms, name)
			}
		case map[string]any:
			if name, ok := v["name"].(string); ok && strings.TrimSpace(name) != "" {
				rooms = append(rooms, strings.TrimSpace(name))
			}
		}
	}
	return rooms
}
