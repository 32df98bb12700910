package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCostEstimateEmbeddedObject(t *testing.T) {
	text := `Here is the estimate: {"total_cost":"$500","currency":"USD","breakdown":[],"items":[]}`

	got := ExtractCostEstimate(text)

	assert.Equal(t, "$500", got["total_cost"])
	assert.Equal(t, "USD", got["currency"])
	assert.Equal(t, []any{}, got["breakdown"])
	assert.Equal(t, []any{}, got["items"])
	assert.NotContains(t, got, "raw_response")
}

func TestExtractCostEstimateSurroundingProse(t *testing.T) {
	text := "Sure! Based on your renovation:\n```json\n" +
		`{"total_cost":"12,000 EUR","currency":"EUR","breakdown":[{"category":"labor","cost":"4,000 EUR","description":"install"}],"items":[{"item":"sofa","cost":"900 EUR","quantity":"1"}]}` +
		"\n```\nLet me know if you need more detail."

	got := ExtractCostEstimate(text)

	require.Equal(t, "12,000 EUR", got["total_cost"])
	breakdown, ok := got["breakdown"].([]any)
	require.True(t, ok)
	require.Len(t, breakdown, 1)
	entry, ok := breakdown[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "labor", entry["category"])
}

func TestExtractCostEstimateNoJSONSpan(t *testing.T) {
	text := "I cannot provide a cost estimate for that request."

	got := ExtractCostEstimate(text)

	assert.Equal(t, CostEstimate{
		"total_cost":   "Cost estimation unavailable",
		"currency":     "USD",
		"breakdown":    []any{},
		"items":        []any{},
		"raw_response": text,
	}, got)
}

func TestExtractCostEstimateMalformedJSON(t *testing.T) {
	text := `Estimate: {"total_cost": "$500", "currency": }`

	got := ExtractCostEstimate(text)

	assert.Equal(t, "Cost estimation unavailable", got["total_cost"])
	assert.Equal(t, text, got["raw_response"])
}

func TestExtractCostEstimateEmptyText(t *testing.T) {
	got := ExtractCostEstimate("")

	assert.Equal(t, "Cost estimation unavailable", got["total_cost"])
	assert.Equal(t, "", got["raw_response"])
}

func TestExtractRooms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain array",
			text: `["Living Room", "Kitchen", "Bathroom"]`,
			want: []string{"Living Room", "Kitchen", "Bathroom"},
		},
		{
			name: "array in prose",
			text: "The plan contains these rooms:\n[\"Bedroom\", \"Hallway\"]\nHope that helps.",
			want: []string{"Bedroom", "Hallway"},
		},
		{
			name: "object entries with name field",
			text: `[{"name": "Kitchen", "area": 12}, {"name": "Bathroom"}]`,
			want: []string{"Kitchen", "Bathroom"},
		},
		{
			name: "no array",
			text: "There are no rooms visible.",
			want: nil,
		},
		{
			name: "malformed array",
			text: `["Kitchen", `,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRooms(tt.text))
		})
	}
}
