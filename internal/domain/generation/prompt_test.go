package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilders(t *testing.T) {
	assert.Equal(t,
		"Transform this image to create a detailed and photorealistic image based on: modern sofa",
		UploadPrompt("modern sofa"))
	assert.Equal(t,
		"Create a detailed and photorealistic interior design image based on: modern sofa",
		InteriorPrompt("modern sofa"))
	assert.Equal(t,
		"Transform this interior space to create a detailed and photorealistic renovation based on: modern sofa",
		InteriorUploadPrompt("modern sofa"))
}

func TestCostPromptEmbedsCountryAndPlatforms(t *testing.T) {
	prompt := CostPrompt("scandi kitchen", "Germany")

	assert.Contains(t, prompt, `"scandi kitchen" in Germany`)
	assert.Contains(t, prompt, "Germany-specific pricing")
	assert.Contains(t, prompt, "hornbach.de")
	assert.Contains(t, prompt, `"total_cost": "amount with currency"`)
}

func TestShoppingPlatformsFor(t *testing.T) {
	assert.Contains(t, ShoppingPlatformsFor("United States"), "homedepot.com")
	assert.Contains(t, ShoppingPlatformsFor("united states"), "homedepot.com")
	assert.Equal(t, globalShoppingPlatforms, ShoppingPlatformsFor("Atlantis"))
}
