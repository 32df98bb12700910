package generation

import (
	"fmt"
	"strings"
)

// Prompt builders are pure string templating over the typed request. They
// are unit-testable without any provider call.

// UploadPrompt wraps the user prompt for the image-to-image variant.
func UploadPrompt(prompt string) string {
	return fmt.Sprintf("Transform this image to create a detailed and photorealistic image based on: %s", prompt)
}

// InteriorPrompt wraps the user prompt for text-only interior generation.
func InteriorPrompt(prompt string) string {
	return fmt.Sprintf("Create a detailed and photorealistic interior design image based on: %s", prompt)
}

// InteriorUploadPrompt wraps the user prompt when an interior photo is
// supplied to transform.
func InteriorUploadPrompt(prompt string) string {
	return fmt.Sprintf("Transform this interior space to create a detailed and photorealistic renovation based on: %s", prompt)
}

// RoomsPrompt asks the model to name the rooms visible in a 3D floor plan.
func RoomsPrompt() string {
	return "Analyze this 3D floor plan or interior rendering and identify every distinct room in it. " +
		"Respond with only a JSON array of room names, for example: [\"Living Room\", \"Kitchen\"]."
}

// shoppingPlatforms lists the online platforms cost estimates may link
// items to, per country. Unknown countries get the global list.
var shoppingPlatforms = map[string][]string{
	"United States":  {"amazon.com", "homedepot.com", "lowes.com", "wayfair.com", "ikea.com"},
	"United Kingdom": {"amazon.co.uk", "wickes.co.uk", "diy.com", "ikea.com", "wayfair.co.uk"},
	"Germany":        {"amazon.de", "hornbach.de", "obi.de", "ikea.com", "otto.de"},
	"India":          {"amazon.in", "flipkart.com", "pepperfry.com", "urbanladder.com", "ikea.com"},
	"Japan":          {"amazon.co.jp", "rakuten.co.jp", "nitori-net.jp", "ikea.com"},
	"Vietnam":        {"shopee.vn", "lazada.vn", "tiki.vn", "ikea.com"},
	"Australia":      {"bunnings.com.au", "amazon.com.au", "ikea.com", "templeandwebster.com.au"},
	"Canada":         {"amazon.ca", "homedepot.ca", "rona.ca", "wayfair.ca", "ikea.com"},
}

var globalShoppingPlatforms = []string{"amazon.com", "ikea.com", "wayfair.com"}

// ShoppingPlatformsFor returns the shopping-link allow-list for a country.
func ShoppingPlatformsFor(country string) []string {
	for name, platforms := range shoppingPlatforms {
		if strings.EqualFold(name, country) {
			return platforms
		}
	}
	return globalShoppingPlatforms
}

// CostPrompt builds the cost-estimation prompt: the renovation description,
// the country for market rates, the JSON shape instruction and the shopping
// allow-list.
func CostPrompt(prompt, country string) string {
	platforms := strings.Join(ShoppingPlatformsFor(country), ", ")

	return fmt.Sprintf(`Based on the interior design renovation described as: "%s" in %s,
provide a detailed cost breakdown for the renovation. Include:

1. Total estimated cost in local currency
2. Breakdown by categories (furniture, materials, labor, etc.)
3. Individual item costs where applicable
4. Consider %s-specific pricing and market rates
5. Shopping links for items must come only from: %s

Format the response as JSON with the following structure:
{
    "total_cost": "amount with currency",
    "currency": "currency_code",
    "breakdown": [
        {"category": "category_name", "cost": "amount", "description": "details"},
        ...
    ],
    "items": [
        {"item": "item_name", "cost": "amount", "quantity": "number", "shopping_links": ["url"]},
        ...
    ]
}`, prompt, country, country, platforms)
}
