package shop

import (
	"fmt"
	"math"
)

// Shop is one renovation supplier surfaced to clients.
type Shop struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Distance    string   `json:"distance"`
	Phone       string   `json:"phone,omitempty"`
	Hours       string   `json:"hours,omitempty"`
	Address     string   `json:"address"`
	Items       []string `json:"items"`
	Website     string   `json:"website,omitempty"`
	PriceLevel  *int     `json:"price_level,omitempty"`
}

// Location is the query point a search was anchored on.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchResult is the payload of a nearby-shops lookup.
type SearchResult struct {
	Shops      []Shop   `json:"shops"`
	TotalCount int      `json:"total_count"`
	Location   Location `json:"location"`
}

// renovationPlaceTypes are the Places API types searched when no category
// filter narrows the query.
var renovationPlaceTypes = []string{
	"hardware_store",
	"home_goods_store",
	"furniture_store",
	"paint_store",
	"flooring_store",
	"lighting_store",
	"kitchen_supply_store",
	"building_materials_store",
	"lumber_store",
	"electrical_supply_store",
	"plumbing_supply_store",
}

// categoryOrder keeps /shops/categories output stable.
var categoryOrder = []string{
	"Hardware & Tools",
	"Building Materials",
	"Furniture & Decor",
	"Paint & Coatings",
	"Flooring Specialists",
	"Lighting",
	"Kitchen",
}

// categoryPlaceTypes maps a renovation category to the Places API types that
// belong to it.
var categoryPlaceTypes = map[string][]string{
	"Hardware & Tools":     {"hardware_store", "building_materials_store", "lumber_store", "electrical_supply_store", "plumbing_supply_store"},
	"Building Materials":   {"building_materials_store", "lumber_store", "hardware_store"},
	"Furniture & Decor":    {"furniture_store", "home_goods_store"},
	"Paint & Coatings":     {"paint_store", "hardware_store"},
	"Flooring Specialists": {"flooring_store", "home_goods_store"},
	"Lighting":             {"lighting_store", "home_goods_store"},
	"Kitchen":              {"kitchen_supply_store", "home_goods_store"},
}

// placeTypeCategory inverts the mapping for classifying Places results.
var placeTypeCategory = map[string]string{
	"hardware_store":           "Hardware & Tools",
	"building_materials_store": "Building Materials",
	"lumber_store":             "Building Materials",
	"electrical_supply_store":  "Hardware & Tools",
	"plumbing_supply_store":    "Hardware & Tools",
	"furniture_store":          "Furniture & Decor",
	"home_goods_store":         "Furniture & Decor",
	"paint_store":              "Paint & Coatings",
	"flooring_store":           "Flooring Specialists",
	"lighting_store":           "Lighting",
	"kitchen_supply_store":     "Kitchen",
}

// categoryItems lists representative stock per category.
var categoryItems = map[string][]string{
	"Hardware & Tools":     {"Tools", "Hardware", "Electrical", "Plumbing", "Lumber"},
	"Building Materials":   {"Lumber", "Concrete", "Insulation", "Drywall", "Roofing"},
	"Furniture & Decor":    {"Furniture", "Decor", "Storage", "Accessories", "Textiles"},
	"Paint & Coatings":     {"Paint", "Stains", "Primers", "Brushes", "Rollers"},
	"Flooring Specialists": {"Hardwood", "Tile", "Carpet", "Vinyl", "Laminate"},
	"Lighting":             {"Light Fixtures", "Bulbs", "Switches", "Outlets", "Cords"},
	"Kitchen":              {"Cabinets", "Countertops", "Appliances", "Sinks", "Faucets"},
}

const defaultCategory = "Hardware & Tools"

// CategoryForPlaceTypes classifies a Places result by its type list. The
// first recognized type wins.
func CategoryForPlaceTypes(types []string) string {
	for _, t := range types {
		if category, ok := placeTypeCategory[t]; ok {
			return category
		}
	}
	return defaultCategory
}

// ItemsForCategory returns the stock list shown for a category.
func ItemsForCategory(category string) []string {
	if items, ok := categoryItems[category]; ok {
		return items
	}
	return []string{"General Renovation Items"}
}

// FormatDistance renders the great-circle distance between two points as
// "<n> m" below one kilometer and "<n.n> km" above.
func FormatDistance(lat1, lon1, lat2, lon2 float64) string {
	const earthRadiusKm = 6371

	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusKm * c

	if distance < 1 {
		return fmt.Sprintf("%d m", int(distance*1000))
	}
	return fmt.Sprintf("%.1f km", distance)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func intPtr(v int) *int { return &v }

// staticShops is the Manhattan fallback catalogue served when the Places API
// is unconfigured or failing.
var staticShops = []Shop{
	{
		ID: "static_1", Name: "Home Depot",
		Latitude: 40.7589, Longitude: -73.9851,
		Category:    "Hardware & Tools",
		Description: "Complete home improvement store with tools, materials, and expert advice",
		Rating:      4.5,
		Phone:       "+1 (212) 555-0123",
		Hours:       "Mon-Sun: 6AM-10PM",
		Address:     "1234 Broadway, New York, NY 10001",
		Items:       []string{"Paint", "Flooring", "Hardware", "Tools", "Lighting"},
		Website:     "https://homedepot.com",
		PriceLevel:  intPtr(2),
	},
	{
		ID: "static_2", Name: "Lowe's",
		Latitude: 40.7505, Longitude: -73.9934,
		Category:    "Building Materials",
		Description: "Building supplies, appliances, and home improvement products",
		Rating:      4.3,
		Phone:       "+1 (212) 555-0234",
		Hours:       "Mon-Sun: 6AM-9PM",
		Address:     "456 6th Ave, New York, NY 10011",
		Items:       []string{"Appliances", "Flooring", "Cabinets", "Countertops", "Paint"},
		Website:     "https://lowes.com",
		PriceLevel:  intPtr(2),
	},
	{
		ID: "static_3", Name: "IKEA",
		Latitude: 40.7614, Longitude: -73.9776,
		Category:    "Furniture & Decor",
		Description: "Modern furniture, home accessories, and interior design solutions",
		Rating:      4.2,
		Phone:       "+1 (212) 555-0345",
		Hours:       "Mon-Sun: 10AM-9PM",
		Address:     "789 3rd Ave, New York, NY 10017",
		Items:       []string{"Furniture", "Storage", "Lighting", "Decor", "Kitchen"},
		Website:     "https://ikea.com",
		PriceLevel:  intPtr(1),
	},
	{
		ID: "static_4", Name: "Sherwin Williams",
		Latitude: 40.7282, Longitude: -74.0776,
		Category:    "Paint & Coatings",
		Description: "Professional paint, stains, and coating solutions",
		Rating:      4.6,
		Phone:       "+1 (212) 555-0456",
		Hours:       "Mon-Fri: 7AM-6PM, Sat: 8AM-5PM",
		Address:     "321 Hudson St, New York, NY 10013",
		Items:       []string{"Paint", "Stains", "Primers", "Brushes", "Rollers"},
		Website:     "https://sherwin-williams.com",
		PriceLevel:  intPtr(3),
	},
	{
		ID: "static_5", Name: "Floor & Decor",
		Latitude: 40.7505, Longitude: -73.9934,
		Category:    "Flooring Specialists",
		Description: "Hardwood, tile, carpet, and specialty flooring solutions",
		Rating:      4.4,
		Phone:       "+1 (212) 555-0567",
		Hours:       "Mon-Sun: 7AM-8PM",
		Address:     "654 8th Ave, New York, NY 10036",
		Items:       []string{"Hardwood", "Tile", "Carpet", "Vinyl", "Laminate"},
		Website:     "https://flooranddecor.com",
		PriceLevel:  intPtr(2),
	},
	{
		ID: "static_6", Name: "Menards",
		Latitude: 40.7614, Longitude: -73.9776,
		Category:    "Hardware & Tools",
		Description: "Home improvement and building materials with competitive prices",
		Rating:      4.1,
		Phone:       "+1 (212) 555-0678",
		Hours:       "Mon-Sun: 6AM-10PM",
		Address:     "987 2nd Ave, New York, NY 10022",
		Items:       []string{"Lumber", "Hardware", "Tools", "Electrical", "Plumbing"},
		Website:     "https://menards.com",
		PriceLevel:  intPtr(1),
	},
	{
		ID: "static_7", Name: "Benjamin Moore",
		Latitude: 40.7505, Longitude: -73.9934,
		Category:    "Paint & Coatings",
		Description: "Premium paint and color solutions for interior and exterior",
		Rating:      4.7,
		Phone:       "+1 (212) 555-0789",
		Hours:       "Mon-Fri: 7AM-7PM, Sat: 8AM-6PM",
		Address:     "147 5th Ave, New York, NY 10010",
		Items:       []string{"Premium Paint", "Color Matching", "Stains", "Primers", "Brushes"},
		Website:     "https://benjaminmoore.com",
		PriceLevel:  intPtr(4),
	},
	{
		ID: "static_8", Name: "West Elm",
		Latitude: 40.7282, Longitude: -74.0776,
		Category:    "Furniture & Decor",
		Description: "Modern furniture and home decor with contemporary design",
		Rating:      4.0,
		Phone:       "+1 (212) 555-0890",
		Hours:       "Mon-Sat: 10AM-9PM, Sun: 11AM-7PM",
		Address:     "258 Spring St, New York, NY 10012",
		Items:       []string{"Modern Furniture", "Decor", "Lighting", "Textiles", "Accessories"},
		Website:     "https://westelm.com",
		PriceLevel:  intPtr(3),
	},
	{
		ID: "static_9", Name: "Pottery Barn",
		Latitude: 40.7505, Longitude: -73.9934,
		Category:    "Furniture & Decor",
		Description: "Classic and contemporary home furnishings and decor",
		Rating:      4.3,
		Phone:       "+1 (212) 555-0901",
		Hours:       "Mon-Sat: 10AM-8PM, Sun: 11AM-7PM",
		Address:     "369 Lexington Ave, New York, NY 10017",
		Items:       []string{"Furniture", "Bedding", "Decor", "Lighting", "Rugs"},
		Website:     "https://potterybarn.com",
		PriceLevel:  intPtr(4),
	},
	{
		ID: "static_10", Name: "Bed Bath & Beyond",
		Latitude: 40.7614, Longitude: -73.9776,
		Category:    "Home Goods",
		Description: "Home goods, bedding, and household essentials",
		Rating:      4.1,
		Phone:       "+1 (212) 555-1012",
		Hours:       "Mon-Sun: 9AM-9PM",
		Address:     "741 1st Ave, New York, NY 10016",
		Items:       []string{"Bedding", "Bath", "Kitchen", "Storage", "Decor"},
		Website:     "https://bedbathandbeyond.com",
		PriceLevel:  intPtr(2),
	},
}
