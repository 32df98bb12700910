package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   string
	}{
		{name: "same point", lat1: 40.7589, lon1: -73.9851, lat2: 40.7589, lon2: -73.9851, want: "0 m"},
		{name: "sub kilometer", lat1: 40.7589, lon1: -73.9851, lat2: 40.7610, lon2: -73.9851, want: "233 m"},
		{name: "kilometers", lat1: 40.7589, lon1: -73.9851, lat2: 40.7282, lon2: -74.0776, want: "8.5 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2))
		})
	}
}

func TestCategoryForPlaceTypes(t *testing.T) {
	assert.Equal(t, "Paint & Coatings", CategoryForPlaceTypes([]string{"point_of_interest", "paint_store"}))
	assert.Equal(t, "Flooring Specialists", CategoryForPlaceTypes([]string{"flooring_store", "hardware_store"}))
	assert.Equal(t, "Hardware & Tools", CategoryForPlaceTypes([]string{"bakery"}))
	assert.Equal(t, "Hardware & Tools", CategoryForPlaceTypes(nil))
}

func TestItemsForCategory(t *testing.T) {
	assert.Equal(t, []string{"Paint", "Stains", "Primers", "Brushes", "Rollers"}, ItemsForCategory("Paint & Coatings"))
	assert.Equal(t, []string{"General Renovation Items"}, ItemsForCategory("Unheard Of"))
}
