package shop

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"renova-server/internal/infrastructure/places"
)

// PlacesClient is the slice of the Places API the service needs.
type PlacesClient interface {
	Available() bool
	NearbyIDs(ctx context.Context, latitude, longitude float64, radius int, placeType string) ([]string, error)
	Details(ctx context.Context, placeID string) (*places.Place, error)
}

// Service answers nearby-shop lookups, preferring live Places data and
// falling back to the static catalogue whenever the live path yields nothing.
type Service struct {
	client     PlacesClient
	maxResults int
	log        zerolog.Logger
}

// NewService wires the shop service. maxResults caps the live result set.
func NewService(client PlacesClient, maxResults int, log zerolog.Logger) *Service {
	if maxResults <= 0 {
		maxResults = 20
	}
	return &Service{
		client:     client,
		maxResults: maxResults,
		log:        log.With().Str("component", "shop").Logger(),
	}
}

// Nearby returns shops around the given point, every entry annotated with
// its distance from that point. This call never fails: any live-lookup error
// degrades to the static catalogue.
func (s *Service) Nearby(ctx context.Context, latitude, longitude float64, radius int, category string) *SearchResult {
	shops := s.fromPlaces(ctx, latitude, longitude, radius, category)
	if len(shops) == 0 {
		shops = s.fromStatic(category)
	}

	for i := range shops {
		shops[i].Distance = FormatDistance(latitude, longitude, shops[i].Latitude, shops[i].Longitude)
	}

	return &SearchResult{
		Shops:      shops,
		TotalCount: len(shops),
		Location:   Location{Latitude: latitude, Longitude: longitude},
	}
}

// Categories lists the renovation categories and their place-type mapping.
func (s *Service) Categories() ([]string, map[string][]string) {
	categories := make([]string, len(categoryOrder))
	copy(categories, categoryOrder)
	return categories, categoryPlaceTypes
}

func (s *Service) fromPlaces(ctx context.Context, latitude, longitude float64, radius int, category string) []Shop {
	if s.client == nil || !s.client.Available() {
		return nil
	}

	placeTypes := renovationPlaceTypes
	if types, ok := categoryPlaceTypes[category]; ok {
		placeTypes = types
	}

	seen := make(map[string]struct{})
	var shops []Shop
	for _, placeType := range placeTypes {
		ids, err := s.client.NearbyIDs(ctx, latitude, longitude, radius, placeType)
		if err != nil {
			s.log.Warn().Err(err).Str("place_type", placeType).Msg("nearby search failed, falling back to static data")
			return nil
		}
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			place, err := s.client.Details(ctx, id)
			if err != nil {
				s.log.Warn().Err(err).Str("place_id", id).Msg("place details lookup failed")
				continue
			}
			if place == nil {
				continue
			}
			seen[id] = struct{}{}
			shops = append(shops, shopFromPlace(place))
			if len(shops) >= s.maxResults {
				return shops
			}
		}
	}
	return shops
}

func (s *Service) fromStatic(category string) []Shop {
	shops := make([]Shop, 0, len(staticShops))
	for _, shop := range staticShops {
		if category != "" && shop.Category != category {
			continue
		}
		shops = append(shops, shop)
	}
	return shops
}

func shopFromPlace(place *places.Place) Shop {
	category := CategoryForPlaceTypes(place.Types)

	name := place.Name
	if name == "" {
		name = "Unknown Store"
	}
	address := place.Address
	if address == "" {
		address = "Address not available"
	}
	hours := "Hours not available"
	if len(place.Hours) > 0 {
		hours = place.Hours[0]
	}

	return Shop{
		ID:          place.PlaceID,
		Name:        name,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		Category:    category,
		Description: fmt.Sprintf("%s store offering renovation and home improvement products", category),
		Rating:      place.Rating,
		Phone:       place.Phone,
		Hours:       hours,
		Address:     address,
		Items:       ItemsForCategory(category),
		Website:     place.Website,
		PriceLevel:  place.PriceLevel,
	}
}
