package places

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"resty.dev/v3"

	"renova-server/internal/utils/httpclients"
)

const (
	nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	detailsURL      = "https://maps.googleapis.com/maps/api/place/details/json"

	detailFields = "name,geometry,rating,formatted_phone_number,opening_hours,formatted_address,website,price_level,types"
)

// Place is the detail record returned for a single place ID.
type Place struct {
	PlaceID    string
	Name       string
	Latitude   float64
	Longitude  float64
	Rating     float64
	Phone      string
	Address    string
	Website    string
	PriceLevel *int
	Types      []string
	Hours      []string
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID string `json:"place_id"`
	} `json:"results"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name     string `json:"name"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Rating       float64 `json:"rating"`
		Phone        string  `json:"formatted_phone_number"`
		OpeningHours struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Address    string   `json:"formatted_address"`
		Website    string   `json:"website"`
		PriceLevel *int     `json:"price_level"`
		Types      []string `json:"types"`
	} `json:"result"`
}

// Client queries the Google Places API. A client with no API key reports
// itself unavailable and callers fall back to their own data.
type Client struct {
	apiKey string
	http   *resty.Client
}

// NewClient builds a Places client. The key may be empty.
func NewClient(apiKey string, timeout time.Duration) *Client {
	http := httpclients.NewClient("google-places")
	if timeout > 0 {
		http.SetTimeout(timeout)
	}
	return &Client{apiKey: apiKey, http: http}
}

// Available reports whether an API key was configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// NearbyIDs runs a nearby search for one place type and returns the place
// IDs of the matches.
func (c *Client) NearbyIDs(ctx context.Context, latitude, longitude float64, radius int, placeType string) ([]string, error) {
	var body nearbyResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"location": fmt.Sprintf("%f,%f", latitude, longitude),
			"radius":   strconv.Itoa(radius),
			"type":     placeType,
			"key":      c.apiKey,
		}).
		SetResult(&body).
		Get(nearbySearchURL)
	if err != nil {
		return nil, fmt.Errorf("places nearby search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places nearby search: status %d", resp.StatusCode())
	}
	if body.Status != "OK" {
		return nil, nil
	}

	ids := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		ids = append(ids, r.PlaceID)
	}
	return ids, nil
}

// Details fetches the detail record for one place ID.
func (c *Client) Details(ctx context.Context, placeID string) (*Place, error) {
	var body detailsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"place_id": placeID,
			"fields":   detailFields,
			"key":      c.apiKey,
		}).
		SetResult(&body).
		Get(detailsURL)
	if err != nil {
		return nil, fmt.Errorf("places details: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places details: status %d", resp.StatusCode())
	}
	if body.Status != "OK" {
		return nil, nil
	}

	r := body.Result
	return &Place{
		PlaceID:    placeID,
		Name:       r.Name,
		Latitude:   r.Geometry.Location.Lat,
		Longitude:  r.Geometry.Location.Lng,
		Rating:     r.Rating,
		Phone:      r.Phone,
		Address:    r.Address,
		Website:    r.Website,
		PriceLevel: r.PriceLevel,
		Types:      r.Types,
		Hours:      r.OpeningHours.WeekdayText,
	}, nil
}
