package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/logger"
)

// Geocoder turns a position into a place name
type Geocoder interface {
	Reverse(ctx context.Context, pos Position) (string, error)
}

// GeocoderFunc adapts a function to Geocoder
type GeocoderFunc func(ctx context.Context, pos Position) (string, error)

func (f GeocoderFunc) Reverse(ctx context.Context, pos Position) (string, error) {
	return f(ctx, pos)
}

// Nominatim reverse-geocodes against an OpenStreetMap Nominatim server
type Nominatim struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	HTTP      *http.Client
}

// NewNominatim creates a geocoder for baseURL with the default 5s timeout
func NewNominatim(baseURL string) *Nominatim {
	return &Nominatim{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: constants.GeocodeUserAgent,
		Timeout:   constants.GeocodeTimeout,
		HTTP:      &http.Client{},
	}
}

type reverseResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
}

// nameParts are tried in order within each group; the first hit of each
// group contributes one part of the place name.
var nameParts = [][]string{
	{"office", "amenity", "building", "shop", "industrial"},
	{"neighbourhood", "suburb", "road"},
	{"city", "town", "village"},
}

// Reverse returns a short place name such as "Acme Tower, Madhapur, Hyderabad"
func (n *Nominatim) Reverse(ctx context.Context, pos Position) (string, error) {
	if n.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.Timeout)
		defer cancel()
	}

	q := url.Values{
		"format":         {"json"},
		"lat":            {strconv.FormatFloat(pos.Latitude, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(pos.Longitude, 'f', -1, 64)},
		"zoom":           {"18"},
		"addressdetails": {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", n.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	return placeName(body)
}

func placeName(body reverseResponse) (string, error) {
	var parts []string
	for _, group := range nameParts {
		for _, key := range group {
			if v := strings.TrimSpace(body.Address[key]); v != "" {
				parts = append(parts, v)
				break
			}
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", "), nil
	}

	var display []string
	for _, p := range strings.Split(body.DisplayName, ",") {
		if p = strings.TrimSpace(p); p != "" {
			display = append(display, p)
		}
		if len(display) == 3 {
			break
		}
	}
	if len(display) == 0 {
		return "", fmt.Errorf("reverse geocode: no place name")
	}
	return strings.Join(display, ", "), nil
}

// Describe labels a position as "name (lat, lon)", or just the coordinates
// when the geocoder is nil or fails.
func Describe(ctx context.Context, g Geocoder, pos Position) string {
	coords := pos.Coordinates()
	if g == nil {
		return coords
	}
	name, err := g.Reverse(ctx, pos)
	if err != nil {
		logger.Warn("reverse geocode failed, using coordinates", "err", err)
		return coords
	}
	return fmt.Sprintf("%s (%s)", name, coords)
}
