package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

// Coordinates is one geocoded point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Geocoder turns a postal address into coordinates. A nil result with
// a nil error means the address could not be resolved; callers treat
// that as "no pin on the map", not a failure.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}

type httpGeocoder struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewHTTPGeocoder(config utils.GeocoderConfig, log *zap.Logger) Geocoder {
	return &httpGeocoder{
		baseURL: config.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *httpGeocoder) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s",
		g.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error("Geocode request failed",
			zap.Error(err),
			zap.String("address", address),
		)
		return nil, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode %q: unexpected status %d", address, resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode longitude: %w", err)
	}

	return &Coordinates{Lat: lat, Lng: lng}, nil
}
