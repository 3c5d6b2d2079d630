package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports"
)

// districtTypes, most specific first. Address component granularity
// varies a lot between neighborhoods, so we fall through the chain.
var districtTypes = []string{
	"sublocality_level_1",
	"sublocality",
	"administrative_area_level_3",
	"neighborhood",
	"locality",
}

// Geocoder resolves coordinates against a geocode HTTP API, with results
// cached in Redis keyed by rounded coordinates. Cache errors are logged
// and fall through to the API.
type Geocoder struct {
	endpoint string
	apiKey   string
	client   *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewGeocoder(endpoint, apiKey string, cache *redis.Client, cacheTTL time.Duration, log logger.Logger) *Geocoder {
	return &Geocoder{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 5 * time.Second},
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

type geocodeResponse struct {
	Status  string          `json:"status"`
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []addressComponent `json:"address_components"`
}

type addressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*ports.ResolvedLocation, error) {
	key := cacheKey(lat, lon)
	if cached := g.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	reqURL := fmt.Sprintf("%s?latlng=%s&key=%s&language=en",
		g.endpoint,
		url.QueryEscape(fmt.Sprintf("%.6f,%.6f", lat, lon)),
		url.QueryEscape(g.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	var out geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if out.Status != "OK" || len(out.Results) == 0 {
		return nil, fmt.Errorf("geocoding failed: %s", out.Status)
	}

	best := out.Results[0]
	resolved := &ports.ResolvedLocation{
		Address:  best.FormattedAddress,
		District: extractDistrict(best),
	}

	g.toCache(ctx, key, resolved)

	return resolved, nil
}

func extractDistrict(result geocodeResult) string {
	for _, wanted := range districtTypes {
		for _, comp := range result.AddressComponents {
			for _, t := range comp.Types {
				if t == wanted {
					return comp.LongName
				}
			}
		}
	}
	return ""
}

func (g *Geocoder) fromCache(ctx context.Context, key string) *ports.ResolvedLocation {
	if g.cache == nil {
		return nil
	}

	raw, err := g.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			g.logger.Debug("geocode cache read failed", logger.String("error", err.Error()))
		}
		return nil
	}

	var resolved ports.ResolvedLocation
	if err = json.Unmarshal(raw, &resolved); err != nil {
		return nil
	}

	return &resolved
}

func (g *Geocoder) toCache(ctx context.Context, key string, resolved *ports.ResolvedLocation) {
	if g.cache == nil {
		return
	}

	raw, err := json.Marshal(resolved)
	if err != nil {
		return
	}
	if err = g.cache.Set(ctx, key, raw, g.cacheTTL).Err(); err != nil {
		g.logger.Debug("geocode cache write failed", logger.String("error", err.Error()))
	}
}

// Rounded to ~11m so nearby requests share a cache entry.
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("geocode:%.4f:%.4f", lat, lon)
}
