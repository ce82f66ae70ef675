package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/LinQu/SOGSCup/models"
)

// Playable-court thresholds: light drizzle and a gentle breeze are fine,
// anything above calls the session off.
const (
	maxPlayableRainMM  = 0.5
	maxPlayableWindKmh = 15.0
)

const openWeatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

type WeatherService interface {
	CourtConditions(ctx context.Context) (*models.CourtConditions, error)
}

type openWeatherService struct {
	apiKey   string
	lat      float64
	lon      float64
	endpoint string
	client   *http.Client
}

func NewWeatherService(apiKey string, lat, lon float64) WeatherService {
	return &openWeatherService{
		apiKey:   apiKey,
		lat:      lat,
		lon:      lon,
		endpoint: openWeatherEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// openWeatherResponse picks the handful of fields the verdict needs out of
// the OpenWeatherMap current-weather payload.
type openWeatherResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s with units=metric
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

func (s *openWeatherService) CourtConditions(ctx context.Context) (*models.CourtConditions, error) {
	if s.apiKey == "" {
		return nil, ErrWeatherUnavailable
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(s.lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(s.lon, 'f', -1, 64))
	query.Set("appid", s.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather service returned status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	condition := "-"
	if len(payload.Weather) > 0 {
		condition = payload.Weather[0].Main
	}
	windKmh := payload.Wind.Speed * 3.6

	return &models.CourtConditions{
		Condition:     condition,
		RainMMPerHour: payload.Rain.OneHour,
		WindKmh:       windKmh,
		CanPlay:       payload.Rain.OneHour <= maxPlayableRainMM && windKmh <= maxPlayableWindKmh,
	}, nil
}
