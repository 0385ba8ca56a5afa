package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"tour-backend/models"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org"

// WeatherService calls the OpenWeather current-conditions endpoint. The
// lookup is best-effort enrichment: callers drop the result on any error
// and never surface it to the user.
type WeatherService struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewWeatherService(apiKey string) *WeatherService {
	return &WeatherService{
		APIKey:  apiKey,
		BaseURL: defaultWeatherBaseURL,
		// Bounded timeout so a slow provider cannot stall listing requests.
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches the current conditions for a destination in metric
// units. Failures come back as one of the ErrWeather* sentinels.
func (s *WeatherService) Current(destination string) (*models.Weather, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		return nil, fmt.Errorf("%w: api key not configured", ErrWeatherRequest)
	}

	endpoint := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		s.BaseURL, url.QueryEscape(destination), url.QueryEscape(s.APIKey))

	resp, err := s.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrWeatherStatus, resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherDecode, err)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: missing weather block", ErrWeatherDecode)
	}

	return &models.Weather{
		City:        payload.Name,
		Temp:        payload.Main.Temp,
		Description: titleCase(payload.Weather[0].Description),
		Icon:        payload.Weather[0].Icon,
		Humidity:    payload.Main.Humidity,
		Wind:        payload.Wind.Speed,
		FeelsLike:   payload.Main.FeelsLike,
	}, nil
}

// titleCase upper-cases the first letter of each word, e.g.
// "scattered clouds" -> "Scattered Clouds".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
