// Package weather proxies the Open-Meteo forecast API for the site's fixed
// coordinates. Responses are cached in Redis when available, and upstream
// failures degrade to a static fallback so page rendering never breaks.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKey = "weather:forecast"

type Config struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Timezone  string
	CacheTTL  time.Duration
}

// Forecast is the payload served to the frontend.
type Forecast struct {
	Current  Current `json:"current"`
	Daily    []Day   `json:"daily"`
	Fallback bool    `json:"fallback"` // true when serving the static payload
}

type Current struct {
	TemperatureC float64 `json:"temperatureC"`
	WindSpeedKmh float64 `json:"windSpeedKmh"`
	WeatherCode  int     `json:"weatherCode"`
}

type Day struct {
	Date            string  `json:"date"`
	MinC            float64 `json:"minC"`
	MaxC            float64 `json:"maxC"`
	WeatherCode     int     `json:"weatherCode"`
	PrecipitationMm float64 `json:"precipitationMm"`
}

// fallbackForecast is served when the upstream is unreachable and nothing is
// cached. Typical highland conditions for the region.
var fallbackForecast = Forecast{
	Current: Current{TemperatureC: 24, WindSpeedKmh: 6, WeatherCode: 2},
	Daily: []Day{
		{Date: "", MinC: 17, MaxC: 27, WeatherCode: 2},
		{Date: "", MinC: 17, MaxC: 26, WeatherCode: 3},
		{Date: "", MinC: 16, MaxC: 27, WeatherCode: 2},
		{Date: "", MinC: 17, MaxC: 26, WeatherCode: 61},
		{Date: "", MinC: 17, MaxC: 27, WeatherCode: 2},
	},
	Fallback: true,
}

// openMeteoResponse mirrors the subset of the Open-Meteo schema we read.
type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily struct {
		Time             []string  `json:"time"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		WeatherCode      []int     `json:"weathercode"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      *redis.Client // nil disables caching
	log        *zap.Logger
}

func NewClient(cfg Config, cache *redis.Client, log *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 8 * time.Second},
		cache:      cache,
		log:        log,
	}
}

// Forecast returns current conditions plus a 5-day outlook. It never returns
// an error: cache, then upstream, then the static fallback.
func (c *Client) Forecast(ctx context.Context) *Forecast {
	if cached := c.fromCache(ctx); cached != nil {
		return cached
	}
	fc, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn("weather upstream failed, serving fallback", zap.Error(err))
		fb := fallbackForecast
		return &fb
	}
	c.store(ctx, fc)
	return fc
}

func (c *Client) fetch(ctx context.Context) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", c.cfg.Latitude))
	q.Set("longitude", fmt.Sprintf("%g", c.cfg.Longitude))
	q.Set("current_weather", "true")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode,precipitation_sum")
	q.Set("forecast_days", "5")
	q.Set("timezone", c.cfg.Timezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo status %d", resp.StatusCode)
	}
	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	fc := &Forecast{
		Current: Current{
			TemperatureC: body.CurrentWeather.Temperature,
			WindSpeedKmh: body.CurrentWeather.WindSpeed,
			WeatherCode:  body.CurrentWeather.WeatherCode,
		},
	}
	for i, date := range body.Daily.Time {
		day := Day{Date: date}
		if i < len(body.Daily.TemperatureMin) {
			day.MinC = body.Daily.TemperatureMin[i]
		}
		if i < len(body.Daily.TemperatureMax) {
			day.MaxC = body.Daily.TemperatureMax[i]
		}
		if i < len(body.Daily.WeatherCode) {
			day.WeatherCode = body.Daily.WeatherCode[i]
		}
		if i < len(body.Daily.PrecipitationSum) {
			day.PrecipitationMm = body.Daily.PrecipitationSum[i]
		}
		fc.Daily = append(fc.Daily, day)
	}
	return fc, nil
}

func (c *Client) fromCache(ctx context.Context) *Forecast {
	if c.cache == nil {
		return nil
	}
	raw, err := c.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("weather cache read failed", zap.Error(err))
		}
		return nil
	}
	var fc Forecast
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil
	}
	return &fc
}

func (c *Client) store(ctx context.Context, fc *Forecast) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(fc)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey, raw, c.cfg.CacheTTL).Err(); err != nil {
		c.log.Warn("weather cache write failed", zap.Error(err))
	}
}
