package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleResponse = `{
	"current_weather": {"temperature": 23.4, "windspeed": 7.2, "weathercode": 3},
	"daily": {
		"time": ["2026-08-28", "2026-08-29"],
		"temperature_2m_max": [27.1, 26.5],
		"temperature_2m_min": [16.8, 17.0],
		"weathercode": [3, 61],
		"precipitation_sum": [0.0, 4.2]
	}
}`

func testClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:   baseURL,
		Latitude:  -3.0024,
		Longitude: 119.8204,
		Timezone:  "Asia/Makassar",
		CacheTTL:  time.Minute,
	}, nil, zap.NewNop())
}

func TestForecastParsesUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("current_weather"))
		assert.Equal(t, "Asia/Makassar", q.Get("timezone"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	fc := testClient(srv.URL).Forecast(context.Background())
	require.NotNil(t, fc)
	assert.False(t, fc.Fallback)
	assert.Equal(t, 23.4, fc.Current.TemperatureC)
	assert.Equal(t, 3, fc.Current.WeatherCode)
	require.Len(t, fc.Daily, 2)
	assert.Equal(t, "2026-08-29", fc.Daily[1].Date)
	assert.Equal(t, 4.2, fc.Daily[1].PrecipitationMm)
}

func TestForecastFallsBackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fc := testClient(srv.URL).Forecast(context.Background())
	require.NotNil(t, fc)
	assert.True(t, fc.Fallback)
	assert.NotEmpty(t, fc.Daily)
}

func TestForecastFallsBackWhenUnreachable(t *testing.T) {
	fc := testClient("http://127.0.0.1:1").Forecast(context.Background())
	require.NotNil(t, fc)
	assert.True(t, fc.Fallback)
}
