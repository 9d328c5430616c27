package handler

import (
	"net/http"

	"pesona/pkg/weather"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	client *weather.Client
}

func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{client: client}
}

// Forecast always answers success-shaped; the client serves a static
// fallback payload when the upstream is down so page rendering never breaks.
func (h *WeatherHandler) Forecast(c *gin.Context) {
	respondData(c, http.StatusOK, h.client.Forecast(c.Request.Context()))
}
