package handlers

import (
	"net/http"

	"github.com/LinQu/SOGSCup/services"
)

type WeatherHandler struct {
	weatherService services.WeatherService
}

func NewWeatherHandler(weatherService services.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

func (h *WeatherHandler) CourtConditions(w http.ResponseWriter, r *http.Request) {
	conditions, err := h.weatherService.CourtConditions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"conditions": conditions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
