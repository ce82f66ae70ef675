package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LinQu/SOGSCup/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

func (h *StandingsHandler) GroupStandings(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")

	table, err := h.standingsService.ComputeStandings(r.Context(), group)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"group": group, "table": table}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) GroupReadiness(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")

	readiness, err := h.standingsService.GroupReadiness(r.Context(), group)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"group": group, "readiness": readiness}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) AllStandings(w http.ResponseWriter, r *http.Request) {
	groups, err := h.standingsService.AllGroupStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
