package handlers

import (
	"net/http"

	"github.com/LinQu/SOGSCup/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bracketService services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bracketService}
}

// Current returns the stored draw without regenerating anything: repeated
// reads see the same bracket until an explicit generate or shuffle.
func (h *BracketHandler) Current(w http.ResponseWriter, r *http.Request) {
	draw, err := h.bracketService.CurrentDraw()
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"draw": draw, "pairings": draw.Pairings()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) Generate(w http.ResponseWriter, r *http.Request) {
	draw, err := h.bracketService.GenerateDraw(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"draw": draw, "pairings": draw.Pairings()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	draw, err := h.bracketService.ShuffleDraw(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"draw": draw, "pairings": draw.Pairings()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report, err := h.bracketService.Readiness(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, report, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) Finalists(w http.ResponseWriter, r *http.Request) {
	finalists, err := h.bracketService.Finalists(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"finalists": finalists}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
