package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/LinQu/SOGSCup/services"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export builds a standings/schedule/finalists file. ?format=csv|xlsx picks
// the encoding (csv by default); ?upload=true additionally pushes the file
// to object storage and returns its public URL instead of the bytes.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	kind := services.ExportKind(chi.URLParam(r, "kind"))

	format := services.FormatCSV
	if f := r.URL.Query().Get("format"); f != "" {
		format = services.ExportFormat(f)
	}

	upload, _ := strconv.ParseBool(r.URL.Query().Get("upload"))
	if upload {
		file, result, err := h.exportService.BuildAndUpload(r.Context(), kind, format)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		response := jsonResponse{
			"file": file.Name,
			"key":  result.Key,
			"url":  result.Location,
		}
		if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	file, err := h.exportService.Build(r.Context(), kind, format)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+file.Name+"\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		fmt.Printf("Error writing export response: %v\n", err)
	}
}
