package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/fareboard/fareboard/internal/analytics"
	"github.com/fareboard/fareboard/internal/api/middleware"
	"github.com/fareboard/fareboard/internal/api/response"
	"github.com/fareboard/fareboard/internal/booking"
)

// ExportHandler handles the CSV export endpoint.
type ExportHandler struct {
	service *analytics.Service
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(service *analytics.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// GetExport handles GET /v1/export - download the filtered record set as CSV.
func (h *ExportHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	sel := selectionFromQuery(r)
	if !validateSelection(w, r, h.service, sel) {
		return
	}

	records := h.service.Records(sel)

	// Encode before touching the response so a failure can still yield a
	// clean 500 instead of a truncated download.
	var buf bytes.Buffer
	if err := booking.WriteCSV(&buf, records); err != nil {
		response.InternalError(w, r, "failed to encode export")
		return
	}

	filename := "bookings-" + time.Now().UTC().Format("2006-01-02") + ".csv"

	if requestID := middleware.GetRequestID(r.Context()); requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
