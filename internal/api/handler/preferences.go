package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fareboard/fareboard/internal/api/models"
	"github.com/fareboard/fareboard/internal/api/response"
	"github.com/fareboard/fareboard/internal/preferences"
)

// PreferencesHandler handles the persisted dashboard preference endpoints.
type PreferencesHandler struct {
	service *preferences.Service
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(service *preferences.Service) *PreferencesHandler {
	return &PreferencesHandler{service: service}
}

// GetTheme handles GET /v1/preferences/theme - the persisted theme.
func (h *PreferencesHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.ThemeResponse{
		Theme: h.service.Theme(r.Context()),
	})
}

// PutTheme handles PUT /v1/preferences/theme - persist a new theme.
func (h *PreferencesHandler) PutTheme(w http.ResponseWriter, r *http.Request) {
	var req models.ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid request body", nil)
		return
	}

	if err := h.service.SetTheme(r.Context(), req.Theme); err != nil {
		if errors.Is(err, preferences.ErrInvalidTheme) {
			response.BadRequest(w, r, "invalid theme", []models.FieldError{{
				Field:   "theme",
				Message: "must be dark or light",
				Code:    "invalid_value",
			}})
			return
		}
		response.InternalError(w, r, "failed to persist theme")
		return
	}

	response.JSON(w, r, http.StatusOK, models.ThemeResponse{Theme: req.Theme})
}
