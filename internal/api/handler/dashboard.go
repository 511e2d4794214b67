// Package handler provides HTTP handlers for the Fareboard API.
package handler

import (
	"errors"
	"net/http"

	"github.com/fareboard/fareboard/internal/airports"
	"github.com/fareboard/fareboard/internal/analytics"
	"github.com/fareboard/fareboard/internal/api/models"
	"github.com/fareboard/fareboard/internal/api/response"
)

// DashboardHandler handles the dashboard projection endpoints.
type DashboardHandler struct {
	service *analytics.Service
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *analytics.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// selectionFromQuery builds a filter selection from the route and tripType
// query parameters. Absent parameters leave the facet unconstrained.
func selectionFromQuery(r *http.Request) analytics.Selection {
	q := r.URL.Query()
	return analytics.Selection{
		Route:    q.Get("route"),
		TripType: q.Get("tripType"),
	}
}

// validateSelection validates sel against the loaded facets, writing a 400
// problem response on failure. Returns false when the request was rejected.
func validateSelection(w http.ResponseWriter, r *http.Request, service *analytics.Service, sel analytics.Selection) bool {
	err := service.ValidateSelection(sel)
	if err == nil {
		return true
	}

	var fieldErrors []models.FieldError
	switch {
	case errors.Is(err, analytics.ErrUnknownRoute):
		fieldErrors = []models.FieldError{{
			Field:   "route",
			Message: "not a route of the loaded dataset",
			Code:    "unknown_facet",
		}}
	case errors.Is(err, analytics.ErrUnknownTripType):
		fieldErrors = []models.FieldError{{
			Field:   "tripType",
			Message: "not a trip type of the loaded dataset",
			Code:    "unknown_facet",
		}}
	}

	response.BadRequest(w, r, "unknown filter value", fieldErrors)
	return false
}

// GetSummary handles GET /v1/dashboard/summary - stat cards and chart projections.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sel := selectionFromQuery(r)
	if !validateSelection(w, r, h.service, sel) {
		return
	}

	summary := h.service.Summarize(sel)
	response.JSON(w, r, http.StatusOK, models.NewSummaryResponse(sel, summary))
}

// GetFacets handles GET /v1/dashboard/facets - selectable filter values.
func (h *DashboardHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets := h.service.Facets()
	response.JSON(w, r, http.StatusOK, models.FacetsResponse{
		Routes:    facets.Routes,
		TripTypes: facets.TripTypes,
	})
}

// GetRecords handles GET /v1/dashboard/records - the filtered record set.
func (h *DashboardHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	sel := selectionFromQuery(r)
	if !validateSelection(w, r, h.service, sel) {
		return
	}

	records := h.service.Records(sel)
	response.JSON(w, r, http.StatusOK, models.RecordsResponse{
		Filter:  models.FilterEcho{Route: sel.Route, TripType: sel.TripType},
		Count:   len(records),
		Records: records,
	})
}

// GetMap handles GET /v1/dashboard/map - route arcs for the map layer.
func (h *DashboardHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	sel := selectionFromQuery(r)
	if !validateSelection(w, r, h.service, sel) {
		return
	}

	response.JSON(w, r, http.StatusOK, models.MapResponse{
		Filter: models.FilterEcho{Route: sel.Route, TripType: sel.TripType},
		Arcs:   airports.Arcs(h.service.Records(sel)),
	})
}
