package models

import (
	"github.com/fareboard/fareboard/internal/airports"
	"github.com/fareboard/fareboard/internal/analytics"
	"github.com/fareboard/fareboard/internal/booking"
)

// ChartPoint is a label/value pair for pie and bar charts.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RouteVolume is one bar of the top-routes chart.
type RouteVolume struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}

// RouteLead is one point of the average-purchase-lead chart.
type RouteLead struct {
	Route   string  `json:"route"`
	Average float64 `json:"avg"`
}

// DashboardStats are the stat-card totals.
type DashboardStats struct {
	Total           int     `json:"total"`
	CompletionRate  string  `json:"completionRate"`
	TotalPassengers int     `json:"totalPassengers"`
	AvgPurchaseLead float64 `json:"avgPurchaseLead"`
}

// SummaryResponse is the full dashboard payload for one filter selection.
type SummaryResponse struct {
	Status        string         `json:"status"`
	Filter        FilterEcho     `json:"filter"`
	Stats         DashboardStats `json:"stats"`
	Completion    []ChartPoint   `json:"completion"`
	TripTypes     []ChartPoint   `json:"tripTypes"`
	SalesChannels []ChartPoint   `json:"salesChannels"`
	TopOrigins    []ChartPoint   `json:"topOrigins"`
	FlightDays    []ChartPoint   `json:"flightDays"`
	Passengers    []ChartPoint   `json:"passengers"`
	ExtrasCounts  []ChartPoint   `json:"extrasCounts"`
	TopRoutes     []RouteVolume  `json:"topRoutes"`
	AverageLead   []RouteLead    `json:"averageLead"`
}

// FilterEcho reflects the applied selection back to the client.
type FilterEcho struct {
	Route    string `json:"route,omitempty"`
	TripType string `json:"tripType,omitempty"`
}

// FacetsResponse lists the selectable filter values.
type FacetsResponse struct {
	Routes    []string `json:"routes"`
	TripTypes []string `json:"tripTypes"`
}

// RecordsResponse is the filtered record set.
type RecordsResponse struct {
	Filter  FilterEcho       `json:"filter"`
	Count   int              `json:"count"`
	Records []booking.Record `json:"records"`
}

// MapResponse carries the route arcs for the 2D/3D map layer.
type MapResponse struct {
	Filter FilterEcho     `json:"filter"`
	Arcs   []airports.Arc `json:"arcs"`
}

// NewSummaryResponse maps an analytics summary into the API shape.
func NewSummaryResponse(sel analytics.Selection, summary analytics.Summary) SummaryResponse {
	resp := SummaryResponse{
		Status: string(summary.Status),
		Filter: FilterEcho{Route: sel.Route, TripType: sel.TripType},
		Stats: DashboardStats{
			Total:           summary.Stats.Total,
			CompletionRate:  summary.Stats.CompletionRate,
			TotalPassengers: summary.Stats.TotalPassengers,
			AvgPurchaseLead: summary.Stats.AvgPurchaseLead,
		},
		Completion:    chartPoints(summary.Completion),
		TripTypes:     chartPoints(summary.TripTypes),
		SalesChannels: chartPoints(summary.SalesChannels),
		TopOrigins:    chartPoints(summary.TopOrigins),
		FlightDays:    chartPoints(summary.FlightDays),
		Passengers:    chartPoints(summary.Passengers),
		ExtrasCounts:  chartPoints(summary.ExtrasCounts),
		TopRoutes:     make([]RouteVolume, 0, len(summary.TopRoutes)),
		AverageLead:   make([]RouteLead, 0, len(summary.AverageLead)),
	}

	for _, p := range summary.TopRoutes {
		resp.TopRoutes = append(resp.TopRoutes, RouteVolume{Route: p.Route, Count: p.Count})
	}
	for _, p := range summary.AverageLead {
		resp.AverageLead = append(resp.AverageLead, RouteLead{Route: p.Route, Average: p.Average})
	}

	return resp
}

func chartPoints(points []analytics.NameValue) []ChartPoint {
	out := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, ChartPoint{Name: p.Name, Value: p.Value})
	}
	return out
}
