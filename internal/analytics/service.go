package analytics

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/fareboard/fareboard/internal/booking"
)

// Sentinel errors for selection validation.
var (
	ErrUnknownRoute    = errors.New("analytics: route is not a facet of the loaded dataset")
	ErrUnknownTripType = errors.New("analytics: trip type is not a facet of the loaded dataset")
)

// ServiceConfig holds configuration for the analytics service.
type ServiceConfig struct {
	// Store is the dataset the service reads from.
	Store *booking.Store

	// Logger for service operations.
	Logger zerolog.Logger

	// Resolver maps route codes to display names (default: identity).
	Resolver Resolver
}

// Service computes dashboard projections over the current dataset snapshot.
// Aggregates are recomputed in full per request; the snapshot itself is the
// only cache.
type Service struct {
	store    *booking.Store
	logger   zerolog.Logger
	resolver Resolver
}

// Summary is the full dashboard payload for one filter selection.
type Summary struct {
	Status        booking.Status
	Stats         Stats
	Completion    []NameValue
	TripTypes     []NameValue
	SalesChannels []NameValue
	TopOrigins    []NameValue
	FlightDays    []NameValue
	Passengers    []NameValue
	ExtrasCounts  []NameValue
	TopRoutes     []RouteCount
	AverageLead   []RouteAverage
}

// NewService creates a new analytics service.
func NewService(cfg ServiceConfig) *Service {
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = func(code string) string { return code }
	}

	return &Service{
		store:    cfg.Store,
		logger:   cfg.Logger,
		resolver: resolver,
	}
}

// Status reports the dataset store status.
func (s *Service) Status() booking.Status {
	return s.store.Status()
}

// Facets returns the selectable filter values of the loaded dataset.
func (s *Service) Facets() FacetSet {
	return Facets(s.store.Records())
}

// Records returns the filtered record set for sel.
func (s *Service) Records(sel Selection) []booking.Record {
	return Filter(s.store.Records(), sel)
}

// Summarize computes the stat cards and all chart projections for sel.
func (s *Service) Summarize(sel Selection) Summary {
	filtered := Filter(s.store.Records(), sel)

	s.logger.Debug().
		Str("route", sel.Route).
		Str("trip_type", sel.TripType).
		Int("matched", len(filtered)).
		Msg("computed dashboard summary")

	return Summary{
		Status:        s.store.Status(),
		Stats:         ComputeStats(filtered),
		Completion:    CompletionBreakdown(filtered),
		TripTypes:     TripTypeDistribution(filtered),
		SalesChannels: SalesChannelDistribution(filtered),
		TopOrigins:    TopBookingOrigins(filtered),
		FlightDays:    FlightDayDistribution(filtered),
		Passengers:    PassengerCountDistribution(filtered),
		ExtrasCounts:  ExtrasCountDistribution(filtered),
		TopRoutes:     TopRoutesByVolume(filtered, s.resolver),
		AverageLead:   AverageLeadByRoute(filtered, s.resolver),
	}
}

// ValidateSelection checks that each constrained facet value exists in the
// loaded dataset. Empty values are always valid.
func (s *Service) ValidateSelection(sel Selection) error {
	if sel.IsZero() {
		return nil
	}

	facets := s.Facets()
	if sel.Route != "" && !contains(facets.Routes, sel.Route) {
		return ErrUnknownRoute
	}
	if sel.TripType != "" && !contains(facets.TripTypes, sel.TripType) {
		return ErrUnknownTripType
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
