package airports

import (
	"github.com/fareboard/fareboard/internal/booking"
)

// Arc is one route drawn on the 2D/3D map layer: origin and destination
// coordinates plus the booking volume on that route.
type Arc struct {
	Route       string     `json:"route"`
	DisplayName string     `json:"displayName"`
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
	Count       int        `json:"count"`
}

// Arcs builds the map arcs for records, one per distinct route in first-seen
// order. Routes whose airport codes have no coordinates are skipped; the map
// draws what it can place and ignores the rest.
func Arcs(records []booking.Record) []Arc {
	counts := make(map[string]int)
	order := []string{}
	for _, rec := range records {
		code := rec.Route
		if len(code) != 6 {
			continue
		}
		if _, ok := counts[code]; !ok {
			order = append(order, code)
		}
		counts[code]++
	}

	arcs := make([]Arc, 0, len(order))
	for _, code := range order {
		origin, ok := airportCoords[code[:3]]
		if !ok {
			continue
		}
		dest, ok := airportCoords[code[3:]]
		if !ok {
			continue
		}

		arcs = append(arcs, Arc{
			Route:       code,
			DisplayName: RouteDisplayName(code),
			Origin:      origin,
			Destination: dest,
			Count:       counts[code],
		})
	}
	return arcs
}
