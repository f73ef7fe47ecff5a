// Package path implements the station-selection strategies used to
// plan itineraries over a bike network.
package path

import (
	"sort"

	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
)

// Speeds are the travel speeds used by time-based ranking, in
// distance units per minute-fraction consistent with the map scale.
type Speeds struct {
	Walking  float64
	Electric float64
	Mechanic float64
}

func DefaultSpeeds() Speeds {
	return Speeds{Walking: 4, Electric: 20, Mechanic: 15}
}

// For returns the riding speed of a bike class. The any-class value
// rides at mechanic speed.
func (s Speeds) For(class domain.BikeClass) float64 {
	if class == domain.BikeElectric {
		return s.Electric
	}
	return s.Mechanic
}

// compareFunc orders two stations; negative means a ranks before b.
type compareFunc func(a, b *domain.Station) int

// availabilityRank folds availability into a distance ordering: an
// unavailable station goes behind any available one regardless of
// distance; between two stations of equal availability the distance
// ordering stands.
func availabilityRank(diff float64, a1, a2 bool) int {
	switch {
	case diff < 0:
		if a1 {
			return -1
		}
		if a2 {
			return 1
		}
		return 0
	case diff > 0:
		if a2 {
			return 1
		}
		if a1 {
			return -1
		}
		return 0
	default:
		if a1 == a2 {
			return 0
		}
		if a1 {
			return -1
		}
		return 1
	}
}

// distanceCompare orders by plain distance to a reference point.
func distanceCompare(p geo.Point) compareFunc {
	return func(a, b *domain.Station) int {
		diff := p.DistanceTo(a.Position()) - p.DistanceTo(b.Position())
		switch {
		case diff < 0:
			return -1
		case diff > 0:
			return 1
		default:
			return 0
		}
	}
}

// startCompare orders pickup candidates: by distance to the start
// point, with stations lacking a matching bike pushed back.
func startCompare(p geo.Point, class domain.BikeClass) compareFunc {
	return func(a, b *domain.Station) int {
		diff := p.DistanceTo(a.Position()) - p.DistanceTo(b.Position())
		return availabilityRank(diff, a.HasBikeAvailable(class), b.HasBikeAvailable(class))
	}
}

// endCompare orders return candidates: by distance to the destination,
// with full stations pushed back.
func endCompare(p geo.Point) compareFunc {
	return func(a, b *domain.Station) int {
		diff := p.DistanceTo(a.Position()) - p.DistanceTo(b.Position())
		return availabilityRank(diff, !a.Full(), !b.Full())
	}
}

// fastestCompare orders pickup candidates by total trip time: walking
// from the start point to the station, then riding to the return
// point. Availability folds in the same way as startCompare.
func fastestCompare(start, returnPoint geo.Point, class domain.BikeClass, speeds Speeds) compareFunc {
	speed := speeds.For(class)
	return func(a, b *domain.Station) int {
		walkDiff := start.DistanceTo(a.Position()) - start.DistanceTo(b.Position())
		rideDiff := returnPoint.DistanceTo(a.Position()) - returnPoint.DistanceTo(b.Position())
		timeDiff := walkDiff/speeds.Walking + rideDiff/speed
		return availabilityRank(timeDiff, a.HasBikeAvailable(class), b.HasBikeAvailable(class))
	}
}

// minStation returns the first station that no other ranks before,
// keeping the earliest of equals.
func minStation(stations []*domain.Station, cmp compareFunc) (*domain.Station, error) {
	if len(stations) == 0 {
		return nil, domain.ErrNoStations
	}
	best := stations[0]
	for _, s := range stations[1:] {
		if cmp(s, best) < 0 {
			best = s
		}
	}
	return best, nil
}

// sortStations returns a copy of the stations ordered by cmp, equals
// keeping their original order.
func sortStations(stations []*domain.Station, cmp compareFunc) []*domain.Station {
	sorted := make([]*domain.Station, len(stations))
	copy(sorted, stations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) < 0
	})
	return sorted
}
