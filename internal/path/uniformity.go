package path

import (
	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
)

// Uniformity nudges traffic toward emptier parts of the network: among
// the stations within the detour factor of the closest candidate, the
// pickup side prefers the one with the most matching bikes and the
// return side the one with the most free slots.
type Uniformity struct {
	net    *domain.Network
	detour float64
}

// NewUniformity builds the strategy. The detour factor is the accepted
// multiple of the closest distance, 1.05 by default.
func NewUniformity(net *domain.Network, detour float64) *Uniformity {
	if detour <= 0 {
		detour = 1.05
	}
	return &Uniformity{net: net, detour: detour}
}

func (u *Uniformity) FindPath(start, end geo.Point, class domain.BikeClass) (*domain.Station, *domain.Station, error) {
	stations := u.net.Stations()
	if len(stations) == 0 {
		return nil, nil, domain.ErrNoStations
	}
	pickup := scanWithin(sortStations(stations, startCompare(start, class)), start, u.detour, func(s *domain.Station) int {
		return s.CountAvailableBikes(class)
	})
	ret := scanWithin(sortStations(stations, endCompare(end)), end, u.detour, freeSlots)
	return pickup, ret, nil
}

func (u *Uniformity) FindEndStation(start, end geo.Point, class domain.BikeClass) (*domain.Station, error) {
	stations := u.net.Stations()
	if len(stations) == 0 {
		return nil, domain.ErrNoStations
	}
	return scanWithin(sortStations(stations, endCompare(end)), end, u.detour, freeSlots), nil
}

func freeSlots(s *domain.Station) int {
	return s.CountFreeSlots()
}

// scanWithin walks the ranking and keeps the best-scoring station among
// those within the detour factor of the closest one, the closer of two
// equal scores winning. The scan stops at the first station beyond the
// threshold.
func scanWithin(sorted []*domain.Station, ref geo.Point, detour float64, score func(*domain.Station) int) *domain.Station {
	threshold := detour * ref.DistanceTo(sorted[0].Position())
	best := sorted[0]
	for _, s := range sorted {
		if ref.DistanceTo(s.Position()) > threshold {
			break
		}
		if score(s) > score(best) {
			best = s
		}
	}
	return best
}
