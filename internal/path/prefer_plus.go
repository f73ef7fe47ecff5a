package path

import (
	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
)

// PreferPlus picks the pickup station like MinimalWalking, but for the
// return side prefers a plus-class station as long as the extra
// distance stays within the detour factor of the closest candidate.
type PreferPlus struct {
	net    *domain.Network
	detour float64
}

// NewPreferPlus builds the strategy. The detour factor is the accepted
// multiple of the closest return distance, 1.10 by default.
func NewPreferPlus(net *domain.Network, detour float64) *PreferPlus {
	if detour <= 0 {
		detour = 1.10
	}
	return &PreferPlus{net: net, detour: detour}
}

func (pp *PreferPlus) FindPath(start, end geo.Point, class domain.BikeClass) (*domain.Station, *domain.Station, error) {
	stations := pp.net.Stations()
	pickup, err := minStation(stations, startCompare(start, class))
	if err != nil {
		return nil, nil, err
	}
	ret, err := pp.FindEndStation(start, end, class)
	if err != nil {
		return nil, nil, err
	}
	return pickup, ret, nil
}

// FindEndStation walks the return ranking and takes the first plus
// station within the detour threshold, stopping the scan as soon as a
// candidate exceeds it. Without one, the closest station wins.
func (pp *PreferPlus) FindEndStation(start, end geo.Point, class domain.BikeClass) (*domain.Station, error) {
	stations := pp.net.Stations()
	if len(stations) == 0 {
		return nil, domain.ErrNoStations
	}
	sorted := sortStations(stations, endCompare(end))
	threshold := pp.detour * end.DistanceTo(sorted[0].Position())
	for _, s := range sorted {
		dist := end.DistanceTo(s.Position())
		if dist > threshold {
			break
		}
		if s.Class() == domain.StationPlus {
			return s, nil
		}
	}
	return sorted[0], nil
}
