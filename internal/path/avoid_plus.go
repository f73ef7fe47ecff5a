package path

import (
	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
)

// AvoidPlus ranks stations like MinimalWalking but skips plus-class
// stations: the first standard station in ranking order wins, falling
// back to the overall best when every station is plus.
type AvoidPlus struct {
	net *domain.Network
}

func NewAvoidPlus(net *domain.Network) *AvoidPlus {
	return &AvoidPlus{net: net}
}

func (ap *AvoidPlus) FindPath(start, end geo.Point, class domain.BikeClass) (*domain.Station, *domain.Station, error) {
	stations := ap.net.Stations()
	if len(stations) == 0 {
		return nil, nil, domain.ErrNoStations
	}
	pickup := firstNonPlus(sortStations(stations, startCompare(start, class)))
	ret := firstNonPlus(sortStations(stations, endCompare(end)))
	return pickup, ret, nil
}

func (ap *AvoidPlus) FindEndStation(start, end geo.Point, class domain.BikeClass) (*domain.Station, error) {
	stations := ap.net.Stations()
	if len(stations) == 0 {
		return nil, domain.ErrNoStations
	}
	return firstNonPlus(sortStations(stations, endCompare(end))), nil
}

func firstNonPlus(sorted []*domain.Station) *domain.Station {
	for _, s := range sorted {
		if s.Class() != domain.StationPlus {
			return s
		}
	}
	return sorted[0]
}
