package path

import (
	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
)

// MinimalWalking picks the pickup station nearest to the start point
// that has a matching bike, and the return station nearest to the
// destination that has a free slot.
type MinimalWalking struct {
	net *domain.Network
}

func NewMinimalWalking(net *domain.Network) *MinimalWalking {
	return &MinimalWalking{net: net}
}

func (mw *MinimalWalking) FindPath(start, end geo.Point, class domain.BikeClass) (*domain.Station, *domain.Station, error) {
	stations := mw.net.Stations()
	pickup, err := minStation(stations, startCompare(start, class))
	if err != nil {
		return nil, nil, err
	}
	ret, err := minStation(stations, endCompare(end))
	if err != nil {
		return nil, nil, err
	}
	return pickup, ret, nil
}

func (mw *MinimalWalking) FindEndStation(start, end geo.Point, class domain.BikeClass) (*domain.Station, error) {
	return minStation(mw.net.Stations(), endCompare(end))
}
