package path

import (
	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
)

// FastestPath minimizes the total trip time. The return station is the
// plain nearest to the destination, full or not; the pickup station
// minimizes walking time to it plus riding time to the return station.
// Without a class preference it solves for electric and mechanic
// independently and keeps the faster pair, electric on a tie.
type FastestPath struct {
	net    *domain.Network
	speeds Speeds
}

func NewFastestPath(net *domain.Network, speeds Speeds) *FastestPath {
	return &FastestPath{net: net, speeds: speeds}
}

func (fp *FastestPath) FindPath(start, end geo.Point, class domain.BikeClass) (*domain.Station, *domain.Station, error) {
	if class == domain.BikeAny {
		return fp.findPathAnyClass(start, end)
	}
	stations := fp.net.Stations()
	ret, err := minStation(stations, distanceCompare(end))
	if err != nil {
		return nil, nil, err
	}
	pickup, err := minStation(stations, fastestCompare(start, ret.Position(), class, fp.speeds))
	if err != nil {
		return nil, nil, err
	}
	return pickup, ret, nil
}

func (fp *FastestPath) findPathAnyClass(start, end geo.Point) (*domain.Station, *domain.Station, error) {
	ePickup, eRet, err := fp.FindPath(start, end, domain.BikeElectric)
	if err != nil {
		return nil, nil, err
	}
	mPickup, mRet, err := fp.FindPath(start, end, domain.BikeMechanic)
	if err != nil {
		return nil, nil, err
	}
	eTime := fp.tripTime(start, end, ePickup, eRet, domain.BikeElectric)
	mTime := fp.tripTime(start, end, mPickup, mRet, domain.BikeMechanic)
	if eTime <= mTime {
		return ePickup, eRet, nil
	}
	return mPickup, mRet, nil
}

// tripTime is walking to the pickup plus riding to the return station
// plus walking from it to the destination.
func (fp *FastestPath) tripTime(start, end geo.Point, pickup, ret *domain.Station, class domain.BikeClass) float64 {
	ride := pickup.Position().DistanceTo(ret.Position()) / fp.speeds.For(class)
	walk := (start.DistanceTo(pickup.Position()) + end.DistanceTo(ret.Position())) / fp.speeds.Walking
	return ride + walk
}

func (fp *FastestPath) FindEndStation(start, end geo.Point, class domain.BikeClass) (*domain.Station, error) {
	return minStation(fp.net.Stations(), distanceCompare(end))
}
