package domain

import "github.com/pietrodll/school-projects/internal/geo"

// PathStrategy ranks the network's stations to choose where a trip
// starts and ends. FindEndStation recomputes only the return side,
// which is what a re-route after an alert needs.
type PathStrategy interface {
	FindPath(start, end geo.Point, class BikeClass) (pickup, ret *Station, err error)
	FindEndStation(start, end geo.Point, class BikeClass) (*Station, error)
}

// Itinerary is a planned trip: the raw start and end points, and once
// computed, the chosen pickup and return stations together with the
// strategy that chose them. The return station may later be replaced by
// a re-route without recomputing the pickup side.
type Itinerary struct {
	start        geo.Point
	end          geo.Point
	class        BikeClass
	startStation *Station
	endStation   *Station
	strategy     PathStrategy
}

func NewItinerary(start, end geo.Point) *Itinerary {
	return &Itinerary{start: start, end: end}
}

func (it *Itinerary) Start() geo.Point        { return it.start }
func (it *Itinerary) End() geo.Point          { return it.end }
func (it *Itinerary) StartStation() *Station  { return it.startStation }
func (it *Itinerary) EndStation() *Station    { return it.endStation }
func (it *Itinerary) Strategy() PathStrategy  { return it.strategy }

// ComputePath fills in the pickup and return stations using the given
// strategy and records it for later re-routes.
func (it *Itinerary) ComputePath(ps PathStrategy, class BikeClass) error {
	pickup, ret, err := ps.FindPath(it.start, it.end, class)
	if err != nil {
		return err
	}
	it.startStation = pickup
	it.endStation = ret
	it.strategy = ps
	it.class = class
	return nil
}

// ReplaceEndStation swaps the return station, keeping the pickup one.
func (it *Itinerary) ReplaceEndStation(s *Station) {
	it.endStation = s
}
