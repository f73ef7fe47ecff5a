package domain

import (
	"errors"
	"sync"
	"time"

	"github.com/pietrodll/school-projects/internal/geo"
	"github.com/pietrodll/school-projects/internal/ident"
)

// StationClass distinguishes plus stations, which grant bonus time
// credit on every bike return, from standard ones.
type StationClass string

const (
	StationStandard StationClass = "standard"
	StationPlus     StationClass = "plus"
)

// ParseStationClass maps a user-supplied type name to a StationClass.
func ParseStationClass(s string) (StationClass, error) {
	switch StationClass(s) {
	case StationStandard:
		return StationStandard, nil
	case StationPlus:
		return StationPlus, nil
	default:
		return "", ErrUnknownStationType
	}
}

// Station owns an ordered set of slots and runs the rental and return
// transactions on them. One mutex covers each whole transaction: the
// slot scan, the timeline mutation, the ride bookkeeping and the alert
// fan-out all happen under it, so concurrent transactions on the same
// station serialize while distinct stations proceed in parallel.
//
// Read-only accessors do not take the lock. Strategy ranking reads
// station state concurrently with transactions; the resulting ordering
// is best effort.
type Station struct {
	mu sync.Mutex

	id       int
	class    StationClass
	position geo.Point
	online   bool
	slots    []*Slot
	nextSlot int
	net      *Network

	totalRents   int
	totalReturns int

	subscribers subscriberSet
	pending     bool
}

func newStation(id int, class StationClass, p geo.Point, net *Network) *Station {
	return &Station{id: id, class: class, position: p, online: true, net: net}
}

func (s *Station) ID() int             { return s.id }
func (s *Station) Class() StationClass { return s.class }
func (s *Station) Position() geo.Point { return s.position }
func (s *Station) Online() bool        { return s.online }
func (s *Station) Slots() []*Slot      { return s.slots }
func (s *Station) TotalRents() int     { return s.totalRents }
func (s *Station) TotalReturns() int   { return s.totalReturns }

func (s *Station) TotalOperations() int {
	return s.totalRents + s.totalReturns
}

// Full reports whether the station cannot accept a return: offline, or
// every slot occupied.
func (s *Station) Full() bool {
	if !s.online {
		return true
	}
	for _, sl := range s.slots {
		if !sl.Occupied() {
			return false
		}
	}
	return true
}

// availableSlot returns the first slot in docking order that can take a
// bike, or nil.
func (s *Station) availableSlot() *Slot {
	if !s.online {
		return nil
	}
	for _, sl := range s.slots {
		if !sl.Occupied() {
			return sl
		}
	}
	return nil
}

// availableBikeSlot returns the first online slot holding a bike of the
// requested class, or nil. BikeAny matches any bike.
func (s *Station) availableBikeSlot(class BikeClass) *Slot {
	if !s.online {
		return nil
	}
	for _, sl := range s.slots {
		if sl.Online() && sl.Bike() != nil && (class == BikeAny || sl.Bike().Class() == class) {
			return sl
		}
	}
	return nil
}

// HasBikeAvailable reports whether a pickup of the given class could
// succeed right now.
func (s *Station) HasBikeAvailable(class BikeClass) bool {
	return s.availableBikeSlot(class) != nil
}

// CountAvailableBikes counts online slots holding a bike of the given
// class.
func (s *Station) CountAvailableBikes(class BikeClass) int {
	n := 0
	for _, sl := range s.slots {
		if sl.Online() && sl.Bike() != nil && (class == BikeAny || sl.Bike().Class() == class) {
			n++
		}
	}
	return n
}

// CountFreeSlots counts slots that could take a return.
func (s *Station) CountFreeSlots() int {
	n := 0
	for _, sl := range s.slots {
		if !sl.Occupied() {
			n++
		}
	}
	return n
}

// AddSlots appends count new online empty slots, their timelines
// starting at the given time. Slot ids encode the station id and the
// docking index; indexes are never reused.
func (s *Station) AddSlots(count int, at time.Time) []*Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := make([]*Slot, 0, count)
	for i := 0; i < count; i++ {
		sl := newSlot(ident.SlotID(s.id, s.nextSlot), at)
		s.nextSlot++
		s.slots = append(s.slots, sl)
		added = append(added, sl)
	}
	return added
}

// FindSlot returns the slot with the given id, or nil.
func (s *Station) FindSlot(id int) *Slot {
	for _, sl := range s.slots {
		if sl.ID() == id {
			return sl
		}
	}
	return nil
}

// PickUp rents a bike of the requested class to the card's owner. It
// fails without mutating anything if the station is offline, the user
// already rides, or no matching bike is docked.
func (s *Station) PickUp(card *Card, class BikeClass, at time.Time) (*Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.online {
		return nil, ErrStationOffline
	}
	user := card.User()
	if user.ongoing != nil {
		return nil, ErrOngoingRide
	}
	sl := s.availableBikeSlot(class)
	if sl == nil {
		switch class {
		case BikeElectric:
			return nil, ErrNoElectricBikeAvailable
		case BikeMechanic:
			return nil, ErrNoMechanicBikeAvailable
		default:
			return nil, ErrNoBikeAvailable
		}
	}
	bike := sl.Bike()
	if _, err := sl.SetBike(nil, at); err != nil {
		return nil, err
	}
	user.startRide(s.net, bike, card, at)
	s.totalRents++
	user.position = s.position
	return bike, nil
}

// Drop returns the bike of the card owner's ongoing ride to the first
// free slot and closes the ride, returning the computed fare. At a plus
// station the card earns the network's bonus credit on top, after the
// fare so the bonus never discounts the ride it ends. If the return
// fills the station, subscribers are alerted before Drop returns.
func (s *Station) Drop(card *Card, at time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.online {
		return 0, ErrStationOffline
	}
	user := card.User()
	if user.ongoing == nil {
		return 0, ErrNoOngoingRide
	}
	if _, err := MinutesBetween(user.ongoing.startAt, at); err != nil {
		return 0, err
	}
	sl := s.availableSlot()
	if sl == nil {
		return 0, ErrNoSlotAvailable
	}
	if _, err := sl.SetBike(user.ongoing.bike, at); err != nil {
		return 0, err
	}
	s.totalReturns++
	fare, err := user.endRide(at)
	if err != nil {
		return 0, err
	}
	if s.class == StationPlus {
		card.AddCredit(s.net.BonusCredit())
	}
	user.position = s.position
	if s.Full() {
		s.fire(AlertStationFull)
	}
	return fare, nil
}

// AttachBike docks a bike brought in from outside a ride, such as fleet
// redistribution. Fails when the station cannot take it.
func (s *Station) AttachBike(bike *Bike, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.availableSlot()
	if sl == nil {
		return ErrNoSlotAvailable
	}
	if _, err := sl.SetBike(bike, at); err != nil {
		return err
	}
	if s.Full() {
		s.fire(AlertStationFull)
	}
	return nil
}

// SetSlotOnline changes one slot's online flag under the station lock,
// alerting subscribers if the change fills the station.
func (s *Station) SetSlotOnline(sl *Slot, online bool, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasFull := s.Full()
	changed, err := sl.SetOnline(online, at)
	if err != nil {
		return err
	}
	if changed && !wasFull && s.Full() {
		s.fire(AlertStationFull)
	}
	return nil
}

// SetOnline changes the station's online flag. Going offline alerts the
// subscribers; coming back online does not.
func (s *Station) SetOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasOnline := s.online
	s.online = online
	if wasOnline && !online {
		s.fire(AlertStationOffline)
	}
}

// OccupationRate averages, over the slots with timeline data for the
// interval, the occupied time divided by the interval length.
func (s *Station) OccupationRate(start, end time.Time) (float64, error) {
	delta, err := MinutesBetween(start, end)
	if err != nil {
		return 0, err
	}
	total, observed := 0, 0
	for _, sl := range s.slots {
		minutes, err := sl.OccupationTime(start, end)
		if errors.Is(err, ErrNoStateAtDate) {
			continue
		}
		if err != nil {
			return 0, err
		}
		total += minutes
		observed++
	}
	if observed == 0 {
		return 0, ErrNoStateAtDate
	}
	return float64(total) / (float64(delta) * float64(observed)), nil
}

// Subscribers returns the users currently watching this station.
func (s *Station) Subscribers() []*User {
	return s.subscribers.snapshot()
}

// fire delivers an alert to every subscriber. Users without an ongoing
// ride lose their itinerary outright; the others are asked through the
// network's decision function, defaulting to clearing the itinerary
// when none is installed. A re-route replaces the subscription only if
// the replacement differs from this station.
func (s *Station) fire(reason AlertReason) {
	s.pending = true
	alert := Alert{Station: s, Reason: reason}
	decide := s.net.DecisionFunc()
	for _, u := range s.subscribers.snapshot() {
		if u.ongoing == nil {
			u.SetItinerary(nil)
			continue
		}
		decision := Decision{Kind: DecisionClear}
		if decide != nil {
			decision = decide(u, alert)
		}
		switch decision.Kind {
		case DecisionIgnore:
		case DecisionClear:
			u.SetItinerary(nil)
		case DecisionReroute:
			s.reroute(u, decision.Target)
		}
	}
	s.pending = false
}

// reroute moves the user's subscription to the target station, asking
// the itinerary's own strategy for one when the caller did not choose.
// Falls back to clearing the itinerary when no replacement exists.
func (s *Station) reroute(u *User, target *Station) {
	it := u.itinerary
	if it == nil {
		return
	}
	if target == nil {
		replacement, err := it.strategy.FindEndStation(it.startStation.Position(), it.end, u.ongoing.bike.Class())
		if err != nil {
			u.SetItinerary(nil)
			return
		}
		target = replacement
	}
	if target != s {
		it.ReplaceEndStation(target)
		s.subscribers.remove(u)
		target.subscribers.add(u)
	}
}
