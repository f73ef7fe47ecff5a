package domain

import (
	"time"

	"github.com/pietrodll/school-projects/internal/geo"
)

// Stats accumulates a user's lifetime numbers. Fields only grow.
type Stats struct {
	Rides        int
	TotalMinutes int
	TotalPaid    float64
	CreditEarned int
}

// User is one enrolled rider. A user references at most one ongoing
// ride and at most one planned itinerary; holding an itinerary implies
// a subscription to its end station.
type User struct {
	id        int
	name      string
	position  geo.Point
	ongoing   *Ride
	itinerary *Itinerary
	stats     Stats
}

func NewUser(id int, name string) *User {
	return &User{id: id, name: name}
}

func (u *User) ID() int                { return u.id }
func (u *User) Name() string           { return u.name }
func (u *User) Position() geo.Point    { return u.position }
func (u *User) OngoingRide() *Ride     { return u.ongoing }
func (u *User) Itinerary() *Itinerary  { return u.itinerary }
func (u *User) Stats() Stats           { return u.stats }

func (u *User) SetPosition(p geo.Point) { u.position = p }

// SetItinerary installs a planned itinerary, moving the end-station
// subscription with it. Passing nil clears the itinerary and
// unsubscribes.
func (u *User) SetItinerary(it *Itinerary) {
	if u.itinerary != nil && u.itinerary.endStation != nil {
		u.itinerary.endStation.subscribers.remove(u)
	}
	u.itinerary = it
	if it != nil && it.endStation != nil {
		it.endStation.subscribers.add(u)
	}
}

// startRide opens the ongoing ride. The caller has already checked that
// none is open.
func (u *User) startRide(net *Network, bike *Bike, card *Card, at time.Time) {
	u.ongoing = newRide(net, bike, u, card, at)
}

// endRide closes the ongoing ride: the itinerary and its subscription
// go away, the ride is stamped and archived, the fare computed on the
// card, and the statistics updated.
func (u *User) endRide(at time.Time) (float64, error) {
	if u.ongoing == nil {
		return 0, ErrNoOngoingRide
	}
	u.SetItinerary(nil)
	minutes, err := u.ongoing.close(at)
	if err != nil {
		return 0, err
	}
	fare := u.ongoing.card.ComputeFare(u.ongoing.bike.Class(), minutes)
	u.stats.Rides++
	u.stats.TotalMinutes += minutes
	u.stats.TotalPaid += fare
	u.ongoing = nil
	return fare, nil
}
