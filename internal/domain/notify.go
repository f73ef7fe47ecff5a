package domain

import "sync"

// AlertReason says why a station warned its subscribers.
type AlertReason string

const (
	AlertStationFull    AlertReason = "station_full"
	AlertStationOffline AlertReason = "station_offline"
)

// Alert is the event delivered to every user subscribed to a station
// that just became unusable as a return point.
type Alert struct {
	Station *Station
	Reason  AlertReason
}

// DecisionKind enumerates how a user reacts to an alert.
type DecisionKind int

const (
	// DecisionIgnore keeps the itinerary and the subscription as they are.
	DecisionIgnore DecisionKind = iota
	// DecisionClear drops the itinerary and unsubscribes.
	DecisionClear
	// DecisionReroute replaces the itinerary's end station. A nil Target
	// asks the itinerary's own strategy to compute the replacement.
	DecisionReroute
)

// Decision is the outcome of asking a user about an alert.
type Decision struct {
	Kind   DecisionKind
	Target *Station
}

// DecisionFunc is the pluggable prompt consulted when an alert reaches
// a user with an ongoing ride. It runs synchronously while the firing
// station's transaction lock is held, so it must not start another
// transaction on that station.
type DecisionFunc func(user *User, alert Alert) Decision

// subscriberSet holds the users watching a station. It has its own
// lock so that a re-route triggered by one station can subscribe the
// user to another station without touching that station's transaction
// lock.
type subscriberSet struct {
	mu    sync.Mutex
	users []*User
}

func (s *subscriberSet) add(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing == u {
			return
		}
	}
	s.users = append(s.users, u)
}

func (s *subscriberSet) remove(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.users {
		if existing == u {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}

func (s *subscriberSet) snapshot() []*User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*User, len(s.users))
	copy(out, s.users)
	return out
}
