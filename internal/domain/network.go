package domain

import (
	"sync"

	"github.com/pietrodll/school-projects/internal/geo"
	"github.com/pietrodll/school-projects/internal/ident"
)

// DefaultBonusCredit is the time credit in minutes granted by a plus
// station on every bike return.
const DefaultBonusCredit = 5

// Network aggregates the stations, the issued cards and the closed ride
// ledger of one city deployment. It carries no business logic of its
// own beyond identity checks at station creation.
type Network struct {
	mu sync.RWMutex

	name        string
	alloc       *ident.Allocator
	stations    []*Station
	cards       []*Card
	rides       []*Ride
	decide      DecisionFunc
	bonusCredit int
}

func NewNetwork(name string, alloc *ident.Allocator) *Network {
	return &Network{name: name, alloc: alloc, bonusCredit: DefaultBonusCredit}
}

func (n *Network) Name() string { return n.name }

// BonusCredit returns the plus-station bonus in minutes.
func (n *Network) BonusCredit() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.bonusCredit
}

func (n *Network) SetBonusCredit(minutes int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bonusCredit = minutes
}

// DecisionFunc returns the prompt consulted on station alerts, nil when
// none was installed.
func (n *Network) DecisionFunc() DecisionFunc {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.decide
}

func (n *Network) SetDecisionFunc(f DecisionFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.decide = f
}

// AddStation creates a station of the given class at p. Two stations
// can never share a position.
func (n *Network) AddStation(class StationClass, p geo.Point) (*Station, error) {
	if class != StationStandard && class != StationPlus {
		return nil, ErrUnknownStationType
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, s := range n.stations {
		if s.Position().Equal(p) {
			return nil, ErrStationSamePosition
		}
	}
	s := newStation(n.alloc.Next(ident.KindStation), class, p, n)
	n.stations = append(n.stations, s)
	return s, nil
}

// Stations returns a copy of the station list in insertion order.
func (n *Network) Stations() []*Station {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Station, len(n.stations))
	copy(out, n.stations)
	return out
}

// EnrollUser creates a user and issues them a card of the given class.
func (n *Network) EnrollUser(name string, class CardClass) (*Card, error) {
	if _, err := ParseCardClass(string(class)); err != nil {
		return nil, err
	}
	user := NewUser(n.alloc.Next(ident.KindUser), name)
	card := NewCard(n.alloc.Next(ident.KindCard), class, user)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cards = append(n.cards, card)
	return card, nil
}

// Cards returns a copy of the issued cards in enrollment order.
func (n *Network) Cards() []*Card {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Card, len(n.cards))
	copy(out, n.cards)
	return out
}

// NewBike mints a bike belonging to this network's id space.
func (n *Network) NewBike(class BikeClass) *Bike {
	return NewBike(n.alloc.Next(ident.KindBike), class)
}

// Rides returns a copy of the closed ride ledger, oldest first.
func (n *Network) Rides() []*Ride {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Ride, len(n.rides))
	copy(out, n.rides)
	return out
}

// archiveRide appends a closed ride to the ledger.
func (n *Network) archiveRide(r *Ride) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rides = append(n.rides, r)
}
