package ident

import "sync"

// Kind names an entity family with its own id sequence.
type Kind string

const (
	KindBike    Kind = "bike"
	KindCard    Kind = "card"
	KindUser    Kind = "user"
	KindStation Kind = "station"
)

// Allocator hands out monotonic integer ids per entity kind. It replaces
// the usual global counters so that tests can run with their own seeded
// instance and simulations stay deterministic.
type Allocator struct {
	mu   sync.Mutex
	next map[Kind]int
}

func NewAllocator() *Allocator {
	return &Allocator{next: make(map[Kind]int)}
}

// Next returns the next id for the given kind, starting at 1.
func (a *Allocator) Next(kind Kind) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next[kind]++
	return a.next[kind]
}

// SlotID encodes a slot id from its owning station and its docking-bay
// index within that station.
func SlotID(stationID, index int) int {
	return stationID*1000 + index
}

// StationOfSlot recovers the owning station id from a slot id.
func StationOfSlot(slotID int) int {
	return slotID / 1000
}
