package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// SlotState is one interval of a slot's history: from Start until End
// (open-ended when End is not set) the slot was online or not and held
// the given bike or none.
type SlotState struct {
	Start  time.Time
	End    null.Time
	Online bool
	Bike   *Bike
}

// Occupied reports whether the slot was unusable for a return during
// this interval: offline, or holding a bike.
func (st SlotState) Occupied() bool {
	return !st.Online || st.Bike != nil
}

// Slot is a single docking bay. Its id encodes the owning station.
// Every transition of the online flag or the bike reference closes the
// current interval and opens a new one, so the timeline is contiguous,
// ordered, and has exactly one open interval at the end.
type Slot struct {
	id       int
	online   bool
	bike     *Bike
	timeline []SlotState
}

// newSlot creates an online, empty slot whose timeline starts at the
// creation time.
func newSlot(id int, at time.Time) *Slot {
	return &Slot{
		id:       id,
		online:   true,
		timeline: []SlotState{{Start: at, Online: true}},
	}
}

func (sl *Slot) ID() int      { return sl.id }
func (sl *Slot) Online() bool { return sl.online }
func (sl *Slot) Bike() *Bike  { return sl.bike }

// Occupied reports whether the slot is offline or holds a bike.
func (sl *Slot) Occupied() bool {
	return !sl.online || sl.bike != nil
}

// Timeline returns the slot's state history, oldest first.
func (sl *Slot) Timeline() []SlotState {
	return sl.timeline
}

// transition closes the open interval at the given time and opens a new
// one with the current online flag and bike.
func (sl *Slot) transition(at time.Time) error {
	last := &sl.timeline[len(sl.timeline)-1]
	if at.Before(last.Start) {
		return ErrNegativeTime
	}
	last.End = null.TimeFrom(at)
	sl.timeline = append(sl.timeline, SlotState{Start: at, Online: sl.online, Bike: sl.bike})
	return nil
}

// SetOnline changes the online flag, recording the transition in the
// timeline. Setting the flag to its current value is a no-op. The
// returned boolean reports whether a transition happened.
func (sl *Slot) SetOnline(online bool, at time.Time) (bool, error) {
	if online == sl.online {
		return false, nil
	}
	sl.online = online
	if err := sl.transition(at); err != nil {
		sl.online = !online
		return false, err
	}
	return true, nil
}

// SetBike changes the docked bike, recording the transition in the
// timeline. Setting the same bike reference is a no-op; bikes are
// compared by identity, not by value. The returned boolean reports
// whether a transition happened.
func (sl *Slot) SetBike(bike *Bike, at time.Time) (bool, error) {
	if bike == sl.bike {
		return false, nil
	}
	previous := sl.bike
	sl.bike = bike
	if err := sl.transition(at); err != nil {
		sl.bike = previous
		return false, err
	}
	return true, nil
}

// StateIndexAt returns the index of the interval in effect at t. A time
// falling exactly on an interval boundary resolves to the interval that
// starts there. Times at or after the start of the open interval
// resolve to it; times before the slot's creation fail.
func (sl *Slot) StateIndexAt(t time.Time) (int, error) {
	for i := 0; i < len(sl.timeline)-1; i++ {
		st := sl.timeline[i]
		if t.Equal(st.Start) || (st.Start.Before(t) && st.End.Time.After(t)) {
			return i, nil
		}
	}
	last := len(sl.timeline) - 1
	if !t.Before(sl.timeline[last].Start) {
		return last, nil
	}
	return 0, ErrNoStateAtDate
}

// OccupationTime sums the minutes the slot was occupied over the
// intervals overlapping [start, end], clipping the open interval at
// end. A start before the slot's creation is clamped to the first
// interval.
func (sl *Slot) OccupationTime(start, end time.Time) (int, error) {
	iEnd, err := sl.StateIndexAt(end)
	if err != nil {
		return 0, err
	}
	iStart, err := sl.StateIndexAt(start)
	if err != nil {
		iStart = 0
	}
	total := 0
	for i := iStart; i <= iEnd; i++ {
		st := sl.timeline[i]
		if !st.Occupied() {
			continue
		}
		stop := end
		if st.End.Valid {
			stop = st.End.Time
		}
		minutes, err := MinutesBetween(st.Start, stop)
		if err != nil {
			return 0, err
		}
		total += minutes
	}
	return total, nil
}
