package domain

import (
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"
)

// Ride records one bike use. It is created open-ended at pickup and
// closed exactly once at return, becoming immutable afterwards.
type Ride struct {
	id       uuid.UUID
	net      *Network
	bike     *Bike
	user     *User
	card     *Card
	startAt  time.Time
	endAt    null.Time
	duration null.Int
}

func newRide(net *Network, bike *Bike, user *User, card *Card, startAt time.Time) *Ride {
	return &Ride{
		id:      uuid.New(),
		net:     net,
		bike:    bike,
		user:    user,
		card:    card,
		startAt: startAt,
	}
}

func (r *Ride) ID() uuid.UUID      { return r.id }
func (r *Ride) Network() *Network  { return r.net }
func (r *Ride) Bike() *Bike        { return r.bike }
func (r *Ride) User() *User        { return r.user }
func (r *Ride) Card() *Card        { return r.card }
func (r *Ride) StartAt() time.Time { return r.startAt }
func (r *Ride) EndAt() null.Time   { return r.endAt }

// Duration returns the ride time in minutes once the ride is closed.
func (r *Ride) Duration() null.Int { return r.duration }

// Ongoing reports whether the ride has not been closed yet.
func (r *Ride) Ongoing() bool { return !r.endAt.Valid }

// close stamps the end time, computes the duration and archives the
// ride in the network ledger.
func (r *Ride) close(at time.Time) (int, error) {
	if r.endAt.Valid {
		return 0, ErrRideClosed
	}
	minutes, err := MinutesBetween(r.startAt, at)
	if err != nil {
		return 0, err
	}
	r.endAt = null.TimeFrom(at)
	r.duration = null.IntFrom(int64(minutes))
	r.net.archiveRide(r)
	return minutes, nil
}
