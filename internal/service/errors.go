package service

import "errors"

// Lookup failures surface at the command boundary, which reports them
// and moves on.
var (
	ErrNetworkNotFound     = errors.New("no network with this name")
	ErrStationNotFound     = errors.New("no station with this id")
	ErrSlotNotFound        = errors.New("no slot with this id")
	ErrUserNotFound        = errors.New("no user with this id")
	ErrExistingNetworkName = errors.New("a network with this name already exists")
	ErrUnknownSorting      = errors.New("unknown sorting strategy")
)
