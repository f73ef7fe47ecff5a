package domain

import "errors"

// Every expected failure of the rental protocol is a sentinel so that
// callers can match with errors.Is and keep going.
var (
	ErrStationOffline          = errors.New("station is offline")
	ErrNoSlotAvailable         = errors.New("no slot available")
	ErrOngoingRide             = errors.New("user already has an ongoing ride")
	ErrNoOngoingRide           = errors.New("user has no ongoing ride")
	ErrNoBikeAvailable         = errors.New("no bike available")
	ErrNoElectricBikeAvailable = errors.New("no electric bike available")
	ErrNoMechanicBikeAvailable = errors.New("no mechanic bike available")
	ErrNegativeTime            = errors.New("end time precedes start time")
	ErrNullDate                = errors.New("date is not set")
	ErrNoStateAtDate           = errors.New("no slot state at this date")
	ErrStationSamePosition     = errors.New("a station already exists at this position")
	ErrUnknownStationType      = errors.New("unknown station type")
	ErrUnknownBikeType         = errors.New("unknown bike type")
	ErrUnknownCardType         = errors.New("unknown card type")
	ErrInsufficientCredit      = errors.New("insufficient time credit")
	ErrRideClosed              = errors.New("ride is already closed")
	ErrNoStations              = errors.New("the network has no stations")
)
