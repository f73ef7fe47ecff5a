package clui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pietrodll/school-projects/internal/domain"
)

// FormatStation renders a station with its slots.
func FormatStation(s *domain.Station) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Station: id:%d (%s)\n", s.ID(), s.Class())
	fmt.Fprintf(&b, "\tPosition: x=%.3f y=%.3f\n", s.Position().X, s.Position().Y)
	fmt.Fprintf(&b, "Slots: %d\n", len(s.Slots()))
	for _, sl := range s.Slots() {
		online := "Online"
		if !sl.Online() {
			online = "Offline"
		}
		state := "Free"
		if sl.Occupied() {
			state = "Occupied"
		}
		fmt.Fprintf(&b, "\tid:%d\t%s\t%s", sl.ID(), online, state)
		if bike := sl.Bike(); bike != nil {
			fmt.Fprintf(&b, "\tBike id:%d\tType: %s", bike.ID(), bike.Class())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatCard renders a card with its owner and balance.
func FormatCard(c *domain.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Card: id:%d\n", c.ID())
	fmt.Fprintf(&b, "\tOwner: %s\n", c.User().Name())
	fmt.Fprintf(&b, "\tType: %s\n", c.Class())
	fmt.Fprintf(&b, "\tCredit: %d minutes\n", c.TimeCredit())
	return b.String()
}

// FormatUser renders a user with their statistics.
func FormatUser(u *domain.User) string {
	stats := u.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "User: id:%d\n", u.ID())
	fmt.Fprintf(&b, "\tName: %s\n", u.Name())
	fmt.Fprintf(&b, "\tTotal amount paid: %.2f euros\n", stats.TotalPaid)
	fmt.Fprintf(&b, "\tTotal number of rides: %d\n", stats.Rides)
	fmt.Fprintf(&b, "\tTotal ride time: %d minutes\n", stats.TotalMinutes)
	fmt.Fprintf(&b, "\tTotal credit earned: %d minutes\n", stats.CreditEarned)
	return b.String()
}

// FormatNetwork renders a whole network: stations, cards, users.
func FormatNetwork(net *domain.Network) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network: %s\nList of stations:\n", net.Name())
	for _, s := range net.Stations() {
		b.WriteString(FormatStation(s))
	}
	b.WriteString("List of cards:\n")
	for _, c := range net.Cards() {
		b.WriteString(FormatCard(c))
	}
	b.WriteString("List of users:\n")
	for _, c := range net.Cards() {
		b.WriteString(FormatUser(c.User()))
	}
	return b.String()
}

// FormatItinerary renders the pickup and return stations of a planned
// trip.
func FormatItinerary(it *domain.Itinerary) string {
	if it == nil {
		return "No itinerary.\n"
	}
	var b strings.Builder
	b.WriteString("Pickup station:\n")
	b.WriteString(FormatStation(it.StartStation()))
	b.WriteString("Return station:\n")
	b.WriteString(FormatStation(it.EndStation()))
	return b.String()
}

// FormatStationStats renders the usage numbers of one station over an
// interval.
func FormatStationStats(s *domain.Station, start, end time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Station: id:%d\n", s.ID())
	fmt.Fprintf(&b, "\tTotal rents: %d\n", s.TotalRents())
	fmt.Fprintf(&b, "\tTotal returns: %d\n", s.TotalReturns())
	fmt.Fprintf(&b, "\tTotal operations: %d\n", s.TotalOperations())
	if rate, err := s.OccupationRate(start, end); err == nil {
		fmt.Fprintf(&b, "\tOccupation rate: %.3f\n", rate)
	} else {
		fmt.Fprintf(&b, "\tOccupation rate: unavailable (%v)\n", err)
	}
	return b.String()
}

// FormatSortedStations renders the outcome of a sortStation command.
func FormatSortedStations(networkName, order string, stations []*domain.Station, start, end time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sorted stations of network %s according to strategy %s\n", networkName, order)
	for _, s := range stations {
		b.WriteString(FormatStationStats(s, start, end))
	}
	return b.String()
}
