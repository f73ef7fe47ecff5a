package path

import (
	"errors"
	"testing"
	"time"

	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
	"github.com/pietrodll/school-projects/internal/ident"
)

var baseTime = time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAvailabilityRank(t *testing.T) {
	tests := []struct {
		name   string
		diff   float64
		a1, a2 bool
		want   int
	}{
		{"closer and available", -1, true, true, -1},
		{"closer and available, other not", -1, true, false, -1},
		{"closer but unavailable", -1, false, true, 1},
		{"closer, neither available", -1, false, false, 0},
		{"farther and both available", 1, true, true, 1},
		{"farther but only one available", 1, true, false, -1},
		{"farther and unavailable", 1, false, true, 1},
		{"farther, neither available", 1, false, false, 0},
		{"tied, both available", 0, true, true, 0},
		{"tied, only first available", 0, true, false, -1},
		{"tied, only second available", 0, false, true, 1},
		{"tied, neither available", 0, false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := availabilityRank(tt.diff, tt.a1, tt.a2); got != tt.want {
				t.Errorf("availabilityRank(%v, %v, %v) = %d, want %d",
					tt.diff, tt.a1, tt.a2, got, tt.want)
			}
		})
	}
}

func newStationAt(t *testing.T, net *domain.Network, class domain.StationClass, p geo.Point, slots int) *domain.Station {
	t.Helper()
	s, err := net.AddStation(class, p)
	if err != nil {
		t.Fatalf("AddStation() error = %v", err)
	}
	s.AddSlots(slots, baseTime)
	return s
}

func withBike(t *testing.T, net *domain.Network, s *domain.Station, class domain.BikeClass) *domain.Station {
	t.Helper()
	if err := s.AttachBike(net.NewBike(class), baseTime); err != nil {
		t.Fatalf("AttachBike() error = %v", err)
	}
	return s
}

func TestMinStationKeepsFirstOfEquals(t *testing.T) {
	net := domain.NewNetwork("test", ident.NewAllocator())
	a := newStationAt(t, net, domain.StationStandard, geo.Point{X: 1, Y: 0}, 2)
	b := newStationAt(t, net, domain.StationStandard, geo.Point{X: 0, Y: 1}, 2)

	got, err := minStation([]*domain.Station{a, b}, distanceCompare(geo.Point{}))
	if err != nil {
		t.Fatalf("minStation() error = %v", err)
	}
	if got != a {
		t.Error("equidistant stations should resolve to the first one")
	}
}

func TestMinStationEmpty(t *testing.T) {
	if _, err := minStation(nil, distanceCompare(geo.Point{})); !errors.Is(err, domain.ErrNoStations) {
		t.Errorf("minStation(empty) error = %v, want ErrNoStations", err)
	}
}

func TestStartComparePushesBackEmptyStations(t *testing.T) {
	net := domain.NewNetwork("test", ident.NewAllocator())
	near := newStationAt(t, net, domain.StationStandard, geo.Point{X: 1, Y: 0}, 2)
	far := withBike(t, net, newStationAt(t, net, domain.StationStandard, geo.Point{X: 9, Y: 0}, 2), domain.BikeMechanic)

	got, err := minStation([]*domain.Station{near, far}, startCompare(geo.Point{}, domain.BikeAny))
	if err != nil {
		t.Fatalf("minStation() error = %v", err)
	}
	if got != far {
		t.Error("a station without a bike should lose to any station with one")
	}
}

func TestEndComparePushesBackFullStations(t *testing.T) {
	net := domain.NewNetwork("test", ident.NewAllocator())
	near := newStationAt(t, net, domain.StationStandard, geo.Point{X: 1, Y: 0}, 1)
	withBike(t, net, near, domain.BikeMechanic)
	far := newStationAt(t, net, domain.StationStandard, geo.Point{X: 9, Y: 0}, 1)

	got, err := minStation([]*domain.Station{near, far}, endCompare(geo.Point{}))
	if err != nil {
		t.Fatalf("minStation() error = %v", err)
	}
	if got != far {
		t.Error("a full station should lose to any station with room")
	}
}
