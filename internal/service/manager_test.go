package service

import (
	"errors"
	"testing"
	"time"

	"github.com/pietrodll/school-projects/internal/common/config"
	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Speeds.Walking = 4
	cfg.Speeds.Electric = 20
	cfg.Speeds.Mechanic = 15
	cfg.Stations.PlusBonusCredit = 5
	cfg.Stations.PreferPlusDetour = 1.10
	cfg.Stations.UniformityDetour = 1.05
	cfg.Setup.Stations = 10
	cfg.Setup.SlotsPerStation = 10
	cfg.Setup.Side = 4
	cfg.Setup.Bikes = 75
	cfg.Setup.ElectricShare = 0.3
	return cfg
}

func TestSetupNetworkShape(t *testing.T) {
	m := NewNetworkManager(testConfig())
	net, err := m.SetupNetwork("paris", 4, 3, 4, 6)
	if err != nil {
		t.Fatalf("SetupNetwork() error = %v", err)
	}

	stations := net.Stations()
	if len(stations) != 4 {
		t.Fatalf("station count = %d, want 4", len(stations))
	}
	docked := 0
	for i, s := range stations {
		if len(s.Slots()) != 3 {
			t.Errorf("station %d has %d slots, want 3", s.ID(), len(s.Slots()))
		}
		if s.Class() != domain.StationStandard {
			t.Errorf("station %d class = %q, want standard", s.ID(), s.Class())
		}
		for _, other := range stations[i+1:] {
			if s.Position().Equal(other.Position()) {
				t.Errorf("stations %d and %d share position %s", s.ID(), other.ID(), s.Position())
			}
		}
		docked += s.CountAvailableBikes(domain.BikeAny)
	}
	if docked == 0 || docked > 6 {
		t.Errorf("docked bikes = %d, want between 1 and 6", docked)
	}
}

func TestCreateNetworkRejectsDuplicateName(t *testing.T) {
	m := NewNetworkManager(testConfig())
	if _, err := m.CreateNetwork("paris"); err != nil {
		t.Fatalf("CreateNetwork() error = %v", err)
	}
	if _, err := m.CreateNetwork("paris"); !errors.Is(err, ErrExistingNetworkName) {
		t.Errorf("duplicate CreateNetwork() error = %v, want ErrExistingNetworkName", err)
	}
}

func TestLookupsWrapSentinels(t *testing.T) {
	m := NewNetworkManager(testConfig())
	net, err := m.CreateNetwork("paris")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := m.FindNetwork("lyon"); !errors.Is(err, ErrNetworkNotFound) {
		t.Errorf("FindNetwork(miss) error = %v, want ErrNetworkNotFound", err)
	}
	if _, err := m.FindStation(net, 99); !errors.Is(err, ErrStationNotFound) {
		t.Errorf("FindStation(miss) error = %v, want ErrStationNotFound", err)
	}
	if _, _, err := m.FindSlot(net, 99001); !errors.Is(err, ErrStationNotFound) {
		t.Errorf("FindSlot(missing station) error = %v, want ErrStationNotFound", err)
	}
	if _, err := m.FindCardByUser(net, 99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("FindCardByUser(miss) error = %v, want ErrUserNotFound", err)
	}
}

func TestFindSlotResolvesStation(t *testing.T) {
	m := NewNetworkManager(testConfig())
	net, err := m.CreateNetwork("paris")
	if err != nil {
		t.Fatal(err)
	}
	station, err := m.AddStation("paris", domain.StationStandard, 3, geo.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("AddStation() error = %v", err)
	}
	want := station.Slots()[2]

	got, slot, err := m.FindSlot(net, want.ID())
	if err != nil {
		t.Fatalf("FindSlot() error = %v", err)
	}
	if got != station || slot != want {
		t.Error("FindSlot() should resolve both the station and the slot")
	}
	if _, _, err := m.FindSlot(net, station.ID()*1000+50); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("FindSlot(bad index) error = %v, want ErrSlotNotFound", err)
	}
}

func TestRentReturnThroughManager(t *testing.T) {
	m := NewNetworkManager(testConfig())
	if _, err := m.CreateNetwork("paris"); err != nil {
		t.Fatal(err)
	}
	a, err := m.AddStation("paris", domain.StationStandard, 2, geo.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.AddStation("paris", domain.StationStandard, 2, geo.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddBikeAt("paris", a.ID(), domain.BikeMechanic, AddingDate); err != nil {
		t.Fatalf("AddBikeAt() error = %v", err)
	}
	card, err := m.AddUser("paris", "alice", domain.CardCredit)
	if err != nil {
		t.Fatalf("AddUser() error = %v", err)
	}

	rentAt := AddingDate.Add(10 * time.Minute)
	bike, err := m.RentBike("paris", card.User().ID(), a.ID(), domain.BikeAny, rentAt)
	if err != nil {
		t.Fatalf("RentBike() error = %v", err)
	}
	if bike.Class() != domain.BikeMechanic {
		t.Errorf("rented bike class = %q, want mechanic", bike.Class())
	}

	fare, err := m.ReturnBike("paris", card.User().ID(), b.ID(), rentAt.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("ReturnBike() error = %v", err)
	}
	if fare != 0.5 {
		t.Errorf("fare = %v, want 0.5", fare)
	}
	if card.User().OngoingRide() != nil {
		t.Error("the ride should be closed after the return")
	}
}

func TestAddBikePicksFirstFreeStation(t *testing.T) {
	m := NewNetworkManager(testConfig())
	if _, err := m.CreateNetwork("paris"); err != nil {
		t.Fatal(err)
	}
	first, _ := m.AddStation("paris", domain.StationStandard, 1, geo.Point{X: 0, Y: 0})
	second, _ := m.AddStation("paris", domain.StationStandard, 1, geo.Point{X: 1, Y: 1})
	if err := m.AddBikeAt("paris", first.ID(), domain.BikeMechanic, AddingDate); err != nil {
		t.Fatal(err)
	}

	if err := m.AddBike("paris", domain.BikeElectric, AddingDate.Add(time.Minute)); err != nil {
		t.Fatalf("AddBike() error = %v", err)
	}
	if second.CountAvailableBikes(domain.BikeElectric) != 1 {
		t.Error("the bike should dock at the first station with room")
	}

	// Both stations are full now.
	if err := m.AddBike("paris", domain.BikeMechanic, AddingDate.Add(2*time.Minute)); !errors.Is(err, domain.ErrNoSlotAvailable) {
		t.Errorf("AddBike() on a full network error = %v, want ErrNoSlotAvailable", err)
	}
}

func TestSortStations(t *testing.T) {
	m := NewNetworkManager(testConfig())
	if _, err := m.CreateNetwork("paris"); err != nil {
		t.Fatal(err)
	}
	a, _ := m.AddStation("paris", domain.StationStandard, 2, geo.Point{X: 0, Y: 0})
	b, _ := m.AddStation("paris", domain.StationStandard, 2, geo.Point{X: 1, Y: 1})
	m.AddBikeAt("paris", a.ID(), domain.BikeMechanic, AddingDate)
	card, _ := m.AddUser("paris", "alice", domain.CardCredit)

	rentAt := AddingDate.Add(5 * time.Minute)
	if _, err := m.RentBike("paris", card.User().ID(), a.ID(), domain.BikeAny, rentAt); err != nil {
		t.Fatal(err)
	}
	if _, err := m.ReturnBike("paris", card.User().ID(), b.ID(), rentAt.Add(10*time.Minute)); err != nil {
		t.Fatal(err)
	}

	sorted, err := m.SortStations("paris", SortMoreUsed, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("SortStations(more-used) error = %v", err)
	}
	if sorted[0] != a && sorted[0] != b {
		t.Error("most-used ordering should surface the active stations")
	}

	if _, err := m.SortStations("paris", "alphabetical", time.Time{}, time.Time{}); !errors.Is(err, ErrUnknownSorting) {
		t.Errorf("SortStations(unknown) error = %v, want ErrUnknownSorting", err)
	}
}

func TestComputeItinerary(t *testing.T) {
	m := NewNetworkManager(testConfig())
	if _, err := m.CreateNetwork("paris"); err != nil {
		t.Fatal(err)
	}
	a, _ := m.AddStation("paris", domain.StationStandard, 2, geo.Point{X: 0.5, Y: 0})
	b, _ := m.AddStation("paris", domain.StationStandard, 2, geo.Point{X: 5, Y: 0})
	m.AddBikeAt("paris", a.ID(), domain.BikeMechanic, AddingDate)
	card, _ := m.AddUser("paris", "alice", domain.CardVlibre)

	user, it, err := m.ComputeItinerary("paris", card.User().ID(), geo.Point{}, geo.Point{X: 6, Y: 0}, "minimal-walking")
	if err != nil {
		t.Fatalf("ComputeItinerary() error = %v", err)
	}
	if user != card.User() {
		t.Error("ComputeItinerary() should resolve the requesting user")
	}
	if it.StartStation() != a || it.EndStation() != b {
		t.Errorf("itinerary stations = %d → %d, want %d → %d",
			it.StartStation().ID(), it.EndStation().ID(), a.ID(), b.ID())
	}
	if user.Itinerary() != nil {
		t.Error("a computed itinerary should not be installed on the user")
	}
	if len(b.Subscribers()) != 0 {
		t.Error("a computed itinerary should not subscribe the user yet")
	}

	if _, _, err := m.ComputeItinerary("paris", card.User().ID(), geo.Point{}, geo.Point{}, "teleport"); err == nil {
		t.Error("an unknown strategy name should fail")
	}
}

func TestResetDropsNetworks(t *testing.T) {
	m := NewNetworkManager(testConfig())
	if _, err := m.CreateNetwork("paris"); err != nil {
		t.Fatal(err)
	}
	a, _ := m.AddStation("paris", domain.StationStandard, 2, geo.Point{X: 0, Y: 0})

	m.Reset()
	if len(m.Networks()) != 0 {
		t.Fatal("Reset() should drop every network")
	}
	if _, err := m.FindNetwork("paris"); !errors.Is(err, ErrNetworkNotFound) {
		t.Error("a dropped network should not resolve")
	}

	// Ids keep counting across resets.
	if _, err := m.CreateNetwork("paris"); err != nil {
		t.Fatal(err)
	}
	b, err := m.AddStation("paris", domain.StationStandard, 2, geo.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if b.ID() <= a.ID() {
		t.Errorf("station id after reset = %d, want greater than %d", b.ID(), a.ID())
	}
}
