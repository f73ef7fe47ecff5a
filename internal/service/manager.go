package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/pietrodll/school-projects/internal/common/config"
	"github.com/pietrodll/school-projects/internal/common/logger"
	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
	"github.com/pietrodll/school-projects/internal/ident"
	"github.com/pietrodll/school-projects/internal/path"
)

// Simulated deployments share one clock origin: stations exist from
// CreationDate and the initial bike fleet docks at AddingDate.
var (
	CreationDate = time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	AddingDate   = time.Date(2019, 1, 1, 0, 1, 0, 0, time.UTC)
)

// Station sorting orders accepted by SortStations.
const (
	SortMoreUsed      = "more-used"
	SortLeastOccupied = "least-occupied"
)

// NetworkManager orchestrates every network of a run: setup, lookups,
// the command-level operations, and the shared id allocator.
type NetworkManager struct {
	mu       sync.RWMutex
	cfg      *config.Config
	alloc    *ident.Allocator
	networks []*domain.Network
	decide   domain.DecisionFunc
	rand     *rand.Rand
}

func NewNetworkManager(cfg *config.Config) *NetworkManager {
	return &NetworkManager{
		cfg:   cfg,
		alloc: ident.NewAllocator(),
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Networks returns the managed networks in creation order.
func (m *NetworkManager) Networks() []*domain.Network {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Network, len(m.networks))
	copy(out, m.networks)
	return out
}

// SetDecisionFunc installs the alert prompt on every managed network,
// current and future.
func (m *NetworkManager) SetDecisionFunc(f domain.DecisionFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decide = f
	for _, net := range m.networks {
		net.SetDecisionFunc(f)
	}
}

// CreateNetwork registers an empty network under a unique name.
func (m *NetworkManager) CreateNetwork(name string) (*domain.Network, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, net := range m.networks {
		if net.Name() == name {
			return nil, ErrExistingNetworkName
		}
	}
	net := domain.NewNetwork(name, m.alloc)
	net.SetBonusCredit(m.cfg.Stations.PlusBonusCredit)
	net.SetDecisionFunc(m.decide)
	m.networks = append(m.networks, net)
	return net, nil
}

// SetupDefaultNetwork builds a network with the configured default
// shape.
func (m *NetworkManager) SetupDefaultNetwork(name string) (*domain.Network, error) {
	setup := m.cfg.Setup
	return m.SetupNetwork(name, setup.Stations, setup.SlotsPerStation, setup.Side, setup.Bikes)
}

// SetupNetwork builds a network of nStations standard stations with
// nSlots each, spread over a square of the given side so that no two
// share a position, and docks nBikes at random stations, the electric
// share of them electric.
func (m *NetworkManager) SetupNetwork(name string, nStations, nSlots int, side float64, nBikes int) (*domain.Network, error) {
	net, err := m.CreateNetwork(name)
	if err != nil {
		return nil, err
	}
	points := m.pointDistribution(nStations, side)
	for i := 0; i < nStations; i++ {
		station, err := net.AddStation(domain.StationStandard, points[i])
		if err != nil {
			return nil, fmt.Errorf("placing station %d: %w", i, err)
		}
		station.AddSlots(nSlots, CreationDate)
	}
	stations := net.Stations()
	for i := 0; i < nBikes; i++ {
		class := domain.BikeMechanic
		if float64(i) < m.cfg.Setup.ElectricShare*float64(nBikes) {
			class = domain.BikeElectric
		}
		station := stations[m.rand.Intn(len(stations))]
		if err := station.AttachBike(net.NewBike(class), AddingDate); err != nil {
			if errors.Is(err, domain.ErrNoSlotAvailable) {
				continue
			}
			return nil, fmt.Errorf("docking bike %d: %w", i, err)
		}
	}
	logger.Info("setup_network",
		fmt.Sprintf("network ready: %d stations, %d slots each, %d bikes", nStations, nSlots, nBikes),
		name, "")
	return net, nil
}

// pointDistribution spreads n points over a square of the given side by
// cutting it into a grid with at least n cells and placing one random
// point per cell, which guarantees pairwise distinct positions.
func (m *NetworkManager) pointDistribution(n int, side float64) []geo.Point {
	cells := 2
	for cells*cells < n {
		cells++
	}
	cell := side / float64(cells)
	points := make([]geo.Point, 0, n)
	for i := 0; i < cells && len(points) < n; i++ {
		for j := 0; j < cells && len(points) < n; j++ {
			points = append(points, geo.Point{
				X: float64(i)*cell + m.rand.Float64()*cell,
				Y: float64(j)*cell + m.rand.Float64()*cell,
			})
		}
	}
	return points
}

// FindNetwork resolves a network by name.
func (m *NetworkManager) FindNetwork(name string) (*domain.Network, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, net := range m.networks {
		if net.Name() == name {
			return net, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNetworkNotFound, name)
}

// FindStation resolves a station by id within a network.
func (m *NetworkManager) FindStation(net *domain.Network, id int) (*domain.Station, error) {
	for _, s := range net.Stations() {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrStationNotFound, id)
}

// FindSlot resolves a slot by id, the owning station being encoded in
// the id itself.
func (m *NetworkManager) FindSlot(net *domain.Network, id int) (*domain.Station, *domain.Slot, error) {
	station, err := m.FindStation(net, ident.StationOfSlot(id))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %d", ErrSlotNotFound, id)
	}
	if sl := station.FindSlot(id); sl != nil {
		return station, sl, nil
	}
	return nil, nil, fmt.Errorf("%w: %d", ErrSlotNotFound, id)
}

// FindCardByUser resolves the card issued to a user id.
func (m *NetworkManager) FindCardByUser(net *domain.Network, userID int) (*domain.Card, error) {
	for _, c := range net.Cards() {
		if c.User().ID() == userID {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
}

// FindUser resolves a user by id within a network.
func (m *NetworkManager) FindUser(net *domain.Network, userID int) (*domain.User, error) {
	card, err := m.FindCardByUser(net, userID)
	if err != nil {
		return nil, err
	}
	return card.User(), nil
}

// AddUser enrolls a user with a card of the given class.
func (m *NetworkManager) AddUser(networkName, userName string, class domain.CardClass) (*domain.Card, error) {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return nil, err
	}
	card, err := net.EnrollUser(userName, class)
	if err != nil {
		return nil, err
	}
	logger.Info("add_user",
		fmt.Sprintf("user %q enrolled with a %s card", userName, class),
		networkName, fmt.Sprintf("user:%d", card.User().ID()))
	return card, nil
}

// AddStation creates a station with nSlots slots.
func (m *NetworkManager) AddStation(networkName string, class domain.StationClass, nSlots int, p geo.Point) (*domain.Station, error) {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return nil, err
	}
	station, err := net.AddStation(class, p)
	if err != nil {
		return nil, err
	}
	station.AddSlots(nSlots, AddingDate)
	logger.Info("add_station",
		fmt.Sprintf("%s station added at %s with %d slots", class, p, nSlots),
		networkName, fmt.Sprintf("station:%d", station.ID()))
	return station, nil
}

// AddSlots appends slots to an existing station.
func (m *NetworkManager) AddSlots(networkName string, stationID, count int) error {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return err
	}
	station, err := m.FindStation(net, stationID)
	if err != nil {
		return err
	}
	station.AddSlots(count, AddingDate)
	return nil
}

// AddBike docks a new bike at the first station with a free slot.
func (m *NetworkManager) AddBike(networkName string, class domain.BikeClass, at time.Time) error {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return err
	}
	for _, station := range net.Stations() {
		if err := station.AttachBike(net.NewBike(class), at); err == nil {
			return nil
		} else if !errors.Is(err, domain.ErrNoSlotAvailable) {
			return err
		}
	}
	return domain.ErrNoSlotAvailable
}

// AddBikeAt docks a new bike at a specific station.
func (m *NetworkManager) AddBikeAt(networkName string, stationID int, class domain.BikeClass, at time.Time) error {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return err
	}
	station, err := m.FindStation(net, stationID)
	if err != nil {
		return err
	}
	return station.AttachBike(net.NewBike(class), at)
}

// SetStationOnline flips a station's online flag.
func (m *NetworkManager) SetStationOnline(networkName string, stationID int, online bool) error {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return err
	}
	station, err := m.FindStation(net, stationID)
	if err != nil {
		return err
	}
	station.SetOnline(online)
	logger.Info("set_station_online",
		fmt.Sprintf("station %d online=%v", stationID, online),
		networkName, fmt.Sprintf("station:%d", stationID))
	return nil
}

// SetSlotOnline flips a slot's online flag at the given time.
func (m *NetworkManager) SetSlotOnline(networkName string, slotID int, online bool, at time.Time) error {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return err
	}
	station, slot, err := m.FindSlot(net, slotID)
	if err != nil {
		return err
	}
	return station.SetSlotOnline(slot, online, at)
}

// RentBike runs a pickup transaction for a user at a station.
func (m *NetworkManager) RentBike(networkName string, userID, stationID int, class domain.BikeClass, at time.Time) (*domain.Bike, error) {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return nil, err
	}
	card, err := m.FindCardByUser(net, userID)
	if err != nil {
		return nil, err
	}
	station, err := m.FindStation(net, stationID)
	if err != nil {
		return nil, err
	}
	bike, err := station.PickUp(card, class, at)
	if err != nil {
		logger.Warn("rent_bike",
			fmt.Sprintf("rent failed for user %d at station %d: %v", userID, stationID, err),
			networkName, fmt.Sprintf("station:%d", stationID))
		return nil, err
	}
	logger.Info("rent_bike",
		fmt.Sprintf("user %d rented bike %d at station %d", userID, bike.ID(), stationID),
		networkName, fmt.Sprintf("station:%d", stationID))
	return bike, nil
}

// ReturnBike runs a drop transaction and returns the fare.
func (m *NetworkManager) ReturnBike(networkName string, userID, stationID int, at time.Time) (float64, error) {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return 0, err
	}
	card, err := m.FindCardByUser(net, userID)
	if err != nil {
		return 0, err
	}
	station, err := m.FindStation(net, stationID)
	if err != nil {
		return 0, err
	}
	fare, err := station.Drop(card, at)
	if err != nil {
		logger.Warn("return_bike",
			fmt.Sprintf("return failed for user %d at station %d: %v", userID, stationID, err),
			networkName, fmt.Sprintf("station:%d", stationID))
		return 0, err
	}
	logger.Info("return_bike",
		fmt.Sprintf("user %d returned a bike at station %d, fare %.2f", userID, stationID, fare),
		networkName, fmt.Sprintf("station:%d", stationID))
	return fare, nil
}

// SortStations returns the network's stations in the requested order.
func (m *NetworkManager) SortStations(networkName, order string, start, end time.Time) ([]*domain.Station, error) {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return nil, err
	}
	switch order {
	case SortMoreUsed:
		return domain.SortMostUsed(net.Stations()), nil
	case SortLeastOccupied:
		return domain.SortLeastOccupied(net.Stations(), start, end)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSorting, order)
	}
}

// ComputeItinerary plans a trip for a user with the named strategy. The
// itinerary is returned unsubscribed; the caller decides whether the
// user follows it.
func (m *NetworkManager) ComputeItinerary(networkName string, userID int, start, end geo.Point, strategyName string) (*domain.User, *domain.Itinerary, error) {
	net, err := m.FindNetwork(networkName)
	if err != nil {
		return nil, nil, err
	}
	user, err := m.FindUser(net, userID)
	if err != nil {
		return nil, nil, err
	}
	strategy, err := path.ForName(strategyName, net, m.pathOptions())
	if err != nil {
		return nil, nil, err
	}
	it := domain.NewItinerary(start, end)
	if err := it.ComputePath(strategy, domain.BikeAny); err != nil {
		return nil, nil, err
	}
	return user, it, nil
}

func (m *NetworkManager) pathOptions() path.Options {
	return path.Options{
		Speeds: path.Speeds{
			Walking:  m.cfg.Speeds.Walking,
			Electric: m.cfg.Speeds.Electric,
			Mechanic: m.cfg.Speeds.Mechanic,
		},
		PreferPlusDetour: m.cfg.Stations.PreferPlusDetour,
		UniformityDetour: m.cfg.Stations.UniformityDetour,
	}
}

// Reset drops every network. The id allocator keeps counting so ids
// stay unique across resets.
func (m *NetworkManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.networks = nil
}
