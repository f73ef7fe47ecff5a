package clui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pietrodll/school-projects/internal/domain"
	"github.com/pietrodll/school-projects/internal/geo"
	"github.com/pietrodll/school-projects/internal/service"
)

// Controller maps command-line instructions onto NetworkManager
// operations. It also installs the interactive decision prompt that
// station alerts consult.
type Controller struct {
	manager   *service.NetworkManager
	in        *bufio.Reader
	out       io.Writer
	scriptDir string
}

// NewController wires a controller on the given streams. Script files
// named by runtest resolve relative to scriptDir.
func NewController(manager *service.NetworkManager, in io.Reader, out io.Writer, scriptDir string) *Controller {
	c := &Controller{
		manager:   manager,
		in:        bufio.NewReader(in),
		out:       out,
		scriptDir: scriptDir,
	}
	manager.SetDecisionFunc(c.promptDecision)
	return c
}

func (c *Controller) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Controller) readLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// promptDecision is consulted when the end station of a followed
// itinerary fills up or goes offline while the user is riding.
func (c *Controller) promptDecision(u *domain.User, alert domain.Alert) domain.Decision {
	c.printf("Notification: the destination station of user %d does not have any more available slots or is offline.\n", u.ID())
	c.printf("Do you want to recalculate the arrival station? [y/n]\n")
	if strings.EqualFold(c.readLine(), "y") {
		return domain.Decision{Kind: domain.DecisionReroute}
	}
	return domain.Decision{Kind: domain.DecisionClear}
}

// Execute parses and runs one instruction.
func (c *Controller) Execute(line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	args, err := ParseArgs(line)
	if err != nil {
		return err
	}
	switch cmd.Keyword {
	case "setup":
		return c.setup(args)
	case "runtest":
		return c.runtest(args)
	case "stationOnline":
		return c.stationOnline(args, true)
	case "stationOffline":
		return c.stationOnline(args, false)
	case "slotOnline":
		return c.slotOnline(args, true)
	case "slotOffline":
		return c.slotOnline(args, false)
	case "addStation":
		return c.addStation(args)
	case "addSlot":
		return c.addSlot(args)
	case "addBike":
		return c.addBike(args)
	case "addUser":
		return c.addUser(args)
	case "rentBike":
		return c.rentBike(args)
	case "returnBike":
		return c.returnBike(args)
	case "display":
		return c.display(args)
	case "displayStation":
		return c.displayStation(args)
	case "displayUser":
		return c.displayUser(args)
	case "sortStation":
		return c.sortStation(args)
	case "calculateItinerary":
		return c.calculateItinerary(args)
	case "displayItinerary":
		return c.displayItinerary(args)
	}
	return fmt.Errorf("%w: %s", ErrInvalidCommand, cmd.Keyword)
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArguments, s)
	}
	return n, nil
}

func atof(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidArguments, s)
	}
	return f, nil
}

func (c *Controller) setup(args []string) error {
	switch len(args) {
	case 1:
		if _, err := c.manager.SetupDefaultNetwork(args[0]); err != nil {
			return err
		}
	case 5:
		nStations, err := atoi(args[1])
		if err != nil {
			return err
		}
		nSlots, err := atoi(args[2])
		if err != nil {
			return err
		}
		side, err := atof(args[3])
		if err != nil {
			return err
		}
		nBikes, err := atoi(args[4])
		if err != nil {
			return err
		}
		if _, err := c.manager.SetupNetwork(args[0], nStations, nSlots, side, nBikes); err != nil {
			return err
		}
	default:
		return ErrInvalidArguments
	}
	c.printf("Network %q setup successfully.\n", args[0])
	return nil
}

func (c *Controller) stationOnline(args []string, online bool) error {
	if len(args) != 2 {
		return ErrInvalidArguments
	}
	stationID, err := atoi(args[1])
	if err != nil {
		return err
	}
	if err := c.manager.SetStationOnline(args[0], stationID, online); err != nil {
		return err
	}
	state := "online"
	if !online {
		state = "offline"
	}
	c.printf("Station%d is now %s.\n", stationID, state)
	return nil
}

func (c *Controller) slotOnline(args []string, online bool) error {
	if len(args) != 3 {
		return ErrInvalidArguments
	}
	slotID, err := atoi(args[1])
	if err != nil {
		return err
	}
	at, err := ParseTime(args[2])
	if err != nil {
		return err
	}
	if err := c.manager.SetSlotOnline(args[0], slotID, online, at); err != nil {
		return err
	}
	state := "online"
	if !online {
		state = "offline"
	}
	c.printf("Slot%d is now %s.\n", slotID, state)
	return nil
}

func (c *Controller) addStation(args []string) error {
	if len(args) != 5 {
		return ErrInvalidArguments
	}
	class, err := domain.ParseStationClass(strings.ToLower(args[1]))
	if err != nil {
		return err
	}
	nSlots, err := atoi(args[2])
	if err != nil {
		return err
	}
	x, err := atof(args[3])
	if err != nil {
		return err
	}
	y, err := atof(args[4])
	if err != nil {
		return err
	}
	if _, err := c.manager.AddStation(args[0], class, nSlots, geo.Point{X: x, Y: y}); err != nil {
		return err
	}
	c.printf("Station added successfully to network %q.\n", args[0])
	return nil
}

func (c *Controller) addSlot(args []string) error {
	if len(args) != 3 {
		return ErrInvalidArguments
	}
	stationID, err := atoi(args[1])
	if err != nil {
		return err
	}
	count, err := atoi(args[2])
	if err != nil {
		return err
	}
	if err := c.manager.AddSlots(args[0], stationID, count); err != nil {
		return err
	}
	c.printf("Slot added successfully to station%d.\n", stationID)
	return nil
}

func (c *Controller) addBike(args []string) error {
	switch len(args) {
	case 3:
		class, err := domain.ParseBikeClass(strings.ToLower(args[1]))
		if err != nil {
			return err
		}
		at, err := ParseTime(args[2])
		if err != nil {
			return err
		}
		if err := c.manager.AddBike(args[0], class, at); err != nil {
			return err
		}
	case 4:
		stationID, err := atoi(args[1])
		if err != nil {
			return err
		}
		class, err := domain.ParseBikeClass(strings.ToLower(args[2]))
		if err != nil {
			return err
		}
		at, err := ParseTime(args[3])
		if err != nil {
			return err
		}
		if err := c.manager.AddBikeAt(args[0], stationID, class, at); err != nil {
			return err
		}
	default:
		return ErrInvalidArguments
	}
	c.printf("Bike added successfully.\n")
	return nil
}

func (c *Controller) addUser(args []string) error {
	if len(args) != 3 {
		return ErrInvalidArguments
	}
	class, err := domain.ParseCardClass(strings.ToLower(args[1]))
	if err != nil {
		return err
	}
	card, err := c.manager.AddUser(args[2], args[0], class)
	if err != nil {
		return err
	}
	c.printf("User added successfully with id %d.\n", card.User().ID())
	return nil
}

func (c *Controller) rentBike(args []string) error {
	var (
		class   = domain.BikeAny
		timeArg string
		network string
	)
	switch len(args) {
	case 4:
		timeArg, network = args[2], args[3]
	case 5:
		parsed, err := domain.ParseBikeClass(strings.ToLower(args[2]))
		if err != nil {
			return err
		}
		class = parsed
		timeArg, network = args[3], args[4]
	default:
		return ErrInvalidArguments
	}
	userID, err := atoi(args[0])
	if err != nil {
		return err
	}
	stationID, err := atoi(args[1])
	if err != nil {
		return err
	}
	at, err := ParseTime(timeArg)
	if err != nil {
		return err
	}
	if _, err := c.manager.RentBike(network, userID, stationID, class, at); err != nil {
		return err
	}
	c.printf("Bike successfully rented at station%d by user%d.\n", stationID, userID)
	return nil
}

func (c *Controller) returnBike(args []string) error {
	if len(args) != 4 {
		return ErrInvalidArguments
	}
	userID, err := atoi(args[0])
	if err != nil {
		return err
	}
	stationID, err := atoi(args[1])
	if err != nil {
		return err
	}
	at, err := ParseTime(args[2])
	if err != nil {
		return err
	}
	fare, err := c.manager.ReturnBike(args[3], userID, stationID, at)
	if err != nil {
		return err
	}
	c.printf("Bike successfully returned at station%d by user%d. The price of the ride is %.2f euros.\n", stationID, userID, fare)
	return nil
}

func (c *Controller) display(args []string) error {
	if len(args) != 1 {
		return ErrInvalidArguments
	}
	net, err := c.manager.FindNetwork(args[0])
	if err != nil {
		return err
	}
	c.printf("%s", FormatNetwork(net))
	return nil
}

func (c *Controller) displayStation(args []string) error {
	if len(args) != 2 {
		return ErrInvalidArguments
	}
	net, err := c.manager.FindNetwork(args[0])
	if err != nil {
		return err
	}
	stationID, err := atoi(args[1])
	if err != nil {
		return err
	}
	station, err := c.manager.FindStation(net, stationID)
	if err != nil {
		return err
	}
	c.printf("%s", FormatStation(station))
	return nil
}

func (c *Controller) displayUser(args []string) error {
	if len(args) != 2 {
		return ErrInvalidArguments
	}
	net, err := c.manager.FindNetwork(args[0])
	if err != nil {
		return err
	}
	userID, err := atoi(args[1])
	if err != nil {
		return err
	}
	user, err := c.manager.FindUser(net, userID)
	if err != nil {
		return err
	}
	c.printf("%s", FormatUser(user))
	return nil
}

func (c *Controller) sortStation(args []string) error {
	if len(args) != 4 {
		return ErrInvalidArguments
	}
	start, err := ParseTime(args[2])
	if err != nil {
		return err
	}
	end, err := ParseTime(args[3])
	if err != nil {
		return err
	}
	order := strings.ToLower(args[1])
	stations, err := c.manager.SortStations(args[0], order, start, end)
	if err != nil {
		return err
	}
	c.printf("%s", FormatSortedStations(args[0], order, stations, start, end))
	return nil
}

func (c *Controller) calculateItinerary(args []string) error {
	if len(args) != 7 {
		return ErrInvalidArguments
	}
	userID, err := atoi(args[1])
	if err != nil {
		return err
	}
	startX, err := atof(args[2])
	if err != nil {
		return err
	}
	startY, err := atof(args[3])
	if err != nil {
		return err
	}
	destX, err := atof(args[4])
	if err != nil {
		return err
	}
	destY, err := atof(args[5])
	if err != nil {
		return err
	}
	user, it, err := c.manager.ComputeItinerary(args[0], userID,
		geo.Point{X: startX, Y: startY}, geo.Point{X: destX, Y: destY},
		strings.ToLower(args[6]))
	if err != nil {
		return err
	}
	c.printf("%s", FormatItinerary(it))
	c.printf("Do you want to follow this itinerary? [y/n]\n")
	if strings.EqualFold(c.readLine(), "y") {
		user.SetItinerary(it)
		c.printf("Itinerary set. You will be notified if the return station becomes unavailable.\n")
	}
	return nil
}

func (c *Controller) displayItinerary(args []string) error {
	if len(args) != 2 {
		return ErrInvalidArguments
	}
	net, err := c.manager.FindNetwork(args[0])
	if err != nil {
		return err
	}
	userID, err := atoi(args[1])
	if err != nil {
		return err
	}
	user, err := c.manager.FindUser(net, userID)
	if err != nil {
		return err
	}
	c.printf("%s", FormatItinerary(user.Itinerary()))
	return nil
}

// RunScript replays a file of instructions. Failures are reported on
// the output stream and the replay continues, matching the interactive
// behaviour.
func (c *Controller) RunScript(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := c.Execute(line); err != nil {
			c.printf("Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// runtest replays a command file from the script directory, writing the
// transcript to a sibling <name>Result.txt file, then resets the
// networks.
func (c *Controller) runtest(args []string) error {
	if len(args) != 1 {
		return ErrInvalidArguments
	}
	name := args[0]
	base := strings.TrimSuffix(name, filepath.Ext(name))
	resultPath := filepath.Join(c.scriptDir, base+"Result.txt")
	result, err := os.Create(resultPath)
	if err != nil {
		return fmt.Errorf("creating result file: %w", err)
	}
	defer result.Close()
	saved := c.out
	c.out = result
	err = c.RunScript(filepath.Join(c.scriptDir, name))
	c.out = saved
	if err != nil {
		return err
	}
	c.manager.Reset()
	c.printf("Test completed.\nTest result written in file %s\nNetworks reset.\n", resultPath)
	return nil
}

// Help prints the command table.
func (c *Controller) Help() {
	c.printf("Welcome to the help center of the myVelib system.\nHere are the instructions you can write:\n")
	for _, cmd := range Commands {
		c.printf("%s\n", cmd.Format)
	}
	c.printf("Please notice that the time format has to be %q.\n", TimeLayout)
}

// Interactive runs the read-eval-print loop until exit or end of
// input.
func (c *Controller) Interactive() {
	c.printf("Welcome to the myVelib system. Type \"help\" to see the possible commands and \"exit\" to stop.\n")
	for {
		c.printf("Please write your instruction:\n")
		line := c.readLine()
		switch {
		case line == "":
			return
		case strings.EqualFold(line, "exit"):
			c.printf("It has been a pleasure to work for you.\n")
			return
		case strings.EqualFold(line, "help"):
			c.Help()
		default:
			if err := c.Execute(line); err != nil {
				c.printf("Error: %v\n", err)
			}
		}
	}
}
