package clui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pietrodll/school-projects/internal/common/config"
	"github.com/pietrodll/school-projects/internal/service"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Speeds.Walking = 4
	cfg.Speeds.Electric = 20
	cfg.Speeds.Mechanic = 15
	cfg.Stations.PlusBonusCredit = 5
	cfg.Stations.PreferPlusDetour = 1.10
	cfg.Stations.UniformityDetour = 1.05
	return cfg
}

func testController(t *testing.T, input string) (*Controller, *service.NetworkManager, *bytes.Buffer) {
	t.Helper()
	manager := service.NewNetworkManager(testConfig())
	out := &bytes.Buffer{}
	c := NewController(manager, strings.NewReader(input), out, t.TempDir())
	return c, manager, out
}

func run(t *testing.T, c *Controller, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if err := c.Execute(line); err != nil {
			t.Fatalf("Execute(%q) error = %v", line, err)
		}
	}
}

func TestRentReturnSession(t *testing.T) {
	c, _, out := testController(t, "")
	run(t, c,
		"setup <paris> <2> <2> <4.0> <0>",
		"addUser <alice> <credit> <paris>",
		"addBike <paris> <1> <mechanic> <2019-01-01 00:10>",
		"rentBike <1> <1> <2019-01-01 01:00> <paris>",
		"returnBike <1> <2> <2019-01-01 01:30> <paris>",
		"displayUser <paris> <1>",
	)

	transcript := out.String()
	for _, want := range []string{
		"Network \"paris\" setup successfully.",
		"User added successfully with id 1.",
		"Bike successfully rented at station1 by user1.",
		"The price of the ride is 0.50 euros.",
	} {
		if !strings.Contains(transcript, want) {
			t.Errorf("transcript missing %q\ngot:\n%s", want, transcript)
		}
	}
}

func TestRentBikeWithClass(t *testing.T) {
	c, _, out := testController(t, "")
	run(t, c,
		"setup <paris> <2> <2> <4.0> <0>",
		"addUser <bob> <vmax> <paris>",
		"addBike <paris> <2> <electric> <2019-01-01 00:10>",
		"rentBike <1> <2> <electric> <2019-01-01 01:00> <paris>",
	)
	if !strings.Contains(out.String(), "Bike successfully rented at station2 by user1.") {
		t.Errorf("transcript missing the rent confirmation:\n%s", out.String())
	}
}

func TestFollowItinerary(t *testing.T) {
	// The controller reads "y" when asked to follow the itinerary.
	c, manager, out := testController(t, "y\n")
	run(t, c,
		"setup <paris> <2> <2> <4.0> <0>",
		"addUser <alice> <vlibre> <paris>",
		"addBike <paris> <1> <mechanic> <2019-01-01 00:10>",
		"calculateItinerary <paris> <1> <0.0> <0.0> <3.0> <3.0> <minimal-walking>",
	)
	if !strings.Contains(out.String(), "Do you want to follow this itinerary?") {
		t.Fatalf("the follow prompt was not shown:\n%s", out.String())
	}

	net, err := manager.FindNetwork("paris")
	if err != nil {
		t.Fatal(err)
	}
	user, err := manager.FindUser(net, 1)
	if err != nil {
		t.Fatal(err)
	}
	if user.Itinerary() == nil {
		t.Error("answering y should install the itinerary on the user")
	}
}

func TestDeclineItinerary(t *testing.T) {
	c, manager, _ := testController(t, "n\n")
	run(t, c,
		"setup <paris> <2> <2> <4.0> <0>",
		"addUser <alice> <vlibre> <paris>",
		"addBike <paris> <1> <mechanic> <2019-01-01 00:10>",
		"calculateItinerary <paris> <1> <0.0> <0.0> <3.0> <3.0> <minimal-walking>",
	)
	net, _ := manager.FindNetwork("paris")
	user, err := manager.FindUser(net, 1)
	if err != nil {
		t.Fatal(err)
	}
	if user.Itinerary() != nil {
		t.Error("answering n should leave the user without an itinerary")
	}
}

func TestExecuteErrors(t *testing.T) {
	c, _, _ := testController(t, "")
	run(t, c, "setup <paris> <2> <2> <4.0> <0>")

	tests := []struct {
		line string
		want error
	}{
		{"teleport <paris>", ErrInvalidCommand},
		{"display <paris> <extra>", ErrInvalidArguments},
		{"addUser <alice>", ErrInvalidArguments},
		{"rentBike <one> <1> <2019-01-01 01:00> <paris>", ErrInvalidArguments},
		{"addBike <paris> <1> <mechanic> <today>", ErrInvalidArguments},
		{"display <lyon>", service.ErrNetworkNotFound},
	}
	for _, tt := range tests {
		if err := c.Execute(tt.line); !errors.Is(err, tt.want) {
			t.Errorf("Execute(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestRunTest(t *testing.T) {
	manager := service.NewNetworkManager(testConfig())
	out := &bytes.Buffer{}
	dir := t.TempDir()
	c := NewController(manager, strings.NewReader(""), out, dir)

	script := strings.Join([]string{
		"# a tiny scenario",
		"setup <paris> <2> <2> <4.0> <0>",
		"addUser <alice> <credit> <paris>",
		"display <lyon>",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, "scenario.txt"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := c.Execute("runtest <scenario.txt>"); err != nil {
		t.Fatalf("runtest error = %v", err)
	}
	if !strings.Contains(out.String(), "Networks reset.") {
		t.Errorf("transcript missing the reset notice:\n%s", out.String())
	}
	if len(manager.Networks()) != 0 {
		t.Error("runtest should reset the networks afterwards")
	}

	result, err := os.ReadFile(filepath.Join(dir, "scenarioResult.txt"))
	if err != nil {
		t.Fatalf("reading the result file: %v", err)
	}
	if !strings.Contains(string(result), "setup successfully") {
		t.Errorf("result file missing the replay transcript:\n%s", result)
	}
	if !strings.Contains(string(result), "Error:") {
		t.Error("result file should record the failing instruction and keep going")
	}
}

func TestInteractive(t *testing.T) {
	c, _, out := testController(t, "help\nexit\n")
	c.Interactive()
	transcript := out.String()
	if !strings.Contains(transcript, "help center") {
		t.Error("help should print the command table")
	}
	if !strings.Contains(transcript, "It has been a pleasure to work for you.") {
		t.Error("exit should print the goodbye message")
	}
}

func TestStationOfflineAndBack(t *testing.T) {
	c, _, out := testController(t, "")
	run(t, c,
		"setup <paris> <2> <2> <4.0> <0>",
		"stationOffline <paris> <1>",
	)
	if !strings.Contains(out.String(), "Station1 is now offline.") {
		t.Errorf("transcript missing the offline confirmation:\n%s", out.String())
	}
	// Renting at an offline station fails.
	run(t, c, "addUser <alice> <credit> <paris>")
	err := c.Execute("rentBike <1> <1> <2019-01-01 01:00> <paris>")
	if err == nil {
		t.Fatal("renting at an offline station should fail")
	}
	run(t, c, "stationOnline <paris> <1>")
	if !strings.Contains(out.String(), "Station1 is now online.") {
		t.Errorf("transcript missing the online confirmation:\n%s", out.String())
	}
}
