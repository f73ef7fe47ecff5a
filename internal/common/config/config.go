package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config gathers every tunable of the simulation. All values have
// defaults matching the historical myVelib constants, so an empty
// environment yields the canonical behaviour.
type Config struct {
	Speeds struct {
		Walking  float64 // km per minute fraction, historically 4 km/h units
		Electric float64
		Mechanic float64
	}
	Stations struct {
		PlusBonusCredit  int     // minutes granted on a plus-station return
		PreferPlusDetour float64 // accepted detour factor for prefer-plus
		UniformityDetour float64 // accepted detour factor for uniformity
	}
	Setup struct {
		Stations        int
		SlotsPerStation int
		Side            float64 // side of the square area, km
		Bikes           int
		ElectricShare   float64
	}
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return def
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := &Config{}

	cfg.Speeds.Walking = getEnvFloat("MYVELIB_WALKING_SPEED", 4)
	cfg.Speeds.Electric = getEnvFloat("MYVELIB_ELECTRIC_SPEED", 20)
	cfg.Speeds.Mechanic = getEnvFloat("MYVELIB_MECHANIC_SPEED", 15)

	cfg.Stations.PlusBonusCredit = getEnvInt("MYVELIB_PLUS_BONUS_CREDIT", 5)
	cfg.Stations.PreferPlusDetour = getEnvFloat("MYVELIB_PREFER_PLUS_DETOUR", 1.10)
	cfg.Stations.UniformityDetour = getEnvFloat("MYVELIB_UNIFORMITY_DETOUR", 1.05)

	cfg.Setup.Stations = getEnvInt("MYVELIB_SETUP_STATIONS", 10)
	cfg.Setup.SlotsPerStation = getEnvInt("MYVELIB_SETUP_SLOTS", 10)
	cfg.Setup.Side = getEnvFloat("MYVELIB_SETUP_SIDE", 4)
	cfg.Setup.Bikes = getEnvInt("MYVELIB_SETUP_BIKES", 75)
	cfg.Setup.ElectricShare = getEnvFloat("MYVELIB_SETUP_ELECTRIC_SHARE", 0.3)

	return cfg, nil
}

func (c *Config) Print() {
	fmt.Printf("🚲 Speeds: walk %g | electric %g | mechanic %g\n",
		c.Speeds.Walking, c.Speeds.Electric, c.Speeds.Mechanic)
	fmt.Printf("🏙 Default setup: %d stations × %d slots, %g km side, %d bikes (%.0f%% electric)\n",
		c.Setup.Stations, c.Setup.SlotsPerStation, c.Setup.Side, c.Setup.Bikes, c.Setup.ElectricShare*100)
}
