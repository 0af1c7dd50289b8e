package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/roombooking/internal/persistence/sqlite"
	"github.com/example/roombooking/internal/scheduler"
)

// Config captures environment driven configuration values for the booking
// service.
type Config struct {
	HTTPPort  int
	SQLiteDSN string
	// SeedFile optionally points at a YAML file replacing the built-in seed
	// roster. Empty means the defaults are used.
	SeedFile string
	// Operating day template driving time slot generation.
	DayStartHour int
	DayEndHour   int
	SlotMinutes  int
}

// Load parses configuration values from the current process environment,
// applying defaults for everything optional and reporting invalid entries by
// name.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:     8080,
		SQLiteDSN:    sqlite.DefaultDSN,
		DayStartHour: scheduler.DefaultStartHour,
		DayEndHour:   scheduler.DefaultEndHour,
		SlotMinutes:  scheduler.DefaultIntervalMinutes,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("ROOMBOOKING_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "ROOMBOOKING_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("ROOMBOOKING_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if seedFile := strings.TrimSpace(os.Getenv("ROOMBOOKING_SEED_FILE")); seedFile != "" {
		cfg.SeedFile = seedFile
	}

	if value := strings.TrimSpace(os.Getenv("ROOMBOOKING_DAY_START_HOUR")); value != "" {
		hour, err := strconv.Atoi(value)
		if err != nil || hour < 0 || hour > 23 {
			invalid = append(invalid, "ROOMBOOKING_DAY_START_HOUR")
		} else {
			cfg.DayStartHour = hour
		}
	}

	if value := strings.TrimSpace(os.Getenv("ROOMBOOKING_DAY_END_HOUR")); value != "" {
		hour, err := strconv.Atoi(value)
		if err != nil || hour < 1 || hour > 24 {
			invalid = append(invalid, "ROOMBOOKING_DAY_END_HOUR")
		} else {
			cfg.DayEndHour = hour
		}
	}

	if value := strings.TrimSpace(os.Getenv("ROOMBOOKING_SLOT_MINUTES")); value != "" {
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes <= 0 || minutes > 60 {
			invalid = append(invalid, "ROOMBOOKING_SLOT_MINUTES")
		} else {
			cfg.SlotMinutes = minutes
		}
	}

	if cfg.DayStartHour >= cfg.DayEndHour {
		invalid = append(invalid, "ROOMBOOKING_DAY_START_HOUR must be before ROOMBOOKING_DAY_END_HOUR")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment configuration: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
