package config

import (
	"encoding/json"
	"time"

	"picoblink/core"
)

// File is the JSON form of a blink configuration. Missing fields fall back
// to the firmware defaults.
type File struct {
	IntervalUS       *uint32 `json:"interval_us,omitempty"`
	DividerThreshold *uint8  `json:"divider_threshold,omitempty"`
	IdleDelayMS      *uint32 `json:"idle_delay_ms,omitempty"`
}

// LoadConfig parses a JSON configuration and returns a validated core.Config
func LoadConfig(jsonData []byte) (core.Config, error) {
	var file File

	err := json.Unmarshal(jsonData, &file)
	if err != nil {
		return core.Config{}, err
	}

	cfg := applyDefaults(file)
	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills in missing configuration values with the firmware defaults
func applyDefaults(file File) core.Config {
	cfg := core.DefaultConfig()

	if file.IntervalUS != nil {
		cfg.AlarmInterval = time.Duration(*file.IntervalUS) * time.Microsecond
	}
	if file.DividerThreshold != nil {
		cfg.DividerThreshold = *file.DividerThreshold
	}
	if file.IdleDelayMS != nil {
		cfg.IdleDelay = time.Duration(*file.IdleDelayMS) * time.Millisecond
	}

	return cfg
}
