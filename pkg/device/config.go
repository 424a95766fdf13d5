package device

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds session configuration
type Config struct {
	// MobileBreakpoint is the exclusive upper width bound for the mobile
	// category (default: 600)
	MobileBreakpoint int `env:"DEVICE_MOBILE_BREAKPOINT" envDefault:"600"`

	// TabletBreakpoint is the exclusive upper width bound for the tablet
	// category (default: 1200)
	TabletBreakpoint int `env:"DEVICE_TABLET_BREAKPOINT" envDefault:"1200"`

	// UpdateBuffer is the per-subscriber channel buffer; full buffers drop
	// updates instead of blocking the evaluation pipeline
	UpdateBuffer int `env:"DEVICE_UPDATE_BUFFER" envDefault:"8"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		MobileBreakpoint: 600,
		TabletBreakpoint: 1200,
		UpdateBuffer:     8,
	}
}

var defaultEnvLoaded sync.Once

// LoadConfig reads configuration from the environment, loading a .env file
// first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.MobileBreakpoint <= 0 || cfg.TabletBreakpoint <= cfg.MobileBreakpoint {
		return Config{}, ErrInvalidConfig
	}
	return cfg, nil
}
