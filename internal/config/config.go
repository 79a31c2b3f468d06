package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the ClouDNS API endpoint with
// its retry behavior, and the default credential pair.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// API contains all ClouDNS API related configurations
	API struct {
		// BaseURL is the root of the ClouDNS HTTP API
		BaseURL string `env:"CLOUDNS_API_URL" env-default:"https://api.cloudns.net" yaml:"baseURL"`
		// RequestTimeout is the per-request network timeout
		RequestTimeout time.Duration `env:"CLOUDNS_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxAttempts is the total number of attempts per request, including the first
		MaxAttempts int `env:"CLOUDNS_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// RetryBaseDelay is the backoff before the first retry
		RetryBaseDelay time.Duration `env:"CLOUDNS_RETRY_BASE_DELAY" env-default:"1s" yaml:"retryBaseDelay"`
		// RetryMultiplier scales the backoff after each retry
		RetryMultiplier float64 `env:"CLOUDNS_RETRY_MULTIPLIER" env-default:"2" yaml:"retryMultiplier"`
		// RowsPerPage is the page size used when listing zones
		RowsPerPage int `env:"CLOUDNS_ROWS_PER_PAGE" env-default:"100" yaml:"rowsPerPage"`
	} `yaml:"api"`

	// Auth contains the default credential pair; flags override these
	Auth struct {
		// ID is the ClouDNS auth ID
		ID string `env:"CLOUDNS_AUTH_ID" yaml:"id"`
		// Password is the ClouDNS auth password
		Password string `env:"CLOUDNS_AUTH_PASSWORD" yaml:"password"`
	} `yaml:"auth"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. The file is optional for this tool; when it does not exist the
// configuration comes from environment variables and defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from environment: %w", err)
	}

	return &cfg, nil
}
