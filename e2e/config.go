package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_ROUNDS is the number of consecutive rounds a scenario waits for
	Rounds int `envconfig:"E2E_ROUNDS" default:"5"`
	// E2E_ROUND_BOUND is how long a single round may take before the scenario fails
	RoundBound time.Duration `envconfig:"E2E_ROUND_BOUND" default:"2s"`
	// E2E_ROUND_PAUSE replaces the production pause between rounds
	RoundPause time.Duration `envconfig:"E2E_ROUND_PAUSE" default:"10ms"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_TABLE dumps the table of every resolved round in the test log
	Table bool `envconfig:"E2E_TABLE" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
