package internal

import (
	"fmt"
	"guess-lab/errors"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// Config is read from the environment. Every field has a default so a bare
// launch plays the standard three-participant game.
type Config struct {
	Participants    string        `env:"PARTICIPANTS,default=alice bob carol" validate:"required"`
	MaxGuess        int           `env:"MAX_GUESS,default=100" validate:"gte=0"`
	RoundPause      time.Duration `env:"ROUND_PAUSE,default=2s" validate:"gt=0"`
	MailboxSize     int           `env:"MAILBOX_SIZE,default=8" validate:"min=1"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	Colours         bool          `env:"COLOURS,default=true"`
	RoundTable      bool          `env:"ROUND_TABLE,default=false"`
}

var validate = validator.New()

func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return config, nil
}

// ParticipantNames splits PARTICIPANTS on commas or blanks.
func (c Config) ParticipantNames() []string {
	return strings.Fields(strings.ReplaceAll(c.Participants, ",", " "))
}
