package uikit

import (
	"time"

	"github.com/dmitrymomot/uikit/pkg/config"
)

// Config holds the runtime settings of a Kit, read from UIKIT_* environment
// variables (and a .env file when present).
type Config struct {
	Env       string `env:"UIKIT_ENV" envDefault:"development"`
	LogLevel  string `env:"UIKIT_LOG_LEVEL"`
	LogFormat string `env:"UIKIT_LOG_FORMAT"`

	NotifyTimeout time.Duration `env:"UIKIT_NOTIFY_TIMEOUT" envDefault:"5s"`
	NotifyReplace bool          `env:"UIKIT_NOTIFY_REPLACE" envDefault:"false"`
	NotifyMax     int           `env:"UIKIT_NOTIFY_MAX" envDefault:"0"`

	ValidationMode string `env:"UIKIT_VALIDATION_MODE" envDefault:"first_per_field"`

	// StorePath selects the file-backed store; empty keeps storage in memory.
	StorePath    string   `env:"UIKIT_STORE_PATH"`
	PrefersDark  bool     `env:"UIKIT_PREFERS_DARK" envDefault:"false"`
	Capabilities []string `env:"UIKIT_CAPABILITIES" envSeparator:","`

	SubmitDelay time.Duration `env:"UIKIT_SUBMIT_DELAY" envDefault:"1500ms"`
	SentDelay   time.Duration `env:"UIKIT_SENT_DELAY" envDefault:"2s"`
}

// DefaultConfig returns the settings used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Env:            "development",
		NotifyTimeout:  5 * time.Second,
		ValidationMode: "first_per_field",
		SubmitDelay:    1500 * time.Millisecond,
		SentDelay:      2 * time.Second,
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
