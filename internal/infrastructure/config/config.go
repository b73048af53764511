package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings is the vendor node configuration, read from VANHUB_* environment
// variables (a .env file is autoloaded by cmd/api).
type Settings struct {
	Port      int    `default:"8080"`
	StoreName string `split_words:"true" default:"Green Grocer"`

	// NotificationTTL is how long a toast stays up before auto-expiring.
	NotificationTTL time.Duration `split_words:"true" default:"3s"`

	// StatsCompletedBaseline is added to the session completed count in the
	// stats surface, covering orders completed before this session began.
	StatsCompletedBaseline int `split_words:"true" default:"8"`
	StatsAvgPrepMinutes    int `split_words:"true" default:"14"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `split_words:"true" default:"gemini-2.0-flash"`
	InsightMock  bool   `split_words:"true"`

	SeedDemoData bool `split_words:"true" default:"true"`
}

func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process("vanhub", &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
