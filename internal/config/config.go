package config

import (
	"github.com/windgap/sensoryprofile/internal/envstruct"
	"github.com/windgap/sensoryprofile/internal/errors"
)

// Config is the environment configuration shared by the web UI and the CLI.
type Config struct {
	// Addr is the listen address of the local web UI.
	Addr string `env:"SENSORY_ADDR" envDefault:"localhost:4000"`
	// SQLiteURL is the path to the SQLite database file, or ":memory:".
	SQLiteURL string `env:"SENSORY_SQLITE_URL" envDefault:"./sensoryprofile.sqlite"`
	// SubmissionRecipient receives the prefilled submission email.
	SubmissionRecipient string `env:"SENSORY_SUBMISSION_RECIPIENT" envDefault:"natalie.erdedi@gmail.com"`
	// OpenAIAPIKey enables voice-note transcription when set.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
}

// Load populates the configuration from the given environment lookup function,
// which has the same signature as [os.LookupEnv].
func Load(lookupEnv func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return Config{}, errors.Wrap(err, "populate configuration")
	}
	return cfg, nil
}
