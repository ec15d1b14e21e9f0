package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Providers describes the third-party sports data sources.
type Providers struct {
	PollIntervalSeconds int      `yaml:"poll_interval_seconds"`
	TimeoutSeconds      int      `yaml:"timeout_seconds"`
	Cricket             Provider `yaml:"cricket"`
	Football            Provider `yaml:"football"`
	Scoreboard          Provider `yaml:"scoreboard"`
}

// Provider is one external API. APIKey never comes from the file.
type Provider struct {
	BaseURL string `yaml:"base_url"`
	Enabled bool   `yaml:"enabled"`
	Poll    bool   `yaml:"poll"`
	APIKey  string `yaml:"-"`
}

// Pollable reports whether the poller should fetch live scores from p.
func (p Provider) Pollable() bool {
	return p.Enabled && p.Poll && p.APIKey != ""
}

// DefaultProviders returns the built-in provider settings.
func DefaultProviders() Providers {
	return Providers{
		PollIntervalSeconds: 60,
		TimeoutSeconds:      15,
		Cricket: Provider{
			BaseURL: "https://api.cricapi.com/v1",
			Enabled: true,
			Poll:    true,
		},
		Football: Provider{
			BaseURL: "https://api.football-data.org/v4",
			Enabled: true,
			Poll:    true,
		},
		Scoreboard: Provider{
			BaseURL: "https://www.thesportsdb.com/api/v1/json",
			Enabled: true,
		},
	}
}

// LoadProviders reads the YAML provider file at path over the defaults.
// A missing file is not an error. API keys and the poll interval can be
// overridden from the environment.
func LoadProviders(path string) (*Providers, error) {
	p := DefaultProviders()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse providers file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read providers file %s: %w", path, err)
	}

	p.Cricket.APIKey = getEnv("CRICKET_API_KEY", "")
	p.Football.APIKey = getEnv("FOOTBALL_API_KEY", "")
	p.Scoreboard.APIKey = getEnv("SCOREBOARD_API_KEY", "3")

	if p.PollIntervalSeconds, err = getEnvAsInt("POLL_INTERVAL_SECONDS", p.PollIntervalSeconds); err != nil {
		return nil, fmt.Errorf("invalid POLL_INTERVAL_SECONDS: %w", err)
	}
	if p.PollIntervalSeconds <= 0 {
		p.PollIntervalSeconds = 60
	}
	if p.TimeoutSeconds <= 0 {
		p.TimeoutSeconds = 15
	}
	return &p, nil
}
