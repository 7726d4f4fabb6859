package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/flagx"
)

// Config holds runtime settings for the PlantVision CLI.
//
// RequestTimeout bounds ordinary calls; AnalyzeTimeout bounds a full
// identify/diagnose/remedies run, which takes several model round trips.
type Config struct {
	ServerEndpointAddr  string
	DatabasePath        string
	PhotoDir            string
	RequestTimeout      time.Duration
	AnalyzeTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "plantvision.db"
	c.PhotoDir = "photos"
	c.RequestTimeout = 15 * time.Second
	c.AnalyzeTimeout = 3 * time.Minute
	c.OnlineCheckInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags. Later sources take precedence.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigPath(args); path != "" {
		if err := parseJSON(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
