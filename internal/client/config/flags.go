package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/flagx"
)

// parseFlags overlays the short command-line flags:
//
//	-a string   address and port of the backend server
//	-f string   local cache database file
//	-p string   directory for downloaded photos
//	-i int      online check interval (seconds)
//
// Only the flags above are passed to the flag set, see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-f", "-p", "-i"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local cache database file")
	fs.StringVar(&cfg.PhotoDir, "p", cfg.PhotoDir, "directory for downloaded photos")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
	return nil
}
