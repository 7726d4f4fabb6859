package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/plantvision/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the corresponding Config value untouched.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	DatabasePath        *string         `json:"database_path"`
	PhotoDir            *string         `json:"photo_dir"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	AnalyzeTimeout      *timex.Duration `json:"analyze_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
}

func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.PhotoDir != nil {
		cfg.PhotoDir = *jc.PhotoDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.AnalyzeTimeout != nil {
		cfg.AnalyzeTimeout = jc.AnalyzeTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	return nil
}
