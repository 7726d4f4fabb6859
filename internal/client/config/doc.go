// Package config loads runtime configuration for the PlantVision CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags (see parseFlags).
//
// The JSON loader uses timex.Duration, so intervals can be strings like
// "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "plantvision.db",
//	  "analyze_timeout": "2m",
//	  "online_check_interval": "5s"
//	}
//
// Environment variables are not read by the client.
package config
