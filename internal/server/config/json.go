package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept "30s" style
// strings or integer nanoseconds. Fields absent from the file keep their
// current value.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   *string         `json:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password"`
	S3Bucket                     *string         `json:"s3_bucket"`
	S3Region                     *string         `json:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint"`
	S3URLValidity                *timex.Duration `json:"s3_url_validity"`
	GeminiAPIKey                 *string         `json:"gemini_api_key"`
	GeminiModel                  *string         `json:"gemini_model"`
	ProviderTimeout              *timex.Duration `json:"provider_timeout"`
	PersistMode                  *string         `json:"persist_mode"`
	TimelinePollInterval         *timex.Duration `json:"timeline_poll_interval"`
	LogLevel                     *string         `json:"log_level"`
	OTelEndpoint                 *string         `json:"otel_endpoint"`
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}

func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var c JsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&cfg.DatabaseDSN, c.DatabaseDSN)
	setString(&cfg.SecretKey, c.SecretKey)
	setDuration(&cfg.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&cfg.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setString(&cfg.S3RootUser, c.S3RootUser)
	setString(&cfg.S3RootPassword, c.S3RootPassword)
	setString(&cfg.S3Bucket, c.S3Bucket)
	setString(&cfg.S3Region, c.S3Region)
	setString(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&cfg.S3URLValidity, c.S3URLValidity)
	setString(&cfg.GeminiAPIKey, c.GeminiAPIKey)
	setString(&cfg.GeminiModel, c.GeminiModel)
	setDuration(&cfg.ProviderTimeout, c.ProviderTimeout)
	setString(&cfg.PersistMode, c.PersistMode)
	setDuration(&cfg.TimelinePollInterval, c.TimelinePollInterval)
	setString(&cfg.LogLevel, c.LogLevel)
	setString(&cfg.OTelEndpoint, c.OTelEndpoint)
	return nil
}
