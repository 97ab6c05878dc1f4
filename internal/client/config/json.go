package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/arkania/internal/flagx"
	"github.com/dmitrijs2005/arkania/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are timex.Duration, so a file may say "5m" or 300000 (milliseconds).
// Fields left out of the file keep their earlier value.
type JsonConfig struct {
	APIBaseURL          string          `json:"api_base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	TokenExpiryBuffer   *timex.Duration `json:"token_expiry_buffer"`
	ExpiryCheckInterval *timex.Duration `json:"expiry_check_interval"`
	StoreBackend        string          `json:"store_backend"`
	StorePath           string          `json:"store_path"`
	RedisAddr           string          `json:"redis_addr"`
	RedisDB             *int            `json:"redis_db"`
	KeyPrefix           string          `json:"key_prefix"`
	LogLevel            string          `json:"log_level"`
}

// parseJson overlays Config with the JSON file named by -c or -config.
// Without either flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.APIBaseURL, jc.APIBaseURL)
	overlay(&cfg.StoreBackend, jc.StoreBackend)
	overlay(&cfg.StorePath, jc.StorePath)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.KeyPrefix, jc.KeyPrefix)
	overlay(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TokenExpiryBuffer != nil {
		cfg.TokenExpiryBuffer = jc.TokenExpiryBuffer.Duration
	}
	if jc.ExpiryCheckInterval != nil {
		cfg.ExpiryCheckInterval = jc.ExpiryCheckInterval.Duration
	}
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
