package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/arkania/internal/timex"
	"github.com/joho/godotenv"
)

// envFile is loaded before the environment is read. Variables already set
// in the process environment win over the file.
var envFile = ".env"

// parseEnv overlays Config with ARKANIA_* environment variables. Durations
// accept integer milliseconds or Go duration strings. It panics on values
// that do not parse, like parseJson and parseFlags.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&cfg.APIBaseURL, "ARKANIA_API_BASE_URL")
	setDuration(&cfg.RequestTimeout, "ARKANIA_REQUEST_TIMEOUT")
	setDuration(&cfg.TokenExpiryBuffer, "ARKANIA_TOKEN_EXPIRY_BUFFER")
	setDuration(&cfg.ExpiryCheckInterval, "ARKANIA_EXPIRY_CHECK_INTERVAL")
	setString(&cfg.StoreBackend, "ARKANIA_STORE_BACKEND")
	setString(&cfg.StorePath, "ARKANIA_STORE_PATH")
	setString(&cfg.RedisAddr, "ARKANIA_REDIS_ADDR")
	setString(&cfg.KeyPrefix, "ARKANIA_KEY_PREFIX")
	setString(&cfg.LogLevel, "ARKANIA_LOG_LEVEL")

	if v, ok := os.LookupEnv("ARKANIA_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.RedisDB = db
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := timex.Parse(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
