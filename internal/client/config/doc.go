// Package config loads runtime configuration for the Arkania admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading a .env file if one exists.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// # Environment
//
//	ARKANIA_API_BASE_URL           base URL of the API
//	ARKANIA_REQUEST_TIMEOUT        per-request timeout
//	ARKANIA_TOKEN_EXPIRY_BUFFER    token counts as expiring this close to exp
//	ARKANIA_EXPIRY_CHECK_INTERVAL  how often the token is inspected
//	ARKANIA_STORE_BACKEND          sqlite or redis
//	ARKANIA_STORE_PATH             SQLite file
//	ARKANIA_REDIS_ADDR, ARKANIA_REDIS_DB
//	ARKANIA_KEY_PREFIX             namespace of the stored session keys
//	ARKANIA_LOG_LEVEL              debug, info, warn or error
//
// Durations are integer milliseconds ("300000") or Go durations ("5m").
//
// # Flags
//
//	-a string   base URL of the Arkania API
//	-s string   path of the local session database
//	-i int      token expiry check interval (seconds)
//	-b int      token expiry buffer (seconds)
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://arkania.example/api",
//	  "request_timeout": "10s",
//	  "token_expiry_buffer": 300000,
//	  "expiry_check_interval": "1m",
//	  "store_backend": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_db": 2,
//	  "key_prefix": "arkania"
//	}
//
// Malformed values panic at startup.
package config
