package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/arkania/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the Arkania API
//	-s string   path of the local session database
//	-i int      token expiry check interval in seconds
//	-b int      token expiry buffer in seconds
//
// Only these flags are parsed out of os.Args; the rest are left for others.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-i", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the Arkania API")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local session database")
	checkInterval := fs.Int("i", int(cfg.ExpiryCheckInterval.Seconds()), "token expiry check interval (in seconds)")
	expiryBuffer := fs.Int("b", int(cfg.TokenExpiryBuffer.Seconds()), "token expiry buffer (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// keep sub-second values from earlier sources unless the flag was given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.ExpiryCheckInterval = time.Duration(*checkInterval) * time.Second
		case "b":
			cfg.TokenExpiryBuffer = time.Duration(*expiryBuffer) * time.Second
		}
	})
}
