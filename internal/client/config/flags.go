package config

import (
	"flag"
	"os"

	"wodtracker/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   server base URL (e.g., "http://localhost:3000")
//	-f string   local credentials database file
//
// os.Args is first filtered to only the flags handled here using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-f"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "s", config.ServerBaseURL, "server base URL")
	fs.StringVar(&config.DatabasePath, "f", config.DatabasePath, "credentials database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
