package config

import "os"

// parseEnv overlays Config fields from the process environment.
//
// Recognized variables:
//
//	WODTRACKER_SERVER   base URL of the backend API
//	WODTRACKER_DB       path of the local credentials database
func parseEnv(config *Config) {
	if v := os.Getenv("WODTRACKER_SERVER"); v != "" {
		config.ServerBaseURL = v
	}
	if v := os.Getenv("WODTRACKER_DB"); v != "" {
		config.DatabasePath = v
	}
}
