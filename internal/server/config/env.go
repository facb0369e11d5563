package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays selected Config fields from the process environment.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address (e.g., ":3000")
//	PORT                  shorthand for the listen port, used when ADDRESS is unset
//	DATABASE_DSN          PostgreSQL DSN
//	JWT_SECRET            HMAC secret for signing access tokens
//	TOKEN_VALIDITY        access token lifetime, Go duration syntax (e.g., "1h")
//	AUTH_RATE_LIMIT       max /api/auth requests per client per minute
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	} else if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddr = ":" + v
	}

	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}

	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}

	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.AuthRateLimitPerMinute = n
		}
	}
}
