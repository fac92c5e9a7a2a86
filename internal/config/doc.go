// Package config loads CineVerse server configuration.
//
// Configuration comes from, in increasing precedence:
//
//  1. built-in defaults (New)
//  2. cineverse.json or cineverse.yaml, with ${VAR} references expanded
//     from the environment
//  3. environment overrides (PORT, CINEVERSE_ADDR, CINEVERSE_LOG_LEVEL,
//     CINEVERSE_REDIS_URL, ENVIRONMENT)
//  4. CLI flags, applied by cmd/cineverse
//
// Example cineverse.json:
//
//	{
//	  "server": {"addr": ":8080", "shutdownTimeout": "10s"},
//	  "log": {"level": "debug", "format": "text"},
//	  "session": {"secret": "${SESSION_SECRET}"},
//	  "watchlist": {"backend": "redis", "redisUrl": "redis://localhost:6379/0"}
//	}
package config
