package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string such as "1h" or "720h", falling
// back to the given default when the string does not parse.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("duration", durationStr).Dur("default", defaultDuration).Msg("Failed to parse duration, using default")
		return defaultDuration
	}
	return duration
}
