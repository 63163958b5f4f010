package order

import "time"

// Config holds order configuration.
type Config struct {
	// Prefix is the object key prefix confirmations are written under.
	Prefix string `mapstructure:"prefix" default:"orders/"`
	// SessionTTLSeconds is how long an idle shopper session is kept.
	SessionTTLSeconds int `mapstructure:"session_ttl_seconds" default:"1800"`
}

// SessionTTL returns SessionTTLSeconds as a duration.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLSeconds < 0 {
		return 0
	}
	return time.Duration(c.SessionTTLSeconds) * time.Second
}
