package storage

import (
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config describes the S3-compatible store that holds the inventory file and
// the written order confirmations.
type Config struct {
	// Endpoint is host:port of the store. A leading http:// or https:// is tolerated.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives the catalog object (catalog.object) and the orders/ prefix.
	Bucket string `mapstructure:"bucket" default:"garments"`
	// Region is only needed when the bucket has to be created.
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns the endpoint without its URL scheme, as minio expects it.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}

// Timeout bounds dialing and single storage calls. Non-positive values fall back to 30s.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
