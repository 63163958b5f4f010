package garment

import "time"

// Inventory sources.
const (
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// Config holds catalog configuration.
type Config struct {
	// Source selects where the inventory is loaded from: file, storage or database.
	Source string `mapstructure:"source" default:"file"`
	// Path is the inventory file used by the file source.
	Path string `mapstructure:"path" default:"./inventory.txt"`
	// Object is the object key used by the storage source.
	Object string `mapstructure:"object" default:"catalog/inventory.txt"`
	// SkipInvalid drops malformed records instead of failing the whole load.
	SkipInvalid bool `mapstructure:"skip_invalid" default:"false"`
	// CacheTTLSeconds is how long a loaded inventory is served before reloading. 0 keeps it until an explicit reload.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// IsValidSource reports whether Source names a supported inventory source.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage, SourceDatabase:
		return true
	}
	return false
}

// Mode returns the parse mode implied by SkipInvalid.
func (c Config) Mode() ErrorMode {
	if c.SkipInvalid {
		return SkipInvalid
	}
	return Strict
}

// CacheTTL returns CacheTTLSeconds as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds < 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
