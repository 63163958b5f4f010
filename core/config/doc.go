// Package config provides configuration management for Garment Geek.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, app name)
//   - Database: SQLite or MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Catalog: inventory source and cache TTL
//   - Order: confirmation prefix and session TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.Source)
package config
