// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for the listener and the API key guard.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key (empty disables auth) and the
// application name used in logs and order confirmations.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to bind the listener.
package server
