// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections from the
// application's configuration.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies pool settings and verifies
// the connection with a bounded ping. SQLite with Name ":memory:" is used by tests.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns inspect live tables so feature repositories can
// verify that migrations produced the columns they rely on (garments, orders).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "orders", []string{"id", "email"})
package database
